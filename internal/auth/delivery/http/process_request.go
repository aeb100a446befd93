package http

import (
	"github.com/gin-gonic/gin"

	"inventory-service/internal/auth"
)

// processLoginReq binds and validates the login request body.
func (h *handler) processLoginReq(c *gin.Context) (loginReq, error) {
	var req loginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, auth.ErrMissingCredentials
	}
	return req, req.validate()
}

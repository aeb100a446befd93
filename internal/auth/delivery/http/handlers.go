package http

import (
	"github.com/gin-gonic/gin"

	"inventory-service/pkg/response"
)

// Login godoc
// @Summary     Log in
// @Description Exchanges the configured username/password for a bearer token valid one hour.
// @Tags        Auth
// @Accept      json
// @Produce     json
// @Param       body body     loginReq true "Credentials"
// @Success     200  {object} loginResp
// @Failure     401  {object} response.ErrorResp "Missing or invalid credentials"
// @Failure     429  {object} response.ErrorResp "Too many login attempts"
// @Router      /login [POST]
func (h *handler) Login(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processLoginReq(c)
	if err != nil {
		response.Error(c, h.mapError(err))
		return
	}

	out, err := h.uc.Login(ctx, req.toInput())
	if err != nil {
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newLoginResp(out))
}

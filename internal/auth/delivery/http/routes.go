package http

import (
	"github.com/gin-gonic/gin"

	"inventory-service/internal/middleware"
)

// RegisterRoutes maps POST /login behind the login rate limiter.
func RegisterRoutes(r gin.IRouter, h Handler, mw middleware.Middleware) {
	r.POST("/login", mw.LoginRateLimit(), h.Login)
}

package http

import (
	"github.com/gin-gonic/gin"

	"inventory-service/internal/middleware"
)

// RegisterRoutes maps the unauthenticated item API (v1).
func RegisterRoutes(r gin.IRouter, h Handler) {
	items := r.Group("/items")
	{
		items.GET("", h.List)
		items.POST("", h.Create)
		items.PUT("/:id", h.Update)
		items.DELETE("/:id", h.Delete)
	}
}

// RegisterSecureRoutes maps the paginated item API (v2); every route requires a bearer token.
func RegisterSecureRoutes(r gin.IRouter, h Handler, mw middleware.Middleware) {
	items := r.Group("/items", mw.Auth())
	{
		items.GET("", h.ListPage)
		items.POST("", h.Create)
		items.PUT("/:id", h.Update)
		items.DELETE("/:id", h.Delete)
	}
}

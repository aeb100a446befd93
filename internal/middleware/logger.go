package middleware

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"inventory-service/pkg/log"
)

const requestIDHeader = "X-Request-ID"

// RequestLogger tags the request with an id and logs its outcome.
func (m Middleware) RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		reqID := c.GetHeader(requestIDHeader)
		if reqID == "" {
			reqID = uuid.NewString()
		}
		c.Header(requestIDHeader, reqID)
		c.Request = c.Request.WithContext(context.WithValue(c.Request.Context(), log.RequestIDKey, reqID))

		c.Next()

		ctx := c.Request.Context()
		status := c.Writer.Status()
		switch {
		case status >= 500:
			m.l.Errorf(ctx, "%s %s %d %s %v", c.Request.Method, c.Request.URL.Path, status, time.Since(start), c.Errors.String())
		default:
			m.l.Infof(ctx, "%s %s %d %s", c.Request.Method, c.Request.URL.Path, status, time.Since(start))
		}
	}
}

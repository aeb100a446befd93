package middleware

import (
	"context"
	"strings"

	"github.com/gin-gonic/gin"

	"inventory-service/pkg/log"
	"inventory-service/pkg/response"
)

const bearerScheme = "Bearer"

// Auth rejects the request with 401 unless it carries a valid, unexpired bearer token.
func (m Middleware) Auth() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		token, ok := bearerToken(c.GetHeader("Authorization"))
		if !ok || m.jwtManager == nil {
			m.l.Debugf(ctx, "middleware.Auth: missing or malformed Authorization header")
			response.Unauthorized(c)
			return
		}

		payload, err := m.jwtManager.Verify(token)
		if err != nil {
			m.l.Infof(ctx, "middleware.Auth: %v", err)
			response.Unauthorized(c)
			return
		}

		c.Request = c.Request.WithContext(context.WithValue(ctx, log.SubjectKey, payload.Subject))
		c.Next()
	}
}


func bearerToken(header string) (string, bool) {
	scheme, token, found := strings.Cut(strings.TrimSpace(header), " ")
	if !found || !strings.EqualFold(scheme, bearerScheme) {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}

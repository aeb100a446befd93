package response

import (
	"net/http"

	"github.com/gin-gonic/gin"

	pkgErrors "inventory-service/pkg/errors"
)

// OK sends 200 JSON with data.
func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, data)
}

// Status sends an acknowledgement body {"status": status} with the given code.
func Status(c *gin.Context, code int, status string) {
	c.JSON(code, StatusResp{Status: status})
}

// Error sends the status code and message carried by an HTTPError.
// Any other error is answered with 500 and a generic message.
func Error(c *gin.Context, err error) {
	if he, ok := pkgErrors.AsHTTPError(err); ok {
		c.AbortWithStatusJSON(he.StatusCode, ErrorResp{Error: he.Message})
		return
	}
	InternalError(c, err)
}

// InternalError sends 500 internal server error.
func InternalError(c *gin.Context, err error) {
	if err != nil {
		_ = c.Error(err)
	}
	c.AbortWithStatusJSON(http.StatusInternalServerError, ErrorResp{Error: DefaultErrorMessage})
}

// Unauthorized sends 401 response.
func Unauthorized(c *gin.Context) {
	Error(c, pkgErrors.ErrUnauthorized)
}

// TooManyRequests sends 429 response.
func TooManyRequests(c *gin.Context) {
	Error(c, pkgErrors.ErrTooManyRequests)
}

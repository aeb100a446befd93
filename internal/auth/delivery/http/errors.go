package http

import (
	"errors"
	"net/http"

	"inventory-service/internal/auth"
	pkgErrors "inventory-service/pkg/errors"
)

// mapError translates auth errors into HTTP errors from pkg/errors.
// Every credential failure, including an incomplete body, is a 401.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, auth.ErrMissingCredentials):
		return pkgErrors.NewHTTPError(http.StatusUnauthorized, auth.ErrMissingCredentials.Error())
	case errors.Is(err, auth.ErrInvalidCredentials):
		return pkgErrors.NewHTTPError(http.StatusUnauthorized, auth.ErrInvalidCredentials.Error())
	default:
		return pkgErrors.ErrInternalServerError
	}
}

package http

import (
	"errors"
	"net/http"

	"inventory-service/internal/item"
	pkgErrors "inventory-service/pkg/errors"
)

// mapError translates domain/use-case errors into HTTP errors from pkg/errors.
// Anything unmapped is a storage fault and becomes a 500.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, item.ErrMissingFields):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, "missing fields")
	case errors.Is(err, item.ErrInvalidInput):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.Is(err, errInvalidID):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, errInvalidID.Error())
	case errors.Is(err, item.ErrItemExists):
		return pkgErrors.NewHTTPError(http.StatusConflict, "item exists")
	case errors.Is(err, item.ErrItemNotFound):
		return pkgErrors.NewHTTPError(http.StatusNotFound, "not found")
	default:
		return pkgErrors.ErrInternalServerError
	}
}

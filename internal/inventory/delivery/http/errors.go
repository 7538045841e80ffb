package http

import (
	"errors"
	"net/http"

	"preference-service/internal/inventory"
	pkgErrors "preference-service/pkg/errors"
)

var (
	errInventoryNotFound = pkgErrors.NewHTTPError(http.StatusNotFound, "inventory not found")
	errDuplicateName     = pkgErrors.NewHTTPError(http.StatusConflict, "inventory name already exists")
	errEmptyCollection   = pkgErrors.NewHTTPError(http.StatusConflict, "inventory has no shirts to give away")
	errIDRequired        = pkgErrors.NewHTTPError(http.StatusBadRequest, "id is required")
)

// mapError translates domain/use-case errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, inventory.ErrInventoryNotFound):
		return errInventoryNotFound
	case errors.Is(err, inventory.ErrDuplicateName):
		return errDuplicateName
	case errors.Is(err, inventory.ErrEmptyCollection):
		return errEmptyCollection
	case errors.Is(err, inventory.ErrInvalidColor), errors.Is(err, inventory.ErrInvalidStrategy):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, err.Error())
	default:
		return pkgErrors.ErrInternalServerError
	}
}

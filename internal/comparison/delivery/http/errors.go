package http

import (
	"errors"

	"insight-srv/internal/account"
	"insight-srv/internal/comparison"
	pkgErrors "insight-srv/pkg/errors"
)

var (
	errAccountNotFound = pkgErrors.NewHTTPError(
		404, "Account not found",
	)
	errInvalidPeriod = pkgErrors.NewHTTPError(
		400, "Invalid period",
	)
)

func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, account.ErrNotFound):
		return errAccountNotFound
	case errors.Is(err, comparison.ErrInvalidPeriod):
		return errInvalidPeriod
	default:
		panic(err)
	}
}

package http

import (
	"errors"

	"insight-srv/internal/account"
	"insight-srv/internal/export"
	pkgErrors "insight-srv/pkg/errors"
)

var (
	errAccountNotFound = pkgErrors.NewHTTPError(
		404, "Account not found",
	)
	errExportNotFound = pkgErrors.NewHTTPError(
		404, "Export not found",
	)
	errNoData = pkgErrors.NewHTTPError(
		422, "No insight data to export, run a sync first",
	)
)

func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, account.ErrNotFound):
		return errAccountNotFound
	case errors.Is(err, export.ErrNotFound):
		return errExportNotFound
	case errors.Is(err, export.ErrNoData):
		return errNoData
	default:
		panic(err)
	}
}

package http

import (
	"errors"

	"insight-srv/internal/account"
	pkgErrors "insight-srv/pkg/errors"
)

var (
	errWrongBody = pkgErrors.NewHTTPError(
		400, "Wrong body",
	)
	errNotFound = pkgErrors.NewHTTPError(
		404, "Account not found",
	)
	errInvalidToken = pkgErrors.NewHTTPError(
		422, "Access token rejected by the provider",
	)
	errTokenExpired = pkgErrors.NewHTTPError(
		409, "Access token expired, please reconnect the account",
	)
	errAlreadyConnected = pkgErrors.NewHTTPError(
		409, "This Instagram account is already connected by another user",
	)
)

func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, account.ErrNotFound):
		return errNotFound
	case errors.Is(err, account.ErrInvalidToken):
		return errInvalidToken
	case errors.Is(err, account.ErrTokenExpired):
		return errTokenExpired
	case errors.Is(err, account.ErrAlreadyConnected):
		return errAlreadyConnected
	default:
		panic(err)
	}
}

package http

import (
	"errors"

	"insight-srv/internal/insights"
	pkgErrors "insight-srv/pkg/errors"
)

var (
	errAccountNotFound = pkgErrors.NewHTTPError(
		404, "Account not found",
	)
	errMediaNotFound = pkgErrors.NewHTTPError(
		404, "Media not found",
	)
	errTokenExpired = pkgErrors.NewHTTPError(
		409, "Access token expired, please reconnect the account",
	)
	errInvalidPeriod = pkgErrors.NewHTTPError(
		400, "Invalid period",
	)
	errInvalidRankBy = pkgErrors.NewHTTPError(
		400, "Invalid ranking key (expected score, reach or views)",
	)
	errSyncInProgress = pkgErrors.NewHTTPError(
		409, "A sync for this account is already in progress",
	)
)

func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, insights.ErrAccountNotFound):
		return errAccountNotFound
	case errors.Is(err, insights.ErrMediaNotFound):
		return errMediaNotFound
	case errors.Is(err, insights.ErrTokenExpired):
		return errTokenExpired
	case errors.Is(err, insights.ErrInvalidPeriod):
		return errInvalidPeriod
	case errors.Is(err, insights.ErrInvalidRankBy):
		return errInvalidRankBy
	case errors.Is(err, insights.ErrSyncInProgress):
		return errSyncInProgress
	default:
		panic(err)
	}
}

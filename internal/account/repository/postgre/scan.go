package postgre

import (
	"database/sql"

	"insight-srv/internal/model"
)

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanAccount(row rowScanner) (model.Account, error) {
	var acc model.Account
	var lastSyncedAt sql.NullTime

	if err := row.Scan(
		&acc.ID, &acc.IGUserID, &acc.Username, &acc.Name,
		&acc.FollowersCount, &acc.MediaCount,
		&acc.ProfilePictureURL, &acc.TokenStatus, &acc.ConnectedBy,
		&lastSyncedAt, &acc.CreatedAt, &acc.UpdatedAt,
	); err != nil {
		return model.Account{}, err
	}

	if lastSyncedAt.Valid {
		acc.LastSyncedAt = &lastSyncedAt.Time
	}
	return acc, nil
}

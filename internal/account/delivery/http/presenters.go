package http

import (
	"time"

	"insight-srv/internal/model"
	"insight-srv/pkg/paginator"
)

type connectReq struct {
	IGUserID    string `json:"ig_user_id" binding:"required"`
	AccessToken string `json:"access_token" binding:"required"`
}

type getListReq struct {
	paginator.PaginateQuery
}

type connectResp struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Existing bool   `json:"existing"`
}

type accountResp struct {
	ID                string  `json:"id"`
	IGUserID          string  `json:"ig_user_id"`
	Username          string  `json:"username"`
	Name              string  `json:"name"`
	FollowersCount    int64   `json:"followers_count"`
	MediaCount        int64   `json:"media_count"`
	ProfilePictureURL string  `json:"profile_picture_url"`
	TokenStatus       string  `json:"token_status"`
	LastSyncedAt      *string `json:"last_synced_at"`
	CreatedAt         string  `json:"created_at"`
}

type listResp struct {
	Items     []accountResp               `json:"items"`
	Paginator paginator.PaginatorResponse `json:"paginator"`
}

func newAccountResp(acc model.Account) accountResp {
	resp := accountResp{
		ID:                acc.ID,
		IGUserID:          acc.IGUserID,
		Username:          acc.Username,
		Name:              acc.Name,
		FollowersCount:    acc.FollowersCount,
		MediaCount:        acc.MediaCount,
		ProfilePictureURL: acc.ProfilePictureURL,
		TokenStatus:       acc.TokenStatus,
		CreatedAt:         acc.CreatedAt.Format(time.RFC3339),
	}
	if acc.LastSyncedAt != nil {
		formatted := acc.LastSyncedAt.Format(time.RFC3339)
		resp.LastSyncedAt = &formatted
	}
	return resp
}

func newAccountResps(accounts []model.Account) []accountResp {
	resps := make([]accountResp, 0, len(accounts))
	for _, acc := range accounts {
		resps = append(resps, newAccountResp(acc))
	}
	return resps
}

package usecase

import (
	"insight-srv/internal/account/repository"
	"insight-srv/pkg/graphapi"
)

func toProfileOptions(p *graphapi.Profile) repository.UpdateProfileOptions {
	return repository.UpdateProfileOptions{
		Username:          p.Username,
		Name:              p.Name,
		FollowersCount:    p.FollowersCount,
		MediaCount:        p.MediaCount,
		ProfilePictureURL: p.ProfilePictureURL,
	}
}

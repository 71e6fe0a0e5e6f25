package usecase

import (
	"insight-srv/internal/account"
	"insight-srv/internal/account/repository"
	"insight-srv/pkg/encrypter"
	"insight-srv/pkg/graphapi"
	"insight-srv/pkg/log"
)

type implUseCase struct {
	repo        repository.Repository
	graphClient graphapi.IClient
	encrypter   encrypter.Encrypter
	l           log.Logger
}

// New - Factory function
func New(
	repo repository.Repository,
	graphClient graphapi.IClient,
	enc encrypter.Encrypter,
	l log.Logger,
) account.UseCase {
	return &implUseCase{
		repo:        repo,
		graphClient: graphClient,
		encrypter:   enc,
		l:           l,
	}
}

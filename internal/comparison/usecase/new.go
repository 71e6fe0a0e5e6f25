package usecase

import (
	"insight-srv/internal/account"
	"insight-srv/internal/comparison"
	insightsRepo "insight-srv/internal/insights/repository"
	"insight-srv/pkg/log"
)

type implUseCase struct {
	insightsRepo insightsRepo.Repository
	accountUC    account.UseCase
	l            log.Logger
}

// New - Factory function
func New(repo insightsRepo.Repository, accountUC account.UseCase, l log.Logger) comparison.UseCase {
	return &implUseCase{
		insightsRepo: repo,
		accountUC:    accountUC,
		l:            l,
	}
}

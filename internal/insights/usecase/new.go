package usecase

import (
	"time"

	"insight-srv/internal/account"
	"insight-srv/internal/insights"
	"insight-srv/internal/insights/repository"
	"insight-srv/pkg/graphapi"
	"insight-srv/pkg/log"
)

// Config tunes scoring, sync fan-out and cache lifetimes.
type Config struct {
	Weights        insights.ScoreWeights
	MediaLimit     int
	MaxConcurrency int
	TopContentSize int
	DashboardTTL   time.Duration
	MediaTTL       time.Duration
}

// DefaultConfig returns the standard tuning. The 1/2/3/4 score weights are
// editorial ranking policy, not a measured quantity.
func DefaultConfig() Config {
	return Config{
		Weights: insights.ScoreWeights{
			Like:    1,
			Comment: 2,
			Save:    3,
			Share:   4,
		},
		MediaLimit:     insights.DefaultMediaLimit,
		MaxConcurrency: insights.MaxConcurrency,
		TopContentSize: 10,
		DashboardTTL:   5 * time.Minute,
		MediaTTL:       10 * time.Minute,
	}
}

// implUseCase - Implementation of the UseCase interface
type implUseCase struct {
	repo        repository.Repository
	cacheRepo   repository.CacheRepository
	accountUC   account.UseCase
	graphClient graphapi.IClient
	publisher   insights.Publisher
	l           log.Logger
	cfg         Config
}

// New - Factory function
func New(
	repo repository.Repository,
	cacheRepo repository.CacheRepository,
	accountUC account.UseCase,
	graphClient graphapi.IClient,
	publisher insights.Publisher,
	l log.Logger,
	cfg Config,
) insights.UseCase {
	if cfg.MaxConcurrency <= 0 {
		cfg.MaxConcurrency = insights.MaxConcurrency
	}
	if cfg.MediaLimit <= 0 {
		cfg.MediaLimit = insights.DefaultMediaLimit
	}
	if cfg.TopContentSize <= 0 {
		cfg.TopContentSize = 10
	}

	return &implUseCase{
		repo:        repo,
		cacheRepo:   cacheRepo,
		accountUC:   accountUC,
		graphClient: graphClient,
		publisher:   publisher,
		l:           l,
		cfg:         cfg,
	}
}

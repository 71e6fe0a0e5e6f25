package usecase

import (
	"insight-srv/internal/account"
	"insight-srv/internal/export"
	"insight-srv/internal/export/repository"
	insightsRepo "insight-srv/internal/insights/repository"
	"insight-srv/pkg/log"
	"insight-srv/pkg/minio"
)

// Config holds the export usecase settings.
type Config struct {
	Bucket string
}

type implUseCase struct {
	repo         repository.Repository
	insightsRepo insightsRepo.Repository
	accountUC    account.UseCase
	minioClient  minio.MinIO
	l            log.Logger
	cfg          Config
}

// New - Factory function
func New(
	repo repository.Repository,
	insRepo insightsRepo.Repository,
	accountUC account.UseCase,
	minioClient minio.MinIO,
	l log.Logger,
	cfg Config,
) export.UseCase {
	return &implUseCase{
		repo:         repo,
		insightsRepo: insRepo,
		accountUC:    accountUC,
		minioClient:  minioClient,
		l:            l,
		cfg:          cfg,
	}
}

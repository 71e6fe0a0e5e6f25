package redis

import (
	"time"

	"insight-srv/internal/insights/repository"
	"insight-srv/pkg/log"
	pkgRedis "insight-srv/pkg/redis"
)

// Config holds the cache lifetimes.
type Config struct {
	DashboardTTL time.Duration
	MediaTTL     time.Duration
	SyncLockTTL  time.Duration
}

// DefaultConfig returns the standard cache tuning.
func DefaultConfig() Config {
	return Config{
		DashboardTTL: 5 * time.Minute,
		MediaTTL:     10 * time.Minute,
		SyncLockTTL:  15 * time.Minute,
	}
}

type implCacheRepository struct {
	redis pkgRedis.IRedis
	l     log.Logger
	cfg   Config
}

// New - Factory
func New(redis pkgRedis.IRedis, l log.Logger, cfg Config) repository.CacheRepository {
	if cfg.DashboardTTL <= 0 {
		cfg.DashboardTTL = 5 * time.Minute
	}
	if cfg.MediaTTL <= 0 {
		cfg.MediaTTL = 10 * time.Minute
	}
	if cfg.SyncLockTTL <= 0 {
		cfg.SyncLockTTL = 15 * time.Minute
	}

	return &implCacheRepository{
		redis: redis,
		l:     l,
		cfg:   cfg,
	}
}

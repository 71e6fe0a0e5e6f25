package redis

import (
	"context"
	"errors"
	"fmt"

	"insight-srv/internal/insights/repository"

	goredis "github.com/redis/go-redis/v9"
)

// Key layout:
//   dashboard:<account>:<period>   serialized dashboard output
//   media_list:<key>               serialized media page
//   sync_lock:<account>            in-flight sync marker

func dashboardKey(accountID string, periodDays int) string {
	return fmt.Sprintf("dashboard:%s:%d", accountID, periodDays)
}

func mediaListKey(key string) string {
	return fmt.Sprintf("media_list:%s", key)
}

func syncLockKey(accountID string) string {
	return fmt.Sprintf("sync_lock:%s", accountID)
}

func (r *implCacheRepository) GetDashboard(ctx context.Context, accountID string, periodDays int) ([]byte, error) {
	data, err := r.redis.Get(ctx, dashboardKey(accountID, periodDays))
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return nil, repository.ErrCacheMiss
		}
		return nil, err
	}
	return []byte(data), nil
}

func (r *implCacheRepository) SetDashboard(ctx context.Context, accountID string, periodDays int, data []byte) error {
	if err := r.redis.Set(ctx, dashboardKey(accountID, periodDays), data, r.cfg.DashboardTTL); err != nil {
		r.l.Errorf(ctx, "insights.repository.redis.SetDashboard: Failed to save to cache: %v", err)
		return err
	}
	return nil
}

func (r *implCacheRepository) GetMediaList(ctx context.Context, key string) ([]byte, error) {
	data, err := r.redis.Get(ctx, mediaListKey(key))
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return nil, repository.ErrCacheMiss
		}
		return nil, err
	}
	return []byte(data), nil
}

func (r *implCacheRepository) SetMediaList(ctx context.Context, key string, data []byte) error {
	if err := r.redis.Set(ctx, mediaListKey(key), data, r.cfg.MediaTTL); err != nil {
		r.l.Errorf(ctx, "insights.repository.redis.SetMediaList: Failed to save to cache: %v", err)
		return err
	}
	return nil
}

// InvalidateAccount drops every cached view derived from the account's
// snapshots. Runs after each sync so readers see fresh numbers.
func (r *implCacheRepository) InvalidateAccount(ctx context.Context, accountID string) error {
	patterns := []string{
		fmt.Sprintf("dashboard:%s:*", accountID),
		fmt.Sprintf("media_list:%s:*", accountID),
	}
	for _, pattern := range patterns {
		if err := r.redis.DeleteByPattern(ctx, pattern); err != nil {
			r.l.Errorf(ctx, "insights.repository.redis.InvalidateAccount: Failed to invalidate %s: %v", pattern, err)
			return err
		}
	}
	return nil
}

// AcquireSyncLock uses SET NX with a TTL so a crashed consumer cannot hold
// the lock forever.
func (r *implCacheRepository) AcquireSyncLock(ctx context.Context, accountID string) (bool, error) {
	return r.redis.GetClient().SetNX(ctx, syncLockKey(accountID), "1", r.cfg.SyncLockTTL).Result()
}

func (r *implCacheRepository) ReleaseSyncLock(ctx context.Context, accountID string) error {
	return r.redis.Delete(ctx, syncLockKey(accountID))
}

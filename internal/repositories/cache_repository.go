package repositories

import (
	"context"
	"time"
)

// CacheRepositoryInterface is the key-value surface backing login
// throttling, one-time tokens and session persistence. Its Set/Get/Del
// subset structurally satisfies session.Cache, so a single Redis client
// serves both concerns.
type CacheRepositoryInterface interface {
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error
	Get(ctx context.Context, key string) (string, error)
	Del(ctx context.Context, key ...string) error
	Incr(ctx context.Context, key string) (int64, error)
	Expire(ctx context.Context, key string, expiration time.Duration) (bool, error)
}

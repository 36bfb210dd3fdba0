package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/oereb-service/internal/domain/repository"
	pkgerrors "github.com/oereb-service/internal/pkg/errors"
)

type cacheRepository struct {
	client *redis.Client
	prefix string
	logger *zap.Logger
}

// NewCacheRepository создает кеш поверх Redis. Все ключи получают префикс prefix,
// чтобы несколько развертываний могли делить одну базу Redis.
func NewCacheRepository(r *Redis, prefix string) repository.CacheRepository {
	return &cacheRepository{
		client: r.client,
		prefix: prefix,
		logger: r.logger.With(zap.String("cache_prefix", prefix)),
	}
}

var _ repository.CacheRepository = (*cacheRepository)(nil)

func (r *cacheRepository) Get(ctx context.Context, key string) ([]byte, error) {
	val, err := r.client.Get(ctx, r.prefix+key).Bytes()
	switch {
	case errors.Is(err, redis.Nil):
		r.logger.Debug("Cache miss", zap.String("key", key))
		return nil, nil
	case err != nil:
		return nil, fmt.Errorf("%w: get %s: %v", pkgerrors.ErrCacheError, key, err)
	}
	r.logger.Debug("Cache hit", zap.String("key", key), zap.Int("bytes", len(val)))
	return val, nil
}

func (r *cacheRepository) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if err := r.client.Set(ctx, r.prefix+key, value, ttl).Err(); err != nil {
		return fmt.Errorf("%w: set %s: %v", pkgerrors.ErrCacheError, key, err)
	}
	return nil
}

func (r *cacheRepository) Delete(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	full := make([]string, len(keys))
	for i, k := range keys {
		full[i] = r.prefix + k
	}
	removed, err := r.client.Del(ctx, full...).Result()
	if err != nil {
		return fmt.Errorf("%w: delete %v: %v", pkgerrors.ErrCacheError, keys, err)
	}
	r.logger.Debug("Cache keys deleted", zap.Strings("keys", keys), zap.Int64("removed", removed))
	return nil
}

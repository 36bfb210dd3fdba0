package cache_test

import (
	"context"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	pkgerrors "github.com/oereb-service/internal/pkg/errors"
	"github.com/oereb-service/internal/repository/cache"
)

// getTestRedisClient creates a Redis client for testing
func getTestRedisClient(t *testing.T) *redis.Client {
	client := redis.NewClient(&redis.Options{
		Addr: "localhost:6379",
		DB:   1, // Use DB 1 for tests
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		t.Skipf("Redis not available for integration tests: %v", err)
	}
	return client
}

func TestCacheRepository_SetGetDelete(t *testing.T) {
	client := getTestRedisClient(t)
	defer client.Close()

	ctx := context.Background()
	repo := cache.NewCacheRepository(cache.NewRedisForTest(client, zap.NewNop()), "test:oereb:")
	defer client.Del(ctx, "test:oereb:egrid")

	miss, err := repo.Get(ctx, "egrid")
	require.NoError(t, err)
	assert.Nil(t, miss)

	require.NoError(t, repo.Set(ctx, "egrid", []byte("CH113928077734"), time.Minute))

	hit, err := repo.Get(ctx, "egrid")
	require.NoError(t, err)
	assert.Equal(t, []byte("CH113928077734"), hit)

	// ключ хранится с префиксом
	raw, err := client.Get(ctx, "test:oereb:egrid").Bytes()
	require.NoError(t, err)
	assert.Equal(t, "CH113928077734", string(raw))

	require.NoError(t, repo.Delete(ctx, "egrid", "absent"))
	miss, err = repo.Get(ctx, "egrid")
	require.NoError(t, err)
	assert.Nil(t, miss)
}

func TestCacheRepository_ConnectionErrorIsCacheError(t *testing.T) {
	client := redis.NewClient(&redis.Options{Addr: "127.0.0.1:1", DialTimeout: 100 * time.Millisecond, MaxRetries: -1})
	defer client.Close()

	repo := cache.NewCacheRepository(cache.NewRedisForTest(client, nil), "test:")
	_, err := repo.Get(context.Background(), "egrid")
	require.Error(t, err)
	assert.ErrorIs(t, err, pkgerrors.ErrCacheError)
}

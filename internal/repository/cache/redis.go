package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/oereb-service/internal/config"
)

const (
	dialTimeout = 3 * time.Second
	ioTimeout   = time.Second
)

// Redis - подключение к Redis, используемому как кеш участков.
// Таймауты короткие: недоступный кеш не должен задерживать выписку.
type Redis struct {
	client *redis.Client
	logger *zap.Logger
}

// NewRedis подключается к Redis и проверяет соединение в пределах ctx
func NewRedis(ctx context.Context, cfg *config.RedisConfig, logger *zap.Logger) (*Redis, error) {
	addr := fmt.Sprintf("%s:%d", cfg.Host, cfg.Port)
	client := redis.NewClient(&redis.Options{
		Addr:         addr,
		Password:     cfg.Password,
		DB:           cfg.DB,
		DialTimeout:  dialTimeout,
		ReadTimeout:  ioTimeout,
		WriteTimeout: ioTimeout,
	})

	pingCtx, cancel := context.WithTimeout(ctx, dialTimeout)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("connect to redis %s: %w", addr, err)
	}

	logger.Info("Redis connected", zap.String("addr", addr), zap.Int("db", cfg.DB))
	return &Redis{client: client, logger: logger}, nil
}

func (r *Redis) Close() error {
	r.logger.Info("Closing Redis connection")
	return r.client.Close()
}

// Health используется проверкой /health
func (r *Redis) Health(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}

// NewRedisForTest оборачивает готовый клиент
func NewRedisForTest(client *redis.Client, logger *zap.Logger) *Redis {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Redis{client: client, logger: logger}
}

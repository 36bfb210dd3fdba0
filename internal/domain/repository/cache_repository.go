package repository

import (
	"context"
	"time"
)

// CacheRepository - хранилище сериализованных значений с TTL.
// Промах кеша возвращает nil без ошибки, ошибки соединения оборачивают errors.ErrCacheError.
type CacheRepository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	// Delete удаляет ключи; отсутствующие ключи не считаются ошибкой
	Delete(ctx context.Context, keys ...string) error
}

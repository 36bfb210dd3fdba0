package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/encoding/wkb"
	"go.uber.org/zap"

	"github.com/oereb-service/internal/domain"
	"github.com/oereb-service/internal/domain/repository"
)

const realEstateKeyPrefix = "real_estate:egrid:"

type realEstateCache struct {
	next   repository.RealEstateRepository
	cache  repository.CacheRepository
	ttl    time.Duration
	logger *zap.Logger
}

// NewRealEstateCache кеширует поиск участка по EGRID. Остальные запросы
// передаются в next без изменений. Ошибки кеша не прерывают запрос.
func NewRealEstateCache(
	next repository.RealEstateRepository,
	cache repository.CacheRepository,
	ttl time.Duration,
	logger *zap.Logger,
) repository.RealEstateRepository {
	return &realEstateCache{
		next:   next,
		cache:  cache,
		ttl:    ttl,
		logger: logger,
	}
}

var _ repository.RealEstateRepository = (*realEstateCache)(nil)

// cachedRealEstate - участок в кеше; граница хранится в WKB
type cachedRealEstate struct {
	domain.RealEstate
	LimitWKB []byte `json:"limit_wkb"`
}

func (c *realEstateCache) GetByEGRID(ctx context.Context, egrid string) (*domain.RealEstate, error) {
	key := realEstateKeyPrefix + egrid

	data, err := c.cache.Get(ctx, key)
	if err != nil {
		c.logger.Warn("Real estate cache unavailable", zap.String("egrid", egrid), zap.Error(err))
	}
	if len(data) > 0 {
		re, err := decodeRealEstate(data)
		if err == nil {
			return re, nil
		}
		c.logger.Warn("Dropping corrupted real estate cache entry", zap.String("egrid", egrid), zap.Error(err))
		_ = c.cache.Delete(ctx, key)
	}

	re, err := c.next.GetByEGRID(ctx, egrid)
	if err != nil {
		return nil, err
	}

	if data, err := encodeRealEstate(re); err != nil {
		c.logger.Warn("Failed to encode real estate for cache", zap.String("egrid", egrid), zap.Error(err))
	} else if err := c.cache.Set(ctx, key, data, c.ttl); err != nil {
		c.logger.Warn("Failed to cache real estate", zap.String("egrid", egrid), zap.Error(err))
	}
	return re, nil
}

func (c *realEstateCache) GetByNumber(ctx context.Context, identDN, number string) ([]*domain.RealEstate, error) {
	return c.next.GetByNumber(ctx, identDN, number)
}

func (c *realEstateCache) FindByPoint(ctx context.Context, point orb.Point) ([]*domain.RealEstate, error) {
	return c.next.FindByPoint(ctx, point)
}

func encodeRealEstate(re *domain.RealEstate) ([]byte, error) {
	entry := cachedRealEstate{RealEstate: *re}
	if len(re.Limit) > 0 {
		limit, err := wkb.Marshal(re.Limit)
		if err != nil {
			return nil, err
		}
		entry.LimitWKB = limit
	}
	return json.Marshal(entry)
}

func decodeRealEstate(data []byte) (*domain.RealEstate, error) {
	var entry cachedRealEstate
	if err := json.Unmarshal(data, &entry); err != nil {
		return nil, err
	}
	re := entry.RealEstate
	if len(entry.LimitWKB) > 0 {
		g, err := wkb.Unmarshal(entry.LimitWKB)
		if err != nil {
			return nil, err
		}
		switch v := g.(type) {
		case orb.MultiPolygon:
			re.Limit = v
		case orb.Polygon:
			re.Limit = orb.MultiPolygon{v}
		}
	}
	return &re, nil
}

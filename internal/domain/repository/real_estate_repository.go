package repository

import (
	"context"

	"github.com/paulmach/orb"

	"github.com/oereb-service/internal/domain"
)

// RealEstateRepository определяет методы поиска земельных участков
type RealEstateRepository interface {
	// GetByEGRID возвращает участок по федеральному идентификатору EGRID
	GetByEGRID(ctx context.Context, egrid string) (*domain.RealEstate, error)

	// GetByNumber возвращает участки по идентификатору кадастрового округа и номеру участка
	GetByNumber(ctx context.Context, identDN, number string) ([]*domain.RealEstate, error)

	// FindByPoint возвращает участки, содержащие точку (в системе координат кадастра)
	FindByPoint(ctx context.Context, point orb.Point) ([]*domain.RealEstate, error)
}

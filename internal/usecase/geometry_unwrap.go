package usecase

import (
	"time"

	"github.com/paulmach/orb"
	"go.uber.org/zap"

	"github.com/oereb-service/internal/domain"
	"github.com/oereb-service/internal/pkg/geometry"
)

// UnwrapGeometry раскладывает геометрию ограничения на элементарные RestrictionGeometry
// с общими правовым статусом, сроком действия и метаданными.
//
// Коллекция из нескольких элементов возвращает geometry.ErrUnsupportedGeometry.
// Неизвестный вид геометрии логируется и отбрасывается без ошибки.
func UnwrapGeometry(
	lawStatus domain.LawStatus,
	publishedFrom time.Time,
	publishedUntil *time.Time,
	geom orb.Geometry,
	metadata string,
	logger *zap.Logger,
) ([]*domain.RestrictionGeometry, error) {
	if geometry.KindOf(geom) == geometry.KindUnknown {
		logger.Warn("Dropping geometry of unsupported kind", zap.String("geo_metadata", metadata))
		return nil, nil
	}

	parts, err := geometry.Explode(geom)
	if err != nil {
		return nil, err
	}

	result := make([]*domain.RestrictionGeometry, 0, len(parts))
	for _, part := range parts {
		result = append(result, &domain.RestrictionGeometry{
			Geom:           part,
			LawStatus:      lawStatus,
			PublishedFrom:  publishedFrom,
			PublishedUntil: publishedUntil,
			GeoMetadata:    metadata,
		})
	}
	return result, nil
}

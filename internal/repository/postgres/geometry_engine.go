package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/paulmach/orb"
	"go.uber.org/zap"

	"github.com/oereb-service/internal/pkg/geometry"
)

type geometryEngine struct {
	db     *sqlx.DB
	logger *zap.Logger
}

// NewGeometryEngine создает движок пересечения геометрий на PostGIS.
// Геометрии передаются в WKB, пустой результат возвращается как NULL.
func NewGeometryEngine(db *DB) geometry.Engine {
	return &geometryEngine{
		db:     db.DB,
		logger: db.logger,
	}
}

var _ geometry.Engine = (*geometryEngine)(nil)

const emptyAsNull = `
	SELECT CASE WHEN r IS NULL OR ST_IsEmpty(r) THEN NULL ELSE ST_AsBinary(r) END
	FROM (SELECT %s AS r) s`

func (e *geometryEngine) Intersection(ctx context.Context, a, b orb.Geometry) (orb.Geometry, error) {
	return e.eval(ctx, "ST_Intersection(ST_GeomFromWKB($1), ST_GeomFromWKB($2))", a, b)
}

func (e *geometryEngine) LineMerge(ctx context.Context, lines orb.MultiLineString) (orb.Geometry, error) {
	return e.eval(ctx, "ST_LineMerge(ST_GeomFromWKB($1))", lines)
}

func (e *geometryEngine) UnaryUnion(ctx context.Context, polygons orb.MultiPolygon) (orb.Geometry, error) {
	return e.eval(ctx, "ST_UnaryUnion(ST_GeomFromWKB($1))", polygons)
}

func (e *geometryEngine) eval(ctx context.Context, expr string, geoms ...orb.Geometry) (orb.Geometry, error) {
	args := make([]interface{}, 0, len(geoms))
	for _, g := range geoms {
		data, err := encodeGeometry(g)
		if err != nil {
			return nil, err
		}
		args = append(args, data)
	}

	var result []byte
	if err := e.db.QueryRowxContext(ctx, fmt.Sprintf(emptyAsNull, expr), args...).Scan(&result); err != nil {
		e.logger.Error("postgis geometry operation failed", zap.String("expr", expr), zap.Error(err))
		return nil, fmt.Errorf("postgis %s: %w", expr, err)
	}
	return decodeGeometry(result)
}

package geometry

import (
	"context"

	"github.com/paulmach/orb"
)

// Engine - вычислительная геометрия, которой нет в orb (пересечение произвольных фигур).
// Пустой результат возвращается как nil геометрия.
type Engine interface {
	// Intersection возвращает пересечение a и b
	Intersection(ctx context.Context, a, b orb.Geometry) (orb.Geometry, error)

	// LineMerge сливает соприкасающиеся линии в минимальный набор линий
	LineMerge(ctx context.Context, lines orb.MultiLineString) (orb.Geometry, error)

	// UnaryUnion объединяет полигоны в одну площадную геометрию
	UnaryUnion(ctx context.Context, polygons orb.MultiPolygon) (orb.Geometry, error)
}

package geometry

import (
	"context"
	"fmt"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
	"go.uber.org/zap"
)

// Thresholds - минимальные длина и площадь пересечения, при которых геометрия затрагивает участок
type Thresholds struct {
	MinLength float64
	MinArea   float64
}

// Share - измеренная доля геометрии на участке.
// Value - количество точек, длина или площадь в зависимости от Class.
type Share struct {
	Class Class
	Value float64
}

// Result - результат клиппинга одной геометрии. Share заполнен только при Passed.
type Result struct {
	Passed bool
	Share  Share
}

// Clipper пересекает геометрии с границей участка и проверяет пороги
type Clipper struct {
	engine Engine
	types  TypeTable
	logger *zap.Logger
}

// NewClipper создает новый Clipper
func NewClipper(engine Engine, types TypeTable, logger *zap.Logger) *Clipper {
	if types == nil {
		types = DefaultTypeTable()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Clipper{
		engine: engine,
		types:  types,
		logger: logger,
	}
}

// Types возвращает таблицу классов геометрий
func (c *Clipper) Types() TypeTable {
	return c.types
}

// Clip пересекает g с limit и измеряет результат.
//
// areasRatio компенсирует расхождение между геометрической и зарегистрированной
// площадью участка: площадь пересечения делится на него. Несовпадение размерности
// исходной геометрии и пересечения (например, полигоны касаются по стороне) - это
// не ошибка, а непрошедшая проверка.
func (c *Clipper) Clip(ctx context.Context, g orb.Geometry, limit orb.Geometry, areasRatio float64, th Thresholds) (Result, error) {
	kind := KindOf(g)
	class := c.types.ClassOf(kind)
	if class == ClassNone {
		return Result{}, fmt.Errorf("%w: %s cannot be clipped", ErrUnsupportedGeometry, describe(g))
	}

	intersection, err := c.engine.Intersection(ctx, g, limit)
	if err != nil {
		return Result{}, fmt.Errorf("intersection: %w", err)
	}
	if IsEmpty(intersection) {
		return Result{}, nil
	}

	if KindOf(intersection) == KindCollection {
		intersection, err = c.reduce(ctx, intersection.(orb.Collection), class.Dimension())
		if err != nil {
			return Result{}, err
		}
		if IsEmpty(intersection) {
			return Result{}, nil
		}
	}

	resultClass := c.types.ClassOf(KindOf(intersection))
	if resultClass != class {
		c.logger.Debug("Intersection dimension differs from source geometry",
			zap.String("source", kind.String()),
			zap.String("intersection", KindOf(intersection).String()))
		return Result{}, nil
	}

	switch class {
	case ClassPoint:
		n := countPoints(intersection)
		return Result{Passed: n >= 1, Share: Share{Class: ClassPoint, Value: float64(n)}}.settle(), nil
	case ClassLine:
		length := planar.Length(intersection)
		return Result{Passed: length >= th.MinLength, Share: Share{Class: ClassLine, Value: length}}.settle(), nil
	default:
		if areasRatio <= 0 {
			areasRatio = 1
		}
		area := planar.Area(intersection) / areasRatio
		return Result{Passed: area >= th.MinArea, Share: Share{Class: ClassPolygon, Value: area}}.settle(), nil
	}
}

// settle обнуляет долю у непрошедшей геометрии
func (r Result) settle() Result {
	if !r.Passed {
		return Result{}
	}
	return r
}

// reduce оставляет в коллекции только части заданной размерности и сводит их
// к одной геометрии: точки - в MultiPoint, линии сливаются, полигоны объединяются.
func (c *Clipper) reduce(ctx context.Context, collection orb.Collection, dimension int) (orb.Geometry, error) {
	var (
		points   orb.MultiPoint
		lines    orb.MultiLineString
		polygons orb.MultiPolygon
	)

	var collect func(g orb.Geometry)
	collect = func(g orb.Geometry) {
		if IsEmpty(g) || KindOf(g).Dimension() != dimension && KindOf(g) != KindCollection {
			return
		}
		switch v := g.(type) {
		case orb.Point:
			points = append(points, v)
		case orb.MultiPoint:
			points = append(points, v...)
		case orb.LineString:
			lines = append(lines, v)
		case orb.Ring:
			lines = append(lines, orb.LineString(v))
		case orb.MultiLineString:
			lines = append(lines, v...)
		case orb.Polygon:
			polygons = append(polygons, v)
		case orb.MultiPolygon:
			polygons = append(polygons, v...)
		case orb.Collection:
			for _, m := range v {
				collect(m)
			}
		}
	}
	for _, m := range collection {
		collect(m)
	}

	switch dimension {
	case 0:
		if len(points) == 0 {
			return nil, nil
		}
		return points, nil
	case 1:
		if len(lines) == 0 {
			return nil, nil
		}
		merged, err := c.engine.LineMerge(ctx, lines)
		if err != nil {
			return nil, fmt.Errorf("line merge: %w", err)
		}
		return merged, nil
	default:
		if len(polygons) == 0 {
			return nil, nil
		}
		union, err := c.engine.UnaryUnion(ctx, polygons)
		if err != nil {
			return nil, fmt.Errorf("unary union: %w", err)
		}
		return union, nil
	}
}

func countPoints(g orb.Geometry) int {
	switch v := g.(type) {
	case orb.Point:
		return 1
	case orb.MultiPoint:
		return len(v)
	default:
		return 0
	}
}

package geos

import (
	"context"
	"fmt"
	"sync"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/encoding/wkb"
	gogeos "github.com/twpayne/go-geos"
	"go.uber.org/zap"

	"github.com/oereb-service/internal/pkg/geometry"
)

type engine struct {
	contexts sync.Pool
	logger   *zap.Logger
}

// NewEngine создает геометрический движок на GEOS внутри процесса.
// Контекст GEOS сериализует свои вызовы, поэтому каждая операция берет
// отдельный контекст из пула и все ее геометрии живут в нем.
func NewEngine(logger *zap.Logger) geometry.Engine {
	return &engine{
		contexts: sync.Pool{New: func() interface{} { return gogeos.NewContext() }},
		logger:   logger,
	}
}

var _ geometry.Engine = (*engine)(nil)

func (e *engine) Intersection(ctx context.Context, a, b orb.Geometry) (orb.Geometry, error) {
	return e.run(ctx, "intersection", func(gc *gogeos.Context) (*gogeos.Geom, error) {
		ga, err := fromOrb(gc, a)
		if err != nil {
			return nil, err
		}
		gb, err := fromOrb(gc, b)
		if err != nil {
			return nil, err
		}
		return ga.Intersection(gb), nil
	})
}

func (e *engine) LineMerge(ctx context.Context, lines orb.MultiLineString) (orb.Geometry, error) {
	return e.run(ctx, "line merge", func(gc *gogeos.Context) (*gogeos.Geom, error) {
		g, err := fromOrb(gc, lines)
		if err != nil {
			return nil, err
		}
		return g.LineMerge(), nil
	})
}

func (e *engine) UnaryUnion(ctx context.Context, polygons orb.MultiPolygon) (orb.Geometry, error) {
	return e.run(ctx, "unary union", func(gc *gogeos.Context) (*gogeos.Geom, error) {
		g, err := fromOrb(gc, polygons)
		if err != nil {
			return nil, err
		}
		return g.UnaryUnion(), nil
	})
}

// run выполняет операцию GEOS и переводит результат обратно в orb.
// go-geos сообщает об ошибках GEOS паникой, она превращается в ошибку.
func (e *engine) run(ctx context.Context, op string, fn func(gc *gogeos.Context) (*gogeos.Geom, error)) (result orb.Geometry, err error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	gc := e.contexts.Get().(*gogeos.Context)
	defer e.contexts.Put(gc)

	defer func() {
		if r := recover(); r != nil {
			e.logger.Warn("GEOS operation failed", zap.String("op", op), zap.Any("panic", r))
			result, err = nil, fmt.Errorf("geos %s: %v", op, r)
		}
	}()

	g, err := fn(gc)
	if err != nil {
		return nil, fmt.Errorf("geos %s: %w", op, err)
	}
	if g == nil || g.IsEmpty() {
		return nil, nil
	}

	out, err := wkb.Unmarshal(g.ToWKB())
	if err != nil {
		return nil, fmt.Errorf("geos %s: decode result: %w", op, err)
	}
	return out, nil
}

func fromOrb(gc *gogeos.Context, g orb.Geometry) (*gogeos.Geom, error) {
	data, err := wkb.Marshal(g)
	if err != nil {
		return nil, fmt.Errorf("encode %s: %w", g.GeoJSONType(), err)
	}
	geom, err := gc.NewGeomFromWKB(data)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", g.GeoJSONType(), err)
	}
	return geom, nil
}

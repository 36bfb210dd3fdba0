package geometry

import (
	"context"
	"errors"
	"testing"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/clip"
	"github.com/paulmach/orb/planar"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// boundEngine пересекает геометрию с прямоугольником границы участка через orb/clip.
// Если задан fixed, возвращает его вместо расчета.
type boundEngine struct {
	fixed   orb.Geometry
	err     error
	merged  int
	unioned int
}

func (e *boundEngine) Intersection(_ context.Context, a, b orb.Geometry) (orb.Geometry, error) {
	if e.err != nil {
		return nil, e.err
	}
	if e.fixed != nil {
		return e.fixed, nil
	}
	result := clip.Geometry(b.Bound(), a)
	if IsEmpty(result) {
		return nil, nil
	}
	return result, nil
}

func (e *boundEngine) LineMerge(_ context.Context, lines orb.MultiLineString) (orb.Geometry, error) {
	e.merged++
	if len(lines) == 1 {
		return lines[0], nil
	}
	return lines, nil
}

func (e *boundEngine) UnaryUnion(_ context.Context, polygons orb.MultiPolygon) (orb.Geometry, error) {
	e.unioned++
	if len(polygons) == 1 {
		return polygons[0], nil
	}
	return polygons, nil
}

var parcel = square(0, 0, 10, 10)

func TestClipper_Clip_Polygon(t *testing.T) {
	c := NewClipper(&boundEngine{}, nil, zap.NewNop())
	ctx := context.Background()

	t.Run("quarter of the parcel passes", func(t *testing.T) {
		res, err := c.Clip(ctx, square(0, 0, 5, 5), parcel, 1.0, Thresholds{MinArea: 1})
		require.NoError(t, err)
		assert.True(t, res.Passed)
		assert.Equal(t, ClassPolygon, res.Share.Class)
		assert.InDelta(t, 25.0, res.Share.Value, 1e-9)
	})

	t.Run("area below threshold fails without share", func(t *testing.T) {
		res, err := c.Clip(ctx, square(0, 0, 0.5, 1), parcel, 1.0, Thresholds{MinArea: 1})
		require.NoError(t, err)
		assert.False(t, res.Passed)
		assert.Equal(t, Share{}, res.Share)
	})

	t.Run("areas ratio compensates registered area", func(t *testing.T) {
		res, err := c.Clip(ctx, square(0, 0, 5, 5), parcel, 0.5, Thresholds{MinArea: 1})
		require.NoError(t, err)
		assert.True(t, res.Passed)
		assert.InDelta(t, 50.0, res.Share.Value, 1e-9)
	})

	t.Run("outside the parcel", func(t *testing.T) {
		res, err := c.Clip(ctx, square(20, 20, 30, 30), parcel, 1.0, Thresholds{MinArea: 1})
		require.NoError(t, err)
		assert.False(t, res.Passed)
	})
}

func TestClipper_Clip_EdgeTouchIsNotAPolygon(t *testing.T) {
	edge := orb.LineString{{10, 0}, {10, 10}}
	c := NewClipper(&boundEngine{fixed: edge}, nil, zap.NewNop())

	res, err := c.Clip(context.Background(), square(10, 0, 20, 10), parcel, 1.0, Thresholds{MinArea: 0})
	require.NoError(t, err)
	assert.False(t, res.Passed)
}

func TestClipper_Clip_MixedCollection(t *testing.T) {
	ctx := context.Background()

	t.Run("polygon parts are kept, lines dropped", func(t *testing.T) {
		engine := &boundEngine{fixed: orb.Collection{
			square(0, 0, 2, 2),
			orb.LineString{{5, 5}, {6, 6}},
			square(3, 3, 4, 4),
		}}
		c := NewClipper(engine, nil, zap.NewNop())

		res, err := c.Clip(ctx, square(-1, -1, 12, 12), parcel, 1.0, Thresholds{MinArea: 1})
		require.NoError(t, err)
		assert.True(t, res.Passed)
		assert.InDelta(t, 5.0, res.Share.Value, 1e-9)
		assert.Equal(t, 1, engine.unioned)
	})

	t.Run("only lines for a polygon source fails", func(t *testing.T) {
		engine := &boundEngine{fixed: orb.Collection{orb.LineString{{0, 0}, {0, 10}}, orb.Point{3, 3}}}
		c := NewClipper(engine, nil, zap.NewNop())

		res, err := c.Clip(ctx, square(-5, 0, 0, 10), parcel, 1.0, Thresholds{})
		require.NoError(t, err)
		assert.False(t, res.Passed)
		assert.Equal(t, 0, engine.unioned)
	})

	t.Run("line parts are merged", func(t *testing.T) {
		engine := &boundEngine{fixed: orb.Collection{
			orb.LineString{{0, 0}, {3, 0}},
			orb.Point{5, 5},
			orb.MultiLineString{{{3, 0}, {3, 4}}},
		}}
		c := NewClipper(engine, nil, zap.NewNop())

		res, err := c.Clip(ctx, orb.LineString{{0, 0}, {3, 0}, {3, 4}}, parcel, 1.0, Thresholds{MinLength: 6})
		require.NoError(t, err)
		assert.True(t, res.Passed)
		assert.Equal(t, ClassLine, res.Share.Class)
		assert.InDelta(t, 7.0, res.Share.Value, 1e-9)
		assert.Equal(t, 1, engine.merged)
	})

	t.Run("point parts are collected", func(t *testing.T) {
		engine := &boundEngine{fixed: orb.Collection{orb.Point{1, 1}, orb.Point{2, 2}, orb.LineString{{0, 0}, {1, 0}}}}
		c := NewClipper(engine, nil, zap.NewNop())

		res, err := c.Clip(ctx, orb.Point{1, 1}, parcel, 1.0, Thresholds{})
		require.NoError(t, err)
		assert.True(t, res.Passed)
		assert.Equal(t, 2.0, res.Share.Value)
	})
}

func TestClipper_Clip_Line(t *testing.T) {
	c := NewClipper(&boundEngine{}, nil, zap.NewNop())
	ctx := context.Background()

	res, err := c.Clip(ctx, orb.LineString{{-5, 5}, {15, 5}}, parcel, 1.0, Thresholds{MinLength: 1})
	require.NoError(t, err)
	assert.True(t, res.Passed)
	assert.InDelta(t, 10.0, res.Share.Value, 1e-9)

	res, err = c.Clip(ctx, orb.LineString{{-5, 5}, {0.5, 5}}, parcel, 1.0, Thresholds{MinLength: 1})
	require.NoError(t, err)
	assert.False(t, res.Passed)
}

func TestClipper_Clip_Point(t *testing.T) {
	c := NewClipper(&boundEngine{}, nil, zap.NewNop())
	ctx := context.Background()

	res, err := c.Clip(ctx, orb.Point{5, 5}, parcel, 1.0, Thresholds{})
	require.NoError(t, err)
	assert.True(t, res.Passed)
	assert.Equal(t, Share{Class: ClassPoint, Value: 1}, res.Share)

	res, err = c.Clip(ctx, orb.Point{50, 50}, parcel, 1.0, Thresholds{})
	require.NoError(t, err)
	assert.False(t, res.Passed)
}

func TestClipper_Clip_Errors(t *testing.T) {
	ctx := context.Background()

	_, err := NewClipper(&boundEngine{}, nil, zap.NewNop()).Clip(ctx, orb.Collection{orb.Point{1, 1}}, parcel, 1, Thresholds{})
	assert.ErrorIs(t, err, ErrUnsupportedGeometry)

	engineErr := errors.New("engine down")
	_, err = NewClipper(&boundEngine{err: engineErr}, nil, zap.NewNop()).Clip(ctx, orb.Point{1, 1}, parcel, 1, Thresholds{})
	assert.ErrorIs(t, err, engineErr)
}

func TestClipper_Clip_Idempotent(t *testing.T) {
	c := NewClipper(&boundEngine{}, nil, zap.NewNop())
	ctx := context.Background()
	g := orb.MultiPolygon{square(1, 1, 4, 4)}

	first, err := c.Clip(ctx, g, parcel, 1.0, Thresholds{MinArea: 1})
	require.NoError(t, err)
	second, err := c.Clip(ctx, g, parcel, 1.0, Thresholds{MinArea: 1})
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.InDelta(t, planar.Area(g), first.Share.Value, 1e-9)
}

func TestClipper_Clip_DimensionPreserved(t *testing.T) {
	c := NewClipper(&boundEngine{}, nil, zap.NewNop())
	ctx := context.Background()

	inputs := []orb.Geometry{
		orb.Point{2, 2},
		orb.MultiPoint{{2, 2}, {3, 3}},
		orb.LineString{{1, 1}, {8, 1}},
		square(2, 2, 6, 6),
		orb.MultiPolygon{square(2, 2, 6, 6)},
	}

	for _, g := range inputs {
		res, err := c.Clip(ctx, g, parcel, 1.0, Thresholds{MinLength: 1, MinArea: 1})
		require.NoError(t, err)
		require.True(t, res.Passed, KindOf(g).String())
		assert.Equal(t, KindOf(g).Dimension(), res.Share.Class.Dimension())
		assert.GreaterOrEqual(t, res.Share.Value, 0.0)
	}
}

package geos_test

import (
	"context"
	"sync"
	"testing"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/oereb-service/internal/infrastructure/geos"
	"github.com/oereb-service/internal/pkg/geometry"
)

func square(x0, y0, x1, y1 float64) orb.Polygon {
	return orb.Polygon{orb.Ring{{x0, y0}, {x1, y0}, {x1, y1}, {x0, y1}, {x0, y0}}}
}

var parcel = orb.MultiPolygon{square(0, 0, 10, 10)}

func TestEngine_Intersection(t *testing.T) {
	ctx := context.Background()
	engine := geos.NewEngine(zap.NewNop())

	t.Run("overlapping polygons", func(t *testing.T) {
		g, err := engine.Intersection(ctx, square(5, 5, 15, 15), parcel)
		require.NoError(t, err)
		require.NotNil(t, g)
		assert.InDelta(t, 25, planar.Area(g), 1e-9)
	})

	t.Run("disjoint polygons give nil", func(t *testing.T) {
		g, err := engine.Intersection(ctx, square(20, 20, 30, 30), parcel)
		require.NoError(t, err)
		assert.Nil(t, g)
	})

	t.Run("line crossing the parcel", func(t *testing.T) {
		g, err := engine.Intersection(ctx, orb.LineString{{-5, 5}, {5, 5}}, parcel)
		require.NoError(t, err)
		assert.InDelta(t, 5, planar.Length(g), 1e-9)
	})

	t.Run("cancelled context", func(t *testing.T) {
		cancelled, cancel := context.WithCancel(ctx)
		cancel()
		_, err := engine.Intersection(cancelled, square(0, 0, 1, 1), parcel)
		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestEngine_ConcurrentIntersections(t *testing.T) {
	ctx := context.Background()
	engine := geos.NewEngine(zap.NewNop())

	const workers = 16
	areas := make([]float64, workers)
	errs := make([]error, workers)

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			size := float64(i%5 + 1)
			g, err := engine.Intersection(ctx, square(-size, -size, size, size), parcel)
			errs[i] = err
			if g != nil {
				areas[i] = planar.Area(g)
			}
		}(i)
	}
	wg.Wait()

	for i := 0; i < workers; i++ {
		require.NoError(t, errs[i])
		size := float64(i%5 + 1)
		assert.InDelta(t, size*size, areas[i], 1e-9, "worker %d", i)
	}
}

func TestEngine_LineMergeAndUnion(t *testing.T) {
	ctx := context.Background()
	engine := geos.NewEngine(zap.NewNop())

	merged, err := engine.LineMerge(ctx, orb.MultiLineString{{{0, 0}, {1, 0}}, {{1, 0}, {2, 0}}})
	require.NoError(t, err)
	require.Equal(t, geometry.KindLineString, geometry.KindOf(merged))
	assert.InDelta(t, 2, planar.Length(merged), 1e-9)

	union, err := engine.UnaryUnion(ctx, orb.MultiPolygon{square(0, 0, 2, 2), square(1, 0, 3, 2)})
	require.NoError(t, err)
	require.Equal(t, geometry.KindPolygon, geometry.KindOf(union))
	assert.InDelta(t, 6, planar.Area(union), 1e-9)
}

func TestEngine_WithClipper(t *testing.T) {
	ctx := context.Background()
	clipper := geometry.NewClipper(geos.NewEngine(zap.NewNop()), nil, zap.NewNop())
	th := geometry.Thresholds{MinLength: 1, MinArea: 1}

	t.Run("polygon covering a quarter of the parcel", func(t *testing.T) {
		res, err := clipper.Clip(ctx, square(0, 0, 5, 5), parcel, 1, th)
		require.NoError(t, err)
		assert.True(t, res.Passed)
		assert.InDelta(t, 25, res.Share.Value, 1e-9)
	})

	t.Run("polygon touching the parcel along an edge does not pass", func(t *testing.T) {
		res, err := clipper.Clip(ctx, square(10, 0, 20, 10), parcel, 1, th)
		require.NoError(t, err)
		assert.False(t, res.Passed)
	})
}

package geometry

import (
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func square(x0, y0, x1, y1 float64) orb.Polygon {
	return orb.Polygon{orb.Ring{{x0, y0}, {x1, y0}, {x1, y1}, {x0, y1}, {x0, y0}}}
}

func TestExplode(t *testing.T) {
	line := orb.LineString{{0, 0}, {1, 1}}

	tests := []struct {
		name     string
		geom     orb.Geometry
		expected int
	}{
		{"point", orb.Point{1, 2}, 1},
		{"line", line, 1},
		{"polygon", square(0, 0, 1, 1), 1},
		{"multipoint", orb.MultiPoint{{0, 0}, {1, 1}, {2, 2}}, 3},
		{"multilinestring", orb.MultiLineString{line, line}, 2},
		{"multipolygon", orb.MultiPolygon{square(0, 0, 1, 1), square(2, 2, 3, 3)}, 2},
		{"collection with one multipolygon", orb.Collection{orb.MultiPolygon{square(0, 0, 1, 1), square(2, 2, 3, 3)}}, 2},
		{"collection with one point", orb.Collection{orb.Point{1, 1}}, 1},
		{"empty collection", orb.Collection{}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			parts, err := Explode(tt.geom)
			require.NoError(t, err)
			assert.Len(t, parts, tt.expected)
			for _, p := range parts {
				assert.True(t, KindOf(p).IsElementary(), "got %s", KindOf(p))
			}
		})
	}
}

func TestExplode_Unsupported(t *testing.T) {
	tests := []struct {
		name string
		geom orb.Geometry
	}{
		{"collection with polygon and line", orb.Collection{square(0, 0, 1, 1), orb.LineString{{0, 0}, {1, 1}}}},
		{"nested collection", orb.Collection{orb.Collection{orb.Point{1, 1}}}},
		{"bound", orb.Bound{Min: orb.Point{0, 0}, Max: orb.Point{1, 1}}},
		{"nil", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			parts, err := Explode(tt.geom)
			assert.ErrorIs(t, err, ErrUnsupportedGeometry)
			assert.Nil(t, parts)
		})
	}
}

func TestKind_Dimension(t *testing.T) {
	assert.Equal(t, 0, KindPoint.Dimension())
	assert.Equal(t, 0, KindMultiPoint.Dimension())
	assert.Equal(t, 1, KindLineString.Dimension())
	assert.Equal(t, 1, KindMultiLineString.Dimension())
	assert.Equal(t, 2, KindPolygon.Dimension())
	assert.Equal(t, 2, KindMultiPolygon.Dimension())
	assert.Equal(t, -1, KindCollection.Dimension())
	assert.Equal(t, -1, KindUnknown.Dimension())
}

func TestParseKind(t *testing.T) {
	kind, ok := ParseKind("MULTIPOLYGON")
	assert.True(t, ok)
	assert.Equal(t, KindMultiPolygon, kind)

	kind, ok = ParseKind(" linestring ")
	assert.True(t, ok)
	assert.Equal(t, KindLineString, kind)

	_, ok = ParseKind("Circle")
	assert.False(t, ok)
}

func TestNewTypeTable(t *testing.T) {
	table, err := NewTypeTable(
		[]string{"Point", "MultiPoint"},
		[]string{"LineString", "MultiLineString"},
		[]string{"Polygon", "MultiPolygon"},
	)
	require.NoError(t, err)
	assert.Equal(t, ClassPoint, table.ClassOf(KindMultiPoint))
	assert.Equal(t, ClassLine, table.ClassOf(KindLineString))
	assert.Equal(t, ClassPolygon, table.ClassOf(KindPolygon))
	assert.Equal(t, ClassNone, table.ClassOf(KindLinearRing))

	_, err = NewTypeTable([]string{"Polygon"}, nil, nil)
	assert.Error(t, err)

	_, err = NewTypeTable(nil, nil, []string{"GeometryCollection"})
	assert.Error(t, err)
}

func TestIsEmpty(t *testing.T) {
	assert.True(t, IsEmpty(nil))
	assert.True(t, IsEmpty(orb.MultiPolygon{}))
	assert.True(t, IsEmpty(orb.Collection{orb.MultiPoint{}}))
	assert.False(t, IsEmpty(orb.Point{0, 0}))
	assert.False(t, IsEmpty(square(0, 0, 1, 1)))
}

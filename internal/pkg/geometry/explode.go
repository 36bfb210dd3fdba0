package geometry

import (
	"errors"
	"fmt"

	"github.com/paulmach/orb"
)

// ErrUnsupportedGeometry - геометрия, которую нельзя однозначно разложить на элементарные
var ErrUnsupportedGeometry = errors.New("unsupported geometry")

// Explode раскладывает геометрию на элементарные точки, линии и полигоны.
//
// Элементарная геометрия возвращается как есть, мультигеометрия - по одному элементу
// на каждый член. Коллекция допускается только с одним членом и только на верхнем
// уровне: коллекция с несколькими членами или вложенная коллекция возвращают
// ErrUnsupportedGeometry, как и любой другой вид геометрии.
func Explode(g orb.Geometry) ([]orb.Geometry, error) {
	return explode(g, 0)
}

func explode(g orb.Geometry, depth int) ([]orb.Geometry, error) {
	kind := KindOf(g)

	switch {
	case kind.IsElementary():
		return []orb.Geometry{g}, nil
	case kind == KindCollection:
		if depth > 0 {
			return nil, fmt.Errorf("%w: nested geometry collection", ErrUnsupportedGeometry)
		}
		c := g.(orb.Collection)
		if len(c) > 1 {
			return nil, fmt.Errorf("%w: geometry collection with %d members", ErrUnsupportedGeometry, len(c))
		}
		if len(c) == 0 {
			return nil, nil
		}
		return explode(c[0], depth+1)
	}

	switch v := g.(type) {
	case orb.MultiPoint:
		result := make([]orb.Geometry, 0, len(v))
		for _, p := range v {
			result = append(result, p)
		}
		return result, nil
	case orb.MultiLineString:
		result := make([]orb.Geometry, 0, len(v))
		for _, ls := range v {
			result = append(result, ls)
		}
		return result, nil
	case orb.MultiPolygon:
		result := make([]orb.Geometry, 0, len(v))
		for _, p := range v {
			result = append(result, p)
		}
		return result, nil
	}

	return nil, fmt.Errorf("%w: %s", ErrUnsupportedGeometry, describe(g))
}

func describe(g orb.Geometry) string {
	if g == nil {
		return "nil geometry"
	}
	if kind := KindOf(g); kind != KindUnknown {
		return kind.String()
	}
	return fmt.Sprintf("%T", g)
}

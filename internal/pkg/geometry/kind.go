package geometry

import (
	"fmt"
	"math"
	"strings"

	"github.com/paulmach/orb"
)

// Kind - закрытый набор поддерживаемых видов геометрий
type Kind int

const (
	KindUnknown Kind = iota
	KindPoint
	KindLineString
	KindLinearRing
	KindPolygon
	KindMultiPoint
	KindMultiLineString
	KindMultiPolygon
	KindCollection
)

var kindNames = map[Kind]string{
	KindUnknown:         "Unknown",
	KindPoint:           "Point",
	KindLineString:      "LineString",
	KindLinearRing:      "LinearRing",
	KindPolygon:         "Polygon",
	KindMultiPoint:      "MultiPoint",
	KindMultiLineString: "MultiLineString",
	KindMultiPolygon:    "MultiPolygon",
	KindCollection:      "GeometryCollection",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// ParseKind разбирает имя вида геометрии без учета регистра (Point, MULTIPOLYGON, ...)
func ParseKind(name string) (Kind, bool) {
	for k, n := range kindNames {
		if k != KindUnknown && strings.EqualFold(n, strings.TrimSpace(name)) {
			return k, true
		}
	}
	return KindUnknown, false
}

// KindOf определяет вид orb геометрии
func KindOf(g orb.Geometry) Kind {
	switch g.(type) {
	case orb.Point:
		return KindPoint
	case orb.LineString:
		return KindLineString
	case orb.Ring:
		return KindLinearRing
	case orb.Polygon:
		return KindPolygon
	case orb.MultiPoint:
		return KindMultiPoint
	case orb.MultiLineString:
		return KindMultiLineString
	case orb.MultiPolygon:
		return KindMultiPolygon
	case orb.Collection:
		return KindCollection
	default:
		return KindUnknown
	}
}

// Dimension возвращает топологическую размерность: 0 - точка, 1 - линия, 2 - полигон.
// Для коллекций и неизвестных видов возвращает -1.
func (k Kind) Dimension() int {
	switch k {
	case KindPoint, KindMultiPoint:
		return 0
	case KindLineString, KindLinearRing, KindMultiLineString:
		return 1
	case KindPolygon, KindMultiPolygon:
		return 2
	default:
		return -1
	}
}

// IsElementary - точка, линия или полигон
func (k Kind) IsElementary() bool {
	switch k {
	case KindPoint, KindLineString, KindLinearRing, KindPolygon:
		return true
	}
	return false
}

// IsMulti - мультигеометрия (MultiPoint, MultiLineString, MultiPolygon)
func (k Kind) IsMulti() bool {
	switch k {
	case KindMultiPoint, KindMultiLineString, KindMultiPolygon:
		return true
	}
	return false
}

// IsEmpty проверяет, что геометрия пустая (nil, без координат или POINT EMPTY из WKB)
func IsEmpty(g orb.Geometry) bool {
	switch v := g.(type) {
	case nil:
		return true
	case orb.Point:
		return math.IsNaN(v[0]) || math.IsNaN(v[1])
	case orb.LineString:
		return len(v) == 0
	case orb.Ring:
		return len(v) == 0
	case orb.Polygon:
		return len(v) == 0 || len(v[0]) == 0
	case orb.MultiPoint:
		return len(v) == 0
	case orb.MultiLineString:
		for _, ls := range v {
			if len(ls) > 0 {
				return false
			}
		}
		return true
	case orb.MultiPolygon:
		for _, p := range v {
			if !IsEmpty(p) {
				return false
			}
		}
		return true
	case orb.Collection:
		for _, m := range v {
			if !IsEmpty(m) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

package geometry

import "fmt"

// Class - класс элементарной геометрии, по которому выбирается способ измерения
type Class int

const (
	ClassNone Class = iota
	ClassPoint
	ClassLine
	ClassPolygon
)

func (c Class) String() string {
	switch c {
	case ClassPoint:
		return "point"
	case ClassLine:
		return "line"
	case ClassPolygon:
		return "polygon"
	default:
		return "none"
	}
}

// Dimension возвращает топологическую размерность класса (-1 для ClassNone)
func (c Class) Dimension() int {
	switch c {
	case ClassPoint:
		return 0
	case ClassLine:
		return 1
	case ClassPolygon:
		return 2
	default:
		return -1
	}
}

// TypeTable сопоставляет виды геометрий классам point/line/polygon
type TypeTable map[Kind]Class

// DefaultTypeTable возвращает таблицу по умолчанию
func DefaultTypeTable() TypeTable {
	return TypeTable{
		KindPoint:           ClassPoint,
		KindMultiPoint:      ClassPoint,
		KindLineString:      ClassLine,
		KindLinearRing:      ClassLine,
		KindMultiLineString: ClassLine,
		KindPolygon:         ClassPolygon,
		KindMultiPolygon:    ClassPolygon,
	}
}

// NewTypeTable строит таблицу из списков имен видов для каждого класса
func NewTypeTable(point, line, polygon []string) (TypeTable, error) {
	table := make(TypeTable)
	for class, names := range map[Class][]string{
		ClassPoint:   point,
		ClassLine:    line,
		ClassPolygon: polygon,
	} {
		for _, name := range names {
			kind, ok := ParseKind(name)
			if !ok || kind == KindCollection {
				return nil, fmt.Errorf("unknown elementary geometry type %q", name)
			}
			if kind.Dimension() != class.Dimension() {
				return nil, fmt.Errorf("geometry type %q cannot be used as %s", name, class)
			}
			table[kind] = class
		}
	}
	return table, nil
}

// ClassOf возвращает класс вида геометрии или ClassNone
func (t TypeTable) ClassOf(k Kind) Class {
	if c, ok := t[k]; ok {
		return c
	}
	return ClassNone
}

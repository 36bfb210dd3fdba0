package domain

import (
	"time"

	"github.com/paulmach/orb"

	"github.com/oereb-service/internal/pkg/geometry"
)

// RestrictionGeometry - одна элементарная геометрия ограничения (точка, линия или полигон)
type RestrictionGeometry struct {
	Geom           orb.Geometry `json:"-"`
	LawStatus      LawStatus    `json:"law_status"`
	PublishedFrom  time.Time    `json:"published_from"`
	PublishedUntil *time.Time   `json:"published_until,omitempty"`
	GeoMetadata    string       `json:"geo_metadata,omitempty"`

	evaluation *geometry.Result
}

// IsPublished - геометрия действует на момент at
func (g *RestrictionGeometry) IsPublished(at time.Time) bool {
	return isPublished(g.PublishedFrom, g.PublishedUntil, at)
}

// SetEvaluation сохраняет результат клиппинга. Повторный вызов перезаписывает результат.
func (g *RestrictionGeometry) SetEvaluation(res geometry.Result) {
	g.evaluation = &res
}

// Evaluation возвращает результат клиппинга; false - геометрия еще не оценивалась
func (g *RestrictionGeometry) Evaluation() (geometry.Result, bool) {
	if g.evaluation == nil {
		return geometry.Result{}, false
	}
	return *g.evaluation, true
}

// Calculated - клиппинг уже выполнялся (в том числе с отрицательным результатом)
func (g *RestrictionGeometry) Calculated() bool {
	return g.evaluation != nil
}

// TestPassed - геометрия оценена и затрагивает участок
func (g *RestrictionGeometry) TestPassed() bool {
	return g.evaluation != nil && g.evaluation.Passed
}

// AreaShare возвращает площадь на участке, если геометрия прошла проверку как полигон
func (g *RestrictionGeometry) AreaShare() (float64, bool) {
	return g.share(geometry.ClassPolygon)
}

// LengthShare возвращает длину на участке, если геометрия прошла проверку как линия
func (g *RestrictionGeometry) LengthShare() (float64, bool) {
	return g.share(geometry.ClassLine)
}

// NrOfPoints возвращает количество точек на участке
func (g *RestrictionGeometry) NrOfPoints() (int, bool) {
	v, ok := g.share(geometry.ClassPoint)
	return int(v), ok
}

func (g *RestrictionGeometry) share(class geometry.Class) (float64, bool) {
	if !g.TestPassed() || g.evaluation.Share.Class != class {
		return 0, false
	}
	return g.evaluation.Share.Value, true
}

// Summary - итоговые доли ограничения на участке. nil поле - доля данного вида отсутствует.
type Summary struct {
	AreaShare     *float64 `json:"area_share,omitempty"`
	LengthShare   *float64 `json:"length_share,omitempty"`
	NrOfPoints    *int     `json:"nr_of_points,omitempty"`
	PartInPercent *float64 `json:"part_in_percent,omitempty"`
}

// Record - запись темы в выписке: PublicLawRestriction или EmptyPLR
type Record interface {
	RecordTheme() *Theme
	record()
}

// PublicLawRestriction - публично-правовое ограничение собственности (PLR)
type PublicLawRestriction struct {
	Theme             *Theme                 `json:"theme"`
	SubTheme          *Theme                 `json:"sub_theme,omitempty"`
	LawStatus         LawStatus              `json:"law_status"`
	PublishedFrom     time.Time              `json:"published_from"`
	PublishedUntil    *time.Time             `json:"published_until,omitempty"`
	ResponsibleOffice Office                 `json:"responsible_office"`
	Legend            LegendEntry            `json:"legend"`
	ViewService       *ViewService           `json:"view_service,omitempty"`
	Geometries        []*RestrictionGeometry `json:"geometries"`
	Documents         []*Document            `json:"documents,omitempty"`
	LengthUnit        string                 `json:"length_unit,omitempty"`
	AreaUnit          string                 `json:"area_unit,omitempty"`

	summary *Summary
}

func (r *PublicLawRestriction) RecordTheme() *Theme { return r.Theme }
func (r *PublicLawRestriction) record()             {}

// SortTheme возвращает тему, определяющую порядок ограничения: подтему, если она есть
func (r *PublicLawRestriction) SortTheme() *Theme {
	if r.SubTheme != nil {
		return r.SubTheme
	}
	return r.Theme
}

// IsPublished - ограничение действует на момент at
func (r *PublicLawRestriction) IsPublished(at time.Time) bool {
	return isPublished(r.PublishedFrom, r.PublishedUntil, at)
}

// SetSummary сохраняет итоговые доли, рассчитанные агрегацией
func (r *PublicLawRestriction) SetSummary(s Summary) {
	r.summary = &s
}

// Summary возвращает итоговые доли; false - агрегация еще не выполнялась
func (r *PublicLawRestriction) Summary() (Summary, bool) {
	if r.summary == nil {
		return Summary{}, false
	}
	return *r.summary, true
}

// EmptyPLR - тема без пересекающих ограничений (HasData) или без данных для муниципалитета
type EmptyPLR struct {
	Theme   *Theme `json:"theme"`
	HasData bool   `json:"has_data"`
}

func (r *EmptyPLR) RecordTheme() *Theme { return r.Theme }
func (r *EmptyPLR) record()             {}

package domain

import (
	"time"

	"github.com/paulmach/orb"
)

// PLRQuery - параметры пространственного запроса ограничений одной темы
type PLRQuery struct {
	TopicCode string
	Schema    string
	Limit     orb.MultiPolygon
	Bbox      orb.Bound
	SRID      int
}

// PLRRow - ограничение в том виде, в котором его вернуло хранилище: коды без
// отображения, геометрии до разворачивания коллекций
type PLRRow struct {
	ID                int64
	ThemeCode         string
	SubThemeCode      string
	LawStatus         string
	PublishedFrom     time.Time
	PublishedUntil    *time.Time
	LegendText        MultilingualText
	TypeCode          string
	TypeCodeList      string
	SymbolURL         string
	ResponsibleOffice Office
	ViewService       ViewService
	GeolinkID         *int
	Geometries        []GeometryRow
	Documents         []*Document
}

// GeometryRow - одна геометрия ограничения из хранилища
type GeometryRow struct {
	ID             int64
	Geom           orb.Geometry
	LawStatus      string
	PublishedFrom  time.Time
	PublishedUntil *time.Time
	GeoMetadata    string
}

// DocumentRequest - запрос документов внешнего реестра по идентификатору geolink
type DocumentRequest struct {
	GeolinkID  int
	LawStatus  LawStatus
	Language   string
	ExtraQuery string
}

package postgres

import (
	"fmt"
	"time"

	"github.com/lib/pq"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/encoding/wkb"

	"github.com/oereb-service/internal/domain"
)

// documentRow - строка документа вместе с ведомством
type documentRow struct {
	ID                 int64                   `db:"id"`
	DocumentType       string                  `db:"document_type"`
	Index              int                     `db:"index"`
	LawStatus          string                  `db:"law_status"`
	Title              domain.MultilingualText `db:"title"`
	PublishedFrom      time.Time               `db:"published_from"`
	PublishedUntil     *time.Time              `db:"published_until"`
	TextAtWeb          domain.MultilingualText `db:"text_at_web"`
	Abbreviation       domain.MultilingualText `db:"abbreviation"`
	OfficialNumber     domain.MultilingualText `db:"official_number"`
	OnlyInMunicipality *int                    `db:"only_in_municipality"`
	ArticleNumbers     pq.StringArray          `db:"article_numbers"`
	OfficeName         domain.MultilingualText `db:"office_name"`
	OfficeAtWeb        domain.MultilingualText `db:"office_at_web"`
	OfficeUID          string                  `db:"office_uid"`
}

// toDomain переводит строку в документ. Виды документа и правовые статусы
// остаются кодами, отображение подставляет use case.
func (r documentRow) toDomain() *domain.Document {
	return &domain.Document{
		DocumentType:       domain.DocumentType{Code: r.DocumentType},
		Index:              r.Index,
		LawStatus:          domain.LawStatus{Code: r.LawStatus},
		Title:              r.Title,
		PublishedFrom:      r.PublishedFrom,
		PublishedUntil:     r.PublishedUntil,
		TextAtWeb:          r.TextAtWeb,
		Abbreviation:       r.Abbreviation,
		OfficialNumber:     r.OfficialNumber,
		OnlyInMunicipality: r.OnlyInMunicipality,
		ArticleNumbers:     []string(r.ArticleNumbers),
		ResponsibleOffice: domain.Office{
			Name:        r.OfficeName,
			OfficeAtWeb: r.OfficeAtWeb,
			UID:         r.OfficeUID,
		},
	}
}

// decodeGeometry разбирает WKB из ST_AsBinary
func decodeGeometry(data []byte) (orb.Geometry, error) {
	if len(data) == 0 {
		return nil, nil
	}
	g, err := wkb.Unmarshal(data)
	if err != nil {
		return nil, fmt.Errorf("decode wkb: %w", err)
	}
	return g, nil
}

// decodeMultiPolygon разбирает границу участка: Polygon или MultiPolygon
func decodeMultiPolygon(data []byte) (orb.MultiPolygon, error) {
	g, err := decodeGeometry(data)
	if err != nil {
		return nil, err
	}
	switch v := g.(type) {
	case nil:
		return nil, nil
	case orb.Polygon:
		return orb.MultiPolygon{v}, nil
	case orb.MultiPolygon:
		return v, nil
	default:
		return nil, fmt.Errorf("real estate limit must be a polygon, got %s", g.GeoJSONType())
	}
}

// encodeGeometry кодирует геометрию в WKB для параметра запроса
func encodeGeometry(g orb.Geometry) ([]byte, error) {
	data, err := wkb.Marshal(g)
	if err != nil {
		return nil, fmt.Errorf("encode wkb: %w", err)
	}
	return data, nil
}

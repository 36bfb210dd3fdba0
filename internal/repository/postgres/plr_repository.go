package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"go.uber.org/zap"

	"github.com/oereb-service/internal/domain"
	"github.com/oereb-service/internal/domain/repository"
	pkgerrors "github.com/oereb-service/internal/pkg/errors"
)

type plrRepository struct {
	db     *sqlx.DB
	logger *zap.Logger
}

// NewPLRRepository создает репозиторий ограничений. Каждая тема хранится в своей
// схеме, схема передается в запросе.
func NewPLRRepository(db *DB) repository.PLRRepository {
	return &plrRepository{
		db:     db.DB,
		logger: db.logger,
	}
}

var _ repository.PLRRepository = (*plrRepository)(nil)

type geometryRow struct {
	ID             int64      `db:"id"`
	PLRID          int64      `db:"plr_id"`
	GeomWKB        []byte     `db:"geom_wkb"`
	LawStatus      string     `db:"law_status"`
	PublishedFrom  time.Time  `db:"published_from"`
	PublishedUntil *time.Time `db:"published_until"`
	GeoMetadata    string     `db:"geo_metadata"`
}

type plrRow struct {
	ID             int64                   `db:"id"`
	SubTheme       string                  `db:"sub_theme"`
	LawStatus      string                  `db:"law_status"`
	PublishedFrom  time.Time               `db:"published_from"`
	PublishedUntil *time.Time              `db:"published_until"`
	LegendText     domain.MultilingualText `db:"legend_text"`
	TypeCode       string                  `db:"type_code"`
	TypeCodeList   string                  `db:"type_code_list"`
	SymbolURL      string                  `db:"symbol_url"`
	GeolinkID      *int                    `db:"geolink"`
	OfficeName     domain.MultilingualText `db:"office_name"`
	OfficeAtWeb    domain.MultilingualText `db:"office_at_web"`
	OfficeUID      string                  `db:"office_uid"`
	ReferenceWMS   domain.MultilingualText `db:"reference_wms"`
	LayerIndex     int                     `db:"layer_index"`
	LayerOpacity   float64                 `db:"layer_opacity"`
}

type plrDocumentRow struct {
	PLRID int64 `db:"plr_id"`
	documentRow
}

// FindIntersecting возвращает ограничения темы с геометриями, пересекающими участок.
// Геометрии отбираются по bbox индексу и ST_Intersects с границей участка.
func (r *plrRepository) FindIntersecting(ctx context.Context, q domain.PLRQuery) ([]*domain.PLRRow, error) {
	schema := pq.QuoteIdentifier(q.Schema)
	logger := r.logger.With(zap.String("topic", q.TopicCode), zap.String("schema", q.Schema))

	limit, err := encodeGeometry(q.Limit)
	if err != nil {
		logger.Error("failed to encode real estate limit", zap.Error(err))
		return nil, pkgerrors.ErrDatabaseError
	}

	geomQuery := fmt.Sprintf(`
		SELECT
			g.id,
			g.public_law_restriction_id AS plr_id,
			ST_AsBinary(g.geom) AS geom_wkb,
			COALESCE(g.law_status, '') AS law_status,
			g.published_from,
			g.published_until,
			COALESCE(g.geo_metadata, '') AS geo_metadata
		FROM %s.%s g
		WHERE g.geom && ST_MakeEnvelope($1, $2, $3, $4, $5)
		  AND ST_Intersects(g.geom, ST_GeomFromWKB($6, $5))
		ORDER BY g.public_law_restriction_id, g.id`, schema, geometryTable)

	var geoms []geometryRow
	err = r.db.SelectContext(ctx, &geoms, geomQuery,
		q.Bbox.Min[0], q.Bbox.Min[1], q.Bbox.Max[0], q.Bbox.Max[1], q.SRID, limit)
	if err != nil {
		logger.Error("failed to select intersecting geometries", zap.Error(err))
		return nil, pkgerrors.ErrDatabaseError
	}
	if len(geoms) == 0 {
		return nil, nil
	}

	var ids []int64
	byPLR := make(map[int64][]domain.GeometryRow)
	for _, g := range geoms {
		geom, err := decodeGeometry(g.GeomWKB)
		if err != nil {
			logger.Warn("skipping geometry with invalid wkb", zap.Int64("geometry_id", g.ID), zap.Error(err))
			continue
		}
		if _, seen := byPLR[g.PLRID]; !seen {
			ids = append(ids, g.PLRID)
		}
		byPLR[g.PLRID] = append(byPLR[g.PLRID], domain.GeometryRow{
			ID:             g.ID,
			Geom:           geom,
			LawStatus:      g.LawStatus,
			PublishedFrom:  g.PublishedFrom,
			PublishedUntil: g.PublishedUntil,
			GeoMetadata:    g.GeoMetadata,
		})
	}
	if len(ids) == 0 {
		return nil, nil
	}

	plrQuery := fmt.Sprintf(`
		SELECT
			p.id,
			COALESCE(p.sub_theme, '') AS sub_theme,
			p.law_status,
			p.published_from,
			p.published_until,
			p.legend_text,
			p.type_code,
			COALESCE(p.type_code_list, '') AS type_code_list,
			COALESCE(p.symbol_url, '') AS symbol_url,
			p.geolink,
			COALESCE(o.name, '{}') AS office_name,
			o.office_at_web AS office_at_web,
			COALESCE(o.uid, '') AS office_uid,
			COALESCE(v.reference_wms, '{}') AS reference_wms,
			COALESCE(v.layer_index, 0) AS layer_index,
			COALESCE(v.layer_opacity, 1) AS layer_opacity
		FROM %[1]s.%[2]s p
		LEFT JOIN %[1]s.%[3]s o ON o.id = p.office_id
		LEFT JOIN %[1]s.%[4]s v ON v.id = p.view_service_id
		WHERE p.id = ANY($1)
		ORDER BY p.id`, schema, plrTable, officeTable, viewServiceTable)

	var plrs []plrRow
	if err := r.db.SelectContext(ctx, &plrs, plrQuery, pq.Array(ids)); err != nil {
		logger.Error("failed to select restrictions", zap.Error(err))
		return nil, pkgerrors.ErrDatabaseError
	}

	docs, err := r.documents(ctx, schema, ids)
	if err != nil {
		logger.Error("failed to select restriction documents", zap.Error(err))
		return nil, pkgerrors.ErrDatabaseError
	}

	result := make([]*domain.PLRRow, 0, len(plrs))
	for _, p := range plrs {
		result = append(result, &domain.PLRRow{
			ID:             p.ID,
			ThemeCode:      q.TopicCode,
			SubThemeCode:   p.SubTheme,
			LawStatus:      p.LawStatus,
			PublishedFrom:  p.PublishedFrom,
			PublishedUntil: p.PublishedUntil,
			LegendText:     p.LegendText,
			TypeCode:       p.TypeCode,
			TypeCodeList:   p.TypeCodeList,
			SymbolURL:      p.SymbolURL,
			GeolinkID:      p.GeolinkID,
			ResponsibleOffice: domain.Office{
				Name:        p.OfficeName,
				OfficeAtWeb: p.OfficeAtWeb,
				UID:         p.OfficeUID,
			},
			ViewService: domain.ViewService{
				ReferenceWMS: p.ReferenceWMS,
				LayerIndex:   p.LayerIndex,
				LayerOpacity: p.LayerOpacity,
			},
			Geometries: byPLR[p.ID],
			Documents:  docs[p.ID],
		})
	}

	logger.Debug("restrictions loaded",
		zap.Int("geometries", len(geoms)),
		zap.Int("restrictions", len(result)))

	return result, nil
}

func (r *plrRepository) documents(ctx context.Context, schema string, ids []int64) (map[int64][]*domain.Document, error) {
	query := fmt.Sprintf(`
		SELECT
			pd.public_law_restriction_id AS plr_id,
			%[1]s
		FROM %[2]s.%[3]s pd
		JOIN %[2]s.%[4]s d ON d.id = pd.document_id
		LEFT JOIN %[2]s.%[5]s o ON o.id = d.office_id
		WHERE pd.public_law_restriction_id = ANY($1)
		ORDER BY pd.public_law_restriction_id, d.index, d.id`,
		documentColumns, schema, plrDocumentTable, topicDocTable, officeTable)

	var rows []plrDocumentRow
	if err := r.db.SelectContext(ctx, &rows, query, pq.Array(ids)); err != nil {
		return nil, err
	}

	result := make(map[int64][]*domain.Document)
	for _, row := range rows {
		result[row.PLRID] = append(result[row.PLRID], row.toDomain())
	}
	return result, nil
}

package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/paulmach/orb"
	"go.uber.org/zap"

	"github.com/oereb-service/internal/config"
	"github.com/oereb-service/internal/domain"
	"github.com/oereb-service/internal/domain/repository"
	"github.com/oereb-service/internal/pkg/geometry"
)

// ErrMissingAttribute - источнику темы не хватает обязательной связи (ошибка настройки)
var ErrMissingAttribute = errors.New("missing attribute")

// TopicRequest - входные данные чтения одной темы в рамках одной выписки
type TopicRequest struct {
	Params     domain.Params
	RealEstate *domain.RealEstate
	Bbox       orb.Bound
	// Available - тема доступна для муниципалитета участка
	Available bool
	// Documents - кеш документов реестра, общий для всех тем одной выписки
	Documents *DocumentMemo
	Now       time.Time
}

// TopicSource читает ограничения одной темы для участка.
// Каждый вызов Read возвращает новый срез записей.
type TopicSource interface {
	Topic() *Topic
	Read(ctx context.Context, req TopicRequest) ([]domain.Record, error)
}

// documentProvider возвращает документы, привязанные к строке ограничения
type documentProvider interface {
	documents(ctx context.Context, topic *Topic, row *domain.PLRRow, lawStatus domain.LawStatus, req TopicRequest) ([]*domain.Document, error)
}

// restrictionSource - общая часть источников: пространственный запрос, разворачивание,
// клиппинг, агрегация и объединение документов
type restrictionSource struct {
	topic      *Topic
	plrRepo    repository.PLRRepository
	docs       documentProvider
	clipper    *geometry.Clipper
	deployment *config.Deployment
	metrics    *Metrics
	logger     *zap.Logger
}

// NewDatabaseSource создает источник темы, документы которой хранятся вместе с ограничениями
func NewDatabaseSource(
	topic *Topic,
	plrRepo repository.PLRRepository,
	clipper *geometry.Clipper,
	deployment *config.Deployment,
	metrics *Metrics,
	logger *zap.Logger,
) TopicSource {
	return &restrictionSource{
		topic:      topic,
		plrRepo:    plrRepo,
		docs:       storedDocuments{deployment: deployment},
		clipper:    clipper,
		deployment: deployment,
		metrics:    metrics,
		logger:     logger.With(zap.String("topic", topic.Code())),
	}
}

// NewOEREBlexSource создает источник темы, документы которой запрашиваются во внешнем реестре
func NewOEREBlexSource(
	topic *Topic,
	plrRepo repository.PLRRepository,
	registry repository.DocumentRegistry,
	clipper *geometry.Clipper,
	deployment *config.Deployment,
	metrics *Metrics,
	logger *zap.Logger,
) TopicSource {
	return &restrictionSource{
		topic:      topic,
		plrRepo:    plrRepo,
		docs:       registryDocuments{registry: registry},
		clipper:    clipper,
		deployment: deployment,
		metrics:    metrics,
		logger:     logger.With(zap.String("topic", topic.Code())),
	}
}

func (s *restrictionSource) Topic() *Topic {
	return s.topic
}

// Read возвращает ограничения темы, затрагивающие участок, либо одну пустую запись
func (s *restrictionSource) Read(ctx context.Context, req TopicRequest) ([]domain.Record, error) {
	if !req.Available {
		return []domain.Record{&domain.EmptyPLR{Theme: s.topic.Theme, HasData: false}}, nil
	}

	rows, err := s.plrRepo.FindIntersecting(ctx, domain.PLRQuery{
		TopicCode: s.topic.Code(),
		Schema:    s.topic.Config.Schema,
		Limit:     req.RealEstate.Limit,
		Bbox:      req.Bbox,
		SRID:      s.deployment.SRID,
	})
	if err != nil {
		return nil, fmt.Errorf("read restrictions of %s: %w", s.topic.Code(), err)
	}

	var records []domain.Record
	for _, row := range rows {
		plr, err := s.restriction(ctx, row, req)
		if err != nil {
			return nil, err
		}
		if plr != nil {
			records = append(records, plr)
		}
	}

	if len(records) == 0 {
		return []domain.Record{&domain.EmptyPLR{Theme: s.topic.Theme, HasData: true}}, nil
	}
	return records, nil
}

// restriction строит ограничение из строки хранилища. nil - ограничение не затрагивает участок.
func (s *restrictionSource) restriction(ctx context.Context, row *domain.PLRRow, req TopicRequest) (*domain.PublicLawRestriction, error) {
	lawStatus, _ := s.deployment.LawStatus(row.LawStatus)

	plr := &domain.PublicLawRestriction{
		Theme:             s.topic.Theme,
		LawStatus:         lawStatus,
		PublishedFrom:     row.PublishedFrom,
		PublishedUntil:    row.PublishedUntil,
		ResponsibleOffice: row.ResponsibleOffice,
		LengthUnit:        s.topic.Config.Thresholds.Length.Unit,
		AreaUnit:          s.topic.Config.Thresholds.Area.Unit,
	}
	if !plr.IsPublished(req.Now) {
		return nil, nil
	}

	if row.SubThemeCode != "" {
		sub, ok := s.topic.SubThemes[row.SubThemeCode]
		if !ok {
			s.logger.Warn("Unknown sub theme, restriction is listed under the main theme",
				zap.Int64("plr_id", row.ID), zap.String("sub_theme", row.SubThemeCode))
		}
		plr.SubTheme = sub
	}

	plr.Legend = domain.LegendEntry{
		SymbolURL:    row.SymbolURL,
		LegendText:   row.LegendText,
		TypeCode:     row.TypeCode,
		TypeCodeList: row.TypeCodeList,
		Theme:        plr.Theme,
		SubTheme:     plr.SubTheme,
	}
	view := row.ViewService
	plr.ViewService = &view

	for _, gr := range row.Geometries {
		geometries, err := s.geometries(ctx, row, gr, lawStatus, req)
		if err != nil {
			return nil, err
		}
		plr.Geometries = append(plr.Geometries, geometries...)
	}

	precision := s.topic.Config.Thresholds.PercentPrecision()
	if !AggregateRestriction(plr, req.RealEstate, precision, req.Now) {
		return nil, nil
	}

	topicDocs, err := s.docs.documents(ctx, s.topic, row, lawStatus, req)
	if err != nil {
		return nil, err
	}
	themeDocs := publishedDocuments(s.topic.Theme.Documents, req)
	merged, removed := MergeDocuments(themeDocs, publishedDocuments(topicDocs, req), s.logger)
	s.metrics.documentsRemoved(removed)
	plr.Documents = merged

	return plr, nil
}

// geometries разворачивает и оценивает одну геометрию строки
func (s *restrictionSource) geometries(
	ctx context.Context,
	row *domain.PLRRow,
	gr domain.GeometryRow,
	plrStatus domain.LawStatus,
	req TopicRequest,
) ([]*domain.RestrictionGeometry, error) {
	lawStatus := plrStatus
	if gr.LawStatus != "" {
		lawStatus, _ = s.deployment.LawStatus(gr.LawStatus)
	}

	parts, err := UnwrapGeometry(lawStatus, gr.PublishedFrom, gr.PublishedUntil, gr.Geom, gr.GeoMetadata, s.logger)
	if err != nil {
		if errors.Is(err, geometry.ErrUnsupportedGeometry) {
			s.logger.Warn("Dropping unsupported geometry",
				zap.Int64("plr_id", row.ID), zap.Int64("geometry_id", gr.ID), zap.Error(err))
			return nil, nil
		}
		return nil, err
	}

	expected := s.expectedClass()
	th := s.topic.Thresholds()

	kept := parts[:0]
	for _, part := range parts {
		class := s.clipper.Types().ClassOf(geometry.KindOf(part.Geom))
		if expected != geometry.ClassNone && class != expected {
			s.logger.Warn("Dropping geometry that does not match the topic geometry type",
				zap.Int64("geometry_id", gr.ID), zap.String("class", class.String()))
			continue
		}

		if err := ClipGeometry(ctx, s.clipper, part, req.RealEstate, th, req.Now); err != nil {
			if errors.Is(err, geometry.ErrUnsupportedGeometry) {
				s.logger.Warn("Dropping geometry that cannot be clipped",
					zap.Int64("geometry_id", gr.ID), zap.Error(err))
				continue
			}
			return nil, fmt.Errorf("clip geometry %d: %w", gr.ID, err)
		}
		kept = append(kept, part)
	}
	return kept, nil
}

// expectedClass - класс геометрий, объявленный для темы. ClassNone - любые.
func (s *restrictionSource) expectedClass() geometry.Class {
	kind, ok := geometry.ParseKind(s.topic.Config.GeometryType)
	if !ok || kind == geometry.KindCollection {
		return geometry.ClassNone
	}
	return s.clipper.Types().ClassOf(kind)
}

// publishedDocuments оставляет документы, действующие на момент выписки и
// относящиеся к муниципалитету участка
func publishedDocuments(docs []*domain.Document, req TopicRequest) []*domain.Document {
	result := make([]*domain.Document, 0, len(docs))
	for _, d := range docs {
		if !d.IsPublished(req.Now) {
			continue
		}
		if d.OnlyInMunicipality != nil && *d.OnlyInMunicipality != req.RealEstate.Fosnr {
			continue
		}
		result = append(result, d)
	}
	return result
}

// storedDocuments - документы, загруженные вместе со строкой ограничения
type storedDocuments struct {
	deployment *config.Deployment
}

func (p storedDocuments) documents(_ context.Context, _ *Topic, row *domain.PLRRow, _ domain.LawStatus, _ TopicRequest) ([]*domain.Document, error) {
	labelDocuments(p.deployment, row.Documents)
	return row.Documents, nil
}

// registryDocuments - документы внешнего реестра по geolink id строки
type registryDocuments struct {
	registry repository.DocumentRegistry
}

func (p registryDocuments) documents(
	ctx context.Context,
	topic *Topic,
	row *domain.PLRRow,
	lawStatus domain.LawStatus,
	req TopicRequest,
) ([]*domain.Document, error) {
	if topic.Config.Geolink == nil {
		return nil, fmt.Errorf("%w: topic %s has no geolink settings", ErrMissingAttribute, topic.Code())
	}
	if row.GeolinkID == nil {
		return nil, nil
	}

	dreq := domain.DocumentRequest{
		GeolinkID:  *row.GeolinkID,
		LawStatus:  lawStatus,
		Language:   req.Params.Language,
		ExtraQuery: topic.Config.Geolink.ExtraQuery,
	}
	if req.Documents == nil {
		return p.registry.Read(ctx, dreq)
	}
	return req.Documents.Get(ctx, dreq, p.registry.Read)
}

package app

import (
	"context"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/oereb-service/internal/config"
	"github.com/oereb-service/internal/domain/repository"
	"github.com/oereb-service/internal/infrastructure/geos"
	"github.com/oereb-service/internal/infrastructure/oereblex"
	"github.com/oereb-service/internal/pkg/geometry"
	"github.com/oereb-service/internal/repository/cache"
	"github.com/oereb-service/internal/repository/postgres"
	"github.com/oereb-service/internal/usecase"
)

// Движки пересечения геометрий
const (
	EngineGEOS    = "geos"
	EnginePostGIS = "postgis"
)

// App - собранный сервис: подключения, темы и use cases
type App struct {
	Config     *config.Config
	Deployment *config.Deployment
	DB         *postgres.DB
	Redis      *cache.Redis
	Topics     []*usecase.Topic

	Extract      *usecase.ExtractUseCase
	RealEstate   *usecase.RealEstateUseCase
	Capabilities *usecase.CapabilitiesUseCase

	logger *zap.Logger
}

// New подключается к PostGIS и Redis, читает описание кадастра и каталог тем
// и собирает use cases. Redis необязателен: без REDIS_HOST участки не кешируются.
func New(ctx context.Context, cfg *config.Config, logger *zap.Logger, reg prometheus.Registerer) (*App, error) {
	deployment, err := config.LoadDeployment(cfg.Deployment)
	if err != nil {
		return nil, err
	}
	logger.Info("Deployment loaded",
		zap.String("file", cfg.Deployment),
		zap.Int("topics", len(deployment.Topics)),
		zap.Strings("languages", deployment.Languages))

	db, err := postgres.New(&cfg.Database, logger)
	if err != nil {
		return nil, err
	}
	a := &App{Config: cfg, Deployment: deployment, DB: db, logger: logger}

	var realEstateRepo repository.RealEstateRepository = postgres.NewRealEstateRepository(db, deployment.SRID)
	if cfg.Redis.Host != "" {
		a.Redis, err = cache.NewRedis(ctx, &cfg.Redis, logger)
		if err != nil {
			a.Close()
			return nil, err
		}
		cacheRepo := cache.NewCacheRepository(a.Redis, "oereb:")
		realEstateRepo = cache.NewRealEstateCache(realEstateRepo, cacheRepo, cfg.Cache.RealEstateCacheTTL, logger)
	} else {
		logger.Info("Redis is not configured, real estate cache disabled")
	}

	themes, err := postgres.NewThemeRepository(db).ListAll(ctx)
	if err != nil {
		a.Close()
		return nil, fmt.Errorf("load theme catalogue: %w", err)
	}
	a.Topics, err = usecase.NewTopics(deployment, themes)
	if err != nil {
		a.Close()
		return nil, err
	}

	engine, err := NewEngine(cfg.Geometry.Engine, db, logger)
	if err != nil {
		a.Close()
		return nil, err
	}
	types, err := deployment.TypeTable()
	if err != nil {
		a.Close()
		return nil, err
	}
	clipper := geometry.NewClipper(engine, types, logger)

	metrics := usecase.NewMetrics(reg)
	sources := NewSources(a.Topics, SourceDeps{
		PLRRepo:    postgres.NewPLRRepository(db),
		Registry:   oereblex.NewClient(cfg.OEREBlex, deployment, logger),
		Clipper:    clipper,
		Deployment: deployment,
		Metrics:    metrics,
	}, logger)

	municipalityRepo := postgres.NewMunicipalityRepository(db)
	a.Extract = usecase.NewExtractUseCase(
		realEstateRepo,
		municipalityRepo,
		postgres.NewAvailabilityRepository(db),
		sources,
		deployment,
		metrics,
		logger,
		usecase.ExtractOptions{
			ParallelTopics: cfg.Extract.ParallelTopics,
			TopicTimeout:   cfg.Extract.TopicTimeout,
		},
	)
	a.RealEstate = usecase.NewRealEstateUseCase(realEstateRepo, logger)
	a.Capabilities = usecase.NewCapabilitiesUseCase(municipalityRepo, a.Topics, deployment, logger)

	logger.Info("Use cases initialized",
		zap.Int("topics", len(a.Topics)),
		zap.String("geometry_engine", cfg.Geometry.Engine))

	return a, nil
}

// NewEngine выбирает движок пересечения геометрий по имени
func NewEngine(name string, db *postgres.DB, logger *zap.Logger) (geometry.Engine, error) {
	switch name {
	case "", EngineGEOS:
		return geos.NewEngine(logger), nil
	case EnginePostGIS:
		if db == nil {
			return nil, fmt.Errorf("geometry engine %s needs a database", name)
		}
		return postgres.NewGeometryEngine(db), nil
	default:
		return nil, fmt.Errorf("unknown geometry engine %q", name)
	}
}

// SourceDeps - общие зависимости источников тем
type SourceDeps struct {
	PLRRepo    repository.PLRRepository
	Registry   repository.DocumentRegistry
	Clipper    *geometry.Clipper
	Deployment *config.Deployment
	Metrics    *usecase.Metrics
}

// NewSources создает источник для каждой темы в порядке описания кадастра
func NewSources(topics []*usecase.Topic, deps SourceDeps, logger *zap.Logger) []usecase.TopicSource {
	sources := make([]usecase.TopicSource, 0, len(topics))
	for _, t := range topics {
		if t.Config.Source == config.SourceOEREBlex {
			sources = append(sources, usecase.NewOEREBlexSource(
				t, deps.PLRRepo, deps.Registry, deps.Clipper, deps.Deployment, deps.Metrics, logger))
			continue
		}
		sources = append(sources, usecase.NewDatabaseSource(
			t, deps.PLRRepo, deps.Clipper, deps.Deployment, deps.Metrics, logger))
	}
	return sources
}

// Close закрывает подключения
func (a *App) Close() {
	if a.Redis != nil {
		if err := a.Redis.Close(); err != nil {
			a.logger.Error("Failed to close Redis connection", zap.Error(err))
		}
	}
	if a.DB != nil {
		if err := a.DB.Close(); err != nil {
			a.logger.Error("Failed to close PostGIS connection", zap.Error(err))
		}
	}
}

package usecase

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/oereb-service/internal/config"
	"github.com/oereb-service/internal/domain"
	"github.com/oereb-service/internal/domain/repository"
	pkgerrors "github.com/oereb-service/internal/pkg/errors"
	"github.com/oereb-service/internal/usecase/dto"
)

// ExtractOptions - параметры параллельного чтения тем
type ExtractOptions struct {
	ParallelTopics int
	TopicTimeout   time.Duration
}

// ExtractUseCase - use case построения выписки по участку
type ExtractUseCase struct {
	realEstateRepo   repository.RealEstateRepository
	municipalityRepo repository.MunicipalityRepository
	availabilityRepo repository.AvailabilityRepository
	sources          []TopicSource
	deployment       *config.Deployment
	metrics          *Metrics
	logger           *zap.Logger
	opts             ExtractOptions
	now              func() time.Time
}

// NewExtractUseCase - создание нового ExtractUseCase.
// Порядок sources задает порядок чтения тем.
func NewExtractUseCase(
	realEstateRepo repository.RealEstateRepository,
	municipalityRepo repository.MunicipalityRepository,
	availabilityRepo repository.AvailabilityRepository,
	sources []TopicSource,
	deployment *config.Deployment,
	metrics *Metrics,
	logger *zap.Logger,
	opts ExtractOptions,
) *ExtractUseCase {
	if opts.ParallelTopics <= 0 {
		opts.ParallelTopics = 1
	}
	return &ExtractUseCase{
		realEstateRepo:   realEstateRepo,
		municipalityRepo: municipalityRepo,
		availabilityRepo: availabilityRepo,
		sources:          sources,
		deployment:       deployment,
		metrics:          metrics,
		logger:           logger,
		opts:             opts,
		now:              time.Now,
	}
}

// WithClock подменяет источник текущего времени
func (uc *ExtractUseCase) WithClock(now func() time.Time) *ExtractUseCase {
	uc.now = now
	return uc
}

// BuildParams проверяет язык и темы запроса
func (uc *ExtractUseCase) BuildParams(req dto.ExtractRequest) (domain.Params, error) {
	lang, ok := uc.deployment.MatchLanguage(req.Language)
	if !ok {
		return domain.Params{}, pkgerrors.ErrInvalidLanguage.WithDetails(map[string]interface{}{
			"lang":      req.Language,
			"supported": uc.deployment.Languages,
		})
	}

	topics := domain.ParseTopicSelection(req.Topics)
	if topics.Mode == domain.TopicsList {
		for _, code := range topics.Codes {
			if _, ok := uc.deployment.Topic(code); !ok {
				return domain.Params{}, pkgerrors.ErrInvalidTopic.WithDetails(map[string]interface{}{
					"topic": code,
				})
			}
		}
	}

	return domain.Params{
		Language:     lang,
		WithGeometry: req.Geometry,
		Topics:       topics,
	}, nil
}

// GetExtract - выписка по EGRID
func (uc *ExtractUseCase) GetExtract(ctx context.Context, req dto.ExtractRequest) (*domain.Extract, domain.Params, error) {
	params, err := uc.BuildParams(req)
	if err != nil {
		uc.metrics.extractDone(ResultInvalid)
		return nil, params, err
	}

	realEstate, err := uc.realEstateRepo.GetByEGRID(ctx, req.EGRID)
	if err != nil {
		if errors.Is(err, pkgerrors.ErrRealEstateNotFound) {
			uc.metrics.extractDone(ResultNotFound)
		} else {
			uc.metrics.extractDone(ResultError)
		}
		return nil, params, err
	}

	municipality, err := uc.municipalityRepo.GetByFosnr(ctx, realEstate.Fosnr)
	if err != nil {
		uc.logger.Error("Failed to get municipality of real estate",
			zap.String("egrid", realEstate.EGRID),
			zap.Int("fosnr", realEstate.Fosnr),
			zap.Error(err))
		uc.metrics.extractDone(ResultError)
		return nil, params, err
	}

	extract, err := uc.Assemble(ctx, realEstate, municipality, params)
	if err != nil {
		uc.metrics.extractDone(ResultError)
		return nil, params, err
	}

	uc.metrics.extractDone(ResultSuccess)
	return extract, params, nil
}

// Assemble строит выписку: читает темы, классифицирует их и сортирует ограничения.
// realEstate не изменяется, выписка содержит его копию.
func (uc *ExtractUseCase) Assemble(
	ctx context.Context,
	realEstate *domain.RealEstate,
	municipality *domain.Municipality,
	params domain.Params,
) (*domain.Extract, error) {
	now := uc.now()

	estate := *realEstate
	estate.PublicLawRestrictions = nil
	bbox := estate.Limit.Bound()

	var records []domain.Record
	if !municipality.Published {
		for _, src := range uc.sources {
			records = append(records, &domain.EmptyPLR{Theme: src.Topic().Theme, HasData: false})
		}
	} else {
		var err error
		records, err = uc.readTopics(ctx, &estate, bbox, params, now)
		if err != nil {
			return nil, err
		}
	}

	concerned, notConcerned, withoutData := ClassifyRecords(records)
	SortRecords(records, uc.deployment.LawStatusCodes())

	estate.PublicLawRestrictions = records
	estate.PlanForLandRegister = PlanForLandRegister(uc.deployment.PlanForLandRegister, bbox)
	estate.PlanForLandRegisterMainPage = estate.PlanForLandRegister

	extract := &domain.Extract{
		ExtractIdentifier:    uuid.New(),
		CreationDate:         now,
		UpdateDateOS:         municipality.UpdatedAt,
		RealEstate:           &estate,
		ConcernedTheme:       concerned,
		NotConcernedTheme:    notConcerned,
		ThemeWithoutData:     withoutData,
		PLRCadastreAuthority: uc.deployment.Office,
		Disclaimers:          uc.deployment.Disclaimers,
		Glossaries:           uc.deployment.Glossary,
		GeneralInformation:   uc.deployment.GeneralInformation,
	}
	uc.attachLogos(extract, &estate)

	uc.logger.Debug("Extract assembled",
		zap.String("egrid", estate.EGRID),
		zap.Int("concerned", len(concerned)),
		zap.Int("not_concerned", len(notConcerned)),
		zap.Int("without_data", len(withoutData)))

	return extract, nil
}

// readTopics читает выбранные темы параллельно и собирает записи в порядке тем
func (uc *ExtractUseCase) readTopics(
	ctx context.Context,
	estate *domain.RealEstate,
	bbox orb.Bound,
	params domain.Params,
	now time.Time,
) ([]domain.Record, error) {
	availability, err := uc.availabilityRepo.ListByFosnr(ctx, estate.Fosnr)
	availabilityKnown := err == nil
	if err != nil {
		uc.logger.Error("Failed to read topic availability, topics are reported without data",
			zap.String("egrid", estate.EGRID),
			zap.Int("fosnr", estate.Fosnr),
			zap.Error(err))
	}

	var selected []TopicSource
	for _, src := range uc.sources {
		topic := src.Topic()
		if params.Topics.Includes(topic.Code(), topic.Config.Federal) {
			selected = append(selected, src)
		}
	}

	memo := NewDocumentMemo()
	results := make([][]domain.Record, len(selected))

	g := new(errgroup.Group)
	g.SetLimit(uc.opts.ParallelTopics)
	for i, src := range selected {
		code := src.Topic().Code()
		req := TopicRequest{
			Params:     params,
			RealEstate: estate,
			Bbox:       bbox,
			Available:  availabilityKnown && isAvailable(availability, code),
			Documents:  memo,
			Now:        now,
		}
		g.Go(func() error {
			results[i] = uc.readTopic(ctx, src, req)
			return nil
		})
	}
	_ = g.Wait()

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("assemble extract: %w", err)
	}

	var records []domain.Record
	for _, r := range results {
		records = append(records, r...)
	}
	return records, nil
}

// readTopic читает одну тему. Ошибка чтения заменяется пустой записью без данных.
func (uc *ExtractUseCase) readTopic(ctx context.Context, src TopicSource, req TopicRequest) []domain.Record {
	topic := src.Topic()

	if uc.opts.TopicTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, uc.opts.TopicTimeout)
		defer cancel()
	}

	start := time.Now()
	records, err := src.Read(ctx, req)
	uc.metrics.topicRead(topic.Code(), time.Since(start), err != nil)

	if err != nil {
		msg := "Failed to read topic, topic is reported without data"
		if errors.Is(err, ErrMissingAttribute) {
			msg = "Topic source configuration error, topic is reported without data"
		}
		uc.logger.Error(msg,
			zap.String("topic", topic.Code()),
			zap.String("egrid", req.RealEstate.EGRID),
			zap.Error(err))
		return []domain.Record{&domain.EmptyPLR{Theme: topic.Theme, HasData: false}}
	}
	if len(records) == 0 {
		return []domain.Record{&domain.EmptyPLR{Theme: topic.Theme, HasData: true}}
	}
	return records
}

func (uc *ExtractUseCase) attachLogos(extract *domain.Extract, estate *domain.RealEstate) {
	logos := uc.deployment.Logos
	extract.LogoPLRCadastre = domain.Logo{Code: "ch.plr", URL: logos.PLRCadastre}
	extract.FederalLogo = domain.Logo{Code: "ch", URL: logos.Confederation}
	extract.CantonalLogo = domain.Logo{Code: "ch." + estate.Canton, URL: logos.Canton}
	if url, ok := logos.MunicipalityLogo(estate.Fosnr); ok {
		extract.MunicipalityLogo = domain.Logo{Code: "ch." + strconv.Itoa(estate.Fosnr), URL: url}
	}
}

// isAvailable - тема доступна; темы без записи доступны
func isAvailable(availability map[string]bool, code string) bool {
	available, ok := availability[code]
	return !ok || available
}

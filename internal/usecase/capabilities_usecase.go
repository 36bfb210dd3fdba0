package usecase

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/oereb-service/internal/config"
	"github.com/oereb-service/internal/domain/repository"
	"github.com/oereb-service/internal/usecase/dto"
)

// CapabilitiesUseCase - use case описания возможностей сервиса
type CapabilitiesUseCase struct {
	municipalityRepo repository.MunicipalityRepository
	topics           []*Topic
	deployment       *config.Deployment
	logger           *zap.Logger
}

// NewCapabilitiesUseCase - создание нового CapabilitiesUseCase
func NewCapabilitiesUseCase(
	municipalityRepo repository.MunicipalityRepository,
	topics []*Topic,
	deployment *config.Deployment,
	logger *zap.Logger,
) *CapabilitiesUseCase {
	return &CapabilitiesUseCase{
		municipalityRepo: municipalityRepo,
		topics:           topics,
		deployment:       deployment,
		logger:           logger,
	}
}

// GetCapabilities - темы, опубликованные муниципалитеты, языки и системы координат
func (uc *CapabilitiesUseCase) GetCapabilities(ctx context.Context, lang string) (*dto.CapabilitiesResponse, error) {
	if matched, ok := uc.deployment.MatchLanguage(lang); ok {
		lang = matched
	} else {
		lang = uc.deployment.DefaultLanguage
	}

	municipalities, err := uc.municipalityRepo.ListPublished(ctx)
	if err != nil {
		uc.logger.Error("Failed to list published municipalities", zap.Error(err))
		return nil, err
	}

	resp := &dto.CapabilitiesResponse{
		Topics:         make([]dto.TopicCapability, 0, len(uc.topics)),
		Municipalities: make([]int, 0, len(municipalities)),
		Languages:      uc.deployment.Languages,
		CRS:            []string{fmt.Sprintf("EPSG:%d", uc.deployment.SRID)},
	}
	for _, t := range uc.topics {
		resp.Topics = append(resp.Topics, dto.TopicCapability{
			Code:    t.Code(),
			Text:    t.Theme.Title.Get(lang, uc.deployment.DefaultLanguage),
			Federal: t.Config.Federal,
		})
	}
	for _, m := range municipalities {
		resp.Municipalities = append(resp.Municipalities, m.Fosnr)
	}
	return resp, nil
}

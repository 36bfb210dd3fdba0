package usecase

import (
	"context"

	"github.com/paulmach/orb"
	"go.uber.org/zap"

	"github.com/oereb-service/internal/domain/repository"
	"github.com/oereb-service/internal/pkg/errors"
	"github.com/oereb-service/internal/pkg/validator"
	"github.com/oereb-service/internal/usecase/dto"
)

// RealEstateUseCase - use case поиска участков (GetEGRID)
type RealEstateUseCase struct {
	realEstateRepo repository.RealEstateRepository
	logger         *zap.Logger
}

// NewRealEstateUseCase - создание нового RealEstateUseCase
func NewRealEstateUseCase(realEstateRepo repository.RealEstateRepository, logger *zap.Logger) *RealEstateUseCase {
	return &RealEstateUseCase{
		realEstateRepo: realEstateRepo,
		logger:         logger,
	}
}

// GetEGRID - участки по точке EN или по паре IDENTDN + NUMBER
func (uc *RealEstateUseCase) GetEGRID(ctx context.Context, req dto.GetEGRIDRequest) (*dto.EGRIDResponse, error) {
	if req.EN != "" {
		x, y, ok := validator.ParseCoordinates(req.EN)
		if !ok {
			return nil, errors.ErrInvalidCoordinates
		}
		list, err := uc.realEstateRepo.FindByPoint(ctx, orb.Point{x, y})
		if err != nil {
			uc.logger.Error("Failed to find real estates by point", zap.String("en", req.EN), zap.Error(err))
			return nil, err
		}
		if len(list) == 0 {
			return nil, errors.ErrRealEstateNotFound
		}
		return dto.ConvertRealEstateReferences(list), nil
	}

	list, err := uc.realEstateRepo.GetByNumber(ctx, req.IdentDN, req.Number)
	if err != nil {
		uc.logger.Error("Failed to get real estates by number",
			zap.String("identdn", req.IdentDN), zap.String("number", req.Number), zap.Error(err))
		return nil, err
	}
	if len(list) == 0 {
		return nil, errors.ErrRealEstateNotFound
	}
	return dto.ConvertRealEstateReferences(list), nil
}

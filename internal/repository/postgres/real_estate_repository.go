package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/paulmach/orb"
	"go.uber.org/zap"

	"github.com/oereb-service/internal/domain"
	"github.com/oereb-service/internal/domain/repository"
	pkgerrors "github.com/oereb-service/internal/pkg/errors"
)

type realEstateRepository struct {
	db     *sqlx.DB
	srid   int
	logger *zap.Logger
}

// NewRealEstateRepository создает репозиторий земельных участков.
// srid - система координат кадастра, в ней задаются точки поиска.
func NewRealEstateRepository(db *DB, srid int) repository.RealEstateRepository {
	return &realEstateRepository{
		db:     db.DB,
		srid:   srid,
		logger: db.logger,
	}
}

var _ repository.RealEstateRepository = (*realEstateRepository)(nil)

type realEstateRow struct {
	domain.RealEstate
	LimitWKB []byte `db:"limit_wkb"`
}

var realEstateSelect = fmt.Sprintf(`
	SELECT
		egrid,
		number,
		identdn,
		COALESCE(type, '') AS type,
		canton,
		municipality,
		fosnr,
		subunit_of_land_register,
		COALESCE(land_registry_area, 0) AS land_registry_area,
		ST_AsBinary(geom) AS limit_wkb
	FROM %s`, realEstateTable)

// GetByEGRID возвращает участок по EGRID
func (r *realEstateRepository) GetByEGRID(ctx context.Context, egrid string) (*domain.RealEstate, error) {
	var row realEstateRow
	err := r.db.GetContext(ctx, &row, realEstateSelect+` WHERE egrid = $1 LIMIT 1`, egrid)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, pkgerrors.ErrRealEstateNotFound
	}
	if err != nil {
		r.logger.Error("failed to get real estate", zap.String("egrid", egrid), zap.Error(err))
		return nil, pkgerrors.ErrDatabaseError
	}

	return r.toDomain(row)
}

// GetByNumber возвращает участки по кадастровому округу и номеру
func (r *realEstateRepository) GetByNumber(ctx context.Context, identDN, number string) ([]*domain.RealEstate, error) {
	var rows []realEstateRow
	err := r.db.SelectContext(ctx, &rows, realEstateSelect+` WHERE identdn = $1 AND number = $2 ORDER BY egrid`, identDN, number)
	if err != nil {
		r.logger.Error("failed to get real estates by number",
			zap.String("identdn", identDN), zap.String("number", number), zap.Error(err))
		return nil, pkgerrors.ErrDatabaseError
	}
	return r.toDomainList(rows)
}

// FindByPoint возвращает участки, содержащие точку
func (r *realEstateRepository) FindByPoint(ctx context.Context, point orb.Point) ([]*domain.RealEstate, error) {
	var rows []realEstateRow
	err := r.db.SelectContext(ctx, &rows,
		realEstateSelect+` WHERE ST_Contains(geom, ST_SetSRID(ST_MakePoint($1, $2), $3)) ORDER BY egrid`,
		point[0], point[1], r.srid)
	if err != nil {
		r.logger.Error("failed to find real estates by point",
			zap.Float64("x", point[0]), zap.Float64("y", point[1]), zap.Error(err))
		return nil, pkgerrors.ErrDatabaseError
	}
	return r.toDomainList(rows)
}

func (r *realEstateRepository) toDomain(row realEstateRow) (*domain.RealEstate, error) {
	limit, err := decodeMultiPolygon(row.LimitWKB)
	if err != nil {
		r.logger.Error("invalid real estate geometry", zap.String("egrid", row.EGRID), zap.Error(err))
		return nil, pkgerrors.ErrDatabaseError
	}
	re := row.RealEstate
	re.Limit = limit
	return &re, nil
}

func (r *realEstateRepository) toDomainList(rows []realEstateRow) ([]*domain.RealEstate, error) {
	result := make([]*domain.RealEstate, 0, len(rows))
	for _, row := range rows {
		re, err := r.toDomain(row)
		if err != nil {
			return nil, err
		}
		result = append(result, re)
	}
	return result, nil
}

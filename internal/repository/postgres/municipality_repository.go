package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"github.com/oereb-service/internal/domain"
	"github.com/oereb-service/internal/domain/repository"
	pkgerrors "github.com/oereb-service/internal/pkg/errors"
)

type municipalityRepository struct {
	db     *sqlx.DB
	logger *zap.Logger
}

// NewMunicipalityRepository создает репозиторий муниципалитетов
func NewMunicipalityRepository(db *DB) repository.MunicipalityRepository {
	return &municipalityRepository{
		db:     db.DB,
		logger: db.logger,
	}
}

var municipalitySelect = fmt.Sprintf(`
	SELECT fosnr, name, published, updated_at
	FROM %s`, municipalityTable)

// GetByFosnr возвращает муниципалитет по FOSNR
func (r *municipalityRepository) GetByFosnr(ctx context.Context, fosnr int) (*domain.Municipality, error) {
	var m domain.Municipality
	err := r.db.GetContext(ctx, &m, municipalitySelect+` WHERE fosnr = $1`, fosnr)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, pkgerrors.ErrMunicipalityNotFound.WithDetails(map[string]interface{}{"fosnr": fosnr})
	}
	if err != nil {
		r.logger.Error("failed to get municipality", zap.Int("fosnr", fosnr), zap.Error(err))
		return nil, pkgerrors.ErrDatabaseError
	}
	return &m, nil
}

// ListPublished возвращает муниципалитеты с опубликованным кадастром
func (r *municipalityRepository) ListPublished(ctx context.Context) ([]*domain.Municipality, error) {
	var list []*domain.Municipality
	err := r.db.SelectContext(ctx, &list, municipalitySelect+` WHERE published ORDER BY fosnr`)
	if err != nil {
		r.logger.Error("failed to list published municipalities", zap.Error(err))
		return nil, pkgerrors.ErrDatabaseError
	}
	return list, nil
}

type availabilityRepository struct {
	db     *sqlx.DB
	logger *zap.Logger
}

// NewAvailabilityRepository создает репозиторий доступности тем
func NewAvailabilityRepository(db *DB) repository.AvailabilityRepository {
	return &availabilityRepository{
		db:     db.DB,
		logger: db.logger,
	}
}

// ListByFosnr возвращает флаги доступности тем муниципалитета
func (r *availabilityRepository) ListByFosnr(ctx context.Context, fosnr int) (map[string]bool, error) {
	query := fmt.Sprintf(`SELECT theme_code, available FROM %s WHERE fosnr = $1`, availabilityTable)

	rows, err := r.db.QueryxContext(ctx, query, fosnr)
	if err != nil {
		r.logger.Error("failed to list availability", zap.Int("fosnr", fosnr), zap.Error(err))
		return nil, pkgerrors.ErrDatabaseError
	}
	defer rows.Close()

	result := make(map[string]bool)
	for rows.Next() {
		var code string
		var available bool
		if err := rows.Scan(&code, &available); err != nil {
			r.logger.Error("failed to scan availability", zap.Int("fosnr", fosnr), zap.Error(err))
			return nil, pkgerrors.ErrDatabaseError
		}
		result[code] = available
	}
	if err := rows.Err(); err != nil {
		r.logger.Error("failed to iterate availability", zap.Int("fosnr", fosnr), zap.Error(err))
		return nil, pkgerrors.ErrDatabaseError
	}
	return result, nil
}

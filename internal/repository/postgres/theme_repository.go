package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"github.com/oereb-service/internal/domain"
	"github.com/oereb-service/internal/domain/repository"
	pkgerrors "github.com/oereb-service/internal/pkg/errors"
)

type themeRepository struct {
	db     *sqlx.DB
	logger *zap.Logger
}

// NewThemeRepository создает репозиторий каталога тем
func NewThemeRepository(db *DB) repository.ThemeRepository {
	return &themeRepository{
		db:     db.DB,
		logger: db.logger,
	}
}

type themeDocumentRow struct {
	ThemeCode string `db:"theme_code"`
	SubCode   string `db:"sub_code"`
	documentRow
}

// ListAll возвращает темы и подтемы, упорядоченные по extract_index, с документами тем
func (r *themeRepository) ListAll(ctx context.Context) ([]*domain.Theme, error) {
	var themes []*domain.Theme
	query := fmt.Sprintf(`
		SELECT code, COALESCE(sub_code, '') AS sub_code, title, extract_index
		FROM %s
		ORDER BY extract_index, code, sub_code`, themeTable)
	if err := r.db.SelectContext(ctx, &themes, query); err != nil {
		r.logger.Error("failed to list themes", zap.Error(err))
		return nil, pkgerrors.ErrDatabaseError
	}

	docQuery := fmt.Sprintf(`
		SELECT
			td.theme_code,
			COALESCE(td.sub_code, '') AS sub_code,
			%s
		FROM %s td
		JOIN %s d ON d.id = td.document_id
		LEFT JOIN oereb.office o ON o.id = d.office_id
		ORDER BY td.theme_code, td.sub_code, d.index, d.id`, documentColumns, themeDocumentTable, documentTable)

	var docs []themeDocumentRow
	if err := r.db.SelectContext(ctx, &docs, docQuery); err != nil {
		r.logger.Error("failed to list theme documents", zap.Error(err))
		return nil, pkgerrors.ErrDatabaseError
	}

	byKey := make(map[string]*domain.Theme, len(themes))
	for _, th := range themes {
		byKey[th.Key()] = th
	}
	for _, d := range docs {
		th, ok := byKey[domain.ThemeKey(d.ThemeCode, d.SubCode)]
		if !ok {
			r.logger.Warn("theme document references unknown theme",
				zap.String("theme", d.ThemeCode), zap.String("sub_theme", d.SubCode), zap.Int64("document_id", d.ID))
			continue
		}
		th.Documents = append(th.Documents, d.toDomain())
	}

	return themes, nil
}

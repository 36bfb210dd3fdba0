package repository

import (
	"context"

	"github.com/oereb-service/internal/domain"
)

// ThemeRepository определяет методы для работы с каталогом тем
type ThemeRepository interface {
	// ListAll возвращает все темы и подтемы вместе с документами тем
	ListAll(ctx context.Context) ([]*domain.Theme, error)
}

package repository

import (
	"context"

	"github.com/oereb-service/internal/domain"
)

// MunicipalityRepository определяет методы для работы с муниципалитетами
type MunicipalityRepository interface {
	// GetByFosnr возвращает муниципалитет по федеральному номеру
	GetByFosnr(ctx context.Context, fosnr int) (*domain.Municipality, error)

	// ListPublished возвращает муниципалитеты, для которых кадастр опубликован
	ListPublished(ctx context.Context) ([]*domain.Municipality, error)
}

// AvailabilityRepository хранит доступность тем по муниципалитетам
type AvailabilityRepository interface {
	// ListByFosnr возвращает доступность тем муниципалитета: код темы -> доступна.
	// Темы без записи считаются доступными.
	ListByFosnr(ctx context.Context, fosnr int) (map[string]bool, error)
}

package repository

import (
	"context"

	"github.com/oereb-service/internal/domain"
)

// PLRRepository определяет методы чтения ограничений темы
type PLRRepository interface {
	// FindIntersecting возвращает ограничения темы, геометрии которых пересекают
	// bbox участка, вместе с геометриями и документами
	FindIntersecting(ctx context.Context, query domain.PLRQuery) ([]*domain.PLRRow, error)
}

// DocumentRegistry определяет методы внешнего реестра правовых документов
type DocumentRegistry interface {
	// Read возвращает документы, связанные с идентификатором geolink
	Read(ctx context.Context, req domain.DocumentRequest) ([]*domain.Document, error)
}

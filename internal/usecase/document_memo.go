package usecase

import (
	"context"
	"fmt"
	"sync"

	"golang.org/x/sync/singleflight"

	"github.com/oereb-service/internal/domain"
)

// DocumentMemo запоминает документы внешнего реестра в пределах одной выписки.
// Ключ - (geolink id, код правового статуса, язык, дополнительный запрос темы).
// Параллельные запросы одного ключа выполняются один раз; загрузка не зависит
// от отмены контекста отдельного вызывающего, каждый ждет в пределах своего ctx.
type DocumentMemo struct {
	mu      sync.RWMutex
	entries map[string][]*domain.Document
	group   singleflight.Group
}

// NewDocumentMemo создает пустой кеш документов
func NewDocumentMemo() *DocumentMemo {
	return &DocumentMemo{entries: make(map[string][]*domain.Document)}
}

func memoKey(req domain.DocumentRequest) string {
	return fmt.Sprintf("%d|%s|%s|%s", req.GeolinkID, req.LawStatus.Code, req.Language, req.ExtraQuery)
}

// Get возвращает документы из кеша или загружает их через load.
// Ошибки загрузки не запоминаются.
func (m *DocumentMemo) Get(
	ctx context.Context,
	req domain.DocumentRequest,
	load func(ctx context.Context, req domain.DocumentRequest) ([]*domain.Document, error),
) ([]*domain.Document, error) {
	key := memoKey(req)

	m.mu.RLock()
	docs, ok := m.entries[key]
	m.mu.RUnlock()
	if ok {
		return docs, nil
	}

	loadCtx := context.WithoutCancel(ctx)
	ch := m.group.DoChan(key, func() (interface{}, error) {
		m.mu.RLock()
		cached, ok := m.entries[key]
		m.mu.RUnlock()
		if ok {
			return cached, nil
		}

		docs, err := load(loadCtx, req)
		if err != nil {
			return nil, err
		}
		m.mu.Lock()
		m.entries[key] = docs
		m.mu.Unlock()
		return docs, nil
	})

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		return res.Val.([]*domain.Document), nil
	}
}

// Len возвращает количество запомненных ключей
func (m *DocumentMemo) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.entries)
}

package usecase

import (
	"fmt"

	"github.com/oereb-service/internal/config"
	"github.com/oereb-service/internal/domain"
	"github.com/oereb-service/internal/pkg/geometry"
)

// Topic - настроенная тема кадастра вместе с записью каталога тем
type Topic struct {
	Config    config.TopicConfig
	Theme     *domain.Theme
	SubThemes map[string]*domain.Theme
}

// Code возвращает код темы
func (t *Topic) Code() string {
	return t.Config.Code
}

// Thresholds возвращает пороги клиппинга темы
func (t *Topic) Thresholds() geometry.Thresholds {
	return geometry.Thresholds{
		MinLength: t.Config.Thresholds.Length.Limit,
		MinArea:   t.Config.Thresholds.Area.Limit,
	}
}

// NewTopics сопоставляет темы из описания кадастра с каталогом тем.
// Порядок результата совпадает с порядком тем в описании.
func NewTopics(deployment *config.Deployment, themes []*domain.Theme) ([]*Topic, error) {
	main := make(map[string]*domain.Theme)
	subs := make(map[string]map[string]*domain.Theme)
	for _, th := range themes {
		if th.IsSubTheme() {
			if subs[th.Code] == nil {
				subs[th.Code] = make(map[string]*domain.Theme)
			}
			subs[th.Code][th.SubCode] = th
			continue
		}
		main[th.Code] = th
	}

	for _, th := range themes {
		labelDocuments(deployment, th.Documents)
	}

	topics := make([]*Topic, 0, len(deployment.Topics))
	for _, cfg := range deployment.Topics {
		theme, ok := main[cfg.Code]
		if !ok {
			return nil, fmt.Errorf("topic %s is not in the theme catalogue", cfg.Code)
		}
		topics = append(topics, &Topic{
			Config:    cfg,
			Theme:     theme,
			SubThemes: subs[cfg.Code],
		})
	}
	return topics, nil
}

// labelDocuments подставляет названия видов документов и правовых статусов по кодам.
// Уже заданные названия не меняются.
func labelDocuments(deployment *config.Deployment, docs []*domain.Document) {
	if deployment == nil {
		return
	}
	for _, d := range docs {
		if d.DocumentType.Title.IsEmpty() {
			d.DocumentType, _ = deployment.DocumentType(d.DocumentType.Code)
		}
		if d.LawStatus.Title.IsEmpty() {
			d.LawStatus, _ = deployment.LawStatus(d.LawStatus.Code)
		}
	}
}

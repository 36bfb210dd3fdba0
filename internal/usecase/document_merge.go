package usecase

import (
	"go.uber.org/zap"

	"github.com/oereb-service/internal/domain"
)

// MergeDocuments объединяет документы темы с документами, полученными из источника.
// Документы темы всегда идут первыми и побеждают при совпадении; документ источника,
// совпавший с каким-либо документом темы (domain.Document.SameAs), отбрасывается.
// Второй результат - количество отброшенных дубликатов.
func MergeDocuments(themeDocs, topicDocs []*domain.Document, logger *zap.Logger) ([]*domain.Document, int) {
	if len(themeDocs) == 0 {
		return topicDocs, 0
	}
	if len(topicDocs) == 0 {
		return themeDocs, 0
	}

	merged := make([]*domain.Document, 0, len(themeDocs)+len(topicDocs))
	merged = append(merged, themeDocs...)

	removed := 0
	for _, doc := range topicDocs {
		duplicate := false
		for _, themeDoc := range themeDocs {
			if themeDoc.SameAs(doc) {
				duplicate = true
				break
			}
		}
		if duplicate {
			removed++
			logger.Info("Removed duplicate document",
				zap.Any("title", doc.Title),
				zap.Any("official_number", doc.OfficialNumber),
				zap.Int("index", doc.Index))
			continue
		}
		merged = append(merged, doc)
	}

	return merged, removed
}

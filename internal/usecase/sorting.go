package usecase

import (
	"math"
	"sort"

	"github.com/oereb-service/internal/domain"
)

// SortRecords стабильно сортирует записи выписки по (extract_index темы или подтемы,
// позиция правового статуса в lawStatusOrder). Пустые записи и неизвестные статусы в конце.
func SortRecords(records []domain.Record, lawStatusOrder []string) {
	position := make(map[string]int, len(lawStatusOrder))
	for i, code := range lawStatusOrder {
		position[code] = i
	}

	themeIndex := func(r domain.Record) int {
		plr, ok := r.(*domain.PublicLawRestriction)
		if !ok {
			return math.MaxInt
		}
		return plr.SortTheme().ExtractIndex
	}
	statusIndex := func(r domain.Record) int {
		plr, ok := r.(*domain.PublicLawRestriction)
		if !ok {
			return len(lawStatusOrder)
		}
		if i, ok := position[plr.LawStatus.Code]; ok {
			return i
		}
		return len(lawStatusOrder)
	}

	sort.SliceStable(records, func(i, j int) bool {
		ti, tj := themeIndex(records[i]), themeIndex(records[j])
		if ti != tj {
			return ti < tj
		}
		return statusIndex(records[i]) < statusIndex(records[j])
	})
}

// ClassifyRecords распределяет темы записей по трем группам выписки. Каждая тема
// попадает ровно в одну группу; группы отсортированы по extract_index.
func ClassifyRecords(records []domain.Record) (concerned, notConcerned, withoutData []*domain.Theme) {
	const (
		bucketWithoutData = iota + 1
		bucketNotConcerned
		bucketConcerned
	)

	bucket := make(map[string]int)
	themes := make(map[string]*domain.Theme)
	var order []string

	assign := func(theme *domain.Theme, b int) {
		key := theme.Key()
		if _, seen := themes[key]; !seen {
			themes[key] = theme
			order = append(order, key)
		}
		if b > bucket[key] {
			bucket[key] = b
		}
	}

	for _, r := range records {
		switch rec := r.(type) {
		case *domain.PublicLawRestriction:
			assign(rec.Theme, bucketConcerned)
		case *domain.EmptyPLR:
			if rec.HasData {
				assign(rec.Theme, bucketNotConcerned)
			} else {
				assign(rec.Theme, bucketWithoutData)
			}
		}
	}

	for _, key := range order {
		switch bucket[key] {
		case bucketConcerned:
			concerned = append(concerned, themes[key])
		case bucketNotConcerned:
			notConcerned = append(notConcerned, themes[key])
		default:
			withoutData = append(withoutData, themes[key])
		}
	}

	for _, list := range [][]*domain.Theme{concerned, notConcerned, withoutData} {
		sort.SliceStable(list, func(i, j int) bool {
			return list[i].ExtractIndex < list[j].ExtractIndex
		})
	}
	return concerned, notConcerned, withoutData
}

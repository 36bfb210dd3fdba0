package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oereb-service/internal/domain"
	"github.com/oereb-service/internal/usecase"
)

var lawStatusOrder = []string{"inKraft", "AenderungMitVorwirkung", "AenderungOhneVorwirkung"}

func plrOf(theme, sub *domain.Theme, status string) *domain.PublicLawRestriction {
	return &domain.PublicLawRestriction{
		Theme:     theme,
		SubTheme:  sub,
		LawStatus: domain.LawStatus{Code: status},
	}
}

func TestSortRecords(t *testing.T) {
	landUse := &domain.Theme{Code: "ch.Nutzungsplanung", ExtractIndex: 20}
	buildingLines := &domain.Theme{Code: "ch.Nutzungsplanung", SubCode: "ch.BE.Baulinien", ExtractIndex: 25}
	forest := &domain.Theme{Code: "ch.Waldgrenzen", ExtractIndex: 10}
	sites := &domain.Theme{Code: "ch.BelasteteStandorte", ExtractIndex: 30}

	a := plrOf(landUse, buildingLines, "inKraft")
	b := plrOf(landUse, nil, "AenderungOhneVorwirkung")
	c := plrOf(landUse, nil, "inKraft")
	d := plrOf(forest, nil, "unbekannt")
	e := plrOf(forest, nil, "inKraft")
	empty := &domain.EmptyPLR{Theme: sites, HasData: true}
	f := plrOf(sites, nil, "AenderungMitVorwirkung")
	g := plrOf(landUse, nil, "inKraft")

	records := []domain.Record{empty, a, b, c, d, e, f, g}
	usecase.SortRecords(records, lawStatusOrder)

	assert.Equal(t, []domain.Record{e, d, c, g, b, a, f, empty}, records)

	t.Run("sorting a sorted list is a no-op", func(t *testing.T) {
		again := append([]domain.Record(nil), records...)
		usecase.SortRecords(again, lawStatusOrder)
		assert.Equal(t, records, again)
	})

	t.Run("extract index is non-decreasing and empties are last", func(t *testing.T) {
		last := -1
		seenEmpty := false
		for _, r := range records {
			plr, ok := r.(*domain.PublicLawRestriction)
			if !ok {
				seenEmpty = true
				continue
			}
			require.False(t, seenEmpty, "restriction after an empty record")
			idx := plr.SortTheme().ExtractIndex
			assert.GreaterOrEqual(t, idx, last)
			last = idx
		}
	})
}

func TestClassifyRecords(t *testing.T) {
	landUse := &domain.Theme{Code: "ch.Nutzungsplanung", ExtractIndex: 20}
	forest := &domain.Theme{Code: "ch.Waldgrenzen", ExtractIndex: 10}
	sites := &domain.Theme{Code: "ch.BelasteteStandorte", ExtractIndex: 30}
	noise := &domain.Theme{Code: "ch.Laermempfindlichkeitsstufen", ExtractIndex: 5}

	records := []domain.Record{
		plrOf(landUse, nil, "inKraft"),
		plrOf(landUse, nil, "AenderungMitVorwirkung"),
		&domain.EmptyPLR{Theme: sites, HasData: true},
		&domain.EmptyPLR{Theme: noise, HasData: false},
		plrOf(forest, nil, "inKraft"),
	}

	concerned, notConcerned, withoutData := usecase.ClassifyRecords(records)

	assert.Equal(t, []*domain.Theme{forest, landUse}, concerned)
	assert.Equal(t, []*domain.Theme{sites}, notConcerned)
	assert.Equal(t, []*domain.Theme{noise}, withoutData)

	t.Run("buckets are disjoint", func(t *testing.T) {
		mixed := append(records, &domain.EmptyPLR{Theme: forest, HasData: false})
		c, n, w := usecase.ClassifyRecords(mixed)

		seen := map[string]int{}
		for _, bucket := range [][]*domain.Theme{c, n, w} {
			for _, th := range bucket {
				seen[th.Key()]++
			}
		}
		for key, count := range seen {
			assert.Equal(t, 1, count, key)
		}
		assert.Len(t, seen, 4)
	})
}

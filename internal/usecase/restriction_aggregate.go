package usecase

import (
	"context"
	"math"
	"time"

	"github.com/oereb-service/internal/domain"
	"github.com/oereb-service/internal/pkg/geometry"
)

// ClipGeometry оценивает одну геометрию ограничения относительно участка.
// Геометрия вне срока действия на момент at считается не прошедшей, но оцененной.
func ClipGeometry(
	ctx context.Context,
	clipper *geometry.Clipper,
	g *domain.RestrictionGeometry,
	realEstate *domain.RealEstate,
	th geometry.Thresholds,
	at time.Time,
) error {
	if !g.IsPublished(at) {
		g.SetEvaluation(geometry.Result{})
		return nil
	}

	res, err := clipper.Clip(ctx, g.Geom, realEstate.Limit, realEstate.AreasRatio(), th)
	if err != nil {
		g.SetEvaluation(geometry.Result{})
		return err
	}
	g.SetEvaluation(res)
	return nil
}

// AggregateRestriction оставляет у ограничения только действующие и прошедшие
// проверку геометрии и рассчитывает итоговые доли. Возвращает true, если
// осталась хотя бы одна геометрия.
//
// percentPrecision - число знаков после запятой у доли в процентах.
func AggregateRestriction(
	plr *domain.PublicLawRestriction,
	realEstate *domain.RealEstate,
	percentPrecision int,
	at time.Time,
) bool {
	var (
		points          int
		length, area    float64
		hasLine, hasPol bool
	)

	kept := plr.Geometries[:0]
	for _, g := range plr.Geometries {
		if !g.IsPublished(at) || !g.TestPassed() {
			continue
		}
		kept = append(kept, g)

		if n, ok := g.NrOfPoints(); ok {
			points += n
		}
		if l, ok := g.LengthShare(); ok {
			length += l
			hasLine = true
		}
		if a, ok := g.AreaShare(); ok {
			area += a
			hasPol = true
		}
	}
	plr.Geometries = kept

	var summary domain.Summary
	if points > 0 {
		summary.NrOfPoints = &points
	}
	if hasLine {
		v := math.RoundToEven(length)
		summary.LengthShare = &v
	}
	if hasPol {
		v := math.RoundToEven(area)
		summary.AreaShare = &v
		if realEstate.LandRegistryArea > 0 {
			p := roundTo(100*v/float64(realEstate.LandRegistryArea), percentPrecision)
			summary.PartInPercent = &p
		}
	}
	plr.SetSummary(summary)

	return len(kept) > 0
}

// roundTo округляет до precision знаков после запятой (половина к четному)
func roundTo(v float64, precision int) float64 {
	scale := math.Pow(10, float64(precision))
	return math.RoundToEven(v*scale) / scale
}

package growth

import (
	"fmt"
	"math"
	"sort"
	"time"
)

// PredictGrowthCurve devuelve los puntos históricos seguidos de horizonWeeks
// semanas de pronóstico. El crecimiento semanal decae exponencialmente según
// el avance hacia la edad de madurez de la categoría y nunca supera el peso
// adulto estimado.
func PredictGrowthCurve(samples []WeightSample, birthDate time.Time, horizonWeeks int) ([]PredictionPoint, error) {
	if horizonWeeks < 0 {
		return nil, fmt.Errorf("%w: horizon must be >= 0", ErrInvalidInput)
	}

	est, err := EstimateAdultWeight(samples, birthDate)
	if err != nil {
		return nil, err
	}

	history := make([]WeightSample, len(samples))
	copy(history, samples)
	sort.SliceStable(history, func(i, j int) bool {
		return history[i].Date.Before(history[j].Date)
	})

	out := make([]PredictionPoint, 0, len(history)+horizonWeeks)
	for _, s := range history {
		days, _ := ageInDays(birthDate, s.Date) // ya validado por EstimateAdultWeight
		out = append(out, PredictionPoint{
			AgeWeeks: days / 7,
			Weight:   s.Weight,
		})
	}

	ref := latest(samples)
	refDays, _ := ageInDays(birthDate, ref.Date)
	currentAge := refDays / 7
	maturity := float64(MaturityAgeWeeks(est.Category))
	remaining := math.Max(0, est.EstimatedAdultWeight-ref.Weight)

	prev := ref.Weight
	for w := 1; w <= horizonWeeks; w++ {
		futureAge := currentAge + w
		progress := math.Min(1, float64(futureAge)/maturity)
		rate := math.Exp(-progress * 2)
		weekly := (remaining * rate) / float64(horizonWeeks)

		next := math.Min(prev+weekly, est.EstimatedAdultWeight)
		out = append(out, PredictionPoint{
			AgeWeeks:     futureAge,
			Weight:       next,
			IsPrediction: true,
		})
		prev = next
	}

	return out, nil
}

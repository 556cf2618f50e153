package dosage

import (
	"errors"
	"fmt"
	"math"

	"puppy-growth/internal/growth"
)

var (
	ErrEmptyGuide   = errors.New("feeding guide has no rows")
	ErrInvalidEntry = errors.New("invalid feeding guide row")
)

// ApplyMetabolicMultiplier ajusta una ración base según el tamaño adulto esperado.
func ApplyMetabolicMultiplier(baseAmount, expectedAdultWeight float64) float64 {
	return math.Round(baseAmount * growth.MetabolicMultiplier(expectedAdultWeight))
}

// BreedAdjustedDosage combina InterpolateNearest con el multiplicador metabólico.
// A diferencia de CalculateDosage, extrapola fuera de la tabla.
func BreedAdjustedDosage(guide []FeedingGuideEntry, targetWeight, expectedAdultWeight float64) (float64, bool) {
	base, ok := InterpolateNearest(guide, targetWeight)
	if !ok {
		return 0, false
	}
	return ApplyMetabolicMultiplier(base, expectedAdultWeight), true
}

// ValidateGuide se usa al registrar guías. Los cálculos no validan filas.
func ValidateGuide(guide []FeedingGuideEntry) error {
	if len(guide) == 0 {
		return ErrEmptyGuide
	}
	for i, e := range guide {
		for _, v := range []float64{e.WeightMin, e.WeightMax, e.AmountMin, e.AmountMax} {
			if v < 0 || math.IsNaN(v) || math.IsInf(v, 0) {
				return fmt.Errorf("%w: row %d has a negative or non-finite value", ErrInvalidEntry, i)
			}
		}
		if e.WeightMin > e.WeightMax {
			return fmt.Errorf("%w: row %d weight_min > weight_max", ErrInvalidEntry, i)
		}
		if e.AmountMin > e.AmountMax {
			return fmt.Errorf("%w: row %d amount_min > amount_max", ErrInvalidEntry, i)
		}
	}
	return nil
}

package growth

import "math"

// ValidateVeterinaryEstimate indica si una estimación es biológicamente plausible.
// Los llamadores la usan para decidir si mostrar la estimación; EstimateAdultWeight
// no la aplica internamente.
func ValidateVeterinaryEstimate(currentWeight, estimatedAdultWeight, ageWeeks float64) bool {
	for _, v := range []float64{currentWeight, estimatedAdultWeight, ageWeeks} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	if currentWeight <= 0 || estimatedAdultWeight <= 0 || ageWeeks < 0 {
		return false
	}

	if estimatedAdultWeight < currentWeight {
		return false
	}
	if estimatedAdultWeight > currentWeight*4 {
		return false
	}
	if estimatedAdultWeight > MaxAdultWeight {
		return false
	}

	// Cerca de la madurez ya no queda margen para crecer mucho.
	switch {
	case ageWeeks >= 40:
		return estimatedAdultWeight <= currentWeight*1.25
	case ageWeeks >= 32:
		return estimatedAdultWeight <= currentWeight*1.5
	}
	return true
}

package weights

import (
	"time"

	"puppy-growth/internal/growth"
)

// Entry es un registro del log de peso. Hay como máximo uno por pet y fecha:
// registrar otra vez el mismo día reemplaza el valor anterior.
type Entry struct {
	ID    string
	PetID string

	Date     time.Time // solo fecha (UTC, 00:00)
	WeightKg float64
	Notes    string

	RecordedAt time.Time
}

// Report junta la estimación de peso adulto y la curva de crecimiento.
type Report struct {
	PetID     string
	BirthDate time.Time

	Estimate growth.Estimate
	Curve    []growth.PredictionPoint

	// Plausible = growth.ValidateVeterinaryEstimate; la UI decide si mostrarla.
	Plausible bool
}

func toSamples(entries []Entry) []growth.WeightSample {
	out := make([]growth.WeightSample, 0, len(entries))
	for _, e := range entries {
		out = append(out, growth.WeightSample{Date: e.Date, Weight: e.WeightKg})
	}
	return out
}

package feeding

import (
	"time"

	"puppy-growth/internal/dosage"
	"puppy-growth/internal/growth"
)

type Source string

const (
	SourceStatic Source = "static"
	SourceManual Source = "manual"
)

// Guide es una guía de alimentación de un fabricante: filas kg → g/día.
type Guide struct {
	ID      string
	Name    string
	Brand   string
	Notes   string
	Source  Source
	Entries []dosage.FeedingGuideEntry

	CreatedAt time.Time
}

// Ration es la ración recomendada para un peso.
// BaseGrams es nil cuando la guía no cubre el peso (sin extrapolación).
// AdjustedGrams es nil si no se conoce el peso adulto esperado.
type Ration struct {
	GuideID  string
	WeightKg float64

	BaseGrams     *float64
	AdjustedGrams *float64

	ExpectedAdultKg *float64
	Category        growth.BreedCategory
	Multiplier      float64
}

package growth

import (
	"errors"
	"time"
)

var (
	ErrInvalidInput = errors.New("invalid input")
)

// WeightSample es una medición de peso (kg) en una fecha.
type WeightSample struct {
	Date   time.Time `json:"date"`
	Weight float64   `json:"weight"`
}

// FormulaEstimate es el aporte de una fórmula veterinaria a una estimación.
type FormulaEstimate struct {
	Name                 string   `json:"formula_name"`
	PredictedAdultWeight float64  `json:"predicted_adult_weight"`
	Confidence           float64  `json:"confidence"`
	MinAgeWeeks          float64  `json:"min_age_weeks"`
	MaxAgeWeeks          *float64 `json:"max_age_weeks"` // nil = sin tope
}

// Estimate es el resultado de EstimateAdultWeight.
type Estimate struct {
	EstimatedAdultWeight float64           `json:"estimated_adult_weight"`
	Confidence           float64           `json:"confidence"`
	Category             BreedCategory     `json:"breed_category"`
	Formulas             []FormulaEstimate `json:"contributing_formulas"`

	CurrentWeight   float64 `json:"current_weight"`
	CurrentAgeWeeks float64 `json:"current_age_weeks"`
}

type PredictionPoint struct {
	AgeWeeks     int     `json:"age_weeks"`
	Weight       float64 `json:"weight"`
	IsPrediction bool    `json:"is_prediction"`
}

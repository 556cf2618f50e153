package growth

import (
	"fmt"
	"math"
	"time"
)

// formula es una regla veterinaria con rango de edad (semanas, inclusivo).
type formula struct {
	name       string
	minAge     float64
	maxAge     float64
	adult      func(weight, ageWeeks float64) float64
	confidence func(ageWeeks float64) float64
}

var formulas = []formula{
	{
		name:   "base",
		minAge: 6, maxAge: math.Inf(1),
		adult: weeklyRate,
		confidence: func(age float64) float64 {
			if age >= 12 {
				return 0.8
			}
			return 0.6
		},
	},
	{
		name:   "8_week_rule",
		minAge: 6, maxAge: 10,
		adult:      func(w, _ float64) float64 { return w / 0.275 },
		confidence: near(8, 1, 0.75, 0.6),
	},
	{
		name:   "16_week_rule",
		minAge: 12, maxAge: 20,
		adult:      func(w, _ float64) float64 { return w * 2 },
		confidence: near(16, 2, 0.9, 0.7),
	},
	{
		name:   "26_week_rule",
		minAge: 20, maxAge: 30,
		adult:      func(w, _ float64) float64 { return w / 0.75 },
		confidence: near(26, 2, 0.85, 0.7),
	},
	{
		name:   "14_week_rule",
		minAge: 10, maxAge: 18,
		adult:      func(w, _ float64) float64 { return w * 2.5 },
		confidence: near(14, 2, 0.8, 0.65),
	},
	{
		name:   "adult_plateau",
		minAge: 32, maxAge: math.Inf(1),
		adult: func(w, _ float64) float64 { return w * 1.1 },
		confidence: func(age float64) float64 {
			if age >= 40 {
				return 0.95
			}
			return 0.8
		},
	},
}

// fallback solo aplica si ninguna otra fórmula entró (edad < 6 semanas).
var fallback = formula{
	name:   "fallback",
	minAge: 0, maxAge: 6,
	adult:      weeklyRate,
	confidence: func(float64) float64 { return 0.4 },
}

func weeklyRate(w, age float64) float64 { return (w / age) * 52 }

func near(target, tolerance, hit, miss float64) func(float64) float64 {
	return func(age float64) float64 {
		if math.Abs(age-target) <= tolerance {
			return hit
		}
		return miss
	}
}

// EstimateAdultWeight estima el peso adulto a partir de la muestra más reciente.
//
// El peso resultante es el promedio ponderado por confianza de las fórmulas
// aplicables, acotado al máximo de su categoría y luego a [actual, 4x actual].
// La confianza informada es la media simple de las confianzas (no la ponderada).
func EstimateAdultWeight(samples []WeightSample, birthDate time.Time) (Estimate, error) {
	if err := validateSamples(samples, birthDate); err != nil {
		return Estimate{}, err
	}

	ref := latest(samples)
	ageWeeks, err := ageInWeeks(birthDate, ref.Date)
	if err != nil {
		return Estimate{}, err
	}
	// Muestra del día de nacimiento: se evalúa con 1 día para no dividir por cero.
	evalAge := math.Max(ageWeeks, 1.0/7)

	contrib := make([]FormulaEstimate, 0, len(formulas))
	for _, f := range formulas {
		if evalAge < f.minAge || evalAge > f.maxAge {
			continue
		}
		contrib = append(contrib, f.apply(ref.Weight, evalAge))
	}
	if len(contrib) == 0 {
		contrib = append(contrib, fallback.apply(ref.Weight, evalAge))
	}

	var weighted, confSum float64
	for _, c := range contrib {
		weighted += c.PredictedAdultWeight * c.Confidence
		confSum += c.Confidence
	}
	combined := weighted / confSum

	combined = math.Min(combined, Profile(CategoryForWeight(combined)).MaxWeight)
	combined = clamp(combined, ref.Weight, ref.Weight*4)

	return Estimate{
		EstimatedAdultWeight: combined,
		Confidence:           confSum / float64(len(contrib)),
		Category:             CategoryForWeight(combined),
		Formulas:             contrib,
		CurrentWeight:        ref.Weight,
		CurrentAgeWeeks:      ageWeeks,
	}, nil
}

func (f formula) apply(weight, age float64) FormulaEstimate {
	fe := FormulaEstimate{
		Name:                 f.name,
		PredictedAdultWeight: f.adult(weight, age),
		Confidence:           f.confidence(age),
		MinAgeWeeks:          f.minAge,
	}
	if !math.IsInf(f.maxAge, 1) {
		maxAge := f.maxAge
		fe.MaxAgeWeeks = &maxAge
	}
	return fe
}

func validateSamples(samples []WeightSample, birthDate time.Time) error {
	if len(samples) == 0 {
		return fmt.Errorf("%w: no weight samples", ErrInvalidInput)
	}
	for _, s := range samples {
		if s.Weight <= 0 || math.IsNaN(s.Weight) || math.IsInf(s.Weight, 0) {
			return fmt.Errorf("%w: weight must be positive", ErrInvalidInput)
		}
		if _, err := ageInDays(birthDate, s.Date); err != nil {
			return err
		}
	}
	return nil
}

// latest devuelve la muestra con fecha más reciente (la última en caso de empate).
func latest(samples []WeightSample) WeightSample {
	ref := samples[0]
	for _, s := range samples[1:] {
		if !s.Date.Before(ref.Date) {
			ref = s
		}
	}
	return ref
}

func ageInDays(birthDate, at time.Time) (int, error) {
	days := int(math.Floor(dateOnly(at).Sub(dateOnly(birthDate)).Hours() / 24))
	if days < 0 {
		return 0, fmt.Errorf("%w: sample dated before birth date", ErrInvalidInput)
	}
	return days, nil
}

func ageInWeeks(birthDate, at time.Time) (float64, error) {
	days, err := ageInDays(birthDate, at)
	if err != nil {
		return 0, err
	}
	return float64(days) / 7, nil
}

// dateOnly descarta hora y zona: las muestras son fechas de calendario.
func dateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Package calculator expone los cálculos de crecimiento y ración sin persistir nada.
package calculator

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"puppy-growth/internal/domain/feeding"
	"puppy-growth/internal/domain/weights"
	"puppy-growth/internal/dosage"
	"puppy-growth/internal/growth"

	"github.com/go-chi/chi/v5"
)

type Observer interface {
	ObserveEstimate(category growth.BreedCategory, plausible bool)
}

func RegisterRoutes(r chi.Router, feedingSvc *feeding.Service, obs Observer) {
	r.Route("/calculations", func(cr chi.Router) {
		cr.Post("/growth", growthHandler(obs))
		cr.Post("/dosage", dosageHandler(feedingSvc))
	})
}

type sampleRequest struct {
	Date   string  `json:"date"` // YYYY-MM-DD
	Weight float64 `json:"weight"`
}

type growthRequest struct {
	BirthDate    string          `json:"birth_date"`
	Samples      []sampleRequest `json:"samples"`
	HorizonWeeks int             `json:"horizon_weeks"`
}

type dosageRequest struct {
	Entries             []dosage.FeedingGuideEntry `json:"entries"`
	Weight              float64                    `json:"weight"`
	ExpectedAdultWeight *float64                   `json:"expected_adult_weight"`
}

// growthHandler godoc
// @Summary Estimar peso adulto (sin guardar)
// @Tags calculations
// @Accept json
// @Produce json
// @Param payload body growthRequest true "Fecha de nacimiento y muestras"
// @Success 200 {object} weights.GrowthResponse
// @Failure 400 {string} string "invalid json / fechas inválidas"
// @Failure 422 {string} string "muestras vacías o anteriores al nacimiento"
// @Router /calculations/growth [post]
func growthHandler(obs Observer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req growthRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}
		if req.HorizonWeeks < 0 || req.HorizonWeeks > weights.MaxHorizonWeeks {
			http.Error(w, "horizon_weeks must be between 0 and 104", http.StatusBadRequest)
			return
		}

		birth, samples, err := parseGrowthRequest(req)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		est, err := growth.EstimateAdultWeight(samples, birth)
		if err != nil {
			writeError(w, err)
			return
		}
		curve, err := growth.PredictGrowthCurve(samples, birth, req.HorizonWeeks)
		if err != nil {
			writeError(w, err)
			return
		}

		plausible := growth.ValidateVeterinaryEstimate(est.CurrentWeight, est.EstimatedAdultWeight, est.CurrentAgeWeeks)
		if obs != nil {
			obs.ObserveEstimate(est.Category, plausible)
		}

		writeJSON(w, http.StatusOK, weights.ToGrowthResponse(weights.Report{
			BirthDate: birth,
			Estimate:  est,
			Curve:     curve,
			Plausible: plausible,
		}))
	}
}

// dosageHandler godoc
// @Summary Calcular ración (sin guardar)
// @Description `base_grams` es null si el peso queda fuera de la tabla.
// @Tags calculations
// @Accept json
// @Produce json
// @Param payload body dosageRequest true "Filas de la guía y peso"
// @Success 200 {object} feeding.RationResponse
// @Failure 400 {string} string "invalid json / peso inválido"
// @Router /calculations/dosage [post]
func dosageHandler(feedingSvc *feeding.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req dosageRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}
		if req.Weight <= 0 {
			http.Error(w, "weight must be positive", http.StatusBadRequest)
			return
		}
		if req.ExpectedAdultWeight != nil && *req.ExpectedAdultWeight <= 0 {
			http.Error(w, "expected_adult_weight must be positive", http.StatusBadRequest)
			return
		}

		ration := feedingSvc.RationForEntries(req.Entries, req.Weight, req.ExpectedAdultWeight)
		writeJSON(w, http.StatusOK, feeding.ToRationResponse(ration))
	}
}

func parseGrowthRequest(req growthRequest) (time.Time, []growth.WeightSample, error) {
	birth, err := time.Parse(time.DateOnly, strings.TrimSpace(req.BirthDate))
	if err != nil {
		return time.Time{}, nil, errors.New("birth_date must be YYYY-MM-DD")
	}

	samples := make([]growth.WeightSample, 0, len(req.Samples))
	for i, s := range req.Samples {
		d, err := time.Parse(time.DateOnly, strings.TrimSpace(s.Date))
		if err != nil {
			return time.Time{}, nil, fmt.Errorf("samples[%d].date must be YYYY-MM-DD", i)
		}
		samples = append(samples, growth.WeightSample{Date: d, Weight: s.Weight})
	}
	return birth, samples, nil
}

func writeError(w http.ResponseWriter, err error) {
	if errors.Is(err, growth.ErrInvalidInput) {
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
		return
	}
	http.Error(w, "internal error", http.StatusInternalServerError)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

package weights

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"puppy-growth/internal/domain/pets"
	"puppy-growth/internal/growth"
	"puppy-growth/internal/middleware"

	"github.com/go-chi/chi/v5"
)

// MaxHorizonWeeks limita el horizonte pedido por query.
const MaxHorizonWeeks = 104

func RegisterRoutes(r chi.Router, svc *Service, petsSvc *pets.Service, defaultHorizonWeeks int) {
	r.Route("/pets/{petID}/weights", func(wr chi.Router) {
		wr.Post("/", recordWeightHandler(svc, petsSvc))
		wr.Get("/", listWeightsHandler(svc, petsSvc))
		wr.Delete("/{entryID}", deleteWeightHandler(svc, petsSvc))
	})

	r.Get("/pets/{petID}/growth", growthHandler(svc, petsSvc, defaultHorizonWeeks))
}

type recordWeightRequest struct {
	Date   string  `json:"date"` // YYYY-MM-DD
	Weight float64 `json:"weight"`
	Unit   Unit    `json:"unit" enums:"kg,lb"` // opcional, default kg
	Notes  string  `json:"notes"`
}

type EntryResponse struct {
	ID         string    `json:"id"`
	PetID      string    `json:"pet_id"`
	Date       string    `json:"date"`
	WeightKg   float64   `json:"weight_kg"`
	Notes      string    `json:"notes"`
	RecordedAt time.Time `json:"recorded_at"`
}

type GrowthResponse struct {
	PetID                string                   `json:"pet_id"`
	BirthDate            string                   `json:"birth_date"`
	CurrentWeight        float64                  `json:"current_weight"`
	CurrentAgeWeeks      float64                  `json:"current_age_weeks"`
	EstimatedAdultWeight float64                  `json:"estimated_adult_weight"`
	Confidence           float64                  `json:"confidence"`
	BreedCategory        growth.BreedCategory     `json:"breed_category"`
	MaturityAgeWeeks     int                      `json:"maturity_age_weeks"`
	Plausible            bool                     `json:"plausible"`
	Formulas             []growth.FormulaEstimate `json:"contributing_formulas"`
	Curve                []growth.PredictionPoint `json:"curve"`
}

// recordWeightHandler godoc
// @Summary Registrar peso
// @Description Registra el peso del día. Si ya había un registro para esa fecha se reemplaza.
// @Tags weights
// @Accept json
// @Produce json
// @Param X-Debug-User-ID header string true "ID de usuario"
// @Param petID path string true "ID del cachorro"
// @Param payload body recordWeightRequest true "date YYYY-MM-DD, weight en kg o lb"
// @Success 201 {object} EntryResponse
// @Failure 400 {string} string "invalid json / reglas de negocio"
// @Failure 401 {string} string "unauthorized"
// @Failure 404 {string} string "pet not found"
// @Router /pets/{petID}/weights [post]
func recordWeightHandler(svc *Service, petsSvc *pets.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		p, err := petsSvc.GetOwned(r.Context(), chi.URLParam(r, "petID"), claims.UserID)
		if err != nil {
			writeError(w, err)
			return
		}

		var req recordWeightRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		d, err := time.Parse(time.DateOnly, strings.TrimSpace(req.Date))
		if err != nil {
			http.Error(w, "date must be YYYY-MM-DD", http.StatusBadRequest)
			return
		}

		e, err := svc.Record(r.Context(), p.ID, RecordInput{
			Date:   d,
			Weight: req.Weight,
			Unit:   req.Unit,
			Notes:  req.Notes,
		})
		if err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, toEntryResponse(e))
	}
}

// listWeightsHandler godoc
// @Summary Log de peso
// @Tags weights
// @Produce json
// @Param X-Debug-User-ID header string true "ID de usuario"
// @Param petID path string true "ID del cachorro"
// @Param from query string false "Fecha mínima (YYYY-MM-DD)"
// @Param to query string false "Fecha máxima (YYYY-MM-DD)"
// @Success 200 {array} EntryResponse
// @Failure 400 {string} string "from/to inválidos"
// @Failure 401 {string} string "unauthorized"
// @Failure 404 {string} string "pet not found"
// @Router /pets/{petID}/weights [get]
func listWeightsHandler(svc *Service, petsSvc *pets.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		p, err := petsSvc.GetOwned(r.Context(), chi.URLParam(r, "petID"), claims.UserID)
		if err != nil {
			writeError(w, err)
			return
		}

		filter, err := parseListFilter(r)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		items, err := svc.ListByPet(r.Context(), p.ID, filter)
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		out := make([]EntryResponse, 0, len(items))
		for _, e := range items {
			out = append(out, toEntryResponse(e))
		}

		writeJSON(w, http.StatusOK, out)
	}
}

// deleteWeightHandler godoc
// @Summary Borrar registro de peso
// @Tags weights
// @Param X-Debug-User-ID header string true "ID de usuario"
// @Param petID path string true "ID del cachorro"
// @Param entryID path string true "ID del registro"
// @Success 204
// @Failure 401 {string} string "unauthorized"
// @Failure 404 {string} string "pet / entry not found"
// @Router /pets/{petID}/weights/{entryID} [delete]
func deleteWeightHandler(svc *Service, petsSvc *pets.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		p, err := petsSvc.GetOwned(r.Context(), chi.URLParam(r, "petID"), claims.UserID)
		if err != nil {
			writeError(w, err)
			return
		}

		if err := svc.Delete(r.Context(), p.ID, chi.URLParam(r, "entryID")); err != nil {
			writeError(w, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

// growthHandler godoc
// @Summary Estimación de peso adulto y curva de crecimiento
// @Description Usa el log de peso y la fecha de nacimiento. `plausible=false` indica que la estimación no pasa los chequeos veterinarios.
// @Tags weights
// @Produce json
// @Param X-Debug-User-ID header string true "ID de usuario"
// @Param petID path string true "ID del cachorro"
// @Param horizon_weeks query int false "Semanas a pronosticar (0-104)"
// @Success 200 {object} GrowthResponse
// @Failure 400 {string} string "horizon_weeks inválido"
// @Failure 401 {string} string "unauthorized"
// @Failure 404 {string} string "pet not found"
// @Failure 422 {string} string "sin fecha de nacimiento / sin registros de peso"
// @Router /pets/{petID}/growth [get]
func growthHandler(svc *Service, petsSvc *pets.Service, defaultHorizonWeeks int) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		p, err := petsSvc.GetOwned(r.Context(), chi.URLParam(r, "petID"), claims.UserID)
		if err != nil {
			writeError(w, err)
			return
		}

		horizon := defaultHorizonWeeks
		if v := strings.TrimSpace(r.URL.Query().Get("horizon_weeks")); v != "" {
			n, err := strconv.Atoi(v)
			if err != nil || n < 0 || n > MaxHorizonWeeks {
				http.Error(w, "horizon_weeks must be between 0 and 104", http.StatusBadRequest)
				return
			}
			horizon = n
		}

		rep, err := svc.Growth(r.Context(), p, horizon)
		if err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, ToGrowthResponse(rep))
	}
}

func parseListFilter(r *http.Request) (ListFilter, error) {
	var filter ListFilter

	if v := strings.TrimSpace(r.URL.Query().Get("from")); v != "" {
		t, err := time.Parse(time.DateOnly, v)
		if err != nil {
			return ListFilter{}, errors.New("from must be YYYY-MM-DD")
		}
		filter.From = &t
	}
	if v := strings.TrimSpace(r.URL.Query().Get("to")); v != "" {
		t, err := time.Parse(time.DateOnly, v)
		if err != nil {
			return ListFilter{}, errors.New("to must be YYYY-MM-DD")
		}
		filter.To = &t
	}

	return filter, nil
}

func toEntryResponse(e Entry) EntryResponse {
	return EntryResponse{
		ID:         e.ID,
		PetID:      e.PetID,
		Date:       e.Date.Format(time.DateOnly),
		WeightKg:   e.WeightKg,
		Notes:      e.Notes,
		RecordedAt: e.RecordedAt,
	}
}

// ToGrowthResponse también lo usa el endpoint de cálculo sin estado.
func ToGrowthResponse(rep Report) GrowthResponse {
	est := rep.Estimate
	resp := GrowthResponse{
		PetID:                rep.PetID,
		CurrentWeight:        est.CurrentWeight,
		CurrentAgeWeeks:      est.CurrentAgeWeeks,
		EstimatedAdultWeight: est.EstimatedAdultWeight,
		Confidence:           est.Confidence,
		BreedCategory:        est.Category,
		MaturityAgeWeeks:     growth.MaturityAgeWeeks(est.Category),
		Plausible:            rep.Plausible,
		Formulas:             est.Formulas,
		Curve:                rep.Curve,
	}
	if !rep.BirthDate.IsZero() {
		resp.BirthDate = rep.BirthDate.Format(time.DateOnly)
	}
	return resp
}

func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, pets.ErrNotFound):
		http.Error(w, "pet not found", http.StatusNotFound)
	case errors.Is(err, ErrNotFound):
		http.Error(w, "weight entry not found", http.StatusNotFound)
	case errors.Is(err, ErrInvalidInput):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, ErrMissingBirthDate), errors.Is(err, ErrNoSamples), errors.Is(err, growth.ErrInvalidInput):
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
	default:
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

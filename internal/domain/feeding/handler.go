package feeding

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"puppy-growth/internal/domain/pets"
	"puppy-growth/internal/domain/weights"
	"puppy-growth/internal/dosage"
	"puppy-growth/internal/growth"
	"puppy-growth/internal/middleware"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service, petsSvc *pets.Service, weightsSvc *weights.Service) {
	r.Route("/feeding-guides", func(fr chi.Router) {
		fr.Get("/", listGuidesHandler(svc))
		fr.Post("/", createGuideHandler(svc))
		fr.Get("/{guideID}", getGuideHandler(svc))
	})

	r.Get("/pets/{petID}/ration", petRationHandler(svc, petsSvc, weightsSvc))
}

type createGuideRequest struct {
	Name    string                     `json:"name"`
	Brand   string                     `json:"brand"`
	Notes   string                     `json:"notes"`
	Entries []dosage.FeedingGuideEntry `json:"entries"`
}

type GuideResponse struct {
	ID        string                     `json:"id"`
	Name      string                     `json:"name"`
	Brand     string                     `json:"brand"`
	Notes     string                     `json:"notes"`
	Source    Source                     `json:"source"`
	Entries   []dosage.FeedingGuideEntry `json:"entries"`
	CreatedAt time.Time                  `json:"created_at"`
}

// RationResponse: los gramos en null significan "no se puede calcular".
type RationResponse struct {
	GuideID         string               `json:"guide_id,omitempty"`
	WeightKg        float64              `json:"weight_kg"`
	BaseGrams       *float64             `json:"base_grams"`
	AdjustedGrams   *float64             `json:"adjusted_grams"`
	ExpectedAdultKg *float64             `json:"expected_adult_weight,omitempty"`
	BreedCategory   growth.BreedCategory `json:"breed_category,omitempty"`
	Multiplier      float64              `json:"metabolic_multiplier,omitempty"`
}

// listGuidesHandler godoc
// @Summary Listar guías de alimentación
// @Tags feeding
// @Produce json
// @Success 200 {array} GuideResponse
// @Failure 500 {string} string "internal error"
// @Router /feeding-guides [get]
func listGuidesHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.List(r.Context())
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		out := make([]GuideResponse, 0, len(items))
		for _, g := range items {
			out = append(out, toGuideResponse(g))
		}

		writeJSON(w, http.StatusOK, out)
	}
}

// createGuideHandler godoc
// @Summary Registrar guía de alimentación
// @Description Filas kg → g/día. Se rechazan filas con límites invertidos o negativos.
// @Tags feeding
// @Accept json
// @Produce json
// @Param X-Debug-User-ID header string true "ID de usuario"
// @Param payload body createGuideRequest true "Guía"
// @Success 201 {object} GuideResponse
// @Failure 400 {string} string "invalid json / filas inválidas"
// @Failure 401 {string} string "unauthorized"
// @Router /feeding-guides [post]
func createGuideHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		var req createGuideRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		g, err := svc.Create(r.Context(), CreateInput{
			Name:    req.Name,
			Brand:   req.Brand,
			Notes:   req.Notes,
			Entries: req.Entries,
		})
		if err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, toGuideResponse(g))
	}
}

// getGuideHandler godoc
// @Summary Detalle de guía
// @Tags feeding
// @Produce json
// @Param guideID path string true "ID de la guía"
// @Success 200 {object} GuideResponse
// @Failure 404 {string} string "feeding guide not found"
// @Router /feeding-guides/{guideID} [get]
func getGuideHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		g, err := svc.GetByID(r.Context(), chi.URLParam(r, "guideID"))
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, toGuideResponse(g))
	}
}

// petRationHandler godoc
// @Summary Ración recomendada para un cachorro
// @Description Usa el último peso registrado. Si hay fecha de nacimiento, aplica el multiplicador metabólico según el peso adulto estimado.
// @Tags feeding
// @Produce json
// @Param X-Debug-User-ID header string true "ID de usuario"
// @Param petID path string true "ID del cachorro"
// @Param guide_id query string true "ID de la guía"
// @Success 200 {object} RationResponse
// @Failure 400 {string} string "guide_id requerido"
// @Failure 401 {string} string "unauthorized"
// @Failure 404 {string} string "pet / guía no encontrada"
// @Failure 422 {string} string "sin registros de peso"
// @Router /pets/{petID}/ration [get]
func petRationHandler(svc *Service, petsSvc *pets.Service, weightsSvc *weights.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		guideID := strings.TrimSpace(r.URL.Query().Get("guide_id"))
		if guideID == "" {
			http.Error(w, "guide_id is required", http.StatusBadRequest)
			return
		}

		p, err := petsSvc.GetOwned(r.Context(), chi.URLParam(r, "petID"), claims.UserID)
		if err != nil {
			writeError(w, err)
			return
		}

		latest, err := weightsSvc.Latest(r.Context(), p.ID)
		if err != nil {
			writeError(w, err)
			return
		}

		// Sin fecha de nacimiento (o con datos incoherentes) solo hay ración base.
		var expected *float64
		if p.BirthDate != nil {
			samples, err := weightsSvc.Samples(r.Context(), p.ID)
			if err != nil {
				writeError(w, err)
				return
			}
			est, err := growth.EstimateAdultWeight(samples, *p.BirthDate)
			switch {
			case err == nil:
				v := est.EstimatedAdultWeight
				expected = &v
			case errors.Is(err, growth.ErrInvalidInput):
			default:
				writeError(w, err)
				return
			}
		}

		ration, err := svc.Ration(r.Context(), guideID, latest.WeightKg, expected)
		if err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, ToRationResponse(ration))
	}
}

func toGuideResponse(g Guide) GuideResponse {
	entries := g.Entries
	if entries == nil {
		entries = []dosage.FeedingGuideEntry{}
	}
	return GuideResponse{
		ID:        g.ID,
		Name:      g.Name,
		Brand:     g.Brand,
		Notes:     g.Notes,
		Source:    g.Source,
		Entries:   entries,
		CreatedAt: g.CreatedAt,
	}
}

func ToRationResponse(r Ration) RationResponse {
	return RationResponse{
		GuideID:         r.GuideID,
		WeightKg:        r.WeightKg,
		BaseGrams:       r.BaseGrams,
		AdjustedGrams:   r.AdjustedGrams,
		ExpectedAdultKg: r.ExpectedAdultKg,
		BreedCategory:   r.Category,
		Multiplier:      r.Multiplier,
	}
}

func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, pets.ErrNotFound):
		http.Error(w, "pet not found", http.StatusNotFound)
	case errors.Is(err, ErrNotFound):
		http.Error(w, "feeding guide not found", http.StatusNotFound)
	case errors.Is(err, ErrInvalidInput):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, weights.ErrNoSamples):
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

package feeding

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"puppy-growth/internal/dosage"
	"puppy-growth/internal/growth"

	"github.com/google/uuid"
)

var (
	ErrInvalidInput = errors.New("invalid input")
)

// Resultados de una consulta de ración (para métricas).
const (
	OutcomeComputed   = "computed"
	OutcomeOutOfRange = "out_of_range"
)

type Observer interface {
	ObserveDosage(outcome string)
}

type nopObserver struct{}

func (nopObserver) ObserveDosage(string) {}

type Service struct {
	repo Repository
	obs  Observer
	now  func() time.Time
}

func NewService(repo Repository, obs Observer) *Service {
	if obs == nil {
		obs = nopObserver{}
	}
	return &Service{
		repo: repo,
		obs:  obs,
		now:  time.Now,
	}
}

type CreateInput struct {
	Name    string
	Brand   string
	Notes   string
	Entries []dosage.FeedingGuideEntry
}

func (s *Service) Create(ctx context.Context, in CreateInput) (Guide, error) {
	if strings.TrimSpace(in.Name) == "" {
		return Guide{}, fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if err := dosage.ValidateGuide(in.Entries); err != nil {
		return Guide{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	g := Guide{
		ID:        uuid.NewString(),
		Name:      strings.TrimSpace(in.Name),
		Brand:     strings.TrimSpace(in.Brand),
		Notes:     strings.TrimSpace(in.Notes),
		Source:    SourceManual,
		Entries:   in.Entries,
		CreatedAt: s.now(),
	}

	if err := s.repo.Create(ctx, g); err != nil {
		return Guide{}, err
	}
	return g, nil
}

// Seed registra las guías estáticas que todavía no existan.
// Devuelve cuántas se crearon.
func (s *Service) Seed(ctx context.Context, guides []Guide) (int, error) {
	created := 0
	for _, g := range guides {
		_, err := s.repo.GetByID(ctx, g.ID)
		if err == nil {
			continue
		}
		if !errors.Is(err, ErrNotFound) {
			return created, err
		}

		g.Source = SourceStatic
		if g.CreatedAt.IsZero() {
			g.CreatedAt = s.now()
		}
		if err := s.repo.Create(ctx, g); err != nil {
			return created, fmt.Errorf("seed guide %q: %w", g.Name, err)
		}
		created++
	}
	return created, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (Guide, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return Guide{}, ErrInvalidInput
	}
	return s.repo.GetByID(ctx, id)
}

func (s *Service) List(ctx context.Context) ([]Guide, error) {
	return s.repo.List(ctx)
}

// Ration calcula la ración diaria para weightKg con la guía indicada.
// Si expectedAdultKg viene, también devuelve la ración ajustada por tamaño.
func (s *Service) Ration(ctx context.Context, guideID string, weightKg float64, expectedAdultKg *float64) (Ration, error) {
	if weightKg <= 0 || math.IsNaN(weightKg) || math.IsInf(weightKg, 0) {
		return Ration{}, fmt.Errorf("%w: weight must be positive", ErrInvalidInput)
	}
	if expectedAdultKg != nil && (*expectedAdultKg <= 0 || math.IsNaN(*expectedAdultKg)) {
		return Ration{}, fmt.Errorf("%w: expected adult weight must be positive", ErrInvalidInput)
	}

	g, err := s.GetByID(ctx, guideID)
	if err != nil {
		return Ration{}, err
	}

	return s.compute(g.ID, g.Entries, weightKg, expectedAdultKg), nil
}

// RationForEntries es la variante sin guía persistida (endpoint de cálculo).
func (s *Service) RationForEntries(entries []dosage.FeedingGuideEntry, weightKg float64, expectedAdultKg *float64) Ration {
	return s.compute("", entries, weightKg, expectedAdultKg)
}

func (s *Service) compute(guideID string, entries []dosage.FeedingGuideEntry, weightKg float64, expectedAdultKg *float64) Ration {
	out := Ration{
		GuideID:         guideID,
		WeightKg:        weightKg,
		ExpectedAdultKg: expectedAdultKg,
	}

	if base, ok := dosage.CalculateDosage(entries, weightKg); ok {
		out.BaseGrams = &base
		s.obs.ObserveDosage(OutcomeComputed)
	} else {
		s.obs.ObserveDosage(OutcomeOutOfRange)
	}

	if expectedAdultKg != nil {
		out.Category = growth.CategoryForWeight(*expectedAdultKg)
		out.Multiplier = growth.MetabolicMultiplier(*expectedAdultKg)
		if adj, ok := dosage.BreedAdjustedDosage(entries, weightKg, *expectedAdultKg); ok {
			out.AdjustedGrams = &adj
		}
	}

	return out
}

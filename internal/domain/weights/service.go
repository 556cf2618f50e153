package weights

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"puppy-growth/internal/domain/pets"
	"puppy-growth/internal/growth"

	"github.com/google/uuid"
)

var (
	ErrInvalidInput     = errors.New("invalid input")
	ErrMissingBirthDate = errors.New("pet has no birth date")
	ErrNoSamples        = errors.New("pet has no weight entries")
)

// maxWeightKg es un tope de cordura para el input, no un límite biológico.
const maxWeightKg = 150

// Observer recibe cada estimación calculada (métricas).
type Observer interface {
	ObserveEstimate(category growth.BreedCategory, plausible bool)
}

type nopObserver struct{}

func (nopObserver) ObserveEstimate(growth.BreedCategory, bool) {}

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

type RecordInput struct {
	Date   time.Time
	Weight float64
	Unit   Unit
	Notes  string
}

func (s *Service) Record(ctx context.Context, petID string, in RecordInput) (Entry, error) {
	if strings.TrimSpace(petID) == "" {
		return Entry{}, ErrInvalidInput
	}
	if in.Date.IsZero() {
		return Entry{}, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	kg, ok := toKg(in.Weight, in.Unit)
	if !ok {
		return Entry{}, fmt.Errorf("%w: unit must be kg or lb", ErrInvalidInput)
	}
	if kg <= 0 || kg > maxWeightKg || math.IsNaN(kg) {
		return Entry{}, fmt.Errorf("%w: weight out of range", ErrInvalidInput)
	}

	now := s.now()
	day := dateOnly(in.Date)
	if day.After(dateOnly(now.UTC())) {
		return Entry{}, fmt.Errorf("%w: date cannot be in the future", ErrInvalidInput)
	}

	return s.repo.Upsert(ctx, Entry{
		ID:         uuid.NewString(),
		PetID:      petID,
		Date:       day,
		WeightKg:   kg,
		Notes:      strings.TrimSpace(in.Notes),
		RecordedAt: now,
	})
}

func (s *Service) ListByPet(ctx context.Context, petID string, filter ListFilter) ([]Entry, error) {
	return s.repo.ListByPet(ctx, petID, filter)
}

// Delete borra una entrada verificando que sea del pet indicado.
func (s *Service) Delete(ctx context.Context, petID, entryID string) error {
	e, err := s.repo.GetByID(ctx, strings.TrimSpace(entryID))
	if err != nil {
		return err
	}
	if e.PetID != petID {
		return ErrNotFound
	}
	return s.repo.Delete(ctx, e.ID)
}

// Latest devuelve la entrada más reciente del pet.
func (s *Service) Latest(ctx context.Context, petID string) (Entry, error) {
	entries, err := s.repo.ListByPet(ctx, petID, ListFilter{})
	if err != nil {
		return Entry{}, err
	}
	if len(entries) == 0 {
		return Entry{}, ErrNoSamples
	}
	return entries[len(entries)-1], nil
}

// Samples adapta el log de peso al formato del estimador.
func (s *Service) Samples(ctx context.Context, petID string) ([]growth.WeightSample, error) {
	entries, err := s.repo.ListByPet(ctx, petID, ListFilter{})
	if err != nil {
		return nil, err
	}
	return toSamples(entries), nil
}

// Growth calcula la estimación de peso adulto y la curva a horizonWeeks.
func (s *Service) Growth(ctx context.Context, p pets.Pet, horizonWeeks int) (Report, error) {
	if p.BirthDate == nil {
		return Report{}, ErrMissingBirthDate
	}

	samples, err := s.Samples(ctx, p.ID)
	if err != nil {
		return Report{}, err
	}
	if len(samples) == 0 {
		return Report{}, ErrNoSamples
	}

	est, err := growth.EstimateAdultWeight(samples, *p.BirthDate)
	if err != nil {
		return Report{}, fmt.Errorf("estimate adult weight: %w", err)
	}
	curve, err := growth.PredictGrowthCurve(samples, *p.BirthDate, horizonWeeks)
	if err != nil {
		return Report{}, fmt.Errorf("predict growth curve: %w", err)
	}

	plausible := growth.ValidateVeterinaryEstimate(est.CurrentWeight, est.EstimatedAdultWeight, est.CurrentAgeWeeks)
	s.obs.ObserveEstimate(est.Category, plausible)

	return Report{
		PetID:     p.ID,
		BirthDate: *p.BirthDate,
		Estimate:  est,
		Curve:     curve,
		Plausible: plausible,
	}, nil
}

func dateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

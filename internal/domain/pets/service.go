package pets

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidInput = errors.New("invalid input")
)

type Service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{
		repo: repo,
		now:  time.Now,
	}
}

type CreateInput struct {
	Name      string
	Breed     string
	Sex       string
	BirthDate *time.Time
	Notes     string
}

func (s *Service) Create(ctx context.Context, ownerUserID string, in CreateInput) (Pet, error) {
	if strings.TrimSpace(ownerUserID) == "" {
		return Pet{}, ErrInvalidInput
	}
	if strings.TrimSpace(in.Name) == "" {
		return Pet{}, fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	sex, ok := ParseSex(strings.TrimSpace(in.Sex))
	if !ok {
		return Pet{}, fmt.Errorf("%w: sex must be male, female or unknown", ErrInvalidInput)
	}

	now := s.now()
	if err := checkBirthDate(in.BirthDate, now); err != nil {
		return Pet{}, err
	}

	p := Pet{
		ID:          uuid.NewString(),
		OwnerUserID: ownerUserID,
		Name:        strings.TrimSpace(in.Name),
		Breed:       strings.TrimSpace(in.Breed),
		Sex:         sex,
		BirthDate:   in.BirthDate,
		Notes:       strings.TrimSpace(in.Notes),
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.repo.Create(ctx, p); err != nil {
		return Pet{}, err
	}
	return p, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (Pet, error) {
	return s.repo.GetByID(ctx, id)
}

// GetOwned devuelve el pet solo si pertenece a userID.
// Si no es del usuario responde ErrNotFound para no filtrar su existencia.
func (s *Service) GetOwned(ctx context.Context, petID, userID string) (Pet, error) {
	p, err := s.repo.GetByID(ctx, strings.TrimSpace(petID))
	if err != nil {
		return Pet{}, err
	}
	if p.OwnerUserID != userID {
		return Pet{}, ErrNotFound
	}
	return p, nil
}

func (s *Service) ListByOwner(ctx context.Context, ownerUserID string) ([]Pet, error) {
	return s.repo.ListByOwner(ctx, ownerUserID)
}

// OptionalDate distingue "no enviado" de "enviado como null" en un PATCH.
type OptionalDate struct {
	Present bool
	Value   *time.Time
}

type UpdateProfileInput struct {
	// nil = no tocar
	Name      *string
	Breed     *string
	Sex       *string
	BirthDate OptionalDate
	Notes     *string
}

func (s *Service) UpdateProfile(ctx context.Context, petID, userID string, in UpdateProfileInput) (Pet, error) {
	p, err := s.GetOwned(ctx, petID, userID)
	if err != nil {
		return Pet{}, err
	}

	if in.Name != nil {
		name := strings.TrimSpace(*in.Name)
		if name == "" {
			return Pet{}, fmt.Errorf("%w: name cannot be empty", ErrInvalidInput)
		}
		p.Name = name
	}
	if in.Breed != nil {
		p.Breed = strings.TrimSpace(*in.Breed)
	}
	if in.Sex != nil {
		sex, ok := ParseSex(strings.TrimSpace(*in.Sex))
		if !ok {
			return Pet{}, fmt.Errorf("%w: sex must be male, female or unknown", ErrInvalidInput)
		}
		p.Sex = sex
	}
	if in.Notes != nil {
		p.Notes = strings.TrimSpace(*in.Notes)
	}

	now := s.now()
	if in.BirthDate.Present {
		if err := checkBirthDate(in.BirthDate.Value, now); err != nil {
			return Pet{}, err
		}
		p.BirthDate = in.BirthDate.Value
	}

	p.UpdatedAt = now
	if err := s.repo.Update(ctx, p); err != nil {
		return Pet{}, err
	}
	return p, nil
}

func checkBirthDate(bd *time.Time, now time.Time) error {
	if bd != nil && bd.After(now) {
		return fmt.Errorf("%w: birth_date cannot be in the future", ErrInvalidInput)
	}
	return nil
}

package weights

import (
	"context"
	"errors"
	"time"
)

var ErrNotFound = errors.New("weight entry not found")

type Repository interface {
	// Upsert crea la entrada o reemplaza la existente para (PetID, Date),
	// conservando su ID. Devuelve lo que quedó guardado.
	Upsert(ctx context.Context, e Entry) (Entry, error)
	GetByID(ctx context.Context, id string) (Entry, error)
	// ListByPet ordena por fecha ascendente.
	ListByPet(ctx context.Context, petID string, filter ListFilter) ([]Entry, error)
	Delete(ctx context.Context, id string) error
}

type ListFilter struct {
	From *time.Time
	To   *time.Time
}

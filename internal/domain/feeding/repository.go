package feeding

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("feeding guide not found")

type Repository interface {
	Create(ctx context.Context, g Guide) error
	GetByID(ctx context.Context, id string) (Guide, error)
	// List ordena por nombre.
	List(ctx context.Context) ([]Guide, error)
}

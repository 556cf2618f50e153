package memory

import (
	"context"
	"errors"
	"sort"
	"sync"

	"puppy-growth/internal/domain/feeding"
	"puppy-growth/internal/dosage"
)

type guideRepo struct {
	mu   sync.RWMutex
	byID map[string]feeding.Guide
}

func NewGuideRepo() feeding.Repository {
	return &guideRepo{
		byID: make(map[string]feeding.Guide),
	}
}

func (r *guideRepo) Create(ctx context.Context, g feeding.Guide) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if g.ID == "" {
		return errors.New("guide id required")
	}
	if _, exists := r.byID[g.ID]; exists {
		return errors.New("guide already exists")
	}

	// copia de las filas: el llamador puede seguir usando su slice
	g.Entries = append([]dosage.FeedingGuideEntry(nil), g.Entries...)
	r.byID[g.ID] = g
	return nil
}

func (r *guideRepo) GetByID(ctx context.Context, id string) (feeding.Guide, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	g, ok := r.byID[id]
	if !ok {
		return feeding.Guide{}, feeding.ErrNotFound
	}
	return g, nil
}

func (r *guideRepo) List(ctx context.Context) ([]feeding.Guide, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]feeding.Guide, 0, len(r.byID))
	for _, g := range r.byID {
		out = append(out, g)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Name < out[j].Name
	})
	return out, nil
}

package memory

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"puppy-growth/internal/domain/weights"
)

type weightRepo struct {
	mu   sync.RWMutex
	byID map[string]weights.Entry
	// índice pet+fecha → id, para colapsar registros del mismo día
	byDay map[dayKey]string
}

type dayKey struct {
	petID string
	date  time.Time
}

func NewWeightRepo() weights.Repository {
	return &weightRepo{
		byID:  make(map[string]weights.Entry),
		byDay: make(map[dayKey]string),
	}
}

func (r *weightRepo) Upsert(ctx context.Context, e weights.Entry) (weights.Entry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if e.ID == "" {
		return weights.Entry{}, errors.New("weight entry id required")
	}

	k := dayKey{petID: e.PetID, date: e.Date.UTC()}
	if id, ok := r.byDay[k]; ok {
		e.ID = id
	}

	r.byID[e.ID] = e
	r.byDay[k] = e.ID
	return e, nil
}

func (r *weightRepo) GetByID(ctx context.Context, id string) (weights.Entry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	e, ok := r.byID[id]
	if !ok {
		return weights.Entry{}, weights.ErrNotFound
	}
	return e, nil
}

func (r *weightRepo) ListByPet(ctx context.Context, petID string, filter weights.ListFilter) ([]weights.Entry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]weights.Entry, 0)
	for _, e := range r.byID {
		if e.PetID != petID {
			continue
		}
		if filter.From != nil && e.Date.Before(*filter.From) {
			continue
		}
		if filter.To != nil && e.Date.After(*filter.To) {
			continue
		}
		out = append(out, e)
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].Date.Before(out[j].Date)
	})

	return out, nil
}

func (r *weightRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	e, ok := r.byID[id]
	if !ok {
		return weights.ErrNotFound
	}
	delete(r.byID, id)
	delete(r.byDay, dayKey{petID: e.PetID, date: e.Date.UTC()})
	return nil
}

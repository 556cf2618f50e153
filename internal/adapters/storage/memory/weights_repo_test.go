package memory

import (
	"context"
	"testing"
	"time"

	"puppy-growth/internal/domain/feeding"
	"puppy-growth/internal/domain/pets"
	"puppy-growth/internal/domain/weights"
	"puppy-growth/internal/dosage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWeightRepo_UpsertCollapsesSameDay(t *testing.T) {
	repo := NewWeightRepo()
	ctx := context.Background()
	day := time.Date(2025, 4, 2, 0, 0, 0, 0, time.UTC)

	first, err := repo.Upsert(ctx, weights.Entry{ID: "a", PetID: "pet-1", Date: day, WeightKg: 3})
	require.NoError(t, err)
	second, err := repo.Upsert(ctx, weights.Entry{ID: "b", PetID: "pet-1", Date: day, WeightKg: 3.2})
	require.NoError(t, err)
	_, err = repo.Upsert(ctx, weights.Entry{ID: "c", PetID: "pet-2", Date: day, WeightKg: 9})
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)

	items, err := repo.ListByPet(ctx, "pet-1", weights.ListFilter{})
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, 3.2, items[0].WeightKg)
}

func TestWeightRepo_ListFilterAndDelete(t *testing.T) {
	repo := NewWeightRepo()
	ctx := context.Background()
	base := time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC)

	for i, id := range []string{"w3", "w1", "w2"} {
		_, err := repo.Upsert(ctx, weights.Entry{ID: id, PetID: "pet-1", Date: base.AddDate(0, 0, 7*(2-i)), WeightKg: float64(i + 1)})
		require.NoError(t, err)
	}

	from := base.AddDate(0, 0, 7)
	items, err := repo.ListByPet(ctx, "pet-1", weights.ListFilter{From: &from})
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.True(t, items[0].Date.Before(items[1].Date))

	require.NoError(t, repo.Delete(ctx, "w1"))
	require.ErrorIs(t, repo.Delete(ctx, "w1"), weights.ErrNotFound)

	// tras borrar, el mismo día admite un registro nuevo con otro id
	e, err := repo.Upsert(ctx, weights.Entry{ID: "w9", PetID: "pet-1", Date: base.AddDate(0, 0, 7), WeightKg: 5})
	require.NoError(t, err)
	assert.Equal(t, "w9", e.ID)
}

func TestPetRepo_NotFound(t *testing.T) {
	repo := NewPetRepo()

	_, err := repo.GetByID(context.Background(), "nope")
	require.ErrorIs(t, err, pets.ErrNotFound)
	require.ErrorIs(t, repo.Update(context.Background(), pets.Pet{ID: "nope"}), pets.ErrNotFound)
}

func TestGuideRepo_CopiesEntries(t *testing.T) {
	repo := NewGuideRepo()
	ctx := context.Background()

	rows := []dosage.FeedingGuideEntry{{WeightMin: 1, WeightMax: 2, AmountMin: 10, AmountMax: 20}}
	require.NoError(t, repo.Create(ctx, feeding.Guide{ID: "g1", Name: "G", Entries: rows}))
	require.Error(t, repo.Create(ctx, feeding.Guide{ID: "g1", Name: "G"}))

	rows[0].AmountMax = 999

	g, err := repo.GetByID(ctx, "g1")
	require.NoError(t, err)
	assert.Equal(t, 20.0, g.Entries[0].AmountMax)
}

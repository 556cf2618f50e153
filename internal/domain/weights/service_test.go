package weights

import (
	"context"
	"sort"
	"testing"
	"time"

	"puppy-growth/internal/domain/pets"
	"puppy-growth/internal/growth"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// -------------------------
// Test repo (in-memory)
// -------------------------

type testRepo struct {
	byID map[string]Entry
}

func newTestRepo() *testRepo {
	return &testRepo{byID: map[string]Entry{}}
}

func (r *testRepo) Upsert(ctx context.Context, e Entry) (Entry, error) {
	for id, cur := range r.byID {
		if cur.PetID == e.PetID && cur.Date.Equal(e.Date) {
			e.ID = id
			break
		}
	}
	r.byID[e.ID] = e
	return e, nil
}

func (r *testRepo) GetByID(ctx context.Context, id string) (Entry, error) {
	e, ok := r.byID[id]
	if !ok {
		return Entry{}, ErrNotFound
	}
	return e, nil
}

func (r *testRepo) ListByPet(ctx context.Context, petID string, filter ListFilter) ([]Entry, error) {
	out := make([]Entry, 0)
	for _, e := range r.byID {
		if e.PetID == petID {
			out = append(out, e)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.Before(out[j].Date) })
	return out, nil
}

func (r *testRepo) Delete(ctx context.Context, id string) error {
	if _, ok := r.byID[id]; !ok {
		return ErrNotFound
	}
	delete(r.byID, id)
	return nil
}

type recordingObserver struct {
	categories []growth.BreedCategory
}

func (o *recordingObserver) ObserveEstimate(c growth.BreedCategory, _ bool) {
	o.categories = append(o.categories, c)
}

var testNow = time.Date(2025, 6, 1, 9, 30, 0, 0, time.UTC)

func newTestService() (*Service, *recordingObserver) {
	obs := &recordingObserver{}
	svc := NewService(newTestRepo(), obs)
	svc.now = func() time.Time { return testNow }
	return svc, obs
}

// -------------------------
// Tests
// -------------------------

func TestService_Record_SameDayKeepsLatestWrite(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()
	day := time.Date(2025, 5, 20, 18, 0, 0, 0, time.UTC)

	first, err := svc.Record(ctx, "pet-1", RecordInput{Date: day, Weight: 4.2})
	require.NoError(t, err)

	second, err := svc.Record(ctx, "pet-1", RecordInput{Date: day.Add(-8 * time.Hour), Weight: 4.4, Notes: "after lunch"})
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)

	items, err := svc.ListByPet(ctx, "pet-1", ListFilter{})
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, 4.4, items[0].WeightKg)
	assert.Equal(t, "after lunch", items[0].Notes)
	assert.Equal(t, time.Date(2025, 5, 20, 0, 0, 0, 0, time.UTC), items[0].Date)
}

func TestService_Record_ConvertsPounds(t *testing.T) {
	svc, _ := newTestService()

	e, err := svc.Record(context.Background(), "pet-1", RecordInput{
		Date:   testNow,
		Weight: 10,
		Unit:   UnitLb,
	})
	require.NoError(t, err)
	assert.InDelta(t, 4.5359237, e.WeightKg, 1e-9)
}

func TestService_Record_Validation(t *testing.T) {
	svc, _ := newTestService()

	cases := map[string]RecordInput{
		"no date":      {Weight: 3},
		"zero weight":  {Date: testNow, Weight: 0},
		"huge weight":  {Date: testNow, Weight: 500},
		"unknown unit": {Date: testNow, Weight: 3, Unit: "stone"},
		"future":       {Date: testNow.AddDate(0, 0, 2), Weight: 3},
	}
	for name, in := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := svc.Record(context.Background(), "pet-1", in)
			require.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestService_Delete_ChecksPet(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	e, err := svc.Record(ctx, "pet-1", RecordInput{Date: testNow, Weight: 3})
	require.NoError(t, err)

	require.ErrorIs(t, svc.Delete(ctx, "pet-2", e.ID), ErrNotFound)
	require.NoError(t, svc.Delete(ctx, "pet-1", e.ID))
	require.ErrorIs(t, svc.Delete(ctx, "pet-1", e.ID), ErrNotFound)
}

func TestService_Growth(t *testing.T) {
	svc, obs := newTestService()
	ctx := context.Background()

	birth := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	p := pets.Pet{ID: "pet-1", BirthDate: &birth}

	_, err := svc.Growth(ctx, p, 8)
	require.ErrorIs(t, err, ErrNoSamples)

	_, err = svc.Growth(ctx, pets.Pet{ID: "pet-1"}, 8)
	require.ErrorIs(t, err, ErrMissingBirthDate)

	_, err = svc.Record(ctx, "pet-1", RecordInput{Date: birth.AddDate(0, 0, 12*7), Weight: 6})
	require.NoError(t, err)
	_, err = svc.Record(ctx, "pet-1", RecordInput{Date: birth.AddDate(0, 0, 16*7), Weight: 8})
	require.NoError(t, err)

	rep, err := svc.Growth(ctx, p, 8)
	require.NoError(t, err)

	assert.InDelta(t, 20.48, rep.Estimate.EstimatedAdultWeight, 1e-9)
	assert.Equal(t, growth.CategoryMedium, rep.Estimate.Category)
	assert.True(t, rep.Plausible)
	assert.Len(t, rep.Curve, 2+8)
	assert.Equal(t, []growth.BreedCategory{growth.CategoryMedium}, obs.categories)

	latest, err := svc.Latest(ctx, "pet-1")
	require.NoError(t, err)
	assert.Equal(t, 8.0, latest.WeightKg)
}

func TestService_Growth_SampleBeforeBirth(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	birth := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	_, err := svc.Record(ctx, "pet-1", RecordInput{Date: birth.AddDate(0, 0, -3), Weight: 0.4})
	require.NoError(t, err)

	_, err = svc.Growth(ctx, pets.Pet{ID: "pet-1", BirthDate: &birth}, 4)
	require.ErrorIs(t, err, growth.ErrInvalidInput)
}

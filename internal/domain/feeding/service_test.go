package feeding

import (
	"context"
	"sort"
	"strings"
	"testing"
	"time"

	"puppy-growth/internal/dosage"
	"puppy-growth/internal/growth"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// -------------------------
// Test repo (in-memory)
// -------------------------

type testRepo struct {
	byID map[string]Guide
}

func newTestRepo() *testRepo {
	return &testRepo{byID: map[string]Guide{}}
}

func (r *testRepo) Create(ctx context.Context, g Guide) error {
	r.byID[g.ID] = g
	return nil
}

func (r *testRepo) GetByID(ctx context.Context, id string) (Guide, error) {
	g, ok := r.byID[id]
	if !ok {
		return Guide{}, ErrNotFound
	}
	return g, nil
}

func (r *testRepo) List(ctx context.Context) ([]Guide, error) {
	out := make([]Guide, 0, len(r.byID))
	for _, g := range r.byID {
		out = append(out, g)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

type countingObserver struct {
	outcomes map[string]int
}

func (o *countingObserver) ObserveDosage(outcome string) { o.outcomes[outcome]++ }

func newTestService() (*Service, *countingObserver) {
	obs := &countingObserver{outcomes: map[string]int{}}
	svc := NewService(newTestRepo(), obs)
	svc.now = func() time.Time { return time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC) }
	return svc, obs
}

var mediumRows = []dosage.FeedingGuideEntry{
	{WeightMin: 5, WeightMax: 10, AmountMin: 170, AmountMax: 260},
	{WeightMin: 10, WeightMax: 15, AmountMin: 150, AmountMax: 200},
}

// -------------------------
// Tests
// -------------------------

func TestService_Create_RejectsInvertedRows(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.Create(context.Background(), CreateInput{
		Name:    "Bad",
		Entries: []dosage.FeedingGuideEntry{{WeightMin: 10, WeightMax: 5, AmountMin: 1, AmountMax: 2}},
	})
	require.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.Create(context.Background(), CreateInput{Name: " ", Entries: mediumRows})
	require.ErrorIs(t, err, ErrInvalidInput)
}

func TestService_Ration_BaseAndAdjusted(t *testing.T) {
	svc, obs := newTestService()
	ctx := context.Background()

	g, err := svc.Create(ctx, CreateInput{Name: "Medium", Entries: mediumRows})
	require.NoError(t, err)
	assert.Equal(t, SourceManual, g.Source)

	adult := 40.0
	r, err := svc.Ration(ctx, g.ID, 12.5, &adult)
	require.NoError(t, err)

	require.NotNil(t, r.BaseGrams)
	assert.Equal(t, 175.0, *r.BaseGrams)
	require.NotNil(t, r.AdjustedGrams)
	assert.Equal(t, 166.0, *r.AdjustedGrams)
	assert.Equal(t, growth.CategoryLarge, r.Category)
	assert.Equal(t, 0.95, r.Multiplier)
	assert.Equal(t, 1, obs.outcomes[OutcomeComputed])
}

func TestService_Ration_OutOfRangeStillAdjusts(t *testing.T) {
	svc, obs := newTestService()
	ctx := context.Background()

	g, err := svc.Create(ctx, CreateInput{Name: "Medium", Entries: mediumRows})
	require.NoError(t, err)

	adult := 22.0
	r, err := svc.Ration(ctx, g.ID, 18, &adult)
	require.NoError(t, err)

	assert.Nil(t, r.BaseGrams)
	require.NotNil(t, r.AdjustedGrams) // extrapolado con las dos filas más cercanas
	assert.Equal(t, 1, obs.outcomes[OutcomeOutOfRange])

	noAdult, err := svc.Ration(ctx, g.ID, 7.5, nil)
	require.NoError(t, err)
	require.NotNil(t, noAdult.BaseGrams)
	assert.Equal(t, 215.0, *noAdult.BaseGrams)
	assert.Nil(t, noAdult.AdjustedGrams)
	assert.Empty(t, noAdult.Category)
}

func TestService_Ration_Errors(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	_, err := svc.Ration(ctx, "missing", 5, nil)
	require.ErrorIs(t, err, ErrNotFound)

	_, err = svc.Ration(ctx, "missing", 0, nil)
	require.ErrorIs(t, err, ErrInvalidInput)
}

func TestService_Seed_IsIdempotent(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	guides, err := LoadStaticGuides("")
	require.NoError(t, err)
	require.Len(t, guides, 3)

	n, err := svc.Seed(ctx, guides)
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	n, err = svc.Seed(ctx, guides)
	require.NoError(t, err)
	assert.Equal(t, 0, n)

	items, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, items, 3)
	for _, g := range items {
		assert.Equal(t, SourceStatic, g.Source)
		assert.Equal(t, StaticGuideID(g.Name), g.ID)
	}
}

func TestParseStaticGuides_RejectsInvalidRows(t *testing.T) {
	doc := `
guides:
  - name: broken
    entries:
      - {weight_min: 10, weight_max: 5, amount_min: 100, amount_max: 200}
`
	_, err := ParseStaticGuides(strings.NewReader(doc))
	require.ErrorIs(t, err, dosage.ErrInvalidEntry)

	_, err = ParseStaticGuides(strings.NewReader("guides:\n  - name: x\n    colour: red\n"))
	require.Error(t, err)
}

package dosage

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestCalculateDosage_WithinRow(t *testing.T) {
	guide := []FeedingGuideEntry{{WeightMin: 10, WeightMax: 15, AmountMin: 150, AmountMax: 200}}

	got, ok := CalculateDosage(guide, 12.5)
	require.True(t, ok)
	assert.Equal(t, 175.0, got)
}

func TestCalculateDosage_RoundsToGram(t *testing.T) {
	guide := []FeedingGuideEntry{{WeightMin: 2, WeightMax: 5, AmountMin: 60, AmountMax: 110}}

	got, ok := CalculateDosage(guide, 3)
	require.True(t, ok)
	assert.Equal(t, 77.0, got) // 76.67
}

func TestCalculateDosage_DegenerateRow(t *testing.T) {
	guide := []FeedingGuideEntry{{WeightMin: 10, WeightMax: 10, AmountMin: 120, AmountMax: 120}}

	got, ok := CalculateDosage(guide, 10)
	require.True(t, ok)
	assert.Equal(t, 120.0, got)
}

func TestCalculateDosage_OutOfBounds(t *testing.T) {
	guide := []FeedingGuideEntry{
		{WeightMin: 5, WeightMax: 10, AmountMin: 100, AmountMax: 160},
		{WeightMin: 10, WeightMax: 25, AmountMin: 160, AmountMax: 320},
		{WeightMin: 25, WeightMax: 40, AmountMin: 320, AmountMax: 450},
	}

	_, ok := CalculateDosage(guide, 50)
	assert.False(t, ok)

	_, ok = CalculateDosage(guide, 2)
	assert.False(t, ok)
}

func TestCalculateDosage_EmptyGuide(t *testing.T) {
	_, ok := CalculateDosage(nil, 10)
	assert.False(t, ok)
}

func TestCalculateDosage_GapBetweenRows_UsesMidpoints(t *testing.T) {
	// Filas desordenadas a propósito: el cálculo ordena internamente.
	guide := []FeedingGuideEntry{
		{WeightMin: 20, WeightMax: 30, AmountMin: 300, AmountMax: 400},
		{WeightMin: 5, WeightMax: 10, AmountMin: 100, AmountMax: 150},
	}

	// Puntos medios: (7.5, 125) y (25, 350).
	got, ok := CalculateDosage(guide, 15)
	require.True(t, ok)
	assert.Equal(t, 221.0, got) // 125 + (7.5/17.5)*225 = 221.43
}

func TestCalculateDosage_FirstContainingRowWins(t *testing.T) {
	guide := []FeedingGuideEntry{
		{WeightMin: 10, WeightMax: 20, AmountMin: 200, AmountMax: 300},
		{WeightMin: 5, WeightMax: 10, AmountMin: 100, AmountMax: 150},
	}

	got, ok := CalculateDosage(guide, 10)
	require.True(t, ok)
	assert.Equal(t, 200.0, got)
}

func TestCalculateDosage_DoesNotMutateGuide(t *testing.T) {
	guide := []FeedingGuideEntry{
		{WeightMin: 20, WeightMax: 30, AmountMin: 300, AmountMax: 400},
		{WeightMin: 5, WeightMax: 10, AmountMin: 100, AmountMax: 150},
	}
	before := append([]FeedingGuideEntry(nil), guide...)

	_, _ = CalculateDosage(guide, 15)
	_, _ = InterpolateNearest(guide, 50)

	if diff := cmp.Diff(before, guide); diff != "" {
		t.Fatalf("guide mutated (-before +after):\n%s", diff)
	}
}

func TestInterpolateNearest_ExtrapolatesAtEdges(t *testing.T) {
	guide := []FeedingGuideEntry{
		{WeightMin: 5, WeightMax: 10, AmountMin: 100, AmountMax: 150},  // mid (7.5, 125)
		{WeightMin: 10, WeightMax: 20, AmountMin: 150, AmountMax: 250}, // mid (15, 200)
		{WeightMin: 20, WeightMax: 40, AmountMin: 250, AmountMax: 450}, // mid (30, 350)
	}

	above, ok := InterpolateNearest(guide, 50)
	require.True(t, ok)
	assert.Equal(t, 550.0, above) // 200 + (35/15)*150

	below, ok := InterpolateNearest(guide, 2)
	require.True(t, ok)
	assert.Equal(t, 70.0, below) // 125 + (-5.5/7.5)*75

	inside, ok := InterpolateNearest(guide, 12)
	require.True(t, ok)
	assert.Equal(t, 170.0, inside)
}

func TestInterpolateNearest_NeverNegative(t *testing.T) {
	guide := []FeedingGuideEntry{
		{WeightMin: 10, WeightMax: 10, AmountMin: 100, AmountMax: 100},
		{WeightMin: 20, WeightMax: 20, AmountMin: 300, AmountMax: 300},
	}

	got, ok := InterpolateNearest(guide, 1)
	require.True(t, ok)
	assert.Equal(t, 0.0, got)
}

func TestInterpolateNearest_SingleRow(t *testing.T) {
	guide := []FeedingGuideEntry{{WeightMin: 5, WeightMax: 10, AmountMin: 100, AmountMax: 150}}

	got, ok := InterpolateNearest(guide, 30)
	require.True(t, ok)
	assert.Equal(t, 125.0, got)

	_, ok = InterpolateNearest(nil, 30)
	assert.False(t, ok)
}

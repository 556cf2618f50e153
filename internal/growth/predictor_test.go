package growth

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPredict_HistoryThenForecast(t *testing.T) {
	birth := date(t, "2024-01-01")
	samples := []WeightSample{
		{Date: birth.AddDate(0, 0, 16*7), Weight: 8.0},
		{Date: birth.AddDate(0, 0, 12*7+3), Weight: 6.0},
	}

	points, err := PredictGrowthCurve(samples, birth, 10)
	require.NoError(t, err)
	require.Len(t, points, 12)

	wantHistory := []PredictionPoint{
		{AgeWeeks: 12, Weight: 6.0},
		{AgeWeeks: 16, Weight: 8.0},
	}
	if diff := cmp.Diff(wantHistory, points[:2]); diff != "" {
		t.Fatalf("history mismatch (-want +got):\n%s", diff)
	}

	est, err := EstimateAdultWeight(samples, birth)
	require.NoError(t, err)

	// Primera semana pronosticada, calculada a mano.
	remaining := est.EstimatedAdultWeight - 8.0
	first := 8.0 + remaining*math.Exp(-(17.0/52.0)*2)/10
	assert.Equal(t, 17, points[2].AgeWeeks)
	assert.True(t, points[2].IsPrediction)
	assert.InDelta(t, first, points[2].Weight, 1e-9)

	for i := 1; i < len(points); i++ {
		assert.Greater(t, points[i].AgeWeeks, points[i-1].AgeWeeks)
	}
	for i := 2; i < len(points); i++ {
		assert.True(t, points[i].IsPrediction)
		assert.GreaterOrEqual(t, points[i].Weight, points[i-1].Weight)
		assert.LessOrEqual(t, points[i].Weight, est.EstimatedAdultWeight)
	}
}

func TestPredict_ZeroHorizon_ReturnsHistoryOnly(t *testing.T) {
	birth := date(t, "2024-01-01")
	samples := []WeightSample{{Date: birth.AddDate(0, 0, 70), Weight: 4}}

	points, err := PredictGrowthCurve(samples, birth, 0)
	require.NoError(t, err)

	want := []PredictionPoint{{AgeWeeks: 10, Weight: 4}}
	if diff := cmp.Diff(want, points); diff != "" {
		t.Fatalf("unexpected points (-want +got):\n%s", diff)
	}
}

func TestPredict_NegativeHorizon(t *testing.T) {
	birth := date(t, "2024-01-01")
	samples := []WeightSample{{Date: birth.AddDate(0, 0, 70), Weight: 4}}

	_, err := PredictGrowthCurve(samples, birth, -1)
	require.ErrorIs(t, err, ErrInvalidInput)
}

func TestPredict_EmptySamples(t *testing.T) {
	_, err := PredictGrowthCurve(nil, date(t, "2024-01-01"), 4)
	require.ErrorIs(t, err, ErrInvalidInput)
}

func TestPredict_AdultAlreadyReached_StaysFlat(t *testing.T) {
	birth := date(t, "2023-01-01")
	samples := []WeightSample{{Date: birth.AddDate(0, 0, 60*7), Weight: 20}}

	points, err := PredictGrowthCurve(samples, birth, 6)
	require.NoError(t, err)
	require.Len(t, points, 7)

	for _, p := range points[1:] {
		assert.Equal(t, 20.0, p.Weight)
	}
}

func TestPredict_MonotonicAcrossCategories(t *testing.T) {
	birth := date(t, "2024-01-01")

	for _, w := range []float64{0.8, 3, 7, 14, 25} {
		samples := []WeightSample{{Date: birth.AddDate(0, 0, 9*7), Weight: w}}

		est, err := EstimateAdultWeight(samples, birth)
		require.NoError(t, err)

		points, err := PredictGrowthCurve(samples, birth, 52)
		require.NoError(t, err)

		prev := w
		for _, p := range points[1:] {
			require.GreaterOrEqual(t, p.Weight, prev)
			require.LessOrEqual(t, p.Weight, est.EstimatedAdultWeight)
			prev = p.Weight
		}
	}
}

package optimizer

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"app/ai"
	"app/models"
)

type stubGenerator struct {
	reply string
	err   error
}

func (s stubGenerator) Generate(_ context.Context, _, _ string) (string, error) {
	return s.reply, s.err
}

func testForecast(predicted, low, high float64) *models.DemandForecast {
	return &models.DemandForecast{
		ProductID:          "OLJCESPC7Z",
		ForecastPeriodDays: 7,
		PredictedDemand:    predicted,
		ConfidenceInterval: [2]float64{low, high},
		TrendDirection:     models.TrendIncreasing,
		SeasonalityFactor:  1.1,
		ExternalSignals: map[string]float64{
			"weather_impact":  0.15,
			"social_impact":   0.02,
			"economic_impact": -0.12,
		},
	}
}

func TestRecommendFormulas(t *testing.T) {
	opt := New(stubGenerator{reply: "restock soon"})

	rec, err := opt.Recommend(context.Background(), "OLJCESPC7Z", 45, testForecast(100, 80, 120))
	require.NoError(t, err)

	// safety = max(5, 30) = 30; reorder = round(50 + 30) = 80
	assert.Equal(t, 80, rec.ReorderPoint)
	// uncertainty = 40; buffer = 8; recommended = round(150 + 8) = 158
	assert.Equal(t, 158, rec.RecommendedStock)
	// accuracy = 1 - 40/100 = 0.6; confidence = 0.6*0.8 + 0.2 = 0.68
	assert.InDelta(t, 0.68, rec.ConfidenceScore, 1e-9)

	assert.Equal(t, "OLJCESPC7Z", rec.ProductID)
	assert.Equal(t, 45, rec.CurrentStock)
	assert.Equal(t, 100.0, rec.DemandForecast)
	assert.Equal(t, "restock soon", rec.Reasoning)
}

func TestRecommendExternalFactors(t *testing.T) {
	opt := New(stubGenerator{reply: "ok"})

	rec, err := opt.Recommend(context.Background(), "OLJCESPC7Z", 10, testForecast(100, 80, 120))
	require.NoError(t, err)

	// Only impacts above 0.1 in magnitude are reported, sorted by
	// name and annotated by direction.
	assert.Equal(t, []string{
		"economic_impact (decreasing demand)",
		"weather_impact (increasing demand)",
	}, rec.ExternalFactors)
}

func TestRecommendZeroDemand(t *testing.T) {
	opt := New(stubGenerator{reply: "ok"})

	rec, err := opt.Recommend(context.Background(), "EMPTY", 0, testForecast(0, 0, 0))
	require.NoError(t, err)

	// safety = max(5, 0) = 5; reorder = round(0 + 5) = 5
	assert.Equal(t, 5, rec.ReorderPoint)
	assert.Equal(t, 0, rec.RecommendedStock)
	// The formulas do not guarantee reorder_point <= recommended_stock:
	// the safety-stock floor puts the reorder point above the
	// recommendation whenever predicted demand collapses.
	assert.Greater(t, rec.ReorderPoint, rec.RecommendedStock)
	// Zero demand is treated as minimal accuracy: confidence = 0.2
	assert.InDelta(t, 0.2, rec.ConfidenceScore, 1e-9)
}

func TestRecommendConfidenceClamped(t *testing.T) {
	opt := New(stubGenerator{reply: "ok"})

	// Huge uncertainty relative to demand drives raw accuracy far
	// negative; confidence must clamp to 0.1.
	rec, err := opt.Recommend(context.Background(), "WIDE", 10, testForecast(10, 0, 100))
	require.NoError(t, err)
	assert.InDelta(t, 0.1, rec.ConfidenceScore, 1e-9)

	// A very tight interval cannot push confidence above 0.95.
	rec, err = opt.Recommend(context.Background(), "TIGHT", 10, testForecast(100, 100, 100))
	require.NoError(t, err)
	assert.LessOrEqual(t, rec.ConfidenceScore, 0.95)
	assert.GreaterOrEqual(t, rec.ConfidenceScore, 0.1)
}

func TestRecommendReasoningFailure(t *testing.T) {
	genErr := fmt.Errorf("%w: timeout", ai.ErrUnavailable)
	opt := New(stubGenerator{err: genErr})

	rec, err := opt.Recommend(context.Background(), "OLJCESPC7Z", 45, testForecast(100, 80, 120))
	assert.Nil(t, rec)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ai.ErrUnavailable))
}

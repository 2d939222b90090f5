package forecast

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"app/ai"
	"app/models"
	"app/signals"
)

type stubGenerator struct {
	reply string
	err   error
}

func (s stubGenerator) Generate(_ context.Context, _, _ string) (string, error) {
	return s.reply, s.err
}

func newTestEngine(gen ai.Generator, seed int64) *Engine {
	src := signals.NewSource(rand.New(rand.NewSource(seed)))
	return NewEngine(src, gen, rand.New(rand.NewSource(seed+1)))
}

func TestMockSalesHistory(t *testing.T) {
	engine := newTestEngine(stubGenerator{reply: "ok"}, 1)

	history := engine.MockSalesHistory("OLJCESPC7Z", 30)
	require.Len(t, history, 30)

	for i, point := range history {
		assert.Equal(t, "OLJCESPC7Z", point.ProductID)
		assert.Equal(t, i%7, point.DayOfWeek)
		assert.GreaterOrEqual(t, point.Sales, 0)
		assert.True(t, point.Date.Before(time.Now().Add(time.Minute)))
	}
}

func TestSlope(t *testing.T) {
	assert.InDelta(t, 1.0, Slope([]float64{1, 2, 3, 4}), 1e-9)
	assert.InDelta(t, -2.0, Slope([]float64{10, 8, 6, 4}), 1e-9)
	assert.Equal(t, 0.0, Slope([]float64{7, 7, 7, 7}))
	assert.Equal(t, 0.0, Slope([]float64{5}))
	assert.Equal(t, 0.0, Slope(nil))
}

func TestTrendDirection(t *testing.T) {
	assert.Equal(t, models.TrendIncreasing, trendDirection(0.001))
	assert.Equal(t, models.TrendDecreasing, trendDirection(-0.001))
	assert.Equal(t, models.TrendStable, trendDirection(0))
}

func TestSeasonalityFactor(t *testing.T) {
	makeHistory := func(weekday, weekend int) []models.HistoricalSalesPoint {
		history := make([]models.HistoricalSalesPoint, 0, 14)
		for i := 0; i < 14; i++ {
			sales := weekday
			if i%7 == 5 || i%7 == 6 {
				sales = weekend
			}
			history = append(history, models.HistoricalSalesPoint{Sales: sales, DayOfWeek: i % 7})
		}
		return history
	}

	assert.InDelta(t, 1.2, seasonalityFactor(makeHistory(10, 12)), 1e-9)

	// Zero weekday sales must yield the neutral factor, not a
	// division by zero.
	assert.Equal(t, 1.0, seasonalityFactor(makeHistory(0, 10)))
}

func TestForecast(t *testing.T) {
	engine := newTestEngine(stubGenerator{reply: "narrative"}, 7)

	forecast, err := engine.Forecast(context.Background(), "OLJCESPC7Z", 7)
	require.NoError(t, err)

	assert.Equal(t, "OLJCESPC7Z", forecast.ProductID)
	assert.Equal(t, 7, forecast.ForecastPeriodDays)
	assert.GreaterOrEqual(t, forecast.PredictedDemand, 0.0)
	assert.GreaterOrEqual(t, forecast.ConfidenceInterval[0], 0.0)
	assert.LessOrEqual(t, forecast.ConfidenceInterval[0], forecast.ConfidenceInterval[1])
	assert.Contains(t, []string{models.TrendIncreasing, models.TrendDecreasing, models.TrendStable}, forecast.TrendDirection)
	assert.Greater(t, forecast.SeasonalityFactor, 0.0)

	assert.Len(t, forecast.ExternalSignals, 3)
	assert.Contains(t, forecast.ExternalSignals, "weather_impact")
	assert.Contains(t, forecast.ExternalSignals, "social_impact")
	assert.Contains(t, forecast.ExternalSignals, "economic_impact")
}

func TestForecastDefaultsHorizon(t *testing.T) {
	engine := newTestEngine(stubGenerator{reply: "narrative"}, 9)

	forecast, err := engine.Forecast(context.Background(), "66VCHSJNUP", 0)
	require.NoError(t, err)
	assert.Equal(t, DefaultForecastDays, forecast.ForecastPeriodDays)
}

func TestForecastSuccessiveCallsDiffer(t *testing.T) {
	engine := newTestEngine(stubGenerator{reply: "narrative"}, 11)

	first, err := engine.Forecast(context.Background(), "OLJCESPC7Z", 7)
	require.NoError(t, err)
	second, err := engine.Forecast(context.Background(), "OLJCESPC7Z", 7)
	require.NoError(t, err)

	// Each call regenerates random history and signals; identical
	// results are not expected.
	assert.NotEqual(t, first.PredictedDemand, second.PredictedDemand)
}

func TestForecastUnavailable(t *testing.T) {
	genErr := fmt.Errorf("%w: quota exceeded", ai.ErrUnavailable)
	engine := newTestEngine(stubGenerator{err: genErr}, 13)

	forecast, err := engine.Forecast(context.Background(), "OLJCESPC7Z", 7)
	assert.Nil(t, forecast)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ai.ErrUnavailable))
	assert.Contains(t, err.Error(), "forecast unavailable")
}

// Package forecast synthesizes mock sales history and turns it into a
// demand forecast blended with external signals.
package forecast

import (
	"context"
	"fmt"
	"math"
	"math/rand"
	"sync"
	"time"

	"app/ai"
	"app/models"
	"app/signals"
	"app/utils"
)

// DefaultForecastDays is the horizon used when a request does not
// specify one.
const DefaultForecastDays = 7

const (
	historyDays  = 30
	recentWindow = 7
	weekendBoost = 1.2
	weekdayDamp  = 0.9
)

const forecastPersona = "You are an expert AI demand forecasting agent with access to multiple data sources."

// Engine produces demand forecasts. The random source is injectable
// so tests can fix the synthesized history.
type Engine struct {
	signals *signals.Source
	gen     ai.Generator

	mu  sync.Mutex
	rng *rand.Rand
}

// NewEngine returns an Engine. A nil rng is replaced with a
// time-seeded one.
func NewEngine(src *signals.Source, gen ai.Generator, rng *rand.Rand) *Engine {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Engine{signals: src, gen: gen, rng: rng}
}

// MockSalesHistory synthesizes the given number of days of sales for
// productID: a random base demand shaped by a weekend boost, a linear
// trend with a fresh random slope each day, and multiplicative noise.
// Stand-in for a real sales store.
func (e *Engine) MockSalesHistory(productID string, days int) []models.HistoricalSalesPoint {
	e.mu.Lock()
	defer e.mu.Unlock()

	baseDemand := e.rng.Intn(91) + 10 // [10, 100]
	now := time.Now()

	points := make([]models.HistoricalSalesPoint, 0, days)
	for i := 0; i < days; i++ {
		dayOfWeek := i % 7
		multiplier := weekdayDamp
		if dayOfWeek == 5 || dayOfWeek == 6 {
			multiplier = weekendBoost
		}

		trend := 1 + (float64(i)/float64(days))*e.uniform(-0.3, 0.3)
		noise := e.uniform(0.7, 1.3)

		demand := int(float64(baseDemand) * multiplier * trend * noise)
		if demand < 0 {
			demand = 0
		}

		points = append(points, models.HistoricalSalesPoint{
			Date:      now.AddDate(0, 0, -(days - i)),
			ProductID: productID,
			Sales:     demand,
			DayOfWeek: dayOfWeek,
		})
	}
	return points
}

// Forecast generates a demand forecast for productID over the next
// forecastDays days. The numeric fields are fully determined by the
// synthesized history and signals; the model call only narrates the
// result, and its failure surfaces as a forecast-unavailable error.
func (e *Engine) Forecast(ctx context.Context, productID string, forecastDays int) (*models.DemandForecast, error) {
	if forecastDays <= 0 {
		forecastDays = DefaultForecastDays
	}

	history := e.MockSalesHistory(productID, historyDays)

	weather := e.signals.Weather()
	social := e.signals.SocialTrends()
	economic := e.signals.EconomicIndicators()

	sales := make([]float64, len(history))
	for i, p := range history {
		sales[i] = float64(p.Sales)
	}

	slope := Slope(sales)
	direction := trendDirection(slope)
	seasonality := seasonalityFactor(history)

	recent := sales[len(sales)-recentWindow:]
	baseForecast := utils.Mean(recent)

	weatherImpact := weather.ImpactScore * 0.2
	socialImpact := utils.Mean(mapValues(social)) * 0.1
	economicImpact := economic["consumer_confidence"] * 0.15

	predicted := baseForecast * (1 + weatherImpact + socialImpact + economicImpact)

	stdDev := utils.StdDev(sales)
	low := math.Max(0, predicted-1.96*stdDev)
	high := predicted + 1.96*stdDev

	result := &models.DemandForecast{
		ProductID:          productID,
		ForecastPeriodDays: forecastDays,
		PredictedDemand:    predicted,
		ConfidenceInterval: [2]float64{low, high},
		TrendDirection:     direction,
		SeasonalityFactor:  seasonality,
		ExternalSignals: map[string]float64{
			"weather_impact":  weatherImpact,
			"social_impact":   socialImpact,
			"economic_impact": economicImpact,
		},
	}

	prompt := buildForecastPrompt(productID, forecastDays, history, direction, slope, seasonality, weather, social, economic)
	// The reply is narrative only and is discarded on this path; the
	// recommendation path is where model text reaches the client.
	if _, err := e.gen.Generate(ctx, forecastPersona, prompt); err != nil {
		return nil, fmt.Errorf("forecast unavailable for %s: %w", productID, err)
	}

	return result, nil
}

// uniform must be called with e.mu held.
func (e *Engine) uniform(lo, hi float64) float64 {
	return lo + e.rng.Float64()*(hi-lo)
}

func mapValues(m map[string]float64) []float64 {
	values := make([]float64, 0, len(m))
	for _, v := range m {
		values = append(values, v)
	}
	return values
}

// Package signals produces randomized stand-ins for the external
// demand signals a production deployment would pull from real feeds:
// weather, social-media trends and economic indicators.
package signals

import (
	"math"
	"math/rand"
	"sync"
	"time"
)

var weatherConditions = []string{"sunny", "rainy", "cloudy", "snowy", "stormy"}

var conditionImpact = map[string]float64{
	"sunny":  0.1,
	"rainy":  0.3,
	"cloudy": 0.0,
	"snowy":  0.4,
	"stormy": 0.2,
}

// WeatherData is a simulated weather observation.
type WeatherData struct {
	Temperature         int     `json:"temperature"`
	Condition           string  `json:"condition"`
	PrecipitationChance float64 `json:"precipitation_chance"`
	ImpactScore         float64 `json:"impact_score"`
}

// Source draws every signal from an injectable random source so tests
// can supply deterministic sequences. Safe for concurrent use.
type Source struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewSource returns a Source drawing from rng. A nil rng is replaced
// with a time-seeded one.
func NewSource(rng *rand.Rand) *Source {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Source{rng: rng}
}

// Weather returns a simulated forecast with a derived shopping-impact
// score.
func (s *Source) Weather() WeatherData {
	s.mu.Lock()
	defer s.mu.Unlock()

	temperature := s.rng.Intn(46) - 10 // [-10, 35]
	condition := weatherConditions[s.rng.Intn(len(weatherConditions))]

	return WeatherData{
		Temperature:         temperature,
		Condition:           condition,
		PrecipitationChance: s.rng.Float64(),
		ImpactScore:         WeatherImpact(condition, temperature),
	}
}

// WeatherImpact scores how strongly the given conditions shift
// shopping behavior. Extreme temperatures push buyers indoors. The
// result is always within [0, 1].
func WeatherImpact(condition string, temperature int) float64 {
	impact := conditionImpact[condition]
	if temperature < 0 || temperature > 30 {
		impact += 0.2
	}
	return math.Min(impact, 1.0)
}

// SocialTrends returns simulated trend scores, each uniform over its
// own fixed range.
func (s *Source) SocialTrends() map[string]float64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	return map[string]float64{
		"sustainable_fashion": s.rng.Float64() * 0.5,
		"outdoor_activities":  s.rng.Float64() * 0.3,
		"work_from_home":      s.rng.Float64() * 0.4,
		"tech_accessories":    s.rng.Float64() * 0.6,
		"health_fitness":      s.rng.Float64() * 0.3,
	}
}

// EconomicIndicators returns simulated indicators of consumer
// spending capacity.
func (s *Source) EconomicIndicators() map[string]float64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	return map[string]float64{
		"consumer_confidence":   s.uniform(0.3, 0.9),
		"unemployment_rate":     s.uniform(0.03, 0.10),
		"inflation_rate":        s.uniform(0.01, 0.05),
		"retail_spending_index": s.uniform(0.8, 1.2),
	}
}

func (s *Source) uniform(lo, hi float64) float64 {
	return lo + s.rng.Float64()*(hi-lo)
}

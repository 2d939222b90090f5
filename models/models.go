package models

import "time"

// Trend directions reported by the forecasting engine.
const (
	TrendIncreasing = "increasing"
	TrendDecreasing = "decreasing"
	TrendStable     = "stable"
)

// HistoricalSalesPoint is a single day of synthesized sales history.
// It is generated fresh for every forecast request and discarded once
// the forecast has been computed.
type HistoricalSalesPoint struct {
	Date      time.Time `json:"date"`
	ProductID string    `json:"product_id"`
	Sales     int       `json:"sales"`
	DayOfWeek int       `json:"day_of_week"`
}

// DemandForecast is the forecasting engine's output for one product.
// ConfidenceInterval serializes as a two-element [low, high] array.
type DemandForecast struct {
	ProductID          string             `json:"product_id"`
	ForecastPeriodDays int                `json:"forecast_period_days"`
	PredictedDemand    float64            `json:"predicted_demand"`
	ConfidenceInterval [2]float64         `json:"confidence_interval"`
	TrendDirection     string             `json:"trend_direction"`
	SeasonalityFactor  float64            `json:"seasonality_factor"`
	ExternalSignals    map[string]float64 `json:"external_signals"`
}

// InventoryRecommendation is the optimizer's final output for one
// product.
type InventoryRecommendation struct {
	ProductID        string   `json:"product_id"`
	CurrentStock     int      `json:"current_stock"`
	RecommendedStock int      `json:"recommended_stock"`
	ReorderPoint     int      `json:"reorder_point"`
	DemandForecast   float64  `json:"demand_forecast"`
	ConfidenceScore  float64  `json:"confidence_score"`
	Reasoning        string   `json:"reasoning"`
	ExternalFactors  []string `json:"external_factors"`
}

// PredictionRecord is one entry in the prediction log backing the
// insights endpoint's model-performance summary.
type PredictionRecord struct {
	ProductID       string
	PredictedDemand float64
	Confidence      float64
	CreatedAt       time.Time
}

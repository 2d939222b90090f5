package models

// ForecastRequest is the body of POST /forecast.
type ForecastRequest struct {
	ProductID    string `json:"product_id"`
	ForecastDays int    `json:"forecast_days"`
}

// ProductStock is one entry in a batch recommendation request.
type ProductStock struct {
	ProductID    string `json:"product_id"`
	CurrentStock int    `json:"current_stock"`
}

// RecommendationsRequest is the body of POST /inventory/recommendations.
type RecommendationsRequest struct {
	Products []ProductStock `json:"products"`
}

// BatchError reports a single product's failure inside a batch
// without aborting the other products.
type BatchError struct {
	ProductID string `json:"product_id"`
	Error     string `json:"error"`
}

// RecommendationsResponse is the reply to a batch recommendation
// request. Errors is omitted entirely when every product succeeded.
type RecommendationsResponse struct {
	Recommendations []InventoryRecommendation `json:"recommendations"`
	Errors          []BatchError              `json:"errors,omitempty"`
}

// ModelPerformance summarizes the prediction log.
type ModelPerformance struct {
	TotalPredictions int     `json:"total_predictions"`
	AvgConfidence    float64 `json:"avg_confidence"`
	LastUpdated      string  `json:"last_updated"`
}

// AgentInsights is the reply to GET /agent/insights.
type AgentInsights struct {
	Timestamp        string           `json:"timestamp"`
	Insights         string           `json:"insights"`
	ModelPerformance ModelPerformance `json:"model_performance"`
}

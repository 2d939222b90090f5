// Package agent orchestrates demand forecasting and inventory
// optimization per product and produces strategic insights.
package agent

import (
	"context"
	"fmt"
	"time"

	"app/ai"
	"app/forecast"
	"app/logger"
	"app/models"
	"app/optimizer"
	"app/store"
)

const insightsPersona = "You are a strategic inventory management AI providing executive-level insights."

const insightsPrompt = `As an inventory management AI agent, provide strategic insights about current inventory patterns:

1. Overall inventory health
2. Key trends observed across products
3. External factors having the biggest impact
4. Recommendations for inventory strategy improvements
5. Areas where the AI model is most/least confident

Provide actionable insights for inventory managers.`

// Agent wires the forecasting engine, the optimizer, the narrative
// generator and the prediction log together.
type Agent struct {
	engine      *forecast.Engine
	optimizer   *optimizer.Optimizer
	gen         ai.Generator
	predictions store.PredictionStore
}

// New returns an Agent.
func New(engine *forecast.Engine, opt *optimizer.Optimizer, gen ai.Generator, predictions store.PredictionStore) *Agent {
	return &Agent{engine: engine, optimizer: opt, gen: gen, predictions: predictions}
}

// Forecast generates a demand forecast for a single product.
func (a *Agent) Forecast(ctx context.Context, productID string, forecastDays int) (*models.DemandForecast, error) {
	return a.engine.Forecast(ctx, productID, forecastDays)
}

// ProcessProduct runs one forecast-then-recommend cycle for a product
// and records the outcome in the prediction log. Each cycle makes two
// remote model calls.
func (a *Agent) ProcessProduct(ctx context.Context, productID string, currentStock int) (*models.InventoryRecommendation, error) {
	logger.Log.Info().Str("product_id", productID).Msg("processing inventory analysis")

	demandForecast, err := a.engine.Forecast(ctx, productID, forecast.DefaultForecastDays)
	if err != nil {
		return nil, err
	}

	rec, err := a.optimizer.Recommend(ctx, productID, currentStock, demandForecast)
	if err != nil {
		return nil, err
	}

	record := models.PredictionRecord{
		ProductID:       productID,
		PredictedDemand: demandForecast.PredictedDemand,
		Confidence:      rec.ConfidenceScore,
		CreatedAt:       time.Now(),
	}
	if err := a.predictions.Record(ctx, record); err != nil {
		logger.Log.Warn().Err(err).Str("product_id", productID).Msg("failed to record prediction")
	}

	logger.Log.Info().
		Str("product_id", productID).
		Int("recommended_stock", rec.RecommendedStock).
		Msg("generated recommendation")
	return rec, nil
}

// ProcessBatch runs independent sequential cycles for each product.
// Entries without a product_id are silently skipped; a failing
// product yields an error entry instead of aborting the batch.
func (a *Agent) ProcessBatch(ctx context.Context, products []models.ProductStock) ([]models.InventoryRecommendation, []models.BatchError) {
	recommendations := []models.InventoryRecommendation{}
	var batchErrors []models.BatchError

	for _, p := range products {
		if p.ProductID == "" {
			continue
		}
		rec, err := a.ProcessProduct(ctx, p.ProductID, p.CurrentStock)
		if err != nil {
			logger.Log.Error().Err(err).Str("product_id", p.ProductID).Msg("recommendation failed")
			batchErrors = append(batchErrors, models.BatchError{ProductID: p.ProductID, Error: err.Error()})
			continue
		}
		recommendations = append(recommendations, *rec)
	}
	return recommendations, batchErrors
}

// Insights asks the model for a strategic analysis and attaches the
// real performance summary from the prediction log.
func (a *Agent) Insights(ctx context.Context) (*models.AgentInsights, error) {
	text, err := a.gen.Generate(ctx, insightsPersona, insightsPrompt)
	if err != nil {
		return nil, fmt.Errorf("strategic insights: %w", err)
	}

	stats, err := a.predictions.Stats(ctx)
	if err != nil {
		return nil, fmt.Errorf("prediction stats: %w", err)
	}

	lastUpdated := stats.LastUpdated
	if lastUpdated.IsZero() {
		lastUpdated = time.Now()
	}

	return &models.AgentInsights{
		Timestamp: time.Now().Format(time.RFC3339),
		Insights:  text,
		ModelPerformance: models.ModelPerformance{
			TotalPredictions: stats.TotalPredictions,
			AvgConfidence:    stats.AvgConfidence,
			LastUpdated:      lastUpdated.Format(time.RFC3339),
		},
	}, nil
}

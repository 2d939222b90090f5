// Package optimizer turns a demand forecast into concrete stock
// levels plus a model-written justification.
package optimizer

import (
	"context"
	"fmt"
	"math"
	"sort"
	"strings"

	"app/ai"
	"app/models"
	"app/utils"
)

const reasoningPersona = "You are an expert inventory management AI that provides clear, actionable insights."

// Signals whose absolute impact stays below this threshold are left
// out of the external-factors summary.
const factorThreshold = 0.1

// Optimizer derives safety stock, reorder point and recommended stock
// from a forecast using fixed formulas.
type Optimizer struct {
	gen ai.Generator
}

// New returns an Optimizer using gen for reasoning text.
func New(gen ai.Generator) *Optimizer {
	return &Optimizer{gen: gen}
}

// Recommend computes the stock recommendation for one product. A
// failure of the reasoning call fails the whole recommendation; batch
// callers isolate that per item.
func (o *Optimizer) Recommend(ctx context.Context, productID string, currentStock int, forecast *models.DemandForecast) (*models.InventoryRecommendation, error) {
	predicted := forecast.PredictedDemand

	safetyStock := math.Max(5, math.Round(predicted*0.3))
	leadTimeDemand := predicted * 0.5 // fixed 3.5-day lead time
	reorderPoint := utils.RoundInt(leadTimeDemand + safetyStock)

	uncertainty := math.Abs(forecast.ConfidenceInterval[1] - forecast.ConfidenceInterval[0])
	bufferStock := utils.RoundInt(uncertainty * 0.2)
	recommendedStock := utils.RoundInt(predicted*1.5 + float64(bufferStock))

	// Zero predicted demand would divide by zero below; treat it as a
	// forecast with no usable accuracy.
	accuracy := 0.0
	if predicted > 0 {
		accuracy = 1 - uncertainty/predicted
	}
	confidence := utils.Clamp(accuracy*0.8+0.2, 0.1, 0.95)

	prompt := buildReasoningPrompt(productID, currentStock, forecast, recommendedStock, reorderPoint)
	reasoning, err := o.gen.Generate(ctx, reasoningPersona, prompt)
	if err != nil {
		return nil, fmt.Errorf("recommendation reasoning for %s: %w", productID, err)
	}

	return &models.InventoryRecommendation{
		ProductID:        productID,
		CurrentStock:     currentStock,
		RecommendedStock: recommendedStock,
		ReorderPoint:     reorderPoint,
		DemandForecast:   predicted,
		ConfidenceScore:  confidence,
		Reasoning:        reasoning,
		ExternalFactors:  externalFactors(forecast.ExternalSignals),
	}, nil
}

// externalFactors names the signals whose absolute impact exceeds the
// reporting threshold, annotated by demand direction. Emitted in
// sorted name order so responses are stable across calls.
func externalFactors(extSignals map[string]float64) []string {
	names := make([]string, 0, len(extSignals))
	for name := range extSignals {
		names = append(names, name)
	}
	sort.Strings(names)

	factors := []string{}
	for _, name := range names {
		impact := extSignals[name]
		if math.Abs(impact) <= factorThreshold {
			continue
		}
		direction := "increasing"
		if impact < 0 {
			direction = "decreasing"
		}
		factors = append(factors, fmt.Sprintf("%s (%s demand)", name, direction))
	}
	return factors
}

func buildReasoningPrompt(productID string, currentStock int, forecast *models.DemandForecast, recommendedStock, reorderPoint int) string {
	var sb strings.Builder
	sb.WriteString("As an inventory management AI agent, provide clear reasoning for inventory recommendations:\n\n")
	fmt.Fprintf(&sb, "Product: %s\n", productID)
	fmt.Fprintf(&sb, "Current Stock: %d\n", currentStock)
	fmt.Fprintf(&sb, "Predicted Demand: %.1f\n", forecast.PredictedDemand)
	fmt.Fprintf(&sb, "Confidence Interval: [%.1f, %.1f]\n", forecast.ConfidenceInterval[0], forecast.ConfidenceInterval[1])
	fmt.Fprintf(&sb, "Trend: %s\n", forecast.TrendDirection)
	fmt.Fprintf(&sb, "External Factors: %s\n\n", formatImpacts(forecast.ExternalSignals))
	fmt.Fprintf(&sb, "Recommended Stock Level: %d\n", recommendedStock)
	fmt.Fprintf(&sb, "Reorder Point: %d\n\n", reorderPoint)
	sb.WriteString("Explain the reasoning behind these recommendations, considering:\n")
	sb.WriteString("1. Demand forecast accuracy\n")
	sb.WriteString("2. Risk of stockouts vs holding costs\n")
	sb.WriteString("3. External factor impacts\n")
	sb.WriteString("4. Trend analysis\n\n")
	sb.WriteString("Provide a concise, business-friendly explanation.")
	return sb.String()
}

func formatImpacts(extSignals map[string]float64) string {
	names := make([]string, 0, len(extSignals))
	for name := range extSignals {
		names = append(names, name)
	}
	sort.Strings(names)

	parts := make([]string, 0, len(names))
	for _, name := range names {
		parts = append(parts, fmt.Sprintf("%s=%.3f", name, extSignals[name]))
	}
	return strings.Join(parts, ", ")
}

package forecast

import (
	"fmt"
	"sort"
	"strings"

	"app/models"
	"app/signals"
	"app/utils"
)

// Slope fits an ordinary least-squares line through values indexed
// 0..n-1 and returns its slope.
func Slope(values []float64) float64 {
	n := float64(len(values))
	if n < 2 {
		return 0
	}

	var sumX, sumY, sumXY, sumXX float64
	for i, y := range values {
		x := float64(i)
		sumX += x
		sumY += y
		sumXY += x * y
		sumXX += x * x
	}

	denom := n*sumXX - sumX*sumX
	if denom == 0 {
		return 0
	}
	return (n*sumXY - sumX*sumY) / denom
}

func trendDirection(slope float64) string {
	switch {
	case slope > 0:
		return models.TrendIncreasing
	case slope < 0:
		return models.TrendDecreasing
	default:
		return models.TrendStable
	}
}

// seasonalityFactor is the ratio of mean weekend sales to mean
// weekday sales. A zero weekday mean yields the neutral factor 1.0.
func seasonalityFactor(history []models.HistoricalSalesPoint) float64 {
	var weekend, weekday []float64
	for _, p := range history {
		if p.DayOfWeek == 5 || p.DayOfWeek == 6 {
			weekend = append(weekend, float64(p.Sales))
		} else {
			weekday = append(weekday, float64(p.Sales))
		}
	}

	weekdayAvg := utils.Mean(weekday)
	if weekdayAvg <= 0 {
		return 1.0
	}
	return utils.Mean(weekend) / weekdayAvg
}

func buildForecastPrompt(productID string, forecastDays int, history []models.HistoricalSalesPoint, direction string, slope, seasonality float64, weather signals.WeatherData, social, economic map[string]float64) string {
	sales := make([]int, len(history))
	for i, p := range history {
		sales[i] = p.Sales
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "As an expert demand forecasting AI, analyze the following data to predict demand for product %s:\n\n", productID)
	fmt.Fprintf(&sb, "Historical Sales (last %d days): %v\n", len(sales), sales)
	fmt.Fprintf(&sb, "Recent Trend: %s (slope: %.3f)\n", direction, slope)
	fmt.Fprintf(&sb, "Seasonality Factor: %.2f\n\n", seasonality)
	sb.WriteString("External Factors:\n")
	fmt.Fprintf(&sb, "- Weather: %d°C, %s (impact score %.2f)\n", weather.Temperature, weather.Condition, weather.ImpactScore)
	fmt.Fprintf(&sb, "- Social Trends: %s\n", formatSignals(social))
	fmt.Fprintf(&sb, "- Economic Indicators: %s\n\n", formatSignals(economic))
	fmt.Fprintf(&sb, "Provide a demand forecast for the next %d days. Consider:\n", forecastDays)
	sb.WriteString("1. Historical patterns and trends\n")
	sb.WriteString("2. Seasonal effects\n")
	sb.WriteString("3. External factor impacts\n")
	sb.WriteString("4. Confidence level based on data quality\n\n")
	sb.WriteString("Return your analysis as structured reasoning and a numerical forecast.")
	return sb.String()
}

// formatSignals renders a signal map in sorted key order so prompts
// are stable across calls.
func formatSignals(m map[string]float64) string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s=%.2f", k, m[k]))
	}
	return strings.Join(parts, ", ")
}

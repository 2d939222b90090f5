// Command demo walks through the inventory agent service endpoints:
// it waits for the service to come up, forecasts demand for a few
// catalog products, requests batch recommendations and fetches the
// strategic insights.
package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/urfave/cli/v2"

	"app/models"
)

var demoProducts = []struct {
	ID    string
	Name  string
	Stock int
}{
	{"OLJCESPC7Z", "Sunglasses", 45},
	{"66VCHSJNUP", "Tank Top", 23},
	{"1YMWWN1N4O", "Watch", 67},
	{"L9ECAV7KIM", "Loafers", 12},
	{"2ZYFJ3GM2N", "Vintage Camera", 8},
}

func main() {
	app := &cli.App{
		Name:  "inventory-demo",
		Usage: "exercise the inventory agent service over HTTP",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "url", Value: "http://localhost:8080", Usage: "service base URL"},
			&cli.DurationFlag{Name: "wait", Value: 30 * time.Second, Usage: "how long to wait for the service to become healthy"},
		},
		Action: runDemo,
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func runDemo(c *cli.Context) error {
	baseURL := strings.TrimRight(c.String("url"), "/")
	client := &http.Client{Timeout: 45 * time.Second}

	printHeader("Smart Inventory Demand Forecasting Agent - Demo")

	if err := waitForService(client, baseURL, c.Duration("wait")); err != nil {
		return err
	}

	demoForecasts(client, baseURL)
	demoRecommendations(client, baseURL)
	demoInsights(client, baseURL)

	printHeader("Demo Complete")
	return nil
}

func waitForService(client *http.Client, baseURL string, timeout time.Duration) error {
	fmt.Println("Waiting for inventory agent service...")
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		resp, err := client.Get(baseURL + "/health")
		if err == nil {
			resp.Body.Close()
			if resp.StatusCode == http.StatusOK {
				fmt.Println("Service is ready.")
				return nil
			}
		}
		time.Sleep(time.Second)
	}
	return fmt.Errorf("service at %s not healthy within %s", baseURL, timeout)
}

func demoForecasts(client *http.Client, baseURL string) {
	printSection("Demand Forecasting")

	for _, product := range demoProducts[:3] {
		fmt.Printf("\nForecasting demand for %s (%s)\n", product.Name, product.ID)

		var forecast models.DemandForecast
		err := postJSON(client, baseURL+"/forecast",
			models.ForecastRequest{ProductID: product.ID, ForecastDays: 7}, &forecast)
		if err != nil {
			fmt.Printf("  error: %v\n", err)
			continue
		}

		fmt.Printf("  Predicted Demand:   %.1f units\n", forecast.PredictedDemand)
		fmt.Printf("  Confidence Range:   %.1f - %.1f\n", forecast.ConfidenceInterval[0], forecast.ConfidenceInterval[1])
		fmt.Printf("  Trend:              %s\n", forecast.TrendDirection)
		fmt.Printf("  Seasonality Factor: %.2f\n", forecast.SeasonalityFactor)
		fmt.Println("  External Signals:")
		for name, impact := range forecast.ExternalSignals {
			fmt.Printf("    - %s: %+.3f\n", name, impact)
		}
	}
}

func demoRecommendations(client *http.Client, baseURL string) {
	printSection("Inventory Recommendations")

	req := models.RecommendationsRequest{}
	for _, product := range demoProducts {
		req.Products = append(req.Products, models.ProductStock{
			ProductID:    product.ID,
			CurrentStock: product.Stock,
		})
	}

	var resp models.RecommendationsResponse
	if err := postJSON(client, baseURL+"/inventory/recommendations", req, &resp); err != nil {
		fmt.Printf("  error: %v\n", err)
		return
	}

	fmt.Printf("\nGenerated recommendations for %d products:\n", len(resp.Recommendations))
	for _, rec := range resp.Recommendations {
		fmt.Printf("\n%s\n", rec.ProductID)
		fmt.Printf("  Current Stock:   %d units\n", rec.CurrentStock)
		fmt.Printf("  Recommended:     %d units\n", rec.RecommendedStock)
		fmt.Printf("  Reorder Point:   %d units\n", rec.ReorderPoint)
		fmt.Printf("  Demand Forecast: %.1f units\n", rec.DemandForecast)
		fmt.Printf("  Confidence:      %.0f%%\n", rec.ConfidenceScore*100)
		if len(rec.ExternalFactors) > 0 {
			fmt.Printf("  External Factors: %s\n", strings.Join(rec.ExternalFactors, ", "))
		}

		switch {
		case rec.CurrentStock <= rec.ReorderPoint:
			fmt.Println("  ACTION NEEDED: stock below reorder point")
		case rec.CurrentStock < rec.RecommendedStock:
			fmt.Printf("  CONSIDER: increase stock by %d units\n", rec.RecommendedStock-rec.CurrentStock)
		default:
			fmt.Println("  STOCK OK: current levels sufficient")
		}
	}

	for _, batchErr := range resp.Errors {
		fmt.Printf("\n%s failed: %s\n", batchErr.ProductID, batchErr.Error)
	}
}

func demoInsights(client *http.Client, baseURL string) {
	printSection("Agent Insights & Strategic Analysis")

	resp, err := client.Get(baseURL + "/agent/insights")
	if err != nil {
		fmt.Printf("  error: %v\n", err)
		return
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		fmt.Printf("  error: status %d\n", resp.StatusCode)
		return
	}

	var insights models.AgentInsights
	if err := json.NewDecoder(resp.Body).Decode(&insights); err != nil {
		fmt.Printf("  error: %v\n", err)
		return
	}

	fmt.Printf("\nStrategic Insights (generated %s)\n\n", insights.Timestamp)
	fmt.Println(insights.Insights)
	fmt.Println("\nModel Performance:")
	fmt.Printf("  Total Predictions:  %d\n", insights.ModelPerformance.TotalPredictions)
	fmt.Printf("  Average Confidence: %.0f%%\n", insights.ModelPerformance.AvgConfidence*100)
	fmt.Printf("  Last Updated:       %s\n", insights.ModelPerformance.LastUpdated)
}

func postJSON(client *http.Client, url string, body, out interface{}) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return err
	}

	resp, err := client.Post(url, "application/json", bytes.NewReader(payload))
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("status %d", resp.StatusCode)
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

func printHeader(title string) {
	line := strings.Repeat("=", 60)
	fmt.Printf("\n%s\n  %s\n%s\n", line, title, line)
}

func printSection(title string) {
	fmt.Printf("\n--- %s ---\n", title)
}

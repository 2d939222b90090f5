package main

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"

	"app/agent"
	"app/ai"
	"app/config"
	"app/database"
	"app/forecast"
	"app/handlers"
	"app/logger"
	"app/middleware"
	"app/optimizer"
	"app/routes"
	"app/signals"
	"app/store"
)

func main() {
	// Load configuration (reads .env and the environment)
	cfg := config.Load()
	logger.SetLevel(cfg.LogLevel)

	if cfg.GeminiAPIKey == "" {
		logger.Log.Warn().Msg("GEMINI_API_KEY is not set; narrative generation will fail")
	}

	ctx := context.Background()

	// Initialize the Gemini client
	gen, err := ai.NewGeminiClient(ctx, cfg.GeminiAPIKey, cfg.GeminiModel, time.Duration(cfg.AITimeoutSeconds)*time.Second)
	if err != nil {
		logger.Log.Fatal().Err(err).Msg("failed to initialize Gemini client")
	}
	defer gen.Close()

	// Prediction log: Postgres when DATABASE_URL is set, otherwise
	// in-memory.
	var predictions store.PredictionStore = store.NewMemoryStore()
	if cfg.DatabaseURL != "" {
		if err := database.Connect(ctx, cfg.DatabaseURL); err != nil {
			logger.Log.Fatal().Err(err).Msg("failed to connect to database")
		}
		defer database.Close()

		pg := store.NewPostgresStore(database.DB)
		if err := pg.EnsureSchema(ctx); err != nil {
			logger.Log.Fatal().Err(err).Msg("failed to prepare prediction log schema")
		}
		predictions = pg
		logger.Log.Info().Msg("prediction log backed by Postgres")
	}

	// Wire the agent
	src := signals.NewSource(nil)
	engine := forecast.NewEngine(src, gen, nil)
	opt := optimizer.New(gen)
	inventoryAgent := agent.New(engine, opt, gen, predictions)

	app := fiber.New()

	// Add middleware
	app.Use(cors.New())
	app.Use(middleware.RequestLogger())

	// Setup routes
	routes.SetupRoutes(app, handlers.New(inventoryAgent))

	// Start server
	logger.Log.Info().Str("port", cfg.Port).Msg("starting inventoryagentservice")
	if err := app.Listen(":" + cfg.Port); err != nil {
		logger.Log.Fatal().Err(err).Msg("server stopped")
	}
}

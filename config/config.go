package config

import (
	"sync"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds the application configuration, read once from the
// environment at startup.
type Config struct {
	Port             string
	GeminiAPIKey     string
	GeminiModel      string
	AITimeoutSeconds int
	LogLevel         string
	// DatabaseURL is optional; when set, predictions are logged to
	// Postgres instead of process memory.
	DatabaseURL string
	// WeatherAPIKey is reserved for a real weather feed. No code path
	// consumes it yet; the weather signal is simulated.
	WeatherAPIKey string
}

var (
	once     sync.Once
	instance *Config
)

// Load reads the configuration from a .env file (if present) and the
// environment.
func Load() *Config {
	once.Do(func() {
		// Load .env file if it exists
		_ = godotenv.Load()

		// Set default values
		viper.SetDefault("PORT", "8080")
		viper.SetDefault("GEMINI_API_KEY", "")
		viper.SetDefault("GEMINI_MODEL", "gemini-1.5-flash")
		viper.SetDefault("AI_TIMEOUT_SECONDS", 30)
		viper.SetDefault("LOG_LEVEL", "info")
		viper.SetDefault("DATABASE_URL", "")
		viper.SetDefault("WEATHER_API_KEY", "")

		// Read from environment variables
		viper.AutomaticEnv()

		instance = &Config{
			Port:             viper.GetString("PORT"),
			GeminiAPIKey:     viper.GetString("GEMINI_API_KEY"),
			GeminiModel:      viper.GetString("GEMINI_MODEL"),
			AITimeoutSeconds: viper.GetInt("AI_TIMEOUT_SECONDS"),
			LogLevel:         viper.GetString("LOG_LEVEL"),
			DatabaseURL:      viper.GetString("DATABASE_URL"),
			WeatherAPIKey:    viper.GetString("WEATHER_API_KEY"),
		}
	})

	return instance
}

package infrastructure

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	// Server settings
	Port string `json:"port"`
	Host string `json:"host"`

	// OpenAI API settings
	OpenAIAPIKey string `json:"-"` // Don't expose in JSON
	OpenAIModel  string `json:"openai_model"`

	// HTTP settings
	AllowedOrigin       string `json:"allowed_origin"`
	FetchTimeoutSeconds int    `json:"fetch_timeout_seconds"`
}

// Load reads configuration from environment variables and .env file.
// A missing API key is not fatal here; it surfaces as a summarization
// failure on first use.
func Load() (*Config, error) {
	// Load .env file if exists
	_ = godotenv.Load()

	config := &Config{
		Port:                getEnvOrDefault("PORT", "8080"),
		Host:                getEnvOrDefault("HOST", "0.0.0.0"),
		OpenAIAPIKey:        getEnvOrDefault("OPENAI_API_KEY", ""),
		OpenAIModel:         getEnvOrDefault("OPENAI_MODEL", "gpt-4o-mini"),
		AllowedOrigin:       getEnvOrDefault("ALLOWED_ORIGIN", "*"),
		FetchTimeoutSeconds: getEnvOrDefaultInt("FETCH_TIMEOUT_SECONDS", 30),
	}

	return config, config.validate()
}

// validate checks if configuration values are usable
func (c *Config) validate() error {
	if c.Port == "" {
		return &ConfigError{Field: "PORT", Message: "port must not be empty"}
	}
	if c.FetchTimeoutSeconds <= 0 {
		return &ConfigError{Field: "FETCH_TIMEOUT_SECONDS", Message: "fetch timeout must be positive"}
	}
	return nil
}

// getEnvOrDefault returns environment variable value or default if not set
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvOrDefaultInt returns environment variable value as int or default if not set
func getEnvOrDefaultInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// ConfigError represents a configuration error
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return e.Field + ": " + e.Message
}

package config

import (
	"os"
)

type Config struct {
	Port        string
	Environment string
	DatabaseURL string
	CORSOrigins string
	TablePrefix string
	// Assistant configuration
	AnthropicAPIKey string
	AssistProvider  string // "anthropic" or "lorem" (dev)
	AssistModel     string
	// Debug flags
	Debug bool
}

func Load() *Config {
	env := getEnv("ENVIRONMENT", "dev")

	return &Config{
		Port:        getEnv("PORT", "8080"),
		Environment: env,
		DatabaseURL: getEnv("DATABASE_URL", ""),
		CORSOrigins: getEnv("CORS_ORIGINS", "http://localhost:3000"),
		TablePrefix: getTablePrefix(env),
		// Assistant configuration
		AnthropicAPIKey: getEnv("ANTHROPIC_API_KEY", ""),
		AssistProvider:  getEnv("ASSIST_PROVIDER", getDefaultProvider(env)),
		AssistModel:     getEnv("ASSIST_MODEL", "claude-haiku-4-5-20251001"),
		// Debug flags - default to true outside production
		Debug: getEnv("DEBUG", getDefaultDebug(env)) == "true",
	}
}

// getDefaultProvider returns the default assistant provider for the
// environment. Dev and test fall back to the lorem generator so the
// server runs without an API key.
func getDefaultProvider(env string) string {
	if env == "prod" {
		return "anthropic"
	}
	return "lorem"
}

// getDefaultDebug returns the default debug setting based on environment
func getDefaultDebug(env string) string {
	if env == "prod" {
		return "false"
	}
	return "true"
}

// getTablePrefix returns the table prefix based on environment
func getTablePrefix(env string) string {
	// Allow manual override via TABLE_PREFIX env var
	if prefix := os.Getenv("TABLE_PREFIX"); prefix != "" {
		return prefix
	}

	switch env {
	case "prod":
		return "prod_"
	case "test":
		return "test_"
	default:
		return "dev_"
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

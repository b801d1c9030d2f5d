package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds everything the service reads from the environment. It is
// loaded once at startup and never mutated afterwards.
type Config struct {
	DatabaseURL string
	APIKey      string
	LLMAPIKey   string
	LLMBaseURL  string
	Port        string
}

// Load reads the process environment (plus an optional .env file) into a
// Config. Missing required variables abort startup with a single error
// listing all of them.
func Load() (*Config, error) {
	// A missing .env is fine in production, the variables come from the
	// real environment there.
	_ = godotenv.Load()

	cfg := &Config{
		DatabaseURL: os.Getenv("DATABASE_URL"),
		APIKey:      os.Getenv("API_KEY_AUTHORIZATION"),
		LLMAPIKey:   os.Getenv("OPENAI_API_KEY"),
		LLMBaseURL:  os.Getenv("LLM_BASE_URL"),
		Port:        os.Getenv("PORT"),
	}
	if cfg.Port == "" {
		cfg.Port = "8080"
	}

	var missing []string
	if cfg.DatabaseURL == "" {
		missing = append(missing, "DATABASE_URL")
	}
	if cfg.APIKey == "" {
		missing = append(missing, "API_KEY_AUTHORIZATION")
	}
	if cfg.LLMAPIKey == "" {
		missing = append(missing, "OPENAI_API_KEY")
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("missing required environment variables: %s", strings.Join(missing, ", "))
	}

	return cfg, nil
}

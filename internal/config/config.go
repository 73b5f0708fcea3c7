package config

import (
	"fmt"
	"os"
	"strconv"
)

// Config holds all configuration for the application
type Config struct {
	// Server configuration
	Port  string
	Debug bool

	// Search provider (Serper)
	SerperAPIKey string
	SerperURL    string

	// LLM provider (OpenAI-compatible chat completions)
	OpenAIAPIKey string
	OpenAIURL    string
	DefaultModel string

	// Alert rescan scheduling
	EnableAlertScheduler bool
	TimeZone             string

	// Report archive (optional)
	StorageAccount   string
	StorageContainer string

	// Notification configuration
	SMTPHost     string
	SMTPPort     int
	SMTPUsername string
	SMTPPassword string
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	cfg := &Config{
		Port:  getEnv("PORT", "8080"),
		Debug: getBoolEnv("DEBUG", false),

		SerperAPIKey: getEnv("SERPER_API_KEY", ""),
		SerperURL:    getEnv("SERPER_URL", "https://google.serper.dev"),

		OpenAIAPIKey: firstEnv("OPENAI_API_KEY", "CHATGPT_API_KEY"),
		OpenAIURL:    getEnv("OPENAI_URL", "https://api.openai.com"),
		DefaultModel: getEnv("OPENAI_MODEL", "gpt-4o"),

		EnableAlertScheduler: getBoolEnv("ENABLE_ALERT_SCHEDULER", true),
		TimeZone:             getEnv("TIMEZONE", "UTC"),

		StorageAccount:   getEnv("AZURE_STORAGE_ACCOUNT", ""),
		StorageContainer: getEnv("AZURE_STORAGE_CONTAINER", "reports"),

		SMTPHost:     getEnv("SMTP_HOST", ""),
		SMTPPort:     getIntEnv("SMTP_PORT", 587),
		SMTPUsername: getEnv("SMTP_USERNAME", ""),
		SMTPPassword: getEnv("SMTP_PASSWORD", ""),
	}

	// Validate required configuration
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

func (c *Config) validate() error {
	if c.SerperAPIKey == "" {
		return fmt.Errorf("SERPER_API_KEY is required")
	}

	if c.OpenAIAPIKey == "" {
		return fmt.Errorf("OPENAI_API_KEY is required")
	}

	return nil
}

// SMTPConfigured reports whether all settings needed to send email are present.
func (c *Config) SMTPConfigured() bool {
	return c.SMTPHost != "" && c.SMTPUsername != "" && c.SMTPPassword != ""
}

// Helper functions for environment variable parsing
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func firstEnv(keys ...string) string {
	for _, key := range keys {
		if value := os.Getenv(key); value != "" {
			return value
		}
	}
	return ""
}

func getBoolEnv(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.ParseBool(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

func getIntEnv(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

package main

import (
	"os"
	"strconv"
)

// Config holds environment-based configuration for the MCP server
type Config struct {
	AzureSubscriptionID string
	IncludeScaleUp      bool
	MaxRetries          int
	DelayMS             int
}

// LoadConfig reads configuration from environment variables
func LoadConfig() *Config {
	return &Config{
		AzureSubscriptionID: os.Getenv("AZURE_SUBSCRIPTION_ID"),
		IncludeScaleUp:      os.Getenv("INCLUDE_SCALE_UP") == "true",
		MaxRetries:          getEnvInt("MAX_RETRIES", 5),
		DelayMS:             getEnvInt("CALL_DELAY_MS", 250),
	}
}

// HasSubscription returns true if a specific subscription is configured
func (c *Config) HasSubscription() bool {
	return c.AzureSubscriptionID != ""
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

//go:build integration
// +build integration

// Package testhelpers builds live collaborators for tests run with -tags integration.
package testhelpers

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/kjstillabower/weather-chat-service/internal/client"
	"github.com/kjstillabower/weather-chat-service/internal/composer"
	"github.com/kjstillabower/weather-chat-service/internal/llm"
	"github.com/kjstillabower/weather-chat-service/internal/service"
)

// IntegrationTestConfig holds credentials and endpoints for live tests.
type IntegrationTestConfig struct {
	WeatherAPIKey string
	WeatherAPIURL string
	GeminiAPIKey  string
	GeminiModel   string
}

// GetIntegrationConfig loads integration settings from the environment.
// Skips the test unless both WEATHER_API_KEY and GEMINI_API_KEY are set.
func GetIntegrationConfig(t *testing.T) IntegrationTestConfig {
	t.Helper()
	cfg := IntegrationTestConfig{
		WeatherAPIKey: os.Getenv("WEATHER_API_KEY"),
		WeatherAPIURL: os.Getenv("WEATHER_API_URL"),
		GeminiAPIKey:  os.Getenv("GEMINI_API_KEY"),
		GeminiModel:   os.Getenv("GEMINI_MODEL"),
	}
	if cfg.WeatherAPIKey == "" || cfg.GeminiAPIKey == "" {
		t.Skip("WEATHER_API_KEY and GEMINI_API_KEY must be set, skipping integration test")
	}
	if cfg.WeatherAPIURL == "" {
		cfg.WeatherAPIURL = "https://api.openweathermap.org/data/2.5/weather"
	}
	return cfg
}

// SetupIntegrationClient creates a live weather client.
func SetupIntegrationClient(t *testing.T, cfg IntegrationTestConfig) client.WeatherClient {
	t.Helper()
	wc, err := client.NewOpenWeatherClient(cfg.WeatherAPIKey, cfg.WeatherAPIURL, 10*time.Second)
	if err != nil {
		t.Fatalf("NewOpenWeatherClient() error = %v", err)
	}
	return wc
}

// SetupIntegrationService wires a ChatService against the live providers.
func SetupIntegrationService(t *testing.T, cfg IntegrationTestConfig) (*service.ChatService, client.WeatherClient) {
	t.Helper()
	wc := SetupIntegrationClient(t, cfg)
	gen, err := llm.NewGeminiClient(context.Background(), llm.Config{
		APIKey:  cfg.GeminiAPIKey,
		Model:   cfg.GeminiModel,
		Timeout: 30 * time.Second,
	})
	if err != nil {
		t.Fatalf("NewGeminiClient() error = %v", err)
	}
	return service.NewChatService(wc, composer.New(gen)), wc
}

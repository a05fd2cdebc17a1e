//go:build integration
// +build integration

package client

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"
)

const liveWeatherURL = "https://api.openweathermap.org/data/2.5/weather"

func liveClient(t *testing.T) *OpenWeatherClient {
	t.Helper()
	apiKey := os.Getenv("WEATHER_API_KEY")
	if apiKey == "" {
		t.Skip("WEATHER_API_KEY not set, skipping integration test")
	}
	client, err := NewOpenWeatherClient(apiKey, liveWeatherURL, 10*time.Second)
	if err != nil {
		t.Fatalf("NewOpenWeatherClient() error = %v", err)
	}
	return client
}

func TestOpenWeatherClient_ValidateAPIKey_Integration(t *testing.T) {
	if err := liveClient(t).ValidateAPIKey(context.Background()); err != nil {
		t.Fatalf("ValidateAPIKey() error = %v", err)
	}
}

func TestOpenWeatherClient_GetCurrentWeather_Integration(t *testing.T) {
	got, err := liveClient(t).GetCurrentWeather(context.Background(), "Karachi")
	if err != nil {
		t.Fatalf("GetCurrentWeather() error = %v", err)
	}
	if got.City == "" || got.Conditions == "" {
		t.Errorf("GetCurrentWeather() = %+v, want populated reading", got)
	}
}

func TestOpenWeatherClient_UnknownCity_Integration(t *testing.T) {
	_, err := liveClient(t).GetCurrentWeather(context.Background(), "Atlantis Under The Sea")
	if !errors.Is(err, ErrLocationNotFound) {
		t.Errorf("GetCurrentWeather() error = %v, want ErrLocationNotFound", err)
	}
}

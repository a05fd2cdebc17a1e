//go:build integration
// +build integration

package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/kjstillabower/weather-chat-service/internal/lifecycle"
	"github.com/kjstillabower/weather-chat-service/internal/models"
	"github.com/kjstillabower/weather-chat-service/internal/observability"
	testhelpers "github.com/kjstillabower/weather-chat-service/internal/testhelpers"
)

func setupIntegrationRouter(t *testing.T) http.Handler {
	t.Helper()
	cfg := testhelpers.GetIntegrationConfig(t)
	chat, wc := testhelpers.SetupIntegrationService(t, cfg)

	logger, err := observability.NewLogger()
	if err != nil {
		t.Fatalf("NewLogger() error = %v", err)
	}
	h := NewHandler(chat, wc, nil, &HealthConfig{ValidateAPIKey: true}, 500, logger)
	return NewRouter(h, logger, 45*time.Second)
}

func TestIntegration_PostChat_Answered(t *testing.T) {
	router := setupIntegrationRouter(t)

	w := postJSON(t, router, `{"query":"What's the weather in Karachi?"}`)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
	}
	var got models.Reply
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got.Outcome != models.OutcomeAnswered {
		t.Fatalf("outcome = %q, want answered (reply %q)", got.Outcome, got.Text)
	}
	if got.City != "Karachi" || got.Text == "" {
		t.Errorf("reply = %+v, want non-empty text for Karachi", got)
	}
}

func TestIntegration_PostChat_UnknownCity(t *testing.T) {
	router := setupIntegrationRouter(t)

	w := postJSON(t, router, `{"query":"weather in Qwxzplorvania"}`)

	var got models.Reply
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got.Text != "Could not find weather data for Qwxzplorvania." {
		t.Errorf("reply = %q, want lookup failure", got.Text)
	}
}

func TestIntegration_GetHealth_FullStack(t *testing.T) {
	router := setupIntegrationRouter(t)
	lifecycle.SetPhase(lifecycle.PhaseServing)
	defer lifecycle.SetPhase(lifecycle.PhaseStarting)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

	if w.Code != http.StatusOK {
		t.Errorf("status = %d, want %d (%s)", w.Code, http.StatusOK, w.Body.String())
	}
}

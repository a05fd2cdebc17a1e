package http

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/kjstillabower/weather-chat-service/internal/composer"
	"github.com/kjstillabower/weather-chat-service/internal/models"
	"github.com/kjstillabower/weather-chat-service/internal/observability"
	"github.com/kjstillabower/weather-chat-service/internal/service"
)

// blockingWeatherClient waits for the request context to end.
type blockingWeatherClient struct{}

func (blockingWeatherClient) GetCurrentWeather(ctx context.Context, city string) (models.WeatherReading, error) {
	<-ctx.Done()
	return models.WeatherReading{}, ctx.Err()
}

func (blockingWeatherClient) ValidateAPIKey(ctx context.Context) error { return nil }

func TestCorrelationIDMiddleware_GeneratesID(t *testing.T) {
	var gotID string
	var gotLogger *zap.Logger
	router := mux.NewRouter()
	router.Use(CorrelationIDMiddleware(zap.NewNop()))
	router.HandleFunc("/x", func(w http.ResponseWriter, r *http.Request) {
		gotID = observability.CorrelationID(r.Context())
		gotLogger = observability.LoggerFromContext(r.Context())
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/x", nil))

	header := w.Header().Get("X-Correlation-ID")
	if header == "" {
		t.Fatal("X-Correlation-ID header missing")
	}
	if gotID != header {
		t.Errorf("context correlation ID = %q, want %q", gotID, header)
	}
	if gotLogger == nil {
		t.Error("request logger missing from context")
	}
}

func TestCorrelationIDMiddleware_PropagatesClientID(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	router := mux.NewRouter()
	router.Use(CorrelationIDMiddleware(zap.New(core)))
	router.HandleFunc("/x", func(w http.ResponseWriter, r *http.Request) {
		observability.LoggerFromContext(r.Context()).Info("inside handler")
	})

	req := httptest.NewRequest(http.MethodGet, "/x", nil)
	req.Header.Set("X-Correlation-ID", "client-provided-id")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if got := w.Header().Get("X-Correlation-ID"); got != "client-provided-id" {
		t.Errorf("X-Correlation-ID = %q, want client-provided-id", got)
	}
	entries := logs.FilterMessage("inside handler").All()
	if len(entries) != 1 {
		t.Fatalf("log entries = %d, want 1", len(entries))
	}
	if got := entries[0].ContextMap()["correlation_id"]; got != "client-provided-id" {
		t.Errorf("logged correlation_id = %v, want client-provided-id", got)
	}
}

func TestMetricsMiddleware_RouteLabels(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"/", "/"},
		{"/api/chat", "/api/chat"},
		{"/health", "/health"},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			var got string
			router := mux.NewRouter()
			router.Use(MetricsMiddleware)
			router.HandleFunc(tt.path, func(w http.ResponseWriter, r *http.Request) {
				got = getRoute(r)
			})
			router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, tt.path, nil))
			if got != tt.want {
				t.Errorf("getRoute() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestGetRoute_Unmatched(t *testing.T) {
	if got := getRoute(httptest.NewRequest(http.MethodGet, "/nope", nil)); got != "unmatched" {
		t.Errorf("getRoute() = %q, want unmatched", got)
	}
}

func TestStatusRecorder_CapturesCode(t *testing.T) {
	router := mux.NewRouter()
	router.Use(MetricsMiddleware)
	router.HandleFunc("/teapot", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/teapot", nil))

	if w.Code != http.StatusTeapot {
		t.Errorf("status = %d, want %d", w.Code, http.StatusTeapot)
	}
	if got := statusCodeString(http.StatusTeapot); got != "4xx" {
		t.Errorf("statusCodeString() = %q, want 4xx", got)
	}
}

func TestTimeoutMiddleware_SetsDeadline(t *testing.T) {
	var ctxErr error
	handler := TimeoutMiddleware(20 * time.Millisecond)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
		ctxErr = r.Context().Err()
	}))

	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))

	if !errors.Is(ctxErr, context.DeadlineExceeded) {
		t.Errorf("context error = %v, want DeadlineExceeded", ctxErr)
	}
}

// TestRouter_ChatTimeoutBecomesLookupFailure verifies a stalled weather lookup ends as a
// "could not find" reply once the request deadline passes.
func TestRouter_ChatTimeoutBecomesLookupFailure(t *testing.T) {
	gen := &mockGenerator{text: "unused"}
	chat := service.NewChatService(blockingWeatherClient{}, composer.New(gen))
	h := NewHandler(chat, blockingWeatherClient{}, nil, nil, 500, zap.NewNop())
	router := NewRouter(h, zap.NewNop(), 50*time.Millisecond)

	w := postJSON(t, router, `{"query":"weather in Lahore"}`)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
	}
	if !strings.Contains(w.Body.String(), "Could not find weather data for Lahore.") {
		t.Errorf("body = %s, want lookup failure reply", w.Body.String())
	}
	if gen.calls != 0 {
		t.Errorf("generator calls = %d, want 0", gen.calls)
	}
}

func TestRouter_MetricsEndpoint(t *testing.T) {
	router, _ := newTestRouter(&mockChatService{}, &mockWeatherClient{}, nil)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if !strings.Contains(w.Body.String(), "go_goroutines") {
		t.Error("metrics output missing Go collector series")
	}
}

func TestRouter_MethodNotAllowed(t *testing.T) {
	router, _ := newTestRouter(&mockChatService{}, &mockWeatherClient{}, nil)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/chat", nil))

	if w.Code != http.StatusMethodNotAllowed {
		t.Errorf("status = %d, want %d", w.Code, http.StatusMethodNotAllowed)
	}
}

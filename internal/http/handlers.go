package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/kjstillabower/weather-chat-service/internal/client"
	"github.com/kjstillabower/weather-chat-service/internal/lifecycle"
	"github.com/kjstillabower/weather-chat-service/internal/models"
	"github.com/kjstillabower/weather-chat-service/internal/observability"
	"github.com/kjstillabower/weather-chat-service/internal/traffic"
	"github.com/kjstillabower/weather-chat-service/internal/validation"
)

// ChatService answers a single free-text query.
type ChatService interface {
	Handle(ctx context.Context, query string) models.Reply
}

// HealthConfig holds thresholds for the health handler.
type HealthConfig struct {
	// ValidateAPIKey makes /health probe the weather provider with the configured key.
	ValidateAPIKey   bool
	DegradedWindow   time.Duration
	DegradedErrorPct int
}

// Handler holds dependencies for HTTP handlers.
type Handler struct {
	chat             ChatService
	client           client.WeatherClient
	tracker          *traffic.Tracker
	healthConfig     *HealthConfig
	queryMaxLength   int
	logger           *zap.Logger
	healthStatusMu   sync.Mutex
	healthStatusPrev string
}

// NewHandler returns a new Handler. tracker and healthConfig may be nil.
func NewHandler(
	chat ChatService,
	client client.WeatherClient,
	tracker *traffic.Tracker,
	healthConfig *HealthConfig,
	queryMaxLength int,
	logger *zap.Logger,
) *Handler {
	if tracker == nil {
		tracker = traffic.NewTracker(traffic.DefaultMaxAge)
	}
	return &Handler{
		chat:           chat,
		client:         client,
		tracker:        tracker,
		healthConfig:   healthConfig,
		queryMaxLength: queryMaxLength,
		logger:         logger,
	}
}

type chatRequest struct {
	Query string `json:"query"`
}

// PostChat handles POST /api/chat.
func (h *Handler) PostChat(w http.ResponseWriter, r *http.Request) {
	var req chatRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, 64<<10)).Decode(&req); err != nil {
		writeError(w, r, http.StatusBadRequest, "INVALID_BODY", "request body must be JSON with a query field")
		return
	}

	query, err := validation.ValidateQuery(req.Query, h.queryMaxLength)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, "INVALID_QUERY", err.Error())
		return
	}

	reply := h.ask(r.Context(), query)
	writeJSON(w, http.StatusOK, reply)
}

// GetIndex handles GET /.
func (h *Handler) GetIndex(w http.ResponseWriter, r *http.Request) {
	renderPage(w, r, http.StatusOK, pageData{})
}

// PostIndex handles POST / from the chat form.
func (h *Handler) PostIndex(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		renderPage(w, r, http.StatusBadRequest, pageData{Error: "Could not read the form."})
		return
	}
	raw := r.PostFormValue("query")

	query, err := validation.ValidateQuery(raw, h.queryMaxLength)
	switch {
	case errors.Is(err, validation.ErrQueryEmpty):
		// An empty question has no city; the chat service answers with the usage hint.
	case err != nil:
		renderPage(w, r, http.StatusBadRequest, pageData{Query: raw, Error: err.Error()})
		return
	}

	reply := h.ask(r.Context(), query)
	renderPage(w, r, http.StatusOK, pageData{Query: query, Reply: reply.Text, HasReply: true})
}

// ask runs the chat pipeline and feeds the outcome into the error-rate tracker.
func (h *Handler) ask(ctx context.Context, query string) models.Reply {
	reply := h.chat.Handle(ctx, query)
	switch reply.Outcome {
	case models.OutcomeAnswered:
		h.tracker.RecordSuccess()
	case models.OutcomeLookupFailed, models.OutcomeGenerationFailed:
		h.tracker.RecordError()
	}
	return reply
}

// healthResult holds the computed health status and metadata for logging.
type healthResult struct {
	status     string
	statusCode int
	reason     string
}

// GetHealth handles GET /health.
func (h *Handler) GetHealth(w http.ResponseWriter, r *http.Request) {
	result := h.computeHealthStatus(r.Context())

	h.healthStatusMu.Lock()
	prev := h.healthStatusPrev
	if prev != "" && prev != result.status {
		h.logger.Info("health status transition",
			zap.String("previous_status", prev),
			zap.String("current_status", result.status),
			zap.String("reason", result.reason))
	}
	h.healthStatusPrev = result.status
	h.healthStatusMu.Unlock()

	checks := map[string]string{"weatherApi": "healthy"}
	if result.reason == "api_key_invalid" {
		checks["weatherApi"] = "unhealthy"
	}
	if result.reason == "error_rate_breach" {
		checks["chat"] = "unhealthy"
	} else {
		checks["chat"] = "healthy"
	}
	writeJSON(w, result.statusCode, map[string]interface{}{
		"status":    result.status,
		"service":   observability.ServiceName,
		"version":   "dev",
		"checks":    checks,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

// computeHealthStatus evaluates, in order: lifecycle phase, weather API key, chat error rate.
func (h *Handler) computeHealthStatus(ctx context.Context) healthResult {
	switch lifecycle.CurrentPhase() {
	case lifecycle.PhaseShuttingDown:
		return healthResult{"shutting-down", http.StatusServiceUnavailable, "signal"}
	case lifecycle.PhaseStarting:
		return healthResult{"starting", http.StatusServiceUnavailable, "starting"}
	}

	if h.healthConfig == nil || h.healthConfig.ValidateAPIKey {
		if err := h.client.ValidateAPIKey(ctx); err != nil {
			observability.LoggerFromContext(ctx).Debug("api key validation failed", zap.Error(err))
			return healthResult{"degraded", http.StatusServiceUnavailable, "api_key_invalid"}
		}
	}
	if h.healthConfig == nil {
		return healthResult{"healthy", http.StatusOK, ""}
	}

	if h.healthConfig.DegradedWindow > 0 && h.healthConfig.DegradedErrorPct > 0 {
		errs, total := h.tracker.ErrorRate(h.healthConfig.DegradedWindow)
		if total > 0 {
			pct := float64(errs) * 100 / float64(total)
			if pct >= float64(h.healthConfig.DegradedErrorPct) {
				return healthResult{"degraded", http.StatusServiceUnavailable, "error_rate_breach"}
			}
		}
	}
	return healthResult{"healthy", http.StatusOK, ""}
}

// writeJSON writes v as JSON with the given status code.
func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError writes the standard error envelope; requestId is the correlation ID when set.
func writeError(w http.ResponseWriter, r *http.Request, status int, code, message string) {
	writeJSON(w, status, map[string]interface{}{
		"error": map[string]string{
			"code":      code,
			"message":   message,
			"requestId": observability.CorrelationID(r.Context()),
		},
	})
}

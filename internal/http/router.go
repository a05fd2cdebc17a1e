package http

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/kjstillabower/weather-chat-service/internal/observability"
)

// NewRouter wires the chat page, the JSON chat API, /health and /metrics.
// requestTimeout bounds the chat routes only; 0 disables it.
func NewRouter(h *Handler, logger *zap.Logger, requestTimeout time.Duration) *mux.Router {
	router := mux.NewRouter()
	router.Use(CorrelationIDMiddleware(logger))
	router.Use(MetricsMiddleware)

	router.HandleFunc("/health", h.GetHealth).Methods(http.MethodGet)
	router.Handle("/metrics", observability.MetricsHandler()).Methods(http.MethodGet)

	chat := router.NewRoute().Subrouter()
	if requestTimeout > 0 {
		chat.Use(TimeoutMiddleware(requestTimeout))
	}
	chat.HandleFunc("/", h.GetIndex).Methods(http.MethodGet)
	chat.HandleFunc("/", h.PostIndex).Methods(http.MethodPost)
	chat.HandleFunc("/api/chat", h.PostChat).Methods(http.MethodPost)

	return router
}

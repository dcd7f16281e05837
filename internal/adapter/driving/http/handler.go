// Package httphandler is the HTTP driving adapter that serves the local
// REST API consumed by the menu-bar client and expiryctl.
package httphandler

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/finnroth/expiryd/internal/application"
)

// Handler serves the status API.
type Handler struct {
	svc    *application.StatusService
	logger *slog.Logger
}

// NewHandler creates a Handler with all required dependencies.
func NewHandler(svc *application.StatusService, logger *slog.Logger) *Handler {
	return &Handler{
		svc:    svc,
		logger: logger,
	}
}

// RegisterRoutes registers the API routes on mux.
func (h *Handler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /api/v1/status", h.GetStatus)
	mux.HandleFunc("POST /api/v1/refresh", h.Refresh)
	mux.HandleFunc("GET /api/v1/health", h.Health)
	mux.Handle("GET /metrics", promhttp.Handler())
}

// NewServeMux creates an http.Handler with all routes registered and wrapped
// with logging and recovery middleware.
func NewServeMux(h *Handler, logger *slog.Logger) http.Handler {
	mux := http.NewServeMux()
	h.RegisterRoutes(mux)
	return ApplyMiddleware(mux, logger)
}

// GetStatus returns the most recently published display status.
func (h *Handler) GetStatus(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, toStatusResponse(h.svc.Current()))
}

// Refresh triggers an immediate poll and returns the refreshed status.
func (h *Handler) Refresh(w http.ResponseWriter, r *http.Request) {
	status, err := h.svc.Refresh(r.Context())
	if err != nil {
		// Refresh only fails when the request context ends before the
		// poll completes.
		h.logger.Error("refresh canceled", "error", err)
		writeError(w, http.StatusServiceUnavailable, "refresh canceled")
		return
	}

	writeJSON(w, http.StatusOK, toStatusResponse(status))
}

// Health reports daemon liveness.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{
		Status: "ok",
		Time:   time.Now().UTC().Format(time.RFC3339),
	})
}

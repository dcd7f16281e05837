package httphandler

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/finnroth/expiryd/internal/domain/model"
)

// writeJSON marshals v to JSON and writes it to the response with the given
// status code. If marshaling fails, a 500 error is written instead.
func writeJSON(w http.ResponseWriter, status int, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error":"internal server error"}`))
		return
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_, _ = w.Write(data)
}

// writeError writes a JSON error response with the given status code and message.
func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorResponse{Error: message})
}

// errorResponse is the standard error response body.
type errorResponse struct {
	Error string `json:"error"`
}

// StatusResponse is the JSON representation of the current display status.
type StatusResponse struct {
	Text        string `json:"text"`
	AlertActive bool   `json:"alert_active"`
	Source      string `json:"source"`
	State       string `json:"state"`
	CheckedAt   string `json:"checked_at,omitempty"`
}

// HealthResponse is the JSON representation of the health check endpoint.
type HealthResponse struct {
	Status string `json:"status"`
	Time   string `json:"time"`
}

// toStatusResponse converts a domain DisplayStatus to its JSON response
// representation. CheckedAt is omitted until the first poll completes.
func toStatusResponse(status model.DisplayStatus) StatusResponse {
	resp := StatusResponse{
		Text:        status.Text,
		AlertActive: status.AlertActive,
		Source:      string(status.Source),
		State:       string(status.State),
	}
	if !status.CheckedAt.IsZero() {
		resp.CheckedAt = status.CheckedAt.UTC().Format(time.RFC3339)
	}
	return resp
}

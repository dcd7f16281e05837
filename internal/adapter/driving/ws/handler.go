// Package ws streams status updates to menu-bar clients over WebSocket.
package ws

import (
	"log/slog"
	"net/http"

	"github.com/coder/websocket"

	"github.com/finnroth/expiryd/internal/application"
	"github.com/finnroth/expiryd/internal/bus"
	"github.com/finnroth/expiryd/internal/domain/model"
)

// Handler provides the WebSocket endpoint for real-time status updates.
type Handler struct {
	hub    *Hub
	svc    *application.StatusService
	logger *slog.Logger
}

// NewHandler creates a WebSocket handler and subscribes it to status updates.
func NewHandler(statusBus *bus.Bus, svc *application.StatusService, logger *slog.Logger) *Handler {
	h := &Handler{
		hub:    NewHub(logger),
		svc:    svc,
		logger: logger,
	}
	statusBus.Subscribe(func(status model.DisplayStatus) {
		h.hub.Broadcast(newStatusMessage(status))
	})
	return h
}

// RegisterRoutes registers the WebSocket route on the server mux.
func (h *Handler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /api/v1/ws/status", h.handleStatusStream)
}

// handleStatusStream upgrades the connection and streams status updates.
// The current status is sent immediately so a freshly connected client can
// render without waiting for the next poll.
func (h *Handler) handleStatusStream(w http.ResponseWriter, r *http.Request) {
	conn, err := websocket.Accept(w, r, nil)
	if err != nil {
		h.logger.Debug("websocket accept failed", "error", err)
		return
	}

	client := &Client{
		conn:   conn,
		send:   make(chan Message, sendBuffer),
		logger: h.logger,
	}

	client.send <- newStatusMessage(h.svc.Current())
	h.hub.Register(client)

	ctx := r.Context()
	go client.writePump(ctx)

	// Blocks until the client disconnects.
	client.readPump(ctx)

	h.hub.Unregister(client)
	_ = conn.Close(websocket.StatusNormalClosure, "")
}

package ws

import (
	"time"

	"github.com/finnroth/expiryd/internal/domain/model"
)

// MessageType discriminates WebSocket messages.
type MessageType string

const (
	// MessageStatusUpdated is broadcast whenever a poll publishes a new
	// display status. It is the "recompute display" signal for menu-bar
	// clients.
	MessageStatusUpdated MessageType = "status.updated"
)

// Message is the envelope for all WebSocket messages.
type Message struct {
	Type      MessageType `json:"type"`
	Timestamp time.Time   `json:"timestamp"`
	Data      StatusData  `json:"data"`
}

// StatusData is the payload for status.updated messages.
type StatusData struct {
	Text        string `json:"text"`
	AlertActive bool   `json:"alert_active"`
	Source      string `json:"source"`
	State       string `json:"state"`
	CheckedAt   string `json:"checked_at,omitempty"`
}

// newStatusMessage wraps a DisplayStatus in the broadcast envelope.
func newStatusMessage(status model.DisplayStatus) Message {
	data := StatusData{
		Text:        status.Text,
		AlertActive: status.AlertActive,
		Source:      string(status.Source),
		State:       string(status.State),
	}
	if !status.CheckedAt.IsZero() {
		data.CheckedAt = status.CheckedAt.UTC().Format(time.RFC3339)
	}

	return Message{
		Type:      MessageStatusUpdated,
		Timestamp: time.Now().UTC(),
		Data:      data,
	}
}

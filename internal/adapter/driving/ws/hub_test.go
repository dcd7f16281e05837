package ws

import (
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finnroth/expiryd/internal/domain/model"
)

func newTestClient() *Client {
	return &Client{
		send:   make(chan Message, sendBuffer),
		logger: slog.Default(),
	}
}

func TestHub_RegisterUnregister(t *testing.T) {
	hub := NewHub(slog.Default())
	c := newTestClient()

	hub.Register(c)
	assert.Equal(t, 1, hub.ClientCount())

	hub.Unregister(c)
	assert.Equal(t, 0, hub.ClientCount())

	// Double unregister must not close the channel twice.
	assert.NotPanics(t, func() { hub.Unregister(c) })
}

func TestHub_BroadcastQueuesForAllClients(t *testing.T) {
	hub := NewHub(slog.Default())
	c1 := newTestClient()
	c2 := newTestClient()
	hub.Register(c1)
	hub.Register(c2)

	msg := newStatusMessage(model.DisplayStatus{
		Text:        "Expires in 5 days",
		AlertActive: true,
		Source:      model.SourceNomad,
		State:       model.PollStateReady,
		CheckedAt:   time.Now(),
	})
	hub.Broadcast(msg)

	for _, c := range []*Client{c1, c2} {
		select {
		case got := <-c.send:
			assert.Equal(t, MessageStatusUpdated, got.Type)
			assert.Equal(t, "Expires in 5 days", got.Data.Text)
			assert.True(t, got.Data.AlertActive)
		default:
			t.Fatal("expected a queued message")
		}
	}
}

func TestHub_BroadcastDropsWhenBufferFull(t *testing.T) {
	hub := NewHub(slog.Default())
	c := newTestClient()
	hub.Register(c)

	msg := newStatusMessage(model.DisplayStatus{Text: "Expires today"})
	for i := 0; i < sendBuffer+3; i++ {
		hub.Broadcast(msg)
	}

	// The buffer holds at most sendBuffer messages; the rest were dropped
	// without blocking the broadcaster.
	assert.Len(t, c.send, sendBuffer)
}

func TestNewStatusMessage_OmitsZeroCheckedAt(t *testing.T) {
	msg := newStatusMessage(model.DisplayStatus{Text: "Expiration unknown", State: model.PollStateIdle})

	require.Equal(t, MessageStatusUpdated, msg.Type)
	assert.Empty(t, msg.Data.CheckedAt)
	assert.Equal(t, "idle", msg.Data.State)
}

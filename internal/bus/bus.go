// Package bus provides the in-process change-notification broadcast for
// display status updates.
package bus

import (
	"log/slog"
	"sync"

	"github.com/finnroth/expiryd/internal/domain/model"
	"github.com/finnroth/expiryd/internal/domain/port/driven"
)

// Compile-time interface guard.
var _ driven.StatusPublisher = (*Bus)(nil)

// Bus fans a published DisplayStatus out to all subscribers. Handlers
// receive the status by value and run synchronously in the publisher's
// goroutine; delivery order across subscribers is unspecified.
type Bus struct {
	mu     sync.RWMutex
	subs   map[uint64]func(model.DisplayStatus)
	nextID uint64
	logger *slog.Logger
}

// New creates an empty status bus.
func New(logger *slog.Logger) *Bus {
	return &Bus{
		subs:   make(map[uint64]func(model.DisplayStatus)),
		logger: logger,
	}
}

// Subscribe registers a handler for status updates and returns an
// unsubscribe function. Unsubscribing twice is a no-op.
func (b *Bus) Subscribe(fn func(model.DisplayStatus)) (unsubscribe func()) {
	b.mu.Lock()
	id := b.nextID
	b.nextID++
	b.subs[id] = fn
	b.mu.Unlock()

	return func() {
		b.mu.Lock()
		delete(b.subs, id)
		b.mu.Unlock()
	}
}

// Publish delivers the status to every subscriber. A panicking handler is
// recovered and logged so one misbehaving observer cannot take down a poll.
func (b *Bus) Publish(status model.DisplayStatus) {
	b.mu.RLock()
	handlers := make([]func(model.DisplayStatus), 0, len(b.subs))
	for _, fn := range b.subs {
		handlers = append(handlers, fn)
	}
	b.mu.RUnlock()

	for _, fn := range handlers {
		b.safeCall(fn, status)
	}
}

// SubscriberCount returns the number of registered subscribers.
func (b *Bus) SubscriberCount() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.subs)
}

func (b *Bus) safeCall(fn func(model.DisplayStatus), status model.DisplayStatus) {
	defer func() {
		if r := recover(); r != nil {
			b.logger.Error("status subscriber panicked", "panic", r)
		}
	}()
	fn(status)
}

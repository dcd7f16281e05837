package bus_test

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finnroth/expiryd/internal/bus"
	"github.com/finnroth/expiryd/internal/domain/model"
)

func TestPublish_DeliversToAllSubscribers(t *testing.T) {
	b := bus.New(slog.Default())

	var got1, got2 []model.DisplayStatus
	b.Subscribe(func(s model.DisplayStatus) { got1 = append(got1, s) })
	b.Subscribe(func(s model.DisplayStatus) { got2 = append(got2, s) })

	status := model.DisplayStatus{Text: "Expires in 3 days", AlertActive: true}
	b.Publish(status)

	require.Len(t, got1, 1)
	require.Len(t, got2, 1)
	assert.Equal(t, status, got1[0])
	assert.Equal(t, status, got2[0])
}

func TestSubscribe_UnsubscribeStopsDelivery(t *testing.T) {
	b := bus.New(slog.Default())

	var calls int
	unsubscribe := b.Subscribe(func(model.DisplayStatus) { calls++ })

	b.Publish(model.DisplayStatus{Text: "Never expires"})
	unsubscribe()
	b.Publish(model.DisplayStatus{Text: "Expired"})

	assert.Equal(t, 1, calls)
	assert.Equal(t, 0, b.SubscriberCount())

	// Double unsubscribe is a no-op.
	unsubscribe()
}

func TestPublish_RecoversPanickingSubscriber(t *testing.T) {
	b := bus.New(slog.Default())

	var delivered bool
	b.Subscribe(func(model.DisplayStatus) { panic("observer bug") })
	b.Subscribe(func(model.DisplayStatus) { delivered = true })

	assert.NotPanics(t, func() {
		b.Publish(model.DisplayStatus{Text: "Expires today"})
	})
	assert.True(t, delivered)
}

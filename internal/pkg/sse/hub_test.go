package sse

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHubPublishReachesSubscriber(t *testing.T) {
	hub := NewHub()

	ch, cleanup := hub.Subscribe(1)
	defer cleanup()

	hub.Publish(1, Event{Event: "notification", Data: "hello"})

	select {
	case ev := <-ch:
		assert.Equal(t, "notification", ev.Event)
		assert.Equal(t, "hello", ev.Data)
	default:
		t.Fatal("expected a buffered event")
	}
}

func TestHubPublishToOtherEmployee(t *testing.T) {
	hub := NewHub()

	ch, cleanup := hub.Subscribe(1)
	defer cleanup()

	hub.Publish(2, Event{Event: "notification"})

	select {
	case <-ch:
		t.Fatal("employee 1 received employee 2's event")
	default:
	}
}

func TestHubCleanupRemovesSubscriber(t *testing.T) {
	hub := NewHub()

	_, cleanup := hub.Subscribe(1)
	require.Equal(t, 1, hub.SubscriberCount(1))

	cleanup()
	assert.Equal(t, 0, hub.SubscriberCount(1))

	// Publishing to an employee with no streams must not panic.
	hub.Publish(1, Event{Event: "notification"})
}

func TestHubMultipleStreamsPerEmployee(t *testing.T) {
	hub := NewHub()

	ch1, cleanup1 := hub.Subscribe(1)
	ch2, cleanup2 := hub.Subscribe(1)
	defer cleanup1()
	defer cleanup2()

	require.Equal(t, 2, hub.SubscriberCount(1))

	hub.Publish(1, Event{Event: "notification"})

	assert.Len(t, ch1, 1)
	assert.Len(t, ch2, 1)
}

func TestHubSkipsFullStream(t *testing.T) {
	hub := NewHub()

	ch, cleanup := hub.Subscribe(1)
	defer cleanup()

	// The channel buffer is 10; the extras must be dropped, not block.
	for i := 0; i < 15; i++ {
		hub.Publish(1, Event{Event: "notification"})
	}

	assert.Len(t, ch, 10)
}

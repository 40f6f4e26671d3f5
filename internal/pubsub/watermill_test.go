package pubsub_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/nfrund/docchat/internal/pubsub"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type created struct {
	ID       string `json:"id"`
	Filename string `json:"filename"`
}

func TestWatermillBridge_RoundTrip(t *testing.T) {
	bridge := pubsub.NewWatermillBridge(16)
	t.Cleanup(func() { _ = bridge.Close() })

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	received := make(chan pubsub.Message, 1)
	require.NoError(t, bridge.Subscribe(ctx, "uploads.created", func(ctx context.Context, msg pubsub.Message) error {
		received <- msg
		return nil
	}))

	require.NoError(t, bridge.Publish(ctx, pubsub.Message{
		Topic:    "uploads.created",
		UserID:   "m@example.com",
		Payload:  []byte(`{"id":"1"}`),
		Metadata: map[string]string{"source": "test"},
	}))

	select {
	case msg := <-received:
		assert.Equal(t, "uploads.created", msg.Topic)
		assert.Equal(t, "m@example.com", msg.UserID)
		assert.JSONEq(t, `{"id":"1"}`, string(msg.Payload))
		assert.Equal(t, "test", msg.Metadata["source"])
		assert.NotContains(t, msg.Metadata, "topic")
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for message")
	}
}

func TestWatermillBridge_RequiresTopic(t *testing.T) {
	bridge := pubsub.NewWatermillBridge(1)
	t.Cleanup(func() { _ = bridge.Close() })

	err := bridge.Publish(context.Background(), pubsub.Message{Payload: []byte("x")})
	assert.Error(t, err)
}

func TestEvent_TypedRoundTrip(t *testing.T) {
	bridge := pubsub.NewWatermillBridge(16)
	t.Cleanup(func() { _ = bridge.Close() })

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	event := pubsub.NewEvent[created]("uploads.created")
	got := make(chan created, 2)

	require.NoError(t, event.Subscribe(ctx, bridge, func(ctx context.Context, userID string, payload created) error {
		assert.Equal(t, "m@example.com", userID)
		got <- payload
		if payload.ID == "fail" {
			return errors.New("handler failure is logged, not redelivered")
		}
		return nil
	}))

	require.NoError(t, event.Publish(ctx, bridge, "m@example.com", created{ID: "fail", Filename: "a.pdf"}))
	require.NoError(t, event.Publish(ctx, bridge, "m@example.com", created{ID: "2", Filename: "b.pdf"}))

	for _, want := range []string{"fail", "2"} {
		select {
		case payload := <-got:
			assert.Equal(t, want, payload.ID)
		case <-time.After(2 * time.Second):
			t.Fatalf("timed out waiting for %s", want)
		}
	}
}

func TestEvent_DecodeRejectsOtherTopics(t *testing.T) {
	event := pubsub.NewEvent[created]("uploads.created")

	_, err := event.Decode(pubsub.Message{Topic: "uploads.deleted", Payload: []byte(`{}`)})
	assert.Error(t, err)

	_, err = event.Decode(pubsub.Message{Topic: "uploads.created", Payload: []byte(`not json`)})
	assert.Error(t, err)
}

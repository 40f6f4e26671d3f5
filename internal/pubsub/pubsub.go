package pubsub

import (
	"context"
	"encoding/json"
	"fmt"
)

// Message is the structure passed between components on the bus.
// It is intentionally simple to act as a wrapper for raw data.
type Message struct {
	// Topic identifies the channel the message belongs to (e.g., "uploads.created").
	Topic string
	// UserID identifies the user who initiated the message.
	UserID string
	// Payload contains the raw message data.
	Payload []byte
	// Metadata can contain arbitrary key-value pairs for context.
	Metadata map[string]string
}

// Handler defines the function signature for processing a received message.
type Handler func(ctx context.Context, msg Message) error

// Publisher defines the contract for sending messages to the Pub/Sub system.
type Publisher interface {
	Publish(ctx context.Context, msg Message) error
	Close() error
}

// Subscriber defines the contract for receiving messages from the Pub/Sub system.
type Subscriber interface {
	// Subscribe starts listening to the given topic, processing messages with the handler.
	// It returns once the subscription is active; delivery stops when ctx is canceled.
	Subscribe(ctx context.Context, topic string, handler Handler) error
	Close() error
}

// Event binds a topic to the JSON payload type published on it.
type Event[T any] struct {
	Topic string
}

// NewEvent declares a typed event on topic.
func NewEvent[T any](topic string) Event[T] {
	return Event[T]{Topic: topic}
}

// Publish encodes payload as JSON and publishes it on the event's topic.
func (e Event[T]) Publish(ctx context.Context, pub Publisher, userID string, payload T) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to encode %s payload: %w", e.Topic, err)
	}
	return pub.Publish(ctx, Message{Topic: e.Topic, UserID: userID, Payload: data})
}

// Decode extracts the typed payload from a message received on the event's topic.
func (e Event[T]) Decode(msg Message) (T, error) {
	var payload T
	if msg.Topic != "" && msg.Topic != e.Topic {
		return payload, fmt.Errorf("message topic %q does not match event %q", msg.Topic, e.Topic)
	}
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		return payload, fmt.Errorf("failed to decode %s payload: %w", e.Topic, err)
	}
	return payload, nil
}

// Subscribe registers a handler that receives decoded payloads.
func (e Event[T]) Subscribe(ctx context.Context, sub Subscriber, handle func(ctx context.Context, userID string, payload T) error) error {
	return sub.Subscribe(ctx, e.Topic, func(ctx context.Context, msg Message) error {
		payload, err := e.Decode(msg)
		if err != nil {
			return err
		}
		return handle(ctx, msg.UserID, payload)
	})
}

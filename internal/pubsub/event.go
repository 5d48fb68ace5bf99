package pubsub

import (
	"context"
	"encoding/json"
	"fmt"
)

// Event is a topic name bound to the payload type carried on it.
type Event[T any] struct {
	topic string
}

// NewEvent declares a typed event on the given topic.
func NewEvent[T any](topic string) Event[T] {
	return Event[T]{topic: topic}
}

// Topic returns the bus topic for the event.
func (e Event[T]) Topic() string {
	return e.topic
}

// Publish encodes the payload as JSON and sends it on the event's topic.
func (e Event[T]) Publish(ctx context.Context, pub Publisher, userID string, payload T) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("encode %s payload: %w", e.topic, err)
	}
	return pub.Publish(ctx, Message{
		Topic:   e.topic,
		UserID:  userID,
		Payload: data,
	})
}

// Decode extracts the typed payload from a message received on the event's topic.
func (e Event[T]) Decode(msg Message) (T, error) {
	var payload T
	if msg.Topic != "" && msg.Topic != e.topic {
		return payload, fmt.Errorf("message on topic %q is not a %s event", msg.Topic, e.topic)
	}
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		return payload, fmt.Errorf("decode %s payload: %w", e.topic, err)
	}
	return payload, nil
}

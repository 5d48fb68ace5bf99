package pubsub

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type greeting struct {
	Name string `json:"name"`
}

func TestWatermillBridge_PublishSubscribe(t *testing.T) {
	bridge := NewWatermillBridge()
	defer bridge.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	received := make(chan Message, 1)
	err := bridge.Subscribe(ctx, "test.topic", func(ctx context.Context, msg Message) error {
		received <- msg
		return nil
	})
	require.NoError(t, err)

	err = bridge.Publish(ctx, Message{
		Topic:    "test.topic",
		UserID:   "budi",
		Payload:  []byte("hello"),
		Metadata: map[string]string{"source": "test"},
	})
	require.NoError(t, err)

	select {
	case msg := <-received:
		assert.Equal(t, "test.topic", msg.Topic)
		assert.Equal(t, "budi", msg.UserID)
		assert.Equal(t, []byte("hello"), msg.Payload)
		assert.Equal(t, "test", msg.Metadata["source"])
		assert.Equal(t, "budi", msg.Metadata[headerUserID])
		assert.NotContains(t, msg.Metadata, headerTopic)
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for message")
	}
}

func TestWatermillBridge_HandlerErrorDoesNotStopLoop(t *testing.T) {
	bridge := NewWatermillBridge()
	defer bridge.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	calls := make(chan string, 4)
	err := bridge.Subscribe(ctx, "flaky", func(ctx context.Context, msg Message) error {
		calls <- string(msg.Payload)
		if string(msg.Payload) == "bad" {
			return errors.New("boom")
		}
		return nil
	})
	require.NoError(t, err)

	require.NoError(t, bridge.Publish(ctx, Message{Topic: "flaky", Payload: []byte("bad")}))
	require.NoError(t, bridge.Publish(ctx, Message{Topic: "flaky", Payload: []byte("good")}))

	// Delivery order across separate Publish calls is not guaranteed by the go channel.
	var got []string
	for i := 0; i < 2; i++ {
		select {
		case payload := <-calls:
			got = append(got, payload)
		case <-time.After(2 * time.Second):
			t.Fatalf("timed out waiting for handler call %d", i+1)
		}
	}
	assert.ElementsMatch(t, []string{"bad", "good"}, got)
}

func TestEvent_RoundTrip(t *testing.T) {
	bridge := NewWatermillBridge()
	defer bridge.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	evt := NewEvent[greeting]("greeting.sent")
	got := make(chan greeting, 1)
	require.NoError(t, bridge.Subscribe(ctx, evt.Topic(), func(ctx context.Context, msg Message) error {
		payload, err := evt.Decode(msg)
		if err != nil {
			return err
		}
		got <- payload
		return nil
	}))

	require.NoError(t, evt.Publish(ctx, bridge, "sari", greeting{Name: "Sari"}))

	select {
	case payload := <-got:
		assert.Equal(t, "Sari", payload.Name)
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for typed event")
	}
}

func TestEvent_DecodeRejectsOtherTopic(t *testing.T) {
	evt := NewEvent[greeting]("greeting.sent")
	_, err := evt.Decode(Message{Topic: "other", Payload: []byte(`{"name":"x"}`)})
	assert.Error(t, err)
}

func TestWatermillBridge_PublishHonorsCanceledContext(t *testing.T) {
	bridge := NewWatermillBridge()
	defer bridge.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := bridge.Publish(ctx, Message{Topic: "late"})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestFromWire_FieldsOverrideMetadata(t *testing.T) {
	msg := fromWire(toWire(Message{
		Topic:    "exam.started",
		UserID:   "sari",
		Metadata: map[string]string{headerTopic: "spoofed", "request_id": "r1"},
	}))

	assert.Equal(t, "exam.started", msg.Topic)
	assert.Equal(t, "sari", msg.UserID)
	assert.Equal(t, map[string]string{"request_id": "r1", headerUserID: "sari"}, msg.Metadata)
}

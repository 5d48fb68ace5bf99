package pubsub

import (
	"context"
	"log/slog"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

// Header names that carry Message fields through a watermill message.
const (
	headerUserID = "user_id"
	headerTopic  = "topic"
)

// busBuffer is how many undelivered messages each subscription holds.
const busBuffer = 64

// WatermillBridge is the portal's in-process bus: one gochannel serves as
// both Publisher and Subscriber. Publishing to a topic nobody listens on is a no-op.
type WatermillBridge struct {
	channel *gochannel.GoChannel
	log     *slog.Logger
}

// NewWatermillBridge builds the bus on the default slog logger.
func NewWatermillBridge() *WatermillBridge {
	return NewWatermillBridgeWithLogger(slog.Default())
}

// NewWatermillBridgeWithLogger builds the bus and routes watermill's own
// diagnostics through logger.
func NewWatermillBridgeWithLogger(logger *slog.Logger) *WatermillBridge {
	logger = logger.With("component", "bus")
	return &WatermillBridge{
		channel: gochannel.NewGoChannel(
			gochannel.Config{OutputChannelBuffer: busBuffer},
			watermill.NewSlogLogger(logger),
		),
		log: logger,
	}
}

// Publish sends msg on msg.Topic. A canceled context stops the send.
func (b *WatermillBridge) Publish(ctx context.Context, msg Message) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return b.channel.Publish(msg.Topic, toWire(msg))
}

// Subscribe starts a consumer for topic that runs until ctx is canceled or
// the bridge is closed.
func (b *WatermillBridge) Subscribe(ctx context.Context, topic string, handler Handler) error {
	deliveries, err := b.channel.Subscribe(ctx, topic)
	if err != nil {
		return err
	}
	go b.consume(ctx, topic, deliveries, handler)
	return nil
}

// consume acks every delivery. gochannel redelivers a nacked message
// immediately and forever, so a failing handler is logged instead.
func (b *WatermillBridge) consume(ctx context.Context, topic string, deliveries <-chan *message.Message, handler Handler) {
	for delivery := range deliveries {
		if err := handler(ctx, fromWire(delivery)); err != nil {
			b.log.Error("Bus handler failed", "topic", topic, "msg_id", delivery.UUID, "error", err)
		}
		delivery.Ack()
	}
	b.log.Debug("Bus subscription stopped", "topic", topic)
}

// Close stops every subscription.
func (b *WatermillBridge) Close() error {
	return b.channel.Close()
}

func toWire(msg Message) *message.Message {
	wire := message.NewMessage(watermill.NewUUID(), msg.Payload)
	for k, v := range msg.Metadata {
		wire.Metadata.Set(k, v)
	}
	// Struct fields win over same-named metadata entries.
	wire.Metadata.Set(headerTopic, msg.Topic)
	wire.Metadata.Set(headerUserID, msg.UserID)
	return wire
}

// fromWire lifts the headers back into fields. user_id is also left in
// Metadata when set, so handlers that only read metadata still see it.
func fromWire(wire *message.Message) Message {
	msg := Message{
		Topic:    wire.Metadata.Get(headerTopic),
		UserID:   wire.Metadata.Get(headerUserID),
		Payload:  wire.Payload,
		Metadata: make(map[string]string, len(wire.Metadata)),
	}
	for k, v := range wire.Metadata {
		if k == headerTopic || k == headerUserID {
			continue
		}
		msg.Metadata[k] = v
	}
	if msg.UserID != "" {
		msg.Metadata[headerUserID] = msg.UserID
	}
	return msg
}

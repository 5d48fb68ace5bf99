// Package activity records session and exam notifications from the message bus.
package activity

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/nfrund/cbt/internal/events"
	"github.com/nfrund/cbt/internal/pubsub"
)

// Entry is one recorded notification.
type Entry struct {
	Topic    string
	Username string
	Role     string
}

// Subscriber listens for logouts and confirmed exam starts and logs them.
// The most recent entries are kept in memory for inspection.
type Subscriber struct {
	sub    pubsub.Subscriber
	logger *slog.Logger
	limit  int

	mu      sync.Mutex
	recent  []Entry
	cancel  context.CancelFunc
	started bool
}

// NewSubscriber creates a Subscriber that keeps at most limit recent entries.
func NewSubscriber(sub pubsub.Subscriber, limit int) *Subscriber {
	if limit <= 0 {
		limit = 100
	}
	return &Subscriber{
		sub:    sub,
		logger: slog.Default().With("component", "activity"),
		limit:  limit,
	}
}

// Start subscribes to both topics. Handling stops when ctx is cancelled or Stop is called.
func (s *Subscriber) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.started {
		return nil
	}

	ctx, cancel := context.WithCancel(ctx)
	if err := s.sub.Subscribe(ctx, events.SessionClearedEvent.Topic(), s.handleSessionCleared); err != nil {
		cancel()
		return fmt.Errorf("subscribe %s: %w", events.SessionClearedEvent.Topic(), err)
	}
	if err := s.sub.Subscribe(ctx, events.ExamStartConfirmedEvent.Topic(), s.handleExamStart); err != nil {
		cancel()
		return fmt.Errorf("subscribe %s: %w", events.ExamStartConfirmedEvent.Topic(), err)
	}

	s.cancel = cancel
	s.started = true
	s.logger.Info("Activity subscriber started")
	return nil
}

// Stop ends the subscriptions.
func (s *Subscriber) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
	s.started = false
}

// Recent returns a copy of the recorded entries, oldest first.
func (s *Subscriber) Recent() []Entry {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Entry(nil), s.recent...)
}

func (s *Subscriber) handleSessionCleared(ctx context.Context, msg pubsub.Message) error {
	payload, err := events.SessionClearedEvent.Decode(msg)
	if err != nil {
		return err
	}
	s.logger.InfoContext(ctx, "Session cleared",
		"username", payload.Username,
		"role", payload.Role,
		"was_authenticated", payload.WasAuthenticated,
		"at", payload.At,
	)
	s.record(Entry{Topic: msg.Topic, Username: payload.Username, Role: payload.Role})
	return nil
}

func (s *Subscriber) handleExamStart(ctx context.Context, msg pubsub.Message) error {
	payload, err := events.ExamStartConfirmedEvent.Decode(msg)
	if err != nil {
		return err
	}
	s.logger.InfoContext(ctx, "Exam start confirmed",
		"username", payload.Username,
		"role", payload.Role,
		"at", payload.At,
	)
	s.record(Entry{Topic: msg.Topic, Username: payload.Username, Role: payload.Role})
	return nil
}

func (s *Subscriber) record(e Entry) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.recent = append(s.recent, e)
	if over := len(s.recent) - s.limit; over > 0 {
		s.recent = s.recent[over:]
	}
}

package activity

import (
	"context"
	"testing"
	"time"

	"github.com/nfrund/cbt/internal/events"
	"github.com/nfrund/cbt/internal/pubsub"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubscriberRecordsEvents(t *testing.T) {
	bus := pubsub.NewWatermillBridge()
	defer bus.Close()

	sub := NewSubscriber(bus, 10)
	require.NoError(t, sub.Start(context.Background()))
	defer sub.Stop()

	ctx := context.Background()
	require.NoError(t, events.SessionClearedEvent.Publish(ctx, bus, "budi", events.SessionCleared{
		Username: "budi", Role: "siswa", WasAuthenticated: true, At: time.Now(),
	}))
	require.NoError(t, events.ExamStartConfirmedEvent.Publish(ctx, bus, "sari", events.ExamStartConfirmed{
		Username: "sari", At: time.Now(),
	}))

	require.Eventually(t, func() bool { return len(sub.Recent()) == 2 }, 2*time.Second, 10*time.Millisecond)
	assert.ElementsMatch(t, []Entry{
		{Topic: "session.cleared", Username: "budi", Role: "siswa"},
		{Topic: "exam.start.confirmed", Username: "sari"},
	}, sub.Recent())
}

func TestSubscriberKeepsLimit(t *testing.T) {
	sub := NewSubscriber(nil, 2)
	sub.record(Entry{Username: "a"})
	sub.record(Entry{Username: "b"})
	sub.record(Entry{Username: "c"})

	got := sub.Recent()
	require.Len(t, got, 2)
	assert.Equal(t, "b", got[0].Username)
	assert.Equal(t, "c", got[1].Username)
}

func TestStartIsIdempotent(t *testing.T) {
	bus := pubsub.NewWatermillBridge()
	defer bus.Close()

	sub := NewSubscriber(bus, 0)
	require.NoError(t, sub.Start(context.Background()))
	require.NoError(t, sub.Start(context.Background()))
	sub.Stop()
	sub.Stop()
}

// Package exam implements the confirmation step shown before a user enters
// the exam flow.
//
// The gate is advisory. The dialog warns that the exam can be taken once,
// but enforcing that belongs to the exam backend behind the exam-entry screen.
package exam

import (
	"context"
	"log/slog"
	"time"

	"github.com/nfrund/cbt/internal/events"
	"github.com/nfrund/cbt/internal/nav"
	"github.com/nfrund/cbt/internal/pubsub"
	"github.com/nfrund/cbt/internal/session"
)

// Outcome is the user's answer to the dialog.
type Outcome int

const (
	Cancelled Outcome = iota
	Confirmed
)

// ConfirmValue is the form value that confirms the dialog.
const ConfirmValue = "confirm"

// CancelValue is the form value sent by the cancel button.
const CancelValue = "cancel"

// ParseOutcome maps a submitted decision to an Outcome. Only ConfirmValue
// confirms; a dismissal (empty value) or anything else cancels.
func ParseOutcome(raw string) Outcome {
	if raw == ConfirmValue {
		return Confirmed
	}
	return Cancelled
}

func (o Outcome) String() string {
	if o == Confirmed {
		return "confirmed"
	}
	return "cancelled"
}

// Dialog is the copy shown in the confirmation modal.
type Dialog struct {
	Title        string
	Lines        []string
	Emphasis     string
	ConfirmLabel string
	CancelLabel  string
}

// DefaultDialog returns the exam preparation notice.
func DefaultDialog() Dialog {
	return Dialog{
		Title: "Persiapan Ujian",
		Lines: []string{
			"Ujian hanya dapat dikerjakan 1 kali.",
			"Nilai pertama akan disimpan.",
		},
		Emphasis:     "Fokuslah saat mengerjakannya!",
		ConfirmLabel: "Mulai Ujian",
		CancelLabel:  "Batal",
	}
}

// Decision tells the caller whether to navigate and where.
type Decision struct {
	Navigate bool
	Target   nav.Route
}

// Gate resolves dialog outcomes.
type Gate struct {
	publisher pubsub.Publisher
	dialog    Dialog
	now       func() time.Time
}

// NewGate creates a Gate. The publisher may be nil.
func NewGate(publisher pubsub.Publisher) *Gate {
	return &Gate{publisher: publisher, dialog: DefaultDialog(), now: time.Now}
}

// Prompt returns the dialog to present when the user asks to start the exam.
func (g *Gate) Prompt() Dialog {
	d := g.dialog
	d.Lines = append([]string(nil), g.dialog.Lines...)
	return d
}

// Resolve applies the user's answer. Confirming navigates to the exam entry
// screen; cancelling changes nothing.
func (g *Gate) Resolve(ctx context.Context, outcome Outcome, s session.Session) Decision {
	if outcome != Confirmed {
		return Decision{}
	}
	g.announce(ctx, s)
	return Decision{Navigate: true, Target: nav.ExamEntry}
}

func (g *Gate) announce(ctx context.Context, s session.Session) {
	if g.publisher == nil {
		return
	}
	payload := events.ExamStartConfirmed{At: g.now().UTC()}
	userID := session.Match(s,
		func() string { return "" },
		func(a session.Authenticated) string {
			payload.Username = a.Username
			payload.Role = a.Role
			return a.Username
		},
	)
	if err := events.ExamStartConfirmedEvent.Publish(ctx, g.publisher, userID, payload); err != nil {
		slog.Warn("failed to publish exam start event", "error", err)
	}
}

package events

import (
	"time"

	"github.com/nfrund/cbt/internal/pubsub"
)

// SessionCleared is published after a logout removed the session fields.
type SessionCleared struct {
	Username         string    `json:"username,omitempty"`
	Role             string    `json:"role,omitempty"`
	WasAuthenticated bool      `json:"wasAuthenticated"`
	At               time.Time `json:"at"`
}

// ExamStartConfirmed is published when a user confirms the exam-start dialog.
type ExamStartConfirmed struct {
	Username string    `json:"username,omitempty"`
	Role     string    `json:"role,omitempty"`
	At       time.Time `json:"at"`
}

var (
	SessionClearedEvent     = pubsub.NewEvent[SessionCleared]("session.cleared")
	ExamStartConfirmedEvent = pubsub.NewEvent[ExamStartConfirmed]("exam.start.confirmed")
)

package domain

import "errors"

// Sentinel errors for the domain layer. These provide consistent, checkable
// errors for the few operations in the portal that can fail.
var (
	ErrNotFound              = errors.New("requested resource not found")
	ErrSessionUnavailable    = errors.New("session store unavailable")
	ErrInvalidSessionHandoff = errors.New("invalid session hand-off")
)

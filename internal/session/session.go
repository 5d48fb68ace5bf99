// Package session models the signed-in state of a portal visitor and the
// cookie-backed store it is read from.
package session

// DefaultDisplayName is shown when a session carries a token but no username.
const DefaultDisplayName = "Peserta"

// Session is either Anonymous or Authenticated. The set is closed: only this
// package can add variants, and Match makes callers handle both.
type Session interface {
	isSession()
}

// Anonymous is a visitor without a token.
type Anonymous struct{}

// Authenticated is a visitor holding a token. Username and Role are optional;
// the token is never verified here.
type Authenticated struct {
	Token    string
	Username string
	Role     string
}

func (Anonymous) isSession()     {}
func (Authenticated) isSession() {}

// DisplayName returns the username, or DefaultDisplayName when it is absent.
func (a Authenticated) DisplayName() string {
	if a.Username == "" {
		return DefaultDisplayName
	}
	return a.Username
}

// FromValues builds a Session from raw store fields. Token presence alone
// decides the variant.
func FromValues(token, username, role string) Session {
	if token == "" {
		return Anonymous{}
	}
	return Authenticated{Token: token, Username: username, Role: role}
}

// Match dispatches on the session variant. A nil session counts as anonymous.
func Match[T any](s Session, onAnonymous func() T, onAuthenticated func(Authenticated) T) T {
	switch v := s.(type) {
	case Authenticated:
		return onAuthenticated(v)
	case *Authenticated:
		if v != nil {
			return onAuthenticated(*v)
		}
	}
	return onAnonymous()
}

// IsAuthenticated reports whether the session holds a token.
func IsAuthenticated(s Session) bool {
	return Match(s,
		func() bool { return false },
		func(Authenticated) bool { return true },
	)
}

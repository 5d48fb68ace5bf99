package session

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gorilla/sessions"
	echosession "github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
	"github.com/nfrund/cbt/internal/domain"
	"github.com/nfrund/cbt/internal/events"
	"github.com/nfrund/cbt/internal/pubsub"
)

// Cookie session name and the exact keys the portal reads and writes.
const (
	Name        = "cbt-session"
	KeyToken    = "token"
	KeyUsername = "username"
	KeyRole     = "role"
)

// Options controls the cookie written for the session.
type Options struct {
	MaxAge int
	Secure bool
}

// NewCookieStore creates the gorilla cookie store shared by the session and
// flash middleware.
func NewCookieStore(secret string, opts Options) *sessions.CookieStore {
	store := sessions.NewCookieStore([]byte(secret))
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   opts.MaxAge,
		HttpOnly: true,
		Secure:   opts.Secure,
		SameSite: http.SameSiteLaxMode,
	}
	return store
}

// Store reads and writes the Session through the echo-contrib session
// middleware, which must run before any handler using it.
type Store struct {
	publisher pubsub.Publisher
	now       func() time.Time
}

// NewStore creates a Store. The publisher may be nil, in which case
// logouts are not announced.
func NewStore(publisher pubsub.Publisher) *Store {
	return &Store{publisher: publisher, now: time.Now}
}

// Load returns the current session. It never fails: an unreadable or missing
// cookie is an anonymous visitor.
func (s *Store) Load(c echo.Context) Session {
	sess, err := echosession.Get(Name, c)
	if err != nil {
		slog.Debug("session cookie unreadable, treating visitor as anonymous", "error", err)
		return Anonymous{}
	}
	return FromValues(stringValue(sess, KeyToken), stringValue(sess, KeyUsername), stringValue(sess, KeyRole))
}

// Establish writes an authenticated session. An unreadable cookie is
// overwritten rather than treated as a failure.
func (s *Store) Establish(c echo.Context, a Authenticated) error {
	if a.Token == "" {
		return fmt.Errorf("%w: token is required", domain.ErrInvalidSessionHandoff)
	}
	sess, err := echosession.Get(Name, c)
	if err != nil {
		if sess == nil {
			return fmt.Errorf("%w: %v", domain.ErrSessionUnavailable, err)
		}
		// A cookie signed with an old secret is replaced by the fresh session.
		slog.Debug("session cookie unreadable, overwriting it", "error", err)
	}
	sess.Values[KeyToken] = a.Token
	setOrDelete(sess, KeyUsername, a.Username)
	setOrDelete(sess, KeyRole, a.Role)
	if err := sess.Save(c.Request(), c.Response()); err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	return nil
}

// Clear removes token, username and role and returns the session as it was
// before. Clearing an empty store is a no-op that still succeeds. Subscribers
// are notified on the session-cleared topic; a failed notification is only logged.
func (s *Store) Clear(c echo.Context) (Session, error) {
	prior := s.Load(c)

	sess, err := echosession.Get(Name, c)
	if err == nil {
		delete(sess.Values, KeyToken)
		delete(sess.Values, KeyUsername)
		delete(sess.Values, KeyRole)
		err = sess.Save(c.Request(), c.Response())
	}
	if err != nil {
		// The signed cookie may be unreadable; overwrite it so the browser forgets it.
		c.SetCookie(&http.Cookie{Name: Name, Value: "", Path: "/", MaxAge: -1, HttpOnly: true})
		err = fmt.Errorf("%w: %v", domain.ErrSessionUnavailable, err)
	}

	s.notifyCleared(c.Request().Context(), prior)
	return prior, err
}

func (s *Store) notifyCleared(ctx context.Context, prior Session) {
	if s.publisher == nil {
		return
	}
	payload := events.SessionCleared{At: s.now().UTC()}
	userID := Match(prior,
		func() string { return "" },
		func(a Authenticated) string {
			payload.Username = a.Username
			payload.Role = a.Role
			payload.WasAuthenticated = true
			return a.Username
		},
	)
	if err := events.SessionClearedEvent.Publish(ctx, s.publisher, userID, payload); err != nil {
		slog.Warn("failed to publish session cleared event", "error", err)
	}
}

func stringValue(sess *sessions.Session, key string) string {
	v, _ := sess.Values[key].(string)
	return v
}

func setOrDelete(sess *sessions.Session, key, value string) {
	if value == "" {
		delete(sess.Values, key)
		return
	}
	sess.Values[key] = value
}

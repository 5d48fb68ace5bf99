package session

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	echosession "github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
	"github.com/nfrund/cbt/internal/events"
	"github.com/nfrund/cbt/internal/pubsub"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSessionSecret = "a-very-secret-key-for-testing-!"

// recordingPublisher keeps every published message in memory.
type recordingPublisher struct {
	mu   sync.Mutex
	msgs []pubsub.Message
}

func (p *recordingPublisher) Publish(ctx context.Context, msg pubsub.Message) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.msgs = append(p.msgs, msg)
	return nil
}

func (p *recordingPublisher) Close() error { return nil }

func (p *recordingPublisher) messages() []pubsub.Message {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]pubsub.Message(nil), p.msgs...)
}

// serve runs fn inside the session middleware for a request carrying cookies.
func serve(t *testing.T, cookies []*http.Cookie, fn func(c echo.Context)) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	for _, ck := range cookies {
		req.AddCookie(ck)
	}
	rec := httptest.NewRecorder()

	mw := echosession.Middleware(NewCookieStore(testSessionSecret, Options{MaxAge: 3600}))
	err := mw(func(c echo.Context) error {
		fn(c)
		return nil
	})(e.NewContext(req, rec))
	require.NoError(t, err)
	return rec
}

func establish(t *testing.T, store *Store, a Authenticated) []*http.Cookie {
	t.Helper()
	rec := serve(t, nil, func(c echo.Context) {
		require.NoError(t, store.Establish(c, a))
	})
	return rec.Result().Cookies()
}

func TestStore_LoadWithoutCookieIsAnonymous(t *testing.T) {
	store := NewStore(nil)
	serve(t, nil, func(c echo.Context) {
		assert.Equal(t, Anonymous{}, store.Load(c))
	})
}

func TestStore_LoadWithoutMiddlewareIsAnonymous(t *testing.T) {
	store := NewStore(nil)
	e := echo.New()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())
	assert.Equal(t, Anonymous{}, store.Load(c))
}

func TestStore_EstablishThenLoad(t *testing.T) {
	store := NewStore(nil)
	cookies := establish(t, store, Authenticated{Token: "abc", Username: "budi", Role: "student"})
	require.NotEmpty(t, cookies)

	serve(t, cookies, func(c echo.Context) {
		assert.Equal(t, Authenticated{Token: "abc", Username: "budi", Role: "student"}, store.Load(c))
	})
}

func TestStore_EstablishRequiresToken(t *testing.T) {
	store := NewStore(nil)
	serve(t, nil, func(c echo.Context) {
		err := store.Establish(c, Authenticated{Username: "budi"})
		assert.Error(t, err)
	})
}

func TestStore_EstablishOverwritesUnreadableCookie(t *testing.T) {
	store := NewStore(nil)
	garbage := []*http.Cookie{{Name: Name, Value: "signed-with-an-old-secret"}}

	rec := serve(t, garbage, func(c echo.Context) {
		require.NoError(t, store.Establish(c, Authenticated{Token: "abc", Username: "budi"}))
	})

	var replaced []*http.Cookie
	for _, ck := range rec.Result().Cookies() {
		if ck.Name == Name {
			replaced = append(replaced, ck)
		}
	}
	require.Len(t, replaced, 1)
	assert.NotEqual(t, "signed-with-an-old-secret", replaced[0].Value)

	serve(t, replaced, func(c echo.Context) {
		assert.Equal(t, Authenticated{Token: "abc", Username: "budi"}, store.Load(c))
	})
}

func TestStore_TokenWithoutUsernameIsAuthenticated(t *testing.T) {
	store := NewStore(nil)
	cookies := establish(t, store, Authenticated{Token: "abc"})

	serve(t, cookies, func(c echo.Context) {
		s := store.Load(c)
		assert.True(t, IsAuthenticated(s))
		assert.Equal(t, DefaultDisplayName, s.(Authenticated).DisplayName())
	})
}

func TestStore_Clear(t *testing.T) {
	t.Run("removes every field and reports the prior session", func(t *testing.T) {
		pub := &recordingPublisher{}
		store := NewStore(pub)
		cookies := establish(t, store, Authenticated{Token: "abc", Username: "budi", Role: "student"})

		var prior Session
		rec := serve(t, cookies, func(c echo.Context) {
			var err error
			prior, err = store.Clear(c)
			require.NoError(t, err)
			assert.Equal(t, Anonymous{}, store.Load(c), "same request sees the cleared store")
		})
		assert.Equal(t, Authenticated{Token: "abc", Username: "budi", Role: "student"}, prior)

		serve(t, rec.Result().Cookies(), func(c echo.Context) {
			assert.Equal(t, Anonymous{}, store.Load(c))
			sess, err := echosession.Get(Name, c)
			require.NoError(t, err)
			assert.NotContains(t, sess.Values, KeyToken)
			assert.NotContains(t, sess.Values, KeyUsername)
			assert.NotContains(t, sess.Values, KeyRole)
		})

		msgs := pub.messages()
		require.Len(t, msgs, 1)
		assert.Equal(t, events.SessionClearedEvent.Topic(), msgs[0].Topic)
		assert.Equal(t, "budi", msgs[0].UserID)
		payload, err := events.SessionClearedEvent.Decode(msgs[0])
		require.NoError(t, err)
		assert.True(t, payload.WasAuthenticated)
		assert.Equal(t, "student", payload.Role)
	})

	t.Run("is idempotent", func(t *testing.T) {
		store := NewStore(&recordingPublisher{})
		cookies := establish(t, store, Authenticated{Token: "abc", Username: "budi", Role: "student"})

		once := serve(t, cookies, func(c echo.Context) {
			_, err := store.Clear(c)
			require.NoError(t, err)
		})
		twice := serve(t, once.Result().Cookies(), func(c echo.Context) {
			prior, err := store.Clear(c)
			require.NoError(t, err)
			assert.Equal(t, Anonymous{}, prior)
		})

		serve(t, twice.Result().Cookies(), func(c echo.Context) {
			assert.Equal(t, Anonymous{}, store.Load(c))
		})
	})

	t.Run("succeeds on an empty store", func(t *testing.T) {
		pub := &recordingPublisher{}
		store := NewStore(pub)
		serve(t, nil, func(c echo.Context) {
			prior, err := store.Clear(c)
			require.NoError(t, err)
			assert.Equal(t, Anonymous{}, prior)
		})

		msgs := pub.messages()
		require.Len(t, msgs, 1)
		payload, err := events.SessionClearedEvent.Decode(msgs[0])
		require.NoError(t, err)
		assert.False(t, payload.WasAuthenticated)
	})

	t.Run("expires an unreadable cookie", func(t *testing.T) {
		store := NewStore(nil)
		garbage := []*http.Cookie{{Name: Name, Value: "not-a-signed-value"}}

		rec := serve(t, garbage, func(c echo.Context) {
			prior, _ := store.Clear(c)
			assert.Equal(t, Anonymous{}, prior)
		})

		var expired bool
		for _, ck := range rec.Result().Cookies() {
			if ck.Name == Name && ck.MaxAge < 0 {
				expired = true
			}
		}
		assert.True(t, expired, "the unreadable cookie should be expired")
	})
}

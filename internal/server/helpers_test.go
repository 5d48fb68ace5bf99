package server

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/nfrund/cbt/internal/config"
	"github.com/nfrund/cbt/internal/testutils"
	"github.com/stretchr/testify/require"
)

func testConfig(t *testing.T) *config.Config {
	return testutils.ConfigForTests(t)
}

func newTestServer(t *testing.T, cfg *config.Config) *Server {
	t.Helper()

	s, err := New(cfg, WithStaticFs(testutils.StaticFs(t)))
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close(context.Background()) })
	return s
}

// client replays cookies between requests like a browser would.
type client struct {
	t       *testing.T
	s       *Server
	cookies map[string]*http.Cookie
	header  http.Header
}

func newClient(t *testing.T, s *Server) *client {
	return &client{t: t, s: s, cookies: map[string]*http.Cookie{}, header: http.Header{}}
}

func (c *client) do(req *http.Request) *httptest.ResponseRecorder {
	c.t.Helper()
	for k, vs := range c.header {
		for _, v := range vs {
			req.Header.Add(k, v)
		}
	}
	for _, ck := range c.cookies {
		req.AddCookie(ck)
	}
	rec := httptest.NewRecorder()
	c.s.E.ServeHTTP(rec, req)
	for _, ck := range rec.Result().Cookies() {
		if ck.MaxAge < 0 {
			delete(c.cookies, ck.Name)
			continue
		}
		c.cookies[ck.Name] = ck
	}
	return rec
}

func (c *client) get(path string) *httptest.ResponseRecorder {
	return c.do(httptest.NewRequest(http.MethodGet, path, nil))
}

func (c *client) post(path string, form url.Values, htmx bool) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	if htmx {
		req.Header.Set("HX-Request", "true")
	}
	return c.do(req)
}

func (c *client) login(username, role string) {
	c.t.Helper()
	rec := c.post("/session", url.Values{"token": {"abc"}, "username": {username}, "role": {role}}, false)
	require.Equal(c.t, http.StatusSeeOther, rec.Code)
	require.Equal(c.t, "/dashboard", rec.Header().Get("Location"))
}

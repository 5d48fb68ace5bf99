package cmd

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	defer rootCmd.SetArgs(nil)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestVersion(t *testing.T) {
	out, err := run(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "cbt-cli v"+version+"\n", out)
}

func TestRoutes(t *testing.T) {
	out, err := run(t, "routes")
	require.NoError(t, err)

	for _, target := range []string{"/login", "/register", "/dashboard", "/profile", "/access-token", "/result"} {
		assert.Contains(t, out, target)
	}

	anon, authed, found := strings.Cut(out, "AUTHENTICATED")
	require.True(t, found)
	assert.Contains(t, anon, "Register")
	assert.NotContains(t, anon, "Logout")
	assert.Contains(t, authed, "Logout")
	assert.Contains(t, authed, "/logout")
	assert.NotContains(t, authed, "Register")
}

func TestConfigCheck(t *testing.T) {
	t.Setenv("SESSION_SECRET", "0123456789abcdef-test")
	t.Setenv("NAV_BREAKPOINT_PX", "")
	t.Setenv("SESSION_MAX_AGE", "")
	t.Setenv("EXTERNAL_BASE_URL", "")

	out, err := run(t, "config", "check")
	require.NoError(t, err)
	assert.Contains(t, out, "configuration OK")
	assert.Contains(t, out, "(placeholders)")

	t.Setenv("SESSION_SECRET", "short")
	_, err = run(t, "config", "check")
	assert.Error(t, err)
}

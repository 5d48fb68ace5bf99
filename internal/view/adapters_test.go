package view

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

func TestComponent(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Component(h.Em(g.Text("a < b"))).Render(context.Background(), &buf))
	assert.Equal(t, "<em>a &lt; b</em>", buf.String())
}

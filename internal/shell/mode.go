package shell

import (
	"net/http"
	"strconv"
	"strings"
)

// Mode is how the navigation actions are laid out.
type Mode int

const (
	// Adaptive renders both layouts and lets CSS pick; used when the width is unknown.
	Adaptive Mode = iota
	// Wide renders the actions inline.
	Wide
	// Narrow renders a toggle and the slide-in panel.
	Narrow
)

// Client hint headers carrying the layout viewport width in CSS pixels.
const (
	HeaderViewportWidth       = "Sec-CH-Viewport-Width"
	HeaderLegacyViewportWidth = "Viewport-Width"
)

// ModeFor picks the layout for a viewport width. A width of zero or less means unknown.
func ModeFor(widthPx, breakpointPx int) Mode {
	switch {
	case widthPx <= 0:
		return Adaptive
	case widthPx < breakpointPx:
		return Narrow
	default:
		return Wide
	}
}

// ViewportWidth reads the viewport width client hint, returning 0 when absent or malformed.
func ViewportWidth(h http.Header) int {
	for _, key := range []string{HeaderViewportWidth, HeaderLegacyViewportWidth} {
		raw := strings.TrimSpace(h.Get(key))
		if raw == "" {
			continue
		}
		// Some agents send fractional values.
		if f, err := strconv.ParseFloat(raw, 64); err == nil && f > 0 {
			return int(f)
		}
	}
	return 0
}

// ShowsInline reports whether the inline menu is rendered in this mode.
func (m Mode) ShowsInline() bool { return m != Narrow }

// ShowsToggle reports whether the toggle and panel are rendered in this mode.
func (m Mode) ShowsToggle() bool { return m != Wide }

func (m Mode) String() string {
	switch m {
	case Wide:
		return "wide"
	case Narrow:
		return "narrow"
	default:
		return "adaptive"
	}
}

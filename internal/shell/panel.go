// Package shell holds the presentation state of the navigation header: which
// layout to use for a viewport and whether the slide-in panel is open.
package shell

// State is the open/closed flag of the narrow-viewport panel.
type State string

const (
	Closed State = "closed"
	Open   State = "open"
)

// Initial is the state of a freshly rendered shell.
const Initial = Closed

// Event is a user interaction that can move the panel.
type Event string

const (
	// Toggle flips the panel.
	Toggle Event = "toggle"
	// Select is fired when any navigation action is chosen.
	Select Event = "select"
	// Dismiss is an external close request such as a backdrop click.
	Dismiss Event = "dismiss"
)

// Next returns the panel state after ev.
func Next(s State, ev Event) State {
	switch ev {
	case Toggle:
		if s == Open {
			return Closed
		}
		return Open
	default:
		return Closed
	}
}

// Apply replays events from the initial state.
func Apply(events ...Event) State {
	s := Initial
	for _, ev := range events {
		s = Next(s, ev)
	}
	return s
}

// ParseState reads a state from request input; anything unrecognised is Closed.
func ParseState(raw string) State {
	if State(raw) == Open {
		return Open
	}
	return Closed
}

// ParseEvent reads an event from request input; anything unrecognised is Dismiss.
func ParseEvent(raw string) Event {
	switch Event(raw) {
	case Toggle:
		return Toggle
	case Select:
		return Select
	default:
		return Dismiss
	}
}

// IsOpen reports whether the panel is showing.
func (s State) IsOpen() bool { return s == Open }

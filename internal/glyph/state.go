package glyph

// Half identifies which side of the button a glyph occupies.
type Half uint8

const (
	Left Half = iota
	Right
)

// String returns the name of the half.
func (h Half) String() string {
	switch h {
	case Right:
		return "right"
	default:
		return "left"
	}
}

// State is the shape a single glyph is showing. A half only ever visits
// its own paused shape and Playing; the button-level meaning comes from
// both halves together.
type State uint8

const (
	PausedLeft State = iota
	PausedRight
	Playing
)

// String returns the name of the state.
func (s State) String() string {
	switch s {
	case PausedLeft:
		return "paused-left"
	case PausedRight:
		return "paused-right"
	case Playing:
		return "playing"
	default:
		return "unknown"
	}
}

// InitialState returns the paused shape a glyph on half h starts in.
func InitialState(h Half) State {
	if h == Right {
		return PausedRight
	}
	return PausedLeft
}

// transitions is the toggle table, indexed by half and then by current state.
var transitions = [2][3]State{
	Left: {
		PausedLeft:  Playing,
		PausedRight: Playing,
		Playing:     PausedLeft,
	},
	Right: {
		PausedLeft:  Playing,
		PausedRight: Playing,
		Playing:     PausedRight,
	},
}

// Next returns the state a glyph on half h moves to when toggled from s.
func (s State) Next(h Half) State {
	if int(h) >= len(transitions) || int(s) >= len(transitions[h]) {
		return InitialState(h)
	}
	return transitions[h][s]
}

// Reachable reports whether a glyph on half h can ever be in state s.
func (s State) Reachable(h Half) bool {
	return s == Playing || s == InitialState(h)
}

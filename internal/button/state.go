package button

// State is the button-level mode.
type State int

const (
	Paused State = iota
	Playing
)

// Toggle switches between paused and playing.
func (s State) Toggle() State {
	if s == Playing {
		return Paused
	}
	return Playing
}

// String returns the name of the state.
func (s State) String() string {
	if s == Playing {
		return "playing"
	}
	return "paused"
}

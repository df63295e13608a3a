package state

// SimState represents the current state of the simulation
type SimState int

const (
	StateLoading SimState = iota
	StateRunning
	StatePaused
)

// String returns the string representation of the simulation state
func (s SimState) String() string {
	switch s {
	case StateLoading:
		return "Loading"
	case StateRunning:
		return "Running"
	case StatePaused:
		return "Paused"
	default:
		return "Unknown"
	}
}

// TogglePause switches between running and paused; other states are kept
func (s SimState) TogglePause() SimState {
	switch s {
	case StateRunning:
		return StatePaused
	case StatePaused:
		return StateRunning
	default:
		return s
	}
}

// Ticking reports whether the simulation advances in this state
func (s SimState) Ticking() bool {
	return s == StateRunning
}

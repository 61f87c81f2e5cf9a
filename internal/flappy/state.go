package flappy

// State is the phase of the game flow. Exactly one is active per frame and it
// decides which subsystems run.
type State int

const (
	StateMenuSelection State = iota // Waiting for the customization menu
	StateStartMessage               // "Press to start" until the start trigger
	StateRunning                    // Physics, spawning, collisions, scoring
	StateExtraLife                  // One-frame reload after a life is consumed
	StateGameOver                   // One-frame teardown after a fatal hit
	StateRestarting                 // Game-over overlay until the menu returns
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StateMenuSelection:
		return "MenuSelection"
	case StateStartMessage:
		return "StartMessage"
	case StateRunning:
		return "Running"
	case StateExtraLife:
		return "ExtraLife"
	case StateGameOver:
		return "GameOver"
	case StateRestarting:
		return "Restarting"
	default:
		return "Unknown"
	}
}

// transitions lists the allowed successor states of each state.
var transitions = map[State][]State{
	StateMenuSelection: {StateStartMessage},
	StateStartMessage:  {StateRunning},
	StateRunning:       {StateExtraLife, StateGameOver},
	StateExtraLife:     {StateRunning},
	StateGameOver:      {StateRestarting},
	StateRestarting:    {StateMenuSelection},
}

// CanTransition reports whether the game flow allows moving from one state to another.
func CanTransition(from, to State) bool {
	for _, next := range transitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

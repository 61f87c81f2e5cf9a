package core

// Action represents a semantic input trigger, abstracted from physical key presses.
// Frontends map keys, mouse clicks, and SSH input onto the same actions.
type Action int

const (
	ActionNone   Action = iota
	ActionJump          // Space - impulse the bird upward
	ActionStart         // Enter, mouse click - start a level from the start message
	ActionUp            // W, Up arrow - menu cursor up
	ActionDown          // S, Down arrow - menu cursor down
	ActionLeft          // A, Left arrow - menu cursor left
	ActionRight         // D, Right arrow - menu cursor right
	ActionSelect        // Space, Enter - toggle the menu item under the cursor
	ActionQuit          // Q, Ctrl+C - exit
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionJump:
		return "Jump"
	case ActionStart:
		return "Start"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionSelect:
		return "Select"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputFrame holds the edge-triggered actions collected between two frames.
type InputFrame struct {
	// Actions maps action types to whether they were triggered this frame.
	Actions map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
}

package core

// Action is a semantic input, decoupled from the physical key that
// produced it.
type Action int

const (
	ActionNone        Action = iota
	ActionMoveLeft           // A, Left arrow
	ActionMoveRight          // D, Right arrow
	ActionRotateLeft         // Z
	ActionRotateRight        // X, W, Up arrow
	ActionSoftDrop           // S, Down arrow
	ActionHardDrop           // Space
	ActionUp                 // menu navigation
	ActionDown               // menu navigation
	ActionConfirm            // Enter
	ActionBack               // B, Escape
	ActionRestart            // R
	ActionQuit               // Q, Ctrl+C
	ActionPause              // P
)

var actionNames = [...]string{
	ActionNone:        "None",
	ActionMoveLeft:    "MoveLeft",
	ActionMoveRight:   "MoveRight",
	ActionRotateLeft:  "RotateLeft",
	ActionRotateRight: "RotateRight",
	ActionSoftDrop:    "SoftDrop",
	ActionHardDrop:    "HardDrop",
	ActionUp:          "Up",
	ActionDown:        "Down",
	ActionConfirm:     "Confirm",
	ActionBack:        "Back",
	ActionRestart:     "Restart",
	ActionQuit:        "Quit",
	ActionPause:       "Pause",
}

// String returns a human-readable name for the action.
func (a Action) String() string {
	if a < 0 || int(a) >= len(actionNames) {
		return "Unknown"
	}
	return actionNames[a]
}

// InputFrame holds the actions triggered during one simulation tick.
type InputFrame struct {
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

// Empty reports whether no action was triggered.
func (f InputFrame) Empty() bool {
	for _, v := range f.Actions {
		if v {
			return false
		}
	}
	return true
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	clear(f.Actions)
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	c := NewInputFrame()
	for k, v := range f.Actions {
		c.Actions[k] = v
	}
	return c
}

package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows games to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone    Action = iota
	ActionUp             // Up arrow, k - move cursor up
	ActionDown           // Down arrow, j - move cursor down
	ActionLeft           // Left arrow, h - move cursor left
	ActionRight          // Right arrow, l - move cursor right
	ActionConfirm        // Space, Enter - flood at cursor
	ActionUndo           // U, Ctrl+Z - undo last move
	ActionRestart        // R - restart the same puzzle
	ActionQuit           // Q, Ctrl+C - exit
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionConfirm:
		return "Confirm"
	case ActionUndo:
		return "Undo"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputFrame carries everything the player did in a single input event.
// Besides discrete actions it can hold a pointer press in screen cells
// and a palette slot selection (1-based).
type InputFrame struct {
	Actions map[Action]bool

	click    Point
	hasClick bool
	slot     int
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

// SetClick records a pointer press at screen position (x, y).
func (f *InputFrame) SetClick(x, y int) {
	f.click = Point{X: x, Y: y}
	f.hasClick = true
}

// Click returns the pointer press of this frame, if any.
func (f InputFrame) Click() (Point, bool) {
	return f.click, f.hasClick
}

// SelectSlot records a palette selection. Slots start at 1; values below 1 are ignored.
func (f *InputFrame) SelectSlot(slot int) {
	if slot < 1 {
		return
	}
	f.slot = slot
}

// Slot returns the selected palette slot, if any.
func (f InputFrame) Slot() (int, bool) {
	return f.slot, f.slot > 0
}

// Empty reports whether nothing was triggered.
func (f InputFrame) Empty() bool {
	if f.hasClick || f.slot > 0 {
		return false
	}
	for _, v := range f.Actions {
		if v {
			return false
		}
	}
	return true
}

// Clear resets all input for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
	f.hasClick = false
	f.click = Point{}
	f.slot = 0
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	clone.click = f.click
	clone.hasClick = f.hasClick
	clone.slot = f.slot
	return clone
}

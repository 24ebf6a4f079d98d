package core

// Action represents a semantic game action, abstracted from physical key presses.
type Action int

const (
	ActionNone    Action = iota
	ActionLeft           // Left arrow, A, H
	ActionRight          // Right arrow, D, L
	ActionUp             // Up arrow, W, K - also jumps
	ActionDown           // Down arrow, S, J - drop faster
	ActionJump           // Space - primary action
	ActionConfirm        // Enter - confirm selection in menu
	ActionBack           // B, Escape - go back to menu
	ActionRestart        // R - abandon the run and start over
	ActionQuit           // Q, Ctrl+C - exit game/session
	ActionPause          // P - pause/unpause game
	ActionDebug          // F3 - toggle debug overlay
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionJump:
		return "Jump"
	case ActionConfirm:
		return "Confirm"
	case ActionBack:
		return "Back"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	case ActionPause:
		return "Pause"
	case ActionDebug:
		return "Debug"
	default:
		return "Unknown"
	}
}

// InputFrame is the normalized input consumed by exactly one simulation tick.
// Tap coordinates are in screen cells; games map them into world units.
type InputFrame struct {
	Actions     map[Action]bool
	TapValid    bool
	TapX, TapY  float64
	RequestJump bool
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
	return f.Actions[a]
}

// Clear resets the frame for reuse.
func (f *InputFrame) Clear() {
	clear(f.Actions)
	f.TapValid = false
	f.TapX, f.TapY = 0, 0
	f.RequestJump = false
}

// InputController collects raw host events between ticks and hands them to
// the simulation through Snapshot, which reads and clears in one call.
//
// Terminals never report key releases, so a key press counts as held until
// the next read. A pointer stays valid for as long as it is down; a press
// and release that both land between two reads still yields one valid tap.
// Dragging the pointer upward by SwipeRows or more requests a jump.
//
// The controller is not safe for concurrent use; the host feeds it from the
// same goroutine that runs the ticks.
type InputController struct {
	SwipeRows float64

	held        map[Action]bool
	pointerDown bool
	tapPending  bool
	tapX, tapY  float64
	swipeStartY float64
	requestJump bool
}

// NewInputController creates a controller with the given swipe threshold.
func NewInputController(swipeRows float64) *InputController {
	return &InputController{
		SwipeRows: swipeRows,
		held:      make(map[Action]bool),
	}
}

// Press records a key press.
func (c *InputController) Press(a Action) {
	if a == ActionNone {
		return
	}
	c.held[a] = true
}

// PointerDown records the start of a tap at (x, y).
func (c *InputController) PointerDown(x, y float64) {
	c.pointerDown = true
	c.tapPending = true
	c.tapX, c.tapY = x, y
	c.swipeStartY = y
}

// PointerMove updates the tap location while the pointer is down.
func (c *InputController) PointerMove(x, y float64) {
	if !c.pointerDown {
		return
	}
	c.tapX, c.tapY = x, y
	if c.SwipeRows > 0 && c.swipeStartY-y >= c.SwipeRows {
		c.requestJump = true
		c.swipeStartY = y
	}
}

// PointerUp ends the current tap.
func (c *InputController) PointerUp(x, y float64) {
	if c.pointerDown {
		c.tapX, c.tapY = x, y
	}
	c.pointerDown = false
}

// Snapshot returns the input gathered since the last call and clears
// everything except a pointer that is still held down.
func (c *InputController) Snapshot() InputFrame {
	f := NewInputFrame()
	for a := range c.held {
		f.Set(a)
	}
	f.TapValid = c.pointerDown || c.tapPending
	if f.TapValid {
		f.TapX, f.TapY = c.tapX, c.tapY
	}
	f.RequestJump = c.requestJump

	clear(c.held)
	c.tapPending = false
	c.requestJump = false
	return f
}

// Reset drops all pending and held input.
func (c *InputController) Reset() {
	clear(c.held)
	c.pointerDown = false
	c.tapPending = false
	c.requestJump = false
}

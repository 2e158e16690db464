package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows games to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone    Action = iota
	ActionUp             // Up arrow, W
	ActionDown           // Down arrow, S
	ActionLeft           // Left arrow, A
	ActionRight          // Right arrow, D
	ActionPause          // P - pause/unpause game
	ActionRestart        // R - restart game after game over
	ActionQuit           // Q, Ctrl+C - exit game/session
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "none"
	case ActionUp:
		return "up"
	case ActionDown:
		return "down"
	case ActionLeft:
		return "left"
	case ActionRight:
		return "right"
	case ActionPause:
		return "pause"
	case ActionRestart:
		return "restart"
	case ActionQuit:
		return "quit"
	default:
		return "unknown"
	}
}

// ParseAction is the inverse of Action.String. Unknown names map to ActionNone.
func ParseAction(name string) Action {
	for a := ActionNone; a <= ActionQuit; a++ {
		if a.String() == name {
			return a
		}
	}
	return ActionNone
}

// IsDirection reports whether the action is one of the four movement keys.
func (a Action) IsDirection() bool {
	return a >= ActionUp && a <= ActionRight
}

// KeySnapshot is the frozen state of the direction keys for one frame.
type KeySnapshot struct {
	Up, Down, Left, Right bool
	Last                  Action // Most recently pressed direction, or ActionNone
}

// Pressed reports whether the given direction was held in this snapshot.
func (k KeySnapshot) Pressed(a Action) bool {
	switch a {
	case ActionUp:
		return k.Up
	case ActionDown:
		return k.Down
	case ActionLeft:
		return k.Left
	case ActionRight:
		return k.Right
	default:
		return false
	}
}

// KeyState tracks held direction keys between frames. Frontends feed it with
// press and release events; games only ever see Snapshot values.
type KeyState struct {
	snap KeySnapshot
}

// NewKeyState creates a key state with nothing held.
func NewKeyState() *KeyState {
	return &KeyState{}
}

// Press marks a direction as held and makes it the most recent press.
// Non-direction actions are ignored.
func (k *KeyState) Press(a Action) {
	if !k.set(a, true) {
		return
	}
	k.snap.Last = a
}

// Release marks a direction as no longer held. The most recent press is kept.
func (k *KeyState) Release(a Action) {
	k.set(a, false)
}

// Reset releases every key and forgets the last press.
func (k *KeyState) Reset() {
	k.snap = KeySnapshot{}
}

// Snapshot returns a copy of the current key state.
func (k *KeyState) Snapshot() KeySnapshot {
	return k.snap
}

func (k *KeyState) set(a Action, held bool) bool {
	switch a {
	case ActionUp:
		k.snap.Up = held
	case ActionDown:
		k.snap.Down = held
	case ActionLeft:
		k.snap.Left = held
	case ActionRight:
		k.snap.Right = held
	default:
		return false
	}
	return true
}

// InputFrame represents the input state for a single simulation tick.
type InputFrame struct {
	// Keys is the held direction state polled for this tick.
	Keys KeySnapshot

	// Actions maps edge-triggered actions (pause, restart) to whether they
	// were triggered this frame.
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

// Clear resets all triggered actions for the next frame. Keys are kept.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	clone.Keys = f.Keys
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	return clone
}

// InputSource is polled exactly once per simulation tick.
type InputSource interface {
	Poll() InputFrame
}

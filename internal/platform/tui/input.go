package tui

import "github.com/vovakirdan/tui-maze/internal/core"

// DefaultHoldTicks covers the usual delay before a terminal starts repeating
// a held key at 60 ticks per second.
const DefaultHoldTicks = 36

// KeyboardInput turns terminal key events into polled input frames.
// Terminals report presses and auto-repeats but never releases, so a
// direction counts as released once holdTicks polls pass without a new
// press of that key.
type KeyboardInput struct {
	keys      *core.KeyState
	ttl       map[core.Action]int
	holdTicks int
	pending   core.InputFrame
}

// NewKeyboardInput creates a keyboard source. Non-positive holdTicks falls
// back to DefaultHoldTicks.
func NewKeyboardInput(holdTicks int) *KeyboardInput {
	if holdTicks <= 0 {
		holdTicks = DefaultHoldTicks
	}
	return &KeyboardInput{
		keys:      core.NewKeyState(),
		ttl:       make(map[core.Action]int),
		holdTicks: holdTicks,
		pending:   core.NewInputFrame(),
	}
}

// Press records a key event. Directions are held; other actions fire on the
// next poll only.
func (k *KeyboardInput) Press(a core.Action) {
	switch {
	case a.IsDirection():
		k.keys.Press(a)
		k.ttl[a] = k.holdTicks
	case a != core.ActionNone:
		k.pending.Set(a)
	}
}

// Poll implements core.InputSource.
func (k *KeyboardInput) Poll() core.InputFrame {
	frame := k.pending.Clone()
	frame.Keys = k.keys.Snapshot()
	k.pending.Clear()

	for a, left := range k.ttl {
		if left <= 1 {
			k.keys.Release(a)
			delete(k.ttl, a)
			continue
		}
		k.ttl[a] = left - 1
	}

	return frame
}

// Reset releases everything and drops pending actions.
func (k *KeyboardInput) Reset() {
	k.keys.Reset()
	for a := range k.ttl {
		delete(k.ttl, a)
	}
	k.pending.Clear()
}

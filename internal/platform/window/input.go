//go:build window

package window

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/vovakirdan/tui-maze/internal/core"
)

var directionKeys = []struct {
	action core.Action
	keys   []int32
}{
	{core.ActionUp, []int32{rl.KeyUp, rl.KeyW}},
	{core.ActionDown, []int32{rl.KeyDown, rl.KeyS}},
	{core.ActionLeft, []int32{rl.KeyLeft, rl.KeyA}},
	{core.ActionRight, []int32{rl.KeyRight, rl.KeyD}},
}

// keyboard reads real key down and key up events from raylib.
type keyboard struct {
	keys *core.KeyState
}

func newKeyboard() *keyboard {
	return &keyboard{keys: core.NewKeyState()}
}

// Poll implements core.InputSource. Must be called between frames on the
// window thread.
func (k *keyboard) Poll() core.InputFrame {
	for _, d := range directionKeys {
		for _, key := range d.keys {
			if rl.IsKeyPressed(key) {
				k.keys.Press(d.action)
			}
			if rl.IsKeyReleased(key) {
				k.keys.Release(d.action)
			}
		}
	}

	in := core.NewInputFrame()
	in.Keys = k.keys.Snapshot()
	if rl.IsKeyPressed(rl.KeyP) {
		in.Set(core.ActionPause)
	}
	return in
}

func (k *keyboard) Reset() {
	k.keys.Reset()
}

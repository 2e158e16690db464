//go:build window

package window

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/vovakirdan/tui-maze/internal/core"
)

var palette = map[core.Color]rl.Color{
	core.ColorDefault: rl.Black,
	core.ColorBlue:    rl.Blue,
	core.ColorYellow:  rl.Yellow,
	core.ColorRed:     rl.Red,
	core.ColorWhite:   rl.White,
	core.ColorGray:    rl.Gray,
}

func rgba(c core.Color) rl.Color {
	if col, ok := palette[c]; ok {
		return col
	}
	return rl.White
}

// canvas draws in window pixels, which are world pixels.
type canvas struct{}

var _ core.Canvas = canvas{}

func (canvas) Clear() {
	rl.ClearBackground(rl.Black)
}

func (canvas) FillRect(x, y, w, h float64, c core.Color) {
	rl.DrawRectangle(int32(x), int32(y), int32(w), int32(h), rgba(c))
}

func (canvas) FillCircle(cx, cy, r float64, c core.Color) {
	rl.DrawCircle(int32(cx), int32(cy), float32(r), rgba(c))
}

func (canvas) Text(x, y float64, size int, text string, c core.Color) {
	rl.DrawText(text, int32(x), int32(y), int32(size), rgba(c))
}

package maze

import (
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/vovakirdan/tui-maze/internal/core"
)

// Wall is a static, solid grid cell.
type Wall struct {
	Position r2.Vec // Top-left corner
	Width    float64
	Height   float64
	Color    core.Color
}

// Box returns the wall's bounding box.
func (w Wall) Box() r2.Box {
	return r2.Box{
		Min: w.Position,
		Max: r2.Add(w.Position, r2.Vec{X: w.Width, Y: w.Height}),
	}
}

// Draw fills the wall rectangle.
func (w Wall) Draw(c core.Canvas) {
	c.FillRect(w.Position.X, w.Position.Y, w.Width, w.Height, w.Color)
}

// Player is the circle steered by the arrow keys.
type Player struct {
	Position r2.Vec // Center
	Velocity r2.Vec // Applied once per frame
	Radius   float64
	Color    core.Color
}

// Next returns the position after the pending velocity is applied.
func (p Player) Next() r2.Vec {
	return r2.Add(p.Position, p.Velocity)
}

// Update applies the velocity.
func (p *Player) Update() {
	p.Position = p.Next()
}

// Draw fills the player circle.
func (p Player) Draw(c core.Canvas) {
	c.FillCircle(p.Position.X, p.Position.Y, p.Radius, p.Color)
}

// Enemy is a circle that ends the game on contact. Its velocity is never
// changed after creation.
type Enemy struct {
	Position r2.Vec
	Velocity r2.Vec
	Radius   float64
	Color    core.Color
}

// Update applies the velocity.
func (e *Enemy) Update() {
	e.Position = r2.Add(e.Position, e.Velocity)
}

// Draw fills the enemy circle.
func (e Enemy) Draw(c core.Canvas) {
	c.FillCircle(e.Position.X, e.Position.Y, e.Radius, e.Color)
}

// Fruit is a pickup worth one point.
type Fruit struct {
	Position r2.Vec
	Radius   float64
	Color    core.Color
}

// Draw fills the fruit circle.
func (f Fruit) Draw(c core.Canvas) {
	c.FillCircle(f.Position.X, f.Position.Y, f.Radius, f.Color)
}

package maze

import "gonum.org/v1/gonum/spatial/r2"

// blocksMove reports whether the player's projected position overlaps the
// wall box grown by the player's radius. Touching edges count as overlap.
func blocksMove(p Player, w Wall) bool {
	next := p.Next()
	box := w.Box()
	return next.Y-p.Radius <= box.Max.Y &&
		next.X+p.Radius >= box.Min.X &&
		next.Y+p.Radius >= box.Min.Y &&
		next.X-p.Radius <= box.Max.X
}

// circlesTouch reports whether two circles' centers are closer than the sum
// of their radii.
func circlesTouch(a r2.Vec, ra float64, b r2.Vec, rb float64) bool {
	return r2.Norm(r2.Sub(a, b)) < ra+rb
}

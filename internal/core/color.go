package core

// Color represents a foreground color for a screen cell or a canvas shape.
// Frontends map it to ANSI 256-color codes or RGB values.
type Color uint8

// Palette used by the maze and the frontends.
const (
	ColorDefault Color = iota
	ColorBlue
	ColorYellow
	ColorRed
	ColorWhite
	ColorGray
)

// String returns the color name as used in config files and logs.
func (c Color) String() string {
	switch c {
	case ColorBlue:
		return "blue"
	case ColorYellow:
		return "yellow"
	case ColorRed:
		return "red"
	case ColorWhite:
		return "white"
	case ColorGray:
		return "gray"
	default:
		return "default"
	}
}

package maze

import (
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/vovakirdan/tui-maze/internal/core"
)

// Grid symbols.
const (
	SymbolWallH = '-'
	SymbolWallV = '|'
	SymbolFruit = '.'
)

// Layout is the fixed 9x14 maze.
var Layout = []string{
	"|------------|",
	"| .... ......|",
	"|.-..-..-..-.|",
	"|............|",
	"|.-..-..-..-.|",
	"|............|",
	"|.-..-..-..-.|",
	"|............|",
	"|------------|",
}

// ParseGrid turns a layout into walls and fruits. Walls sit on cell-aligned
// coordinates, fruits on cell centers. Unknown symbols are empty floor.
func ParseGrid(layout []string, cellSize, fruitRadius float64) ([]Wall, []Fruit) {
	var walls []Wall
	var fruits []Fruit

	for row, line := range layout {
		col := 0
		for _, symbol := range line {
			x := float64(col) * cellSize
			y := float64(row) * cellSize

			switch symbol {
			case SymbolWallH, SymbolWallV:
				walls = append(walls, Wall{
					Position: r2.Vec{X: x, Y: y},
					Width:    cellSize,
					Height:   cellSize,
					Color:    core.ColorBlue,
				})
			case SymbolFruit:
				fruits = append(fruits, Fruit{
					Position: r2.Vec{X: x + cellSize/2, Y: y + cellSize/2},
					Radius:   fruitRadius,
					Color:    core.ColorWhite,
				})
			}
			col++
		}
	}

	return walls, fruits
}

// GridSize returns the number of rows and the widest row of a layout.
func GridSize(layout []string) (rows, cols int) {
	for _, line := range layout {
		n := len([]rune(line))
		if n > cols {
			cols = n
		}
	}
	return len(layout), cols
}

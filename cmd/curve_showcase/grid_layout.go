// cmd/curve_showcase/grid_layout.go
// Grid layout for one page of cells.

package main

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// GridLayout places cells on a fixed grid and tracks the selection.
type GridLayout struct {
	cells []Cell

	columns    int
	cellWidth  int
	cellHeight int
	padding    int
	top        int // room left for the info bar

	selectedIndex int
}

// NewGridLayout creates a layout for cells using the grid settings.
func NewGridLayout(config *GridConfig, cells []Cell, top int) *GridLayout {
	return &GridLayout{
		cells:         cells,
		columns:       config.Columns,
		cellWidth:     config.CellWidth,
		cellHeight:    config.CellHeight,
		padding:       config.Padding,
		top:           top,
		selectedIndex: -1,
	}
}

// Render draws every cell with its background, border and caption.
func (g *GridLayout) Render(screen *ebiten.Image) {
	for i, cell := range g.cells {
		x, y := g.getCellPosition(i)

		cellColor := color.RGBA{240, 240, 240, 255}
		if i == g.selectedIndex {
			cellColor = color.RGBA{255, 255, 200, 255}
		}

		vector.DrawFilledRect(
			screen,
			float32(x),
			float32(y),
			float32(g.cellWidth),
			float32(g.cellHeight),
			cellColor,
			false,
		)

		vector.StrokeRect(
			screen,
			float32(x),
			float32(y),
			float32(g.cellWidth),
			float32(g.cellHeight),
			2,
			color.RGBA{200, 200, 200, 255},
			false,
		)

		cell.Render(screen, x, y, float64(g.cellWidth), float64(g.cellHeight))

		captionY := y + float64(g.cellHeight) - captionHeight
		vector.DrawFilledRect(
			screen,
			float32(x),
			float32(captionY),
			float32(g.cellWidth),
			float32(captionHeight),
			color.RGBA{0, 0, 0, 160},
			false,
		)

		ebitenutil.DebugPrintAt(screen, cell.Name(), int(x)+5, int(captionY)+3)
		ebitenutil.DebugPrintAt(screen, cell.Info(), int(x)+5, int(captionY)+17)
	}
}

// getCellPosition returns the top-left corner of the cell at index.
func (g *GridLayout) getCellPosition(index int) (float64, float64) {
	row := index / g.columns
	col := index % g.columns

	x := float64(col*(g.cellWidth+g.padding) + g.padding)
	y := float64(row*(g.cellHeight+g.padding) + g.padding + g.top)

	return x, y
}

// GetCellAt returns the index of the cell under the screen point, or -1.
func (g *GridLayout) GetCellAt(screenX, screenY int) int {
	for i := range g.cells {
		x, y := g.getCellPosition(i)

		if float64(screenX) >= x && float64(screenX) <= x+float64(g.cellWidth) &&
			float64(screenY) >= y && float64(screenY) <= y+float64(g.cellHeight) {
			return i
		}
	}

	return -1
}

// MoveSelection moves the selection by delta cells, wrapping around. With
// nothing selected it starts from the first cell.
func (g *GridLayout) MoveSelection(delta int) {
	n := len(g.cells)
	if n == 0 {
		return
	}
	if g.selectedIndex < 0 {
		g.selectedIndex = 0
		return
	}
	g.selectedIndex = ((g.selectedIndex+delta)%n + n) % n
}

// SetSelectedIndex selects the cell at index if it exists.
func (g *GridLayout) SetSelectedIndex(index int) {
	if index >= 0 && index < len(g.cells) {
		g.selectedIndex = index
	}
}

// GetSelectedIndex returns the selected index, or -1.
func (g *GridLayout) GetSelectedIndex() int {
	return g.selectedIndex
}

// GetCell returns the cell at index, or nil.
func (g *GridLayout) GetCell(index int) Cell {
	if index >= 0 && index < len(g.cells) {
		return g.cells[index]
	}
	return nil
}

// GetCellCount returns the number of cells on the page.
func (g *GridLayout) GetCellCount() int {
	return len(g.cells)
}

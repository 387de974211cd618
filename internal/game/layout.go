package game

import (
	"image"

	"github.com/Garsondee/campus-flu/internal/flu"
)

// borderWidth is the pixel gap between the window edge and the board.
const borderWidth = 24

// headerHeight is the title strip above the board.
const headerHeight = 28

// panelWidth is the readout panel to the right of the board.
const panelWidth = 260

const (
	buttonW = 120
	buttonH = 32
)

// layout holds the screen geometry derived from the cell size. All
// rectangles are in screen pixels with Max exclusive.
type layout struct {
	cell   int
	board  image.Rectangle
	panel  image.Rectangle
	reset  image.Rectangle
	width  int
	height int
}

func newLayout(cell int) layout {
	if cell <= 0 {
		cell = 56
	}
	bx := borderWidth
	by := borderWidth + headerHeight
	board := image.Rect(bx, by, bx+cell*flu.GridCols, by+cell*flu.GridRows)

	px := board.Max.X + borderWidth
	panel := image.Rect(px, by, px+panelWidth, board.Max.Y)

	// Reset button sits at the bottom of the panel.
	rx := panel.Min.X + 12
	ry := panel.Max.Y - buttonH - 12
	reset := image.Rect(rx, ry, rx+buttonW, ry+buttonH)

	return layout{
		cell:   cell,
		board:  board,
		panel:  panel,
		reset:  reset,
		width:  panel.Max.X + borderWidth,
		height: board.Max.Y + borderWidth,
	}
}

// cellAt maps a cursor position to a grid cell.
func (l layout) cellAt(x, y int) (row, col int, ok bool) {
	if !image.Pt(x, y).In(l.board) {
		return 0, 0, false
	}
	col = (x - l.board.Min.X) / l.cell
	row = (y - l.board.Min.Y) / l.cell
	return row, col, true
}

// cellRect returns the screen rectangle of cell (row, col).
func (l layout) cellRect(row, col int) image.Rectangle {
	x := l.board.Min.X + col*l.cell
	y := l.board.Min.Y + row*l.cell
	return image.Rect(x, y, x+l.cell, y+l.cell)
}

func (l layout) inReset(x, y int) bool {
	return image.Pt(x, y).In(l.reset)
}

// alertBox is the centered modal shown on infection; its OK button is
// returned second.
func (l layout) alertBox() (box, ok image.Rectangle) {
	const w, h = 360, 140
	cx := l.width / 2
	cy := l.height / 2
	box = image.Rect(cx-w/2, cy-h/2, cx+w/2, cy+h/2)
	ok = image.Rect(cx-buttonW/2, box.Max.Y-buttonH-14, cx+buttonW/2, box.Max.Y-14)
	return box, ok
}

package game

import (
	"fmt"
	"image"
	"image/color"

	"github.com/Garsondee/campus-flu/internal/flu"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

// lineH is the basicfont line advance at 1x.
const lineH = 16

var (
	backgroundColor = color.RGBA{R: 18, G: 20, B: 24, A: 255}
	panelColor      = color.RGBA{R: 28, G: 32, B: 38, A: 255}
	borderColor     = color.RGBA{R: 70, G: 80, B: 95, A: 255}
	textColor       = color.RGBA{R: 225, G: 230, B: 235, A: 255}
	dimTextColor    = color.RGBA{R: 140, G: 150, B: 160, A: 255}
	riskColor       = color.RGBA{R: 255, G: 110, B: 90, A: 255}
	buttonColor     = color.RGBA{R: 60, G: 72, B: 90, A: 255}
	alertColor      = color.RGBA{R: 120, G: 20, B: 24, A: 245}
	shadeColor      = color.RGBA{A: 150}
)

// categoryColors maps each category to its tile colour.
var categoryColors = [len(flu.Categories)]color.RGBA{
	flu.CategoryDorm:    {R: 196, G: 86, B: 70, A: 255},  // brick
	flu.CategoryClass:   {R: 82, G: 128, B: 196, A: 255}, // blue
	flu.CategoryDining:  {R: 222, G: 170, B: 60, A: 255}, // amber
	flu.CategoryOutside: {R: 86, G: 160, B: 92, A: 255},  // grass
}

func fillRect(dst *ebiten.Image, r image.Rectangle, c color.Color) {
	vector.FillRect(dst, float32(r.Min.X), float32(r.Min.Y), float32(r.Dx()), float32(r.Dy()), c, false)
}

func strokeRect(dst *ebiten.Image, r image.Rectangle, w float32, c color.Color) {
	vector.StrokeRect(dst, float32(r.Min.X), float32(r.Min.Y), float32(r.Dx()), float32(r.Dy()), w, c, false)
}

// drawText draws s with its top-left corner at (x, y).
func drawText(dst *ebiten.Image, s string, x, y int, c color.Color) {
	text.Draw(dst, s, basicfont.Face7x13, x, y+basicfont.Face7x13.Ascent, c)
}

func pointIn(x, y int, r image.Rectangle) bool {
	return image.Pt(x, y).In(r)
}

func (g *Game) drawHeader(screen *ebiten.Image) {
	title := fmt.Sprintf("CAMPUS FLU RISK  [%s]", g.session.Variant())
	drawText(screen, title, borderWidth, borderWidth, textColor)
}

// drawBoard renders one tile per cell, tagged by its category colour and
// initial.
func (g *Game) drawBoard(screen *ebiten.Image) {
	l := g.layout
	grid := g.session.Grid()
	for row := 0; row < flu.GridRows; row++ {
		for col := 0; col < flu.GridCols; col++ {
			c := grid[row][col]
			r := l.cellRect(row, col)
			fillRect(screen, r.Inset(1), categoryColors[c])
			if g.hoverOK && g.hoverRow == row && g.hoverCol == col && !g.alert {
				strokeRect(screen, r.Inset(2), 2, textColor)
			}
			drawText(screen, c.String()[:1], r.Min.X+4, r.Min.Y+3, backgroundColor)
		}
	}
	strokeRect(screen, l.board, 1, borderColor)
}

// drawPanel renders the readouts, legend and reset button.
func (g *Game) drawPanel(screen *ebiten.Image) {
	l := g.layout
	fillRect(screen, l.panel, panelColor)
	strokeRect(screen, l.panel, 1, borderColor)

	x := l.panel.Min.X + 12
	y := l.panel.Min.Y + 12
	d := g.display

	drawText(screen, "VISITS", x, y, dimTextColor)
	y += lineH + 4
	for _, c := range flu.Categories {
		fillRect(screen, image.Rect(x, y+2, x+10, y+12), categoryColors[c])
		drawText(screen, fmt.Sprintf("%-8s %4d", c, d.Totals[c]), x+16, y, textColor)
		y += lineH
	}

	y += lineH
	drawText(screen, "FLU RISK", x, y, dimTextColor)
	y += lineH + 4
	drawText(screen, d.Percent()+" %", x, y, riskColor)
	y += lineH

	if g.session.Variant() == flu.VariantWindow {
		y += lineH / 2
		drawText(screen, fmt.Sprintf("window   %d/%d", d.Window, flu.WindowSize), x, y, dimTextColor)
		y += lineH
		drawText(screen, fmt.Sprintf("per click %.2f %%", d.PerClick*100), x, y, dimTextColor)
		y += lineH
		drawText(screen, fmt.Sprintf("infections %d", g.session.Infections()), x, y, dimTextColor)
		y += lineH
	}

	y += lineH
	drawText(screen, "R reset  C copy", x, y, dimTextColor)
	if g.status != "" {
		drawText(screen, g.status, x, y+lineH, dimTextColor)
	}
	y += 2*lineH + 8
	g.activity.Draw(screen, x, y, l.reset.Min.Y-8)

	fillRect(screen, l.reset, buttonColor)
	strokeRect(screen, l.reset, 1, borderColor)
	drawText(screen, "RESET", l.reset.Min.X+(buttonW-5*7)/2, l.reset.Min.Y+9, textColor)
}

func (g *Game) drawAlert(screen *ebiten.Image) {
	fillRect(screen, image.Rect(0, 0, g.layout.width, g.layout.height), shadeColor)
	box, ok := g.layout.alertBox()
	fillRect(screen, box, alertColor)
	strokeRect(screen, box, 2, textColor)

	msgX := box.Min.X + (box.Dx()-len(flu.InfectionMessage)*7)/2
	drawText(screen, flu.InfectionMessage, msgX, box.Min.Y+30, textColor)

	fillRect(screen, ok, buttonColor)
	strokeRect(screen, ok, 1, textColor)
	drawText(screen, "OK", ok.Min.X+(buttonW-2*7)/2, ok.Min.Y+9, textColor)
}

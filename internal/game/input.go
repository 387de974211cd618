package game

import (
	"github.com/hajimehoshi/ebiten/v2"
)

func (g *Game) handleInput() {
	currentKeys := map[ebiten.Key]bool{}
	pressed := func(k ebiten.Key) bool {
		currentKeys[k] = ebiten.IsKeyPressed(k)
		return currentKeys[k] && !g.prevKeys[k]
	}

	mx, my := ebiten.CursorPosition()
	g.hoverRow, g.hoverCol, g.hoverOK = g.layout.cellAt(mx, my)

	// Left mouse click, edge-triggered.
	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		if !g.prevMouseLeft {
			g.handleClick(mx, my)
		}
	}
	g.prevMouseLeft = ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)

	for _, k := range []ebiten.Key{ebiten.KeyR, ebiten.KeyC, ebiten.KeyEnter, ebiten.KeySpace, ebiten.KeyEscape} {
		if pressed(k) {
			g.handleKey(k)
		}
	}

	g.prevKeys = currentKeys
}

// handleClick routes a click at screen position (x, y).
func (g *Game) handleClick(x, y int) {
	if g.alert {
		if _, ok := g.layout.alertBox(); pointIn(x, y, ok) {
			g.dismissAlert()
		}
		return
	}
	if g.layout.inReset(x, y) {
		g.reset()
		return
	}
	row, col, ok := g.layout.cellAt(x, y)
	if !ok {
		return
	}
	before := g.session.Clicks()
	d, ok := g.session.ClickCell(row, col)
	if !ok {
		return
	}
	g.display = d
	g.status = ""
	c, _ := g.session.Grid().At(row, col)
	if d.Infected {
		g.alert = true
		g.activity.Add(ActivityEntry{Click: before + 1, Category: c, Kind: activityInfected})
		g.log.Info("infection alert", "row", row, "col", col)
		return
	}
	g.activity.Add(ActivityEntry{Click: g.session.Clicks(), Category: c, Percent: d.Percent()})
}

func (g *Game) handleKey(k ebiten.Key) {
	switch k {
	case ebiten.KeyEnter, ebiten.KeySpace, ebiten.KeyEscape:
		if g.alert {
			g.dismissAlert()
		}
	case ebiten.KeyR:
		if !g.alert {
			g.reset()
		}
	case ebiten.KeyC:
		g.copySummary()
	}
}

func (g *Game) reset() {
	g.display = g.session.Reset()
	g.status = ""
	g.activity.Add(ActivityEntry{Kind: activityReset})
}

func (g *Game) dismissAlert() {
	g.alert = false
	g.display = g.session.Display()
	g.display.Infected = false
}

// copySummary puts the current display on the system clipboard. Failure is
// shown in the status line and logged, never fatal.
func (g *Game) copySummary() {
	if err := g.copyText(g.display.Summary()); err != nil {
		g.status = "clipboard unavailable"
		g.log.Warn("clipboard copy failed", "err", err)
		return
	}
	g.status = "copied"
}

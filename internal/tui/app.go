// Package tui is a terminal front-end for flu.Session driven by tcell mouse
// events.
package tui

import (
	"fmt"
	"log/slog"

	"github.com/Garsondee/campus-flu/internal/flu"
	"github.com/Garsondee/campus-flu/internal/logging"
	"github.com/gdamore/tcell/v2"
)

// Terminal geometry. Each grid cell is cellW columns by cellH rows.
const (
	cellW   = 4
	cellH   = 2
	originX = 2
	originY = 2
	panelX  = originX + cellW*flu.GridCols + 3
	resetY  = originY + 14
)

// resetLabel is the clickable reset control in the panel.
const resetLabel = "[ RESET ]"

var (
	categoryStyles = [len(flu.Categories)]tcell.Style{
		flu.CategoryDorm:    tcell.StyleDefault.Background(tcell.NewRGBColor(196, 86, 70)).Foreground(tcell.ColorBlack),
		flu.CategoryClass:   tcell.StyleDefault.Background(tcell.NewRGBColor(82, 128, 196)).Foreground(tcell.ColorBlack),
		flu.CategoryDining:  tcell.StyleDefault.Background(tcell.NewRGBColor(222, 170, 60)).Foreground(tcell.ColorBlack),
		flu.CategoryOutside: tcell.StyleDefault.Background(tcell.NewRGBColor(86, 160, 92)).Foreground(tcell.ColorBlack),
	}
	textStyle   = tcell.StyleDefault
	dimStyle    = tcell.StyleDefault.Foreground(tcell.ColorGray)
	riskStyle   = tcell.StyleDefault.Foreground(tcell.ColorOrangeRed).Bold(true)
	buttonStyle = tcell.StyleDefault.Reverse(true)
	alertStyle  = tcell.StyleDefault.Background(tcell.ColorDarkRed).Foreground(tcell.ColorWhite).Bold(true)
)

// App runs one session on a tcell screen.
type App struct {
	screen  tcell.Screen
	session *flu.Session
	log     *slog.Logger
	alarm   Alarm

	display flu.Display
	alert   bool
	quit    bool

	prevButtons tcell.ButtonMask // for edge-triggered clicks
}

// Option configures an App.
type Option func(*App)

// WithLogger sets the logger for UI events.
func WithLogger(l *slog.Logger) Option {
	return func(a *App) { a.log = l }
}

// WithAlarm sets the infection alarm.
func WithAlarm(al Alarm) Option {
	return func(a *App) { a.alarm = al }
}

// New binds session to an initialised screen and enables mouse reporting.
func New(screen tcell.Screen, session *flu.Session, opts ...Option) *App {
	a := &App{
		screen:  screen,
		session: session,
		log:     logging.Discard(),
		alarm:   Silent{},
		display: session.Display(),
	}
	for _, o := range opts {
		o(a)
	}
	screen.EnableMouse()
	return a
}

// Run draws and handles events until the user quits.
func (a *App) Run() error {
	for !a.quit {
		a.draw()
		ev := a.screen.PollEvent()
		if ev == nil {
			return nil
		}
		a.handleEvent(ev)
	}
	return nil
}

// Display returns what the readouts currently show.
func (a *App) Display() flu.Display { return a.display }

// AlertOpen reports whether the infection alert is showing.
func (a *App) AlertOpen() bool { return a.alert }

func (a *App) handleEvent(ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		a.handleKey(ev)
	case *tcell.EventMouse:
		btn := ev.Buttons()
		// Act on press only; drags and releases are ignored.
		if btn&tcell.Button1 != 0 && a.prevButtons&tcell.Button1 == 0 {
			x, y := ev.Position()
			a.handleClick(x, y)
		}
		a.prevButtons = btn
	case *tcell.EventResize:
		a.screen.Sync()
	}
}

func (a *App) handleKey(ev *tcell.EventKey) {
	switch ev.Key() {
	case tcell.KeyCtrlC:
		a.quit = true
		return
	case tcell.KeyEnter, tcell.KeyEscape:
		if a.alert {
			a.dismiss()
		}
		return
	case tcell.KeyRune:
	default:
		return
	}
	switch ev.Rune() {
	case 'q':
		if !a.alert {
			a.quit = true
		}
	case ' ':
		if a.alert {
			a.dismiss()
		}
	case 'r', 'R':
		if !a.alert {
			a.display = a.session.Reset()
		}
	}
}

func (a *App) handleClick(x, y int) {
	if a.alert {
		a.dismiss()
		return
	}
	if y == resetY && x >= panelX && x < panelX+len(resetLabel) {
		a.display = a.session.Reset()
		return
	}
	row, col, ok := cellAt(x, y)
	if !ok {
		return
	}
	d, ok := a.session.ClickCell(row, col)
	if !ok {
		return
	}
	a.display = d
	if d.Infected {
		a.alert = true
		a.alarm.Play()
		a.log.Info("infection alert", "row", row, "col", col)
	}
}

func (a *App) dismiss() {
	a.alert = false
	a.display = a.session.Display()
	a.display.Infected = false
}

// cellAt maps a terminal position to a grid cell.
func cellAt(x, y int) (row, col int, ok bool) {
	if x < originX || y < originY {
		return 0, 0, false
	}
	col = (x - originX) / cellW
	row = (y - originY) / cellH
	if col >= flu.GridCols || row >= flu.GridRows {
		return 0, 0, false
	}
	return row, col, true
}

func (a *App) draw() {
	a.screen.Clear()
	a.puts(originX, 0, fmt.Sprintf("CAMPUS FLU RISK [%s]", a.session.Variant()), textStyle)

	grid := a.session.Grid()
	for row := 0; row < flu.GridRows; row++ {
		for col := 0; col < flu.GridCols; col++ {
			c := grid[row][col]
			st := categoryStyles[c]
			x0 := originX + col*cellW
			y0 := originY + row*cellH
			for dy := 0; dy < cellH; dy++ {
				for dx := 0; dx < cellW-1; dx++ {
					a.screen.SetContent(x0+dx, y0+dy, ' ', nil, st)
				}
			}
			a.screen.SetContent(x0, y0, rune(c.String()[0]), nil, st)
		}
	}

	y := originY
	a.puts(panelX, y, "VISITS", dimStyle)
	y++
	for _, c := range flu.Categories {
		a.puts(panelX, y, "  ", categoryStyles[c])
		a.puts(panelX+3, y, fmt.Sprintf("%-8s %4d", c, a.display.Totals[c]), textStyle)
		y++
	}
	y++
	a.puts(panelX, y, "FLU RISK", dimStyle)
	y++
	a.puts(panelX, y, a.display.Percent()+" %", riskStyle)
	y++
	if a.session.Variant() == flu.VariantWindow {
		a.puts(panelX, y, fmt.Sprintf("window     %d/%d", a.display.Window, flu.WindowSize), dimStyle)
		y++
		a.puts(panelX, y, fmt.Sprintf("per click  %.2f %%", a.display.PerClick*100), dimStyle)
		y++
		a.puts(panelX, y, fmt.Sprintf("infections %d", a.session.Infections()), dimStyle)
	}

	a.puts(panelX, resetY, resetLabel, buttonStyle)
	a.puts(panelX, resetY+2, "click a cell  r reset  q quit", dimStyle)

	if a.alert {
		a.drawAlert()
	}
	a.screen.Show()
}

func (a *App) drawAlert() {
	msg := "  " + flu.InfectionMessage + "  "
	hint := "press Enter or click"
	w := len(msg)
	x0 := originX + (cellW*flu.GridCols-w)/2
	y0 := originY + cellH*flu.GridRows/2 - 2
	for dy := 0; dy < 5; dy++ {
		for dx := 0; dx < w; dx++ {
			a.screen.SetContent(x0+dx, y0+dy, ' ', nil, alertStyle)
		}
	}
	a.puts(x0, y0+1, msg, alertStyle)
	a.puts(x0+(w-len(hint))/2, y0+3, hint, alertStyle)
}

func (a *App) puts(x, y int, s string, st tcell.Style) {
	for i, r := range []rune(s) {
		a.screen.SetContent(x+i, y, r, nil, st)
	}
}

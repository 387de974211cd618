package game

import (
	"log/slog"

	"github.com/Garsondee/campus-flu/internal/flu"
	"github.com/atotto/clipboard"
	"github.com/hajimehoshi/ebiten/v2"
)

// Game is the Ebiten front-end for a flu.Session. It owns no risk state of
// its own; every click is forwarded to the session and the returned display
// is what gets drawn.
type Game struct {
	session *flu.Session
	layout  layout
	log     *slog.Logger

	display  flu.Display
	activity *ActivityLog

	// Infection alert. While shown, grid and reset clicks are ignored.
	alert bool

	// Status line under the panel, e.g. "copied".
	status string

	prevKeys      map[ebiten.Key]bool
	prevMouseLeft bool // for edge-triggered click detection

	// hover cell for highlight; hoverOK false when the cursor is off-board.
	hoverRow, hoverCol int
	hoverOK            bool

	copyText func(string) error
}

// Option configures a Game.
type Option func(*Game)

// WithCellSize sets the tile size in pixels.
func WithCellSize(px int) Option {
	return func(g *Game) { g.layout = newLayout(px) }
}

// WithLogger sets the logger for UI events.
func WithLogger(l *slog.Logger) Option {
	return func(g *Game) { g.log = l }
}

// WithClipboard replaces the clipboard writer.
func WithClipboard(fn func(string) error) Option {
	return func(g *Game) { g.copyText = fn }
}

// New creates a game bound to session and renders its current display.
func New(session *flu.Session, opts ...Option) *Game {
	g := &Game{
		session:  session,
		layout:   newLayout(56),
		log:      slog.Default(),
		display:  session.Display(),
		activity: NewActivityLog(),
		prevKeys: make(map[ebiten.Key]bool),
		copyText: clipboard.WriteAll,
	}
	for _, o := range opts {
		o(g)
	}
	return g
}

// Update polls input once per frame.
func (g *Game) Update() error {
	g.handleInput()
	return nil
}

// Draw renders the board, the readout panel and the alert if one is open.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)
	g.drawHeader(screen)
	g.drawBoard(screen)
	g.drawPanel(screen)
	if g.alert {
		g.drawAlert(screen)
	}
}

// Layout returns the fixed logical screen size.
func (g *Game) Layout(_, _ int) (int, int) {
	return g.layout.width, g.layout.height
}

// Size is the window size that fits the board and panel.
func (g *Game) Size() (int, int) {
	return g.layout.width, g.layout.height
}

// Display returns what the readouts currently show.
func (g *Game) Display() flu.Display {
	return g.display
}

// AlertOpen reports whether the infection alert is showing.
func (g *Game) AlertOpen() bool {
	return g.alert
}

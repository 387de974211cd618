package flu

import (
	"fmt"
	"io"
	"log/slog"
	"math/rand"
	"slices"
	"time"
)

// Variant selects how clicks turn into risk. The two behaviours are
// alternatives and never share state.
type Variant int

const (
	// VariantWindow counts the last WindowSize clicks and can end the
	// session with an infection.
	VariantWindow Variant = iota
	// VariantLifetime accumulates every click until reset.
	VariantLifetime
)

func (v Variant) String() string {
	switch v {
	case VariantWindow:
		return "window"
	case VariantLifetime:
		return "lifetime"
	default:
		return "unknown"
	}
}

// ParseVariant accepts "window" or "lifetime".
func ParseVariant(s string) (Variant, error) {
	switch s {
	case "window":
		return VariantWindow, nil
	case "lifetime":
		return VariantLifetime, nil
	default:
		return 0, fmt.Errorf("unknown variant %q (valid: window, lifetime)", s)
	}
}

// Session binds one variant's state to a front-end event loop.
// It is not safe for concurrent use.
type Session struct {
	variant Variant
	grid    *Grid
	rng     Sampler
	log     *slog.Logger

	lifetime LifetimeState
	window   WindowState
	display  Display

	clicks     int // clicks since the last reset or infection
	infections int
}

// SessionOption configures a Session at construction.
type SessionOption func(*Session)

// WithSampler injects the random source used by infection checks.
func WithSampler(rng Sampler) SessionOption {
	return func(s *Session) { s.rng = rng }
}

// WithSeed seeds a private math/rand source for infection checks.
func WithSeed(seed int64) SessionOption {
	return func(s *Session) {
		s.rng = rand.New(rand.NewSource(seed)) // #nosec G404 -- simulation only
	}
}

// WithLogger sets the logger for click and infection events.
func WithLogger(l *slog.Logger) SessionOption {
	return func(s *Session) { s.log = l }
}

// WithGrid replaces the campus map.
func WithGrid(g *Grid) SessionOption {
	return func(s *Session) { s.grid = g }
}

// NewSession creates a reset session for variant v.
func NewSession(v Variant, opts ...SessionOption) *Session {
	s := &Session{
		variant: v,
		grid:    &Campus,
		display: ZeroDisplay(),
	}
	for _, o := range opts {
		o(s)
	}
	if s.rng == nil {
		s.rng = rand.New(rand.NewSource(time.Now().UnixNano())) // #nosec G404 -- simulation only
	}
	if s.log == nil {
		s.log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return s
}

// Variant returns the session's variant.
func (s *Session) Variant() Variant { return s.variant }

// Grid returns the map the session routes cell clicks through.
func (s *Session) Grid() *Grid { return s.grid }

// Display returns the most recent display.
func (s *Session) Display() Display { return s.display }

// Clicks returns the number of clicks since the last reset or infection.
func (s *Session) Clicks() int { return s.clicks }

// Infections returns how many infections this session has produced.
func (s *Session) Infections() int { return s.infections }

// History returns a copy of the window variant's click history.
// It is nil for the lifetime variant.
func (s *Session) History() []Category {
	return slices.Clone(s.window.History)
}

// Click records a visit to c and returns the new display.
func (s *Session) Click(c Category) Display {
	if !c.Valid() {
		return s.display
	}
	s.clicks++
	switch s.variant {
	case VariantLifetime:
		s.lifetime, s.display = s.lifetime.Click(c)
	default:
		s.window, s.display = s.window.Click(c, s.rng)
	}
	s.log.Debug("click", "category", c.String(), "clicks", s.clicks, "p", s.display.Probability)

	if s.display.Infected {
		s.infections++
		s.log.Info("infected", "after_clicks", s.clicks, "infections", s.infections)
		s.clicks = 0
		s.lifetime = LifetimeState{}
	}
	return s.display
}

// ClickCell clicks the cell at (row, col). ok is false when the position is
// off the grid, in which case nothing changes.
func (s *Session) ClickCell(row, col int) (Display, bool) {
	c, ok := s.grid.At(row, col)
	if !ok {
		return s.display, false
	}
	return s.Click(c), true
}

// Reset clears counters and history and returns the zero display.
func (s *Session) Reset() Display {
	s.lifetime = LifetimeState{}
	s.window = WindowState{}
	s.clicks = 0
	s.display = ZeroDisplay()
	s.log.Info("reset", "variant", s.variant.String())
	return s.display
}

package flu

import "slices"

// WindowSize is how many recent clicks the window variant counts.
const WindowSize = 5

// Sampler yields uniform samples in [0,1). *rand.Rand satisfies it.
type Sampler interface {
	Float64() float64
}

// LifetimeState accumulates every click since the last reset.
type LifetimeState struct {
	Totals Counts
}

// Click records one visit to c.
func (s LifetimeState) Click(c Category) (LifetimeState, Display) {
	if !c.Valid() {
		return s, s.Display()
	}
	s.Totals[c]++
	return s, s.Display()
}

// Display returns the totals and P for the current state.
func (s LifetimeState) Display() Display {
	return Display{Totals: s.Totals, Probability: ComputeP(s.Totals)}
}

// WindowState keeps the full click history but only reads the last
// WindowSize entries.
type WindowState struct {
	History []Category
}

// Window returns the most recent min(len(History), WindowSize) clicks.
func (s WindowState) Window() []Category {
	k := min(len(s.History), WindowSize)
	return s.History[len(s.History)-k:]
}

// Display returns the window totals, P and the per-click probability.
func (s WindowState) Display() Display {
	w := s.Window()
	totals := CountOf(w)
	p := ComputeP(totals)
	return Display{
		Totals:      totals,
		Probability: p,
		PerClick:    PerClickProbability(p, len(w)),
		Window:      len(w),
	}
}

// Click appends c to the history and rolls one infection check against the
// per-click probability. On infection the returned state is empty and the
// display is the zero display with Infected set.
func (s WindowState) Click(c Category, rng Sampler) (WindowState, Display) {
	if !c.Valid() {
		return s, s.Display()
	}
	// Clip so the append never writes into a backing array shared with s.
	next := WindowState{History: append(slices.Clip(s.History), c)}
	d := next.Display()
	if rng.Float64() < d.PerClick {
		infected := ZeroDisplay()
		infected.Infected = true
		return WindowState{}, infected
	}
	return next, d
}

package flu

import (
	"fmt"
	"strings"
)

// Stable identifiers for the readouts and the reset control.
const (
	ReadoutProbability = "probability"
	ResetControl       = "reset"
)

// InfectionMessage is the fixed text of the infection alert.
const InfectionMessage = "YOU GOT THE STANFORD FLU"

// Display is everything a front-end needs to redraw the readouts after a
// click or reset.
type Display struct {
	Totals      Counts
	Probability float64 // P over the counted visits
	PerClick    float64 // per-click infection probability, window variant only
	Window      int     // number of clicks in the window, window variant only
	Infected    bool    // set only on the click that triggered infection
}

// ZeroDisplay is the display of a freshly reset session.
func ZeroDisplay() Display {
	return Display{Probability: ZeroP()}
}

// Percent formats P as a percentage with two decimals.
func (d Display) Percent() string {
	return fmt.Sprintf("%.2f", d.Probability*100)
}

// Readout is one addressable value on screen.
type Readout struct {
	ID    string
	Value string
}

// ReadoutID returns the identifier of the total readout for c, e.g. "total-dorm".
func ReadoutID(c Category) string {
	return "total-" + c.String()
}

// Readouts returns the four category totals followed by the probability.
func (d Display) Readouts() []Readout {
	out := make([]Readout, 0, len(Categories)+1)
	for _, c := range Categories {
		out = append(out, Readout{ID: ReadoutID(c), Value: fmt.Sprintf("%d", d.Totals[c])})
	}
	out = append(out, Readout{ID: ReadoutProbability, Value: d.Percent()})
	return out
}

// Summary renders the display on one line.
//
//	dorm=2 class=1 dining=0 outside=2 risk=2.47%
func (d Display) Summary() string {
	var b strings.Builder
	for _, c := range Categories {
		fmt.Fprintf(&b, "%s=%d ", c, d.Totals[c])
	}
	fmt.Fprintf(&b, "risk=%s%%", d.Percent())
	if d.Window > 0 {
		fmt.Fprintf(&b, " per_click=%.2f%% window=%d", d.PerClick*100, d.Window)
	}
	if d.Infected {
		b.WriteString(" INFECTED")
	}
	return b.String()
}

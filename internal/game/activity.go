package game

import (
	"fmt"

	"github.com/Garsondee/campus-flu/internal/flu"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const activityMaxEntries = 12

// ActivityEntry is a single line in the activity log.
type ActivityEntry struct {
	Click    int          // click number since the last reset; 0 for resets
	Category flu.Category // meaningless for resets
	Kind     activityKind
	Percent  string // P after the event
}

type activityKind int

const (
	activityClick activityKind = iota
	activityInfected
	activityReset
)

func (e ActivityEntry) String() string {
	switch e.Kind {
	case activityInfected:
		return fmt.Sprintf("%3d %-7s INFECTED", e.Click, e.Category)
	case activityReset:
		return "    reset"
	default:
		return fmt.Sprintf("%3d %-7s %6s%%", e.Click, e.Category, e.Percent)
	}
}

// ActivityLog is a ring buffer of recent events rendered in the panel.
type ActivityLog struct {
	entries []ActivityEntry
	head    int
	count   int
}

// NewActivityLog creates a log with a fixed capacity.
func NewActivityLog() *ActivityLog {
	return &ActivityLog{
		entries: make([]ActivityEntry, activityMaxEntries),
	}
}

// Add appends an entry, overwriting the oldest when full.
func (al *ActivityLog) Add(e ActivityEntry) {
	al.entries[al.head] = e
	al.head = (al.head + 1) % activityMaxEntries
	if al.count < activityMaxEntries {
		al.count++
	}
}

// Recent returns entries in chronological order (oldest first).
func (al *ActivityLog) Recent() []ActivityEntry {
	result := make([]ActivityEntry, al.count)
	for i := 0; i < al.count; i++ {
		idx := (al.head - al.count + i + activityMaxEntries) % activityMaxEntries
		result[i] = al.entries[idx]
	}
	return result
}

// Draw renders the log from (x, y) downwards, newest at the bottom, and
// stops before maxY.
func (al *ActivityLog) Draw(screen *ebiten.Image, x, y, maxY int) {
	drawText(screen, "RECENT", x, y, dimTextColor)
	y += lineH + 2

	entries := al.Recent()
	maxVisible := (maxY - y) / lineH
	if maxVisible <= 0 {
		return
	}
	if len(entries) > maxVisible {
		entries = entries[len(entries)-maxVisible:]
	}
	for i, e := range entries {
		c := dimTextColor
		if i == len(entries)-1 {
			c = textColor
		}
		if e.Kind == activityInfected {
			c = riskColor
		}
		if e.Kind != activityReset {
			vector.FillRect(screen, float32(x), float32(y+4), 3, 7, categoryColors[e.Category], false)
		}
		drawText(screen, e.String(), x+8, y, c)
		y += lineH
	}
}

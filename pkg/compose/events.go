package compose

import (
	"fmt"

	"github.com/akeil/tripjournal"
	"github.com/akeil/tripjournal/internal/geom"
	"github.com/akeil/tripjournal/pkg/theme"
)

// EventKind tells what happened during layout.
type EventKind int

const (
	// PageStarted is sent after a new page was added.
	PageStarted EventKind = iota
	// LinePlaced is sent for every writing line.
	LinePlaced
	// DecorationPlaced is sent for every theme decoration.
	DecorationPlaced
)

var eventNames = map[EventKind]string{
	PageStarted:      "page",
	LinePlaced:       "line",
	DecorationPlaced: "decoration",
}

func (k EventKind) String() string {
	return eventNames[k]
}

// Event describes one layout step.
//
// Day is set on daily pages. Block is the index of the prompt a writing
// line belongs to, or -1. Rect is the footprint of a decoration or line.
type Event struct {
	Kind    EventKind
	Page    int
	Section journal.Section
	Day     int
	Sub     int
	Block   int
	Y       float64
	Rect    geom.Rect
	Zone    theme.ZoneID
}

func (e Event) String() string {
	return fmt.Sprintf("%v p%d %v day=%d y=%.1f", e.Kind, e.Page, e.Section, e.Day, e.Y)
}

// Observer receives layout events, e.g. for progress reports or tests.
type Observer func(Event)

package compose

import (
	"fmt"

	"github.com/akeil/tripjournal"
	"github.com/akeil/tripjournal/pkg/content"
)

// machine tracks the position in a plan. It only moves forward: sections
// follow in their natural order, sub-pages and days count up by one and
// nothing comes after the final page.
type machine struct {
	started bool
	done    bool
	current content.Step
}

func (m *machine) advance(next content.Step) error {
	if m.done {
		return fmt.Errorf("step %v after the final page", next)
	}
	if !m.started {
		m.started = true
		return m.enter(next)
	}

	cur := m.current
	switch {
	case next.Section < cur.Section:
		return fmt.Errorf("step %v goes back from %v", next, cur)
	case next.Section > cur.Section:
		return m.enter(next)
	}

	// same section
	switch next.Section {
	case journal.Daily:
		if next.Day != cur.Day+1 {
			return fmt.Errorf("day %d follows day %d", next.Day, cur.Day)
		}
	case journal.ActivitiesSection, journal.RoadTrip:
		if next.Page != cur.Page+1 {
			return fmt.Errorf("page %v follows %v", next, cur)
		}
	default:
		return fmt.Errorf("section %v repeated", next.Section)
	}
	return m.set(next)
}

// enter moves into a new section; multi-part sections start at one.
func (m *machine) enter(next content.Step) error {
	switch next.Section {
	case journal.Daily:
		if next.Day != 1 {
			return fmt.Errorf("daily pages start at day %d", next.Day)
		}
	case journal.ActivitiesSection, journal.RoadTrip:
		if next.Page != 1 {
			return fmt.Errorf("%v starts at page %d", next.Section, next.Page)
		}
	}
	return m.set(next)
}

func (m *machine) set(next content.Step) error {
	if next.Section < journal.Cover || next.Section > journal.Final {
		return fmt.Errorf("unknown section %v", next.Section)
	}
	m.current = next
	if next.Section == journal.Final {
		m.done = true
	}
	return nil
}

package content

import (
	"fmt"

	"github.com/akeil/tripjournal"
)

// Sub-pages of the multi-page sections.
const (
	ActivityPages = 4
	RoadTripPages = 4
	// DailyPageCount is the number of pages rendered per trip day.
	DailyPageCount = 2
)

// Step is one entry of a render plan.
//
// Day is set for daily steps (1-based), Page for the activity and road
// trip sub-pages (1-based). A daily step renders two pages, every other
// step renders one.
type Step struct {
	Section journal.Section
	Day     int
	Page    int
}

// Pages is the number of pages the step renders.
func (s Step) Pages() int {
	if s.Section == journal.Daily {
		return DailyPageCount
	}
	return 1
}

func (s Step) String() string {
	switch {
	case s.Day > 0:
		return fmt.Sprintf("%v/day-%d", s.Section, s.Day)
	case s.Page > 0:
		return fmt.Sprintf("%v/%d", s.Section, s.Page)
	default:
		return s.Section.String()
	}
}

// Plan is the ordered list of steps for one journal.
type Plan []Step

// NewPlan maps prepared content to the sequence the composer renders.
//
// The order is fixed: cover, welcome, about-trip, facts, landmarks (only
// if there are any), four activity pages, four road trip pages, one step
// per day, reflections and the final page.
func NewPlan(c *journal.Content) Plan {
	p := Plan{
		{Section: journal.Cover},
		{Section: journal.Welcome},
		{Section: journal.AboutTrip},
		{Section: journal.FactsSection},
	}
	if len(c.PreTrip.Landmarks) > 0 {
		p = append(p, Step{Section: journal.LandmarksSection})
	}
	for i := 1; i <= ActivityPages; i++ {
		p = append(p, Step{Section: journal.ActivitiesSection, Page: i})
	}
	for i := 1; i <= RoadTripPages; i++ {
		p = append(p, Step{Section: journal.RoadTrip, Page: i})
	}
	for _, d := range c.DailyPages {
		p = append(p, Step{Section: journal.Daily, Day: d.Day})
	}
	p = append(p, Step{Section: journal.Reflections}, Step{Section: journal.Final})
	return p
}

// Pages is the number of pages the plan renders, assuming no section
// overflows onto a continuation page.
func (p Plan) Pages() int {
	n := 0
	for _, s := range p {
		n += s.Pages()
	}
	return n
}

// Sections lists the distinct sections in plan order.
func (p Plan) Sections() []journal.Section {
	var out []journal.Section
	for i, s := range p {
		if i > 0 && p[i-1].Section == s.Section {
			continue
		}
		out = append(out, s.Section)
	}
	return out
}

// EstimatePages is the advisory page count shown before rendering:
// 8 pre-trip pages, 8 activity pages, two pages per day and 4 spare.
// The real count is only known after rendering.
func EstimatePages(tripDays int) int {
	return 8 + 8 + 2*tripDays + 4
}

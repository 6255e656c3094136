// Package content turns a trip request into complete journal content.
//
// A Generator produces the text of the journal from a Trip. Prepare fills
// in whatever the generator left out and NewPlan derives the ordered list
// of sections the composer renders.
package content

import (
	"strings"
	"time"

	"github.com/akeil/tripjournal"
	"github.com/akeil/tripjournal/internal/logging"
)

// Trip is the request for a new journal as entered by a parent.
type Trip struct {
	ChildName   string    `yaml:"childName" json:"childName"`
	ChildAge    int       `yaml:"childAge" json:"childAge"`
	Destination string    `yaml:"destination" json:"destination"`
	StartDate   time.Time `yaml:"startDate" json:"startDate"`
	EndDate     time.Time `yaml:"endDate" json:"endDate"`
	Landmarks   []string  `yaml:"landmarks" json:"landmarks"`
	Interests   []string  `yaml:"interests" json:"interests"`
}

// Validate checks that the trip can be turned into a journal.
func (t Trip) Validate() error {
	if strings.TrimSpace(t.ChildName) == "" {
		return journal.NewValidationError("child name is required")
	}
	if strings.TrimSpace(t.Destination) == "" {
		return journal.NewValidationError("destination is required")
	}
	if t.StartDate.IsZero() || t.EndDate.IsZero() {
		return journal.NewValidationError("start and end date are required")
	}
	if journal.TripDays(t.StartDate, t.EndDate) < 1 {
		return journal.NewValidationError("trip ends before it starts")
	}
	return nil
}

// ParseLandmarks splits a comma separated list, dropping empty entries.
func ParseLandmarks(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}

// Generator produces journal content for a trip.
type Generator interface {
	Generate(t Trip) (*journal.Content, error)
}

// CatalogGenerator fills templates with data from a destination catalog.
// Destinations that are not in the catalog get generic content.
type CatalogGenerator struct {
	catalog *Catalog
}

// NewGenerator creates a generator backed by the given catalog.
func NewGenerator(c *Catalog) *CatalogGenerator {
	return &CatalogGenerator{catalog: c}
}

// Generate builds the journal content for a trip.
func (g *CatalogGenerator) Generate(t Trip) (*journal.Content, error) {
	err := t.Validate()
	if err != nil {
		return nil, err
	}

	d, err := g.catalog.Lookup(t.Destination)
	if journal.IsNotFound(err) {
		logging.Info("Unknown destination %q, using generic content", t.Destination)
		d = genericDestination(strings.TrimSpace(t.Destination))
	} else if err != nil {
		return nil, err
	}

	days := journal.TripDays(t.StartDate, t.EndDate)

	trivia := d.Trivia
	if len(trivia) == 0 {
		trivia = defaultTrivia(d)
	}
	words := d.WordSearch
	if len(words) == 0 {
		words = defaultWordSearch
	}

	c := &journal.Content{
		ChildName:   t.ChildName,
		ChildAge:    t.ChildAge,
		Destination: d.Name,
		Country:     d.Country,
		StartDate:   t.StartDate,
		EndDate:     t.EndDate,
		TripDays:    days,
		Landmarks:   copyStrings(t.Landmarks),
		Interests:   copyStrings(t.Interests),
		PreTrip: journal.PreTrip{
			WelcomeLetter:    welcomeLetter(t.ChildName, d.Name),
			Facts:            facts(d),
			Phrases:          phrases(d),
			Landmarks:        copyStrings(d.Landmarks),
			PreflightPrompts: preflightPrompts(d.Name),
		},
		Activities: journal.Activities{
			WordSearch: copyStrings(words),
			Trivia:     append([]journal.Trivia(nil), trivia...),
			Bingo:      travelBingo(d.Landmarks),
		},
		DailyPages: DailyPages(d.Name, days, d.Prompts, t.Interests),
	}

	logging.Debug("Generated content for %q, %d days", d.Name, days)
	return c, nil
}

// Build runs the whole content pipeline for a trip: generate, fill in
// defaults, validate and plan.
func Build(g Generator, t Trip) (*journal.Content, Plan, error) {
	raw, err := g.Generate(t)
	if err != nil {
		return nil, nil, err
	}
	c := Prepare(*raw)
	err = c.Validate()
	if err != nil {
		return nil, nil, err
	}
	return c, NewPlan(c), nil
}

// PrepareAndPlan fills in defaults for content that was not produced by a
// generator, e.g. read from a file, validates it and returns its plan.
func PrepareAndPlan(c journal.Content) (*journal.Content, Plan, error) {
	p := Prepare(c)
	err := p.Validate()
	if err != nil {
		return nil, nil, err
	}
	return p, NewPlan(p), nil
}

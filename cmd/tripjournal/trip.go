package main

import (
	"os"
	"time"

	"gopkg.in/alecthomas/kingpin.v2"
	"gopkg.in/yaml.v3"

	"github.com/akeil/tripjournal"
	"github.com/akeil/tripjournal/pkg/content"
)

const dateFormat = "2006-01-02"

// tripSource describes a trip from a YAML file, command line flags or both.
// Flags replace the values from the file.
type tripSource struct {
	file      string
	child     string
	age       int
	dest      string
	start     string
	end       string
	landmarks string
	interests []string
}

func tripFlags(c *kingpin.CmdClause) *tripSource {
	t := &tripSource{}
	c.Arg("trip", "Trip file (YAML)").ExistingFileVar(&t.file)
	c.Flag("child", "Name of the child").StringVar(&t.child)
	c.Flag("age", "Age of the child").IntVar(&t.age)
	c.Flag("destination", "Where the trip goes").Short('d').StringVar(&t.dest)
	c.Flag("start", "First day of the trip (YYYY-MM-DD)").StringVar(&t.start)
	c.Flag("end", "Last day of the trip (YYYY-MM-DD)").StringVar(&t.end)
	c.Flag("landmarks", "Comma separated list of places to visit").StringVar(&t.landmarks)
	c.Flag("interest", "Interest of the child, may be repeated").StringsVar(&t.interests)
	return t
}

func (t tripSource) Trip() (content.Trip, error) {
	var trip content.Trip
	if t.file != "" {
		var err error
		trip, err = readTrip(t.file)
		if err != nil {
			return trip, err
		}
	}

	if t.child != "" {
		trip.ChildName = t.child
	}
	if t.age != 0 {
		trip.ChildAge = t.age
	}
	if t.dest != "" {
		trip.Destination = t.dest
	}
	if t.landmarks != "" {
		trip.Landmarks = content.ParseLandmarks(t.landmarks)
	}
	if len(t.interests) != 0 {
		trip.Interests = t.interests
	}

	var err error
	if t.start != "" {
		trip.StartDate, err = parseDate("start", t.start)
		if err != nil {
			return trip, err
		}
	}
	if t.end != "" {
		trip.EndDate, err = parseDate("end", t.end)
		if err != nil {
			return trip, err
		}
	}

	return trip, trip.Validate()
}

func readTrip(path string) (content.Trip, error) {
	var t content.Trip
	f, err := os.Open(path)
	if err != nil {
		return t, journal.Wrap(err, "open trip")
	}
	defer f.Close()

	err = yaml.NewDecoder(f).Decode(&t)
	if err != nil {
		return t, journal.Wrap(err, "read trip %q", path)
	}
	return t, nil
}

func parseDate(name, s string) (time.Time, error) {
	d, err := time.Parse(dateFormat, s)
	if err != nil {
		return d, journal.NewValidationError("invalid %v date %q, use YYYY-MM-DD", name, s)
	}
	return d, nil
}

// build turns the trip into prepared journal content and its plan.
func build(s settings, src tripSource) (*journal.Content, content.Plan, error) {
	t, err := src.Trip()
	if err != nil {
		return nil, nil, err
	}
	gen, err := setupGenerator(s)
	if err != nil {
		return nil, nil, err
	}
	return content.Build(gen, t)
}

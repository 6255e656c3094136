package content

import (
	"strings"

	"github.com/akeil/tripjournal"
	"github.com/akeil/tripjournal/internal/logging"
)

// Prepare returns a copy of c where every optional part is filled in.
//
// The page composer does not check for missing data, so everything it
// prints must be present after this step. Values that are already set are
// kept. The input is never modified.
func Prepare(c journal.Content) *journal.Content {
	out := c
	dest := strings.TrimSpace(c.Destination)
	generic := genericDestination(dest)

	out.Landmarks = copyStrings(c.Landmarks)
	out.Interests = copyStrings(c.Interests)

	if out.TripDays == 0 && !c.StartDate.IsZero() && !c.EndDate.IsZero() {
		out.TripDays = journal.TripDays(c.StartDate, c.EndDate)
		logging.Debug("Computed trip length of %d days", out.TripDays)
	}

	// pre-trip
	pt := &out.PreTrip
	if pt.WelcomeLetter == "" {
		pt.WelcomeLetter = welcomeLetter(c.ChildName, dest)
	}
	if c.PreTrip.Facts == nil {
		pt.Facts = facts(generic)
	} else {
		f := *c.PreTrip.Facts
		f.FunFacts = copyStrings(f.FunFacts)
		f.CulturalHighlights = copyStrings(f.CulturalHighlights)
		if len(f.FunFacts) == 0 {
			f.FunFacts = copyStrings(generic.FunFacts)
		}
		pt.Facts = &f
	}
	if len(pt.Phrases) == 0 {
		pt.Phrases = phrases(generic)
	} else {
		pt.Phrases = append([]journal.Phrase(nil), c.PreTrip.Phrases...)
	}
	if len(pt.Landmarks) == 0 {
		pt.Landmarks = copyStrings(c.Landmarks)
	} else {
		pt.Landmarks = copyStrings(c.PreTrip.Landmarks)
	}
	pt.PackingList = orDefault(c.PreTrip.PackingList, defaultPackingList)
	pt.PreflightPrompts = orDefault(c.PreTrip.PreflightPrompts, preflightPrompts(dest))

	// activities
	a := &out.Activities
	a.WordSearch = orDefault(c.Activities.WordSearch, defaultWordSearch)
	if len(a.Trivia) == 0 {
		a.Trivia = defaultTrivia(Destination{
			Country:  c.Country,
			Language: pt.Facts.Language,
			Currency: pt.Facts.Currency,
		})
	} else {
		a.Trivia = append([]journal.Trivia(nil), c.Activities.Trivia...)
	}
	a.Bingo = orDefault(c.Activities.Bingo, defaultRoadBingo)
	if len(a.WouldYouRather) == 0 {
		a.WouldYouRather = append([]journal.Choice(nil), defaultWouldYouRather...)
	} else {
		a.WouldYouRather = append([]journal.Choice(nil), c.Activities.WouldYouRather...)
	}
	a.Categories = orDefault(c.Activities.Categories, defaultCategories)
	a.ScavengerHunt = orDefault(c.Activities.ScavengerHunt, defaultScavengerHunt)
	a.Tallies = orDefault(c.Activities.Tallies, defaultTallies)

	// daily pages
	if len(c.DailyPages) == 0 && out.TripDays > 0 {
		out.DailyPages = DailyPages(dest, out.TripDays, Prompts{}, nil)
	} else {
		out.DailyPages = make([]journal.DailyPage, len(c.DailyPages))
		for i, d := range c.DailyPages {
			d.Prompts = copyStrings(d.Prompts)
			if d.Day == 0 {
				d.Day = i + 1
			}
			if strings.TrimSpace(d.Location) == "" {
				d.Location = dest
			}
			if len(d.Prompts) == 0 {
				d.Prompts = []string{defaultObservationPrompts[i%len(defaultObservationPrompts)]}
			}
			if d.SketchPrompt == "" {
				d.SketchPrompt = SketchPrompt(d.Day, dest)
			}
			out.DailyPages[i] = d
		}
	}

	out.Closing.ReflectionPrompts = orDefault(c.Closing.ReflectionPrompts, ClosingPrompts)

	return &out
}

func orDefault(s, def []string) []string {
	if len(s) == 0 {
		return copyStrings(def)
	}
	return copyStrings(s)
}

package content

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akeil/tripjournal"
)

func date(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func sampleContent() journal.Content {
	return journal.Content{
		ChildName:   "Emma",
		Destination: "Lisbon",
		Country:     "Portugal",
		StartDate:   date("2025-03-15"),
		EndDate:     date("2025-03-17"),
		TripDays:    3,
		PreTrip: journal.PreTrip{
			Facts: &journal.Facts{
				Language: "Portuguese",
				FunFacts: []string{"Trams are yellow", "Tiles are everywhere"},
			},
			Landmarks: []string{"Belem Tower"},
		},
		DailyPages: []journal.DailyPage{
			{Day: 1, Prompts: []string{"a", "b"}},
			{Day: 2, Prompts: []string{"c", "d"}},
			{Day: 3, Prompts: []string{"e", "f"}},
		},
	}
}

func TestEstimatePages(t *testing.T) {
	cases := map[int]int{1: 22, 3: 26, 7: 34}
	for days, want := range cases {
		assert.Equal(t, want, EstimatePages(days), "days=%d", days)
	}
}

func TestPlanScenario(t *testing.T) {
	c := Prepare(sampleContent())
	require.NoError(t, c.Validate())

	p := NewPlan(c)
	assert.Equal(t, 21, p.Pages())

	want := []journal.Section{
		journal.Cover,
		journal.Welcome,
		journal.AboutTrip,
		journal.FactsSection,
		journal.LandmarksSection,
		journal.ActivitiesSection,
		journal.RoadTrip,
		journal.Daily,
		journal.Reflections,
		journal.Final,
	}
	assert.Equal(t, want, p.Sections())

	var days []int
	for _, s := range p {
		if s.Section == journal.Daily {
			days = append(days, s.Day)
		}
	}
	assert.Equal(t, []int{1, 2, 3}, days)
}

func TestPlanWithoutLandmarks(t *testing.T) {
	in := sampleContent()
	in.PreTrip.Landmarks = nil
	c := Prepare(in)

	p := NewPlan(c)
	assert.Equal(t, 20, p.Pages())
	assert.NotContains(t, p.Sections(), journal.LandmarksSection)
}

func TestPlanIsStable(t *testing.T) {
	c := Prepare(sampleContent())
	assert.Equal(t, NewPlan(c), NewPlan(c))
}

func TestStepString(t *testing.T) {
	assert.Equal(t, "cover", Step{Section: journal.Cover}.String())
	assert.Equal(t, "daily/day-2", Step{Section: journal.Daily, Day: 2}.String())
	assert.Equal(t, "road-trip/3", Step{Section: journal.RoadTrip, Page: 3}.String())
}

func TestPrepareFillsDefaults(t *testing.T) {
	in := journal.Content{
		ChildName:   "Max",
		Destination: "Springfield",
		StartDate:   date("2025-06-01"),
		EndDate:     date("2025-06-02"),
	}
	c := Prepare(in)

	assert.Equal(t, 2, c.TripDays)
	assert.Contains(t, c.PreTrip.WelcomeLetter, "Dear Max")
	assert.Contains(t, c.PreTrip.WelcomeLetter, "Springfield")
	require.NotNil(t, c.PreTrip.Facts)
	assert.Equal(t, "Local language", c.PreTrip.Facts.Language)
	assert.Len(t, c.PreTrip.Facts.FunFacts, 3)
	assert.Len(t, c.PreTrip.Phrases, 3)
	assert.Len(t, c.PreTrip.PackingList, 8)
	assert.Len(t, c.PreTrip.PreflightPrompts, 4)
	assert.Equal(t, defaultWordSearch, c.Activities.WordSearch)
	assert.Len(t, c.Activities.Trivia, 3)
	assert.Len(t, c.Activities.Bingo, 12)
	assert.Len(t, c.Activities.WouldYouRather, 3)
	assert.Len(t, c.Activities.Categories, 6)
	assert.Len(t, c.Activities.ScavengerHunt, 10)
	assert.Len(t, c.Activities.Tallies, 4)
	assert.Equal(t, ClosingPrompts, c.Closing.ReflectionPrompts)

	require.Len(t, c.DailyPages, 2)
	for i, d := range c.DailyPages {
		assert.Equal(t, i+1, d.Day)
		assert.Equal(t, "Springfield", d.Location)
		assert.NotEmpty(t, d.Prompts)
		assert.NotEmpty(t, d.SketchPrompt)
	}
	assert.NoError(t, c.Validate())
}

func TestPrepareKeepsValues(t *testing.T) {
	in := sampleContent()
	in.Activities.WordSearch = []string{"TRAM"}
	in.Closing.ReflectionPrompts = []string{"Best day?"}
	c := Prepare(in)

	assert.Equal(t, "Portuguese", c.PreTrip.Facts.Language)
	assert.Equal(t, []string{"Trams are yellow", "Tiles are everywhere"}, c.PreTrip.Facts.FunFacts)
	assert.Equal(t, []string{"TRAM"}, c.Activities.WordSearch)
	assert.Equal(t, []string{"Best day?"}, c.Closing.ReflectionPrompts)
	assert.Equal(t, []string{"a", "b"}, c.DailyPages[0].Prompts)
}

func TestPrepareDoesNotModifyInput(t *testing.T) {
	in := sampleContent()
	before := sampleContent()

	c := Prepare(in)
	c.DailyPages[0].Prompts[0] = "changed"
	c.PreTrip.Facts.FunFacts[0] = "changed"
	c.PreTrip.Landmarks[0] = "changed"

	assert.Equal(t, before, in)
	assert.Equal(t, "", in.DailyPages[0].Location)
	assert.Equal(t, "", in.PreTrip.WelcomeLetter)
}

func TestPrepareLandmarksFromTrip(t *testing.T) {
	in := sampleContent()
	in.PreTrip.Landmarks = nil
	in.Landmarks = []string{"Castle"}
	c := Prepare(in)
	assert.Equal(t, []string{"Castle"}, c.PreTrip.Landmarks)
}

func TestDailyPagesDefaults(t *testing.T) {
	pages := DailyPages("Rome", 4, Prompts{}, nil)
	require.Len(t, pages, 4)

	obs := defaultObservationPrompts
	refl := defaultReflectionPrompts
	assert.Equal(t, []string{obs[0]}, pages[0].Prompts)
	assert.Equal(t, []string{obs[1], obs[2], refl[1]}, pages[1].Prompts)
	assert.Equal(t, []string{obs[2]}, pages[2].Prompts)
	assert.Equal(t, []string{obs[3], obs[0], refl[3]}, pages[3].Prompts)

	for i, p := range pages {
		assert.Equal(t, i+1, p.Day)
		assert.Equal(t, "Rome", p.Location)
		assert.True(t, p.Mood)
		assert.True(t, p.Weather)
	}
}

func TestDailyPagesInterests(t *testing.T) {
	p := Prompts{
		Interests: map[string][]string{
			"food":    {"food-0", "food-1"},
			"culture": {"culture-0", "culture-1"},
		},
	}
	pages := DailyPages("Tokyo", 4, p, []string{"food", "culture", "unknown"})

	obs := defaultObservationPrompts
	refl := defaultReflectionPrompts
	assert.Equal(t, []string{obs[0], "food-0", "culture-1"}, pages[0].Prompts)
	assert.Equal(t, []string{obs[1], obs[2], refl[1]}, pages[1].Prompts)
	assert.Equal(t, []string{obs[3], obs[0], "culture-0", refl[3]}, pages[3].Prompts)
}

func TestDailyPagesMaxPrompts(t *testing.T) {
	p := Prompts{
		Interests: map[string][]string{
			"culture": {"culture-0", "culture-1"},
			"music":   {"music-0"},
		},
	}
	pages := DailyPages("Vienna", 16, p, []string{"food", "culture", "art", "music"})

	// day 16 collects five prompts, the reflection prompt is cut
	obs := defaultObservationPrompts
	assert.Equal(t, []string{obs[3], obs[0], "culture-0", "music-0"}, pages[15].Prompts)
	for _, page := range pages {
		assert.True(t, len(page.Prompts) <= journal.MaxDailyPrompts, "day %d", page.Day)
	}
}

func TestSketchPromptRotation(t *testing.T) {
	assert.Equal(t, SketchPrompt(1, "Oslo"), SketchPrompt(9, "Oslo"))
	assert.NotEqual(t, SketchPrompt(1, "Oslo"), SketchPrompt(2, "Oslo"))
	assert.Equal(t, "Draw yourself exploring Oslo", SketchPrompt(4, "Oslo"))
	assert.Equal(t, SketchPrompt(1, "Oslo"), SketchPrompt(0, "Oslo"))
}

func TestTravelBingo(t *testing.T) {
	plain := travelBingo(nil)
	assert.Len(t, plain, BingoSize)
	assert.Equal(t, bingoItems, plain)

	withLandmarks := travelBingo([]string{"A", "B", "C", "D"})
	assert.Len(t, withLandmarks, BingoSize)
	assert.Equal(t, []string{"Visit A", "Visit B", "Visit C"}, withLandmarks[13:])
	assert.Contains(t, withLandmarks, "FREE SPACE")
}

func TestParseLandmarks(t *testing.T) {
	got := ParseLandmarks(" Big Ben, ,Tower of London,, London Eye ")
	assert.Equal(t, []string{"Big Ben", "Tower of London", "London Eye"}, got)
	assert.Nil(t, ParseLandmarks(""))
}

func TestBuiltinCatalog(t *testing.T) {
	c, err := BuiltinCatalog()
	require.NoError(t, err)

	d, err := c.Lookup("  PARIS ")
	require.NoError(t, err)
	assert.Equal(t, "Paris", d.Name)
	assert.Equal(t, "France", d.Country)

	_, err = c.Lookup("atlantis")
	assert.True(t, journal.IsNotFound(err))

	assert.Contains(t, c.Names(), "kyoto")
}

func TestLoadCatalogRequiresName(t *testing.T) {
	_, err := LoadCatalog(strings.NewReader("oslo:\n  country: Norway\n"))
	assert.True(t, journal.IsValidationError(err))
}

func TestGenerateFromCatalog(t *testing.T) {
	cat, err := BuiltinCatalog()
	require.NoError(t, err)
	g := NewGenerator(cat)

	c, plan, err := Build(g, Trip{
		ChildName:   "Emma",
		Destination: "tokyo",
		StartDate:   date("2025-03-15"),
		EndDate:     date("2025-03-21"),
		Landmarks:   ParseLandmarks("Tokyo Tower, Senso-ji Temple"),
		Interests:   []string{"food", "culture"},
	})
	require.NoError(t, err)

	assert.Equal(t, "Tokyo", c.Destination)
	assert.Equal(t, "Japan", c.Country)
	assert.Equal(t, 7, c.TripDays)
	assert.Len(t, c.DailyPages, 7)
	assert.Equal(t, "Konnichiwa", c.PreTrip.Phrases[0].Phrase)
	assert.Equal(t, "Japanese", c.PreTrip.Facts.Language)
	assert.Contains(t, c.Activities.Bingo, "Visit Tokyo Tower")
	assert.Equal(t, 4+1+4+4+14+2, plan.Pages())
}

func TestGenerateGenericDestination(t *testing.T) {
	cat, err := BuiltinCatalog()
	require.NoError(t, err)

	c, err := NewGenerator(cat).Generate(Trip{
		ChildName:   "Noah",
		Destination: " Reykjavik ",
		StartDate:   date("2025-08-01"),
		EndDate:     date("2025-08-01"),
		Landmarks:   []string{"Hallgrimskirkja"},
	})
	require.NoError(t, err)

	assert.Equal(t, "Reykjavik", c.Destination)
	assert.Equal(t, 1, c.TripDays)
	assert.Equal(t, "Local currency", c.PreTrip.Facts.Currency)
	assert.Empty(t, c.PreTrip.Landmarks)

	p := Prepare(*c)
	assert.Equal(t, []string{"Hallgrimskirkja"}, p.PreTrip.Landmarks)
}

func TestGenerateRejectsBadTrip(t *testing.T) {
	cat, err := BuiltinCatalog()
	require.NoError(t, err)
	g := NewGenerator(cat)

	cases := []Trip{
		{Destination: "Paris", StartDate: date("2025-01-01"), EndDate: date("2025-01-02")},
		{ChildName: "A", StartDate: date("2025-01-01"), EndDate: date("2025-01-02")},
		{ChildName: "A", Destination: "Paris"},
		{ChildName: "A", Destination: "Paris", StartDate: date("2025-01-03"), EndDate: date("2025-01-02")},
	}
	for i, trip := range cases {
		_, err := g.Generate(trip)
		assert.True(t, journal.IsValidationError(err), "case %d: %v", i, err)
	}
}

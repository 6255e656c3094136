package compose

import (
	"bytes"
	"context"
	"errors"
	"math/rand"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akeil/tripjournal"
	"github.com/akeil/tripjournal/pkg/content"
	"github.com/akeil/tripjournal/pkg/draw"
	"github.com/akeil/tripjournal/pkg/draw/drawtest"
	"github.com/akeil/tripjournal/pkg/theme"
)

func sample() *journal.Content {
	start := time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC)
	return content.Prepare(journal.Content{
		ChildName:   "Emma",
		Destination: "Lisbon",
		Country:     "Portugal",
		StartDate:   start,
		EndDate:     start.AddDate(0, 0, 2),
		TripDays:    3,
		PreTrip: journal.PreTrip{
			Facts: &journal.Facts{
				Language: "Portuguese",
				Currency: "Euro",
				FunFacts: []string{
					"Lisbon is older than Rome.",
					"Yellow trams climb the steep hills.",
				},
			},
			Landmarks: []string{"Belem Tower"},
		},
		DailyPages: []journal.DailyPage{
			{Day: 1, Prompts: []string{"What did you eat?", "Who did you meet?"}},
			{Day: 2, Prompts: []string{"What did you see?", "What made you laugh?"}},
			{Day: 3, Prompts: []string{"What was fun?", "What was hard?"}},
		},
	})
}

type recording struct {
	s      *drawtest.Recorder
	events []Event
}

func (r *recording) kind(k EventKind) []Event {
	var out []Event
	for _, e := range r.events {
		if e.Kind == k {
			out = append(out, e)
		}
	}
	return out
}

func render(t *testing.T, j *journal.Content) *recording {
	t.Helper()
	rec := &recording{s: drawtest.NewRecorder()}
	c := NewComposer(NewSeededContext(42))
	c.Observe(func(e Event) {
		rec.events = append(rec.events, e)
	})
	err := c.Render(j, content.NewPlan(j), rec.s)
	require.NoError(t, err)
	return rec
}

func TestRenderScenario(t *testing.T) {
	j := sample()
	require.Len(t, j.PreTrip.Facts.FunFacts, 2)
	require.Len(t, j.PreTrip.Landmarks, 1)
	for _, d := range j.DailyPages {
		require.Len(t, d.Prompts, 2, "day %d", d.Day)
	}

	rec := render(t, j)
	assert.Equal(t, 21, rec.s.PageNo())

	pages := rec.kind(PageStarted)
	require.Len(t, pages, 21)

	var sections []journal.Section
	for i, e := range pages {
		assert.Equal(t, i+1, e.Page)
		if len(sections) == 0 || sections[len(sections)-1] != e.Section {
			sections = append(sections, e.Section)
		}
	}
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
	assert.Equal(t, want, sections)
	assert.Equal(t, content.NewPlan(sample()).Pages(), rec.s.PageNo())
}

func TestTwoPagesPerDay(t *testing.T) {
	rec := render(t, sample())

	perDay := map[int][]int{}
	for _, e := range rec.kind(PageStarted) {
		if e.Section == journal.Daily {
			perDay[e.Day] = append(perDay[e.Day], e.Page)
		}
	}
	require.Len(t, perDay, 3)
	for day, pages := range perDay {
		require.Len(t, pages, 2, "day %d", day)
		assert.Equal(t, pages[0]+1, pages[1], "day %d", day)
	}
	assert.Equal(t, perDay[1][1]+1, perDay[2][0])
	assert.Equal(t, perDay[2][1]+1, perDay[3][0])
}

func TestTwoPagesPerDayWithLongText(t *testing.T) {
	j := sample()
	long := strings.Repeat("Tell me everything about it. ", 80)
	for i := range j.DailyPages {
		j.DailyPages[i].Prompts = []string{long, long, long, long, long}
		j.DailyPages[i].SketchPrompt = long
	}
	rec := render(t, j)

	count := 0
	for _, e := range rec.kind(PageStarted) {
		if e.Section == journal.Daily {
			count++
		}
	}
	assert.Equal(t, 6, count)
	assert.Equal(t, 21, rec.s.PageNo())
}

func TestLinesStayOnPage(t *testing.T) {
	j := sample()
	j.Closing.ReflectionPrompts = append(j.Closing.ReflectionPrompts, strings.Repeat("word ", 200))
	rec := render(t, j)

	lines := rec.kind(LinePlaced)
	require.NotEmpty(t, lines)
	for _, e := range lines {
		assert.True(t, e.Y <= draw.PageBottom, "line at y=%.1f on page %d (%v)", e.Y, e.Page, e.Section)
	}
}

func TestDecorationsInZones(t *testing.T) {
	for _, dest := range []string{"Tokyo", "Paris", "London", "Maui", "Nairobi", "Lisbon"} {
		j := sample()
		j.Destination = dest
		rec := render(t, j)

		decos := rec.kind(DecorationPlaced)
		require.NotEmpty(t, decos, dest)
		for _, e := range decos {
			z, ok := theme.ZoneByID(e.Zone)
			require.True(t, ok)
			assert.True(t, z.Fits(e.Rect), "%v: %v outside %v", dest, e.Rect, e.Zone)
		}
	}
}

func TestRenderIsRepeatable(t *testing.T) {
	j := sample()
	a := render(t, j)
	b := render(t, j)

	assert.Equal(t, a.s.PageNo(), b.s.PageNo())
	assert.Equal(t, a.kind(PageStarted), b.kind(PageStarted))
	assert.Equal(t, a.s.Texts(), b.s.Texts())
}

func TestRenderDoesNotModifyContent(t *testing.T) {
	j := sample()
	before := *j
	render(t, j)
	assert.Equal(t, before, *j)
}

func TestThemeForDestination(t *testing.T) {
	ctx := NewContext()
	assert.Equal(t, theme.Japan, ctx.themeFor("Kyoto", "Japan"))
	assert.Equal(t, theme.Travel, ctx.themeFor("Lisbon", "Portugal"))

	override := theme.Safari
	ctx.Theme = &override
	assert.Equal(t, theme.Safari, ctx.themeFor("Kyoto", "Japan"))
}

func reflectionLines(rec *recording, block int) int {
	n := 0
	for _, e := range rec.kind(LinePlaced) {
		if e.Section == journal.Reflections && e.Block == block {
			n++
		}
	}
	return n
}

func TestReflectionSpaceIsShared(t *testing.T) {
	short := sample()
	short.Closing.ReflectionPrompts = []string{"Best day?", "Worst day?", "Next trip?"}
	rec := render(t, short)
	assert.Equal(t, 5, reflectionLines(rec, 0))
	assert.Equal(t, reflectionLines(rec, 0), reflectionLines(rec, 2))

	long := sample()
	text := strings.Repeat("word ", 260)
	long.Closing.ReflectionPrompts = []string{text, text, text}
	rec = render(t, long)
	assert.Equal(t, MinFillLines, reflectionLines(rec, 0))
	for i := 0; i < 3; i++ {
		assert.Equal(t, MinFillLines, reflectionLines(rec, i), "block %d", i)
	}
}

func TestSurfaceStateIsReset(t *testing.T) {
	rec := render(t, sample())
	assert.Equal(t, draw.DefaultStyle(), rec.s.State())
	assert.Equal(t, 0, rec.s.Depth())
	assert.NoError(t, rec.s.Err())
}

func TestBookmarks(t *testing.T) {
	rec := render(t, sample())
	marks := rec.s.Bookmarks
	assert.Equal(t, "Cover", marks[0])
	assert.Contains(t, marks, "Daily Journal")
	assert.Contains(t, marks, "Day 2")
	assert.Contains(t, marks, "Day 3 - Sketch & Reflect")
	assert.Equal(t, "Trip Complete!", marks[len(marks)-1])

	prev := 0
	for _, c := range rec.s.Named("Bookmark") {
		level := int(c.Args[0])
		assert.True(t, level <= prev+1, "bookmark %q jumps to level %d", c.Text, level)
		prev = level
	}
}

func TestRenderRejectsBadPlan(t *testing.T) {
	j := sample()
	plan := content.NewPlan(j)
	plan[0], plan[1] = plan[1], plan[0]

	err := NewComposer(nil).Render(j, plan, drawtest.NewRecorder())
	assert.Error(t, err)
}

func TestRenderMissingDay(t *testing.T) {
	j := sample()
	plan := content.NewPlan(j)
	j.DailyPages = j.DailyPages[:2]

	err := NewComposer(nil).Render(j, plan, drawtest.NewRecorder())
	assert.Error(t, err)
}

func TestRenderToPDF(t *testing.T) {
	var buf bytes.Buffer
	err := NewComposer(NewSeededContext(1)).RenderTo(context.Background(), sample(), &buf)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")))
}

func TestRenderToCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var buf bytes.Buffer
	err := NewComposer(nil).RenderTo(ctx, sample(), &buf)
	assert.True(t, errors.Is(err, context.Canceled))
	assert.Equal(t, 0, buf.Len())
}

func TestMeta(t *testing.T) {
	m := Meta(sample())
	assert.Equal(t, "Emma's Travel Journal - Lisbon", m.Title)
	assert.Equal(t, "3 days in Lisbon", m.Subject)
}

func TestMachine(t *testing.T) {
	cover := content.Step{Section: journal.Cover}
	welcome := content.Step{Section: journal.Welcome}
	act := func(n int) content.Step { return content.Step{Section: journal.ActivitiesSection, Page: n} }
	day := func(n int) content.Step { return content.Step{Section: journal.Daily, Day: n} }
	final := content.Step{Section: journal.Final}

	cases := []struct {
		name  string
		steps []content.Step
		ok    bool
	}{
		{"forward", []content.Step{cover, welcome, act(1), act(2), day(1), day(2), final}, true},
		{"skip sections", []content.Step{cover, day(1), final}, true},
		{"backward", []content.Step{cover, welcome, cover}, false},
		{"repeat", []content.Step{cover, welcome, welcome}, false},
		{"skip day", []content.Step{cover, day(1), day(3)}, false},
		{"first day", []content.Step{cover, day(2)}, false},
		{"first page", []content.Step{cover, act(2)}, false},
		{"page twice", []content.Step{act(1), act(1)}, false},
		{"after final", []content.Step{cover, final, day(1)}, false},
		{"final twice", []content.Step{final, final}, false},
	}
	for _, c := range cases {
		var m machine
		var err error
		for _, s := range c.steps {
			err = m.advance(s)
			if err != nil {
				break
			}
		}
		if c.ok {
			assert.NoError(t, err, c.name)
		} else {
			assert.Error(t, err, c.name)
		}
	}
}

func TestFillLines(t *testing.T) {
	cases := []struct {
		top, bottom float64
		want        int
	}{
		{100, 100 + 5*draw.LineHeight, 5},
		{100, 110, MinFillLines},
		{100, 100 + 20*draw.LineHeight, MaxFillLines},
		// minimum reduced so the last line stays on the page
		{draw.PageBottom - draw.LineHeight, draw.PageBottom, 2},
		{draw.PageBottom + 1, draw.PageBottom + 50, 0},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, FillLines(c.top, c.bottom), "%.1f..%.1f", c.top, c.bottom)
	}
}

func TestCursor(t *testing.T) {
	breaks := 0
	cur := NewCursor(500, func() float64 {
		breaks++
		return draw.ContentTop
	})
	assert.False(t, cur.Ensure(50))
	assert.Equal(t, 500.0, cur.Y)
	assert.True(t, cur.Ensure(100))
	assert.Equal(t, draw.ContentTop, cur.Y)
	assert.Equal(t, 1, cur.Pages)
	assert.Equal(t, 1, breaks)

	fixed := NewCursor(500, nil)
	assert.False(t, fixed.Ensure(100))
	assert.Equal(t, 500.0, fixed.Y)
	assert.Equal(t, 530.0, fixed.Advance(20, 10))
}

func TestGridCell(t *testing.T) {
	x, y := GridCell(0, 3, 10, 20, 5, 7)
	assert.Equal(t, 5.0, x)
	assert.Equal(t, 7.0, y)
	x, y = GridCell(4, 3, 10, 20, 5, 7)
	assert.Equal(t, 15.0, x)
	assert.Equal(t, 27.0, y)

	assert.Equal(t, 0, GridRows(0, 3))
	assert.Equal(t, 1, GridRows(3, 3))
	assert.Equal(t, 2, GridRows(4, 3))
}

func TestWordGrid(t *testing.T) {
	words := []string{"Tokyo", "sushi", "temple", "a very long word indeed", "ramen!"}
	g := NewWordGrid(words, 9, rand.New(rand.NewSource(7)))

	require.Len(t, g.Cells, 9)
	for i := 0; i < 9; i++ {
		row := g.Row(i)
		assert.Len(t, row, 9)
		for _, c := range row {
			assert.True(t, c >= 'A' && c <= 'Z', "cell %q", c)
		}
	}
	assert.NotContains(t, g.Placed, "AVERYLONGWORDINDEED")

	for _, w := range g.Placed {
		found := false
		for i := 0; i < 9; i++ {
			if strings.Contains(g.Row(i), w) || strings.Contains(g.Column(i), w) {
				found = true
			}
		}
		assert.True(t, found, "%v not in grid", w)
	}

	again := NewWordGrid(words, 9, rand.New(rand.NewSource(7)))
	assert.Equal(t, g.Cells, again.Cells)
}

func TestScramble(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	for _, w := range []string{"paris", "ab", "temple"} {
		s := Scramble(w, rng)
		assert.NotEqual(t, strings.ToUpper(w), s)
		assert.ElementsMatch(t, []rune(strings.ToUpper(w)), []rune(s))
	}
	assert.Equal(t, "AAA", Scramble("aaa", rng))
	assert.Equal(t, "X", Scramble("x", rng))
}

func TestInitial(t *testing.T) {
	assert.Equal(t, "P", initial("paris"))
	assert.Equal(t, "O", initial("  'Oahu"))
	assert.Equal(t, "A", initial("123"))
}

package memories

import (
	"bytes"
	"fmt"
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

func trip(dest string, days int) *journal.Content {
	start := time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC)
	return content.Prepare(journal.Content{
		ChildName:   "Leo",
		Destination: dest,
		StartDate:   start,
		EndDate:     start.AddDate(0, 0, days-1),
		TripDays:    days,
		Landmarks:   []string{"Tower", "Bridge"},
	})
}

func TestCardDesigns(t *testing.T) {
	c := NewCard(trip("Tokyo", 5))
	assert.Equal(t, theme.Japan, c.Theme())
	assert.Equal(t, "Greetings from Tokyo!", c.Greeting())

	r := drawtest.NewRecorderSize(draw.CardLandscape)
	for _, d := range Designs() {
		c.Draw(r, d)
	}
	require.NoError(t, r.Err())
	assert.Equal(t, len(Designs()), r.PageNo())
	assert.Equal(t, 0, r.Depth())
	assert.Equal(t, draw.DefaultStyle(), r.State())
	assert.Contains(t, r.Texts(), "Love, Leo")
}

func TestParseDesign(t *testing.T) {
	d, err := ParseDesign(" Stamp ")
	require.NoError(t, err)
	assert.Equal(t, Stamp, d)

	_, err = ParseDesign("hologram")
	assert.True(t, journal.IsNotFound(err))
}

func TestSignature(t *testing.T) {
	m := Signature(theme.NewTable(), theme.Paris)
	require.NotEmpty(t, m)
	assert.NotContains(t, m, draw.StarMotif)

	seen := map[draw.Motif]bool{}
	for _, x := range m {
		assert.False(t, seen[x], "%v twice", x)
		seen[x] = true
	}
}

func TestWriteCards(t *testing.T) {
	var buf bytes.Buffer
	err := WriteCards(trip("Paris", 3), &buf, Postcard)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")))
}

func TestDeckSize(t *testing.T) {
	for _, days := range []int{1, 3, 7, 14, 30} {
		d := NewDeck(trip("Nairobi", days))
		n := len(d.Slides)
		assert.True(t, n >= MinSlides && n <= MaxSlides, "%d days: %d slides", days, n)
		assert.Equal(t, "Thank You!", d.Slides[n-1].Title)
		assert.Equal(t, "My Trip to Nairobi", d.Slides[0].Title)
	}
}

func TestDeckDays(t *testing.T) {
	d := NewDeck(trip("Hawaii", 2))
	var titles []string
	for _, s := range d.Slides {
		titles = append(titles, s.Title)
	}
	assert.Contains(t, titles, "Day 1")
	assert.Contains(t, titles, "Day 2")
	assert.Contains(t, titles, "Famous Places")
}

func TestDeckDraw(t *testing.T) {
	d := NewDeck(trip("London", 4))
	r := drawtest.NewRecorderSize(draw.LetterLandscape)
	d.Draw(r)
	require.NoError(t, r.Err())
	assert.Equal(t, len(d.Slides), r.PageNo())
	assert.Equal(t, len(d.Slides), len(r.Bookmarks))
	assert.Contains(t, r.Texts(), fmt.Sprintf("1 / %d", len(d.Slides)))
}

func TestWriteSlides(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteSlides(trip("Orlando", 2), &buf))
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")))
}

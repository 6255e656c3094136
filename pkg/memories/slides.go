package memories

import (
	"fmt"
	"io"

	"github.com/akeil/tripjournal"
	"github.com/akeil/tripjournal/pkg/draw"
	"github.com/akeil/tripjournal/pkg/theme"
)

// Bounds for the number of slides in a deck.
const (
	MinSlides = 8
	MaxSlides = 12
)

// Slide is one page of the school presentation.
type Slide struct {
	Title   string
	Bullets []string
	// Blank leaves space for a photo or drawing instead of bullets.
	Blank bool
}

// Deck is the school presentation about a trip.
type Deck struct {
	j      *journal.Content
	motifs []draw.Motif
	Slides []Slide
}

// NewDeck builds the slides for a journal. The deck always has between
// MinSlides and MaxSlides slides; one "highlight" slide per day is added
// until the maximum is reached.
func NewDeck(j *journal.Content) *Deck {
	th := theme.Classify(j.Destination, j.Country)
	d := &Deck{j: j, motifs: Signature(theme.NewTable(), th)}

	d.add(Slide{Title: fmt.Sprintf("My Trip to %v", j.Destination), Bullets: []string{
		"By " + j.ChildName,
		caption(j),
	}})
	d.add(Slide{Title: "Where I Went", Bullets: where(j)})

	if f := j.PreTrip.Facts; f != nil {
		d.add(Slide{Title: "Quick Facts", Bullets: nonEmpty(
			labelled("Language", f.Language),
			labelled("Currency", f.Currency),
			labelled("Population", f.Population),
		)})
		if len(f.FunFacts) > 0 {
			d.add(Slide{Title: "Did You Know?", Bullets: first(f.FunFacts, 4)})
		}
	}
	if len(j.PreTrip.Landmarks) > 0 {
		d.add(Slide{Title: "Famous Places", Bullets: first(j.PreTrip.Landmarks, 5)})
	}
	if len(j.PreTrip.Phrases) > 0 {
		var words []string
		for _, p := range firstPhrases(j.PreTrip.Phrases, 4) {
			words = append(words, fmt.Sprintf("%v = %v", p.Phrase, p.Meaning))
		}
		d.add(Slide{Title: "Words I Learned", Bullets: words})
	}

	// room for the closing slides
	reserved := 3
	for _, day := range j.DailyPages {
		if len(d.Slides)+reserved >= MaxSlides {
			break
		}
		title := fmt.Sprintf("Day %d", day.Day)
		if day.Location != "" && day.Location != j.Destination {
			title += ": " + day.Location
		}
		d.add(Slide{Title: title, Blank: true})
	}

	d.add(Slide{Title: "My Favorite Memory", Blank: true})
	d.add(Slide{Title: "What I Learned", Bullets: []string{
		"Something new: ________________",
		"Something surprising: ________________",
	}})
	for len(d.Slides) < MinSlides-1 {
		d.add(Slide{Title: "More From My Trip", Blank: true})
	}
	d.add(Slide{Title: "Thank You!", Bullets: []string{"Questions?"}})
	return d
}

func (d *Deck) add(s Slide) {
	d.Slides = append(d.Slides, s)
}

// Draw adds one page per slide to s. s should use draw.LetterLandscape.
func (d *Deck) Draw(s draw.Surface) {
	for i, sl := range d.Slides {
		d.slide(s, i, sl)
	}
}

// WriteSlides renders the deck to a PDF.
func WriteSlides(j *journal.Content, w io.Writer) error {
	pdf := draw.NewPDF(draw.LetterLandscape, draw.Meta{
		Title:  fmt.Sprintf("My Trip to %v", j.Destination),
		Author: j.ChildName,
	})
	NewDeck(j).Draw(pdf)
	err := pdf.Err()
	if err != nil {
		return journal.Wrap(err, "draw slides")
	}
	return pdf.Output(w)
}

func (d *Deck) slide(s draw.Surface, i int, sl Slide) {
	s.AddPage()
	s.Bookmark(sl.Title, 0)
	ps := s.PageSize()
	w, h := ps.Width, ps.Height
	colors := []draw.Color{draw.Primary, draw.Secondary, draw.Accent}
	c := colors[i%len(colors)]

	fill(s, 0, 0, w, h, draw.Cream)
	fill(s, 0, 0, w, 90, c)
	label(s, 40, 30, sl.Title, draw.Bold, 28, draw.White)
	white := draw.White
	if len(d.motifs) > 0 {
		draw.DrawMotif(s, d.motifs[i%len(d.motifs)], w-70, 45, 56, draw.MotifOptions{Color: &white})
	}

	top := 130.0
	switch {
	case sl.Blank:
		st := draw.BoxStyle{Fill: draw.White, Stroke: c, Radius: 12, LineWidth: 2, Dashed: true}
		draw.StyledBox(s, 60, top, w-120, h-top-80, st)
		center(s, 60, top+(h-top-80)/2-8, w-120, "Add a photo or drawing here", draw.Italic, 14, draw.TextLight)
	default:
		y := top
		for _, b := range sl.Bullets {
			draw.Star(s, 60, y+9, 8, 5, 0, c)
			y += para(s, 80, y, w-160, b, draw.Regular, 18, draw.Text) + 18
		}
	}

	label(s, 40, h-40, fmt.Sprintf("%d / %d", i+1, len(d.Slides)), draw.Regular, 10, draw.TextLight)
	draw.Reset(s)
}

func where(j *journal.Content) []string {
	out := []string{fmt.Sprintf("%v days in %v", j.TripDays, j.Destination)}
	if j.Country != "" {
		out = append(out, "Country: "+j.Country)
	}
	seen := map[string]bool{j.Destination: true}
	for _, d := range j.DailyPages {
		if d.Location != "" && !seen[d.Location] {
			seen[d.Location] = true
			out = append(out, "Visited "+d.Location)
		}
	}
	return first(out, 5)
}

func labelled(k, v string) string {
	if v == "" {
		return ""
	}
	return k + ": " + v
}

func nonEmpty(s ...string) []string {
	var out []string
	for _, v := range s {
		if v != "" {
			out = append(out, v)
		}
	}
	return out
}

func first(s []string, n int) []string {
	if len(s) > n {
		return s[:n]
	}
	return s
}

func firstPhrases(p []journal.Phrase, n int) []journal.Phrase {
	if len(p) > n {
		return p[:n]
	}
	return p
}

// Package memories turns a finished journal into keepsakes: holiday cards
// and a slide deck for school.
//
// Both are drawn with the journal primitives and decorated with the
// motifs of the destination theme. They only read the journal content.
package memories

import (
	"fmt"
	"io"
	"strings"

	"github.com/akeil/tripjournal"
	"github.com/akeil/tripjournal/internal/logging"
	"github.com/akeil/tripjournal/pkg/draw"
	"github.com/akeil/tripjournal/pkg/theme"
)

// Design is the layout of a holiday card.
type Design int

const (
	Postcard Design = iota
	Stamp
	Snapshot
	Confetti
)

var designNames = map[Design]string{
	Postcard: "postcard",
	Stamp:    "stamp",
	Snapshot: "snapshot",
	Confetti: "confetti",
}

func (d Design) String() string {
	n, ok := designNames[d]
	if !ok {
		return fmt.Sprintf("design(%d)", int(d))
	}
	return n
}

// Designs lists all card designs.
func Designs() []Design {
	return []Design{Postcard, Stamp, Snapshot, Confetti}
}

// ParseDesign looks up a design by name.
func ParseDesign(s string) (Design, error) {
	for d, n := range designNames {
		if strings.EqualFold(n, strings.TrimSpace(s)) {
			return d, nil
		}
	}
	return Postcard, journal.NewNotFound("no card design %q", s)
}

// Card is a holiday card for one journal.
type Card struct {
	j      *journal.Content
	theme  theme.Theme
	motifs []draw.Motif
}

// NewCard prepares a card for the journal. The theme is derived from the
// destination.
func NewCard(j *journal.Content) *Card {
	th := theme.Classify(j.Destination, j.Country)
	return &Card{
		j:      j,
		theme:  th,
		motifs: Signature(theme.NewTable(), th),
	}
}

// Theme is the theme the card is decorated with.
func (c *Card) Theme() theme.Theme {
	return c.theme
}

// Greeting is the headline of the card.
func (c *Card) Greeting() string {
	return fmt.Sprintf("Greetings from %v!", c.j.Destination)
}

// Draw adds one page with the given design to s.
// s should use draw.CardLandscape.
func (c *Card) Draw(s draw.Surface, d Design) {
	s.AddPage()
	ps := s.PageSize()
	logging.Debug("Draw %v card for %q (%vx%v)", d, c.j.Destination, ps.Width, ps.Height)

	switch d {
	case Stamp:
		c.stamp(s, ps)
	case Snapshot:
		c.snapshot(s, ps)
	case Confetti:
		c.confetti(s, ps)
	default:
		c.postcard(s, ps)
	}
	draw.Reset(s)
}

// WriteCards renders one page per design to a PDF. Without designs, all
// designs are used.
func WriteCards(j *journal.Content, w io.Writer, designs ...Design) error {
	if len(designs) == 0 {
		designs = Designs()
	}
	pdf := draw.NewPDF(draw.CardLandscape, draw.Meta{
		Title:  fmt.Sprintf("Holiday cards - %v", j.Destination),
		Author: "tripjournal",
	})
	c := NewCard(j)
	for _, d := range designs {
		c.Draw(pdf, d)
		err := pdf.Err()
		if err != nil {
			return journal.Wrap(err, "draw %v card", d)
		}
	}
	return pdf.Output(w)
}

func (c *Card) motif(i int) draw.Motif {
	if len(c.motifs) == 0 {
		return draw.StarMotif
	}
	return c.motifs[i%len(c.motifs)]
}

func (c *Card) signedBy() string {
	return "Love, " + c.j.ChildName
}

// postcard has a picture side on the left and a message side on the right.
func (c *Card) postcard(s draw.Surface, ps draw.PageSize) {
	w, h := ps.Width, ps.Height
	fill(s, 0, 0, w, h, draw.Cream)

	half := w / 2
	fill(s, 15, 15, half-25, h-30, draw.Primary)
	for i := 0; i < 3; i++ {
		white := draw.White
		draw.DrawMotif(s, c.motif(i), 15+(half-25)*float64(i+1)/4, h/2+float64(i%2)*40-20, 48,
			draw.MotifOptions{Color: &white})
	}
	center(s, 15, 40, half-25, c.j.Destination, draw.Bold, 22, draw.White)

	// divider between the halves
	rule(s, half, 30, half, h-30, draw.Border)

	x := half + 20
	tw := w - x - 30
	label(s, x, 40, c.Greeting(), draw.Bold, 14, draw.Primary)
	para(s, x, 70, tw, message(c.j), draw.Regular, 10, draw.Text)
	label(s, x, h-70, c.signedBy(), draw.Italic, 11, draw.Secondary)

	draw.Badge(s, w-55, 55, "HI!", 50, draw.Coral)
}

// stamp shows a big postage stamp in the middle.
func (c *Card) stamp(s draw.Surface, ps draw.PageSize) {
	w, h := ps.Width, ps.Height
	fill(s, 0, 0, w, h, draw.SecondaryLight)
	draw.PageBorder(s, draw.BorderDashed)

	sw, sh := 180.0, 200.0
	sx, sy := (w-sw)/2, 55.0
	// perforated edge
	for x := sx; x <= sx+sw; x += 12 {
		dot(s, x, sy, 5, draw.SecondaryLight)
		dot(s, x, sy+sh, 5, draw.SecondaryLight)
	}
	st := draw.BoxStyle{Fill: draw.White, Stroke: draw.Secondary, LineWidth: 2}
	draw.StyledBox(s, sx, sy, sw, sh, st)
	sec := draw.Secondary
	draw.DrawMotif(s, c.motif(0), w/2, sy+85, 90, draw.MotifOptions{Color: &sec})
	center(s, sx, sy+sh-35, sw, strings.ToUpper(c.j.Destination), draw.Bold, 14, draw.Secondary)

	center(s, 0, sy+sh+20, w, c.Greeting(), draw.Bold, 16, draw.Text)
	center(s, 0, sy+sh+45, w, c.signedBy(), draw.Italic, 11, draw.TextLight)
}

// snapshot is an instant photo frame with a drawing area.
func (c *Card) snapshot(s draw.Surface, ps draw.PageSize) {
	w, h := ps.Width, ps.Height
	fill(s, 0, 0, w, h, draw.AccentLight)

	s.Push()
	s.Translate(w/2, h/2)
	s.Rotate(-4)
	st := draw.BoxStyle{Fill: draw.White, Stroke: draw.Border, Shadow: true}
	draw.StyledBox(s, -130, -150, 260, 290, st)
	dashed := draw.BoxStyle{Fill: draw.Cream, Stroke: draw.Accent, Dashed: true, Radius: 4}
	draw.StyledBox(s, -115, -135, 230, 200, dashed)
	draw.Paragraph(s, -115, -45, 230, "Draw your favorite moment", draw.TextStyle{
		Font: draw.Italic, Size: 9, Color: draw.TextLight, Align: draw.AlignCenter,
	})
	draw.Paragraph(s, -115, 85, 230, caption(c.j), draw.TextStyle{
		Font: draw.Bold, Size: 12, Color: draw.Text, Align: draw.AlignCenter,
	})
	s.Pop()

	acc := draw.Accent
	draw.DrawMotif(s, c.motif(0), 50, 50, 40, draw.MotifOptions{Color: &acc, Rotation: -10})
	draw.DrawMotif(s, c.motif(1), w-50, h-50, 40, draw.MotifOptions{Color: &acc, Rotation: 10})
	label(s, 25, h-40, c.signedBy(), draw.Italic, 10, draw.Text)
}

// confetti scatters stars and motifs around a centered greeting.
func (c *Card) confetti(s draw.Surface, ps draw.PageSize) {
	w, h := ps.Width, ps.Height
	fill(s, 0, 0, w, h, draw.White)

	colors := []draw.Color{draw.Primary, draw.Secondary, draw.Accent, draw.Coral, draw.Success}
	// fixed pattern so the card looks the same on every print
	for i := 0; i < 24; i++ {
		x := 20 + float64((i*97)%int(w-40))
		y := 20 + float64((i*61)%int(h-40))
		if y > h/2-70 && y < h/2+70 {
			continue
		}
		draw.Star(s, x, y, 5+float64(i%3)*2, 5, 0, colors[i%len(colors)])
	}
	for i, p := range [][2]float64{{60, h / 2}, {w - 60, h / 2}} {
		col := colors[i]
		draw.DrawMotif(s, c.motif(i), p[0], p[1], 56, draw.MotifOptions{Color: &col})
	}

	center(s, 100, h/2-55, w-200, c.Greeting(), draw.Bold, 20, draw.Primary)
	center(s, 100, h/2-10, w-200, message(c.j), draw.Regular, 10, draw.Text)
	center(s, 100, h/2+40, w-200, c.signedBy(), draw.Italic, 11, draw.Secondary)
}

func message(j *journal.Content) string {
	days := fmt.Sprintf("%d days", j.TripDays)
	if j.TripDays == 1 {
		days = "one day"
	}
	return fmt.Sprintf("I spent %v exploring %v and kept a journal of everything I saw. Wish you were here!",
		days, j.Destination)
}

func caption(j *journal.Content) string {
	start := journal.FormatDate(j.StartDate)
	if start == "" {
		return j.Destination
	}
	return j.Destination + ", " + start
}

// Signature returns the distinct motifs used on the cover of a theme.
func Signature(t *theme.Table, th theme.Theme) []draw.Motif {
	seen := make(map[draw.Motif]bool)
	var out []draw.Motif
	for _, z := range []theme.ZoneID{theme.CoverTop, theme.CoverBottom} {
		for _, d := range t.Decorations(th, z) {
			if d.Motif == draw.StarMotif || seen[d.Motif] {
				continue
			}
			seen[d.Motif] = true
			out = append(out, d.Motif)
		}
	}
	return out
}

func fill(s draw.Surface, x, y, w, h float64, c draw.Color) {
	defer draw.Reset(s)
	s.SetFillColor(c)
	s.Rect(x, y, w, h, draw.Fill)
}

func dot(s draw.Surface, x, y, r float64, c draw.Color) {
	defer draw.Reset(s)
	s.SetFillColor(c)
	s.Circle(x, y, r, draw.Fill)
}

func rule(s draw.Surface, x0, y0, x1, y1 float64, c draw.Color) {
	defer draw.Reset(s)
	s.SetStrokeColor(c)
	s.SetDash(4, 4)
	s.Line(x0, y0, x1, y1)
}

func label(s draw.Surface, x, y float64, text string, f draw.Font, size float64, c draw.Color) {
	draw.Label(s, x, y, text, draw.TextStyle{Font: f, Size: size, Color: c})
}

func para(s draw.Surface, x, y, w float64, text string, f draw.Font, size float64, c draw.Color) float64 {
	return draw.Paragraph(s, x, y, w, text, draw.TextStyle{Font: f, Size: size, Color: c, LineGap: 3})
}

func center(s draw.Surface, x, y, w float64, text string, f draw.Font, size float64, c draw.Color) float64 {
	return draw.Paragraph(s, x, y, w, text, draw.TextStyle{Font: f, Size: size, Color: c, Align: draw.AlignCenter})
}

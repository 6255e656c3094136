package compose

import (
	"context"
	"fmt"
	"io"
	"math/rand"

	"github.com/akeil/tripjournal"
	"github.com/akeil/tripjournal/internal/geom"
	"github.com/akeil/tripjournal/internal/logging"
	"github.com/akeil/tripjournal/pkg/content"
	"github.com/akeil/tripjournal/pkg/draw"
	"github.com/akeil/tripjournal/pkg/theme"
)

// Composer renders prepared journal content onto a drawing surface.
type Composer struct {
	ctx      *Context
	observer Observer
}

// NewComposer creates a composer. A nil context uses defaults.
func NewComposer(ctx *Context) *Composer {
	if ctx == nil {
		ctx = NewContext()
	}
	return &Composer{ctx: ctx}
}

// Observe registers a function that is called for every layout event.
func (c *Composer) Observe(o Observer) {
	c.observer = o
}

// Render draws all steps of the plan onto s.
//
// The content must have been prepared (see content.Prepare); the composer
// does not fill in missing parts. Errors from the surface are reported
// once, after the last page.
func (c *Composer) Render(j *journal.Content, plan content.Plan, s draw.Surface) error {
	return c.render(context.Background(), j, plan, s)
}

// RenderTo renders the journal to a PDF and writes it to w.
// The render stops between pages if ctx is cancelled.
func (c *Composer) RenderTo(ctx context.Context, j *journal.Content, w io.Writer) error {
	pdf := draw.NewPDF(draw.HalfLetter, Meta(j))
	err := c.render(ctx, j, content.NewPlan(j), pdf)
	if err != nil {
		return err
	}
	return pdf.Output(w)
}

// Meta is the PDF document information for a journal.
func Meta(j *journal.Content) draw.Meta {
	return draw.Meta{
		Title:   fmt.Sprintf("%v's Travel Journal - %v", j.ChildName, j.Destination),
		Author:  "tripjournal",
		Subject: fmt.Sprintf("%d days in %v", j.TripDays, j.Destination),
	}
}

func (c *Composer) render(ctx context.Context, j *journal.Content, plan content.Plan, s draw.Surface) error {
	th := c.ctx.themeFor(j.Destination, j.Country)
	logging.Info("Render journal for %q with theme %v, %d steps", j.Destination, th, len(plan))

	r := &renderer{
		s:        s,
		j:        j,
		theme:    th,
		table:    c.ctx.decorations(),
		rng:      c.ctx.rand(),
		observer: c.observer,
	}

	var m machine
	for _, step := range plan {
		err := ctx.Err()
		if err != nil {
			return err
		}
		err = m.advance(step)
		if err != nil {
			return journal.Wrap(err, "invalid plan")
		}
		err = r.step(step)
		if err != nil {
			return err
		}
		// no point in drawing more pages onto a broken surface
		err = s.Err()
		if err != nil {
			return journal.Wrap(err, "render %v", step)
		}
	}

	logging.Debug("Rendered %d pages", s.PageNo())
	return s.Err()
}

// renderer holds the state for rendering one journal.
type renderer struct {
	s        draw.Surface
	j        *journal.Content
	theme    theme.Theme
	table    *theme.Table
	rng      *rand.Rand
	observer Observer
	at       content.Step
	block    int
}

func (r *renderer) step(st content.Step) error {
	r.at = st
	r.block = -1
	logging.Debug("Render %v", st)

	switch st.Section {
	case journal.Cover:
		r.cover()
	case journal.Welcome:
		r.welcome()
	case journal.AboutTrip:
		r.aboutTrip()
	case journal.FactsSection:
		r.facts()
	case journal.LandmarksSection:
		r.landmarks()
	case journal.ActivitiesSection:
		r.activities(st.Page)
	case journal.RoadTrip:
		r.roadTrip(st.Page)
	case journal.Daily:
		if st.Day < 1 || st.Day > len(r.j.DailyPages) {
			return fmt.Errorf("no content for day %d", st.Day)
		}
		r.daily(r.j.DailyPages[st.Day-1])
	case journal.Reflections:
		r.reflections()
	case journal.Final:
		r.final()
	default:
		return fmt.Errorf("cannot render section %v", st.Section)
	}
	return nil
}

// newPage adds a page and reports it.
func (r *renderer) newPage() {
	r.s.AddPage()
	r.emit(Event{Kind: PageStarted, Block: -1})
}

// bookmark adds an outline entry for the current page.
func (r *renderer) bookmark(title string, level int) {
	r.s.Bookmark(title, level)
}

// line draws a writing line. Lines below the page bottom are dropped.
func (r *renderer) line(x, y, w float64, kind draw.LineKind, c draw.Color) {
	if y > draw.PageBottom {
		logging.Warning("Drop writing line at y=%.1f on page %d", y, r.s.PageNo())
		return
	}
	draw.WritingLine(r.s, x, y, w, kind, c)
	r.emit(Event{Kind: LinePlaced, Y: y, Rect: geom.R(x, y, w, 0), Block: r.block})
}

// lines draws n writing lines starting at y and returns the y below them.
func (r *renderer) lines(x, y, w float64, n int, kind draw.LineKind, c draw.Color) float64 {
	for i := 0; i < n; i++ {
		r.line(x, y, w, kind, c)
		y += draw.LineHeight
	}
	return y
}

// decorate draws the theme decorations for a zone.
func (r *renderer) decorate(z theme.ZoneID) {
	for _, d := range r.table.Draw(r.s, r.theme, z) {
		b := d.Bounds()
		r.emit(Event{Kind: DecorationPlaced, Y: b.Y, Rect: b, Zone: z, Block: -1})
	}
}

func (r *renderer) emit(e Event) {
	if r.observer == nil {
		return
	}
	e.Page = r.s.PageNo()
	e.Section = r.at.Section
	e.Day = r.at.Day
	e.Sub = r.at.Page
	r.observer(e)
}

// text helpers

func (r *renderer) label(x, y float64, text string, f draw.Font, size float64, c draw.Color) {
	draw.Label(r.s, x, y, text, draw.TextStyle{Font: f, Size: size, Color: c})
}

func (r *renderer) centered(x, y, w float64, text string, f draw.Font, size float64, c draw.Color) {
	draw.Paragraph(r.s, x, y, w, text, draw.TextStyle{Font: f, Size: size, Color: c, Align: draw.AlignCenter})
}

func (r *renderer) paragraph(x, y, w float64, text string, f draw.Font, size float64, c draw.Color) float64 {
	return draw.Paragraph(r.s, x, y, w, text, draw.TextStyle{Font: f, Size: size, Color: c})
}

func (r *renderer) measure(text string, w float64, f draw.Font, size float64) float64 {
	return draw.Measure(r.s, text, w, draw.TextStyle{Font: f, Size: size})
}

func (r *renderer) banner(text string, y float64, c draw.Color, size float64) float64 {
	st := draw.DefaultBanner()
	st.Color = c
	st.FontSize = size
	return draw.Banner(r.s, text, y, st)
}

func (r *renderer) header(text string, y float64, c draw.Color, size float64) float64 {
	return draw.SectionHeader(r.s, text, y, draw.HeaderStyle{Color: c, FontSize: size})
}

func (r *renderer) box(x, y, w, h float64, fill, stroke draw.Color, radius float64) {
	st := draw.DefaultBox()
	st.Fill = fill
	st.Stroke = stroke
	st.Radius = radius
	draw.StyledBox(r.s, x, y, w, h, st)
}

func (r *renderer) dashedBox(x, y, w, h float64, stroke draw.Color, radius float64) {
	st := draw.DefaultBox()
	st.Fill = draw.White
	st.Stroke = stroke
	st.Radius = radius
	st.Dashed = true
	draw.StyledBox(r.s, x, y, w, h, st)
}

// fill paints a plain rectangle.
func (r *renderer) fill(x, y, w, h float64, c draw.Color) {
	defer draw.Reset(r.s)
	r.s.SetFillColor(c)
	r.s.Rect(x, y, w, h, draw.Fill)
}

func (r *renderer) dot(x, y, rad float64, c draw.Color) {
	defer draw.Reset(r.s)
	r.s.SetFillColor(c)
	r.s.Circle(x, y, rad, draw.Fill)
}

func (r *renderer) rule(x0, y0, x1, y1, width float64, c draw.Color) {
	defer draw.Reset(r.s)
	r.s.SetStrokeColor(c)
	r.s.SetLineWidth(width)
	r.s.Line(x0, y0, x1, y1)
}

// bordered starts a page with a frame and returns the content top.
func (r *renderer) bordered(kind draw.BorderKind) float64 {
	r.newPage()
	draw.PageBorder(r.s, kind)
	return draw.ContentTop
}

// continuation returns a page break func for a cursor, starting a
// bordered page of the given kind.
func (r *renderer) continuation(kind draw.BorderKind) func() float64 {
	return func() float64 {
		return r.bordered(kind)
	}
}

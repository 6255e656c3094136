package draw_test

import (
	"bytes"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akeil/tripjournal/pkg/draw"
	"github.com/akeil/tripjournal/pkg/draw/drawtest"
)

func newPage() *drawtest.Recorder {
	r := drawtest.NewRecorder()
	r.AddPage()
	return r
}

func TestBannerHeight(t *testing.T) {
	r := newPage()
	st := draw.DefaultBanner()
	st.FontSize = 16
	next := draw.Banner(r, "Welcome!", 51, st)
	assert.Equal(t, 51.0+16+16+8, next)
}

func TestSectionHeaderHeight(t *testing.T) {
	r := newPage()
	next := draw.SectionHeader(r, "Before You Go...", 100, draw.DefaultHeader())
	assert.Equal(t, 100.0+12+12, next)
}

func TestPrimitivesResetState(t *testing.T) {
	cases := map[string]func(s draw.Surface){
		"box": func(s draw.Surface) {
			st := draw.DefaultBox()
			st.Shadow = true
			st.Dashed = true
			draw.StyledBox(s, 36, 36, 100, 50, st)
		},
		"banner": func(s draw.Surface) { draw.Banner(s, "Hello", 40, draw.DefaultBanner()) },
		"header": func(s draw.Surface) { draw.SectionHeader(s, "Facts", 40, draw.DefaultHeader()) },
		"dotted line": func(s draw.Surface) {
			draw.WritingLine(s, 36, 100, 200, draw.Dotted, draw.Border)
		},
		"checkbox": func(s draw.Surface) { draw.Checkbox(s, 36, 100, 10, draw.Primary, true) },
		"stars":    func(s draw.Surface) { draw.Divider(s, 100, draw.DividerStars) },
		"badge":    func(s draw.Surface) { draw.Badge(s, 100, 100, "DONE!", 50, draw.Coral) },
		"border":   func(s draw.Surface) { draw.PageBorder(s, draw.BorderDashed) },
		"motif": func(s draw.Surface) {
			c := draw.Accent
			draw.DrawMotif(s, draw.Butterfly, 50, 50, 16, draw.MotifOptions{Rotation: 30, Flip: true, Color: &c})
		},
		"paragraph": func(s draw.Surface) {
			draw.Paragraph(s, 36, 36, 200, "A long text that wraps", draw.TextStyle{Font: draw.Italic, Size: 9, Color: draw.Accent})
		},
	}

	for name, f := range cases {
		r := newPage()
		// start from a dirty state
		r.SetDash(1, 1)
		r.SetAlpha(0.2)
		r.SetFillColor(draw.Coral)

		f(r)

		if r.Depth() != 0 {
			t.Errorf("%s: unbalanced Push/Pop, depth %d", name, r.Depth())
		}
		assert.Equal(t, draw.DefaultStyle(), normalize(r.State()), name)
		assert.NoError(t, r.Err(), name)
	}
}

// normalize maps an empty dash slice to nil.
func normalize(st draw.Style) draw.Style {
	if len(st.Dash) == 0 {
		st.Dash = nil
	}
	return st
}

func TestWritingLinePatterns(t *testing.T) {
	r := newPage()
	draw.WritingLine(r, 36, 100, 200, draw.Dashed, draw.Border)
	lines := r.Named("Line")
	require.Len(t, lines, 1)
	assert.Equal(t, []float64{8, 3}, lines[0].Style.Dash)
	assert.Equal(t, 0.5, lines[0].Style.LineWidth)
	assert.Equal(t, []float64{36, 100, 236, 100}, lines[0].Args)
}

func TestWrap(t *testing.T) {
	width := func(s string) float64 { return float64(len(s)) }

	lines := draw.Wrap("one two three four", 9, width)
	assert.Equal(t, []string{"one two", "three", "four"}, lines)

	// a word longer than the line stays intact
	lines = draw.Wrap("extraordinary", 5, width)
	assert.Equal(t, []string{"extraordinary"}, lines)

	lines = draw.Wrap("first\nsecond", 100, width)
	assert.Equal(t, []string{"first", "second"}, lines)
}

func TestTextHeight(t *testing.T) {
	assert.Equal(t, 0.0, draw.TextHeight(0, 10, 2))
	assert.InDelta(t, 12.0, draw.TextHeight(1, 10, 2), 1e-9)
	assert.InDelta(t, 26.0, draw.TextHeight(2, 10, 2), 1e-9)
}

func TestShade(t *testing.T) {
	c := draw.Hex("#2E86AB")
	assert.Equal(t, draw.Color{R: 0x20, G: 0x5D, B: 0x77}, c.Shade(-30))
	assert.Equal(t, draw.Color{R: 255, G: 255, B: 255}, draw.Hex("#F0F0F0").Shade(50))
	assert.Equal(t, "#2E86AB", c.String())

	_, err := draw.ParseHex("#12345")
	assert.Error(t, err)
}

func TestMotifBounds(t *testing.T) {
	b := draw.MotifBounds(100, 50, 20, 0)
	assert.InDelta(t, 90, b.X, 1e-9)
	assert.InDelta(t, 40, b.Y, 1e-9)
	assert.InDelta(t, 20, b.W, 1e-9)

	// rotated by 45 degrees the footprint grows by sqrt(2)
	b = draw.MotifBounds(100, 50, 20, 45)
	assert.InDelta(t, 28.284, b.W, 1e-3)
	assert.InDelta(t, 28.284, b.H, 1e-3)
}

func TestAllMotifsDraw(t *testing.T) {
	r := newPage()
	for _, m := range draw.Motifs() {
		draw.DrawMotif(r, m, 100, 100, 24, draw.MotifOptions{})
		assert.NotContains(t, m.String(), "motif(", "motif without a name")
	}
	assert.NoError(t, r.Err())
	assert.Equal(t, 0, r.Depth())
}

// extent is the bounding box of the shapes in calls, in the coordinates
// they were recorded with.
type extent struct {
	minX, minY, maxX, maxY float64
}

func (e *extent) add(x, y float64) {
	e.minX = math.Min(e.minX, x)
	e.maxX = math.Max(e.maxX, x)
	e.minY = math.Min(e.minY, y)
	e.maxY = math.Max(e.maxY, y)
}

func shapeExtent(calls []drawtest.Call) extent {
	e := extent{math.Inf(1), math.Inf(1), math.Inf(-1), math.Inf(-1)}
	var px, py float64
	for _, c := range calls {
		a := c.Args
		switch c.Name {
		case "Rect", "RoundedRect":
			e.add(a[0], a[1])
			e.add(a[0]+a[2], a[1]+a[3])
		case "Circle":
			e.add(a[0]-a[2], a[1]-a[2])
			e.add(a[0]+a[2], a[1]+a[2])
		case "Ellipse":
			e.add(a[0]-a[2], a[1]-a[3])
			e.add(a[0]+a[2], a[1]+a[3])
		case "Line":
			e.add(a[0], a[1])
			e.add(a[2], a[3])
		case "MoveTo", "LineTo":
			px, py = a[0], a[1]
			e.add(px, py)
		case "CurveTo":
			// sample the curve, control points may lie outside
			for i := 1; i <= 20; i++ {
				t := float64(i) / 20
				u := 1 - t
				x := u*u*u*px + 3*u*u*t*a[0] + 3*u*t*t*a[2] + t*t*t*a[4]
				y := u*u*u*py + 3*u*u*t*a[1] + 3*u*t*t*a[3] + t*t*t*a[5]
				e.add(x, y)
			}
			px, py = a[4], a[5]
		}
	}
	return e
}

func TestMotifsStayInBox(t *testing.T) {
	const half = 10 + 1e-9
	for _, m := range draw.Motifs() {
		r := newPage()
		draw.DrawMotif(r, m, 0, 0, 20, draw.MotifOptions{})
		e := shapeExtent(r.Calls)
		assert.True(t, e.minX >= -half && e.maxX <= half, "%v x from %.2f to %.2f", m, e.minX, e.maxX)
		assert.True(t, e.minY >= -half && e.maxY <= half, "%v y from %.2f to %.2f", m, e.minY, e.maxY)
	}
}

func TestPDFSurface(t *testing.T) {
	p := draw.NewPDF(draw.HalfLetter, draw.Meta{Title: "Emma's Kyoto Journal"})
	p.AddPage()
	p.Bookmark("Cover", 0)
	draw.PageBorder(p, draw.BorderDouble)
	draw.Banner(p, "Welcome, Emma!", 51, draw.DefaultBanner())
	draw.DrawMotif(p, draw.ToriiGate, 300, 60, 24, draw.MotifOptions{Rotation: -15})
	p.AddPage()
	draw.Paragraph(p, 36, 36, 200, "Café crème and a croissant", draw.Body(10))

	h1 := draw.Measure(p, "short", 200, draw.Body(10))
	h2 := draw.Measure(p, "a much longer text that will certainly need more than one line at this width", 100, draw.Body(10))
	assert.True(t, h2 > h1, "longer text should be taller: %v <= %v", h2, h1)

	assert.Equal(t, 2, p.PageNo())

	var buf bytes.Buffer
	require.NoError(t, p.Output(&buf))
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")))
}

func TestPDFTransformOutsidePush(t *testing.T) {
	p := draw.NewPDF(draw.HalfLetter, draw.Meta{})
	p.AddPage()
	p.Rotate(10)
	assert.Error(t, p.Err())
}

package draw

import (
	"io"
	"strings"
)

// Op selects how a shape is painted.
type Op int

const (
	Fill Op = iota
	Stroke
	FillStroke
)

// Font selects one of the three journal typefaces.
type Font int

const (
	Regular Font = iota
	Bold
	Italic
)

// Align is the horizontal alignment for wrapped text.
type Align int

const (
	AlignLeft Align = iota
	AlignCenter
	AlignRight
)

// Surface is a paged vector canvas.
//
// Coordinates are in points with the origin at the top left of the page
// and y growing downward. Drawing state (colors, line width, dash, alpha,
// font) is sticky until changed. Push and Pop save and restore the complete
// state including transforms; transforms are only valid between Push and
// Pop.
//
// Implementations record the first error and ignore further calls; the
// error is reported by Err and Output.
type Surface interface {
	PageSize() PageSize
	AddPage()
	PageNo() int

	SetFillColor(c Color)
	SetStrokeColor(c Color)
	SetTextColor(c Color)
	SetLineWidth(w float64)
	// SetDash sets a dash pattern, no arguments means a solid line.
	SetDash(pattern ...float64)
	SetAlpha(a float64)
	SetFont(f Font, size float64)

	Rect(x, y, w, h float64, op Op)
	RoundedRect(x, y, w, h, r float64, op Op)
	Circle(x, y, r float64, op Op)
	Ellipse(x, y, rx, ry float64, op Op)
	Line(x0, y0, x1, y1 float64)

	MoveTo(x, y float64)
	LineTo(x, y float64)
	CurveTo(cx0, cy0, cx1, cy1, x, y float64)
	ClosePath()
	DrawPath(op Op)

	// Text draws a single line with its top left corner at x, y.
	Text(x, y float64, s string)
	// TextBox draws s wrapped to width w and returns the height used.
	TextBox(x, y, w float64, s string, align Align, lineGap float64) float64
	StringWidth(s string) float64
	// HeightOfString measures the height of s wrapped to width w.
	HeightOfString(s string, w, lineGap float64) float64

	Push()
	Pop()
	Translate(x, y float64)
	// Rotate turns clockwise by deg degrees around the current origin.
	Rotate(deg float64)
	Scale(sx, sy float64)

	// Bookmark adds an outline entry pointing to the current page.
	Bookmark(title string, level int)

	Err() error
	Output(w io.Writer) error
}

// Style is the complete sticky drawing state of a surface.
type Style struct {
	Fill      Color
	Stroke    Color
	Text      Color
	LineWidth float64
	Dash      []float64
	Alpha     float64
	Font      Font
	FontSize  float64
}

// DefaultStyle is the state every primitive leaves behind.
func DefaultStyle() Style {
	return Style{
		Fill:      Text,
		Stroke:    Border,
		Text:      Text,
		LineWidth: 1,
		Alpha:     1,
		Font:      Regular,
		FontSize:  10,
	}
}

// Reset restores the default drawing state.
func Reset(s Surface) {
	Apply(s, DefaultStyle())
}

// Apply sets every property of st on the surface.
func Apply(s Surface, st Style) {
	s.SetFillColor(st.Fill)
	s.SetStrokeColor(st.Stroke)
	s.SetTextColor(st.Text)
	s.SetLineWidth(st.LineWidth)
	s.SetDash(st.Dash...)
	s.SetAlpha(st.Alpha)
	s.SetFont(st.Font, st.FontSize)
}

// LineHeightFactor relates font size to the height of a text line.
const LineHeightFactor = 1.2

// Wrap breaks s into lines no wider than w as measured by width.
// Explicit newlines start a new line. A single word wider than w gets a
// line of its own and is not broken.
func Wrap(s string, w float64, width func(string) float64) []string {
	var lines []string
	for _, para := range strings.Split(s, "\n") {
		words := strings.Fields(para)
		if len(words) == 0 {
			lines = append(lines, "")
			continue
		}
		line := words[0]
		for _, word := range words[1:] {
			candidate := line + " " + word
			if width(candidate) <= w {
				line = candidate
				continue
			}
			lines = append(lines, line)
			line = word
		}
		lines = append(lines, line)
	}
	return lines
}

// TextHeight is the height of n lines at the given font size.
func TextHeight(n int, size, lineGap float64) float64 {
	if n <= 0 {
		return 0
	}
	return float64(n)*size*LineHeightFactor + float64(n-1)*lineGap
}

// alignOffset returns the x offset for a line of width lw in a box of width w.
func alignOffset(a Align, w, lw float64) float64 {
	switch a {
	case AlignCenter:
		return (w - lw) / 2
	case AlignRight:
		return w - lw
	default:
		return 0
	}
}

// Package drawtest provides a recording draw.Surface for tests.
package drawtest

import (
	"fmt"
	"io"

	"github.com/akeil/tripjournal/pkg/draw"
)

// Call is one recorded drawing operation.
type Call struct {
	Page  int
	Name  string
	Args  []float64
	Text  string
	Style draw.Style
	Depth int
}

// Recorder is a draw.Surface that records calls instead of drawing.
//
// Text is measured with a fixed advance of half the font size per rune.
type Recorder struct {
	Size      draw.PageSize
	Calls     []Call
	Bookmarks []string
	page      int
	state     draw.Style
	stack     []draw.Style
	err       error
}

// NewRecorder returns a recorder with the journal page size.
func NewRecorder() *Recorder {
	return NewRecorderSize(draw.HalfLetter)
}

// NewRecorderSize returns a recorder with the given page size.
func NewRecorderSize(size draw.PageSize) *Recorder {
	return &Recorder{Size: size, state: draw.DefaultStyle()}
}

// State returns the current drawing state.
func (r *Recorder) State() draw.Style {
	return r.state
}

// Depth returns the number of open Push calls.
func (r *Recorder) Depth() int {
	return len(r.stack)
}

// Named returns all calls with the given name.
func (r *Recorder) Named(name string) []Call {
	var out []Call
	for _, c := range r.Calls {
		if c.Name == name {
			out = append(out, c)
		}
	}
	return out
}

// Texts returns the text of all Text calls in order.
func (r *Recorder) Texts() []string {
	var out []string
	for _, c := range r.Named("Text") {
		out = append(out, c.Text)
	}
	return out
}

func (r *Recorder) record(name, text string, args ...float64) {
	r.Calls = append(r.Calls, Call{
		Page:  r.page,
		Name:  name,
		Args:  args,
		Text:  text,
		Style: r.state,
		Depth: len(r.stack),
	})
}

func (r *Recorder) PageSize() draw.PageSize { return r.Size }

func (r *Recorder) AddPage() {
	if len(r.stack) != 0 {
		r.fail("AddPage with %d open Push calls", len(r.stack))
	}
	r.page++
	r.record("AddPage", "")
}

func (r *Recorder) PageNo() int { return r.page }

func (r *Recorder) SetFillColor(c draw.Color)   { r.state.Fill = c }
func (r *Recorder) SetStrokeColor(c draw.Color) { r.state.Stroke = c }
func (r *Recorder) SetTextColor(c draw.Color)   { r.state.Text = c }
func (r *Recorder) SetLineWidth(w float64)      { r.state.LineWidth = w }
func (r *Recorder) SetAlpha(a float64)          { r.state.Alpha = a }

func (r *Recorder) SetDash(pattern ...float64) {
	r.state.Dash = append([]float64(nil), pattern...)
}

func (r *Recorder) SetFont(f draw.Font, size float64) {
	r.state.Font = f
	r.state.FontSize = size
}

func (r *Recorder) Rect(x, y, w, h float64, op draw.Op) {
	r.record("Rect", "", x, y, w, h, float64(op))
}

func (r *Recorder) RoundedRect(x, y, w, h, rad float64, op draw.Op) {
	r.record("RoundedRect", "", x, y, w, h, rad, float64(op))
}

func (r *Recorder) Circle(x, y, rad float64, op draw.Op) {
	r.record("Circle", "", x, y, rad, float64(op))
}

func (r *Recorder) Ellipse(x, y, rx, ry float64, op draw.Op) {
	r.record("Ellipse", "", x, y, rx, ry, float64(op))
}

func (r *Recorder) Line(x0, y0, x1, y1 float64) {
	r.record("Line", "", x0, y0, x1, y1)
}

func (r *Recorder) MoveTo(x, y float64) { r.record("MoveTo", "", x, y) }
func (r *Recorder) LineTo(x, y float64) { r.record("LineTo", "", x, y) }

func (r *Recorder) CurveTo(cx0, cy0, cx1, cy1, x, y float64) {
	r.record("CurveTo", "", cx0, cy0, cx1, cy1, x, y)
}

func (r *Recorder) ClosePath()         { r.record("ClosePath", "") }
func (r *Recorder) DrawPath(op draw.Op) { r.record("DrawPath", "", float64(op)) }

func (r *Recorder) Text(x, y float64, s string) {
	r.record("Text", s, x, y)
}

func (r *Recorder) TextBox(x, y, w float64, s string, align draw.Align, lineGap float64) float64 {
	lines := draw.Wrap(s, w, r.StringWidth)
	lh := r.state.FontSize * draw.LineHeightFactor
	for i, line := range lines {
		r.Text(x, y+float64(i)*(lh+lineGap), line)
	}
	return draw.TextHeight(len(lines), r.state.FontSize, lineGap)
}

func (r *Recorder) StringWidth(s string) float64 {
	return float64(len([]rune(s))) * r.state.FontSize * 0.5
}

func (r *Recorder) HeightOfString(s string, w, lineGap float64) float64 {
	lines := draw.Wrap(s, w, r.StringWidth)
	return draw.TextHeight(len(lines), r.state.FontSize, lineGap)
}

func (r *Recorder) Push() {
	r.stack = append(r.stack, r.state)
	r.record("Push", "")
}

func (r *Recorder) Pop() {
	n := len(r.stack)
	if n == 0 {
		r.fail("Pop without Push")
		return
	}
	r.state = r.stack[n-1]
	r.stack = r.stack[:n-1]
	r.record("Pop", "")
}

func (r *Recorder) Translate(x, y float64) { r.transform("Translate", x, y) }
func (r *Recorder) Rotate(deg float64)     { r.transform("Rotate", deg) }
func (r *Recorder) Scale(sx, sy float64)   { r.transform("Scale", sx, sy) }

func (r *Recorder) transform(name string, args ...float64) {
	if len(r.stack) == 0 {
		r.fail("%s outside of Push/Pop", name)
	}
	r.record(name, "", args...)
}

func (r *Recorder) Bookmark(title string, level int) {
	r.Bookmarks = append(r.Bookmarks, title)
	r.record("Bookmark", title, float64(level))
}

func (r *Recorder) Err() error { return r.err }

// Output writes a one line summary.
func (r *Recorder) Output(w io.Writer) error {
	if r.err != nil {
		return r.err
	}
	_, err := fmt.Fprintf(w, "%d pages, %d calls\n", r.page, len(r.Calls))
	return err
}

func (r *Recorder) fail(msg string, v ...interface{}) {
	if r.err == nil {
		r.err = fmt.Errorf(msg, v...)
	}
}

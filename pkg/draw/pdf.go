package draw

import (
	"io"
	"time"

	"github.com/jung-kurt/gofpdf"

	"github.com/akeil/tripjournal/internal/geom"
	"github.com/akeil/tripjournal/internal/logging"
)

// baseline is the distance from the top of a text line to its baseline,
// relative to the font size.
const baseline = 0.78

var pdfFonts = map[Font]string{
	Regular: "",
	Bold:    "B",
	Italic:  "I",
}

// Meta is document metadata for PDF output.
type Meta struct {
	Title   string
	Author  string
	Subject string
	Created time.Time
}

// PDF is a Surface that produces a PDF document.
type PDF struct {
	pdf   *gofpdf.Fpdf
	size  PageSize
	tr    func(string) string
	state Style
	stack []Style
}

// NewPDF sets up an empty PDF document with the given page size.
func NewPDF(size PageSize, meta Meta) *PDF {
	logging.Debug("Setup PDF with page size %v (%vx%v)", size.Name, size.Width, size.Height)
	pdf := gofpdf.NewCustom(&gofpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "pt",
		Size:           gofpdf.SizeType{Wd: size.Width, Ht: size.Height},
	})

	pdf.SetMargins(0, 0, 0) // left, top, right
	pdf.SetAutoPageBreak(false, 0)
	pdf.SetProducer("tripjournal", true)
	pdf.SetCreator("tripjournal", true)
	if meta.Title != "" {
		pdf.SetTitle(meta.Title, true)
	}
	if meta.Author != "" {
		pdf.SetAuthor(meta.Author, true)
	}
	if meta.Subject != "" {
		pdf.SetSubject(meta.Subject, true)
	}
	if !meta.Created.IsZero() {
		pdf.SetCreationDate(meta.Created.UTC())
	}

	p := &PDF{
		pdf:  pdf,
		size: size,
		tr:   pdf.UnicodeTranslatorFromDescriptor(""),
	}
	p.state = DefaultStyle()
	pdf.SetFont("Helvetica", "", p.state.FontSize)
	return p
}

func (p *PDF) PageSize() PageSize {
	return p.size
}

func (p *PDF) AddPage() {
	if len(p.stack) != 0 {
		p.pdf.SetErrorf("new page with %d unbalanced Push calls", len(p.stack))
		return
	}
	p.pdf.AddPage()
	// new pages start with a fresh graphics state
	p.apply(p.state)
}

func (p *PDF) PageNo() int {
	return p.pdf.PageNo()
}

func (p *PDF) SetFillColor(c Color) {
	p.state.Fill = c
	if !p.live() {
		return
	}
	p.pdf.SetFillColor(int(c.R), int(c.G), int(c.B))
}

func (p *PDF) SetStrokeColor(c Color) {
	p.state.Stroke = c
	if !p.live() {
		return
	}
	p.pdf.SetDrawColor(int(c.R), int(c.G), int(c.B))
}

func (p *PDF) SetTextColor(c Color) {
	p.state.Text = c
	if !p.live() {
		return
	}
	p.pdf.SetTextColor(int(c.R), int(c.G), int(c.B))
}

func (p *PDF) SetLineWidth(w float64) {
	p.state.LineWidth = w
	if !p.live() {
		return
	}
	p.pdf.SetLineWidth(w)
}

func (p *PDF) SetDash(pattern ...float64) {
	p.state.Dash = append([]float64(nil), pattern...)
	if !p.live() {
		return
	}
	if len(pattern) == 0 {
		p.pdf.SetDashPattern([]float64{}, 0)
		return
	}
	p.pdf.SetDashPattern(pattern, 0)
}

func (p *PDF) SetAlpha(a float64) {
	p.state.Alpha = a
	if !p.live() {
		return
	}
	p.pdf.SetAlpha(a, "Normal")
}

func (p *PDF) SetFont(f Font, size float64) {
	p.state.Font = f
	p.state.FontSize = size
	p.pdf.SetFont("Helvetica", pdfFonts[f], size)
}

func (p *PDF) Rect(x, y, w, h float64, op Op) {
	p.pdf.Rect(x, y, w, h, pdfStyle(op))
}

func (p *PDF) RoundedRect(x, y, w, h, r float64, op Op) {
	roundedRectPath(p, x, y, w, h, r)
	p.DrawPath(op)
}

func (p *PDF) Circle(x, y, r float64, op Op) {
	p.pdf.Circle(x, y, r, pdfStyle(op))
}

func (p *PDF) Ellipse(x, y, rx, ry float64, op Op) {
	p.pdf.Ellipse(x, y, rx, ry, 0, pdfStyle(op))
}

func (p *PDF) Line(x0, y0, x1, y1 float64) {
	p.pdf.Line(x0, y0, x1, y1)
}

func (p *PDF) MoveTo(x, y float64) {
	p.pdf.MoveTo(x, y)
}

func (p *PDF) LineTo(x, y float64) {
	p.pdf.LineTo(x, y)
}

func (p *PDF) CurveTo(cx0, cy0, cx1, cy1, x, y float64) {
	p.pdf.CurveBezierCubicTo(cx0, cy0, cx1, cy1, x, y)
}

func (p *PDF) ClosePath() {
	p.pdf.ClosePath()
}

func (p *PDF) DrawPath(op Op) {
	p.pdf.DrawPath(pdfStyle(op))
}

func (p *PDF) Text(x, y float64, s string) {
	p.pdf.Text(x, y+p.state.FontSize*baseline, p.tr(s))
}

func (p *PDF) TextBox(x, y, w float64, s string, align Align, lineGap float64) float64 {
	return textBox(p, x, y, w, s, align, p.state.FontSize, lineGap)
}

func (p *PDF) StringWidth(s string) float64 {
	return p.pdf.GetStringWidth(p.tr(s))
}

func (p *PDF) HeightOfString(s string, w, lineGap float64) float64 {
	lines := Wrap(s, w, p.StringWidth)
	return TextHeight(len(lines), p.state.FontSize, lineGap)
}

func (p *PDF) Push() {
	p.stack = append(p.stack, p.state)
	p.pdf.TransformBegin()
}

func (p *PDF) Pop() {
	n := len(p.stack)
	if n == 0 {
		p.pdf.SetErrorf("Pop without matching Push")
		return
	}
	p.pdf.TransformEnd()
	st := p.stack[n-1]
	p.stack = p.stack[:n-1]
	// the PDF graphics state is restored, but gofpdf keeps its own copy
	// of colors and fonts; set them again so both agree
	p.apply(st)
}

func (p *PDF) Translate(x, y float64) {
	p.transform(geom.Translation(x, y))
}

func (p *PDF) Rotate(deg float64) {
	p.transform(geom.Rotation(geom.Radians(deg)))
}

func (p *PDF) Scale(sx, sy float64) {
	p.transform(geom.Scaling(sx, sy))
}

// transform appends m (given in top-down page space) to the current
// transform. gofpdf flips the y axis when it writes coordinates, so m is
// conjugated with that flip before it goes into the content stream.
func (p *PDF) transform(m geom.Matrix) {
	if len(p.stack) == 0 {
		p.pdf.SetErrorf("transform outside of Push/Pop")
		return
	}
	flip := geom.Matrix{
		1, 0, 0,
		0, -1, p.size.Height,
		0, 0, 1,
	}
	c := geom.Multiply(geom.Multiply(flip, m), flip)
	p.pdf.Transform(gofpdf.TransformMatrix{
		A: c[0], B: c[3],
		C: c[1], D: c[4],
		E: c[2], F: c[5],
	})
}

func (p *PDF) Bookmark(title string, level int) {
	p.pdf.Bookmark(p.tr(title), level, 0)
}

func (p *PDF) Err() error {
	return p.pdf.Error()
}

// Output writes the finished document to w and closes it.
func (p *PDF) Output(w io.Writer) error {
	if len(p.stack) != 0 {
		p.pdf.SetErrorf("output with %d unbalanced Push calls", len(p.stack))
	}
	return p.pdf.Output(w)
}

func (p *PDF) apply(st Style) {
	p.SetFillColor(st.Fill)
	p.SetStrokeColor(st.Stroke)
	p.SetTextColor(st.Text)
	p.SetLineWidth(st.LineWidth)
	p.SetDash(st.Dash...)
	p.SetAlpha(st.Alpha)
	p.SetFont(st.Font, st.FontSize)
}

// live tells whether a page is open. State set before the first page is
// only recorded and written out by AddPage.
func (p *PDF) live() bool {
	return p.pdf.PageNo() > 0
}

func pdfStyle(op Op) string {
	switch op {
	case Fill:
		return "F"
	case Stroke:
		return "D"
	default:
		return "FD"
	}
}

package draw

import (
	"math"
	"strconv"
)

// Every primitive sets the state it needs and calls Reset before it
// returns, so callers never inherit a stray fill or dash.

// BoxStyle configures StyledBox.
type BoxStyle struct {
	Fill      Color
	Stroke    Color
	Radius    float64
	LineWidth float64
	Shadow    bool
	Dashed    bool
	NoFill    bool
}

// DefaultBox is a cream box with a light border.
func DefaultBox() BoxStyle {
	return BoxStyle{Fill: Cream, Stroke: Border, Radius: 8, LineWidth: 1}
}

// StyledBox draws a rounded box at x, y. Its footprint is exactly w x h.
func StyledBox(s Surface, x, y, w, h float64, st BoxStyle) {
	defer Reset(s)
	if st.Shadow {
		s.SetAlpha(0.3)
		s.SetFillColor(st.Stroke)
		s.RoundedRect(x+3, y+3, w-3, h-3, st.Radius, Fill)
		s.SetAlpha(1)
	}
	s.SetFillColor(st.Fill)
	s.SetStrokeColor(st.Stroke)
	lw := st.LineWidth
	if lw == 0 {
		lw = 1
	}
	s.SetLineWidth(lw)
	if st.Dashed {
		s.SetDash(5, 3)
	} else {
		s.SetDash()
	}
	op := FillStroke
	if st.NoFill {
		op = Stroke
	}
	s.RoundedRect(x, y, w, h, st.Radius, op)
}

// BannerStyle configures Banner.
type BannerStyle struct {
	Color     Color
	TextColor Color
	FontSize  float64
	Width     float64
}

// DefaultBanner is the primary colored ribbon.
func DefaultBanner() BannerStyle {
	return BannerStyle{Color: Primary, TextColor: White, FontSize: 14, Width: ContentWidth - 20}
}

// BannerHeight is the height of the ribbon for a font size.
func BannerHeight(fontSize float64) float64 {
	return fontSize + 16
}

// Banner draws a ribbon with folded ends across the content area and
// returns the y position below it.
func Banner(s Surface, text string, y float64, st BannerStyle) float64 {
	defer Reset(s)
	x := Margin + 10
	h := BannerHeight(st.FontSize)
	w := st.Width
	tail := 12.0
	fold := st.Color.Shade(-30)

	// tails
	s.SetFillColor(fold)
	s.MoveTo(x, y+4)
	s.LineTo(x-tail, y+4)
	s.LineTo(x-tail+6, y+4+h/2)
	s.LineTo(x-tail, y+4+h)
	s.LineTo(x, y+4+h)
	s.ClosePath()
	s.DrawPath(Fill)

	s.MoveTo(x+w, y+4)
	s.LineTo(x+w+tail, y+4)
	s.LineTo(x+w+tail-6, y+4+h/2)
	s.LineTo(x+w+tail, y+4+h)
	s.LineTo(x+w, y+4+h)
	s.ClosePath()
	s.DrawPath(Fill)

	s.SetFillColor(st.Color)
	s.Rect(x, y, w, h, Fill)

	s.SetFont(Bold, st.FontSize)
	s.SetTextColor(st.TextColor)
	s.TextBox(x, y+8, w, text, AlignCenter, 0)

	return y + h + 8
}

// HeaderStyle configures SectionHeader.
type HeaderStyle struct {
	Color    Color
	FontSize float64
}

// DefaultHeader is the primary colored section header.
func DefaultHeader() HeaderStyle {
	return HeaderStyle{Color: Primary, FontSize: 12}
}

// SectionHeader draws a heading with an underline and a dot at its end.
// Returns the y position below it.
func SectionHeader(s Surface, text string, y float64, st HeaderStyle) float64 {
	defer Reset(s)
	s.SetFont(Bold, st.FontSize)
	s.SetTextColor(st.Color)
	s.Text(Margin, y, text)
	tw := s.StringWidth(text)

	ly := y + st.FontSize + 2
	s.SetStrokeColor(st.Color)
	s.SetLineWidth(2)
	s.Line(Margin, ly, Margin+tw+20, ly)

	s.SetFillColor(Secondary)
	s.Circle(Margin+tw+23, ly, 3, Fill)

	return ly + 10
}

// LineKind selects the pattern of a writing line.
type LineKind int

const (
	Dashed LineKind = iota
	Dotted
	Solid
)

// WritingLine draws a rule to write on.
func WritingLine(s Surface, x, y, w float64, kind LineKind, c Color) {
	defer Reset(s)
	s.SetStrokeColor(c)
	s.SetLineWidth(0.5)
	switch kind {
	case Dashed:
		s.SetDash(8, 3)
	case Dotted:
		s.SetDash(1, 3)
	default:
		s.SetDash()
	}
	s.Line(x, y, x+w, y)
}

// Checkbox draws an empty square or round checkbox.
func Checkbox(s Surface, x, y, size float64, c Color, round bool) {
	defer Reset(s)
	s.SetStrokeColor(c)
	s.SetLineWidth(1)
	s.SetDash()
	if round {
		s.Circle(x+size/2, y+size/2, size/2, Stroke)
		return
	}
	s.RoundedRect(x, y, size, size, 2, Stroke)
}

// DividerKind selects the divider ornament.
type DividerKind int

const (
	DividerDots DividerKind = iota
	DividerStars
	DividerLine
)

// Divider draws a horizontal ornament centered on the page at y.
func Divider(s Surface, y float64, kind DividerKind) {
	defer Reset(s)
	cx := PageWidth / 2
	switch kind {
	case DividerDots:
		colors := []Color{Primary, Secondary, Accent, Secondary, Primary}
		for i, c := range colors {
			s.SetFillColor(c)
			s.Circle(cx+float64(i-2)*15, y, 3, Fill)
		}
	case DividerStars:
		s.SetStrokeColor(Border)
		s.SetLineWidth(1)
		s.Line(Margin+20, y, cx-40, y)
		s.Line(cx+40, y, PageWidth-Margin-20, y)
		for i := -1; i <= 1; i++ {
			Star(s, cx+float64(i)*20, y, 6, 5, 0, Secondary)
		}
	default:
		s.SetStrokeColor(Border)
		s.SetLineWidth(1)
		s.Line(Margin, y, PageWidth-Margin, y)
		s.SetFillColor(Primary)
		diamond(s, cx, y, 4)
	}
}

// Star draws a filled star with the given number of points.
// innerR of 0 uses 40% of the outer radius.
func Star(s Surface, cx, cy, outerR float64, points int, innerR float64, c Color) {
	defer Reset(s)
	if points < 3 {
		points = 5
	}
	if innerR == 0 {
		innerR = outerR * 0.4
	}
	s.SetFillColor(c)
	step := math.Pi / float64(points)
	for i := 0; i < 2*points; i++ {
		r := outerR
		if i%2 == 1 {
			r = innerR
		}
		a := -math.Pi/2 + float64(i)*step
		x := cx + r*math.Cos(a)
		y := cy + r*math.Sin(a)
		if i == 0 {
			s.MoveTo(x, y)
		} else {
			s.LineTo(x, y)
		}
	}
	s.ClosePath()
	s.DrawPath(Fill)
}

// Badge draws a scalloped seal centered on cx, cy with a short label.
func Badge(s Surface, cx, cy float64, text string, size float64, c Color) {
	defer Reset(s)
	r := size / 2
	n := 12
	s.SetFillColor(c)
	for i := 0; i < n; i++ {
		a := 2 * math.Pi * float64(i) / float64(n)
		s.Circle(cx+r*0.82*math.Cos(a), cy+r*0.82*math.Sin(a), r*0.22, Fill)
	}
	s.Circle(cx, cy, r*0.85, Fill)
	s.SetStrokeColor(White)
	s.SetLineWidth(1)
	s.SetDash(2, 2)
	s.Circle(cx, cy, r*0.68, Stroke)

	fs := size / 4
	s.SetFont(Bold, fs)
	s.SetTextColor(White)
	s.Text(cx-s.StringWidth(text)/2, cy-fs*LineHeightFactor/2, text)
}

// NumberBadge draws a small filled circle with a number.
func NumberBadge(s Surface, cx, cy, r float64, n int, c Color) {
	defer Reset(s)
	s.SetFillColor(c)
	s.Circle(cx, cy, r, Fill)
	label := strconv.Itoa(n)
	fs := r * 1.1
	s.SetFont(Bold, fs)
	s.SetTextColor(White)
	s.Text(cx-s.StringWidth(label)/2, cy-fs*LineHeightFactor/2, label)
}

// BorderKind selects the page frame.
type BorderKind int

const (
	BorderDouble BorderKind = iota
	BorderDashed
	BorderDotted
)

// BorderInset is the distance of the page frame from the paper edge.
const BorderInset = 12.0

// PageBorder frames the page with corner diamonds.
func PageBorder(s Surface, kind BorderKind) {
	defer Reset(s)
	ps := s.PageSize()
	in := BorderInset
	w := ps.Width - 2*in
	h := ps.Height - 2*in

	s.SetStrokeColor(PrimaryLight)
	switch kind {
	case BorderDouble:
		s.SetLineWidth(2)
		s.Rect(in, in, w, h, Stroke)
		s.SetLineWidth(0.5)
		s.Rect(in+4, in+4, w-8, h-8, Stroke)
	case BorderDashed:
		s.SetLineWidth(1.5)
		s.SetDash(10, 5)
		s.Rect(in, in, w, h, Stroke)
	default:
		s.SetLineWidth(2)
		s.SetDash(1, 4)
		s.Rect(in, in, w, h, Stroke)
	}

	s.SetFillColor(Secondary)
	for _, p := range [][2]float64{{in, in}, {in + w, in}, {in, in + h}, {in + w, in + h}} {
		diamond(s, p[0], p[1], 8)
	}
}

func diamond(s Surface, cx, cy, size float64) {
	h := size / 2
	s.MoveTo(cx, cy-h)
	s.LineTo(cx+h, cy)
	s.LineTo(cx, cy+h)
	s.LineTo(cx-h, cy)
	s.ClosePath()
	s.DrawPath(Fill)
}

// TextStyle configures Label, Paragraph and Measure.
type TextStyle struct {
	Font    Font
	Size    float64
	Color   Color
	Align   Align
	LineGap float64
}

// Body is the style for running text.
func Body(size float64) TextStyle {
	return TextStyle{Font: Regular, Size: size, Color: Text}
}

// Label draws a single line of text with its top left corner at x, y.
func Label(s Surface, x, y float64, text string, st TextStyle) {
	defer Reset(s)
	s.SetFont(st.Font, st.Size)
	s.SetTextColor(st.Color)
	s.Text(x, y, text)
}

// CenteredLabel draws a single line centered on cx.
func CenteredLabel(s Surface, cx, y float64, text string, st TextStyle) {
	defer Reset(s)
	s.SetFont(st.Font, st.Size)
	s.SetTextColor(st.Color)
	s.Text(cx-s.StringWidth(text)/2, y, text)
}

// Paragraph draws wrapped text and returns its height.
func Paragraph(s Surface, x, y, w float64, text string, st TextStyle) float64 {
	defer Reset(s)
	s.SetFont(st.Font, st.Size)
	s.SetTextColor(st.Color)
	return s.TextBox(x, y, w, text, st.Align, st.LineGap)
}

// Measure returns the height Paragraph would use.
func Measure(s Surface, text string, w float64, st TextStyle) float64 {
	defer Reset(s)
	s.SetFont(st.Font, st.Size)
	return s.HeightOfString(text, w, st.LineGap)
}

// Width returns the width of a single line of text.
func Width(s Surface, text string, st TextStyle) float64 {
	defer Reset(s)
	s.SetFont(st.Font, st.Size)
	return s.StringWidth(text)
}

package draw

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"sync"

	"github.com/golang/freetype/truetype"
	"github.com/llgcode/draw2d"
	"github.com/llgcode/draw2d/draw2dimg"
	"github.com/llgcode/draw2d/draw2dkit"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/akeil/tripjournal/internal/geom"
	"github.com/akeil/tripjournal/internal/logging"
)

var rasterFonts = map[Font]draw2d.FontData{
	Regular: {Name: "go", Family: draw2d.FontFamilySans, Style: draw2d.FontStyleNormal},
	Bold:    {Name: "go", Family: draw2d.FontFamilySans, Style: draw2d.FontStyleBold},
	Italic:  {Name: "go", Family: draw2d.FontFamilySans, Style: draw2d.FontStyleItalic},
}

var (
	fontsOnce sync.Once
	fontsErr  error
)

// registerFonts makes the Go fonts available to draw2d.
func registerFonts() error {
	fontsOnce.Do(func() {
		ttf := map[Font][]byte{
			Regular: goregular.TTF,
			Bold:    gobold.TTF,
			Italic:  goitalic.TTF,
		}
		for f, data := range ttf {
			font, err := truetype.Parse(data)
			if err != nil {
				fontsErr = fmt.Errorf("parse font: %v", err)
				return
			}
			draw2d.RegisterFont(rasterFonts[f], font)
		}
	})
	return fontsErr
}

// Raster is a Surface that paints to in-memory images, one per page.
// It is used for previews and thumbnails.
type Raster struct {
	size  PageSize
	scale float64
	pages []*image.RGBA
	gc    *draw2dimg.GraphicContext
	state Style
	stack []Style
	err   error
}

// NewRaster creates a raster surface; scale is pixels per point.
func NewRaster(size PageSize, scale float64) *Raster {
	r := &Raster{
		size:  size,
		scale: scale,
		state: DefaultStyle(),
	}
	r.err = registerFonts()
	return r
}

func (r *Raster) PageSize() PageSize {
	return r.size
}

func (r *Raster) AddPage() {
	if r.err != nil {
		return
	}
	if len(r.stack) != 0 {
		r.err = fmt.Errorf("new page with %d unbalanced Push calls", len(r.stack))
		return
	}
	w := int(r.size.Width*r.scale + 0.5)
	h := int(r.size.Height*r.scale + 0.5)
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	r.pages = append(r.pages, img)
	logging.Debug("Raster page %d, %dx%d px", len(r.pages), w, h)

	r.gc = draw2dimg.NewGraphicContext(img)
	r.gc.SetDPI(72)
	r.gc.Scale(r.scale, r.scale)

	// white paper
	r.gc.SetFillColor(White.RGBA(1))
	draw2dkit.Rectangle(r.gc, 0, 0, r.size.Width, r.size.Height)
	r.gc.Fill()

	Apply(r, r.state)
}

func (r *Raster) PageNo() int {
	return len(r.pages)
}

// Pages returns the painted pages.
func (r *Raster) Pages() []image.Image {
	pages := make([]image.Image, len(r.pages))
	for i, p := range r.pages {
		pages[i] = p
	}
	return pages
}

func (r *Raster) SetFillColor(c Color) {
	r.state.Fill = c
	if r.gc != nil {
		r.gc.SetFillColor(c.RGBA(r.state.Alpha))
	}
}

func (r *Raster) SetStrokeColor(c Color) {
	r.state.Stroke = c
	if r.gc != nil {
		r.gc.SetStrokeColor(c.RGBA(r.state.Alpha))
	}
}

func (r *Raster) SetTextColor(c Color) {
	r.state.Text = c
}

func (r *Raster) SetLineWidth(w float64) {
	r.state.LineWidth = w
	if r.gc != nil {
		r.gc.SetLineWidth(w)
	}
}

func (r *Raster) SetDash(pattern ...float64) {
	r.state.Dash = append([]float64(nil), pattern...)
	if r.gc != nil {
		r.gc.SetLineDash(r.state.Dash, 0)
	}
}

func (r *Raster) SetAlpha(a float64) {
	r.state.Alpha = a
	// alpha is carried in the colors
	r.SetFillColor(r.state.Fill)
	r.SetStrokeColor(r.state.Stroke)
}

func (r *Raster) SetFont(f Font, size float64) {
	r.state.Font = f
	r.state.FontSize = size
	if r.gc != nil {
		r.gc.SetFontData(rasterFonts[f])
		r.gc.SetFontSize(size)
	}
}

func (r *Raster) Rect(x, y, w, h float64, op Op) {
	if !r.ready() {
		return
	}
	r.gc.BeginPath()
	draw2dkit.Rectangle(r.gc, x, y, x+w, y+h)
	r.paint(op)
}

func (r *Raster) RoundedRect(x, y, w, h, rad float64, op Op) {
	if !r.ready() {
		return
	}
	r.gc.BeginPath()
	roundedRectPath(r, x, y, w, h, rad)
	r.paint(op)
}

func (r *Raster) Circle(x, y, rad float64, op Op) {
	if !r.ready() {
		return
	}
	r.gc.BeginPath()
	draw2dkit.Circle(r.gc, x, y, rad)
	r.paint(op)
}

func (r *Raster) Ellipse(x, y, rx, ry float64, op Op) {
	if !r.ready() {
		return
	}
	r.gc.BeginPath()
	draw2dkit.Ellipse(r.gc, x, y, rx, ry)
	r.paint(op)
}

func (r *Raster) Line(x0, y0, x1, y1 float64) {
	if !r.ready() {
		return
	}
	r.gc.BeginPath()
	r.gc.MoveTo(x0, y0)
	r.gc.LineTo(x1, y1)
	r.gc.Stroke()
}

func (r *Raster) MoveTo(x, y float64) {
	if r.ready() {
		r.gc.MoveTo(x, y)
	}
}

func (r *Raster) LineTo(x, y float64) {
	if r.ready() {
		r.gc.LineTo(x, y)
	}
}

func (r *Raster) CurveTo(cx0, cy0, cx1, cy1, x, y float64) {
	if r.ready() {
		r.gc.CubicCurveTo(cx0, cy0, cx1, cy1, x, y)
	}
}

func (r *Raster) ClosePath() {
	if r.ready() {
		r.gc.Close()
	}
}

func (r *Raster) DrawPath(op Op) {
	if r.ready() {
		r.paint(op)
	}
}

func (r *Raster) Text(x, y float64, s string) {
	if !r.ready() {
		return
	}
	r.gc.Save()
	r.gc.SetFillColor(r.state.Text.RGBA(r.state.Alpha))
	r.gc.FillStringAt(s, x, y+r.state.FontSize*baseline)
	r.gc.Restore()
}

func (r *Raster) TextBox(x, y, w float64, s string, align Align, lineGap float64) float64 {
	return textBox(r, x, y, w, s, align, r.state.FontSize, lineGap)
}

func (r *Raster) StringWidth(s string) float64 {
	if r.gc == nil || s == "" {
		// rough estimate before the first page
		return float64(len([]rune(s))) * r.state.FontSize * 0.5
	}
	left, _, right, _ := r.gc.GetStringBounds(s)
	return right - left
}

func (r *Raster) HeightOfString(s string, w, lineGap float64) float64 {
	lines := Wrap(s, w, r.StringWidth)
	return TextHeight(len(lines), r.state.FontSize, lineGap)
}

func (r *Raster) Push() {
	if !r.ready() {
		return
	}
	r.stack = append(r.stack, r.state)
	r.gc.Save()
}

func (r *Raster) Pop() {
	if !r.ready() {
		return
	}
	n := len(r.stack)
	if n == 0 {
		r.err = fmt.Errorf("Pop without matching Push")
		return
	}
	r.gc.Restore()
	r.state = r.stack[n-1]
	r.stack = r.stack[:n-1]
	Apply(r, r.state)
}

func (r *Raster) Translate(x, y float64) {
	if r.inPush() {
		r.gc.Translate(x, y)
	}
}

func (r *Raster) Rotate(deg float64) {
	if r.inPush() {
		r.gc.Rotate(geom.Radians(deg))
	}
}

func (r *Raster) Scale(sx, sy float64) {
	if r.inPush() {
		r.gc.Scale(sx, sy)
	}
}

// Bookmark is a no-op for images.
func (r *Raster) Bookmark(title string, level int) {}

func (r *Raster) Err() error {
	return r.err
}

// Output writes the first page as PNG.
func (r *Raster) Output(w io.Writer) error {
	return r.WritePNG(0, w)
}

// WritePNG encodes page i (0-based) as PNG.
func (r *Raster) WritePNG(i int, w io.Writer) error {
	if r.err != nil {
		return r.err
	}
	if i < 0 || i >= len(r.pages) {
		return fmt.Errorf("no page %d, have %d", i+1, len(r.pages))
	}
	return png.Encode(w, r.pages[i])
}

func (r *Raster) ready() bool {
	if r.err != nil {
		return false
	}
	if r.gc == nil {
		r.err = fmt.Errorf("drawing before the first page")
		return false
	}
	return true
}

func (r *Raster) inPush() bool {
	if !r.ready() {
		return false
	}
	if len(r.stack) == 0 {
		r.err = fmt.Errorf("transform outside of Push/Pop")
		return false
	}
	return true
}

func (r *Raster) paint(op Op) {
	switch op {
	case Fill:
		r.gc.Fill()
	case Stroke:
		r.gc.Stroke()
	default:
		r.gc.FillStroke()
	}
}

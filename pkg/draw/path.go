package draw

import (
	"math"
)

// kappa is the control point distance for a quarter circle bezier.
const kappa = 0.5522847498

type pather interface {
	MoveTo(x, y float64)
	LineTo(x, y float64)
	CurveTo(cx0, cy0, cx1, cy1, x, y float64)
	ClosePath()
}

type texter interface {
	Text(x, y float64, s string)
	StringWidth(s string) float64
}

// roundedRectPath adds a closed rounded rectangle to the current path.
func roundedRectPath(p pather, x, y, w, h, r float64) {
	r = math.Min(r, math.Min(w, h)/2)
	if r <= 0 {
		p.MoveTo(x, y)
		p.LineTo(x+w, y)
		p.LineTo(x+w, y+h)
		p.LineTo(x, y+h)
		p.ClosePath()
		return
	}
	k := r * kappa
	p.MoveTo(x+r, y)
	p.LineTo(x+w-r, y)
	p.CurveTo(x+w-r+k, y, x+w, y+r-k, x+w, y+r)
	p.LineTo(x+w, y+h-r)
	p.CurveTo(x+w, y+h-r+k, x+w-r+k, y+h, x+w-r, y+h)
	p.LineTo(x+r, y+h)
	p.CurveTo(x+r-k, y+h, x, y+h-r+k, x, y+h-r)
	p.LineTo(x, y+r)
	p.CurveTo(x, y+r-k, x+r-k, y, x+r, y)
	p.ClosePath()
}

// textBox draws wrapped text line by line and returns the height used.
func textBox(t texter, x, y, w float64, s string, align Align, size, lineGap float64) float64 {
	lines := Wrap(s, w, t.StringWidth)
	lh := size * LineHeightFactor
	for i, line := range lines {
		lx := x + alignOffset(align, w, t.StringWidth(line))
		t.Text(lx, y+float64(i)*(lh+lineGap), line)
	}
	return TextHeight(len(lines), size, lineGap)
}

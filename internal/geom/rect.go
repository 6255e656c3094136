package geom

import (
	"fmt"
)

// Rect is an axis-aligned rectangle in page coordinates.
// The origin is top left with y growing downward.
type Rect struct {
	X, Y, W, H float64
}

// R is shorthand for a Rect literal.
func R(x, y, w, h float64) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Square returns the square of the given half-size centered on cx, cy.
func Square(cx, cy, half float64) Rect {
	return Rect{X: cx - half, Y: cy - half, W: 2 * half, H: 2 * half}
}

func (r Rect) Right() float64  { return r.X + r.W }
func (r Rect) Bottom() float64 { return r.Y + r.H }

// Contains tells whether o lies completely inside r.
func (r Rect) Contains(o Rect) bool {
	return o.X >= r.X && o.Y >= r.Y && o.Right() <= r.Right() && o.Bottom() <= r.Bottom()
}

// Intersects tells whether r and o overlap with a non-zero area.
// Rectangles that only touch at an edge do not intersect.
func (r Rect) Intersects(o Rect) bool {
	return r.X < o.Right() && o.X < r.Right() && r.Y < o.Bottom() && o.Y < r.Bottom()
}

// Inset shrinks the rectangle by d on all sides.
func (r Rect) Inset(d float64) Rect {
	return Rect{X: r.X + d, Y: r.Y + d, W: r.W - 2*d, H: r.H - 2*d}
}

func (r Rect) String() string {
	return fmt.Sprintf("[%.1f,%.1f %.1fx%.1f]", r.X, r.Y, r.W, r.H)
}

package compose

import (
	"math"

	"github.com/akeil/tripjournal/internal/logging"
	"github.com/akeil/tripjournal/pkg/draw"
)

// Cursor is the vertical write position on the current page.
//
// Blocks ask for space with Ensure before they draw. If the block does not
// fit above Bottom, the cursor starts a continuation page through its
// newPage func, which draws the page chrome and returns the top y.
type Cursor struct {
	Y      float64
	Bottom float64
	Pages  int

	newPage func() float64
}

// NewCursor starts a cursor at y. newPage may be nil, in which case the
// cursor never breaks the page.
func NewCursor(y float64, newPage func() float64) *Cursor {
	return &Cursor{Y: y, Bottom: draw.PageBottom, newPage: newPage}
}

// Remaining is the space left on the page.
func (c *Cursor) Remaining() float64 {
	return c.Bottom - c.Y
}

// Fits tells if a block of height h fits on the current page.
func (c *Cursor) Fits(h float64) bool {
	return c.Y+h <= c.Bottom
}

// Ensure makes room for a block of height h. Returns true if a new page
// was started.
func (c *Cursor) Ensure(h float64) bool {
	if c.Fits(h) || c.newPage == nil {
		return false
	}
	logging.Debug("Block of %.1fpt does not fit at y=%.1f, continue on next page", h, c.Y)
	c.Y = c.newPage()
	c.Pages++
	return true
}

// Advance moves the cursor down by h plus gap and returns the new y.
func (c *Cursor) Advance(h, gap float64) float64 {
	c.Y += h + gap
	return c.Y
}

// FillLines is the number of writing lines for the space between top and
// bottom: one per LineHeight, clamped to MinFillLines..MaxFillLines.
//
// Lines are drawn at top, top+LineHeight and so on. The result is reduced
// further if the last line would end up below PageBottom, so a large
// minimum never pushes a line off the page.
func FillLines(top, bottom float64) int {
	n := int(math.Floor((bottom - top) / draw.LineHeight))
	if n < MinFillLines {
		n = MinFillLines
	}
	if n > MaxFillLines {
		n = MaxFillLines
	}
	capped := n
	for capped > 0 && top+float64(capped-1)*draw.LineHeight > draw.PageBottom {
		capped--
	}
	if capped != n {
		logging.Warning("Only %d of %d writing lines fit below y=%.1f", capped, n, top)
	}
	return capped
}

// GridCell returns the top left corner of cell i in a grid with cols
// columns, filled row by row.
func GridCell(i, cols int, cellW, cellH, x0, y0 float64) (float64, float64) {
	col := i % cols
	row := i / cols
	return x0 + float64(col)*cellW, y0 + float64(row)*cellH
}

// GridRows is the number of rows needed for n cells in cols columns.
func GridRows(n, cols int) int {
	return (n + cols - 1) / cols
}

package compose

import (
	"fmt"
	"math"

	"github.com/akeil/tripjournal/pkg/draw"
	"github.com/akeil/tripjournal/pkg/theme"
)

// reflections shares the page height among the reflection prompts. Every
// prompt gets an equal part of the space that is left when it starts, so a
// long prompt takes its space from the later ones and never pushes them
// off the page.
func (r *renderer) reflections() {
	y := r.reflectionsPage()
	r.bookmark("Trip Reflections", 0)
	y = r.banner("Trip Reflections", y, draw.Secondary, 14)
	y += 15

	prompts := r.j.Closing.ReflectionPrompts
	cur := NewCursor(y, r.reflectionsPage)
	tw := draw.ContentWidth - 45
	for i, p := range prompts {
		textH := r.measure(p, tw, draw.Italic, 8)
		// prompt, the minimum number of lines and padding
		minH := 10 + textH + 14 + float64(MinFillLines-1)*draw.LineHeight + 8
		cur.Ensure(minH)
		y = cur.Y

		slot := (draw.PageBottom - y) / float64(len(prompts)-i)
		top := y + 10 + textH + 14
		n := FillLines(top, y+slot-14)
		end := top + float64(n-1)*draw.LineHeight
		boxH := math.Max(slot-8, end-y+8)
		if y+boxH > draw.PageBottom {
			boxH = draw.PageBottom - y
		}

		r.block = i
		fill := draw.Cream
		if i%2 == 1 {
			fill = draw.White
		}
		r.box(draw.Margin, y, draw.ContentWidth, boxH, fill, draw.SecondaryLight, 8)
		draw.Star(r.s, draw.Margin+15, y+15, 9, 5, 0, draw.Secondary)
		r.label(draw.Margin+12, y+11, fmt.Sprint(i+1), draw.Bold, 7, draw.White)
		r.paragraph(draw.Margin+30, y+10, tw, p, draw.Italic, 8, draw.Text)
		r.lines(draw.Margin+15, top, draw.ContentWidth-30, n, draw.Dashed, draw.Border)

		cur.Y = y
		cur.Advance(boxH, 8)
	}
	r.block = -1
}

func (r *renderer) reflectionsPage() float64 {
	y := r.bordered(draw.BorderDouble)
	r.decorate(theme.ReflectionsCorners)
	return y
}

func (r *renderer) final() {
	r.newPage()
	r.bookmark("Trip Complete!", 0)
	s := r.s

	r.fill(0, 0, draw.PageWidth, draw.PageHeight, draw.Primary)
	r.decorate(theme.FinalCorners)

	card := theme.FinalCard
	r.box(card.X, card.Y, card.W, card.H, draw.White, draw.SecondaryLight, 15)
	st := draw.BoxStyle{Stroke: draw.Secondary, Radius: 10, LineWidth: 1, NoFill: true, Dashed: true}
	draw.StyledBox(s, card.X+8, card.Y+8, card.W-16, card.H-16, st)

	// ribbon across the top of the card
	ry := card.Y + 15
	s.SetFillColor(draw.Secondary)
	s.Rect(card.X+40, ry, card.W-80, 26, draw.Fill)
	s.SetFillColor(draw.Secondary.Shade(-30))
	s.MoveTo(card.X+40, ry+26)
	s.LineTo(card.X+48, ry+32)
	s.LineTo(card.X+48, ry+26)
	s.ClosePath()
	s.DrawPath(draw.Fill)
	s.MoveTo(card.Right()-40, ry+26)
	s.LineTo(card.Right()-48, ry+32)
	s.LineTo(card.Right()-48, ry+26)
	s.ClosePath()
	s.DrawPath(draw.Fill)
	draw.Reset(s)
	r.centered(card.X, ry+7, card.W, "Trip Complete!", draw.Bold, 14, draw.White)

	draw.Badge(s, card.Right()-35, card.Y+25, "DONE!", 44, draw.Accent)

	y := ry + 45
	r.centered(card.X, y, card.W, r.j.ChildName+"'s Adventure", draw.Bold, 18, draw.Primary)
	y += 26
	r.centered(card.X, y, card.W, "to "+r.j.Destination, draw.Bold, 14, draw.Secondary)
	y += 20
	days := "Day"
	if r.j.TripDays != 1 {
		days = "Days"
	}
	r.centered(card.X, y, card.W, fmt.Sprintf("%d %v of Exploration", r.j.TripDays, days), draw.Italic, 10, draw.TextLight)
	y += 22

	draw.Divider(s, y, draw.DividerStars)
	y += 15

	inner := card.W - 40
	x := card.X + 20
	r.box(x, y, inner, 40, draw.Cream, draw.PrimaryLight, 8)
	r.label(x+10, y+8, "Rate your trip:", draw.Bold, 9, draw.Primary)
	for i := 0; i < 5; i++ {
		draw.Star(s, x+110+float64(i)*26, y+20, 10, 5, 0, draw.SecondaryLight)
	}
	y += 52

	r.label(x, y, "My top 3 memories:", draw.Bold, 9, draw.Primary)
	y += 18
	for i := 1; i <= 3; i++ {
		draw.NumberBadge(s, x+6, y+2, 6, i, draw.Primary)
		r.line(x+16, y+8, inner-16, draw.Dashed, draw.Border)
		y += 20
	}
	y += 6

	half := inner/2 - 5
	r.label(x, y, "Favorite food:", draw.Bold, 8, draw.Accent)
	r.label(x+half+10, y, "Best souvenir:", draw.Bold, 8, draw.Accent)
	y += 24
	r.line(x, y, half, draw.Dotted, draw.Border)
	r.line(x+half+10, y, half, draw.Dotted, draw.Border)
	y += 18

	r.box(x, y, inner, 90, draw.AccentLight, draw.Accent, 8)
	r.label(x+10, y+8, "A note to my future self:", draw.Bold, 9, draw.Accent)
	r.lines(x+10, y+35, inner-20, 3, draw.Dashed, draw.Accent)

	r.centered(card.X, card.Bottom()-20, card.W, "Created with tripjournal", draw.Regular, 6, draw.TextLight)
	r.centered(card.X, card.Bottom()-11, card.W, "Print: 2 pages per sheet, double-sided", draw.Regular, 6, draw.TextLight)
}

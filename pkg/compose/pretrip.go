package compose

import (
	"fmt"
	"strings"

	"github.com/akeil/tripjournal"
	"github.com/akeil/tripjournal/pkg/draw"
	"github.com/akeil/tripjournal/pkg/theme"
)

func (r *renderer) cover() {
	r.newPage()
	r.bookmark("Cover", 0)
	s := r.s
	w, h := draw.PageWidth, draw.PageHeight

	r.fill(0, 0, w, h, draw.Primary)

	// waves at the bottom
	s.SetFillColor(draw.Primary.Shade(-20))
	s.MoveTo(0, h-100)
	s.CurveTo(w*0.3, h-150, w*0.7, h-50, w, h-100)
	s.LineTo(w, h)
	s.LineTo(0, h)
	s.ClosePath()
	s.DrawPath(draw.Fill)

	s.SetFillColor(draw.Primary.Shade(-35))
	s.MoveTo(0, h-60)
	s.CurveTo(w*0.4, h-100, w*0.6, h-20, w, h-60)
	s.LineTo(w, h)
	s.LineTo(0, h)
	s.ClosePath()
	s.DrawPath(draw.Fill)
	draw.Reset(s)

	r.decorate(theme.CoverTop)
	r.decorate(theme.CoverBottom)

	card := theme.CoverCard
	s.SetAlpha(0.95)
	s.SetFillColor(draw.White)
	s.RoundedRect(card.X, card.Y, card.W, card.H, 15, draw.Fill)
	draw.Reset(s)
	st := draw.BoxStyle{Stroke: draw.SecondaryLight, Radius: 15, LineWidth: 3, NoFill: true}
	draw.StyledBox(s, card.X, card.Y, card.W, card.H, st)
	st = draw.BoxStyle{Stroke: draw.Secondary, Radius: 10, LineWidth: 1, NoFill: true, Dashed: true}
	draw.StyledBox(s, card.X+8, card.Y+8, card.W-16, card.H-16, st)

	r.centered(card.X, card.Y+35, card.W, r.j.ChildName+"'s", draw.Bold, 16, draw.Text)
	r.centered(card.X, card.Y+60, card.W, "Travel Journal", draw.Bold, 28, draw.Primary)

	ly := card.Y + 105
	r.rule(card.X+60, ly, card.Right()-60, ly, 2, draw.Secondary)
	draw.Star(s, card.X+50, ly, 6, 5, 3, draw.Secondary)
	draw.Star(s, card.Right()-50, ly, 6, 5, 3, draw.Secondary)

	r.centered(card.X, card.Y+125, card.W, r.j.Destination, draw.Bold, 22, draw.Secondary)
	if r.j.Country != "" {
		r.centered(card.X, card.Y+155, card.W, r.j.Country, draw.Regular, 12, draw.TextLight)
	}

	primary := draw.Primary
	draw.DrawMotif(s, draw.Compass, draw.PageWidth/2, card.Y+210, 60, draw.MotifOptions{Color: &primary})

	dates := dateRange(r.j)
	if dates != "" {
		bx := card.X + card.W/2 - 80
		by := card.Bottom() - 50
		r.box(bx, by, 160, 30, draw.Cream, draw.Primary, 15)
		r.centered(bx, by+9, 160, dates, draw.Regular, 9, draw.Text)
	}

	tl := theme.CoverTagline
	r.centered(tl.X, tl.Y+4, tl.W, "Adventures await!", draw.Italic, 10, draw.White)
}

func dateRange(j *journal.Content) string {
	start := journal.FormatDate(j.StartDate)
	end := journal.FormatDate(j.EndDate)
	switch {
	case start == "" && end == "":
		return ""
	case start == end || end == "":
		return start
	case start == "":
		return end
	}
	return start + " - " + end
}

func (r *renderer) welcome() {
	y := r.bordered(draw.BorderDouble)
	r.bookmark("Welcome", 0)

	y = r.banner("Welcome, Traveler!", y, draw.Primary, 16)
	y += 15

	st := draw.DefaultBox()
	st.Stroke = draw.PrimaryLight
	st.Shadow = true
	draw.StyledBox(r.s, draw.Margin, y, draw.ContentWidth, 130, st)
	draw.Paragraph(r.s, draw.Margin+12, y+12, draw.ContentWidth-24, r.j.PreTrip.WelcomeLetter,
		draw.TextStyle{Font: draw.Regular, Size: 9, Color: draw.Text, LineGap: 3})
	y += 145

	draw.Divider(r.s, y, draw.DividerStars)
	y += 20

	y = r.header("Before You Go...", y, draw.Accent, 12)
	y += 8

	cur := NewCursor(y, r.continuation(draw.BorderDouble))
	tw := draw.ContentWidth - 22
	for i, prompt := range r.j.PreTrip.PreflightPrompts {
		th := r.measure(prompt, tw, draw.Italic, 8)
		cur.Ensure(th + 4 + 2*16 + 6)
		y = cur.Y
		r.block = i
		draw.NumberBadge(r.s, draw.Margin+8, y+5, 8, i+1, draw.Secondary)
		r.paragraph(draw.Margin+22, y, tw, prompt, draw.Italic, 8, draw.Text)
		y += th + 4
		for k := 0; k < 2; k++ {
			r.line(draw.Margin+22, y+10, tw, draw.Dashed, draw.Border)
			y += 16
		}
		cur.Y = y + 6
	}
	r.block = -1

	light := draw.PrimaryLight
	draw.DrawMotif(r.s, draw.Airplane, draw.PageWidth-draw.Margin-30, draw.PageHeight-draw.Margin-20, 25,
		draw.MotifOptions{Color: &light})
}

func (r *renderer) aboutTrip() {
	y := r.bordered(draw.BorderDashed)
	r.bookmark("About My Trip", 0)

	y = r.banner("About My Trip", y, draw.Secondary, 14)
	y += 12

	r.box(draw.Margin, y, draw.ContentWidth, 85, draw.Cream, draw.SecondaryLight, 10)
	sec := draw.Secondary
	draw.DrawMotif(r.s, draw.Suitcase, draw.Margin+20, y+22, 20, draw.MotifOptions{Color: &sec})
	r.label(draw.Margin+40, y+12, "Explorer: "+r.j.ChildName, draw.Regular, 9, draw.Text)
	r.label(draw.Margin+40, y+30, "Destination: "+r.j.Destination, draw.Regular, 9, draw.Text)
	r.label(draw.Margin+12, y+50, "I am traveling with: _______________________", draw.Regular, 9, draw.Text)
	r.label(draw.Margin+12, y+68, "How we are getting there: _________________", draw.Regular, 9, draw.Text)
	y += 100

	y = r.header("Draw Your Destination!", y, draw.Accent, 12)
	r.label(draw.Margin, y, "Draw a map, your route, or what you think your destination looks like:",
		draw.Italic, 7, draw.TextLight)
	y += 14

	r.dashedBox(draw.Margin, y, draw.ContentWidth, 160, draw.Accent, 8)
	for _, c := range [][2]float64{
		{draw.Margin + 10, y + 10},
		{draw.Margin + draw.ContentWidth - 10, y + 10},
		{draw.Margin + 10, y + 150},
		{draw.Margin + draw.ContentWidth - 10, y + 150},
	} {
		r.dot(c[0], c[1], 4, draw.AccentLight)
	}
	y += 175

	y = r.header("My Packing Checklist", y, draw.Coral, 12)
	y += 5

	items := r.j.PreTrip.PackingList
	if len(items) > 12 {
		items = items[:12]
	}
	for i, item := range items {
		x, iy := GridCell(i, 2, draw.ContentWidth/2, 20, draw.Margin, y)
		draw.Checkbox(r.s, x, iy, 10, draw.Coral, true)
		r.label(x+14, iy+1, item, draw.Regular, 8, draw.Text)
	}
}

func (r *renderer) facts() {
	y := r.bordered(draw.BorderDotted)
	r.bookmark("All About "+r.j.Destination, 0)
	f := r.j.PreTrip.Facts
	if f == nil {
		f = &journal.Facts{}
	}

	y = r.banner("All About "+r.j.Destination, y, draw.Primary, 13)
	y += 15

	cardW := (draw.ContentWidth - 10) / 2
	cardH := 45.0
	r.box(draw.Margin, y, cardW, cardH, draw.PrimaryLight, draw.Primary, 8)
	r.label(draw.Margin+10, y+8, "LANGUAGE", draw.Bold, 8, draw.Primary)
	r.label(draw.Margin+10, y+22, f.Language, draw.Regular, 10, draw.Text)

	x2 := draw.Margin + cardW + 10
	r.box(x2, y, cardW, cardH, draw.SecondaryLight, draw.Secondary, 8)
	r.label(x2+10, y+8, "CURRENCY", draw.Bold, 8, draw.Secondary)
	r.label(x2+10, y+22, f.Currency, draw.Regular, 10, draw.Text)
	y += cardH + 10

	r.box(draw.Margin, y, draw.ContentWidth, 35, draw.AccentLight, draw.Accent, 8)
	r.label(draw.Margin+10, y+8, "POPULATION", draw.Bold, 8, draw.Accent)
	r.label(draw.Margin+10, y+20, f.Population, draw.Regular, 10, draw.Text)
	y += 50

	// phrases are pointless where people speak English
	if !strings.Contains(strings.ToLower(f.Language), "english") && len(r.j.PreTrip.Phrases) > 0 {
		r.box(draw.Margin, y, draw.ContentWidth, 65, draw.Cream, draw.Primary, 10)
		r.label(draw.Margin+10, y+8, "Useful Phrases:", draw.Bold, 9, draw.Primary)
		py := y + 22
		phrases := r.j.PreTrip.Phrases
		if len(phrases) > 3 {
			phrases = phrases[:3]
		}
		for _, p := range phrases {
			q := fmt.Sprintf("%q", p.Phrase)
			r.label(draw.Margin+15, py, q, draw.Bold, 8, draw.Secondary)
			qw := draw.Width(r.s, q, draw.TextStyle{Font: draw.Bold, Size: 8})
			r.label(draw.Margin+20+qw, py, "= "+p.Meaning, draw.Regular, 8, draw.TextLight)
			py += 14
		}
		y += 80
	}

	cur := NewCursor(y, r.continuation(draw.BorderDotted))
	cur.Y = r.header("Did You Know?", cur.Y, draw.Secondary, 12) + 5

	tw := draw.ContentWidth - 20
	for _, fact := range limit(f.FunFacts, 4) {
		h := r.measure(fact, tw, draw.Regular, 8)
		cur.Ensure(h + 6)
		draw.Star(r.s, draw.Margin+6, cur.Y+4, 5, 5, 2, draw.Secondary)
		r.paragraph(draw.Margin+16, cur.Y, tw, fact, draw.Regular, 8, draw.Text)
		cur.Advance(h, 6)
	}

	if len(f.CulturalHighlights) > 0 {
		cur.Ensure(10 + 24 + 15)
		cur.Y = r.header("Cultural Tips", cur.Y+10, draw.Accent, 12) + 5
		tw = draw.ContentWidth - 18
		for _, hl := range limit(f.CulturalHighlights, 3) {
			h := r.measure(hl, tw, draw.Regular, 8)
			cur.Ensure(h + 5)
			r.dot(draw.Margin+5, cur.Y+4, 3, draw.Accent)
			r.paragraph(draw.Margin+14, cur.Y, tw, hl, draw.Regular, 8, draw.Text)
			cur.Advance(h, 5)
		}
	}
}

func (r *renderer) landmarks() {
	y := r.bordered(draw.BorderDouble)
	r.bookmark("Famous Landmarks", 0)

	y = r.banner("Famous Landmarks", y, draw.Accent, 14)
	y += 15

	for i, name := range limit(r.j.PreTrip.Landmarks, 5) {
		r.block = i
		fill := draw.Cream
		if i%2 == 1 {
			fill = draw.White
		}
		r.box(draw.Margin, y, draw.ContentWidth, 70, fill, draw.AccentLight, 8)
		draw.NumberBadge(r.s, draw.Margin+18, y+18, 12, i+1, draw.Accent)
		r.label(draw.Margin+38, y+12, name, draw.Bold, 10, draw.Text)
		r.label(draw.Margin+38, y+30, "My notes:", draw.Italic, 7, draw.TextLight)
		r.line(draw.Margin+38, y+50, draw.ContentWidth-50, draw.Dotted, draw.Border)
		r.line(draw.Margin+38, y+62, draw.ContentWidth-50, draw.Dotted, draw.Border)
		y += 78
	}
	r.block = -1
}

func limit(s []string, n int) []string {
	if len(s) > n {
		return s[:n]
	}
	return s
}

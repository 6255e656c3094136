package compose

import (
	"fmt"

	"github.com/akeil/tripjournal"
	"github.com/akeil/tripjournal/pkg/draw"
	"github.com/akeil/tripjournal/pkg/theme"
)

// Fixed positions on the daily pages.
const (
	infoBoxY      = 70.0
	infoBoxHeight = 40.0
	promptsTop    = 125.0
	// promptsBottomGap is kept free below the last prompt slot.
	promptsBottomGap = 20.0

	wordBoxesY      = 315.0
	wordBoxesHeight = 85.0
	rememberY       = 415.0
)

var weatherChoices = []string{"Sunny", "Cloudy", "Rainy", "Snowy"}

// daily renders the two pages of one day. The page count does not depend
// on the amount of text; whatever does not fit is cut off.
func (r *renderer) daily(d journal.DailyPage) {
	r.dayJournal(d)
	r.daySketch(d)
}

func (r *renderer) dayJournal(d journal.DailyPage) {
	r.newPage()
	if d.Day == 1 {
		r.bookmark("Daily Journal", 0)
	}
	r.bookmark(fmt.Sprintf("Day %d", d.Day), 1)
	s := r.s

	bar := theme.HeaderBarHeight
	r.fill(0, 0, draw.PageWidth, bar, draw.Primary)
	s.SetFillColor(draw.Primary.Shade(-20))
	s.MoveTo(0, bar)
	s.CurveTo(draw.PageWidth*0.3, bar-12, draw.PageWidth*0.7, bar+4, draw.PageWidth, bar-6)
	s.LineTo(draw.PageWidth, bar)
	s.ClosePath()
	s.DrawPath(draw.Fill)
	draw.Reset(s)
	r.decorate(theme.HeaderAccent)

	r.dot(55, 25, 20, draw.White)
	draw.NumberBadge(s, 55, 25, 16, d.Day, draw.Secondary)
	r.label(85, 12, fmt.Sprintf("Day %d", d.Day), draw.Bold, 16, draw.White)
	if d.Location != "" {
		r.label(85, 32, d.Location, draw.Regular, 10, draw.White)
	}

	r.infoBox(d)

	prompts := d.Prompts
	if len(prompts) > journal.MaxDailyPrompts {
		prompts = prompts[:journal.MaxDailyPrompts]
	}
	if len(prompts) == 0 {
		return
	}

	y := promptsTop
	slot := (draw.PageBottom - y - promptsBottomGap) / float64(len(prompts))
	tw := draw.ContentWidth - 25
	for i, p := range prompts {
		r.block = i
		h := r.measure(p, tw, draw.Italic, 8)
		draw.NumberBadge(s, draw.Margin+8, y+6, 8, i+1, draw.Accent)
		r.paragraph(draw.Margin+22, y+3, tw, p, draw.Italic, 8, draw.Text)

		top := y + 3 + h + 12
		n := FillLines(top, y+slot)
		r.lines(draw.Margin+22, top, tw, n, draw.Dashed, draw.Border)
		y += slot
	}
	r.block = -1
}

// infoBox has fields for the date and, if enabled, weather and mood.
func (r *renderer) infoBox(d journal.DailyPage) {
	y := infoBoxY
	r.box(draw.Margin, y, draw.ContentWidth, infoBoxHeight, draw.Cream, draw.PrimaryLight, 8)
	r.label(draw.Margin+10, y+8, "Date:", draw.Bold, 8, draw.Primary)
	r.line(draw.Margin+38, y+17, 70, draw.Dotted, draw.Border)

	if d.Weather {
		x := draw.Margin + 120
		r.label(x, y+8, "Weather:", draw.Bold, 8, draw.Primary)
		for i, w := range weatherChoices {
			wx := x + float64(i)*45
			draw.Checkbox(r.s, wx, y+22, 7, draw.Primary, true)
			r.label(wx+9, y+22, w, draw.Regular, 6, draw.TextLight)
		}
	}
	if d.Mood {
		x := draw.Margin + draw.ContentWidth - 75
		r.label(x, y+8, "Mood:", draw.Bold, 8, draw.Primary)
		for i := 0; i < 3; i++ {
			r.face(x+35+float64(i)*14, y+12, i)
		}
	}
}

// face draws a small smiley. kind 0 is happy, 1 neutral and 2 sad.
func (r *renderer) face(cx, cy float64, kind int) {
	s := r.s
	defer draw.Reset(s)
	s.SetStrokeColor(draw.Secondary)
	s.SetLineWidth(0.8)
	s.Circle(cx, cy, 5, draw.Stroke)
	s.SetFillColor(draw.Secondary)
	s.Circle(cx-1.8, cy-1.5, 0.7, draw.Fill)
	s.Circle(cx+1.8, cy-1.5, 0.7, draw.Fill)
	switch kind {
	case 0:
		s.MoveTo(cx-2.5, cy+1.2)
		s.CurveTo(cx-1, cy+3.2, cx+1, cy+3.2, cx+2.5, cy+1.2)
		s.DrawPath(draw.Stroke)
	case 1:
		s.Line(cx-2.5, cy+2, cx+2.5, cy+2)
	default:
		s.MoveTo(cx-2.5, cy+3)
		s.CurveTo(cx-1, cy+1, cx+1, cy+1, cx+2.5, cy+3)
		s.DrawPath(draw.Stroke)
	}
}

func (r *renderer) daySketch(d journal.DailyPage) {
	y := r.bordered(draw.BorderDashed)
	title := fmt.Sprintf("Day %d - Sketch & Reflect", d.Day)
	r.bookmark(title, 2)

	y = r.banner(title, y, draw.Accent, 12)
	if d.SketchPrompt != "" {
		r.centered(draw.Margin, y+2, draw.ContentWidth, "Draw: "+d.SketchPrompt, draw.Italic, 9, draw.Text)
	}

	sb := theme.SketchBox
	r.dashedBox(sb.X, sb.Y, sb.W, sb.H, draw.Accent, 10)
	r.decorate(theme.SketchCorners)

	half := (draw.ContentWidth - 10) / 2
	r.box(draw.Margin, wordBoxesY, half, wordBoxesHeight, draw.PrimaryLight, draw.Primary, 8)
	r.label(draw.Margin+10, wordBoxesY+8, "NEW WORD I LEARNED", draw.Bold, 8, draw.Primary)
	r.line(draw.Margin+10, wordBoxesY+35, half-20, draw.Dotted, draw.Primary)
	r.label(draw.Margin+10, wordBoxesY+45, "It means:", draw.Italic, 7, draw.TextLight)
	r.line(draw.Margin+10, wordBoxesY+70, half-20, draw.Dotted, draw.Primary)

	x2 := draw.Margin + half + 10
	r.box(x2, wordBoxesY, half, wordBoxesHeight, draw.SecondaryLight, draw.Secondary, 8)
	r.label(x2+10, wordBoxesY+8, "TODAY WAS...", draw.Bold, 8, draw.Secondary)
	for i := 0; i < 5; i++ {
		draw.Star(r.s, x2+22+float64(i)*24, wordBoxesY+35, 8, 5, 0, draw.SecondaryLight.Shade(-15))
	}
	r.label(x2+10, wordBoxesY+55, "Best part:", draw.Italic, 7, draw.TextLight)
	r.line(x2+10, wordBoxesY+75, half-20, draw.Dotted, draw.Secondary)

	top := r.header("What I Want to Remember", rememberY, draw.Coral, 11) + 5
	r.lines(draw.Margin, top, draw.ContentWidth, FillLines(top, draw.PageBottom-10), draw.Dashed, draw.Border)
}

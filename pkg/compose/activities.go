package compose

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/akeil/tripjournal/pkg/draw"
)

const (
	wordGridSize = 9
	wordCellSize = 16.0
	col2X        = draw.Margin + 170
)

func (r *renderer) activities(page int) {
	switch page {
	case 1:
		r.inFlightFun()
	case 2:
		r.bingoAndHunt()
	case 3:
		r.drawAndChoose()
	case 4:
		r.gameTime()
	}
}

// page 1: word search, unscramble and trivia
func (r *renderer) inFlightFun() {
	y := r.bordered(draw.BorderDashed)
	r.bookmark("Activities", 0)
	a := r.j.Activities

	y = r.banner("IN-FLIGHT FUN!", y, draw.Secondary, 14)
	y += 10

	y = r.header("Word Search", y, draw.Primary, 10)
	grid := NewWordGrid(limit(a.WordSearch, 6), wordGridSize, r.rng)
	r.label(draw.Margin, y, "Find: "+strings.Join(grid.Placed, ", "), draw.Regular, 6, draw.TextLight)
	y += 12

	side := wordGridSize * wordCellSize
	r.fill(draw.Margin-2, y-2, side+4, side+4, draw.Cream)
	for i := 0; i < wordGridSize*wordGridSize; i++ {
		cx, cy := GridCell(i, wordGridSize, wordCellSize, wordCellSize, draw.Margin, y)
		r.outline(cx, cy, wordCellSize, wordCellSize, 0.5, draw.PrimaryLight)
		letter := string(grid.Cells[i/wordGridSize][i%wordGridSize])
		r.label(cx+4, cy+3, letter, draw.Regular, 9, draw.Text)
	}

	// unscramble next to the grid
	top := draw.Margin + 45
	r.label(col2X, top, "UNSCRAMBLE", draw.Bold, 10, draw.Accent)
	r.rule(col2X, top+13, col2X+80, top+13, 2, draw.AccentLight)
	sy := top + 23
	for i, w := range grid.Placed {
		r.label(col2X, sy, fmt.Sprintf("%d.", i+1), draw.Bold, 8, draw.Accent)
		r.label(col2X+15, sy, Scramble(w, r.rng), draw.Regular, 8, draw.Text)
		r.line(col2X+65, sy+8, 60, draw.Dotted, draw.AccentLight)
		sy += 22
	}

	y += side + 15
	y = r.header("Quick Trivia", y, draw.Secondary, 10)
	y += 5

	cur := NewCursor(y, nil)
	var answers []string
	for i, t := range a.Trivia {
		if i == 5 || !cur.Fits(42) {
			break
		}
		y = cur.Y
		r.block = i
		r.box(draw.Margin, y, draw.ContentWidth, 35, draw.SecondaryLight, draw.SecondaryLight, 5)
		r.label(draw.Margin+8, y+5, fmt.Sprintf("Q%d:", i+1), draw.Bold, 8, draw.Secondary)
		r.paragraph(draw.Margin+25, y+5, draw.ContentWidth-35, t.Question, draw.Regular, 8, draw.Text)
		r.line(draw.Margin+8, y+28, draw.ContentWidth-16, draw.Dashed, draw.Border)
		answers = append(answers, fmt.Sprintf("%d.%v", i+1, t.Answer))
		cur.Advance(42, 0)
	}
	r.block = -1
	if len(answers) > 0 {
		r.label(draw.Margin, cur.Y, "Answers: "+strings.Join(answers, "  "), draw.Regular, 5, draw.TextLight)
	}
}

// page 2: bingo, scavenger hunt and tallies
func (r *renderer) bingoAndHunt() {
	y := r.bordered(draw.BorderDotted)
	a := r.j.Activities

	y = r.header("Travel Bingo", y, draw.Accent, 11)
	r.label(draw.Margin, y, "Check off each item you spot!", draw.Regular, 6, draw.TextLight)
	y += 14

	items := limit(a.Bingo, 16)
	cols := 3
	if len(items) > 12 {
		cols = 4
	}
	cellW := 156.0 / float64(cols)
	cellH := 42.0
	for i, item := range items {
		bx, by := GridCell(i, cols, cellW, cellH, draw.Margin, y)
		row, col := i/cols, i%cols
		fill := draw.Cream
		if (row+col)%2 == 1 {
			fill = draw.White
		}
		r.box(bx+1, by+1, cellW-2, cellH-2, fill, draw.AccentLight, 4)
		draw.Checkbox(r.s, bx+4, by+4, 8, draw.Accent, true)
		r.paragraph(bx+4, by+16, cellW-8, item, draw.Regular, 6, draw.Text)
	}

	// scavenger hunt on the right
	top := draw.ContentTop
	r.label(col2X, top, "SCAVENGER HUNT", draw.Bold, 10, draw.Primary)
	r.rule(col2X, top+13, col2X+100, top+13, 2, draw.PrimaryLight)
	hy := top + 25
	for _, item := range limit(a.ScavengerHunt, 12) {
		draw.Checkbox(r.s, col2X, hy, 8, draw.Primary, false)
		r.label(col2X+12, hy, item, draw.Regular, 7, draw.Text)
		hy += 16
	}

	y += float64(GridRows(len(items), cols))*cellH + 15
	if hy > y {
		y = hy + 5
	}
	y = r.header("Tally Count", y, draw.Secondary, 10)
	y += 5
	for i, item := range limit(a.Tallies, 6) {
		tx, ty := GridCell(i, 2, 160, 30, draw.Margin, y)
		r.label(tx, ty, item+":", draw.Regular, 8, draw.Text)
		r.box(tx, ty+12, 80, 16, draw.White, draw.SecondaryLight, 4)
	}
}

// page 3: drawing, would you rather and categories
func (r *renderer) drawAndChoose() {
	y := r.bordered(draw.BorderDouble)
	a := r.j.Activities
	dest := r.j.Destination

	y = r.header("Draw It!", y, draw.Primary, 11)
	r.label(draw.Margin, y, fmt.Sprintf("Draw what you imagine %v looks like:", dest), draw.Italic, 7, draw.TextLight)
	y += 14

	r.dashedBox(draw.Margin, y, draw.ContentWidth, 140, draw.Primary, 10)
	for _, c := range [][2]float64{
		{draw.Margin + 12, y + 12},
		{draw.Margin + draw.ContentWidth - 12, y + 12},
		{draw.Margin + 12, y + 128},
		{draw.Margin + draw.ContentWidth - 12, y + 128},
	} {
		draw.Star(r.s, c[0], c[1], 6, 5, 3, draw.Secondary)
	}
	y += 155

	y = r.header("Would You Rather...", y, draw.Secondary, 10)
	y += 5
	for i, q := range a.WouldYouRather {
		if i == 4 {
			break
		}
		r.label(draw.Margin, y, fmt.Sprintf("%d.", i+1), draw.Bold, 7, draw.Secondary)
		draw.Checkbox(r.s, draw.Margin+12, y, 7, draw.Secondary, false)
		r.label(draw.Margin+22, y, q.A, draw.Regular, 7, draw.Text)
		r.label(draw.Margin+140, y, "OR", draw.Italic, 7, draw.TextLight)
		draw.Checkbox(r.s, draw.Margin+160, y, 7, draw.Secondary, false)
		r.label(draw.Margin+170, y, q.B, draw.Regular, 7, draw.Text)
		y += 18
	}
	y += 10

	y = r.header("Categories Game", y, draw.Accent, 10)
	letter := initial(dest)
	draw.Badge(r.s, draw.PageWidth-draw.Margin-30, y-15, letter, 35, draw.Accent)
	r.label(draw.Margin, y, fmt.Sprintf("Name one thing starting with %q for each:", letter),
		draw.Regular, 6, draw.TextLight)
	y += 14

	for i, cat := range limit(a.Categories, 9) {
		cx, cy := GridCell(i, 3, 108, 24, draw.Margin, y)
		r.label(cx, cy, cat+":", draw.Bold, 7, draw.Accent)
		r.line(cx+35, cy+8, 65, draw.Dashed, draw.AccentLight)
	}
}

func initial(s string) string {
	for _, c := range s {
		if unicode.IsLetter(c) {
			return string(unicode.ToUpper(c))
		}
	}
	return "A"
}

var travelMath = []string{
	"3 hrs x 500 mph = _____ miles",
	"25 + 17 + 8 = _____",
	"$20 - $7.50 = $_____",
	"6 rows x 30 seats = _____",
}

// page 4: tic-tac-toe, maze, story starter and travel math
func (r *renderer) gameTime() {
	y := r.bordered(draw.BorderDashed)
	s := r.s

	y = r.banner("Game Time!", y, draw.Accent, 14)
	y += 10

	y = r.header("Tic-Tac-Toe", y, draw.Primary, 10)
	y += 5

	size := 72.0
	cell := size / 3
	for _, x := range []float64{draw.Margin + 20, draw.Margin + 120} {
		r.fill(x-2, y-2, size+4, size+4, draw.Cream)
		for i := 1; i < 3; i++ {
			d := float64(i) * cell
			r.rule(x+d, y, x+d, y+size, 2, draw.Primary)
			r.rule(x, y+d, x+size, y+d, 2, draw.Primary)
		}
	}

	// maze next to the tic-tac-toe boards
	mx := col2X + 50
	r.label(mx, y-15, "MINI MAZE", draw.Bold, 10, draw.Secondary)
	mw, mh := 90.0, 72.0
	st := draw.BoxStyle{Fill: draw.SecondaryLight, Stroke: draw.Secondary, Radius: 5, LineWidth: 2}
	draw.StyledBox(s, mx, y, mw, mh, st)
	walls := [][4]float64{
		{30, 0, 30, 25},
		{30, 40, 30, mh},
		{60, 20, 60, 55},
		{0, 35, 15, 35},
		{45, 50, 90, 50},
	}
	for _, w := range walls {
		r.rule(mx+w[0], y+w[1], mx+w[2], y+w[3], 2, draw.Secondary)
	}
	r.dot(mx+10, y+10, 5, draw.Success)
	r.label(mx+7.5, y+6, "S", draw.Bold, 6, draw.White)
	r.dot(mx+80, y+mh-12, 5, draw.Coral)
	r.label(mx+77.5, y+mh-16, "E", draw.Bold, 6, draw.White)

	y += size + 20

	y = r.header("Story Starter", y, draw.Secondary, 10)
	r.box(draw.Margin, y, draw.ContentWidth, 120, draw.Cream, draw.SecondaryLight, 8)
	r.label(draw.Margin+10, y+10, fmt.Sprintf("\"One day in %v, something amazing happened...\"", r.j.Destination),
		draw.Italic, 8, draw.Text)
	r.lines(draw.Margin+10, y+30, draw.ContentWidth-20, 5, draw.Dashed, draw.Border)
	y += 135

	y = r.header("Travel Math", y, draw.Accent, 10)
	y += 5
	for i, p := range travelMath {
		bx, by := GridCell(i, 2, 165, 28, draw.Margin, y)
		r.box(bx, by, 155, 24, draw.AccentLight, draw.Accent, 5)
		r.label(bx+8, by+7, p, draw.Regular, 7, draw.Text)
	}
}

// outline strokes a plain rectangle.
func (r *renderer) outline(x, y, w, h, width float64, c draw.Color) {
	defer draw.Reset(r.s)
	r.s.SetStrokeColor(c)
	r.s.SetLineWidth(width)
	r.s.Rect(x, y, w, h, draw.Stroke)
}

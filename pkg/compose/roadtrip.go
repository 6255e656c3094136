package compose

import (
	"github.com/akeil/tripjournal/pkg/draw"
)

var plateStates = []string{
	"AL", "AK", "AZ", "AR", "CA", "CO", "CT", "DE", "FL", "GA",
	"HI", "ID", "IL", "IN", "IA", "KS", "KY", "LA", "ME", "MD",
	"MA", "MI", "MN", "MS", "MO", "MT", "NE", "NV", "NH", "NJ",
	"NM", "NY", "NC", "ND", "OH", "OK", "OR", "PA", "RI", "SC",
	"SD", "TN", "TX", "UT", "VT", "VA", "WA", "WV", "WI", "WY",
}

var bonusPlates = []string{"Canada plate", "Mexico plate", "Vanity plate", "Vintage plate"}

var trafficSigns = []string{
	"STOP sign", "Yield sign", "Speed limit", "One way",
	"No parking", "School zone", "Railroad", "Exit sign",
	"Rest area", "Gas station", "Food sign", "Hospital",
}

var estimateItems = []string{
	"Dogs", "Cats", "Cows", "Horses",
	"Red cars", "Blue cars", "Motorcycles", "Trucks",
	"Airplanes", "Birds", "Bridges", "Tunnels",
	"Fast food signs", "Gas stations", "Police cars", "School buses",
}

func (r *renderer) roadTrip(page int) {
	switch page {
	case 1:
		r.licensePlates()
	case 2:
		r.alphabetGame()
	case 3:
		r.estimation()
	case 4:
		r.dotsAndBoxes()
	}
}

func (r *renderer) subtitle(text string, y float64) {
	r.centered(draw.Margin, y, draw.ContentWidth, text, draw.Regular, 7, draw.TextLight)
}

func (r *renderer) licensePlates() {
	y := r.bordered(draw.BorderDouble)
	r.bookmark("Road Trip Games", 0)

	y = r.banner("License Plate Game", y, draw.Secondary, 13)
	r.subtitle("Check off license plates from different states as you spot them!", y+5)
	y += 25

	cellW, cellH := 60.0, 24.0
	for i, st := range plateStates {
		x, cy := GridCell(i, 5, cellW, cellH, draw.Margin+3, y)
		fill := draw.Cream
		if (i/5+i%5)%2 == 1 {
			fill = draw.White
		}
		box := draw.BoxStyle{Fill: fill, Stroke: draw.PrimaryLight, Radius: 3, LineWidth: 0.5}
		draw.StyledBox(r.s, x, cy, cellW-4, cellH-2, box)
		draw.Checkbox(r.s, x+3, cy+6, 10, draw.Primary, false)
		r.label(x+17, cy+6, st, draw.Bold, 9, draw.Text)
	}
	y += float64(GridRows(len(plateStates), 5))*cellH + 15

	y = r.header("Bonus Finds", y, draw.Accent, 10)
	y += 5
	for i, item := range bonusPlates {
		x, iy := GridCell(i, 2, 160, 22, draw.Margin, y)
		draw.Checkbox(r.s, x, iy, 10, draw.Accent, true)
		r.label(x+14, iy+1, item, draw.Regular, 8, draw.Text)
	}
	y += 55

	bx := draw.Margin + draw.ContentWidth/2 - 80
	r.box(bx, y, 160, 30, draw.PrimaryLight, draw.Primary, 15)
	r.centered(bx, y+10, 160, "Total states spotted: _______ / 50", draw.Regular, 9, draw.Text)
}

func (r *renderer) alphabetGame() {
	y := r.bordered(draw.BorderDashed)

	y = r.banner("Alphabet Game", y, draw.Primary, 13)
	r.subtitle("Find each letter on signs, billboards, or license plates!", y+5)
	y += 22

	cellW, cellH := 35.0, 32.0
	cols := 9
	for i := 0; i < 26; i++ {
		x, ly := GridCell(i, cols, cellW, cellH, draw.Margin, y)
		row, col := i/cols, i%cols
		fill := draw.White
		if (row+col)%2 == 0 {
			fill = draw.PrimaryLight
		}
		box := draw.BoxStyle{Fill: fill, Stroke: draw.Primary, Radius: 4, LineWidth: 0.5}
		draw.StyledBox(r.s, x, ly, cellW-2, cellH-2, box)
		r.label(x+11, ly+3, string(rune('A'+i)), draw.Bold, 14, draw.Primary)
		draw.Checkbox(r.s, x+12, ly+20, 8, draw.Secondary, false)
	}
	y += float64(GridRows(26, cols))*cellH + 20

	y = r.header("Traffic Sign Spotter", y, draw.Secondary, 11)
	r.label(draw.Margin, y, "Check off signs as you see them!", draw.Regular, 7, draw.TextLight)
	y += 14
	for i, sign := range trafficSigns {
		x, sy := GridCell(i, 3, 108, 22, draw.Margin, y)
		draw.Checkbox(r.s, x, sy, 8, draw.Secondary, false)
		r.label(x+12, sy, sign, draw.Regular, 8, draw.Text)
	}
}

func (r *renderer) estimation() {
	y := r.bordered(draw.BorderDotted)

	y = r.banner("Travel Estimation Game", y, draw.Accent, 12)
	r.subtitle("Guess how many of each thing you'll see, then count the real number!", y+5)
	y += 25

	r.box(draw.Margin, y, draw.ContentWidth, 18, draw.Accent, draw.Accent, 4)
	r.label(draw.Margin+10, y+4, "ITEM", draw.Bold, 8, draw.White)
	r.label(draw.Margin+135, y+4, "MY GUESS", draw.Bold, 8, draw.White)
	r.label(draw.Margin+220, y+4, "ACTUAL", draw.Bold, 8, draw.White)
	y += 22

	for i, item := range estimateItems {
		if i%2 == 0 {
			r.fill(draw.Margin, y, draw.ContentWidth, 20, draw.Cream)
		}
		r.label(draw.Margin+10, y+5, item, draw.Regular, 8, draw.Text)
		in := draw.BoxStyle{Stroke: draw.AccentLight, Radius: 3, LineWidth: 1, NoFill: true}
		draw.StyledBox(r.s, draw.Margin+130, y+2, 55, 16, in)
		draw.StyledBox(r.s, draw.Margin+215, y+2, 55, 16, in)
		y += 20
	}
	y += 15

	r.box(draw.Margin, y, draw.ContentWidth, 35, draw.SecondaryLight, draw.Secondary, 8)
	r.label(draw.Margin+10, y+6, "How close were your guesses? Circle one:", draw.Bold, 9, draw.Text)
	r.label(draw.Margin+10, y+20, "VERY CLOSE    /    PRETTY CLOSE    /    WAY OFF", draw.Regular, 10, draw.Text)
}

func (r *renderer) dotsAndBoxes() {
	y := r.bordered(draw.BorderDouble)

	y = r.banner("Dots & Boxes", y, draw.Primary, 14)
	r.subtitle("Take turns drawing lines between dots. Complete a box and write your initial inside!", y+5)
	y += 25

	r.label(draw.Margin, y, "GAME 1", draw.Bold, 10, draw.Primary)
	y += 20

	n, gap := 7, 36.0
	span := float64(n-1) * gap
	x0 := draw.Margin + (draw.ContentWidth-span)/2
	r.box(x0-15, y-10, span+30, span+20, draw.Cream, draw.Cream, 8)
	for i := 0; i < n*n; i++ {
		dx, dy := GridCell(i, n, gap, gap, x0, y)
		r.dot(dx, dy, 4, draw.Primary)
	}
	y += span + 25

	r.label(draw.Margin, y, "SCORE", draw.Bold, 10, draw.Secondary)
	y += 14
	half := draw.ContentWidth/2 - 10
	r.box(draw.Margin, y, half, 35, draw.PrimaryLight, draw.Primary, 6)
	r.label(draw.Margin+10, y+6, "Player 1: ____________", draw.Regular, 9, draw.Text)
	r.label(draw.Margin+10, y+20, "Boxes: _____", draw.Regular, 9, draw.Text)
	x2 := draw.Margin + draw.ContentWidth/2 + 5
	r.box(x2, y, half, 35, draw.SecondaryLight, draw.Secondary, 6)
	r.label(x2+10, y+6, "Player 2: ____________", draw.Regular, 9, draw.Text)
	r.label(x2+10, y+20, "Boxes: _____", draw.Regular, 9, draw.Text)
	y += 50

	r.label(draw.Margin, y, "GAME 2 (Quick Round)", draw.Bold, 10, draw.Accent)
	y += 18

	n, gap = 5, 28.0
	span = float64(n-1) * gap
	x0 = draw.Margin + 50
	r.box(x0-10, y-8, span+20, span+16, draw.AccentLight, draw.AccentLight, 6)
	for i := 0; i < n*n; i++ {
		dx, dy := GridCell(i, n, gap, gap, x0, y)
		r.dot(dx, dy, 3, draw.Accent)
	}
	r.label(col2X+20, y+20, "P1: _______", draw.Regular, 8, draw.Text)
	r.label(col2X+20, y+45, "P2: _______", draw.Regular, 8, draw.Text)
}

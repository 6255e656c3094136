package draw

var blossomPink = Hex("#FFB7C5")

func cherryBlossom(s Surface, main *Color) {
	c := pick(main, blossomPink)
	s.SetFillColor(c)
	for _, p := range [][2]float64{{0, -5}, {4.8, -1.5}, {3, 4}, {-3, 4}, {-4.8, -1.5}} {
		s.Circle(p[0], p[1], 4, Fill)
	}
	s.SetFillColor(Coral)
	s.Circle(0, 0, 2, Fill)
	s.SetFillColor(SecondaryLight)
	s.Circle(0, 0, 1, Fill)
}

func toriiGate(s Surface, main *Color) {
	c := pick(main, Coral)
	s.SetFillColor(c)
	// pillars
	s.Rect(-7, -5, 2, 15, Fill)
	s.Rect(5, -5, 2, 15, Fill)
	// curved top beam
	s.MoveTo(-10, -7)
	s.CurveTo(-4, -6, 4, -6, 10, -7)
	s.LineTo(10, -10)
	s.CurveTo(4, -8, -4, -8, -10, -10)
	s.ClosePath()
	s.DrawPath(Fill)
	// lower beam
	s.Rect(-8.5, -3.5, 17, 1.8, Fill)
	s.SetFillColor(Text)
	s.Rect(-1, -6, 2, 2.5, Fill)
}

func mtFuji(s Surface, main *Color) {
	c := pick(main, Primary)
	s.SetFillColor(c)
	poly(s, Fill, -10, 8, -3, -6, 3, -6, 10, 8)
	s.SetFillColor(White)
	poly(s, Fill, -3, -6, 3, -6, 5.2, -1.6, 2.5, -3, 0, -1, -2.5, -3, -5.2, -1.6)
}

func koiFish(s Surface, main *Color) {
	c := pick(main, Secondary)
	s.SetFillColor(c)
	poly(s, Fill, 5, 0, 10, -5, 9, 0, 10, 5)
	s.Ellipse(-1.5, 0, 7.5, 4, Fill)

	s.SetFillColor(White)
	s.Circle(-2, -1, 1.6, Fill)
	s.Circle(1.5, 1.2, 1.2, Fill)
	s.SetFillColor(Text)
	s.Circle(-6, -1, 0.7, Fill)
}

func lantern(s Surface, main *Color) {
	c := pick(main, Coral)
	s.SetStrokeColor(Text)
	s.SetLineWidth(0.8)
	s.Line(0, -10, 0, -8)

	s.SetFillColor(Text)
	s.Rect(-3, -8.5, 6, 1.5, Fill)
	s.Rect(-3, 7, 6, 1.5, Fill)

	s.SetFillColor(c)
	s.Ellipse(0, 0, 7, 7.2, Fill)

	s.SetStrokeColor(c.Shade(-30))
	s.SetLineWidth(0.5)
	for _, y := range []float64{-4, 0, 4} {
		s.Line(-6, y, 6, y)
	}
	s.SetStrokeColor(SecondaryLight)
	s.Line(0, 8.5, 0, 10)
}

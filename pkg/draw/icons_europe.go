package draw

func eiffelTower(s Surface, main *Color) {
	c := pick(main, Text)
	s.SetFillColor(c)
	poly(s, Fill, -8, 10, -2.5, -3, -0.6, -10, 0.6, -10, 2.5, -3, 8, 10, 5, 10, 0, 3, -5, 10)
	s.SetStrokeColor(c)
	s.SetLineWidth(1)
	s.Line(-4.5, 2, 4.5, 2)
	s.Line(-3, -3, 3, -3)
}

func croissant(s Surface, main *Color) {
	c := pick(main, SecondaryLight)
	s.SetFillColor(c)
	s.SetStrokeColor(Secondary)
	s.SetLineWidth(0.8)
	s.MoveTo(-10, 3)
	s.CurveTo(-8, -7, 8, -7, 10, 3)
	s.CurveTo(7, -1, 4, -2, 0, 1)
	s.CurveTo(-4, -2, -7, -1, -10, 3)
	s.ClosePath()
	s.DrawPath(FillStroke)

	for _, x := range []float64{-5, 0, 5} {
		s.Line(x, -4.5, x*0.8, 0)
	}
}

func fleurDeLis(s Surface, main *Color) {
	c := pick(main, Primary)
	s.SetFillColor(c)
	// center petal
	s.MoveTo(0, -10)
	s.CurveTo(4, -5, 3, 0, 0, 3)
	s.CurveTo(-3, 0, -4, -5, 0, -10)
	s.ClosePath()
	s.DrawPath(Fill)
	// side petals
	s.MoveTo(-1, 2)
	s.CurveTo(-10, 2, -10, -7, -5, -6)
	s.CurveTo(-7, -3, -5, 0, -1, 0)
	s.ClosePath()
	s.DrawPath(Fill)
	s.MoveTo(1, 2)
	s.CurveTo(10, 2, 10, -7, 5, -6)
	s.CurveTo(7, -3, 5, 0, 1, 0)
	s.ClosePath()
	s.DrawPath(Fill)
	// band and foot
	s.Rect(-5, 2.5, 10, 2, Fill)
	poly(s, Fill, -1.5, 4.5, 1.5, 4.5, 3, 10, -3, 10)
}

func beret(s Surface, main *Color) {
	c := pick(main, Coral)
	s.SetFillColor(c)
	s.Ellipse(0, 2, 9.5, 5, Fill)
	s.SetFillColor(c.Shade(-25))
	s.Ellipse(0, 5.5, 8, 1.5, Fill)
	s.Rect(-0.7, -5, 1.4, 3, Fill)
}

func bigBen(s Surface, main *Color) {
	c := pick(main, SecondaryLight)
	s.SetFillColor(c.Shade(-20))
	poly(s, Fill, -3.5, -4, 0, -10, 3.5, -4)
	s.SetFillColor(c)
	s.Rect(-3.5, -4, 7, 14, Fill)
	s.SetFillColor(White)
	s.SetStrokeColor(Text)
	s.SetLineWidth(0.6)
	s.Circle(0, -0.5, 2.5, FillStroke)
	s.Line(0, -0.5, 0, -2.3)
	s.Line(0, -0.5, 1.3, -0.5)
	s.SetStrokeColor(c.Shade(-30))
	s.Line(-3.5, 4, 3.5, 4)
	s.Line(-3.5, 7, 3.5, 7)
}

func doubleDecker(s Surface, main *Color) {
	c := pick(main, Coral)
	s.SetFillColor(c)
	s.RoundedRect(-10, -8, 20, 14, 2, Fill)

	s.SetFillColor(White)
	for _, x := range []float64{-8, -3.5, 1, 5.5} {
		s.Rect(x, -6.5, 3, 3, Fill)
		s.Rect(x, -1, 3, 3, Fill)
	}

	s.SetFillColor(Text)
	s.Circle(-5.5, 7, 2.5, Fill)
	s.Circle(5.5, 7, 2.5, Fill)
	s.SetFillColor(White)
	s.Circle(-5.5, 7, 0.9, Fill)
	s.Circle(5.5, 7, 0.9, Fill)
}

func crown(s Surface, main *Color) {
	c := pick(main, SecondaryLight)
	s.SetFillColor(c)
	s.SetStrokeColor(Secondary)
	s.SetLineWidth(0.7)
	poly(s, FillStroke, -9, 6, -9, -5, -4.5, 0, 0, -8, 4.5, 0, 9, -5, 9, 6)

	s.SetFillColor(Coral)
	s.Circle(-4.5, 3, 1.2, Fill)
	s.Circle(4.5, 3, 1.2, Fill)
	s.SetFillColor(Primary)
	s.Circle(0, 3, 1.4, Fill)
}

func teaCup(s Surface, main *Color) {
	c := pick(main, Primary)
	s.SetStrokeColor(c)
	s.SetLineWidth(1)
	s.Circle(6, 0.5, 2.6, Stroke)

	s.SetFillColor(White)
	poly(s, FillStroke, -7, -3, 6, -3, 4, 6, -5, 6)

	s.SetFillColor(c)
	s.Ellipse(-0.5, 7.5, 9, 1.5, Fill)

	// steam
	s.SetStrokeColor(TextLight)
	s.SetLineWidth(0.6)
	s.MoveTo(-2, -5)
	s.CurveTo(-3, -7, -1, -8, -2, -10)
	s.DrawPath(Stroke)
	s.MoveTo(1.5, -5)
	s.CurveTo(0.5, -7, 2.5, -8, 1.5, -10)
	s.DrawPath(Stroke)
}

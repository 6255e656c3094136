package draw

func airplane(s Surface, main *Color) {
	body := pick(main, Primary)
	s.SetFillColor(body.Shade(-20))
	// wings
	poly(s, Fill, -2, -1, 3, -1, -1, -9, -4, -9)
	poly(s, Fill, -2, 1, 3, 1, -1, 9, -4, 9)
	// tail
	poly(s, Fill, -9, -1, -6, -1, -9, -5, -10, -5)

	s.SetFillColor(body)
	s.Ellipse(0, 0, 9.5, 2.2, Fill)

	s.SetFillColor(White)
	for _, x := range []float64{-4, -1.5, 1, 3.5} {
		s.Circle(x, -0.3, 0.6, Fill)
	}
}

func suitcase(s Surface, main *Color) {
	c := pick(main, Secondary)
	s.SetStrokeColor(c.Shade(-30))
	s.SetLineWidth(1.5)
	s.RoundedRect(-3.5, -9, 7, 5, 1.5, Stroke)

	s.SetFillColor(c)
	s.RoundedRect(-9.5, -5, 19, 14, 2, Fill)

	s.SetStrokeColor(c.Shade(-30))
	s.SetLineWidth(1.2)
	s.Line(-5, -5, -5, 9)
	s.Line(5, -5, 5, 9)

	s.SetFillColor(SecondaryLight)
	s.Rect(-2, 0, 4, 2, Fill)
}

func compass(s Surface, main *Color) {
	c := pick(main, Primary)
	s.SetFillColor(White)
	s.SetStrokeColor(c)
	s.SetLineWidth(1.5)
	s.Circle(0, 0, 9, FillStroke)

	s.SetLineWidth(0.5)
	s.Circle(0, 0, 7, Stroke)

	s.SetFillColor(Coral)
	poly(s, Fill, 0, -7, 2, 0, -2, 0)
	s.SetFillColor(TextLight)
	poly(s, Fill, 0, 7, 2, 0, -2, 0)

	s.SetFillColor(c)
	s.Circle(0, 0, 1, Fill)
}

func starIcon(s Surface, main *Color) {
	Star(s, 0, 0, 10, 5, 4, pick(main, SecondaryLight))
}

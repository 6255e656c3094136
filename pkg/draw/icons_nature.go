package draw

var (
	bark         = Hex("#8B5A2B")
	sand         = Hex("#F4D6A0")
	elephantGray = Hex("#8D99AE")
)

func palmTree(s Surface, main *Color) {
	s.SetFillColor(bark)
	s.MoveTo(-1.5, 10)
	s.CurveTo(-1, 4, 0, -1, 1, -4)
	s.LineTo(2.5, -4)
	s.CurveTo(1.5, 0, 1, 5, 1.5, 10)
	s.ClosePath()
	s.DrawPath(Fill)

	c := pick(main, leafGreen)
	s.SetFillColor(c)
	leaves := [][4]float64{
		{-10, -2, -6, -8},
		{10, -2, 6, -8},
		{-7, -10, -2, -9},
		{7, -10, 3, -10},
	}
	for _, l := range leaves {
		s.MoveTo(1.5, -4)
		s.CurveTo(l[2], l[3], l[0], l[1], l[0], l[1])
		s.CurveTo(l[2]*0.6, l[3]*0.4, 1.5, -3, 1.5, -3)
		s.ClosePath()
		s.DrawPath(Fill)
	}
	s.SetFillColor(bark.Shade(-30))
	s.Circle(0.5, -2.5, 1.1, Fill)
	s.Circle(2.6, -2.2, 1.1, Fill)
}

func seashell(s Surface, main *Color) {
	c := pick(main, sand)
	s.SetFillColor(c)
	s.SetStrokeColor(Secondary)
	s.SetLineWidth(0.7)
	s.MoveTo(0, 9)
	s.LineTo(-9, -2)
	s.CurveTo(-7, -10, 7, -10, 9, -2)
	s.ClosePath()
	s.DrawPath(FillStroke)
	for _, x := range []float64{-6, -3, 0, 3, 6} {
		s.Line(0, 9, x, -6.5)
	}
}

func starfish(s Surface, main *Color) {
	Star(s, 0, 0.5, 9.5, 5, 4.2, pick(main, Coral))
}

func wave(s Surface, main *Color) {
	c := pick(main, Primary)
	s.SetFillColor(c)
	s.MoveTo(-10, 8)
	s.CurveTo(-10, -4, -2, -10, 4, -6)
	s.CurveTo(0, -6, -1, -1, 3, 0)
	s.CurveTo(6, 1, 8, -2, 10, -1)
	s.LineTo(10, 8)
	s.ClosePath()
	s.DrawPath(Fill)

	s.SetStrokeColor(PrimaryLight)
	s.SetLineWidth(1)
	s.MoveTo(-8, 6)
	s.CurveTo(-8, -2, -2, -7, 3, -5.5)
	s.DrawPath(Stroke)
}

func sun(s Surface, main *Color) {
	c := pick(main, SecondaryLight)
	s.SetStrokeColor(Secondary)
	s.SetLineWidth(1.5)
	for _, d := range [][4]float64{
		{0, -7, 0, -10}, {0, 7, 0, 10}, {-7, 0, -10, 0}, {7, 0, 10, 0},
		{-5, -5, -7, -7}, {5, -5, 7, -7}, {-5, 5, -7, 7}, {5, 5, 7, 7},
	} {
		s.Line(d[0], d[1], d[2], d[3])
	}
	s.SetFillColor(c)
	s.Circle(0, 0, 5.5, Fill)
}

func elephantIcon(s Surface, main *Color) {
	c := pick(main, elephantGray)
	s.SetFillColor(c)
	// legs
	for _, x := range []float64{-2, 1, 4, 7} {
		s.Rect(x-1, 3, 2.2, 6, Fill)
	}
	s.Ellipse(2.5, 0, 7, 5, Fill)
	s.Circle(-5, -3, 4, Fill)
	// trunk
	s.MoveTo(-8, -2)
	s.CurveTo(-10, 2, -10, 6, -8, 9)
	s.LineTo(-6.5, 8.5)
	s.CurveTo(-8, 5, -7.5, 2, -5.5, 0)
	s.ClosePath()
	s.DrawPath(Fill)
	// ear
	s.SetFillColor(c.Shade(-15))
	s.Ellipse(-3, -2.5, 2.5, 3.5, Fill)
	s.SetFillColor(Text)
	s.Circle(-6.5, -4.5, 0.6, Fill)
}

func giraffe(s Surface, main *Color) {
	c := pick(main, SecondaryLight)
	s.SetFillColor(c)
	// legs
	for _, x := range []float64{-4, -1.5, 3, 5.5} {
		s.Rect(x, 3, 1.4, 7, Fill)
	}
	s.Ellipse(1, 2, 6, 3, Fill)
	// neck
	poly(s, Fill, -4, 1, -1, 0, -3, -8, -5.5, -8)
	// head
	s.Ellipse(-5.5, -8.5, 3, 1.5, Fill)

	s.SetFillColor(Secondary)
	for _, p := range [][2]float64{{-1, 1.5}, {2.5, 2.5}, {5, 1}, {-3.5, -3}, {-4, -6}} {
		s.Circle(p[0], p[1], 0.9, Fill)
	}
	s.SetStrokeColor(Secondary)
	s.SetLineWidth(0.6)
	s.Line(-4.5, -10, -4.5, -9)
	s.Line(-3.5, -10, -3.5, -9)
}

func acaciaTree(s Surface, main *Color) {
	s.SetStrokeColor(bark)
	s.SetLineWidth(1.5)
	s.Line(0, 10, 0, -2)
	s.Line(0, 1, -5, -4)
	s.Line(0, -1, 5, -4)

	s.SetFillColor(pick(main, darkGreen))
	s.Ellipse(0, -5, 10, 3.5, Fill)
}

func lionFace(s Surface, main *Color) {
	mane := pick(main, Secondary)
	s.SetFillColor(mane)
	s.Circle(0, 0, 10, Fill)
	s.SetFillColor(SecondaryLight)
	s.Circle(0, 0.5, 6.5, Fill)

	// ears
	s.Circle(-5, -5.5, 1.8, Fill)
	s.Circle(5, -5.5, 1.8, Fill)

	s.SetFillColor(Text)
	s.Circle(-2.3, -1.3, 0.9, Fill)
	s.Circle(2.3, -1.3, 0.9, Fill)
	poly(s, Fill, -1.5, 1.5, 1.5, 1.5, 0, 3.2)
	s.SetStrokeColor(Text)
	s.SetLineWidth(0.5)
	s.Line(0, 3.2, 0, 4.5)
	s.Line(0, 4.5, -1.8, 5.3)
	s.Line(0, 4.5, 1.8, 5.3)
}

package draw

var (
	leafGreen = Hex("#2D9D5C")
	darkGreen = Hex("#1B6B3A")
)

func toucan(s Surface, main *Color) {
	// body
	s.SetFillColor(Text)
	s.Ellipse(-2, 2, 5, 7, Fill)
	// chest
	s.SetFillColor(SecondaryLight)
	s.Ellipse(-0.5, -1, 3, 3, Fill)
	// beak
	s.SetFillColor(pick(main, Secondary))
	s.MoveTo(1.5, -4)
	s.CurveTo(5, -6, 9, -4, 10, -2)
	s.CurveTo(7, -1, 4, -1, 1.5, -1)
	s.ClosePath()
	s.DrawPath(Fill)
	// eye
	s.SetFillColor(White)
	s.Circle(-0.5, -4.5, 1.4, Fill)
	s.SetFillColor(Text)
	s.Circle(-0.3, -4.5, 0.6, Fill)
	// tail
	s.SetFillColor(Text)
	poly(s, Fill, -5, 7, -3, 7, -6, 10, -8, 10)
}

func monsteraLeaf(s Surface, main *Color) {
	c := pick(main, leafGreen)
	s.SetFillColor(c)
	s.MoveTo(0, 10)
	s.CurveTo(-9, 6, -10, -4, -3, -9)
	s.CurveTo(0, -10, 3, -10, 5, -8)
	s.CurveTo(10, -4, 9, 6, 0, 10)
	s.ClosePath()
	s.DrawPath(Fill)

	s.SetStrokeColor(c.Shade(-30))
	s.SetLineWidth(0.8)
	s.Line(0, 10, 1, -9)

	// slits
	s.SetStrokeColor(White)
	s.SetLineWidth(1)
	s.Line(-7, 1, -2, 2)
	s.Line(-6, -5, -1, -3)
	s.Line(7, 0, 2, 2)
	s.Line(6, -5, 2, -3)
}

func butterfly(s Surface, main *Color) {
	c := pick(main, AccentLight)
	s.SetFillColor(c)
	s.Ellipse(-5, -3, 4.5, 4, Fill)
	s.Ellipse(5, -3, 4.5, 4, Fill)
	s.SetFillColor(c.Shade(-20))
	s.Ellipse(-4, 4, 3.5, 3, Fill)
	s.Ellipse(4, 4, 3.5, 3, Fill)

	s.SetFillColor(Text)
	s.Ellipse(0, 0, 1, 7, Fill)
	s.SetStrokeColor(Text)
	s.SetLineWidth(0.5)
	s.Line(0, -7, -2, -10)
	s.Line(0, -7, 2, -10)
}

func tropicalFlower(s Surface, main *Color) {
	c := pick(main, Coral)
	s.SetFillColor(c)
	for _, p := range [][2]float64{{0, -5}, {4.8, -1.5}, {3, 4}, {-3, 4}, {-4.8, -1.5}} {
		s.Circle(p[0], p[1], 4.5, Fill)
	}
	s.SetFillColor(SecondaryLight)
	s.Circle(0, 0, 2.5, Fill)
}

func palmFrond(s Surface, main *Color) {
	c := pick(main, leafGreen)
	s.SetStrokeColor(c.Shade(-20))
	s.SetLineWidth(1.2)
	s.MoveTo(-9, 9)
	s.CurveTo(-4, 2, 2, -4, 9, -9)
	s.DrawPath(Stroke)

	s.SetStrokeColor(c)
	s.SetLineWidth(1.5)
	for i := 1; i <= 5; i++ {
		t := float64(i) * 3
		x := -9 + t
		y := 9 - t
		s.Line(x, y, x-4, y-3)
		s.Line(x, y, x+3, y+4)
	}
}

func hummingbird(s Surface, main *Color) {
	c := pick(main, Success)
	// wing
	s.SetFillColor(c.Shade(-25))
	poly(s, Fill, -2, -1, 2, -1, -4, -9)
	// body
	s.SetFillColor(c)
	s.Ellipse(-1, 1, 6, 2.8, Fill)
	// tail
	poly(s, Fill, -6, 1, -10, -1, -10, 4)
	// head and beak
	s.Circle(5, -0.5, 2.2, Fill)
	s.SetStrokeColor(Text)
	s.SetLineWidth(0.6)
	s.Line(7, -0.5, 10, 0)
	s.SetFillColor(Text)
	s.Circle(5.6, -1, 0.5, Fill)
}

func smallLeaf(s Surface, main *Color) {
	c := pick(main, Success)
	s.SetFillColor(c)
	s.MoveTo(0, -10)
	s.CurveTo(7, -4, 7, 4, 0, 10)
	s.CurveTo(-7, 4, -7, -4, 0, -10)
	s.ClosePath()
	s.DrawPath(Fill)
	s.SetStrokeColor(c.Shade(-30))
	s.SetLineWidth(0.6)
	s.Line(0, -8, 0, 9)
}

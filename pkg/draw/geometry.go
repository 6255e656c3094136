package draw

// PageSize is a page format in points.
type PageSize struct {
	Name   string
	Width  float64
	Height float64
}

var (
	// HalfLetter is the journal page format (5.5 x 8.5 in).
	HalfLetter = PageSize{Name: "half-letter", Width: 396, Height: 612}
	// CardLandscape is a 7 x 5 in greeting card.
	CardLandscape = PageSize{Name: "card", Width: 504, Height: 360}
	// LetterLandscape is used for slides.
	LetterLandscape = PageSize{Name: "letter-landscape", Width: 792, Height: 612}
)

// Journal page geometry.
const (
	PageWidth    = 396.0
	PageHeight   = 612.0
	Margin       = 36.0
	ContentWidth = PageWidth - 2*Margin
	LineHeight   = 18.0
	// PageBottom is the lowest y any content may reach.
	PageBottom = PageHeight - Margin - 10
	// ContentTop is where flowing content starts on a bordered page.
	ContentTop = Margin + 15
)

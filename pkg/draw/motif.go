package draw

import (
	"fmt"

	"github.com/akeil/tripjournal/internal/geom"
)

// Motif is a small decorative icon.
type Motif int

const (
	Airplane Motif = iota
	Suitcase
	Compass
	StarMotif
	Toucan
	MonsteraLeaf
	Butterfly
	TropicalFlower
	PalmFrond
	Hummingbird
	SmallLeaf
	CherryBlossom
	ToriiGate
	MtFuji
	KoiFish
	Lantern
	EiffelTower
	Croissant
	FleurDeLis
	Beret
	BigBen
	DoubleDecker
	Crown
	TeaCup
	PalmTree
	Seashell
	Starfish
	Wave
	Sun
	Elephant
	Giraffe
	AcaciaTree
	LionFace
)

var motifNames = map[Motif]string{
	Airplane:       "airplane",
	Suitcase:       "suitcase",
	Compass:        "compass",
	StarMotif:      "star",
	Toucan:         "toucan",
	MonsteraLeaf:   "monstera-leaf",
	Butterfly:      "butterfly",
	TropicalFlower: "tropical-flower",
	PalmFrond:      "palm-frond",
	Hummingbird:    "hummingbird",
	SmallLeaf:      "small-leaf",
	CherryBlossom:  "cherry-blossom",
	ToriiGate:      "torii-gate",
	MtFuji:         "mt-fuji",
	KoiFish:        "koi-fish",
	Lantern:        "lantern",
	EiffelTower:    "eiffel-tower",
	Croissant:      "croissant",
	FleurDeLis:     "fleur-de-lis",
	Beret:          "beret",
	BigBen:         "big-ben",
	DoubleDecker:   "double-decker",
	Crown:          "crown",
	TeaCup:         "tea-cup",
	PalmTree:       "palm-tree",
	Seashell:       "seashell",
	Starfish:       "starfish",
	Wave:           "wave",
	Sun:            "sun",
	Elephant:       "elephant",
	Giraffe:        "giraffe",
	AcaciaTree:     "acacia-tree",
	LionFace:       "lion-face",
}

func (m Motif) String() string {
	n, ok := motifNames[m]
	if !ok {
		return fmt.Sprintf("motif(%d)", int(m))
	}
	return n
}

// Motifs lists all known motifs.
func Motifs() []Motif {
	all := make([]Motif, 0, len(motifNames))
	for m := Airplane; m <= LionFace; m++ {
		all = append(all, m)
	}
	return all
}

// MotifOptions modify how a motif is drawn.
type MotifOptions struct {
	// Rotation in degrees, clockwise.
	Rotation float64
	// Flip mirrors the motif horizontally.
	Flip bool
	// Color replaces the main color of motifs that have one.
	Color *Color
}

// motifBox is the side of the square every icon is drawn in, centered on
// the origin.
const motifBox = 20.0

type iconFunc func(s Surface, main *Color)

var icons = map[Motif]iconFunc{
	Airplane:       airplane,
	Suitcase:       suitcase,
	Compass:        compass,
	StarMotif:      starIcon,
	Toucan:         toucan,
	MonsteraLeaf:   monsteraLeaf,
	Butterfly:      butterfly,
	TropicalFlower: tropicalFlower,
	PalmFrond:      palmFrond,
	Hummingbird:    hummingbird,
	SmallLeaf:      smallLeaf,
	CherryBlossom:  cherryBlossom,
	ToriiGate:      toriiGate,
	MtFuji:         mtFuji,
	KoiFish:        koiFish,
	Lantern:        lantern,
	EiffelTower:    eiffelTower,
	Croissant:      croissant,
	FleurDeLis:     fleurDeLis,
	Beret:          beret,
	BigBen:         bigBen,
	DoubleDecker:   doubleDecker,
	Crown:          crown,
	TeaCup:         teaCup,
	PalmTree:       palmTree,
	Seashell:       seashell,
	Starfish:       starfish,
	Wave:           wave,
	Sun:            sun,
	Elephant:       elephantIcon,
	Giraffe:        giraffe,
	AcaciaTree:     acaciaTree,
	LionFace:       lionFace,
}

// DrawMotif draws motif m centered on cx, cy, scaled to size points.
func DrawMotif(s Surface, m Motif, cx, cy, size float64, opts MotifOptions) {
	f, ok := icons[m]
	if !ok {
		f = starIcon
	}
	k := size / motifBox
	sx := k
	if opts.Flip {
		sx = -k
	}
	s.Push()
	s.Translate(cx, cy)
	if opts.Rotation != 0 {
		s.Rotate(opts.Rotation)
	}
	s.Scale(sx, k)
	f(s, opts.Color)
	s.Pop()
	Reset(s)
}

// MotifBounds returns the area a motif occupies on the page when drawn
// with DrawMotif. Rotation is taken into account.
func MotifBounds(cx, cy, size, rotation float64) geom.Rect {
	half := size / 2
	local := geom.R(-half, -half, size, size)
	m := geom.Multiply(geom.Translation(cx, cy), geom.Rotation(geom.Radians(rotation)))
	return m.TransformRect(local)
}

func pick(main *Color, fallback Color) Color {
	if main != nil {
		return *main
	}
	return fallback
}

// poly adds a closed polygon and paints it.
func poly(s Surface, op Op, pts ...float64) {
	for i := 0; i+1 < len(pts); i += 2 {
		if i == 0 {
			s.MoveTo(pts[i], pts[i+1])
		} else {
			s.LineTo(pts[i], pts[i+1])
		}
	}
	s.ClosePath()
	s.DrawPath(op)
}

package theme

import (
	"fmt"

	"github.com/akeil/tripjournal/internal/geom"
	"github.com/akeil/tripjournal/pkg/draw"
)

// Decoration is one motif placed at a fixed position.
type Decoration struct {
	Motif    draw.Motif
	X, Y     float64
	Size     float64
	Rotation float64
	Flip     bool
	Color    *draw.Color
}

// Bounds is the page area covered by the decoration.
func (d Decoration) Bounds() geom.Rect {
	return draw.MotifBounds(d.X, d.Y, d.Size, d.Rotation)
}

// Draw paints the decoration.
func (d Decoration) Draw(s draw.Surface) {
	draw.DrawMotif(s, d.Motif, d.X, d.Y, d.Size, draw.MotifOptions{
		Rotation: d.Rotation,
		Flip:     d.Flip,
		Color:    d.Color,
	})
}

// Table is the read-only lookup of decorations per theme and zone.
// Build it once with NewTable and share it; it is never modified.
type Table struct {
	entries map[Theme]map[ZoneID][]Decoration
}

// NewTable builds the decoration table.
func NewTable() *Table {
	return &Table{entries: placements()}
}

// Decorations returns the decorations for a theme and zone. If the theme
// has no entry for the zone, the Travel entry is used.
func (t *Table) Decorations(th Theme, z ZoneID) []Decoration {
	src, ok := t.entries[th][z]
	if !ok {
		src = t.entries[Travel][z]
	}
	out := make([]Decoration, len(src))
	copy(out, src)
	return out
}

// Draw paints all decorations for the theme in the zone and returns them.
func (t *Table) Draw(s draw.Surface, th Theme, z ZoneID) []Decoration {
	decos := t.Decorations(th, z)
	for _, d := range decos {
		d.Draw(s)
	}
	return decos
}

// Validate checks that every decoration lies inside its zone and clear of
// the content frame, and that Travel covers every zone.
func (t *Table) Validate() error {
	for _, z := range Zones() {
		if len(t.entries[Travel][z]) == 0 {
			return fmt.Errorf("no travel decorations for zone %v", z)
		}
	}
	for th, byZone := range t.entries {
		for zid, decos := range byZone {
			zone, ok := ZoneByID(zid)
			if !ok {
				return fmt.Errorf("theme %v: unknown zone %v", th, zid)
			}
			for _, d := range decos {
				if !zone.Fits(d.Bounds()) {
					return fmt.Errorf("theme %v, zone %v: %v at %v does not fit", th, zid, d.Motif, d.Bounds())
				}
			}
		}
	}
	return nil
}

func color(c draw.Color) *draw.Color {
	return &c
}

// corners places one motif in each corner of the sketch box.
func corners(m ...draw.Motif) []Decoration {
	pts := [][2]float64{
		{SketchBox.X + 17, SketchBox.Y + 17},
		{SketchBox.Right() - 17, SketchBox.Y + 17},
		{SketchBox.X + 17, SketchBox.Bottom() - 17},
		{SketchBox.Right() - 17, SketchBox.Bottom() - 17},
	}
	out := make([]Decoration, len(pts))
	for i, p := range pts {
		out[i] = Decoration{Motif: m[i%len(m)], X: p[0], Y: p[1], Size: 18}
	}
	return out
}

func placements() map[Theme]map[ZoneID][]Decoration {
	return map[Theme]map[ZoneID][]Decoration{
		Travel: {
			CoverTop: {
				{Motif: draw.Airplane, X: 70, Y: 50, Size: 36, Rotation: -15, Color: color(draw.White)},
				{Motif: draw.StarMotif, X: 200, Y: 30, Size: 14},
				{Motif: draw.Compass, X: 330, Y: 55, Size: 34},
			},
			CoverBottom: {
				{Motif: draw.Suitcase, X: 60, Y: 480, Size: 32},
				{Motif: draw.StarMotif, X: 200, Y: 520, Size: 12},
				{Motif: draw.Airplane, X: 330, Y: 470, Size: 30, Rotation: 10, Color: color(draw.White)},
			},
			HeaderAccent: {
				{Motif: draw.Airplane, X: 345, Y: 25, Size: 22, Rotation: -10, Color: color(draw.White)},
				{Motif: draw.StarMotif, X: 378, Y: 14, Size: 10},
			},
			SketchCorners: corners(draw.StarMotif),
			ReflectionsCorners: {
				{Motif: draw.Compass, X: 25, Y: 25, Size: 24},
				{Motif: draw.Airplane, X: 371, Y: 25, Size: 24, Rotation: 20},
				{Motif: draw.Suitcase, X: 25, Y: 589, Size: 20},
				{Motif: draw.StarMotif, X: 371, Y: 589, Size: 16},
			},
			FinalCorners: {
				{Motif: draw.StarMotif, X: 40, Y: 29, Size: 18},
				{Motif: draw.Airplane, X: 356, Y: 29, Size: 26, Rotation: -10, Color: color(draw.White)},
				{Motif: draw.StarMotif, X: 40, Y: 593, Size: 14},
				{Motif: draw.Compass, X: 356, Y: 593, Size: 16},
			},
		},
		Japan: {
			CoverTop: {
				{Motif: draw.CherryBlossom, X: 50, Y: 40, Size: 24},
				{Motif: draw.CherryBlossom, X: 90, Y: 70, Size: 16},
				{Motif: draw.Lantern, X: 200, Y: 45, Size: 24},
				{Motif: draw.MtFuji, X: 330, Y: 60, Size: 44, Color: color(draw.PrimaryLight)},
			},
			CoverBottom: {
				{Motif: draw.ToriiGate, X: 70, Y: 480, Size: 44},
				{Motif: draw.KoiFish, X: 200, Y: 520, Size: 30, Flip: true},
				{Motif: draw.CherryBlossom, X: 330, Y: 470, Size: 22},
				{Motif: draw.CherryBlossom, X: 360, Y: 510, Size: 14},
			},
			HeaderAccent: {
				{Motif: draw.CherryBlossom, X: 340, Y: 18, Size: 16},
				{Motif: draw.CherryBlossom, X: 372, Y: 34, Size: 12},
			},
			SketchCorners: corners(draw.CherryBlossom, draw.KoiFish, draw.Lantern, draw.CherryBlossom),
			ReflectionsCorners: {
				{Motif: draw.ToriiGate, X: 25, Y: 25, Size: 26},
				{Motif: draw.CherryBlossom, X: 371, Y: 25, Size: 22},
				{Motif: draw.Lantern, X: 25, Y: 589, Size: 20},
				{Motif: draw.MtFuji, X: 371, Y: 589, Size: 20},
			},
			FinalCorners: {
				{Motif: draw.MtFuji, X: 48, Y: 29, Size: 34, Color: color(draw.PrimaryLight)},
				{Motif: draw.CherryBlossom, X: 350, Y: 25, Size: 20},
				{Motif: draw.CherryBlossom, X: 378, Y: 42, Size: 12},
				{Motif: draw.KoiFish, X: 60, Y: 593, Size: 18},
				{Motif: draw.CherryBlossom, X: 336, Y: 593, Size: 14},
			},
		},
		Paris: {
			CoverTop: {
				{Motif: draw.EiffelTower, X: 60, Y: 50, Size: 50, Color: color(draw.White)},
				{Motif: draw.FleurDeLis, X: 200, Y: 30, Size: 18, Color: color(draw.SecondaryLight)},
				{Motif: draw.Croissant, X: 330, Y: 55, Size: 32},
			},
			CoverBottom: {
				{Motif: draw.Beret, X: 70, Y: 470, Size: 32},
				{Motif: draw.Croissant, X: 200, Y: 525, Size: 24},
				{Motif: draw.FleurDeLis, X: 330, Y: 480, Size: 26, Color: color(draw.SecondaryLight)},
			},
			HeaderAccent: {
				{Motif: draw.FleurDeLis, X: 342, Y: 25, Size: 22, Color: color(draw.White)},
				{Motif: draw.StarMotif, X: 375, Y: 15, Size: 10},
			},
			SketchCorners: corners(draw.FleurDeLis, draw.Croissant, draw.Beret, draw.EiffelTower),
			ReflectionsCorners: {
				{Motif: draw.EiffelTower, X: 25, Y: 25, Size: 28},
				{Motif: draw.FleurDeLis, X: 371, Y: 25, Size: 22},
				{Motif: draw.Croissant, X: 25, Y: 589, Size: 22},
				{Motif: draw.Beret, X: 371, Y: 589, Size: 20},
			},
			FinalCorners: {
				{Motif: draw.EiffelTower, X: 40, Y: 29, Size: 36, Color: color(draw.White)},
				{Motif: draw.FleurDeLis, X: 356, Y: 29, Size: 22, Color: color(draw.SecondaryLight)},
				{Motif: draw.Croissant, X: 60, Y: 593, Size: 20},
				{Motif: draw.Beret, X: 336, Y: 593, Size: 18},
			},
		},
		London: {
			CoverTop: {
				{Motif: draw.BigBen, X: 60, Y: 50, Size: 56},
				{Motif: draw.Crown, X: 200, Y: 30, Size: 20},
				{Motif: draw.DoubleDecker, X: 330, Y: 60, Size: 40},
			},
			CoverBottom: {
				{Motif: draw.TeaCup, X: 70, Y: 480, Size: 30},
				{Motif: draw.DoubleDecker, X: 200, Y: 515, Size: 30},
				{Motif: draw.Crown, X: 330, Y: 480, Size: 26},
			},
			HeaderAccent: {
				{Motif: draw.Crown, X: 342, Y: 25, Size: 20},
				{Motif: draw.TeaCup, X: 374, Y: 25, Size: 16},
			},
			SketchCorners: corners(draw.Crown, draw.TeaCup, draw.BigBen, draw.DoubleDecker),
			ReflectionsCorners: {
				{Motif: draw.BigBen, X: 25, Y: 25, Size: 28},
				{Motif: draw.Crown, X: 371, Y: 25, Size: 22},
				{Motif: draw.TeaCup, X: 25, Y: 589, Size: 20},
				{Motif: draw.DoubleDecker, X: 371, Y: 589, Size: 22},
			},
			FinalCorners: {
				{Motif: draw.BigBen, X: 40, Y: 29, Size: 34},
				{Motif: draw.Crown, X: 356, Y: 29, Size: 24},
				{Motif: draw.TeaCup, X: 60, Y: 593, Size: 18},
				{Motif: draw.DoubleDecker, X: 336, Y: 593, Size: 20},
			},
		},
		Tropical: {
			CoverTop: {
				{Motif: draw.MonsteraLeaf, X: 40, Y: 40, Size: 44, Rotation: 30},
				{Motif: draw.Hummingbird, X: 200, Y: 35, Size: 24},
				{Motif: draw.Toucan, X: 340, Y: 55, Size: 40, Flip: true},
			},
			CoverBottom: {
				{Motif: draw.PalmFrond, X: 55, Y: 490, Size: 50, Rotation: -10},
				{Motif: draw.TropicalFlower, X: 200, Y: 525, Size: 24},
				{Motif: draw.Butterfly, X: 330, Y: 470, Size: 26, Color: color(draw.AccentLight)},
				{Motif: draw.TropicalFlower, X: 360, Y: 520, Size: 18, Color: color(draw.Secondary)},
			},
			HeaderAccent: {
				{Motif: draw.TropicalFlower, X: 340, Y: 20, Size: 18},
				{Motif: draw.SmallLeaf, X: 372, Y: 30, Size: 16, Rotation: 30},
			},
			SketchCorners: corners(draw.Butterfly, draw.TropicalFlower, draw.SmallLeaf, draw.Hummingbird),
			ReflectionsCorners: {
				{Motif: draw.MonsteraLeaf, X: 25, Y: 25, Size: 28},
				{Motif: draw.Butterfly, X: 371, Y: 25, Size: 20},
				{Motif: draw.TropicalFlower, X: 25, Y: 589, Size: 20},
				{Motif: draw.Hummingbird, X: 371, Y: 589, Size: 20},
			},
			FinalCorners: {
				{Motif: draw.MonsteraLeaf, X: 40, Y: 29, Size: 34, Rotation: 20},
				{Motif: draw.Toucan, X: 356, Y: 29, Size: 30, Flip: true},
				{Motif: draw.Butterfly, X: 60, Y: 593, Size: 18},
				{Motif: draw.TropicalFlower, X: 336, Y: 593, Size: 18},
			},
		},
		Beach: {
			CoverTop: {
				{Motif: draw.StarMotif, X: 60, Y: 40, Size: 16},
				{Motif: draw.Seashell, X: 120, Y: 70, Size: 20},
				{Motif: draw.Sun, X: 340, Y: 50, Size: 44},
			},
			CoverBottom: {
				{Motif: draw.PalmTree, X: 60, Y: 470, Size: 60},
				{Motif: draw.Wave, X: 200, Y: 520, Size: 36, Color: color(draw.PrimaryLight)},
				{Motif: draw.Starfish, X: 330, Y: 490, Size: 28},
				{Motif: draw.Seashell, X: 370, Y: 530, Size: 18},
			},
			HeaderAccent: {
				{Motif: draw.Sun, X: 342, Y: 25, Size: 22},
				{Motif: draw.Starfish, X: 375, Y: 30, Size: 14},
			},
			SketchCorners: corners(draw.Starfish, draw.Seashell, draw.Wave, draw.Sun),
			ReflectionsCorners: {
				{Motif: draw.Sun, X: 25, Y: 25, Size: 26},
				{Motif: draw.PalmTree, X: 371, Y: 25, Size: 28},
				{Motif: draw.Seashell, X: 25, Y: 589, Size: 20},
				{Motif: draw.Starfish, X: 371, Y: 589, Size: 20},
			},
			FinalCorners: {
				{Motif: draw.Sun, X: 40, Y: 29, Size: 34},
				{Motif: draw.PalmTree, X: 356, Y: 29, Size: 34},
				{Motif: draw.Starfish, X: 60, Y: 593, Size: 18},
				{Motif: draw.Seashell, X: 336, Y: 593, Size: 18},
			},
		},
		Safari: {
			CoverTop: {
				{Motif: draw.AcaciaTree, X: 70, Y: 60, Size: 50},
				{Motif: draw.StarMotif, X: 200, Y: 30, Size: 14},
				{Motif: draw.Sun, X: 340, Y: 45, Size: 40},
			},
			CoverBottom: {
				{Motif: draw.Elephant, X: 70, Y: 480, Size: 44},
				{Motif: draw.Giraffe, X: 200, Y: 490, Size: 50},
				{Motif: draw.LionFace, X: 330, Y: 480, Size: 40},
			},
			HeaderAccent: {
				{Motif: draw.LionFace, X: 342, Y: 25, Size: 22},
				{Motif: draw.AcaciaTree, X: 375, Y: 28, Size: 18},
			},
			SketchCorners: corners(draw.LionFace, draw.Elephant, draw.Giraffe, draw.AcaciaTree),
			ReflectionsCorners: {
				{Motif: draw.AcaciaTree, X: 25, Y: 25, Size: 26},
				{Motif: draw.LionFace, X: 371, Y: 25, Size: 24},
				{Motif: draw.Elephant, X: 25, Y: 589, Size: 22},
				{Motif: draw.Giraffe, X: 371, Y: 589, Size: 22},
			},
			FinalCorners: {
				{Motif: draw.Giraffe, X: 40, Y: 29, Size: 34},
				{Motif: draw.LionFace, X: 356, Y: 29, Size: 30},
				{Motif: draw.Elephant, X: 60, Y: 593, Size: 20},
				{Motif: draw.AcaciaTree, X: 336, Y: 593, Size: 20},
			},
		},
	}
}

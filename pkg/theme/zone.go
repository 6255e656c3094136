package theme

import (
	"fmt"

	"github.com/akeil/tripjournal/internal/geom"
	"github.com/akeil/tripjournal/pkg/draw"
)

// ZoneID names a page area reserved for decorations.
type ZoneID int

const (
	CoverTop ZoneID = iota
	CoverBottom
	HeaderAccent
	SketchCorners
	ReflectionsCorners
	FinalCorners
)

var zoneNames = map[ZoneID]string{
	CoverTop:           "cover-top",
	CoverBottom:        "cover-bottom",
	HeaderAccent:       "header-accent",
	SketchCorners:      "sketch-corners",
	ReflectionsCorners: "reflections-corners",
	FinalCorners:       "final-corners",
}

func (z ZoneID) String() string {
	n, ok := zoneNames[z]
	if !ok {
		return fmt.Sprintf("zone(%d)", int(z))
	}
	return n
}

// Zone is a set of rectangles reserved for decoration on one page type,
// together with the content frame of that page type.
// Regions never intersect the frame.
type Zone struct {
	ID      ZoneID
	Regions []geom.Rect
	Frame   []geom.Rect
}

// Page geometry shared by the composer and the zones. It does not depend
// on the theme.
var (
	// CoverCard is the framed title card on the cover.
	CoverCard = geom.R(30, 110, 336, 300)
	// CoverTagline holds the line at the bottom of the cover.
	CoverTagline = geom.R(draw.Margin, 556, draw.ContentWidth, 30)

	// HeaderBarHeight is the height of the colored bar on daily pages.
	HeaderBarHeight = 50.0
	// HeaderText is the part of the header bar with the day badge and title.
	HeaderText = geom.R(30, 0, 275, HeaderBarHeight)
	// DailyBody is where prompts and writing lines go on the first daily page.
	DailyBody = geom.R(draw.Margin, HeaderBarHeight+5, draw.ContentWidth, draw.PageBottom-HeaderBarHeight-5)

	// SketchHead holds the banner and sketch prompt of the second daily page.
	SketchHead = geom.R(24, draw.ContentTop, draw.PageWidth-48, SketchBox.Y-draw.ContentTop-3)
	// SketchBox is the drawing area of the second daily page.
	SketchBox = geom.R(draw.Margin, 120, draw.ContentWidth, 180)
	// SketchBelow holds the word/summary boxes and the remember lines.
	SketchBelow = geom.R(draw.Margin, SketchBox.Bottom()+5, draw.ContentWidth, draw.PageBottom-SketchBox.Bottom()-5)

	// BorderedContent is the content frame of a page with a border.
	BorderedContent = geom.R(draw.Margin, draw.ContentTop, draw.ContentWidth, draw.PageBottom-draw.ContentTop)

	// FinalCard is the white card on the last page.
	FinalCard = geom.R(25, 60, draw.PageWidth-50, 512)
)

// sketchCorner is the side of the corner squares inside the sketch box.
const sketchCorner = 30.0

var zones = map[ZoneID]Zone{
	CoverTop: {
		ID:      CoverTop,
		Regions: []geom.Rect{geom.R(0, 0, draw.PageWidth, 100)},
		Frame:   []geom.Rect{CoverCard, CoverTagline},
	},
	CoverBottom: {
		ID:      CoverBottom,
		Regions: []geom.Rect{geom.R(0, 420, draw.PageWidth, 130)},
		Frame:   []geom.Rect{CoverCard, CoverTagline},
	},
	HeaderAccent: {
		ID:      HeaderAccent,
		Regions: []geom.Rect{geom.R(310, 2, draw.PageWidth-312, HeaderBarHeight-4)},
		Frame:   []geom.Rect{HeaderText, DailyBody},
	},
	SketchCorners: {
		ID: SketchCorners,
		Regions: []geom.Rect{
			geom.R(SketchBox.X+2, SketchBox.Y+2, sketchCorner, sketchCorner),
			geom.R(SketchBox.Right()-2-sketchCorner, SketchBox.Y+2, sketchCorner, sketchCorner),
			geom.R(SketchBox.X+2, SketchBox.Bottom()-2-sketchCorner, sketchCorner, sketchCorner),
			geom.R(SketchBox.Right()-2-sketchCorner, SketchBox.Bottom()-2-sketchCorner, sketchCorner, sketchCorner),
		},
		Frame: []geom.Rect{SketchHead, SketchBelow},
	},
	ReflectionsCorners: {
		ID: ReflectionsCorners,
		Regions: []geom.Rect{
			geom.R(0, 0, 50, 50),
			geom.R(draw.PageWidth-50, 0, 50, 50),
			geom.R(0, draw.PageBottom, 50, draw.PageHeight-draw.PageBottom),
			geom.R(draw.PageWidth-50, draw.PageBottom, 50, draw.PageHeight-draw.PageBottom),
		},
		Frame: []geom.Rect{BorderedContent},
	},
	FinalCorners: {
		ID: FinalCorners,
		Regions: []geom.Rect{
			geom.R(0, 0, draw.PageWidth, FinalCard.Y-2),
			geom.R(0, FinalCard.Bottom()+2, draw.PageWidth, draw.PageHeight-FinalCard.Bottom()-2),
		},
		Frame: []geom.Rect{FinalCard},
	},
}

// Zones lists all zone ids.
func Zones() []ZoneID {
	return []ZoneID{CoverTop, CoverBottom, HeaderAccent, SketchCorners, ReflectionsCorners, FinalCorners}
}

// ZoneByID returns the geometry of a zone.
func ZoneByID(id ZoneID) (Zone, bool) {
	z, ok := zones[id]
	return z, ok
}

// Fits tells whether r lies inside one of the zone's regions and clear of
// its frame.
func (z Zone) Fits(r geom.Rect) bool {
	inside := false
	for _, reg := range z.Regions {
		if reg.Contains(r) {
			inside = true
			break
		}
	}
	if !inside {
		return false
	}
	for _, f := range z.Frame {
		if f.Intersects(r) {
			return false
		}
	}
	return true
}

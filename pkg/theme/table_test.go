package theme

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akeil/tripjournal/pkg/draw"
	"github.com/akeil/tripjournal/pkg/draw/drawtest"
)

func TestTableValid(t *testing.T) {
	require.NoError(t, NewTable().Validate())
}

func TestDecorationsInsideZones(t *testing.T) {
	table := NewTable()
	for _, th := range Themes() {
		for _, zid := range Zones() {
			zone, ok := ZoneByID(zid)
			require.True(t, ok)
			decos := table.Decorations(th, zid)
			if len(decos) == 0 {
				t.Errorf("theme %v has no decorations for zone %v", th, zid)
			}
			for _, d := range decos {
				b := d.Bounds()
				if !zone.Fits(b) {
					t.Errorf("theme %v, zone %v: %v at %v is outside the zone or hits the frame", th, zid, d.Motif, b)
				}
			}
		}
	}
}

func TestZonesDisjointFromFrame(t *testing.T) {
	for _, zid := range Zones() {
		zone, _ := ZoneByID(zid)
		for _, r := range zone.Regions {
			for _, f := range zone.Frame {
				if r.Intersects(f) {
					t.Errorf("zone %v region %v intersects frame %v", zid, r, f)
				}
			}
		}
	}
}

func TestFallbackToTravel(t *testing.T) {
	table := &Table{entries: placements()}
	delete(table.entries[Safari], HeaderAccent)

	got := table.Decorations(Safari, HeaderAccent)
	assert.Equal(t, table.Decorations(Travel, HeaderAccent), got)
}

func TestDecorationsAreCopies(t *testing.T) {
	table := NewTable()
	d := table.Decorations(Japan, CoverTop)
	d[0].X = -1000
	assert.NotEqual(t, -1000.0, table.Decorations(Japan, CoverTop)[0].X)
}

func TestDrawDecorations(t *testing.T) {
	r := drawtest.NewRecorder()
	r.AddPage()
	decos := NewTable().Draw(r, Paris, FinalCorners)
	assert.Len(t, decos, 4)
	assert.Len(t, r.Named("Push"), 4)
	assert.Equal(t, 0, r.Depth())
	assert.Equal(t, draw.DefaultStyle(), r.State())
}

package draw_test

import (
	"bytes"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akeil/tripjournal/pkg/draw"
)

func TestRasterPreview(t *testing.T) {
	r := draw.NewRaster(draw.HalfLetter, 0.5)
	r.AddPage()
	draw.PageBorder(r, draw.BorderDotted)
	draw.SectionHeader(r, "Did You Know?", 60, draw.DefaultHeader())
	draw.DrawMotif(r, draw.Compass, 200, 300, 40, draw.MotifOptions{Rotation: 20})
	require.NoError(t, r.Err())

	pages := r.Pages()
	require.Len(t, pages, 1)
	assert.Equal(t, 198, pages[0].Bounds().Dx())
	assert.Equal(t, 306, pages[0].Bounds().Dy())

	var buf bytes.Buffer
	require.NoError(t, r.WritePNG(0, &buf))
	img, err := png.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, 198, img.Bounds().Dx())

	assert.Error(t, r.WritePNG(3, &buf))
}

func TestThumbnail(t *testing.T) {
	r := draw.NewRaster(draw.HalfLetter, 1)
	r.AddPage()
	thumb := draw.Thumbnail(r.Pages()[0], 99)
	assert.Equal(t, 99, thumb.Bounds().Dx())
	assert.Equal(t, 153, thumb.Bounds().Dy())
}

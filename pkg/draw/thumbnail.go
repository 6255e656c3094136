package draw

import (
	"image"

	"golang.org/x/image/draw"
)

// separate file because we want to import x/image/draw
// instead of image/draw.

// Thumbnail scales an image to the given width, keeping the aspect ratio.
func Thumbnail(i image.Image, width int) image.Image {
	b := i.Bounds()
	if b.Dx() == 0 {
		return i
	}
	height := b.Dy() * width / b.Dx()
	r := image.Rect(0, 0, width, height)
	dst := image.NewRGBA(r)
	s := draw.CatmullRom
	s.Scale(dst, r, i, b, draw.Over, nil)
	return dst
}

package draw

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// Color is an opaque RGB color.
type Color struct {
	R, G, B uint8
}

// Hex parses a color in "#RRGGBB" notation.
// It panics on malformed input and is meant for constants.
func Hex(s string) Color {
	c, err := ParseHex(s)
	if err != nil {
		panic(err)
	}
	return c
}

// ParseHex parses a color in "#RRGGBB" or "RRGGBB" notation.
func ParseHex(s string) (Color, error) {
	s = strings.TrimPrefix(s, "#")
	if len(s) != 6 {
		return Color{}, fmt.Errorf("invalid color %q", s)
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return Color{}, fmt.Errorf("invalid color %q: %v", s, err)
	}
	return Color{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v)}, nil
}

// Shade lightens (positive percent) or darkens (negative percent) a color.
// Each channel is scaled by (100+percent)/100 and clamped to 255.
func (c Color) Shade(percent int) Color {
	f := func(v uint8) uint8 {
		x := int(v) * (100 + percent) / 100
		if x > 255 {
			x = 255
		}
		if x < 0 {
			x = 0
		}
		return uint8(x)
	}
	return Color{R: f(c.R), G: f(c.G), B: f(c.B)}
}

// RGBA converts to a color.Color with the given alpha (0..1).
func (c Color) RGBA(alpha float64) color.Color {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: uint8(alpha*255 + 0.5)}
}

func (c Color) String() string {
	return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
}

// Journal colors.
var (
	Primary        = Hex("#2E86AB")
	PrimaryLight   = Hex("#A8DADC")
	Secondary      = Hex("#F77F00")
	SecondaryLight = Hex("#FCBF49")
	Accent         = Hex("#7B2CBF")
	AccentLight    = Hex("#C77DFF")
	Success        = Hex("#06D6A0")
	Coral          = Hex("#EF476F")
	Text           = Hex("#1D3557")
	TextLight      = Hex("#457B9D")
	Border         = Hex("#A8DADC")
	Background     = Hex("#FFF9F0")
	White          = Hex("#FFFFFF")
	Cream          = Hex("#FFFCF2")
)

// Palette lists the named journal colors, e.g. for the CLI.
var Palette = map[string]Color{
	"primary":        Primary,
	"primaryLight":   PrimaryLight,
	"secondary":      Secondary,
	"secondaryLight": SecondaryLight,
	"accent":         Accent,
	"accentLight":    AccentLight,
	"success":        Success,
	"coral":          Coral,
	"text":           Text,
	"textLight":      TextLight,
	"border":         Border,
	"background":     Background,
	"white":          White,
	"cream":          Cream,
}

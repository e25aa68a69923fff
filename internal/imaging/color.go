package imaging

import (
	"fmt"
	"image"
	"image/color"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// RGBAColor represents an RGBA color with 8-bit components including alpha.
//
// The alpha component represents opacity:
//   - 0 = fully transparent
//   - 255 = fully opaque
type RGBAColor struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
	A uint8 `json:"a"`
}

// HSLColor represents a color in HSL space.
type HSLColor struct {
	H int `json:"h"` // Hue: 0-360 degrees
	S int `json:"s"` // Saturation: 0-100 percent
	L int `json:"l"` // Lightness: 0-100 percent
}

// ColorResult contains a sampled pixel in several representations.
type ColorResult struct {
	Hex  string    `json:"hex"`  // "#RRGGBB", alpha excluded
	RGBA RGBAColor `json:"rgba"` // non-premultiplied components
	HSL  HSLColor  `json:"hsl"`
	// Opaque reports whether the pixel is inside a hex tile (alpha 255).
	Opaque bool `json:"opaque"`
}

// SampleColor returns the non-premultiplied color at (x, y).
//
// Hex tiles store RGB under fully transparent pixels, so the sample is taken
// in NRGBA space rather than from the premultiplied RGBA() values.
func SampleColor(img image.Image, x, y int) (*ColorResult, error) {
	bounds := img.Bounds()
	if !image.Pt(x, y).In(bounds) {
		return nil, fmt.Errorf("coordinates (%d,%d) outside image bounds", x, y)
	}

	c := color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA)
	cf := colorful.Color{
		R: float64(c.R) / 255.0,
		G: float64(c.G) / 255.0,
		B: float64(c.B) / 255.0,
	}
	h, s, l := cf.Hsl()

	return &ColorResult{
		Hex:    fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B),
		RGBA:   RGBAColor{R: c.R, G: c.G, B: c.B, A: c.A},
		HSL:    HSLColor{H: int(h), S: int(s * 100), L: int(l * 100)},
		Opaque: c.A == 0xff,
	}, nil
}

// ParseFillColor parses a margin fill color. It accepts "#RRGGBB" (the '#' is
// optional) and returns an opaque color. An empty string yields White.
func ParseFillColor(s string) (color.NRGBA, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return White, nil
	}
	if !strings.HasPrefix(s, "#") {
		s = "#" + s
	}

	c, err := colorful.Hex(s)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("invalid fill color %q: %w", s, err)
	}
	r, g, b := c.RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: 0xff}, nil
}

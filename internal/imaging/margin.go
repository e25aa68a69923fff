package imaging

import (
	"errors"
	"fmt"
	"image"
	"image/color"

	"github.com/disintegration/imaging"
)

var (
	// ErrNegativeMargin is returned when any margin size is below zero.
	ErrNegativeMargin = errors.New("margin must be non-negative")

	// ErrEmptyImage is returned when an operation would start from or produce
	// an image with no pixels.
	ErrEmptyImage = errors.New("image has no pixels")
)

// Margin describes a border to add around an image.
type Margin struct {
	Top    int
	Right  int
	Bottom int
	Left   int
	Fill   color.Color
}

// UniformMargin returns a Margin with the same size on every side.
func UniformMargin(size int, fill color.Color) Margin {
	return Margin{Top: size, Right: size, Bottom: size, Left: size, Fill: fill}
}

// Validate reports whether the margin can be applied.
func (m Margin) Validate() error {
	if m.Top < 0 || m.Right < 0 || m.Bottom < 0 || m.Left < 0 {
		return fmt.Errorf("%w: top=%d right=%d bottom=%d left=%d",
			ErrNegativeMargin, m.Top, m.Right, m.Bottom, m.Left)
	}
	return nil
}

// AddMargin returns a new image of size (w+left+right) x (h+top+bottom) filled
// with m.Fill, with img copied verbatim at offset (left, top). A nil fill is
// treated as transparent black. The input image is never modified.
func AddMargin(img image.Image, m Margin) (*image.NRGBA, error) {
	if err := m.Validate(); err != nil {
		return nil, err
	}

	b := img.Bounds()
	width := b.Dx() + m.Left + m.Right
	height := b.Dy() + m.Top + m.Bottom
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: margin result would be %dx%d", ErrEmptyImage, width, height)
	}

	fill := m.Fill
	if fill == nil {
		fill = color.Transparent
	}

	canvas := imaging.New(width, height, fill)
	if b.Empty() {
		return canvas, nil
	}
	return imaging.Paste(canvas, img, image.Pt(m.Left, m.Top)), nil
}

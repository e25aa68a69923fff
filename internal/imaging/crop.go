package imaging

import (
	"fmt"
	"image"
	"math"

	"github.com/disintegration/imaging"
)

// NormalizeRGBA converts img into an 8-bit NRGBA image anchored at (0,0) with
// every pixel fully opaque. Any existing alpha is discarded; the
// non-premultiplied RGB values are kept as-is.
func NormalizeRGBA(img image.Image) (*image.NRGBA, error) {
	if img.Bounds().Empty() {
		return nil, ErrEmptyImage
	}

	dst := imaging.Clone(img)
	for i := 3; i < len(dst.Pix); i += 4 {
		dst.Pix[i] = 0xff
	}
	return dst, nil
}

// SquareCrop cuts a centered horizontal band of width min(w, h) from images
// that are wider than tall. Images with height >= width are returned as an
// unmodified copy; they are not cropped vertically.
//
// The band starts at (w-dim)/2 rounded half to even, so a surplus of 1 keeps
// column 0 and a surplus of 3 skips two columns. The returned dim is min(w, h)
// of the input.
func SquareCrop(img image.Image) (cropped *image.NRGBA, dim int, err error) {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	if w <= 0 || h <= 0 {
		return nil, 0, fmt.Errorf("%w: %dx%d", ErrEmptyImage, w, h)
	}

	dim = h
	if w < h {
		dim = w
	}

	if w <= h {
		return imaging.Clone(img), dim, nil
	}

	minX := b.Min.X + int(math.RoundToEven(float64(w-dim)/2))
	return imaging.Crop(img, image.Rect(minX, b.Min.Y, minX+dim, b.Max.Y)), dim, nil
}

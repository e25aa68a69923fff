package imaging

import (
	"fmt"
	"image"
	"image/color"
)

// White is the fill used for the bleed margin around a hex tile.
var White = color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}

// HexTile is the result of cutting a hexagon out of an image.
type HexTile struct {
	// Geometry describes the crop, padding and polygon that were applied.
	Geometry *Geometry

	// Padded is the opaque intermediate after cropping and padding.
	Padded *image.NRGBA

	// Mask is the rasterized hexagon, same size as Padded.
	Mask *Mask

	// Image is Padded with its alpha replaced by the hexagon mask.
	Image *image.NRGBA
}

// CutHexagon turns img into a hexagonal tile. The margin is filled with fill;
// a nil fill means opaque white.
//
// The source image is normalized to opaque RGBA, square-cropped if wider than
// tall, padded by PaddingFactor on every side, and masked with the hexagon
// from ComputeGeometry.
func CutHexagon(img image.Image, fill color.Color) (*HexTile, error) {
	if fill == nil {
		fill = White
	}

	rgba, err := NormalizeRGBA(img)
	if err != nil {
		return nil, err
	}

	cropped, dim, err := SquareCrop(rgba)
	if err != nil {
		return nil, err
	}

	b := cropped.Bounds()
	geom, err := ComputeGeometry(b.Dx(), b.Dy(), dim)
	if err != nil {
		return nil, err
	}

	padded, err := AddMargin(cropped, UniformMargin(geom.Padding, fill))
	if err != nil {
		return nil, fmt.Errorf("failed to pad image: %w", err)
	}

	mask := RasterizePolygon(geom.Polygon, geom.PaddedWidth, geom.PaddedHeight)
	out, err := ApplyMask(padded, mask)
	if err != nil {
		return nil, err
	}

	return &HexTile{
		Geometry: geom,
		Padded:   padded,
		Mask:     mask,
		Image:    out,
	}, nil
}

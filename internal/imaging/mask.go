package imaging

import (
	"fmt"
	"image"
	"math"
	"sort"
)

// Mask is a single-channel grid of 0 (outside) and 1 (inside) values.
type Mask struct {
	Width  int
	Height int
	Pix    []uint8 // row-major, len == Width*Height
}

// NewMask allocates an all-zero mask.
func NewMask(width, height int) *Mask {
	return &Mask{Width: width, Height: height, Pix: make([]uint8, width*height)}
}

// At returns the mask value at (x, y), or 0 outside the grid.
func (m *Mask) At(x, y int) uint8 {
	if x < 0 || y < 0 || x >= m.Width || y >= m.Height {
		return 0
	}
	return m.Pix[y*m.Width+x]
}

func (m *Mask) set(x, y int) {
	if x < 0 || y < 0 || x >= m.Width || y >= m.Height {
		return
	}
	m.Pix[y*m.Width+x] = 1
}

// Count returns the number of filled cells.
func (m *Mask) Count() int {
	n := 0
	for _, v := range m.Pix {
		n += int(v)
	}
	return n
}

// RasterizePolygon fills a width x height mask with poly, boundary included.
//
// Each row y is scanned against every edge. The row is filled between the
// leftmost and rightmost crossings, so poly must be convex. Pixels on the
// outline are then set by walking each edge between its rounded endpoints.
func RasterizePolygon(poly Polygon, width, height int) *Mask {
	m := NewMask(width, height)
	if len(poly) < 3 || width <= 0 || height <= 0 {
		return m
	}

	lo, hi := poly.Bounds()
	yStart := clamp(int(math.Ceil(lo.Y)), 0, height-1)
	yEnd := clamp(int(math.Floor(hi.Y)), 0, height-1)

	xs := make([]float64, 0, 2*len(poly))
	for y := yStart; y <= yEnd; y++ {
		fy := float64(y)
		xs = xs[:0]
		for i := range poly {
			a, b := poly[i], poly[(i+1)%len(poly)]
			if fy < math.Min(a.Y, b.Y) || fy > math.Max(a.Y, b.Y) {
				continue
			}
			if a.Y == b.Y {
				xs = append(xs, a.X, b.X)
				continue
			}
			xs = append(xs, a.X+(fy-a.Y)*(b.X-a.X)/(b.Y-a.Y))
		}
		if len(xs) == 0 {
			continue
		}
		sort.Float64s(xs)
		if xs[len(xs)-1] < 0 || xs[0] > float64(width-1) {
			continue
		}
		x0 := clamp(int(math.Ceil(xs[0])), 0, width-1)
		x1 := clamp(int(math.Floor(xs[len(xs)-1])), 0, width-1)
		for x := x0; x <= x1; x++ {
			m.set(x, y)
		}
	}

	for i := range poly {
		a, b := poly[i], poly[(i+1)%len(poly)]
		drawLine(m, int(math.Round(a.X)), int(math.Round(a.Y)), int(math.Round(b.X)), int(math.Round(b.Y)))
	}
	return m
}

// drawLine sets every cell on the Bresenham line from (x0,y0) to (x1,y1).
func drawLine(m *Mask, x0, y0, x1, y1 int) {
	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	e := dx + dy
	for {
		m.set(x0, y0)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * e
		if e2 >= dy {
			e += dy
			x0 += sx
		}
		if e2 <= dx {
			e += dx
			y0 += sy
		}
	}
}

// ApplyMask returns a copy of img whose RGB channels are unchanged and whose
// alpha is mask*255 at every pixel. The mask must match the image size.
func ApplyMask(img *image.NRGBA, m *Mask) (*image.NRGBA, error) {
	b := img.Bounds()
	if b.Dx() != m.Width || b.Dy() != m.Height {
		return nil, fmt.Errorf("mask size %dx%d does not match image size %dx%d",
			m.Width, m.Height, b.Dx(), b.Dy())
	}

	out := image.NewNRGBA(image.Rect(0, 0, m.Width, m.Height))
	for y := 0; y < m.Height; y++ {
		off := img.PixOffset(b.Min.X, b.Min.Y+y)
		src := img.Pix[off : off+4*m.Width]
		dst := out.Pix[y*out.Stride : y*out.Stride+4*m.Width]
		for x := 0; x < m.Width; x++ {
			i := 4 * x
			dst[i+0] = src[i+0]
			dst[i+1] = src[i+1]
			dst[i+2] = src[i+2]
			dst[i+3] = m.Pix[y*m.Width+x] * 0xff
		}
	}
	return out, nil
}

func clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

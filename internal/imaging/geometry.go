package imaging

import (
	"fmt"
	"math"
)

const (
	// RequiredWidth and PageWidth fix the bleed ratio reserved around the
	// hexagon for print-and-cut use.
	RequiredWidth = 17.0
	PageWidth     = 20.0

	// VerticalCenterBias shifts the hexagon center above the geometric
	// center of the padded canvas.
	VerticalCenterBias = 0.89

	// HexagonSides is the vertex count of every polygon built here.
	HexagonSides = 6
)

// Vertex is a polygon corner in image pixel coordinates.
type Vertex struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Polygon is an ordered list of vertices. The closing edge from the last
// vertex back to the first is implicit.
type Polygon []Vertex

// Geometry holds every derived number needed to cut a hex tile from an image.
type Geometry struct {
	// Dim is min(width, height) of the source before cropping.
	Dim int `json:"dim"`

	// Width and Height are the image size after the square crop.
	Width  int `json:"width"`
	Height int `json:"height"`

	// Factor is 1/sqrt(3) when the cropped image is still wider than tall,
	// 1/2 otherwise.
	Factor float64 `json:"factor"`

	// Radius is the hexagon circumradius, Dim * Factor.
	Radius float64 `json:"radius"`

	// Padding is the uniform margin added to all four sides.
	Padding int `json:"padding"`

	// PaddedWidth and PaddedHeight are the canvas size after padding.
	PaddedWidth  int `json:"padded_width"`
	PaddedHeight int `json:"padded_height"`

	// Center is the shared center of all hexagon vertices.
	Center Vertex `json:"center"`

	// Polygon is the hexagon, vertex i at angle i*60 degrees.
	Polygon Polygon `json:"polygon"`
}

// PaddingFactor returns floor(width * (PageWidth/RequiredWidth - 1) / 2).
func PaddingFactor(width int) int {
	return int(math.Floor(float64(width) * (PageWidth/RequiredWidth - 1.0) / 2.0))
}

// ComputeGeometry derives the hex tile geometry for an image whose size after
// the square crop is width x height. dim is min(width, height) of the image
// before the crop; the radius is always derived from it.
func ComputeGeometry(width, height, dim int) (*Geometry, error) {
	if width <= 0 || height <= 0 || dim <= 0 {
		return nil, fmt.Errorf("%w: %dx%d (dim %d)", ErrEmptyImage, width, height, dim)
	}

	factor := 1.0 / 2.0
	if width > height {
		factor = 1.0 / math.Sqrt(3.0)
	}
	r := float64(dim) * factor
	pad := PaddingFactor(width)

	g := &Geometry{
		Dim:          dim,
		Width:        width,
		Height:       height,
		Factor:       factor,
		Radius:       r,
		Padding:      pad,
		PaddedWidth:  width + 2*pad,
		PaddedHeight: height + 2*pad,
	}
	g.Center = Vertex{
		X: float64(g.PaddedWidth) / 2.0,
		Y: float64(g.PaddedHeight) * VerticalCenterBias / 2.0,
	}
	g.Polygon = RegularPolygon(g.Center, r, HexagonSides)
	return g, nil
}

// GeometryForSource returns the geometry CutHexagon uses for a source image
// of width x height, applying the square crop rule first.
func GeometryForSource(width, height int) (*Geometry, error) {
	dim := width
	if height < dim {
		dim = height
	}
	w := width
	if width > height {
		w = dim
	}
	return ComputeGeometry(w, height, dim)
}

// RegularPolygon returns n vertices spaced 2*pi/n apart around center, with
// vertex 0 at angle 0 (directly to the right of center).
func RegularPolygon(center Vertex, radius float64, n int) Polygon {
	poly := make(Polygon, 0, n)
	for i := 0; i < n; i++ {
		theta := float64(i) * 2.0 * math.Pi / float64(n)
		poly = append(poly, Vertex{
			X: radius*math.Cos(theta) + center.X,
			Y: radius*math.Sin(theta) + center.Y,
		})
	}
	return poly
}

// Bounds returns the min and max corners of the polygon's bounding box.
func (p Polygon) Bounds() (min, max Vertex) {
	if len(p) == 0 {
		return Vertex{}, Vertex{}
	}
	min, max = p[0], p[0]
	for _, v := range p[1:] {
		min.X = math.Min(min.X, v.X)
		min.Y = math.Min(min.Y, v.Y)
		max.X = math.Max(max.X, v.X)
		max.Y = math.Max(max.Y, v.Y)
	}
	return min, max
}

// Package imaging provides the pixel-level operations behind hexagonal map tiles.
//
// The package is a set of pure functions over standard Go image.Image values.
// No function mutates its input; every transform allocates and returns a new
// *image.NRGBA. The pipeline used to turn a rendered map into a hex tile is:
//
//  1. NormalizeRGBA: convert to 8-bit NRGBA, forcing alpha to fully opaque
//  2. SquareCrop: cut a centered band out of wide images
//  3. ComputeGeometry: derive radius, padding and the hexagon polygon
//  4. AddMargin: pad the image with a uniform fill border
//  5. RasterizePolygon: build a 0/1 mask of the hexagon
//  6. ApplyMask: copy RGB, set alpha to 255 inside the hexagon and 0 outside
//
// CutHexagon runs steps 1-6 in order and returns both the padded intermediate
// and the final tile so callers can compare them.
//
// # Coordinate System
//
// All pixel coordinates are 0-based with the origin at the top-left corner.
// X increases rightward and Y increases downward. Polygon vertices are
// floating point values in the same space; pixel (x, y) is treated as the
// point (x, y) when testing polygon coverage.
//
// # Thread Safety
//
// ImageCache is safe for concurrent use. All other functions are stateless and
// may be called concurrently on different images.
//
// # Error Handling
//
// Precondition violations such as negative margins or empty images are
// reported with the ErrNegativeMargin and ErrEmptyImage sentinels. I/O helpers
// wrap the underlying filesystem error.
package imaging

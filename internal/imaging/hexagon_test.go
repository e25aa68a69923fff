package imaging

import (
	"image"
	"image/color"
	"testing"
)

func TestCutHexagon_RedSquare(t *testing.T) {
	src := createInMemoryImage(100, 100, color.NRGBA{255, 0, 0, 0})

	tile, err := CutHexagon(src, nil)
	if err != nil {
		t.Fatalf("CutHexagon failed: %v", err)
	}

	b := tile.Image.Bounds()
	if b.Dx() != 116 || b.Dy() != 116 {
		t.Fatalf("dimensions: got %dx%d, want 116x116", b.Dx(), b.Dy())
	}

	center := tile.Image.NRGBAAt(58, 55)
	if center != (color.NRGBA{255, 0, 0, 255}) {
		t.Errorf("center: got %v, want opaque red", center)
	}
	for _, p := range []image.Point{{0, 0}, {115, 0}, {0, 115}, {115, 115}} {
		c := tile.Image.NRGBAAt(p.X, p.Y)
		if c.A != 0 {
			t.Errorf("corner %v alpha: got %d, want 0", p, c.A)
		}
		// margin RGB survives under the transparent alpha
		if c.R != 255 || c.G != 255 || c.B != 255 {
			t.Errorf("corner %v RGB: got %v, want white", p, c)
		}
	}
}

func TestCutHexagon_RGBMatchesPadded(t *testing.T) {
	tile, err := CutHexagon(createPatternImage(90, 70), color.NRGBA{0, 0, 255, 255})
	if err != nil {
		t.Fatalf("CutHexagon failed: %v", err)
	}

	if !sameRGB(tile.Padded, tile.Image) {
		t.Error("output RGB differs from padded image")
	}

	for y := 0; y < tile.Mask.Height; y++ {
		for x := 0; x < tile.Mask.Width; x++ {
			want := tile.Mask.At(x, y) * 255
			if a := tile.Image.NRGBAAt(x, y).A; a != want {
				t.Fatalf("alpha (%d,%d): got %d, want %d", x, y, a, want)
			}
			if a := tile.Padded.NRGBAAt(x, y).A; a != 255 {
				t.Fatalf("padded alpha (%d,%d): got %d, want 255", x, y, a)
			}
		}
	}
}

func TestCutHexagon_Sizes(t *testing.T) {
	tests := []struct {
		w, h         int
		wantW, wantH int
	}{
		{100, 100, 116, 116},
		{200, 100, 116, 116},
		{100, 200, 116, 216},
		{17, 17, 19, 19},
		{1, 1, 1, 1},
	}

	for _, tt := range tests {
		tile, err := CutHexagon(createPatternImage(tt.w, tt.h), nil)
		if err != nil {
			t.Fatalf("CutHexagon(%dx%d) failed: %v", tt.w, tt.h, err)
		}
		b := tile.Image.Bounds()
		if b.Dx() != tt.wantW || b.Dy() != tt.wantH {
			t.Errorf("%dx%d: got %dx%d, want %dx%d", tt.w, tt.h, b.Dx(), b.Dy(), tt.wantW, tt.wantH)
		}
		g, err := GeometryForSource(tt.w, tt.h)
		if err != nil {
			t.Fatalf("GeometryForSource failed: %v", err)
		}
		if g.PaddedWidth != b.Dx() || g.PaddedHeight != b.Dy() || g.Radius != tile.Geometry.Radius {
			t.Errorf("%dx%d: GeometryForSource disagrees with CutHexagon", tt.w, tt.h)
		}
	}
}

func TestCutHexagon_Deterministic(t *testing.T) {
	src := createPatternImage(64, 48)

	a, err := CutHexagon(src, nil)
	if err != nil {
		t.Fatalf("CutHexagon failed: %v", err)
	}
	b, err := CutHexagon(src, nil)
	if err != nil {
		t.Fatalf("CutHexagon failed: %v", err)
	}

	if len(a.Image.Pix) != len(b.Image.Pix) {
		t.Fatal("pixel buffers differ in length")
	}
	for i := range a.Image.Pix {
		if a.Image.Pix[i] != b.Image.Pix[i] {
			t.Fatalf("pixel buffers differ at byte %d", i)
		}
	}
}

func TestCutHexagon_Empty(t *testing.T) {
	if _, err := CutHexagon(image.NewNRGBA(image.Rect(0, 0, 0, 0)), nil); err == nil {
		t.Error("CutHexagon should fail for an empty image")
	}
}

package cli

import (
	"bytes"
	"encoding/json"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ironsheep/hextile/internal/hexcut"
	"github.com/ironsheep/hextile/internal/imaging"
)

// run executes the command tree with args and returns stdout.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	// flag values persist between executions of the shared command tree
	cutDir, locationsFile, fillHex, logLevel = "output", "", "#FFFFFF", "error"
	extensions = hexcut.DefaultExtensions
	geomWidth, geomHeight = 0, 0

	var stdout, stderr bytes.Buffer
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&stderr)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return stdout.String(), err
}

func writeSource(t *testing.T, dir, name string) {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, 40, 40))
	for i := range img.Pix {
		img.Pix[i] = 0xff
	}
	img.SetNRGBA(20, 20, color.NRGBA{255, 0, 0, 255})
	f, err := os.Create(filepath.Join(dir, name))
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		t.Fatal(err)
	}
}

func TestCutCommand(t *testing.T) {
	dir := t.TempDir()
	writeSource(t, dir, "alpha.png")
	writeSource(t, dir, "beta.png")

	out, err := run(t, "cut", "--dir", dir, "--log-level", "error", "alpha", "missing", "beta")
	if err != nil {
		t.Fatalf("cut failed: %v", err)
	}

	for _, name := range []string{"alpha", "beta"} {
		path := hexcut.OutputPath(dir, name)
		if !strings.Contains(out, path) {
			t.Errorf("stdout should list %s, got %q", path, out)
		}
		if _, err := os.Stat(path); err != nil {
			t.Errorf("%s missing: %v", path, err)
		}
	}
	if _, err := os.Stat(hexcut.OutputPath(dir, "missing")); !os.IsNotExist(err) {
		t.Error("no tile should be written for a missing source")
	}
}

func TestCutCommand_FromLocations(t *testing.T) {
	dir := t.TempDir()
	writeSource(t, dir, "Home.png")
	locs := filepath.Join(dir, "locations.json")
	if err := os.WriteFile(locs, []byte(`{"Home": "1 Main St", "Away": [1, 2]}`), 0o644); err != nil {
		t.Fatal(err)
	}

	out, err := run(t, "cut", "-d", dir, "-l", locs)
	if err != nil {
		t.Fatalf("cut failed: %v", err)
	}
	if !strings.Contains(out, hexcut.OutputPath(dir, "Home")) {
		t.Errorf("stdout: %q", out)
	}
}

func TestCutCommand_DuplicateNames(t *testing.T) {
	dir := t.TempDir()
	writeSource(t, dir, "Home.png")
	locs := filepath.Join(dir, "locations.json")
	if err := os.WriteFile(locs, []byte(`{"Home": "1 Main St"}`), 0o644); err != nil {
		t.Fatal(err)
	}

	out, err := run(t, "cut", "-d", dir, "-l", locs, "Home", "Home")
	if err != nil {
		t.Fatalf("cut failed: %v", err)
	}
	if n := strings.Count(out, hexcut.OutputPath(dir, "Home")); n != 1 {
		t.Errorf("Home was cut %d times, want 1; stdout %q", n, out)
	}
}

func TestUniqueNames(t *testing.T) {
	tests := []struct {
		in   []string
		want []string
	}{
		{nil, []string{}},
		{[]string{"a", "b"}, []string{"a", "b"}},
		{[]string{"b", "a", "b", "a", "c"}, []string{"b", "a", "c"}},
	}
	for _, tt := range tests {
		got := uniqueNames(append([]string(nil), tt.in...))
		if strings.Join(got, ",") != strings.Join(tt.want, ",") {
			t.Errorf("uniqueNames(%v): got %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestCutCommand_Fill(t *testing.T) {
	dir := t.TempDir()
	writeSource(t, dir, "tile.png")

	if _, err := run(t, "cut", "-d", dir, "--fill", "#000000", "tile"); err != nil {
		t.Fatalf("cut failed: %v", err)
	}

	img, err := imaging.Open(hexcut.OutputPath(dir, "tile"))
	if err != nil {
		t.Fatal(err)
	}
	c := color.NRGBAModel.Convert(img.At(0, 0)).(color.NRGBA)
	if c != (color.NRGBA{0, 0, 0, 0}) {
		t.Errorf("corner: got %v, want black RGB with zero alpha", c)
	}
}

func TestCutCommand_Errors(t *testing.T) {
	tests := [][]string{
		{"cut"},
		{"cut", "--extensions", "png", "x"},
		{"cut", "--fill", "#nothex", "x"},
		{"cut", "-l", "/nonexistent/locations.json"},
	}
	for _, args := range tests {
		if _, err := run(t, args...); err == nil {
			t.Errorf("%v should fail", args)
		}
	}
}

func TestCutCommand_WriteFailure(t *testing.T) {
	dir := t.TempDir()
	writeSource(t, dir, "tile.png")
	// a directory squatting on the output path makes the rename fail
	if err := os.Mkdir(hexcut.OutputPath(dir, "tile"), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(hexcut.OutputPath(dir, "tile"), "keep"), nil, 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := run(t, "cut", "-d", dir, "tile"); err == nil {
		t.Error("cut should report the write failure")
	}
}

func TestLocationsCommand(t *testing.T) {
	path := filepath.Join(t.TempDir(), "locations.json")
	if err := os.WriteFile(path, []byte(`{"b": [3.5, 4], "a": "Somewhere"}`), 0o644); err != nil {
		t.Fatal(err)
	}

	out, err := run(t, "locations", path)
	if err != nil {
		t.Fatalf("locations failed: %v", err)
	}

	dec := json.NewDecoder(strings.NewReader(out))
	var names []string
	for dec.More() {
		var entry struct {
			Name    string `json:"name"`
			Address string `json:"address"`
			Coords  *struct {
				Lat float64 `json:"lat"`
				Lon float64 `json:"lon"`
			} `json:"coords"`
		}
		if err := dec.Decode(&entry); err != nil {
			t.Fatalf("bad output %q: %v", out, err)
		}
		names = append(names, entry.Name)
		if entry.Name == "b" && (entry.Coords == nil || entry.Coords.Lat != 3.5) {
			t.Errorf("b: got %+v", entry)
		}
	}
	if strings.Join(names, ",") != "a,b" {
		t.Errorf("names: got %v", names)
	}
}

func TestGeometryCommand(t *testing.T) {
	out, err := run(t, "geometry", "--width", "200", "--height", "100")
	if err != nil {
		t.Fatalf("geometry failed: %v", err)
	}

	var g imaging.Geometry
	if err := json.Unmarshal([]byte(out), &g); err != nil {
		t.Fatalf("bad output %q: %v", out, err)
	}
	if g.Width != 100 || g.PaddedWidth != 116 || len(g.Polygon) != 6 {
		t.Errorf("got %+v", g)
	}

	if _, err := run(t, "geometry", "--width", "0", "--height", "10"); err == nil {
		t.Error("zero width should fail")
	}
}

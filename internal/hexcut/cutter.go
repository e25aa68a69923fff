package hexcut

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"

	"github.com/ironsheep/hextile/internal/imaging"
)

// OutputSuffix is appended to the source name to form the tile file name.
const OutputSuffix = "_hex.png"

// Cutter cuts hex tiles out of named images.
type Cutter struct {
	// Locator resolves the source file. The zero value searches the
	// filesystem with DefaultExtensions.
	Locator Locator

	// Fill colors the bleed margin. Nil means opaque white.
	Fill color.Color

	// Open decodes the resolved source file. Nil means imaging.Open.
	Open func(path string) (image.Image, error)

	// Logger receives progress and failure events. The zero value discards them.
	Logger zerolog.Logger
}

// New returns a Cutter with default lookup and fill that logs to logger.
func New(logger zerolog.Logger) *Cutter {
	return &Cutter{
		Locator: DefaultLocator(),
		Fill:    imaging.White,
		Logger:  logger.With().Str("component", "hexcut").Logger(),
	}
}

// Result describes a written hex tile.
type Result struct {
	Name     string            `json:"name"`
	Source   string            `json:"source"`
	Output   string            `json:"output"`
	Width    int               `json:"width"`
	Height   int               `json:"height"`
	Geometry *imaging.Geometry `json:"geometry"`
}

// OutputPath returns the tile path for name in dir.
func OutputPath(dir, name string) string {
	return filepath.Join(dir, name+OutputSuffix)
}

// Cut cuts the hexagon tile for name in dir and writes it next to the source.
//
// If no source file exists the returned error wraps ErrNotFound and nothing
// is written.
func (c *Cutter) Cut(name, dir string) (*Result, error) {
	log := c.Logger.With().Str("name", name).Str("dir", dir).Logger()

	src, err := c.Locator.Resolve(dir, name)
	if err != nil {
		log.Warn().Err(err).Msg("image file not found")
		return nil, err
	}
	log.Debug().Str("source", src).Msg("resolved source image")

	open := c.Open
	if open == nil {
		open = imaging.Open
	}
	img, err := open(src)
	if err != nil {
		log.Error().Err(err).Str("source", src).Msg("failed to decode source image")
		return nil, err
	}

	tile, err := imaging.CutHexagon(img, c.Fill)
	if err != nil {
		log.Error().Err(err).Msg("failed to cut hexagon")
		return nil, fmt.Errorf("failed to cut %s: %w", name, err)
	}
	g := tile.Geometry
	log.Debug().
		Int("padding", g.Padding).
		Float64("radius", g.Radius).
		Int("width", g.PaddedWidth).
		Int("height", g.PaddedHeight).
		Msg("computed hexagon geometry")

	if err := ensureDir(dir, log); err != nil {
		return nil, err
	}

	out := OutputPath(dir, name)
	if err := imaging.WritePNG(out, tile.Image); err != nil {
		log.Error().Err(err).Str("output", out).Msg("failed to write hexagon image")
		return nil, fmt.Errorf("failed to write %s: %w", out, err)
	}
	log.Info().Str("output", out).Msg("saved hexagonal image")

	return &Result{
		Name:     name,
		Source:   src,
		Output:   out,
		Width:    g.PaddedWidth,
		Height:   g.PaddedHeight,
		Geometry: g,
	}, nil
}

func ensureDir(dir string, log zerolog.Logger) error {
	if _, err := os.Stat(dir); err == nil {
		return nil
	} else if !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to stat output directory: %w", err)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		log.Error().Err(err).Msg("failed to create output directory")
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	log.Info().Msg("created directory")
	return nil
}

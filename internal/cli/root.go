package cli

import (
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var logLevel string

var rootCmd = &cobra.Command{
	Use:   "hextile",
	Short: "Cut rendered map images into hexagonal tiles",
	Long: `hextile turns rendered map images into hexagon-shaped PNG tiles with a
transparent background, ready to be laid out on a hex grid or printed and cut.

Images are looked up as <dir>/<name>.png, .jpeg or .jpg and written to
<dir>/<name>_hex.png.`,
	SilenceUsage: true,
}

// Execute runs the command tree with the given version string.
func Execute(version string) error {
	rootCmd.Version = version
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level (debug, info, warn, error); defaults to $HEXTILE_LOG_LEVEL or info")

	rootCmd.AddCommand(cutCmd)
	rootCmd.AddCommand(locationsCmd)
	rootCmd.AddCommand(geometryCmd)
}

// newLogger builds the console logger shared by all commands.
func newLogger(w io.Writer) zerolog.Logger {
	level := logLevel
	if level == "" {
		level = os.Getenv("HEXTILE_LOG_LEVEL")
	}
	lvl, err := zerolog.ParseLevel(strings.ToLower(level))
	if err != nil || level == "" {
		lvl = zerolog.InfoLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: w}).Level(lvl).With().Timestamp().Logger()
}

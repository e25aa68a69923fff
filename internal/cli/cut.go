package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/ironsheep/hextile/internal/hexcut"
	"github.com/ironsheep/hextile/internal/imaging"
	"github.com/ironsheep/hextile/internal/locations"
)

var (
	cutDir        string
	locationsFile string
	extensions    []string
	fillHex       string
)

var cutCmd = &cobra.Command{
	Use:   "cut [NAME...]",
	Short: "Cut hexagon tiles from named images in a directory",
	Args: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 && locationsFile == "" {
			return errors.New("at least one name or --locations is required")
		}
		for _, ext := range extensions {
			if !strings.HasPrefix(ext, ".") {
				return fmt.Errorf("extension %q must start with '.'", ext)
			}
		}
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		fill, err := imaging.ParseFillColor(fillHex)
		if err != nil {
			return err
		}

		names := append([]string(nil), args...)
		if locationsFile != "" {
			set, err := locations.Load(locationsFile)
			if err != nil {
				return err
			}
			names = append(names, set.Names()...)
		}
		names = uniqueNames(names)

		logger := newLogger(cmd.ErrOrStderr())
		cutter := hexcut.New(logger)
		cutter.Fill = fill
		cutter.Locator.Extensions = extensions

		var done func(string, error)
		if len(names) > 1 {
			bar := progressbar.NewOptions(len(names),
				progressbar.OptionSetWriter(cmd.ErrOrStderr()),
				progressbar.OptionSetWidth(25),
				progressbar.OptionSetDescription("cutting"))
			defer bar.Finish()
			done = func(string, error) { bar.Add(1) }
		}

		report, err := cutter.CutAll(names, cutDir, done)
		for _, res := range report.Results {
			fmt.Fprintln(cmd.OutOrStdout(), res.Output)
		}
		if len(report.NotFound) > 0 {
			logger.Warn().Strs("names", report.NotFound).Msg("skipped names with no source image")
		}
		return err
	},
}

func init() {
	cutCmd.Flags().StringVarP(&cutDir, "dir", "d", "output", "directory holding source images and receiving tiles")
	cutCmd.Flags().StringVarP(&locationsFile, "locations", "l", "", "locations JSON file; every name in it is cut")
	cutCmd.Flags().StringSliceVar(&extensions, "extensions", hexcut.DefaultExtensions, "ordered source extensions to try")
	cutCmd.Flags().StringVar(&fillHex, "fill", "#FFFFFF", "margin fill color")
}

// uniqueNames drops repeated names, keeping the first occurrence of each.
func uniqueNames(names []string) []string {
	seen := make(map[string]bool, len(names))
	out := names[:0]
	for _, n := range names {
		if seen[n] {
			continue
		}
		seen[n] = true
		out = append(out, n)
	}
	return out
}

package cli

import (
	"encoding/json"

	"github.com/spf13/cobra"

	"github.com/ironsheep/hextile/internal/imaging"
)

var (
	geomWidth  int
	geomHeight int
)

var geometryCmd = &cobra.Command{
	Use:   "geometry",
	Short: "Print the crop, padding and hexagon polygon for an image size",
	RunE: func(cmd *cobra.Command, args []string) error {
		g, err := imaging.GeometryForSource(geomWidth, geomHeight)
		if err != nil {
			return err
		}
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(g)
	},
}

func init() {
	geometryCmd.Flags().IntVar(&geomWidth, "width", 0, "source image width in pixels")
	geometryCmd.Flags().IntVar(&geomHeight, "height", 0, "source image height in pixels")
	geometryCmd.MarkFlagRequired("width")
	geometryCmd.MarkFlagRequired("height")
}

package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ironsheep/hextile/internal/locations"
)

var locationsCmd = &cobra.Command{
	Use:   "locations [FILE]",
	Short: "Validate a locations file and print its normalized entries",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		set, err := locations.Load(args[0])
		if err != nil {
			return err
		}

		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		for _, name := range set.Names() {
			entry := struct {
				Name string `json:"name"`
				locations.Location
			}{name, set[name]}
			if err := enc.Encode(entry); err != nil {
				return fmt.Errorf("failed to print %s: %w", name, err)
			}
		}
		return nil
	},
}

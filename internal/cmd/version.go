package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/quandora/grunt-umd-wrapper/internal/cmdtypes"
	"github.com/quandora/grunt-umd-wrapper/internal/templates"
	"github.com/quandora/grunt-umd-wrapper/internal/version"
)

// NewVersionCmd creates the version command.
func NewVersionCmd(_ *cmdtypes.GlobalConfig) *cobra.Command {
	var jsonFlag bool

	c := &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Long: `Show umdwrap version information.

Displays:
  - umdwrap version, commit, and build date
  - the bundled wrapper templates`,
		RunE: func(c *cobra.Command, _ []string) error {
			info := version.GetInfo()
			info.Templates = templates.Names()

			if jsonFlag {
				data, err := json.MarshalIndent(info, "", "  ")
				if err != nil {
					return err
				}
				fmt.Fprintln(c.OutOrStdout(), string(data))
				return nil
			}
			fmt.Fprintln(c.OutOrStdout(), info.String())
			return nil
		},
	}

	c.Flags().BoolVar(&jsonFlag, "json", false, "Print version information as JSON")
	return c
}

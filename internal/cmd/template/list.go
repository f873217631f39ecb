package template

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/quandora/grunt-umd-wrapper/internal/cmdtypes"
	"github.com/quandora/grunt-umd-wrapper/internal/output"
	"github.com/quandora/grunt-umd-wrapper/internal/templates"
)

// NewListCmd creates the template list command.
func NewListCmd(_ *cmdtypes.GlobalConfig) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List bundled templates",
		Long: `List the wrapper templates bundled with umdwrap.

Any other template can be used by passing its file path to --template.`,
		Args: cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			tbl := output.NewTable("NAME", "DEFAULT", "DESCRIPTION", "USE CASE")
			for _, t := range templates.List() {
				def := ""
				if t.Default {
					def = "yes"
				}
				tbl.Row(t.Name, def, t.Description, t.UseCase)
			}
			fmt.Fprintln(c.OutOrStdout(), tbl.String())
			return nil
		},
	}
}

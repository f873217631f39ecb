// Package template provides the `umdwrap template` command group.
package template

import (
	"github.com/spf13/cobra"

	"github.com/quandora/grunt-umd-wrapper/internal/cmdtypes"
)

// NewTemplateCmd creates the template command group.
func NewTemplateCmd(cfg *cmdtypes.GlobalConfig) *cobra.Command {
	c := &cobra.Command{
		Use:   "template",
		Short: "Wrapper template operations",
		Long:  `Commands for listing and inspecting wrapper templates.`,
	}

	c.AddCommand(
		NewListCmd(cfg),
		NewShowCmd(cfg),
	)

	return c
}

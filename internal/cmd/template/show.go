package template

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/quandora/grunt-umd-wrapper/internal/cmdtypes"
	oerrors "github.com/quandora/grunt-umd-wrapper/internal/errors"
	"github.com/quandora/grunt-umd-wrapper/internal/output"
	"github.com/quandora/grunt-umd-wrapper/internal/templates"
)

// NewShowCmd creates the template show command.
func NewShowCmd(_ *cmdtypes.GlobalConfig) *cobra.Command {
	var inspectFlag bool

	c := &cobra.Command{
		Use:   "show <name|path>",
		Short: "Print a template",
		Long: `Print a template's text, resolved the same way --template is:
a file path first, a bundled template name second.

Examples:
  # Print the default UMD template
  umdwrap template show umd

  # List the placeholders a custom template uses
  umdwrap template show ./wrapper.tpl --inspect`,
		Args: cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			src, err := templates.Resolve(args[0])
			if err != nil {
				return &cmdtypes.ExitError{Code: oerrors.ExitCodeFromError(err), Err: err}
			}

			if !inspectFlag {
				fmt.Fprint(c.OutOrStdout(), src.Text)
				return nil
			}

			report := templates.Inspect(src.Text)
			w := c.OutOrStdout()
			fmt.Fprintf(w, "%s %s\n", output.StyleDim.Render("template:"), output.StyleNoun.Render(src.Origin()))
			if src.Bundled {
				if t, err := templates.Get(src.Selector); err == nil {
					fmt.Fprintf(w, "  description:  %s\n", t.Description)
				}
			}
			fmt.Fprintf(w, "  placeholders: %s\n", joinOrDash(report.Known))
			fmt.Fprintf(w, "  passthrough:  %s\n", joinOrDash(report.Unknown))
			fmt.Fprintf(w, "  unused:       %s\n", joinOrDash(report.Missing))
			if !report.HasSource() {
				output.Warn("template never embeds the module body", "placeholder", "%SRC%")
			}
			return nil
		},
	}

	c.Flags().BoolVar(&inspectFlag, "inspect", false, "Report placeholders instead of printing the text")
	return c
}

func joinOrDash(items []string) string {
	if len(items) == 0 {
		return "-"
	}
	return strings.Join(items, ", ")
}

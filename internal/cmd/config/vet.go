package config

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/quandora/grunt-umd-wrapper/internal/cmdtypes"
	"github.com/quandora/grunt-umd-wrapper/internal/config"
	oerrors "github.com/quandora/grunt-umd-wrapper/internal/errors"
	"github.com/quandora/grunt-umd-wrapper/internal/output"
	"github.com/quandora/grunt-umd-wrapper/internal/templates"
)

// NewConfigVetCmd creates the config vet command.
func NewConfigVetCmd(cfg *cmdtypes.GlobalConfig) *cobra.Command {
	return &cobra.Command{
		Use:   "vet",
		Short: "Validate the configuration file",
		Long: `Validate the umdwrap configuration file.

Checks that the file parses, that the configured template resolves and that
the job count is not negative. The resolved value of every setting is printed
with its source.`,
		Args: cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			return runConfigVet(c, cfg)
		},
	}
}

func runConfigVet(c *cobra.Command, cfg *cmdtypes.GlobalConfig) error {
	path, err := configPath(cfg)
	if err != nil {
		return err
	}

	loader := config.NewLoader()
	loaded, err := loader.LoadRequired(path)
	if errors.Is(err, oerrors.ErrNotFound) {
		return &cmdtypes.ExitError{Code: cmdtypes.ExitNotFound, Err: err}
	}
	if err != nil {
		return &cmdtypes.ExitError{
			Code: cmdtypes.ExitValidationError,
			Err:  oerrors.NewValidationError(err.Error(), path, ""),
		}
	}
	used := loader.ConfigFileUsed()

	if loaded.Jobs < 0 {
		return &cmdtypes.ExitError{
			Code: cmdtypes.ExitValidationError,
			Err:  oerrors.NewValidationError(fmt.Sprintf("jobs must not be negative, got %d", loaded.Jobs), path, ""),
		}
	}

	resolved, err := config.ResolveAll(config.ResolveAllOptions{ConfigFlag: path, Config: loaded})
	if err != nil {
		return err
	}

	if _, err := templates.Resolve(resolved.Template.Value); err != nil {
		return &cmdtypes.ExitError{Code: oerrors.ExitCodeFromError(err), Err: err}
	}

	tbl := output.NewTable("KEY", "VALUE", "SOURCE")
	for _, v := range resolved.Values() {
		tbl.Row(v.Key, v.Value, string(v.Source))
	}
	tbl.Row("jobs", fmt.Sprint(resolved.Jobs), "")
	fmt.Fprintf(c.OutOrStdout(), "%s %s\n", output.StyleDim.Render("file:"), output.StyleNoun.Render(used))
	fmt.Fprintln(c.OutOrStdout(), tbl.String())
	fmt.Fprintln(c.OutOrStdout(), output.FormatCheckmark("Config is valid"))
	return nil
}

// Package cmdutil provides shared command utilities for the wrap and build
// commands. It centralizes option flags, processor orchestration and result
// output.
package cmdutil

import (
	"github.com/spf13/cobra"

	"github.com/quandora/grunt-umd-wrapper/internal/cmdtypes"
	"github.com/quandora/grunt-umd-wrapper/internal/config"
	"github.com/quandora/grunt-umd-wrapper/internal/pipeline"
)

// WrapFlags holds the rendering flags shared by wrap and build.
type WrapFlags struct {
	Template string
	Root     string
	Check    bool
}

// AddTo registers the wrap flags on the given cobra command.
func (f *WrapFlags) AddTo(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.Template, "template", "t", "",
		"Wrapper template: a file path or a bundled name (env: UMDWRAP_TEMPLATE)")
	cmd.Flags().StringVar(&f.Root, "root", "",
		"Namespace root for the browser-global branch (env: UMDWRAP_ROOT_NAME)")
	cmd.Flags().BoolVar(&f.Check, "check", false,
		"Compare output with existing files instead of writing; exit 2 when they differ")
}

// Overrides returns the options set explicitly on the command line.
func (f *WrapFlags) Overrides() pipeline.Options {
	return pipeline.Options{Template: f.Template, RootName: f.Root}
}

// Resolve resolves template and root name for a command with precedence
// flag > env > config > default.
func (f *WrapFlags) Resolve(cfg *cmdtypes.GlobalConfig) pipeline.Options {
	resolved := resolve(cfg, f.Template, f.Root)
	return pipeline.Options{Template: resolved.Template.Value, RootName: resolved.RootName.Value}
}

// Defaults resolves template and root name ignoring flags. Project files sit
// between the two: flags override them, these fill what they leave empty.
func Defaults(cfg *cmdtypes.GlobalConfig) pipeline.Options {
	resolved := resolve(cfg, "", "")
	return pipeline.Options{Template: resolved.Template.Value, RootName: resolved.RootName.Value}
}

func resolve(cfg *cmdtypes.GlobalConfig, templateFlag, rootFlag string) *config.ResolvedConfig {
	var c *config.Config
	if cfg != nil {
		c = cfg.Config
	}
	resolved, _ := config.ResolveAll(config.ResolveAllOptions{
		TemplateFlag: templateFlag,
		RootFlag:     rootFlag,
		Config:       c,
	})
	return resolved
}

// Package cmd provides CLI command implementations.
package cmd

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/quandora/grunt-umd-wrapper/internal/cmd/config"
	"github.com/quandora/grunt-umd-wrapper/internal/cmd/template"
	"github.com/quandora/grunt-umd-wrapper/internal/cmdtypes"
	cfgpkg "github.com/quandora/grunt-umd-wrapper/internal/config"
	oerrors "github.com/quandora/grunt-umd-wrapper/internal/errors"
	"github.com/quandora/grunt-umd-wrapper/internal/output"
	"github.com/quandora/grunt-umd-wrapper/internal/version"
)

// globalFlags holds the persistent flags of the root command.
type globalFlags struct {
	config     string
	verbose    bool
	timestamps bool
}

// NewRootCmd creates the root command for the umdwrap CLI.
func NewRootCmd() *cobra.Command {
	var flags globalFlags
	cfg := &cmdtypes.GlobalConfig{}

	rootCmd := &cobra.Command{
		Use:   "umdwrap",
		Short: "Wrap annotated JavaScript sources in UMD templates",
		Long: `umdwrap turns annotated JavaScript sources into module-wrapped output.

Sources declare their module with line directives:
  @module <name>          module name
  @export <name>          browser-global export name
  @import <key> [as <b>]  dependency, optionally bound to a factory argument
  @include <path>         inline a file relative to the source

The result is substituted into a wrapper template (umd, amd, commonjs or a
template file of your own) using %TOKEN% placeholders.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return initializeGlobals(cmd, &flags, cfg)
		},
	}

	rootCmd.PersistentFlags().StringVar(&flags.config, "config", "", "Path to config file (env: UMDWRAP_CONFIG)")
	rootCmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().BoolVar(&flags.timestamps, "timestamps", true, "Show timestamps in log output")

	rootCmd.AddCommand(
		NewWrapCmd(cfg),
		NewBuildCmd(cfg),
		NewInitCmd(cfg),
		template.NewTemplateCmd(cfg),
		config.NewConfigCmd(cfg),
		NewVersionCmd(cfg),
	)

	return rootCmd
}

// initializeGlobals loads .env files and the config file, resolves global
// values and sets up logging.
func initializeGlobals(cmd *cobra.Command, flags *globalFlags, cfg *cmdtypes.GlobalConfig) error {
	dotEnvErr := cfgpkg.LoadDotEnv()

	// The config path must be known before the file can be read.
	pathOnly, err := cfgpkg.ResolveAll(cfgpkg.ResolveAllOptions{ConfigFlag: flags.config})
	if err != nil {
		return err
	}
	configPath := pathOnly.ConfigPath.Value

	loader := cfgpkg.NewLoader()
	var (
		loaded  *cfgpkg.Config
		loadErr error
	)
	explicit := flags.config != "" && cmd.Annotations[cmdtypes.AnnotationCreatesConfig] == ""
	if explicit {
		loaded, loadErr = loader.LoadRequired(configPath)
	} else {
		loaded, loadErr = loader.Load(configPath)
	}
	if loaded == nil {
		loaded = &cfgpkg.Config{}
	}

	resolved, err := cfgpkg.ResolveAll(cfgpkg.ResolveAllOptions{
		ConfigFlag: flags.config,
		Config:     loaded,
	})
	if err != nil {
		return err
	}

	// Timestamps: flag (if explicitly set) > config > default (nil = true)
	logCfg := output.LogConfig{Verbose: flags.verbose}
	if cmd.Flags().Changed("timestamps") {
		logCfg.Timestamps = output.BoolPtr(flags.timestamps)
	} else if loaded.Log.Timestamps != nil {
		logCfg.Timestamps = loaded.Log.Timestamps
	}
	output.SetupLogging(logCfg)

	if dotEnvErr != nil {
		output.Warn("ignoring .env file", "error", dotEnvErr)
	}
	if loadErr != nil {
		// An explicitly requested config file must exist and load.
		if flags.config != "" {
			code := cmdtypes.ExitValidationError
			if errors.Is(loadErr, oerrors.ErrNotFound) {
				code = cmdtypes.ExitNotFound
			}
			return &cmdtypes.ExitError{Code: code, Err: loadErr}
		}
		output.Warn("ignoring config file", "path", configPath, "error", loadErr)
	}

	cfg.Config = loaded
	cfg.Resolved = resolved
	cfg.ConfigPath = configPath
	cfg.ConfigFlag = flags.config
	cfg.Verbose = flags.verbose

	info := version.GetInfo()
	output.Debug("umdwrap started", "version", info.Version)
	cfgpkg.LogResolvedValues(resolved)

	return nil
}

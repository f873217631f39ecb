package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/quandora/grunt-umd-wrapper/internal/cmdtypes"
	"github.com/quandora/grunt-umd-wrapper/internal/config"
)

// NewConfigInitCmd creates the config init command.
func NewConfigInitCmd(cfg *cmdtypes.GlobalConfig) *cobra.Command {
	var forceFlag bool

	c := &cobra.Command{
		Use:   "init",
		Short: "Create a new umdwrap configuration file",
		Long: `Create a new umdwrap configuration file with default values.

The configuration file is created at ~/.umdwrap/config.yaml by default.
Use --config flag to specify a different location.`,
		Annotations: map[string]string{cmdtypes.AnnotationCreatesConfig: "true"},
		RunE: func(c *cobra.Command, _ []string) error {
			return runConfigInit(c, cfg, forceFlag)
		},
	}

	c.Flags().BoolVarP(&forceFlag, "force", "f", false, "Overwrite existing config file")

	return c
}

func runConfigInit(c *cobra.Command, cfg *cmdtypes.GlobalConfig, force bool) error {
	path, err := configPath(cfg)
	if err != nil {
		return err
	}

	if _, err := os.Stat(path); err == nil && !force {
		return &cmdtypes.ExitError{
			Code: cmdtypes.ExitGeneralError,
			Err:  fmt.Errorf("config file already exists at %s (use --force to overwrite)", path),
		}
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := yaml.Marshal(config.DefaultConfig())
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	header := []byte("# umdwrap configuration\n# Values here are overridden by UMDWRAP_* environment variables and flags.\n\n")
	data = append(header, data...)

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	fmt.Fprintf(c.OutOrStdout(), "Config file created: %s\n", path)
	return nil
}

// configPath returns the resolved config path, falling back to the default
// location when the command runs without the root command.
func configPath(cfg *cmdtypes.GlobalConfig) (string, error) {
	if cfg != nil && cfg.ConfigPath != "" {
		return config.ExpandTilde(cfg.ConfigPath), nil
	}
	paths, err := config.DefaultPaths()
	if err != nil {
		return "", fmt.Errorf("getting config file path: %w", err)
	}
	return paths.ConfigFile, nil
}

// Package config provides configuration loading and management.
package config

// DefaultTemplate and DefaultRootName are the built-in option defaults.
const (
	DefaultTemplate = "umd"
	DefaultRootName = "root"
)

// LogConfig contains logging-related settings.
type LogConfig struct {
	// Timestamps controls whether timestamps are shown in log output.
	// Default: true. Override with --timestamps flag.
	Timestamps *bool `mapstructure:"timestamps" yaml:"timestamps,omitempty"`
}

// Config represents the umdwrap configuration file.
// Loaded from ~/.umdwrap/config.yaml unless --config or UMDWRAP_CONFIG says otherwise.
type Config struct {
	// Template selects the wrapper template: a file path or a bundled name.
	// Env: UMDWRAP_TEMPLATE, Default: "umd"
	Template string `mapstructure:"template" yaml:"template,omitempty"`

	// RootName is the namespace root used by the browser-global branch.
	// Env: UMDWRAP_ROOT_NAME, Default: "root"
	RootName string `mapstructure:"rootName" yaml:"rootName,omitempty"`

	// Jobs bounds how many files a batch build processes at once.
	// Env: UMDWRAP_JOBS, Default: number of CPUs
	Jobs int `mapstructure:"jobs" yaml:"jobs,omitempty"`

	// Log contains logging-related settings.
	Log LogConfig `mapstructure:"log" yaml:"log,omitempty"`
}

// DefaultConfig returns a Config with all default values populated.
func DefaultConfig() *Config {
	return &Config{
		Template: DefaultTemplate,
		RootName: DefaultRootName,
	}
}

// WithDefaults returns a copy of c with empty fields set to their defaults.
func (c *Config) WithDefaults() *Config {
	out := *c
	if out.Template == "" {
		out.Template = DefaultTemplate
	}
	if out.RootName == "" {
		out.RootName = DefaultRootName
	}
	return &out
}

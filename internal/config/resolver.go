package config

import (
	"os"
	"runtime"
	"strconv"

	"github.com/quandora/grunt-umd-wrapper/internal/output"
)

// ConfigSource indicates where a configuration value came from.
type ConfigSource string

const (
	// SourceFlag indicates value came from command-line flag.
	SourceFlag ConfigSource = "flag"
	// SourceEnv indicates value came from environment variable.
	SourceEnv ConfigSource = "env"
	// SourceConfig indicates value came from config file.
	SourceConfig ConfigSource = "config"
	// SourceDefault indicates value is the built-in default.
	SourceDefault ConfigSource = "default"
)

// Environment variables consulted during resolution.
const (
	EnvConfig   = envPrefix + "_CONFIG"
	EnvTemplate = envPrefix + "_TEMPLATE"
	EnvRootName = envPrefix + "_ROOT_NAME"
)

// ResolvedValue is a configuration value together with its origin.
type ResolvedValue struct {
	// Key is the configuration key.
	Key string
	// Value is the winning value.
	Value string
	// Source indicates where Value came from.
	Source ConfigSource
	// Shadowed contains values that were overridden by higher precedence.
	Shadowed map[ConfigSource]string
}

// ResolvedConfig holds every resolved configuration value.
type ResolvedConfig struct {
	ConfigPath ResolvedValue
	Template   ResolvedValue
	RootName   ResolvedValue
	Jobs       int
}

// Values returns the resolved string values in a stable order.
func (r *ResolvedConfig) Values() []ResolvedValue {
	return []ResolvedValue{r.ConfigPath, r.Template, r.RootName}
}

// ResolveAllOptions contains the raw inputs for ResolveAll.
type ResolveAllOptions struct {
	ConfigFlag   string
	TemplateFlag string
	RootFlag     string
	JobsFlag     int

	// Config is the loaded config file, nil if none.
	Config *Config
}

// ResolveAll resolves configuration using precedence flag > env > config > default.
func ResolveAll(opts ResolveAllOptions) (*ResolvedConfig, error) {
	cfg := opts.Config
	if cfg == nil {
		cfg = &Config{}
	}

	defaultPath := ""
	if paths, err := DefaultPaths(); err == nil {
		defaultPath = paths.ConfigFile
	}

	resolved := &ResolvedConfig{
		ConfigPath: resolveString("config", opts.ConfigFlag, EnvConfig, "", defaultPath),
		Template:   resolveString("template", opts.TemplateFlag, EnvTemplate, cfg.Template, DefaultTemplate),
		RootName:   resolveString("rootName", opts.RootFlag, EnvRootName, cfg.RootName, DefaultRootName),
		Jobs:       resolveJobs(opts.JobsFlag, cfg.Jobs),
	}
	return resolved, nil
}

func resolveString(key, flagValue, envVar, configValue, defaultValue string) ResolvedValue {
	rv := ResolvedValue{Key: key, Shadowed: make(map[ConfigSource]string)}

	candidates := []struct {
		source ConfigSource
		value  string
	}{
		{SourceFlag, flagValue},
		{SourceEnv, os.Getenv(envVar)},
		{SourceConfig, configValue},
		{SourceDefault, defaultValue},
	}

	for _, c := range candidates {
		if c.value == "" {
			continue
		}
		if rv.Source == "" {
			rv.Value = c.value
			rv.Source = c.source
			continue
		}
		rv.Shadowed[c.source] = c.value
	}
	return rv
}

func resolveJobs(flagValue, configValue int) int {
	switch {
	case flagValue > 0:
		return flagValue
	case configValue > 0:
		return configValue
	default:
		return runtime.NumCPU()
	}
}

// LogResolvedValues logs configuration resolution at DEBUG level.
func LogResolvedValues(r *ResolvedConfig) {
	for _, v := range r.Values() {
		output.Debug("config value resolved",
			"key", v.Key,
			"value", v.Value,
			"source", v.Source,
		)
		for source, shadowed := range v.Shadowed {
			output.Debug("  shadowed by higher precedence",
				"key", v.Key,
				"shadowed_source", source,
				"shadowed_value", shadowed,
			)
		}
	}
	output.Debug("config value resolved", "key", "jobs", "value", strconv.Itoa(r.Jobs))
}

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	oerrors "github.com/quandora/grunt-umd-wrapper/internal/errors"
)

// Environment variable prefix for umdwrap configuration.
const envPrefix = "UMDWRAP"

// Loader reads the configuration file.
type Loader struct {
	v *viper.Viper
}

// NewLoader creates a new configuration loader.
func NewLoader() *Loader {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)

	// template and rootName are resolved by ResolveAll so their source can
	// be reported; only the remaining keys read the environment here.
	_ = v.BindEnv("jobs", envPrefix+"_JOBS")
	_ = v.BindEnv("log.timestamps", envPrefix+"_LOG_TIMESTAMPS")

	return &Loader{v: v}
}

// Load loads configuration from configFile. A missing file is not an error:
// the returned Config then only carries environment values.
func (l *Loader) Load(configFile string) (*Config, error) {
	if configFile == "" {
		paths, err := DefaultPaths()
		if err != nil {
			return nil, fmt.Errorf("getting config file path: %w", err)
		}
		configFile = paths.ConfigFile
	}

	path := ExpandTilde(configFile)
	l.v.SetConfigFile(path)
	if filepath.Ext(path) == "" {
		l.v.SetConfigType("yaml")
	}

	if err := l.v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("reading config file %s: %w", path, err)
		}
	}

	var cfg Config
	if err := l.v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	return &cfg, nil
}

// LoadRequired loads a config file the user asked for by name. Unlike Load,
// a missing file is a not-found error.
func (l *Loader) LoadRequired(configFile string) (*Config, error) {
	path := ExpandTilde(configFile)
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		return nil, oerrors.NewNotFoundError(
			"config file does not exist",
			path,
			"Run 'umdwrap config init' to create one.",
		)
	}
	return l.Load(path)
}

// ConfigFileUsed returns the path of the file read by the last Load.
func (l *Loader) ConfigFileUsed() string {
	return l.v.ConfigFileUsed()
}

// LoadDotEnv loads KEY=value pairs from the given .env files into the
// process environment without overriding variables that are already set.
// Missing files are ignored.
func LoadDotEnv(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("loading %s: %w", f, err)
		}
	}
	return nil
}

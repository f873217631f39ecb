package config

import (
	"os"
	"path/filepath"
)

// Paths contains standard filesystem paths for umdwrap.
type Paths struct {
	// ConfigFile is the path to the config file (~/.umdwrap/config.yaml).
	ConfigFile string

	// HomeDir is the umdwrap home directory (~/.umdwrap).
	HomeDir string
}

// DefaultPaths returns the default paths for umdwrap.
func DefaultPaths() (*Paths, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}

	home := filepath.Join(homeDir, ".umdwrap")

	return &Paths{
		ConfigFile: filepath.Join(home, "config.yaml"),
		HomeDir:    home,
	}, nil
}

// ExpandTilde expands a leading ~ to the user's home directory.
// ~username forms are returned unchanged.
func ExpandTilde(path string) string {
	if path == "" || path[0] != '~' {
		return path
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return path
	}

	if len(path) == 1 {
		return homeDir
	}
	if path[1] == '/' || path[1] == filepath.Separator {
		return filepath.Join(homeDir, path[2:])
	}
	return path
}

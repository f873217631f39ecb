package project

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/quandora/grunt-umd-wrapper/internal/output"
	"github.com/quandora/grunt-umd-wrapper/internal/pipeline"
)

// Format is a project file format.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

// InitOptions configures Init.
type InitOptions struct {
	// Dir is the directory the project file is created in.
	Dir string

	// Format selects YAML (default) or TOML.
	Format Format

	// Target is the name of the starter target. Defaults to "lib".
	Target string

	// Src and DestDir seed the starter file group.
	Src     string
	DestDir string

	// Options become the project-wide options.
	Options pipeline.Options

	// Force overwrites an existing project file.
	Force bool
}

// Init writes a starter project file and returns its path.
func Init(opts InitOptions) (string, error) {
	if opts.Format == "" {
		opts.Format = FormatYAML
	}
	if opts.Target == "" {
		opts.Target = "lib"
	}
	if opts.Src == "" {
		opts.Src = "src/*.js"
	}
	if opts.DestDir == "" {
		opts.DestDir = "dist"
	}

	var name string
	switch opts.Format {
	case FormatYAML:
		name = FileNames[0]
	case FormatTOML:
		name = FileNames[2]
	default:
		return "", fmt.Errorf("unsupported project format %q; use yaml or toml", opts.Format)
	}

	if !opts.Force {
		if existing, err := Find(opts.Dir); err == nil {
			return "", fmt.Errorf("project file %s already exists; use --force to overwrite", existing)
		}
	}

	data, err := encode(opts)
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(opts.Dir, 0o755); err != nil {
		return "", fmt.Errorf("creating directory %s: %w", opts.Dir, err)
	}
	path := filepath.Join(opts.Dir, name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("writing %s: %w", path, err)
	}

	output.Debug("created project file", "path", path, "format", opts.Format)
	return path, nil
}

func encode(opts InitOptions) ([]byte, error) {
	raw := rawProject{
		Options: opts.Options,
		Targets: []rawTarget{{
			Name:  opts.Target,
			Files: []rawFileGroup{{Src: []any{opts.Src}, DestDir: opts.DestDir}},
		}},
	}

	var buf bytes.Buffer
	switch opts.Format {
	case FormatTOML:
		if err := toml.NewEncoder(&buf).Encode(raw); err != nil {
			return nil, fmt.Errorf("encoding project file: %w", err)
		}
	default:
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err := enc.Encode(raw); err != nil {
			return nil, fmt.Errorf("encoding project file: %w", err)
		}
		if err := enc.Close(); err != nil {
			return nil, fmt.Errorf("encoding project file: %w", err)
		}
	}
	return buf.Bytes(), nil
}

package project

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	oerrors "github.com/quandora/grunt-umd-wrapper/internal/errors"
	"github.com/quandora/grunt-umd-wrapper/internal/pipeline"
)

// rawProject mirrors the file layout. Src is decoded loosely because it may
// be written as a single string or as a list.
type rawProject struct {
	Options pipeline.Options `yaml:"options,omitempty" toml:"options,omitempty"`
	Targets []rawTarget      `yaml:"targets" toml:"targets"`
}

type rawTarget struct {
	Name    string           `yaml:"name" toml:"name"`
	Options pipeline.Options `yaml:"options,omitempty" toml:"options,omitempty"`
	Files   []rawFileGroup   `yaml:"files" toml:"files"`
}

type rawFileGroup struct {
	Src     any    `yaml:"src" toml:"src"`
	Dest    string `yaml:"dest,omitempty" toml:"dest,omitempty"`
	DestDir string `yaml:"destDir,omitempty" toml:"destDir,omitempty"`
}

// Find returns the first project file present in dir.
func Find(dir string) (string, error) {
	for _, name := range FileNames {
		path := filepath.Join(dir, name)
		if info, err := os.Stat(path); err == nil && info.Mode().IsRegular() {
			return path, nil
		}
	}
	return "", oerrors.NewNotFoundError(
		fmt.Sprintf("no project file in %s", dir),
		dir,
		fmt.Sprintf("Create one of %s or pass --project.", strings.Join(FileNames, ", ")),
	)
}

// Load reads and validates a project file. The format follows the file
// extension: .toml is TOML, anything else YAML.
func Load(path string) (*Project, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, oerrors.NewNotFoundError(fmt.Sprintf("project file %s does not exist", path), path, "")
		}
		return nil, oerrors.NewReadError(path, err)
	}

	var raw rawProject
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		err = toml.Unmarshal(data, &raw)
	} else {
		err = yaml.Unmarshal(data, &raw)
	}
	if err != nil {
		return nil, oerrors.NewValidationError(fmt.Sprintf("parsing project file: %v", err), path, "")
	}

	return build(path, raw)
}

func build(path string, raw rawProject) (*Project, error) {
	p := &Project{
		Path:    path,
		Dir:     filepath.Dir(path),
		Options: raw.Options,
	}

	seen := make(map[string]bool)
	for i, rt := range raw.Targets {
		if rt.Name == "" {
			return nil, invalid(path, "target #%d has no name", i+1)
		}
		if seen[rt.Name] {
			return nil, invalid(path, "duplicate target %q", rt.Name)
		}
		seen[rt.Name] = true

		t := Target{Name: rt.Name, Options: rt.Options}
		for j, rg := range rt.Files {
			src, err := patterns(rg.Src)
			if err != nil {
				return nil, invalid(path, "target %q file group #%d: %v", rt.Name, j+1, err)
			}
			if (rg.Dest == "") == (rg.DestDir == "") {
				return nil, invalid(path, "target %q file group #%d: exactly one of dest or destDir is required", rt.Name, j+1)
			}
			t.Files = append(t.Files, FileGroup{Src: src, Dest: rg.Dest, DestDir: rg.DestDir})
		}
		if len(t.Files) == 0 {
			return nil, invalid(path, "target %q has no files", rt.Name)
		}
		p.Targets = append(p.Targets, t)
	}

	if len(p.Targets) == 0 {
		return nil, invalid(path, "no targets defined")
	}
	return p, nil
}

func patterns(v any) ([]string, error) {
	switch src := v.(type) {
	case string:
		if src == "" {
			return nil, errors.New("src is empty")
		}
		return []string{src}, nil
	case []any:
		out := make([]string, 0, len(src))
		for _, item := range src {
			s, ok := item.(string)
			if !ok || s == "" {
				return nil, fmt.Errorf("src entries must be non-empty strings, got %v", item)
			}
			out = append(out, s)
		}
		if len(out) == 0 {
			return nil, errors.New("src is empty")
		}
		return out, nil
	case nil:
		return nil, errors.New("src is required")
	default:
		return nil, fmt.Errorf("src must be a string or a list of strings, got %T", v)
	}
}

func invalid(path, format string, args ...any) error {
	return oerrors.NewValidationError(fmt.Sprintf(format, args...), path, "")
}

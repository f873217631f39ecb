package project

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	oerrors "github.com/quandora/grunt-umd-wrapper/internal/errors"
	"github.com/quandora/grunt-umd-wrapper/internal/pipeline"
	"github.com/quandora/grunt-umd-wrapper/internal/testutil"
)

const yamlProject = `options:
  template: umd
  rootName: root
targets:
  - name: lib
    options:
      rootName: window
    files:
      - src: src/lib.js
        dest: dist/lib.js
  - name: widgets
    files:
      - src: ["src/widgets/*.js"]
        destDir: dist/widgets
`

const tomlProject = `[options]
template = "umd"
rootName = "root"

[[targets]]
name = "lib"

[targets.options]
rootName = "window"

[[targets.files]]
src = "src/lib.js"
dest = "dist/lib.js"

[[targets]]
name = "widgets"

[[targets.files]]
src = ["src/widgets/*.js"]
destDir = "dist/widgets"
`

func TestLoad_Formats(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
	}{
		{"yaml", "umdwrap.yaml", yamlProject},
		{"toml", "umdwrap.toml", tomlProject},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			path := testutil.WriteFile(t, dir, tt.file, tt.content)

			p, err := Load(path)
			require.NoError(t, err)

			assert.Equal(t, dir, p.Dir)
			assert.Equal(t, pipeline.Options{Template: "umd", RootName: "root"}, p.Options)
			assert.Equal(t, []string{"lib", "widgets"}, p.TargetNames())

			lib, ok := p.Target("lib")
			require.True(t, ok)
			assert.Equal(t, "window", lib.Options.RootName)
			assert.Equal(t, []FileGroup{{Src: []string{"src/lib.js"}, Dest: "dist/lib.js"}}, lib.Files)

			widgets, ok := p.Target("widgets")
			require.True(t, ok)
			assert.Equal(t, []FileGroup{{Src: []string{"src/widgets/*.js"}, DestDir: "dist/widgets"}}, widgets.Files)
		})
	}
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
		errMsg  string
	}{
		{"syntax", "targets: [\n", "parsing project file"},
		{"no targets", "options:\n  template: amd\n", "no targets defined"},
		{"unnamed target", "targets:\n  - files:\n      - src: a.js\n        dest: b.js\n", "has no name"},
		{"duplicate target", "targets:\n  - name: a\n    files: [{src: a.js, dest: b.js}]\n  - name: a\n    files: [{src: a.js, dest: b.js}]\n", `duplicate target "a"`},
		{"no files", "targets:\n  - name: a\n", `target "a" has no files`},
		{"no src", "targets:\n  - name: a\n    files: [{dest: b.js}]\n", "src is required"},
		{"bad src", "targets:\n  - name: a\n    files: [{src: 3, dest: b.js}]\n", "src must be a string"},
		{"both dests", "targets:\n  - name: a\n    files: [{src: a.js, dest: b.js, destDir: out}]\n", "exactly one of dest or destDir"},
		{"no dest", "targets:\n  - name: a\n    files: [{src: a.js}]\n", "exactly one of dest or destDir"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := testutil.WriteFile(t, t.TempDir(), "umdwrap.yaml", tt.content)

			_, err := Load(path)
			require.Error(t, err)
			assert.True(t, errors.Is(err, oerrors.ErrValidation), "expected validation error, got %v", err)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}

func TestLoad_Missing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "umdwrap.yaml"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, oerrors.ErrNotFound))
}

func TestFind(t *testing.T) {
	t.Run("prefers yaml", func(t *testing.T) {
		dir := t.TempDir()
		testutil.WriteFile(t, dir, "umdwrap.toml", tomlProject)
		testutil.WriteFile(t, dir, "umdwrap.yaml", yamlProject)

		path, err := Find(dir)
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(dir, "umdwrap.yaml"), path)
	})

	t.Run("toml", func(t *testing.T) {
		dir := t.TempDir()
		testutil.WriteFile(t, dir, "umdwrap.toml", tomlProject)

		path, err := Find(dir)
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(dir, "umdwrap.toml"), path)
	})

	t.Run("none", func(t *testing.T) {
		_, err := Find(t.TempDir())
		require.Error(t, err)
		assert.True(t, errors.Is(err, oerrors.ErrNotFound))
		assert.Equal(t, oerrors.ExitNotFound, oerrors.ExitCodeFromError(err))
	})
}

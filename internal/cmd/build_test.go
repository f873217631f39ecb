package cmd

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	oerrors "github.com/quandora/grunt-umd-wrapper/internal/errors"
	"github.com/quandora/grunt-umd-wrapper/internal/testutil"
)

const buildProject = `options:
  template: amd
targets:
  - name: lib
    files:
      - src: src/lib.js
        dest: dist/lib.js
  - name: widgets
    options:
      template: commonjs
    files:
      - src: ["src/widgets/*.js"]
        destDir: dist/widgets
`

func setupProject(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	testutil.WriteFile(t, dir, "umdwrap.yaml", buildProject)
	testutil.WriteFile(t, dir, filepath.Join("src", "lib.js"), "@import a as A\nlib();\n")
	testutil.WriteFile(t, dir, filepath.Join("src", "widgets", "one.js"), "@import b\none();\n")
	testutil.WriteFile(t, dir, filepath.Join("src", "widgets", "two.js"), "two();\n")
	return dir
}

func TestBuild_AllTargets(t *testing.T) {
	dir := setupProject(t)

	_, err := execute(t, "build", "-p", filepath.Join(dir, "umdwrap.yaml"), "-j", "2")
	require.NoError(t, err)

	assert.Equal(t, "define(['a'], function(A) {\n\nlib();\n\n});\n",
		testutil.ReadFile(t, filepath.Join(dir, "dist", "lib.js")))
	assert.Equal(t, "require('b');\nmodule.exports = (function() {\n\none();\n\n}());\n",
		testutil.ReadFile(t, filepath.Join(dir, "dist", "widgets", "one.js")))
	assert.FileExists(t, filepath.Join(dir, "dist", "widgets", "two.js"))
}

func TestBuild_SelectedTargetAndFlagOverride(t *testing.T) {
	dir := setupProject(t)

	_, err := execute(t, "build", "widgets", "-p", filepath.Join(dir, "umdwrap.yaml"), "-t", "amd")
	require.NoError(t, err)

	assert.NoFileExists(t, filepath.Join(dir, "dist", "lib.js"))
	assert.Equal(t, "define([], function() {\n\ntwo();\n\n});\n",
		testutil.ReadFile(t, filepath.Join(dir, "dist", "widgets", "two.js")))
}

func TestBuild_Check(t *testing.T) {
	dir := setupProject(t)
	project := filepath.Join(dir, "umdwrap.yaml")

	_, err := execute(t, "build", "-p", project)
	require.NoError(t, err)

	_, err = execute(t, "build", "-p", project, "--check")
	require.NoError(t, err)

	testutil.WriteFile(t, dir, filepath.Join("dist", "lib.js"), "stale\n")
	_, err = execute(t, "build", "-p", project, "--check")
	require.Error(t, err)
	assert.Equal(t, oerrors.ExitValidationError, exitCode(t, err))
	assert.Equal(t, "stale\n", testutil.ReadFile(t, filepath.Join(dir, "dist", "lib.js")))
}

func TestBuild_KeepGoing(t *testing.T) {
	dir := setupProject(t)
	testutil.WriteFile(t, dir, filepath.Join("src", "widgets", "broken.js"), "@include nope.js\n")

	_, err := execute(t, "build", "-p", filepath.Join(dir, "umdwrap.yaml"), "--keep-going", "-j", "1")
	require.Error(t, err)
	assert.Equal(t, oerrors.ExitNotFound, exitCode(t, err))

	assert.FileExists(t, filepath.Join(dir, "dist", "lib.js"))
	assert.FileExists(t, filepath.Join(dir, "dist", "widgets", "one.js"))
	assert.FileExists(t, filepath.Join(dir, "dist", "widgets", "two.js"))
	assert.NoFileExists(t, filepath.Join(dir, "dist", "widgets", "broken.js"))
}

func TestBuild_Errors(t *testing.T) {
	dir := setupProject(t)
	project := filepath.Join(dir, "umdwrap.yaml")
	invalid := testutil.WriteFile(t, dir, "invalid.yaml", "targets: []\n")

	tests := []struct {
		name string
		args []string
		code int
	}{
		{"unknown target", []string{"build", "nope", "-p", project}, oerrors.ExitNotFound},
		{"missing project", []string{"build", "-p", filepath.Join(dir, "none.yaml")}, oerrors.ExitNotFound},
		{"invalid project", []string{"build", "-p", invalid}, oerrors.ExitValidationError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := execute(t, tt.args...)
			require.Error(t, err)
			assert.Equal(t, tt.code, exitCode(t, err))
		})
	}
}

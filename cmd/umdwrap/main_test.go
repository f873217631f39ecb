package main

import (
	"context"
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quandora/grunt-umd-wrapper/internal/testutil"
)

var umdwrapBinary string

func TestMain(m *testing.M) {
	// Build the binary once for all tests
	tmpDir, err := os.MkdirTemp("", "umdwrap-e2e-*")
	if err != nil {
		panic("failed to create temp dir: " + err.Error())
	}

	umdwrapBinary = filepath.Join(tmpDir, "umdwrap")

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	cmd := exec.CommandContext(ctx, "go", "build", "-o", umdwrapBinary, ".")
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		cancel()
		os.RemoveAll(tmpDir)
		panic("failed to build umdwrap binary: " + err.Error())
	}
	cancel()

	code := m.Run()
	os.RemoveAll(tmpDir)
	os.Exit(code)
}

// runUmdwrap runs the binary in workDir with an isolated home directory.
func runUmdwrap(t *testing.T, workDir string, args ...string) (stdout, stderr string, code int) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	cmd := exec.CommandContext(ctx, umdwrapBinary, args...)
	cmd.Dir = workDir
	cmd.Env = append(os.Environ(), "HOME="+t.TempDir(), "UMDWRAP_TEMPLATE=", "UMDWRAP_ROOT_NAME=", "UMDWRAP_CONFIG=")

	stdoutBytes, err := cmd.Output()
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return string(stdoutBytes), string(exitErr.Stderr), exitErr.ExitCode()
	}
	require.NoError(t, err)
	return string(stdoutBytes), "", 0
}

func TestE2E_WrapGolden(t *testing.T) {
	dir := testutil.CopyDir(t, filepath.Join("..", "..", "internal", "umd", "testdata"))

	stdout, stderr, code := runUmdwrap(t, dir, "wrap", "module.js", "--root", "this")
	require.Equal(t, 0, code, "stderr: %s", stderr)
	assert.Equal(t, testutil.ReadFile(t, filepath.Join(dir, "module.golden.js")), stdout)
}

func TestE2E_WrapCheck(t *testing.T) {
	dir := testutil.CopyDir(t, filepath.Join("..", "..", "internal", "umd", "testdata"))

	_, stderr, code := runUmdwrap(t, dir, "wrap", "module.js", "--root", "this", "-o", "module.golden.js", "--check")
	assert.Equal(t, 0, code, "stderr: %s", stderr)

	_, _, code = runUmdwrap(t, dir, "wrap", "module.js", "-o", "module.golden.js", "--check")
	assert.Equal(t, 2, code)
}

func TestE2E_ExitCodes(t *testing.T) {
	dir := t.TempDir()
	testutil.WriteFile(t, dir, "broken.js", "@include missing.js\n")
	testutil.WriteFile(t, dir, "ok.js", "ok();\n")

	tests := []struct {
		name string
		args []string
		code int
	}{
		{"missing include", []string{"wrap", "broken.js"}, 5},
		{"unknown template", []string{"wrap", "ok.js", "-t", "nope"}, 5},
		{"no project", []string{"build"}, 5},
		{"bad flag", []string{"wrap", "--nope"}, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, stderr, code := runUmdwrap(t, dir, tt.args...)
			assert.Equal(t, tt.code, code, "stderr: %s", stderr)
			assert.NotEmpty(t, stderr)
		})
	}
}

func TestE2E_InitThenBuild(t *testing.T) {
	dir := t.TempDir()
	testutil.WriteFile(t, dir, "src/a.js", "@export a\nvar a = 1;\n")

	_, stderr, code := runUmdwrap(t, dir, "init")
	require.Equal(t, 0, code, "stderr: %s", stderr)

	_, stderr, code = runUmdwrap(t, dir, "build")
	require.Equal(t, 0, code, "stderr: %s", stderr)
	assert.Contains(t, testutil.ReadFile(t, filepath.Join(dir, "dist", "a.js")), "root.a = factory();")
}

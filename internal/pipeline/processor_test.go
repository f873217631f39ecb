package pipeline

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	oerrors "github.com/quandora/grunt-umd-wrapper/internal/errors"
	"github.com/quandora/grunt-umd-wrapper/internal/testutil"
)

func newProcessor(t *testing.T, cfg Config) *Processor {
	t.Helper()
	p, err := NewProcessor(cfg)
	require.NoError(t, err)
	return p
}

func TestProcess_WritesDestination(t *testing.T) {
	dir := t.TempDir()
	testutil.WriteFiles(t, dir, map[string]string{
		"src/lib.js":  "@export lib\n@import dep as D\n@include part.js\n",
		"src/part.js": "var lib = D;",
		"tpl.txt":     "%ROOT%.%EXPORT_NAME%(%BROWSER_ARGS%){%SRC%}",
	})

	job := Job{
		Src:     filepath.Join(dir, "src", "lib.js"),
		Dest:    filepath.Join(dir, "dist", "nested", "lib.js"),
		Options: Options{Template: filepath.Join(dir, "tpl.txt"), RootName: "w"},
	}

	res, err := newProcessor(t, Config{}).Process(context.Background(), job)
	require.NoError(t, err)

	want := "w.lib(w.D){\nvar lib = D;\n}"
	assert.Equal(t, StatusWrapped, res.Status)
	assert.Equal(t, want, res.Output)
	assert.Equal(t, int64(len(want)), res.Bytes)
	assert.Equal(t, job.Options.Template, res.Template)

	written, err := os.ReadFile(job.Dest)
	require.NoError(t, err)
	assert.Equal(t, want, string(written))
}

func TestProcess_NoDestinationOnlyRenders(t *testing.T) {
	dir := t.TempDir()
	testutil.WriteFiles(t, dir, map[string]string{"a.js": "@import x\nbody();"})

	res, err := newProcessor(t, Config{}).Process(context.Background(), Job{
		Src:     filepath.Join(dir, "a.js"),
		Options: Options{Template: "amd"},
	})
	require.NoError(t, err)

	assert.Equal(t, StatusRendered, res.Status)
	assert.Equal(t, "define(['x'], function() {\n\nbody();\n\n});\n", res.Output)
	assert.Equal(t, "bundled:amd", res.Template)
}

func TestProcess_ByteOrderMark(t *testing.T) {
	dir := t.TempDir()
	testutil.WriteFiles(t, dir, map[string]string{
		"lib.js":  "\ufeff@module demo\n@export mod\n@import jquery as $\n@include part.js\nvar mod = {};\n",
		"part.js": "\ufeffvar part = 1;",
		"tpl.txt": "\ufeff%EXPORT_NAME%|%AMD_REQUIRES%|%SRC%",
	})

	res, err := newProcessor(t, Config{}).Process(context.Background(), Job{
		Src:     filepath.Join(dir, "lib.js"),
		Options: Options{Template: filepath.Join(dir, "tpl.txt")},
	})
	require.NoError(t, err)

	assert.Equal(t, "demo", res.Module.Name)
	assert.Equal(t, "mod", res.Module.Export)
	assert.Equal(t, "\nvar part = 1;\nvar mod = {};\n", res.Module.Body)
	assert.Equal(t, "mod|'jquery'|\nvar part = 1;\nvar mod = {};\n", res.Output)
	assert.NotContains(t, res.Output, "\ufeff")
}

func TestProcess_IncludeFailureWritesNothing(t *testing.T) {
	dir := t.TempDir()
	testutil.WriteFiles(t, dir, map[string]string{"a.js": "@include missing.js\n"})
	dest := filepath.Join(dir, "out", "a.js")

	_, err := newProcessor(t, Config{}).Process(context.Background(), Job{
		Src:     filepath.Join(dir, "a.js"),
		Dest:    dest,
		Options: Options{Template: "umd"},
	})

	require.Error(t, err)
	assert.True(t, errors.Is(err, oerrors.ErrRead))
	assert.NoFileExists(t, dest)
	assert.NoDirExists(t, filepath.Join(dir, "out"))
}

func TestProcess_MissingSource(t *testing.T) {
	_, err := newProcessor(t, Config{}).Process(context.Background(), Job{
		Src: filepath.Join(t.TempDir(), "nope.js"),
	})
	assert.True(t, errors.Is(err, oerrors.ErrRead))
}

func TestProcess_TemplateNotFound(t *testing.T) {
	dir := t.TempDir()
	testutil.WriteFiles(t, dir, map[string]string{"a.js": "x;"})
	dest := filepath.Join(dir, "out.js")

	_, err := newProcessor(t, Config{}).Process(context.Background(), Job{
		Src:     filepath.Join(dir, "a.js"),
		Dest:    dest,
		Options: Options{Template: "no-such-template"},
	})

	assert.True(t, errors.Is(err, oerrors.ErrTemplateNotFound))
	assert.NoFileExists(t, dest)
}

func TestProcess_ReportsUnknownDirectives(t *testing.T) {
	dir := t.TempDir()
	testutil.WriteFiles(t, dir, map[string]string{"a.js": "@license MIT\n@module a\n"})

	res, err := newProcessor(t, Config{}).Process(context.Background(), Job{Src: filepath.Join(dir, "a.js")})
	require.NoError(t, err)

	require.Len(t, res.Unknown, 1)
	assert.Equal(t, "license", res.Unknown[0].Token)
	assert.Contains(t, res.Output, "@license MIT")
}

func TestProcess_CheckMode(t *testing.T) {
	dir := t.TempDir()
	testutil.WriteFiles(t, dir, map[string]string{"a.js": "body();", "tpl": "[%SRC%]"})
	job := Job{
		Src:     filepath.Join(dir, "a.js"),
		Dest:    filepath.Join(dir, "out.js"),
		Options: Options{Template: filepath.Join(dir, "tpl")},
	}
	p := newProcessor(t, Config{Check: true})

	t.Run("missing destination is stale", func(t *testing.T) {
		res, err := p.Process(context.Background(), job)
		require.NoError(t, err)
		assert.Equal(t, StatusStale, res.Status)
		assert.Contains(t, res.Diff, "+ body();")
		assert.NoFileExists(t, job.Dest)
	})

	t.Run("matching destination is unchanged", func(t *testing.T) {
		testutil.WriteFiles(t, dir, map[string]string{"out.js": "[\nbody();\n]"})
		res, err := p.Process(context.Background(), job)
		require.NoError(t, err)
		assert.Equal(t, StatusUnchanged, res.Status)
		assert.Empty(t, res.Diff)
	})

	t.Run("different destination is stale and untouched", func(t *testing.T) {
		testutil.WriteFiles(t, dir, map[string]string{"out.js": "[\nold();\n]"})
		res, err := p.Process(context.Background(), job)
		require.NoError(t, err)
		assert.Equal(t, StatusStale, res.Status)
		assert.Contains(t, res.Diff, "- old();")

		content, err := os.ReadFile(job.Dest)
		require.NoError(t, err)
		assert.Equal(t, "[\nold();\n]", string(content))
	})
}

func TestProcess_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := newProcessor(t, Config{}).Process(ctx, Job{Src: "irrelevant.js"})
	assert.ErrorIs(t, err, context.Canceled)
}

func batch(t *testing.T, dir string, n int, broken map[int]bool) []Job {
	t.Helper()
	jobs := make([]Job, 0, n)
	for i := 0; i < n; i++ {
		name := filepath.Join(dir, "src", string(rune('a'+i))+".js")
		content := "@include shared.js\n"
		if broken[i] {
			content = "@include missing.js\n"
		}
		require.NoError(t, os.MkdirAll(filepath.Dir(name), 0o755))
		require.NoError(t, os.WriteFile(name, []byte(content), 0o644))
		jobs = append(jobs, Job{
			Src:     name,
			Dest:    filepath.Join(dir, "dist", filepath.Base(name)),
			Options: Options{Template: "commonjs"},
		})
	}
	testutil.WriteFiles(t, dir, map[string]string{"src/shared.js": "shared();"})
	return jobs
}

func TestRun_AllSucceed(t *testing.T) {
	dir := t.TempDir()
	jobs := batch(t, dir, 6, nil)
	p := newProcessor(t, Config{Jobs: 3})

	results, err := p.Run(context.Background(), jobs)
	require.NoError(t, err)
	require.Len(t, results, 6)

	for i, res := range results {
		require.NotNil(t, res)
		assert.Equal(t, jobs[i].Src, res.Job.Src, "results keep job order")
		assert.FileExists(t, jobs[i].Dest)
	}
	assert.Equal(t, 1, p.reader.Len(), "shared include is read once")
}

func TestRun_ContinueOnError(t *testing.T) {
	dir := t.TempDir()
	jobs := batch(t, dir, 4, map[int]bool{1: true})

	results, err := newProcessor(t, Config{Jobs: 1, ContinueOnError: true}).Run(context.Background(), jobs)

	require.Error(t, err)
	assert.True(t, errors.Is(err, oerrors.ErrRead))
	assert.Contains(t, err.Error(), jobs[1].Src)
	assert.Nil(t, results[1])
	assert.NotNil(t, results[0])
	assert.NotNil(t, results[2])
	assert.NotNil(t, results[3])
	assert.NoFileExists(t, jobs[1].Dest)
}

func TestRun_StopsAfterFirstError(t *testing.T) {
	dir := t.TempDir()
	jobs := batch(t, dir, 4, map[int]bool{0: true})

	results, err := newProcessor(t, Config{Jobs: 1}).Run(context.Background(), jobs)

	require.Error(t, err)
	assert.True(t, errors.Is(err, oerrors.ErrRead))
	for i := range results {
		assert.Nil(t, results[i], "job %d should be skipped", i)
	}
}

func TestStale(t *testing.T) {
	results := []*Result{
		{Status: StatusUnchanged},
		nil,
		{Status: StatusStale, Job: Job{Src: "b.js"}},
	}

	stale := Stale(results)
	require.Len(t, stale, 1)
	assert.Equal(t, "b.js", stale[0].Job.Src)
}

func TestOptionsMerge(t *testing.T) {
	got := Options{RootName: "w"}.Merge(Options{Template: "amd", RootName: "root"})
	assert.Equal(t, Options{Template: "amd", RootName: "w"}, got)
}

package pipeline

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"github.com/quandora/grunt-umd-wrapper/internal/annotation"
	oerrors "github.com/quandora/grunt-umd-wrapper/internal/errors"
	"github.com/quandora/grunt-umd-wrapper/internal/output"
	"github.com/quandora/grunt-umd-wrapper/internal/templates"
	"github.com/quandora/grunt-umd-wrapper/internal/umd"
)

// Status values reported in Result.Status.
const (
	StatusWrapped   = output.StatusWrapped
	StatusUnchanged = output.StatusUnchanged
	StatusStale     = output.StatusStale
	StatusRendered  = "rendered"
)

// Result describes one processed job.
type Result struct {
	Job Job

	// Module is the extracted descriptor.
	Module *annotation.Module

	// Template is where the template text came from.
	Template string

	// Output is the rendered text.
	Output string

	// Status is one of the Status* values.
	Status string

	// Bytes is the size of Output.
	Bytes int64

	// Diff is the rendered difference against the existing destination
	// in check mode; empty when they match.
	Diff string

	// Unknown lists directives that were left in the body untouched.
	Unknown []annotation.Directive
}

// Config configures a Processor.
type Config struct {
	// Jobs bounds the number of files processed concurrently by Run.
	Jobs int

	// ContinueOnError keeps Run going after a failed job.
	ContinueOnError bool

	// Check compares output against existing destinations instead of writing.
	Check bool

	// CacheSize bounds the file cache; zero uses DefaultCacheSize.
	CacheSize int
}

// Processor wraps source files.
type Processor struct {
	cfg      Config
	reader   *CachedReader
	resolver *templates.Resolver
}

// NewProcessor creates a processor.
func NewProcessor(cfg Config) (*Processor, error) {
	if cfg.Jobs <= 0 {
		cfg.Jobs = 1
	}
	reader, err := NewCachedReader(cfg.CacheSize)
	if err != nil {
		return nil, err
	}
	return &Processor{
		cfg:      cfg,
		reader:   reader,
		resolver: templates.NewResolver(reader.ReadFile),
	}, nil
}

// Process wraps a single source file. The destination is written only after
// extraction and rendering both succeed.
func (p *Processor) Process(ctx context.Context, job Job) (*Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	log := output.FileLogger(job.Src)

	data, err := os.ReadFile(job.Src)
	if err != nil {
		return nil, oerrors.NewReadError(job.Src, err)
	}
	src := annotation.StripBOM(string(data))

	tpl, err := p.resolver.Resolve(job.Options.Template)
	if err != nil {
		return nil, err
	}

	directives := annotation.Scan(src)
	m, err := annotation.Fold(filepath.Dir(job.Src), src, directives, p.reader.Include)
	if err != nil {
		return nil, err
	}

	unknown := annotation.Unknown(directives)
	for _, d := range unknown {
		log.Debug("ignoring unknown directive", "token", "@"+d.Token, "value", d.Value)
	}

	out := umd.Render(m, tpl.Text, umd.Config{RootName: job.Options.RootName})
	log.Debug("rendered",
		"module", m.Name,
		"export", m.Export,
		"imports", len(m.Imports),
		"template", tpl.Origin(),
	)

	res := &Result{
		Job:      job,
		Module:   m,
		Template: tpl.Origin(),
		Output:   out,
		Status:   StatusRendered,
		Bytes:    int64(len(out)),
		Unknown:  unknown,
	}

	if job.Dest == "" {
		return res, nil
	}

	if p.cfg.Check {
		return p.check(res)
	}

	if err := writeFile(job.Dest, []byte(out)); err != nil {
		return nil, err
	}
	res.Status = StatusWrapped
	log.Debug("file written", "dest", job.Dest)
	return res, nil
}

func (p *Processor) check(res *Result) (*Result, error) {
	existing, err := os.ReadFile(res.Job.Dest)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, oerrors.NewReadError(res.Job.Dest, err)
	}

	if bytes.Equal(existing, []byte(res.Output)) {
		res.Status = StatusUnchanged
		return res, nil
	}

	res.Status = StatusStale
	res.Diff = output.RenderLineDiff(string(existing), res.Output, 2)
	return res, nil
}

// Run processes jobs concurrently, at most Config.Jobs at a time. Results are
// returned in job order; a nil entry means the job was skipped after an
// earlier failure. The returned error joins every job error.
func (p *Processor) Run(ctx context.Context, jobs []Job) ([]*Result, error) {
	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	results := make([]*Result, len(jobs))
	errs := make([]error, len(jobs))
	var failed atomic.Bool

	g := new(errgroup.Group)
	g.SetLimit(p.cfg.Jobs)

	for i, job := range jobs {
		g.Go(func() error {
			if runCtx.Err() != nil {
				return nil
			}

			res, err := p.Process(runCtx, job)
			if err != nil {
				if errors.Is(err, context.Canceled) && (failed.Load() || ctx.Err() != nil) {
					return nil
				}
				errs[i] = fmt.Errorf("%s: %w", job.Src, err)
				if !p.cfg.ContinueOnError {
					failed.Store(true)
					cancel()
				}
				return nil
			}
			results[i] = res
			return nil
		})
	}

	_ = g.Wait()
	if err := ctx.Err(); err != nil {
		errs = append(errs, err)
	}
	return results, errors.Join(errs...)
}

// Stale returns the results whose destination differs from the rendered output.
func Stale(results []*Result) []*Result {
	var stale []*Result
	for _, r := range results {
		if r != nil && r.Status == StatusStale {
			stale = append(stale, r)
		}
	}
	return stale
}

// writeFile writes data to path through a temporary file in the same
// directory so readers never observe a partially written output.
func writeFile(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating directory %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*")
	if err != nil {
		return fmt.Errorf("creating temporary file for %s: %w", path, err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("writing %s: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	if err := os.Chmod(tmp.Name(), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

package project

import (
	"fmt"
	"path/filepath"
	"strings"

	oerrors "github.com/quandora/grunt-umd-wrapper/internal/errors"
	"github.com/quandora/grunt-umd-wrapper/internal/output"
	"github.com/quandora/grunt-umd-wrapper/internal/pipeline"
)

// JobOptions controls how targets expand into jobs.
type JobOptions struct {
	// Targets selects targets by name; empty means all, in declaration order.
	Targets []string

	// Defaults fill options that neither the target nor the project sets.
	Defaults pipeline.Options

	// Overrides replace any option they set, typically from explicit flags.
	Overrides pipeline.Options
}

// Jobs expands the selected targets into pipeline jobs. Options resolve as
// overrides > target > project > defaults. No two jobs may write the same
// destination.
func (p *Project) Jobs(opts JobOptions) ([]pipeline.Job, error) {
	targets, err := p.selectTargets(opts.Targets)
	if err != nil {
		return nil, err
	}

	var jobs []pipeline.Job
	for _, t := range targets {
		options := opts.Overrides.Merge(t.Options.Merge(p.Options.Merge(opts.Defaults)))
		for _, g := range t.Files {
			expanded, err := p.expand(t, g, options)
			if err != nil {
				return nil, err
			}
			jobs = append(jobs, expanded...)
		}
	}
	if err := p.checkDestinations(jobs); err != nil {
		return nil, err
	}
	return jobs, nil
}

func (p *Project) checkDestinations(jobs []pipeline.Job) error {
	seen := make(map[string]pipeline.Job, len(jobs))
	for _, j := range jobs {
		if j.Dest == "" {
			continue
		}
		key := filepath.Clean(j.Dest)
		if prev, ok := seen[key]; ok {
			return oerrors.NewValidationError(
				fmt.Sprintf("target %q: %s and %s both write %s", j.Target, prev.Src, j.Src, j.Dest),
				p.Path,
				"Give each source its own dest, or split them across destDir folders.",
			)
		}
		seen[key] = j
	}
	return nil
}

func (p *Project) selectTargets(names []string) ([]Target, error) {
	if len(names) == 0 {
		return p.Targets, nil
	}

	targets := make([]Target, 0, len(names))
	seen := make(map[string]bool, len(names))
	for _, name := range names {
		if seen[name] {
			continue
		}
		seen[name] = true
		t, ok := p.Target(name)
		if !ok {
			return nil, oerrors.NewNotFoundError(
				fmt.Sprintf("target %q is not defined", name),
				p.Path,
				fmt.Sprintf("Available targets: %s", strings.Join(p.TargetNames(), ", ")),
			)
		}
		targets = append(targets, t)
	}
	return targets, nil
}

func (p *Project) expand(t Target, g FileGroup, options pipeline.Options) ([]pipeline.Job, error) {
	var sources []string
	for _, pattern := range g.Src {
		full := p.resolve(pattern)
		if !hasMeta(pattern) {
			// Literal paths are kept even when missing so the read error
			// surfaces instead of a silent skip.
			sources = append(sources, full)
			continue
		}
		matches, err := filepath.Glob(full)
		if err != nil {
			return nil, oerrors.NewValidationError(
				fmt.Sprintf("target %q: bad pattern %q: %v", t.Name, pattern, err), p.Path, "")
		}
		if len(matches) == 0 {
			output.TargetLogger(t.Name).Warn("pattern matched no files", "pattern", pattern)
		}
		sources = append(sources, matches...)
	}

	if g.Dest != "" && len(sources) > 1 {
		return nil, oerrors.NewValidationError(
			fmt.Sprintf("target %q: %d sources cannot share dest %s", t.Name, len(sources), g.Dest),
			p.Path,
			"Use destDir to write one output per source.",
		)
	}

	jobs := make([]pipeline.Job, 0, len(sources))
	for _, src := range sources {
		dest := p.resolve(g.Dest)
		if g.DestDir != "" {
			dest = filepath.Join(p.resolve(g.DestDir), filepath.Base(src))
		}
		jobs = append(jobs, pipeline.Job{
			Target:  t.Name,
			Src:     src,
			Dest:    dest,
			Options: options,
		})
	}
	return jobs, nil
}

func (p *Project) resolve(path string) string {
	if path == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(p.Dir, path)
}

func hasMeta(pattern string) bool {
	return strings.ContainsAny(pattern, `*?[`)
}

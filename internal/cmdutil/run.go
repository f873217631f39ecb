package cmdutil

import (
	"context"

	"github.com/quandora/grunt-umd-wrapper/internal/output"
	"github.com/quandora/grunt-umd-wrapper/internal/pipeline"
)

// RunOpts holds the inputs for RunJobs.
type RunOpts struct {
	// Jobs bounds concurrency.
	Jobs int

	// KeepGoing continues after a failed file.
	KeepGoing bool

	// Check compares instead of writing.
	Check bool

	// Verbose disables the spinner so debug lines stay readable.
	Verbose bool
}

// RunJobs processes jobs with a spinner on interactive terminals.
func RunJobs(ctx context.Context, jobs []pipeline.Job, opts RunOpts) ([]*pipeline.Result, error) {
	proc, err := pipeline.NewProcessor(pipeline.Config{
		Jobs:            opts.Jobs,
		ContinueOnError: opts.KeepGoing,
		Check:           opts.Check,
	})
	if err != nil {
		return nil, err
	}

	output.Debug("processing files",
		"files", len(jobs),
		"jobs", opts.Jobs,
		"keep_going", opts.KeepGoing,
		"check", opts.Check,
	)

	var results []*pipeline.Result
	run := func(ctx context.Context) error {
		var runErr error
		results, runErr = proc.Run(ctx, jobs)
		return runErr
	}

	title := "Wrapping " + output.Pluralize(len(jobs), "file", "files")
	if opts.Verbose {
		err = run(ctx)
	} else {
		err = output.RunWithSpinner(ctx, title, run)
	}
	return results, err
}

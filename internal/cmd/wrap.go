package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/quandora/grunt-umd-wrapper/internal/cmdtypes"
	"github.com/quandora/grunt-umd-wrapper/internal/cmdutil"
	"github.com/quandora/grunt-umd-wrapper/internal/output"
	"github.com/quandora/grunt-umd-wrapper/internal/pipeline"
)

// NewWrapCmd creates the wrap command.
func NewWrapCmd(cfg *cmdtypes.GlobalConfig) *cobra.Command {
	var wf cmdutil.WrapFlags
	var outFlag string

	c := &cobra.Command{
		Use:   "wrap <src>",
		Short: "Wrap a single source file",
		Long: `Wrap a single annotated source file.

Directives are extracted from the source, @include files are inlined and the
result is substituted into the selected template. Without --out the wrapped
output is written to stdout.

Arguments:
  src    Annotated source file

Examples:
  # Print the UMD-wrapped module
  umdwrap wrap src/lib.js

  # Write an AMD module
  umdwrap wrap src/lib.js -t amd -o dist/lib.js

  # Use a custom template and browser root
  umdwrap wrap src/lib.js -t ./wrapper.tpl --root window -o dist/lib.js

  # Verify dist/lib.js is up to date
  umdwrap wrap src/lib.js -o dist/lib.js --check`,
		Args: cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			return runWrap(c, args[0], outFlag, cfg, &wf)
		},
	}

	wf.AddTo(c)
	c.Flags().StringVarP(&outFlag, "out", "o", "", "Destination file (default: stdout)")

	return c
}

func runWrap(c *cobra.Command, src, dest string, cfg *cmdtypes.GlobalConfig, wf *cmdutil.WrapFlags) error {
	if wf.Check && dest == "" {
		return &cmdtypes.ExitError{
			Code: cmdtypes.ExitGeneralError,
			Err:  fmt.Errorf("--check requires --out"),
		}
	}

	ctx := c.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	proc, err := pipeline.NewProcessor(pipeline.Config{Check: wf.Check})
	if err != nil {
		return &cmdtypes.ExitError{Code: cmdtypes.ExitGeneralError, Err: err}
	}

	job := pipeline.Job{Src: src, Dest: dest, Options: wf.Resolve(cfg)}
	res, err := proc.Process(ctx, job)
	if err != nil {
		output.FileLogger(src).Error("wrap failed", "error", err)
		return cmdutil.ExitErrorFor(err, true)
	}

	switch res.Status {
	case pipeline.StatusRendered:
		fmt.Fprint(c.OutOrStdout(), res.Output)
	case pipeline.StatusStale:
		cmdutil.WriteDiffs(c.ErrOrStderr(), []*pipeline.Result{res})
		return cmdutil.ExitErrorFor(cmdutil.StaleError([]*pipeline.Result{res}), false)
	default:
		output.FileLogger(src).Info(output.FormatFileLine(dest, res.Status, res.Bytes))
	}
	return nil
}

package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/quandora/grunt-umd-wrapper/internal/cmdtypes"
	"github.com/quandora/grunt-umd-wrapper/internal/cmdutil"
	"github.com/quandora/grunt-umd-wrapper/internal/output"
	"github.com/quandora/grunt-umd-wrapper/internal/pipeline"
	"github.com/quandora/grunt-umd-wrapper/internal/project"
)

// NewBuildCmd creates the build command.
func NewBuildCmd(cfg *cmdtypes.GlobalConfig) *cobra.Command {
	var wf cmdutil.WrapFlags

	var (
		projectFlag   string
		jobsFlag      int
		keepGoingFlag bool
	)

	c := &cobra.Command{
		Use:   "build [target...]",
		Short: "Wrap every file group of a project",
		Long: `Wrap the file groups declared in a project file.

The project file (umdwrap.yaml, umdwrap.yml or umdwrap.toml) is looked up in
the current directory unless --project is given. Targets run in declaration
order; files are processed in parallel.

Arguments:
  target    Target names to build (default: all targets)

Examples:
  # Build every target
  umdwrap build

  # Build two targets from another project file
  umdwrap build lib widgets -p ./web/umdwrap.toml

  # Keep going after failures and report them all
  umdwrap build --keep-going

  # Fail when any output is out of date
  umdwrap build --check`,
		RunE: func(c *cobra.Command, args []string) error {
			return runBuild(c, args, cfg, &wf, projectFlag, jobsFlag, keepGoingFlag)
		},
	}

	wf.AddTo(c)
	c.Flags().StringVarP(&projectFlag, "project", "p", "", "Project file (default: find in current directory)")
	c.Flags().IntVarP(&jobsFlag, "jobs", "j", 0, "Files processed in parallel (env: UMDWRAP_JOBS, default: number of CPUs)")
	c.Flags().BoolVar(&keepGoingFlag, "keep-going", false, "Continue after a file fails")

	return c
}

func runBuild(c *cobra.Command, targets []string, cfg *cmdtypes.GlobalConfig, wf *cmdutil.WrapFlags, projectPath string, jobs int, keepGoing bool) error {
	ctx := c.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	if projectPath == "" {
		wd, err := os.Getwd()
		if err != nil {
			return &cmdtypes.ExitError{Code: cmdtypes.ExitGeneralError, Err: fmt.Errorf("getting working directory: %w", err)}
		}
		projectPath, err = project.Find(wd)
		if err != nil {
			return cmdutil.ExitErrorFor(err, false)
		}
	}

	proj, err := project.Load(projectPath)
	if err != nil {
		return cmdutil.ExitErrorFor(err, false)
	}
	output.Debug("project loaded", "path", proj.Path, "targets", proj.TargetNames())

	jobList, err := proj.Jobs(project.JobOptions{
		Targets:   targets,
		Defaults:  cmdutil.Defaults(cfg),
		Overrides: wf.Overrides(),
	})
	if err != nil {
		return cmdutil.ExitErrorFor(err, false)
	}
	if len(jobList) == 0 {
		output.Warn("no files to wrap", "project", proj.Path)
		return nil
	}

	if jobs <= 0 && cfg != nil && cfg.Resolved != nil {
		jobs = cfg.Resolved.Jobs
	}

	results, runErr := cmdutil.RunJobs(ctx, jobList, cmdutil.RunOpts{
		Jobs:      jobs,
		KeepGoing: keepGoing,
		Check:     wf.Check,
		Verbose:   cfg != nil && cfg.Verbose,
	})

	cmdutil.WriteResults(results)
	failed := cmdutil.PrintErrors(runErr)
	summary := cmdutil.Summarize(results, failed)

	if runErr != nil {
		output.Error(summary.String())
		return cmdutil.ExitErrorFor(runErr, true)
	}

	stale := pipeline.Stale(results)
	if len(stale) > 0 {
		cmdutil.WriteDiffs(c.ErrOrStderr(), stale)
		output.Warn(summary.String())
		return cmdutil.ExitErrorFor(cmdutil.StaleError(stale), false)
	}

	output.Println(output.FormatCheckmark(output.StyleSummary.Render(summary.String())))
	return nil
}

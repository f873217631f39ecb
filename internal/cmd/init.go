package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/quandora/grunt-umd-wrapper/internal/cmdtypes"
	"github.com/quandora/grunt-umd-wrapper/internal/output"
	"github.com/quandora/grunt-umd-wrapper/internal/pipeline"
	"github.com/quandora/grunt-umd-wrapper/internal/project"
)

// NewInitCmd creates the init command.
func NewInitCmd(_ *cmdtypes.GlobalConfig) *cobra.Command {
	var (
		formatFlag   string
		forceFlag    bool
		targetFlag   string
		srcFlag      string
		destDirFlag  string
		templateFlag string
		rootFlag     string
	)

	c := &cobra.Command{
		Use:   "init [dir]",
		Short: "Create a project file",
		Long: `Create a starter project file with a single target.

Arguments:
  dir    Directory to create the project file in (default: current directory)

Examples:
  # Create umdwrap.yaml wrapping src/*.js into dist/
  umdwrap init

  # Create umdwrap.toml for AMD output
  umdwrap init web --format toml --template amd`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			dir := "."
			if len(args) > 0 {
				dir = args[0]
			}

			path, err := project.Init(project.InitOptions{
				Dir:     dir,
				Format:  project.Format(formatFlag),
				Target:  targetFlag,
				Src:     srcFlag,
				DestDir: destDirFlag,
				Options: pipeline.Options{Template: templateFlag, RootName: rootFlag},
				Force:   forceFlag,
			})
			if err != nil {
				return &cmdtypes.ExitError{Code: cmdtypes.ExitGeneralError, Err: err}
			}

			fmt.Fprintln(c.OutOrStdout(), output.FormatCheckmark("Project file created: "+output.StyleNoun.Render(path)))
			return nil
		},
	}

	c.Flags().StringVar(&formatFlag, "format", string(project.FormatYAML), "Project file format: yaml, toml")
	c.Flags().BoolVarP(&forceFlag, "force", "f", false, "Overwrite an existing project file")
	c.Flags().StringVar(&targetFlag, "target", "lib", "Name of the starter target")
	c.Flags().StringVar(&srcFlag, "src", "src/*.js", "Source pattern of the starter target")
	c.Flags().StringVar(&destDirFlag, "dest-dir", "dist", "Output directory of the starter target")
	c.Flags().StringVarP(&templateFlag, "template", "t", "", "Project-wide template")
	c.Flags().StringVar(&rootFlag, "root", "", "Project-wide browser root name")

	return c
}

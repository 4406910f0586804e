package commands

import (
	"fmt"

	"github.com/plumekit/plume/internal/output"
	"github.com/plumekit/plume/pkg/analyzer"
	"github.com/plumekit/plume/pkg/config"
	"github.com/plumekit/plume/pkg/generator"
	"github.com/plumekit/plume/pkg/patterns"
	"github.com/spf13/cobra"
)

var scaffoldOut string

var scaffoldCmd = &cobra.Command{
	Use:   "scaffold [path]",
	Short: "Analyze a project and scaffold its documentation skeleton",
	Long: `Analyzes a source tree and writes the suggested documentation
structure as markdown stubs. Existing files are never overwritten.

Example:
  plume scaffold .
  plume scaffold ../myproject --out ../myproject/docs`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScaffold,
}

func init() {
	scaffoldCmd.Flags().StringVarP(&scaffoldOut, "out", "o", "", "Output directory (default: <config output.path>)")

	RootCmd.AddCommand(scaffoldCmd)
}

func runScaffold(cmd *cobra.Command, args []string) error {
	projectPath := "."
	if len(args) > 0 {
		projectPath = args[0]
	}

	cfg, err := config.Load(projectPath)
	if err != nil {
		return err
	}

	outputPath := cfg.Output.Path
	if scaffoldOut != "" {
		outputPath = scaffoldOut
	}

	output.Info("Analyzing project: " + projectPath)

	a := analyzer.New(patterns.NewDetector()).WithIgnoreDirs(cfg.Analyzer.ExcludeDirs...)
	analysis, err := a.Analyze(projectPath)
	if err != nil {
		return fmt.Errorf("analysis failed: %w", err)
	}

	created, err := generator.New().Scaffold(analysis, outputPath)
	if err != nil {
		return fmt.Errorf("scaffolding failed: %w", err)
	}

	if len(created) == 0 {
		output.Info("Documentation skeleton already present, nothing to do")
		return nil
	}

	output.Success(fmt.Sprintf("Documentation skeleton written (%d files)", len(created)))
	for _, path := range created {
		output.Step(path)
	}
	return nil
}

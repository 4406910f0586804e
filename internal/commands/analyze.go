package commands

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/plumekit/plume/internal/output"
	"github.com/plumekit/plume/pkg/analyzer"
	"github.com/plumekit/plume/pkg/config"
	"github.com/plumekit/plume/pkg/patterns"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var (
	analyzeFormat string
	analyzeOut    string
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze [path]",
	Short: "Analyze a project's structure and architecture",
	Long: `Inspects a source tree and reports project type, language mix,
dependencies, entry points, API endpoints, test and config inventories,
and the inferred architecture pattern.

Example:
  plume analyze .
  plume analyze ../myproject --format json
  plume analyze ../myproject --format yaml --out report.yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runAnalyze,
}

func init() {
	analyzeCmd.Flags().StringVarP(&analyzeFormat, "format", "f", "", "Report format: text, json, or yaml")
	analyzeCmd.Flags().StringVarP(&analyzeOut, "out", "o", "", "Write the full report to a file")

	RootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	projectPath := "."
	if len(args) > 0 {
		projectPath = args[0]
	}

	cfg, err := config.Load(projectPath)
	if err != nil {
		return err
	}

	format := cfg.Output.Format
	if analyzeFormat != "" {
		format = analyzeFormat
	}

	a := analyzer.New(patterns.NewDetector()).WithIgnoreDirs(cfg.Analyzer.ExcludeDirs...)
	analysis, err := a.Analyze(projectPath)
	if err != nil {
		return fmt.Errorf("analysis failed: %w", err)
	}

	encoded, err := encodeReport(analysis, format)
	if err != nil {
		return err
	}

	if analyzeOut != "" {
		if err := os.WriteFile(analyzeOut, encoded, 0644); err != nil {
			return fmt.Errorf("writing report: %w", err)
		}
		printSummary(analysis)
		output.Success("Report written to " + analyzeOut)
		return nil
	}

	if format == "text" {
		printSummary(analysis)
		return nil
	}

	fmt.Print(string(encoded))
	return nil
}

// encodeReport renders the full report in the requested format.
func encodeReport(analysis *analyzer.ProjectAnalysis, format string) ([]byte, error) {
	switch format {
	case "json":
		return json.MarshalIndent(analysis, "", "  ")
	case "yaml":
		return yaml.Marshal(analysis)
	case "text", "":
		return []byte(formatSummary(analysis)), nil
	default:
		return nil, fmt.Errorf("unknown format %q (want text, json, or yaml)", format)
	}
}

// printSummary displays the analysis in the terminal.
func printSummary(analysis *analyzer.ProjectAnalysis) {
	fmt.Print(formatSummary(analysis))
}

// formatSummary renders the human-readable report.
func formatSummary(analysis *analyzer.ProjectAnalysis) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Project: %s\n", analysis.Name)
	fmt.Fprintf(&b, "Type: %s\n\n", analysis.ProjectType)

	if len(analysis.Languages) > 0 {
		b.WriteString("Languages:\n")
		for _, lang := range analysis.Languages {
			fmt.Fprintf(&b, "  %-14s %3d%%  (%d files)\n", lang.Language, lang.Percentage, lang.FileCount)
		}
		b.WriteString("\n")
	}

	if len(analysis.EntryPoints) > 0 {
		b.WriteString("Entry points:\n")
		for _, entry := range analysis.EntryPoints {
			fmt.Fprintf(&b, "  %s\n", entry)
		}
		b.WriteString("\n")
	}

	if len(analysis.Dependencies) > 0 {
		counts := map[string]int{}
		for _, dep := range analysis.Dependencies {
			counts[dep.Type]++
		}
		fmt.Fprintf(&b, "Dependencies: %d total (%d runtime, %d dev, %d peer)\n\n",
			len(analysis.Dependencies), counts[analyzer.DepRuntime], counts[analyzer.DepDev], counts[analyzer.DepPeer])
	}

	if len(analysis.APIEndpoints) > 0 {
		b.WriteString("API endpoints:\n")
		for _, endpoint := range analysis.APIEndpoints {
			fmt.Fprintf(&b, "  %-6s %-30s %s:%d\n", endpoint.Method, endpoint.Path, endpoint.File, endpoint.Line)
		}
		b.WriteString("\n")
	}

	fmt.Fprintf(&b, "Tests: %d files\n", len(analysis.TestFiles))
	fmt.Fprintf(&b, "Config files: %d\n", len(analysis.ConfigFiles))
	fmt.Fprintf(&b, "Documentation: %d files\n\n", len(analysis.Documentation))

	if analysis.Architecture.Pattern != "" {
		fmt.Fprintf(&b, "Architecture: %s\n", analysis.Architecture.Pattern)
	} else {
		b.WriteString("Architecture: no named pattern detected\n")
	}
	if len(analysis.Architecture.Layers) > 0 {
		fmt.Fprintf(&b, "Layers: %s\n", strings.Join(analysis.Architecture.Layers, ", "))
	}
	if len(analysis.Architecture.Components) > 0 {
		fmt.Fprintf(&b, "Components: %s\n", strings.Join(analysis.Architecture.Components, ", "))
	}

	b.WriteString("\nSuggested documentation sections:\n")
	for _, section := range analysis.SuggestedDocs.Sections {
		fmt.Fprintf(&b, "  %-18s %s\n", section.Title, section.Description)
	}

	return b.String()
}

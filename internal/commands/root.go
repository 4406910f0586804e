package commands

import (
	"fmt"

	"github.com/plumekit/plume"
	"github.com/plumekit/plume/internal/output"
	"github.com/plumekit/plume/pkg/logger"
	"github.com/spf13/cobra"
)

var (
	verbose bool
)

// RootCmd is the root command for Plume
var RootCmd = &cobra.Command{
	Use:   "plume",
	Short: "Plume - Project Structure & Architecture Analyzer",
	Long: `Plume inspects a source tree and reports its type, language mix,
dependencies, entry points, API surface, and architectural shape, then
suggests (and can scaffold) a documentation structure to match.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		output.SetVerbose(verbose)
		if verbose {
			logger.SetDefault(logger.NewLogger(logger.LevelDebug, nil))
		}
	},
}

// Execute runs the root command
func Execute() error {
	return RootCmd.Execute()
}

func init() {
	RootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Show detailed analysis information")

	RootCmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("Plume v%s\n", plume.Version)
		},
	})
}

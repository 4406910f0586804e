package commands

import (
	"fmt"

	"github.com/plumekit/plume/internal/mcpserver"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the analyzer as an MCP server over stdio",
	Long: `Exposes the analyzer to MCP hosts. The server offers analyze_project
and suggest_docs tools; each call is an independent read-only analysis.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := mcpserver.ServeStdio(); err != nil {
			return fmt.Errorf("mcp server: %w", err)
		}
		return nil
	},
}

func init() {
	RootCmd.AddCommand(serveCmd)
}

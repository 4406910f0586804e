// Package mcpserver exposes the analyzer to MCP hosts. It is a thin caller:
// all analysis happens in pkg/analyzer, and each tool call is an independent
// read-only pass over the requested tree.
package mcpserver

import (
	"github.com/mark3labs/mcp-go/server"

	"github.com/plumekit/plume"
)

// NewServer creates the Plume MCP server with all tools registered.
func NewServer() *server.MCPServer {
	mcpServer := server.NewMCPServer(
		"Plume Project Analyzer",
		plume.Version,
		server.WithToolCapabilities(false),
		server.WithInstructions("Analyzes project structure, dependencies, and architecture to inform documentation work."),
	)

	RegisterAnalyzeProject(mcpServer)
	RegisterSuggestDocs(mcpServer)

	return mcpServer
}

// ServeStdio runs the server over stdin/stdout until the host disconnects.
func ServeStdio() error {
	return server.ServeStdio(NewServer())
}

package mcpserver

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/plumekit/plume/pkg/analyzer"
	"github.com/plumekit/plume/pkg/logger"
	"github.com/plumekit/plume/pkg/patterns"
)

// RegisterAnalyzeProject registers the analyze_project tool.
func RegisterAnalyzeProject(mcpServer *server.MCPServer) {
	tool := mcp.NewTool("analyze_project",
		mcp.WithDescription("Analyzes a project's structure: type, languages, dependencies, entry points, API endpoints, tests, config files, and architecture pattern"),
		mcp.WithString("path",
			mcp.Required(),
			mcp.Description("Path to the project root directory"),
		),
		mcp.WithString("format",
			mcp.Description("Result format: 'text' (default) or 'json'"),
		),
	)

	mcpServer.AddTool(tool, handleAnalyzeProject)
}

func handleAnalyzeProject(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	path, err := request.RequireString("path")
	if err != nil {
		return nil, err
	}
	format := request.GetString("format", "text")

	analysis, err := runAnalysis(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("error analyzing project: %w", err)
	}

	if format == "json" {
		data, err := json.MarshalIndent(analysis, "", "  ")
		if err != nil {
			return nil, err
		}
		return mcp.NewToolResultText(string(data)), nil
	}

	return mcp.NewToolResultText(formatAnalysis(analysis)), nil
}

// RegisterSuggestDocs registers the suggest_docs tool, which reports only
// the documentation skeleton derived from an analysis.
func RegisterSuggestDocs(mcpServer *server.MCPServer) {
	tool := mcp.NewTool("suggest_docs",
		mcp.WithDescription("Suggests a documentation structure (Diátaxis sections plus architecture/API sections) for a project"),
		mcp.WithString("path",
			mcp.Required(),
			mcp.Description("Path to the project root directory"),
		),
	)

	mcpServer.AddTool(tool, handleSuggestDocs)
}

func handleSuggestDocs(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	path, err := request.RequireString("path")
	if err != nil {
		return nil, err
	}

	analysis, err := runAnalysis(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("error analyzing project: %w", err)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Suggested documentation structure for %s (%s standard):\n\n", analysis.Name, analysis.SuggestedDocs.Standard)
	for _, section := range analysis.SuggestedDocs.Sections {
		fmt.Fprintf(&b, "- %s (%s/): %s\n", section.Title, section.Slug, section.Description)
	}

	return mcp.NewToolResultText(b.String()), nil
}

// runAnalysis performs one silent analysis pass for a tool call.
func runAnalysis(ctx context.Context, path string) (*analyzer.ProjectAnalysis, error) {
	a := analyzer.New(patterns.NewDetector()).WithLogger(logger.NewSilentLogger())
	return a.AnalyzeWithContext(ctx, path)
}

// formatAnalysis renders the report as text for the MCP host.
func formatAnalysis(analysis *analyzer.ProjectAnalysis) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Project Analysis for: %s\n\n", analysis.Name)
	fmt.Fprintf(&b, "Type: %s\n", analysis.ProjectType)

	if len(analysis.Languages) > 0 {
		b.WriteString("Languages:\n")
		for _, lang := range analysis.Languages {
			fmt.Fprintf(&b, "- %s: %d%% (%d files)\n", lang.Language, lang.Percentage, lang.FileCount)
		}
	}

	if len(analysis.EntryPoints) > 0 {
		b.WriteString("\nEntry points:\n")
		for _, entry := range analysis.EntryPoints {
			fmt.Fprintf(&b, "- %s\n", entry)
		}
	}

	if len(analysis.Dependencies) > 0 {
		fmt.Fprintf(&b, "\nDependencies (%d):\n", len(analysis.Dependencies))
		for _, dep := range analysis.Dependencies {
			if dep.Version != "" {
				fmt.Fprintf(&b, "- %s %s (%s, from %s)\n", dep.Name, dep.Version, dep.Type, dep.Source)
			} else {
				fmt.Fprintf(&b, "- %s (%s, from %s)\n", dep.Name, dep.Type, dep.Source)
			}
		}
	}

	if len(analysis.APIEndpoints) > 0 {
		fmt.Fprintf(&b, "\nAPI endpoints (%d):\n", len(analysis.APIEndpoints))
		for _, endpoint := range analysis.APIEndpoints {
			fmt.Fprintf(&b, "- %s %s (%s:%d)\n", endpoint.Method, endpoint.Path, endpoint.File, endpoint.Line)
		}
	}

	fmt.Fprintf(&b, "\nTest files: %d\n", len(analysis.TestFiles))
	fmt.Fprintf(&b, "Config files: %d\n", len(analysis.ConfigFiles))

	if analysis.Architecture.Pattern != "" {
		fmt.Fprintf(&b, "Architecture pattern: %s\n", analysis.Architecture.Pattern)
	}
	if len(analysis.Architecture.Layers) > 0 {
		fmt.Fprintf(&b, "Layers: %s\n", strings.Join(analysis.Architecture.Layers, ", "))
	}
	if len(analysis.Architecture.Components) > 0 {
		fmt.Fprintf(&b, "Components: %s\n", strings.Join(analysis.Architecture.Components, ", "))
	}

	return b.String()
}

// Package generator turns an analysis report into a documentation skeleton
// on disk. It writes stub files only; existing files are never overwritten.
package generator

import (
	"embed"
	"fmt"
	"os"
	"path/filepath"

	"github.com/plumekit/plume/pkg/analyzer"
	"github.com/plumekit/plume/pkg/logger"
)

//go:embed templates/*.tmpl
var templates embed.FS

// Generator scaffolds documentation from analysis results.
type Generator struct {
	renderer *Renderer
	logger   logger.Logger
}

// New creates a documentation generator.
func New() *Generator {
	return &Generator{
		renderer: NewRenderer(),
		logger:   logger.Default(),
	}
}

// WithLogger returns a copy of the Generator using the specified logger.
func (g *Generator) WithLogger(log logger.Logger) *Generator {
	return &Generator{
		renderer: g.renderer,
		logger:   log,
	}
}

// indexData feeds the documentation index template.
type indexData struct {
	Name        string
	Description string
	ProjectType string
	Languages   []string
	Pattern     string
	Sections    []analyzer.DocSection
}

// sectionData feeds the per-section stub template.
type sectionData struct {
	Title       string
	Slug        string
	Description string
	Standard    string
}

// Scaffold writes the suggested documentation skeleton for analysis under
// outputPath and returns the paths it created. Files that already exist are
// left alone so re-running scaffold never destroys written docs.
func (g *Generator) Scaffold(analysis *analyzer.ProjectAnalysis, outputPath string) ([]string, error) {
	if analysis == nil {
		return nil, fmt.Errorf("scaffold: nil analysis")
	}

	if err := os.MkdirAll(outputPath, 0755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}

	var created []string

	languages := make([]string, 0, len(analysis.Languages))
	for _, lang := range analysis.Languages {
		languages = append(languages, lang.Language)
	}

	index, err := g.renderer.RenderFS(templates, "templates/index.md.tmpl", indexData{
		Name:        analysis.Name,
		Description: ProjectDescription(analysis.RootPath),
		ProjectType: analysis.ProjectType,
		Languages:   languages,
		Pattern:     analysis.Architecture.Pattern,
		Sections:    analysis.SuggestedDocs.Sections,
	})
	if err != nil {
		return nil, err
	}

	indexPath := filepath.Join(outputPath, "index.md")
	if wrote, err := writeIfAbsent(indexPath, index); err != nil {
		return nil, err
	} else if wrote {
		created = append(created, indexPath)
	}

	for _, section := range analysis.SuggestedDocs.Sections {
		sectionDir := filepath.Join(outputPath, section.Slug)
		if err := os.MkdirAll(sectionDir, 0755); err != nil {
			return nil, fmt.Errorf("creating section directory: %w", err)
		}

		stub, err := g.renderer.RenderFS(templates, "templates/section.md.tmpl", sectionData{
			Title:       section.Title,
			Slug:        section.Slug,
			Description: section.Description,
			Standard:    analysis.SuggestedDocs.Standard,
		})
		if err != nil {
			return nil, err
		}

		stubPath := filepath.Join(sectionDir, "index.md")
		wrote, err := writeIfAbsent(stubPath, stub)
		if err != nil {
			return nil, err
		}
		if wrote {
			created = append(created, stubPath)
		} else {
			g.logger.Debug("Skipping existing file", logger.F("path", stubPath))
		}
	}

	g.logger.Info("Documentation skeleton written",
		logger.F("path", outputPath),
		logger.F("files", len(created)))

	return created, nil
}

// writeIfAbsent writes data to path unless the file already exists.
func writeIfAbsent(path string, data []byte) (bool, error) {
	if _, err := os.Stat(path); err == nil {
		return false, nil
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return false, fmt.Errorf("writing %s: %w", path, err)
	}
	return true, nil
}

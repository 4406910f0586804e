package analyzer

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/plumekit/plume/pkg/logger"
)

// ArchitectureDetector infers architecture facts from a directory tree.
// The concrete implementation lives in pkg/patterns; the indirection keeps
// this package free of the pattern tables and lets tests substitute mocks.
type ArchitectureDetector interface {
	Detect(tree *DirectoryStructure) ArchitectureInfo
}

// Analyzer inspects a source tree and produces a ProjectAnalysis report.
// It only ever reads the filesystem, so concurrent Analyze calls are safe,
// even on the same path.
type Analyzer struct {
	detector     ArchitectureDetector
	logger       logger.Logger
	extraIgnores []string
}

// New creates an Analyzer with the given architecture detector. A nil
// detector disables architecture inference; everything else still runs.
func New(detector ArchitectureDetector) *Analyzer {
	return &Analyzer{
		detector: detector,
		logger:   logger.Default(),
	}
}

// WithLogger returns a copy of the Analyzer using the specified logger.
func (a *Analyzer) WithLogger(log logger.Logger) *Analyzer {
	return &Analyzer{
		detector:     a.detector,
		logger:       log,
		extraIgnores: a.extraIgnores,
	}
}

// WithIgnoreDirs returns a copy of the Analyzer that additionally skips the
// named directories, on top of the built-in denylist.
func (a *Analyzer) WithIgnoreDirs(dirs ...string) *Analyzer {
	return &Analyzer{
		detector:     a.detector,
		logger:       a.logger,
		extraIgnores: append(append([]string{}, a.extraIgnores...), dirs...),
	}
}

// Analyze inspects the tree rooted at rootPath.
func (a *Analyzer) Analyze(rootPath string) (*ProjectAnalysis, error) {
	return a.AnalyzeWithContext(context.Background(), rootPath)
}

// AnalyzeWithContext inspects the tree rooted at rootPath, honoring context
// cancellation between stages. An invalid root is the only error surfaced to
// the caller; every per-file failure inside a stage degrades to an empty or
// partial contribution.
func (a *Analyzer) AnalyzeWithContext(ctx context.Context, rootPath string) (*ProjectAnalysis, error) {
	info, err := os.Stat(rootPath)
	if err != nil {
		return nil, fmt.Errorf("analyzing %s: %w", rootPath, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("analyzing %s: not a directory", rootPath)
	}

	a.logger.Info("Starting project analysis", logger.F("path", rootPath))

	name := filepath.Base(rootPath)
	if abs, err := filepath.Abs(rootPath); err == nil {
		name = filepath.Base(abs)
	}

	analysis := &ProjectAnalysis{
		Name:     name,
		RootPath: rootPath,
	}

	stages := []struct {
		name string
		run  func()
	}{
		{"type detection", func() {
			analysis.ProjectType = detectProjectType(rootPath)
		}},
		{"language classification", func() {
			analysis.Languages = detectLanguages(rootPath, a.extraIgnores...)
		}},
		{"structure walk", func() {
			analysis.Structure = buildStructure(rootPath, a.extraIgnores...)
		}},
		{"dependency parsing", func() {
			analysis.Dependencies = parseDependencies(rootPath, detectEcosystems(rootPath))
		}},
		{"entry point scan", func() {
			analysis.EntryPoints = findEntryPoints(rootPath, detectEcosystems(rootPath))
		}},
		{"endpoint scan", func() {
			analysis.APIEndpoints = scanEndpoints(rootPath, detectEcosystems(rootPath), a.extraIgnores...)
		}},
		{"test inventory", func() {
			analysis.TestFiles = findTestFiles(rootPath, a.extraIgnores...)
		}},
		{"config inventory", func() {
			analysis.ConfigFiles = findConfigFiles(rootPath)
		}},
		{"doc inventory", func() {
			analysis.Documentation = findDocumentation(rootPath)
		}},
		{"architecture inference", func() {
			if a.detector != nil {
				analysis.Architecture = a.detector.Detect(analysis.Structure)
			} else {
				analysis.Architecture = ArchitectureInfo{Layers: []string{}, Components: []string{}}
			}
		}},
		{"doc structure suggestion", func() {
			analysis.SuggestedDocs = suggestDocStructure(analysis.ProjectType, analysis.Languages, analysis.Architecture)
		}},
	}

	for _, stage := range stages {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}
		stage.run()
		a.logger.Debug("Stage complete", logger.F("stage", stage.name))
	}

	a.logger.Info("Project analysis complete",
		logger.F("type", analysis.ProjectType),
		logger.F("languages", len(analysis.Languages)),
		logger.F("dependencies", len(analysis.Dependencies)))

	return analysis, nil
}

// sortedKeys returns a map's keys in ascending order, for stable reports.
func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

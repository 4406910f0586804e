package patterns

import (
	"sort"
	"strings"

	"github.com/plumekit/plume/pkg/analyzer"
)

// Detector infers architecture facts from a directory tree. It operates on
// directory names only, never file contents.
type Detector struct {
	patterns []Pattern
}

// NewDetector creates a Detector with the default pattern set.
func NewDetector() *Detector {
	return &Detector{patterns: DefaultPatterns()}
}

// Register appends a custom pattern. Custom patterns are evaluated after the
// defaults, keeping the fixed priority order intact.
func (d *Detector) Register(pattern Pattern) {
	d.patterns = append(d.patterns, pattern)
}

// Patterns returns the patterns in evaluation order.
func (d *Detector) Patterns() []Pattern {
	return d.patterns
}

// Detect walks the tree once and computes the pattern guess, layer
// groupings, and component list. The three are independent: layers and
// components may be non-empty even when no pattern matched.
func (d *Detector) Detect(tree *analyzer.DirectoryStructure) analyzer.ArchitectureInfo {
	info := analyzer.ArchitectureInfo{
		Layers:     []string{},
		Components: []string{},
	}
	if tree == nil {
		return info
	}

	dirNames := make(map[string]bool)
	subdirCounts := make(map[string]int)
	components := make(map[string]bool)

	collect(tree, dirNames, subdirCounts, components)

	info.Pattern = d.matchPattern(dirNames, subdirCounts)

	for _, group := range layerGroups {
		for _, dir := range group.Dirs {
			if dirNames[dir] {
				info.Layers = append(info.Layers, group.Name)
				break
			}
		}
	}

	for name := range components {
		info.Components = append(info.Components, name)
	}
	sort.Strings(info.Components)

	return info
}

// matchPattern applies the microservices special case, then the ordered
// pattern list; first full match wins.
func (d *Detector) matchPattern(dirNames map[string]bool, subdirCounts map[string]int) string {
	if subdirCounts["services"] > microservicesThreshold {
		return "microservices"
	}

	for _, pattern := range d.patterns {
		matched := true
		for _, required := range pattern.Requires {
			if !dirNames[required] {
				matched = false
				break
			}
		}
		if matched {
			return pattern.Name
		}
	}
	return ""
}

// collect gathers directory basenames, per-directory immediate subdirectory
// counts, and component names in a single pass.
func collect(node *analyzer.DirectoryStructure, dirNames map[string]bool, subdirCounts map[string]int, components map[string]bool) {
	if node.Type != "directory" {
		return
	}

	name := strings.ToLower(node.Name)
	isContainer := false
	for _, container := range componentContainers {
		if name == container {
			isContainer = true
			break
		}
	}

	for _, child := range node.Children {
		if child.Type != "directory" {
			continue
		}
		childName := strings.ToLower(child.Name)
		dirNames[childName] = true
		subdirCounts[name]++
		if isContainer {
			components[child.Name] = true
		}
		collect(child, dirNames, subdirCounts, components)
	}
}

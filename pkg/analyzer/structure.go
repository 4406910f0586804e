package analyzer

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// excludedDirs are generated, vendored, or VCS directories skipped by every
// traversal in this package.
var excludedDirs = map[string]bool{
	"node_modules": true,
	"vendor":       true,
	"bower_components": true,
	".git":         true,
	".svn":         true,
	".hg":          true,
	"dist":         true,
	"build":        true,
	"out":          true,
	"target":       true,
	"coverage":     true,
	"__pycache__":  true,
	".venv":        true,
	"venv":         true,
	".tox":         true,
	".cache":       true,
	".next":        true,
	".nuxt":        true,
	".terraform":   true,
	".idea":        true,
	".vscode":      true,
}

// excludedDirList mirrors excludedDirs for walkers that take a slice.
var excludedDirList = sortedKeys(excludedDirs)

// ignoreList combines the built-in denylist with caller-supplied additions.
func ignoreList(extra []string) []string {
	if len(extra) == 0 {
		return excludedDirList
	}
	return append(append([]string{}, excludedDirList...), extra...)
}

// ignoreSet turns caller-supplied additions into a lookup set.
func ignoreSet(extra []string) map[string]bool {
	if len(extra) == 0 {
		return nil
	}
	set := make(map[string]bool, len(extra))
	for _, name := range extra {
		set[name] = true
	}
	return set
}

// allowedDotDirs are dot-directories that still carry structural signal and
// are kept despite the general dotfile skip.
var allowedDotDirs = map[string]bool{
	".github": true,
	".gitlab": true,
}

// directoryPurposes maps directory basenames (lowercased) to a human-readable
// purpose label.
var directoryPurposes = map[string]string{
	"src":            "Source code",
	"source":         "Source code",
	"lib":            "Library code",
	"app":            "Application code",
	"cmd":            "Command entry points",
	"internal":       "Internal packages",
	"pkg":            "Public packages",
	"api":            "API definitions",
	"test":           "Test files",
	"tests":          "Test files",
	"__tests__":      "Test files",
	"spec":           "Test specifications",
	"e2e":            "End-to-end tests",
	"testdata":       "Test fixtures",
	"fixtures":       "Test fixtures",
	"docs":           "Documentation",
	"doc":            "Documentation",
	"examples":       "Usage examples",
	"scripts":        "Build and utility scripts",
	"tools":          "Development tools",
	"config":         "Configuration",
	"configs":        "Configuration",
	"deploy":         "Deployment configuration",
	"deployments":    "Deployment configuration",
	"public":         "Public assets",
	"static":         "Static assets",
	"assets":         "Static assets",
	"resources":      "Resources",
	"templates":      "Templates",
	"views":          "View templates",
	"components":     "UI components",
	"pages":          "Page components",
	"layouts":        "Layout components",
	"controllers":    "Request controllers",
	"handlers":       "Request handlers",
	"routes":         "Route definitions",
	"middleware":     "Middleware",
	"models":         "Data models",
	"entities":       "Domain entities",
	"schemas":        "Data schemas",
	"services":       "Business services",
	"usecases":       "Use cases",
	"repositories":   "Data repositories",
	"store":          "State management",
	"stores":         "State management",
	"domain":         "Domain logic",
	"application":    "Application layer",
	"infrastructure": "Infrastructure layer",
	"adapters":       "Adapters",
	"ports":          "Ports",
	"core":           "Core logic",
	"common":         "Shared code",
	"shared":         "Shared code",
	"utils":          "Utilities",
	"util":           "Utilities",
	"helpers":        "Utilities",
	"migrations":     "Database migrations",
	"db":             "Database code",
	"database":       "Database code",
	"proto":          "Protocol definitions",
	"types":          "Type definitions",
	"modules":        "Feature modules",
	"features":       "Feature modules",
	"plugins":        "Plugins",
	"workers":        "Background workers",
	"jobs":           "Background jobs",
	"i18n":           "Localization",
	"locales":        "Localization",
	".github":        "GitHub configuration",
	".gitlab":        "GitLab configuration",
}

// genericPurpose is assigned to directories without a table entry.
const genericPurpose = "Project directory"

// purposeForDirectory resolves a directory basename to its purpose label.
func purposeForDirectory(name string) string {
	if purpose, ok := directoryPurposes[strings.ToLower(name)]; ok {
		return purpose
	}
	return genericPurpose
}

// buildStructure constructs the directory tree rooted at rootPath. Paths in
// the tree are relative to the root; siblings are sorted alphabetically so
// repeated runs over an unchanged tree produce identical structures.
func buildStructure(rootPath string, extraIgnores ...string) *DirectoryStructure {
	rootName := filepath.Base(rootPath)
	if abs, err := filepath.Abs(rootPath); err == nil {
		rootName = filepath.Base(abs)
	}

	root := &DirectoryStructure{
		Name:    rootName,
		Type:    "directory",
		Path:    ".",
		Purpose: genericPurpose,
	}
	buildChildren(rootPath, ".", root, ignoreSet(extraIgnores))
	return root
}

func buildChildren(dirPath, relPath string, node *DirectoryStructure, extraIgnores map[string]bool) {
	entries, err := os.ReadDir(dirPath)
	if err != nil {
		return // unreadable directory becomes a leaf
	}

	names := make([]string, 0, len(entries))
	byName := make(map[string]os.DirEntry, len(entries))
	for _, entry := range entries {
		names = append(names, entry.Name())
		byName[entry.Name()] = entry
	}
	sort.Strings(names)

	for _, name := range names {
		entry := byName[name]

		if strings.HasPrefix(name, ".") && !(entry.IsDir() && allowedDotDirs[name]) {
			continue
		}
		if entry.IsDir() && (excludedDirs[name] || extraIgnores[name]) {
			continue
		}

		childRel := filepath.ToSlash(filepath.Join(relPath, name))
		if entry.IsDir() {
			child := &DirectoryStructure{
				Name:    name,
				Type:    "directory",
				Path:    childRel,
				Purpose: purposeForDirectory(name),
			}
			buildChildren(filepath.Join(dirPath, name), childRel, child, extraIgnores)
			node.Children = append(node.Children, child)
			continue
		}

		child := &DirectoryStructure{
			Name: name,
			Type: "file",
			Path: childRel,
		}
		if lang := languageForFile(name); lang != "" {
			child.Language = lang
		}
		node.Children = append(node.Children, child)
	}
}

package analyzer

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/plumekit/plume/internal/filesystem"
)

// testDirNames are conventional test-directory path segments.
var testDirNames = map[string]bool{
	"test":      true,
	"tests":     true,
	"__tests__": true,
	"spec":      true,
	"e2e":       true,
	"testdata":  true,
}

// isTestFile matches language-specific test-naming idioms on a basename.
// A file needs to satisfy only one rule.
func isTestFile(name string) bool {
	lower := strings.ToLower(name)
	switch {
	case strings.HasSuffix(lower, "_test.go"),
		strings.HasSuffix(lower, ".test.js"), strings.HasSuffix(lower, ".test.ts"),
		strings.HasSuffix(lower, ".test.jsx"), strings.HasSuffix(lower, ".test.tsx"),
		strings.HasSuffix(lower, ".spec.js"), strings.HasSuffix(lower, ".spec.ts"),
		strings.HasSuffix(lower, ".spec.jsx"), strings.HasSuffix(lower, ".spec.tsx"),
		strings.HasSuffix(lower, "_test.py"), strings.HasPrefix(lower, "test_") && strings.HasSuffix(lower, ".py"),
		strings.HasSuffix(lower, "_spec.rb"), strings.HasSuffix(lower, "_test.rb"),
		strings.HasSuffix(lower, "test.java"), strings.HasSuffix(lower, "tests.java"),
		strings.HasSuffix(lower, "_test.rs"):
		return true
	}
	return false
}

// findTestFiles collects every file matching a test-naming idiom or living
// under a conventional test directory. Paths are root-relative and sorted.
func findTestFiles(root string, extraIgnores ...string) []string {
	testFiles := []string{}

	opts := filesystem.WalkOptions{IgnoreDirs: ignoreList(extraIgnores)}
	_ = filesystem.Walk(root, opts, func(path string, info os.FileInfo) error {
		if info.IsDir() {
			return nil
		}

		rel, err := filepath.Rel(root, path)
		if err != nil {
			return nil
		}
		rel = filepath.ToSlash(rel)

		inTestDir := false
		segments := strings.Split(rel, "/")
		for _, segment := range segments[:len(segments)-1] {
			if testDirNames[segment] {
				inTestDir = true
				break
			}
		}

		if isTestFile(info.Name()) || (inTestDir && languageForFile(info.Name()) != "") {
			testFiles = append(testFiles, rel)
		}
		return nil
	})

	sort.Strings(testFiles)
	return testFiles
}

// configFileRule ties a filename pattern to a config type and purpose.
// A pattern ending in "/*" expands to one entry per file in that directory;
// a pattern containing a glob metacharacter matches basenames at the root;
// anything else is an exact root-level filename.
type configFileRule struct {
	pattern string
	cfgType string
	purpose string
}

var configFileRules = []configFileRule{
	{"package.json", "npm", "Node.js package manifest"},
	{"tsconfig.json", "typescript", "TypeScript compiler configuration"},
	{".eslintrc*", "eslint", "Lint rules"},
	{".prettierrc*", "prettier", "Code formatting rules"},
	{"webpack.config.*", "webpack", "Bundler configuration"},
	{"vite.config.*", "vite", "Bundler configuration"},
	{"rollup.config.*", "rollup", "Bundler configuration"},
	{"jest.config.*", "jest", "Test runner configuration"},
	{"vitest.config.*", "vitest", "Test runner configuration"},
	{"babel.config.*", "babel", "Transpiler configuration"},
	{"go.mod", "gomod", "Go module definition"},
	{"go.sum", "gomod", "Go module checksums"},
	{"requirements.txt", "pip", "Python dependencies"},
	{"pyproject.toml", "python", "Python project configuration"},
	{"setup.py", "python", "Python package setup"},
	{"setup.cfg", "python", "Python package configuration"},
	{"Pipfile", "pipenv", "Python dependencies"},
	{"tox.ini", "tox", "Python test automation"},
	{"pytest.ini", "pytest", "Test runner configuration"},
	{"Cargo.toml", "cargo", "Rust package manifest"},
	{"pom.xml", "maven", "Maven build configuration"},
	{"build.gradle", "gradle", "Gradle build configuration"},
	{"build.gradle.kts", "gradle", "Gradle build configuration"},
	{"Gemfile", "bundler", "Ruby dependencies"},
	{"composer.json", "composer", "PHP package manifest"},
	{"Makefile", "make", "Build automation"},
	{"Taskfile.yml", "task", "Build automation"},
	{"Dockerfile", "docker", "Container image definition"},
	{"docker-compose.yml", "docker", "Container orchestration"},
	{"docker-compose.yaml", "docker", "Container orchestration"},
	{".env.example", "env", "Environment variable template"},
	{".editorconfig", "editorconfig", "Editor settings"},
	{".github/workflows/*", "ci", "CI workflow"},
	{".gitlab-ci.yml", "ci", "CI pipeline"},
	{"Jenkinsfile", "ci", "CI pipeline"},
	{".travis.yml", "ci", "CI pipeline"},
}

// findConfigFiles expands the rule table against the tree at root.
// Non-glob rules yield at most one entry; directory globs yield one entry
// per file found.
func findConfigFiles(root string) []ConfigFile {
	configs := []ConfigFile{}

	for _, rule := range configFileRules {
		switch {
		case strings.HasSuffix(rule.pattern, "/*"):
			dir := strings.TrimSuffix(rule.pattern, "/*")
			entries, err := os.ReadDir(filepath.Join(root, filepath.FromSlash(dir)))
			if err != nil {
				continue
			}
			for _, entry := range entries {
				if entry.IsDir() {
					continue
				}
				configs = append(configs, ConfigFile{
					Path:    dir + "/" + entry.Name(),
					Type:    rule.cfgType,
					Purpose: rule.purpose,
				})
			}

		case strings.ContainsAny(rule.pattern, "*?["):
			matches, err := filepath.Glob(filepath.Join(root, rule.pattern))
			if err != nil {
				continue
			}
			sort.Strings(matches)
			for _, match := range matches {
				if info, err := os.Stat(match); err != nil || info.IsDir() {
					continue
				}
				configs = append(configs, ConfigFile{
					Path:    filepath.Base(match),
					Type:    rule.cfgType,
					Purpose: rule.purpose,
				})
			}

		default:
			if fileExists(filepath.Join(root, rule.pattern)) {
				configs = append(configs, ConfigFile{
					Path:    rule.pattern,
					Type:    rule.cfgType,
					Purpose: rule.purpose,
				})
			}
		}
	}

	return configs
}

// findDocumentation collects existing documentation: root-level markdown
// files and everything under docs-style directories.
func findDocumentation(root string) []string {
	docs := []string{}

	entries, err := os.ReadDir(root)
	if err != nil {
		return docs
	}
	for _, entry := range entries {
		if !entry.IsDir() && strings.HasSuffix(strings.ToLower(entry.Name()), ".md") {
			docs = append(docs, entry.Name())
		}
	}

	for _, dir := range []string{"docs", "doc"} {
		docDir := filepath.Join(root, dir)
		if !dirExists(docDir) {
			continue
		}
		_ = filepath.Walk(docDir, func(path string, info os.FileInfo, err error) error {
			if err != nil || info.IsDir() {
				return nil
			}
			if strings.HasSuffix(strings.ToLower(info.Name()), ".md") {
				if rel, err := filepath.Rel(root, path); err == nil {
					docs = append(docs, filepath.ToSlash(rel))
				}
			}
			return nil
		})
	}

	sort.Strings(docs)
	return docs
}

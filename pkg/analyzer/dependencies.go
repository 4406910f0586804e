package analyzer

import (
	"bufio"
	"encoding/xml"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
	"golang.org/x/mod/modfile"
)

// dependencyParser is one ecosystem's manifest reader. Parsers never fail:
// missing or malformed manifests contribute zero dependencies.
type dependencyParser func(root string) []Dependency

var dependencyParsers = map[string]dependencyParser{
	ecoNode:   parseNodeDependencies,
	ecoPython: parsePythonDependencies,
	ecoGo:     parseGoDependencies,
	ecoRust:   parseRustDependencies,
	ecoJava:   parseJavaDependencies,
	ecoRuby:   parseRubyDependencies,
	ecoPHP:    parsePHPDependencies,
}

// parseDependencies runs the parser for every detected ecosystem and unions
// the results. Duplicate names across manifests are kept on purpose: the
// Source field tells the consumer where each declaration came from.
func parseDependencies(root string, ecosystems []string) []Dependency {
	deps := []Dependency{}
	for _, eco := range ecosystems {
		if parse, ok := dependencyParsers[eco]; ok {
			deps = append(deps, parse(root)...)
		}
	}
	return deps
}

func parseNodeDependencies(root string) []Dependency {
	pkg := readPackageJSON(root)
	if pkg == nil {
		return nil
	}

	var deps []Dependency
	deps = appendSorted(deps, pkg.Dependencies, DepRuntime, "package.json")
	deps = appendSorted(deps, pkg.DevDependencies, DepDev, "package.json")
	deps = appendSorted(deps, pkg.PeerDependencies, DepPeer, "package.json")
	return deps
}

func parsePythonDependencies(root string) []Dependency {
	var deps []Dependency
	deps = append(deps, parseRequirementsTxt(root)...)
	deps = append(deps, parsePyprojectToml(root)...)
	return deps
}

// parseRequirementsTxt reads the line-oriented pip format: one requirement
// per line, comments and pip directives skipped.
func parseRequirementsTxt(root string) []Dependency {
	file, err := os.Open(filepath.Join(root, "requirements.txt"))
	if err != nil {
		return nil
	}
	defer file.Close()

	var deps []Dependency
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") || strings.HasPrefix(line, "-") {
			continue
		}
		name, version := splitRequirement(line)
		if name == "" {
			continue
		}
		deps = append(deps, Dependency{Name: name, Version: version, Type: DepRuntime, Source: "requirements.txt"})
	}
	return deps
}

// splitRequirement separates a pip requirement into name and version spec.
func splitRequirement(line string) (string, string) {
	// Environment markers and inline comments are irrelevant to the report.
	if i := strings.IndexAny(line, ";#"); i >= 0 {
		line = strings.TrimSpace(line[:i])
	}
	for _, op := range []string{"==", ">=", "<=", "~=", "!=", ">", "<"} {
		if i := strings.Index(line, op); i >= 0 {
			return strings.TrimSpace(line[:i]), strings.TrimSpace(line[i:])
		}
	}
	// Extras like package[all] still identify the base package.
	if i := strings.Index(line, "["); i >= 0 {
		return strings.TrimSpace(line[:i]), ""
	}
	return line, ""
}

func parsePyprojectToml(root string) []Dependency {
	data, err := os.ReadFile(filepath.Join(root, "pyproject.toml"))
	if err != nil {
		return nil
	}

	var doc struct {
		Project struct {
			Dependencies         []string            `toml:"dependencies"`
			OptionalDependencies map[string][]string `toml:"optional-dependencies"`
		} `toml:"project"`
		Tool struct {
			Poetry struct {
				Dependencies    map[string]any `toml:"dependencies"`
				DevDependencies map[string]any `toml:"dev-dependencies"`
			} `toml:"poetry"`
		} `toml:"tool"`
	}
	if err := toml.Unmarshal(data, &doc); err != nil {
		return nil
	}

	var deps []Dependency
	for _, req := range doc.Project.Dependencies {
		name, version := splitRequirement(req)
		if name != "" {
			deps = append(deps, Dependency{Name: name, Version: version, Type: DepRuntime, Source: "pyproject.toml"})
		}
	}
	for _, group := range sortedKeys(doc.Project.OptionalDependencies) {
		for _, req := range doc.Project.OptionalDependencies[group] {
			name, version := splitRequirement(req)
			if name != "" {
				deps = append(deps, Dependency{Name: name, Version: version, Type: DepDev, Source: "pyproject.toml"})
			}
		}
	}
	for _, name := range sortedKeys(doc.Tool.Poetry.Dependencies) {
		if name == "python" {
			continue
		}
		deps = append(deps, Dependency{Name: name, Version: tomlVersion(doc.Tool.Poetry.Dependencies[name]), Type: DepRuntime, Source: "pyproject.toml"})
	}
	for _, name := range sortedKeys(doc.Tool.Poetry.DevDependencies) {
		deps = append(deps, Dependency{Name: name, Version: tomlVersion(doc.Tool.Poetry.DevDependencies[name]), Type: DepDev, Source: "pyproject.toml"})
	}
	return deps
}

func parseGoDependencies(root string) []Dependency {
	path := filepath.Join(root, "go.mod")
	data, err := os.ReadFile(path)
	if err != nil {
		return nil
	}

	mod, err := modfile.Parse(path, data, nil)
	if err != nil {
		return nil
	}

	var deps []Dependency
	for _, req := range mod.Require {
		depType := DepRuntime
		if req.Indirect {
			depType = DepDev
		}
		deps = append(deps, Dependency{
			Name:    req.Mod.Path,
			Version: req.Mod.Version,
			Type:    depType,
			Source:  "go.mod",
		})
	}
	return deps
}

func parseRustDependencies(root string) []Dependency {
	data, err := os.ReadFile(filepath.Join(root, "Cargo.toml"))
	if err != nil {
		return nil
	}

	var doc struct {
		Dependencies      map[string]any `toml:"dependencies"`
		DevDependencies   map[string]any `toml:"dev-dependencies"`
		BuildDependencies map[string]any `toml:"build-dependencies"`
	}
	if err := toml.Unmarshal(data, &doc); err != nil {
		return nil
	}

	var deps []Dependency
	for _, name := range sortedKeys(doc.Dependencies) {
		deps = append(deps, Dependency{Name: name, Version: tomlVersion(doc.Dependencies[name]), Type: DepRuntime, Source: "Cargo.toml"})
	}
	for _, name := range sortedKeys(doc.DevDependencies) {
		deps = append(deps, Dependency{Name: name, Version: tomlVersion(doc.DevDependencies[name]), Type: DepDev, Source: "Cargo.toml"})
	}
	for _, name := range sortedKeys(doc.BuildDependencies) {
		deps = append(deps, Dependency{Name: name, Version: tomlVersion(doc.BuildDependencies[name]), Type: DepDev, Source: "Cargo.toml"})
	}
	return deps
}

// tomlVersion extracts a version string from either form a TOML dependency
// value takes: "1.0" or { version = "1.0", features = [...] }.
func tomlVersion(value any) string {
	switch v := value.(type) {
	case string:
		return v
	case map[string]any:
		if version, ok := v["version"].(string); ok {
			return version
		}
	}
	return ""
}

func parseJavaDependencies(root string) []Dependency {
	data, err := os.ReadFile(filepath.Join(root, "pom.xml"))
	if err != nil {
		return nil
	}

	var pom struct {
		Dependencies struct {
			Dependency []struct {
				GroupID    string `xml:"groupId"`
				ArtifactID string `xml:"artifactId"`
				Version    string `xml:"version"`
				Scope      string `xml:"scope"`
			} `xml:"dependency"`
		} `xml:"dependencies"`
	}
	if err := xml.Unmarshal(data, &pom); err != nil {
		return nil
	}

	var deps []Dependency
	for _, d := range pom.Dependencies.Dependency {
		if d.ArtifactID == "" {
			continue
		}
		name := d.ArtifactID
		if d.GroupID != "" {
			name = d.GroupID + ":" + d.ArtifactID
		}
		depType := DepRuntime
		if d.Scope == "test" || d.Scope == "provided" {
			depType = DepDev
		}
		deps = append(deps, Dependency{Name: name, Version: d.Version, Type: depType, Source: "pom.xml"})
	}
	return deps
}

// parseRubyDependencies reads Gemfile gem declarations line by line. Gems
// inside a development/test group are tagged dev.
func parseRubyDependencies(root string) []Dependency {
	file, err := os.Open(filepath.Join(root, "Gemfile"))
	if err != nil {
		return nil
	}
	defer file.Close()

	var deps []Dependency
	groupDepth := 0
	devDepth := 0 // depth at which a development/test group opened; 0 when outside one

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())

		if strings.HasPrefix(line, "group") {
			groupDepth++
			if devDepth == 0 && (strings.Contains(line, ":development") || strings.Contains(line, ":test")) {
				devDepth = groupDepth
			}
			continue
		}
		if line == "end" && groupDepth > 0 {
			if groupDepth == devDepth {
				devDepth = 0
			}
			groupDepth--
			continue
		}
		if !strings.HasPrefix(line, "gem ") {
			continue
		}

		parts := strings.Split(strings.TrimPrefix(line, "gem "), ",")
		name := strings.Trim(strings.TrimSpace(parts[0]), `'"`)
		if name == "" {
			continue
		}

		version := ""
		if len(parts) > 1 {
			candidate := strings.Trim(strings.TrimSpace(parts[1]), `'"`)
			if !strings.Contains(candidate, ":") {
				version = candidate
			}
		}

		depType := DepRuntime
		if devDepth > 0 {
			depType = DepDev
		}
		deps = append(deps, Dependency{Name: name, Version: version, Type: depType, Source: "Gemfile"})
	}
	return deps
}

func parsePHPDependencies(root string) []Dependency {
	pkg := readComposerJSON(root)
	if pkg == nil {
		return nil
	}

	var deps []Dependency
	for _, name := range sortedKeys(pkg.Require) {
		if name == "php" {
			continue
		}
		deps = append(deps, Dependency{Name: name, Version: pkg.Require[name], Type: DepRuntime, Source: "composer.json"})
	}
	for _, name := range sortedKeys(pkg.RequireDev) {
		deps = append(deps, Dependency{Name: name, Version: pkg.RequireDev[name], Type: DepDev, Source: "composer.json"})
	}
	return deps
}

// appendSorted adds one dependency per map entry in name order, keeping the
// report stable across runs.
func appendSorted(deps []Dependency, m map[string]string, depType, source string) []Dependency {
	for _, name := range sortedKeys(m) {
		deps = append(deps, Dependency{Name: name, Version: m[name], Type: depType, Source: source})
	}
	return deps
}

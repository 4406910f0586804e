package analyzer

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// Ecosystem labels used for dispatching dependency parsers, entry-point
// rules, and endpoint patterns.
const (
	ecoNode   = "node"
	ecoPython = "python"
	ecoGo     = "go"
	ecoRust   = "rust"
	ecoJava   = "java"
	ecoRuby   = "ruby"
	ecoPHP    = "php"
)

// ecosystemSignature ties an ecosystem to the files whose presence at the
// root identifies it.
type ecosystemSignature struct {
	ecosystem string
	files     []string
}

// ecosystemSignatures is evaluated in order; order only matters for
// deterministic reporting, not priority: any two matches yield "mixed".
var ecosystemSignatures = []ecosystemSignature{
	{ecoNode, []string{"package.json"}},
	{ecoPython, []string{"requirements.txt", "pyproject.toml", "setup.py", "Pipfile"}},
	{ecoGo, []string{"go.mod"}},
	{ecoRust, []string{"Cargo.toml"}},
	{ecoJava, []string{"pom.xml", "build.gradle", "build.gradle.kts"}},
	{ecoRuby, []string{"Gemfile"}},
	{ecoPHP, []string{"composer.json"}},
}

// detectEcosystems returns every ecosystem whose signature file exists at
// root, in signature-table order.
func detectEcosystems(root string) []string {
	var found []string
	for _, sig := range ecosystemSignatures {
		for _, file := range sig.files {
			if fileExists(filepath.Join(root, file)) {
				found = append(found, sig.ecosystem)
				break
			}
		}
	}
	return found
}

// detectProjectType classifies the tree at root. Zero matching ecosystems
// yield "unknown"; more than one yields "mixed" with no sub-classification,
// since polyglot repos are common and forcing a single answer would mislead.
func detectProjectType(root string) string {
	ecosystems := detectEcosystems(root)
	switch len(ecosystems) {
	case 0:
		return "unknown"
	case 1:
		return classifySingle(root, ecosystems[0])
	default:
		return "mixed"
	}
}

// classifySingle refines a single-ecosystem project into a
// "<language>-<library|application>" label using per-ecosystem heuristics.
func classifySingle(root, ecosystem string) string {
	switch ecosystem {
	case ecoNode:
		return classifyNode(root)
	case ecoPython:
		if hasAnyFile(root, "main.py", "app.py", "manage.py") ||
			hasAnyFile(filepath.Join(root, "src"), "main.py", "app.py") {
			return "python-application"
		}
		return "python-library"
	case ecoGo:
		if fileExists(filepath.Join(root, "main.go")) || dirExists(filepath.Join(root, "cmd")) {
			return "go-application"
		}
		return "go-library"
	case ecoRust:
		if fileExists(filepath.Join(root, "src", "lib.rs")) &&
			!fileExists(filepath.Join(root, "src", "main.rs")) {
			return "rust-library"
		}
		return "rust-application"
	case ecoJava:
		return "java-application"
	case ecoRuby:
		if matches, _ := filepath.Glob(filepath.Join(root, "*.gemspec")); len(matches) > 0 {
			return "ruby-library"
		}
		return "ruby-application"
	case ecoPHP:
		if pkg := readComposerJSON(root); pkg != nil && pkg.Type == "library" {
			return "php-library"
		}
		return "php-application"
	}
	return "unknown"
}

// classifyNode distinguishes TypeScript from JavaScript and libraries from
// applications using package.json fields.
func classifyNode(root string) string {
	lang := "javascript"
	pkg := readPackageJSON(root)

	if fileExists(filepath.Join(root, "tsconfig.json")) {
		lang = "typescript"
	} else if pkg != nil {
		if _, ok := pkg.Dependencies["typescript"]; ok {
			lang = "typescript"
		} else if _, ok := pkg.DevDependencies["typescript"]; ok {
			lang = "typescript"
		}
	}

	// A bin declaration means a runnable tool; an export surface without one
	// suggests a library.
	kind := "application"
	if pkg != nil {
		if len(pkg.Bin) == 0 && (pkg.Main != "" || pkg.Module != "" || pkg.Exports != nil || pkg.Types != "") {
			kind = "library"
		}
	}

	return lang + "-" + kind
}

// packageJSON captures the package.json fields the analyzer consults.
// Bin may be a string or an object in the wild; binField normalizes both.
type packageJSON struct {
	Name            string            `json:"name"`
	Main            string            `json:"main"`
	Module          string            `json:"module"`
	Types           string            `json:"types"`
	Exports         json.RawMessage   `json:"exports"`
	Bin             map[string]string `json:"-"`
	BinRaw          json.RawMessage   `json:"bin"`
	Scripts         map[string]string `json:"scripts"`
	Dependencies    map[string]string `json:"dependencies"`
	DevDependencies map[string]string `json:"devDependencies"`
	PeerDependencies map[string]string `json:"peerDependencies"`
}

// readPackageJSON parses package.json at root, returning nil on any failure.
func readPackageJSON(root string) *packageJSON {
	data, err := os.ReadFile(filepath.Join(root, "package.json"))
	if err != nil {
		return nil
	}

	var pkg packageJSON
	if err := json.Unmarshal(data, &pkg); err != nil {
		return nil
	}

	pkg.Bin = make(map[string]string)
	if len(pkg.BinRaw) > 0 {
		var binMap map[string]string
		if err := json.Unmarshal(pkg.BinRaw, &binMap); err == nil {
			pkg.Bin = binMap
		} else {
			var binPath string
			if err := json.Unmarshal(pkg.BinRaw, &binPath); err == nil && binPath != "" {
				pkg.Bin[pkg.Name] = binPath
			}
		}
	}

	return &pkg
}

// composerJSON captures the composer.json fields the analyzer consults.
type composerJSON struct {
	Type       string            `json:"type"`
	Require    map[string]string `json:"require"`
	RequireDev map[string]string `json:"require-dev"`
}

// readComposerJSON parses composer.json at root, returning nil on any failure.
func readComposerJSON(root string) *composerJSON {
	data, err := os.ReadFile(filepath.Join(root, "composer.json"))
	if err != nil {
		return nil
	}

	var pkg composerJSON
	if err := json.Unmarshal(data, &pkg); err != nil {
		return nil
	}
	return &pkg
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

func dirExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

func hasAnyFile(dir string, names ...string) bool {
	for _, name := range names {
		if fileExists(filepath.Join(dir, name)) {
			return true
		}
	}
	return false
}

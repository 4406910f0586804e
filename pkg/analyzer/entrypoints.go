package analyzer

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
)

// conventionalEntryFiles are checked at the root and under src/.
var conventionalEntryFiles = []string{
	"main.go",
	"main.py",
	"app.py",
	"manage.py",
	"index.js",
	"index.ts",
	"main.js",
	"main.ts",
	"app.js",
	"app.ts",
	"server.js",
	"server.ts",
	"index.php",
	"main.rs",
	"Main.java",
	"main.rb",
	"app.rb",
}

// findEntryPoints locates runnable or importable starting points: conventional
// filenames, manifest-declared entries, and per-command directories. Results
// are root-relative, deduplicated, and sorted.
func findEntryPoints(root string, ecosystems []string) []string {
	seen := make(map[string]bool)

	add := func(rel string) {
		rel = filepath.ToSlash(filepath.Clean(rel))
		if rel == "" || rel == "." {
			return
		}
		if fileExists(filepath.Join(root, filepath.FromSlash(rel))) {
			seen[rel] = true
		}
	}

	for _, name := range conventionalEntryFiles {
		add(name)
		add("src/" + name)
	}

	for _, eco := range ecosystems {
		switch eco {
		case ecoNode:
			if pkg := readPackageJSON(root); pkg != nil {
				add(pkg.Main)
				add(pkg.Module)
				for _, bin := range pkg.Bin {
					add(bin)
				}
			}
		case ecoGo:
			// Module-per-command layout: each cmd subdirectory with a main.go
			// is its own entry point.
			cmdDir := filepath.Join(root, "cmd")
			if entries, err := os.ReadDir(cmdDir); err == nil {
				for _, entry := range entries {
					if entry.IsDir() {
						add("cmd/" + entry.Name() + "/main.go")
					}
				}
			}
		case ecoRust:
			add("src/main.rs")
			add("src/lib.rs")
			for _, bin := range cargoBinPaths(root) {
				add(bin)
			}
		case ecoPython:
			// [project.scripts] names console commands; the conventional
			// module files above already cover file-level entries.
			continue
		}
	}

	entryPoints := make([]string, 0, len(seen))
	for path := range seen {
		entryPoints = append(entryPoints, path)
	}
	sort.Strings(entryPoints)
	return entryPoints
}

// cargoBinPaths reads [[bin]] target paths from Cargo.toml.
func cargoBinPaths(root string) []string {
	data, err := os.ReadFile(filepath.Join(root, "Cargo.toml"))
	if err != nil {
		return nil
	}

	var doc struct {
		Bin []struct {
			Name string `toml:"name"`
			Path string `toml:"path"`
		} `toml:"bin"`
	}
	if err := toml.Unmarshal(data, &doc); err != nil {
		return nil
	}

	var paths []string
	for _, bin := range doc.Bin {
		if bin.Path != "" {
			paths = append(paths, bin.Path)
		} else if bin.Name != "" {
			paths = append(paths, "src/bin/"+bin.Name+".rs")
		}
	}
	return paths
}

// isTestPath reports whether a root-relative path sits in test, vendor, or
// build territory and should be skipped by source scans.
func isTestPath(rel string) bool {
	for _, segment := range strings.Split(filepath.ToSlash(rel), "/") {
		if testDirNames[segment] || excludedDirs[segment] {
			return true
		}
	}
	return isTestFile(filepath.Base(rel))
}

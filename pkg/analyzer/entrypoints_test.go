package analyzer

import (
	"reflect"
	"testing"
)

func TestFindEntryPoints_Conventional(t *testing.T) {
	tmpDir := t.TempDir()
	writeFile(t, tmpDir, "main.go", "package main\n")
	writeFile(t, tmpDir, "src/index.ts", "export {}\n")

	got := findEntryPoints(tmpDir, nil)
	want := []string{"main.go", "src/index.ts"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("findEntryPoints() = %v, want %v", got, want)
	}
}

func TestFindEntryPoints_PackageJSON(t *testing.T) {
	tmpDir := t.TempDir()
	writeFile(t, tmpDir, "package.json", `{
  "name": "tool",
  "main": "lib/entry.js",
  "bin": {"tool": "bin/cli.js"}
}`)
	writeFile(t, tmpDir, "lib/entry.js", "module.exports = {}\n")
	writeFile(t, tmpDir, "bin/cli.js", "#!/usr/bin/env node\n")

	got := findEntryPoints(tmpDir, []string{ecoNode})
	want := []string{"bin/cli.js", "lib/entry.js"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("findEntryPoints() = %v, want %v", got, want)
	}
}

func TestFindEntryPoints_DeclaredButMissing(t *testing.T) {
	tmpDir := t.TempDir()
	writeFile(t, tmpDir, "package.json", `{"name": "x", "main": "dist/index.js"}`)

	got := findEntryPoints(tmpDir, []string{ecoNode})
	if len(got) != 0 {
		t.Errorf("findEntryPoints() = %v, want none for missing declared entry", got)
	}
}

func TestFindEntryPoints_GoCommands(t *testing.T) {
	tmpDir := t.TempDir()
	writeFile(t, tmpDir, "go.mod", "module x\n")
	writeFile(t, tmpDir, "cmd/server/main.go", "package main\n")
	writeFile(t, tmpDir, "cmd/worker/main.go", "package main\n")
	writeFile(t, tmpDir, "cmd/empty/helper.go", "package empty\n")

	got := findEntryPoints(tmpDir, []string{ecoGo})
	want := []string{"cmd/server/main.go", "cmd/worker/main.go"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("findEntryPoints() = %v, want %v", got, want)
	}
}

func TestFindEntryPoints_CargoBins(t *testing.T) {
	tmpDir := t.TempDir()
	writeFile(t, tmpDir, "Cargo.toml", `[package]
name = "crate"

[[bin]]
name = "tool"
path = "src/bin/tool.rs"
`)
	writeFile(t, tmpDir, "src/main.rs", "fn main() {}\n")
	writeFile(t, tmpDir, "src/bin/tool.rs", "fn main() {}\n")

	got := findEntryPoints(tmpDir, []string{ecoRust})
	want := []string{"src/bin/tool.rs", "src/main.rs"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("findEntryPoints() = %v, want %v", got, want)
	}
}

func TestFindEntryPoints_Deduplicates(t *testing.T) {
	tmpDir := t.TempDir()
	// index.js is both conventional and the declared main.
	writeFile(t, tmpDir, "package.json", `{"name": "x", "main": "index.js"}`)
	writeFile(t, tmpDir, "index.js", "module.exports = {}\n")

	got := findEntryPoints(tmpDir, []string{ecoNode})
	want := []string{"index.js"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("findEntryPoints() = %v, want %v", got, want)
	}
}

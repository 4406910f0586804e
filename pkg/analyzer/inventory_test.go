package analyzer

import (
	"reflect"
	"testing"
)

func TestIsTestFile(t *testing.T) {
	matching := []string{
		"foo_test.go",
		"app.test.js",
		"app.spec.ts",
		"widget.test.tsx",
		"test_models.py",
		"models_test.py",
		"user_spec.rb",
		"UserServiceTest.java",
		"parser_test.rs",
	}
	for _, name := range matching {
		if !isTestFile(name) {
			t.Errorf("isTestFile(%q) = false, want true", name)
		}
	}

	nonMatching := []string{
		"main.go",
		"testdata.go",
		"contest.py",
		"latest.js",
		"attestation.rb",
	}
	for _, name := range nonMatching {
		if isTestFile(name) {
			t.Errorf("isTestFile(%q) = true, want false", name)
		}
	}
}

func TestFindTestFiles(t *testing.T) {
	tmpDir := t.TempDir()
	writeFile(t, tmpDir, "pkg/parser_test.go", "package pkg\n")
	writeFile(t, tmpDir, "tests/helper.py", "pass\n")
	writeFile(t, tmpDir, "tests/README.md", "# tests\n")
	writeFile(t, tmpDir, "src/main.go", "package main\n")

	got := findTestFiles(tmpDir)
	want := []string{"pkg/parser_test.go", "tests/helper.py"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("findTestFiles() = %v, want %v", got, want)
	}
}

func TestFindTestFiles_SkipsVendored(t *testing.T) {
	tmpDir := t.TempDir()
	writeFile(t, tmpDir, "node_modules/dep/dep.test.js", "x\n")
	writeFile(t, tmpDir, "app.test.js", "x\n")

	got := findTestFiles(tmpDir)
	want := []string{"app.test.js"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("findTestFiles() = %v, want %v", got, want)
	}
}

func TestFindConfigFiles(t *testing.T) {
	tmpDir := t.TempDir()
	writeFile(t, tmpDir, "package.json", `{}`)
	writeFile(t, tmpDir, "Dockerfile", "FROM scratch\n")
	writeFile(t, tmpDir, ".eslintrc.json", `{}`)
	writeFile(t, tmpDir, ".github/workflows/ci.yml", "on: push\n")
	writeFile(t, tmpDir, ".github/workflows/release.yml", "on: push\n")

	configs := findConfigFiles(tmpDir)

	byPath := make(map[string]ConfigFile, len(configs))
	for _, cfg := range configs {
		byPath[cfg.Path] = cfg
	}

	if cfg, ok := byPath["package.json"]; !ok || cfg.Type != "npm" {
		t.Errorf("package.json = %+v, want npm config", cfg)
	}
	if cfg, ok := byPath["Dockerfile"]; !ok || cfg.Type != "docker" {
		t.Errorf("Dockerfile = %+v, want docker config", cfg)
	}
	if cfg, ok := byPath[".eslintrc.json"]; !ok || cfg.Type != "eslint" {
		t.Errorf(".eslintrc.json = %+v, want eslint config via glob", cfg)
	}
	if cfg, ok := byPath[".github/workflows/ci.yml"]; !ok || cfg.Type != "ci" {
		t.Errorf("ci.yml = %+v, want ci config via workflow expansion", cfg)
	}
	if _, ok := byPath[".github/workflows/release.yml"]; !ok {
		t.Error("release.yml missing: workflow directory should yield one entry per file")
	}
}

func TestFindConfigFiles_EmptyTree(t *testing.T) {
	configs := findConfigFiles(t.TempDir())
	if len(configs) != 0 {
		t.Errorf("findConfigFiles() = %v, want none", configs)
	}
}

func TestFindDocumentation(t *testing.T) {
	tmpDir := t.TempDir()
	writeFile(t, tmpDir, "README.md", "# Readme\n")
	writeFile(t, tmpDir, "CONTRIBUTING.md", "# Contributing\n")
	writeFile(t, tmpDir, "docs/guide.md", "# Guide\n")
	writeFile(t, tmpDir, "docs/advanced/tuning.md", "# Tuning\n")
	writeFile(t, tmpDir, "src/notes.md", "# Not collected\n")

	got := findDocumentation(tmpDir)
	want := []string{
		"CONTRIBUTING.md",
		"README.md",
		"docs/advanced/tuning.md",
		"docs/guide.md",
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("findDocumentation() = %v, want %v", got, want)
	}
}

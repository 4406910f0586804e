package analyzer

import (
	"testing"
)

// findNode locates a node by relative path in the structure tree.
func findNode(node *DirectoryStructure, path string) *DirectoryStructure {
	if node == nil {
		return nil
	}
	if node.Path == path {
		return node
	}
	for _, child := range node.Children {
		if found := findNode(child, path); found != nil {
			return found
		}
	}
	return nil
}

func TestBuildStructure_Basic(t *testing.T) {
	tmpDir := t.TempDir()
	writeFile(t, tmpDir, "src/main.go", "package main\n")
	writeFile(t, tmpDir, "docs/guide.md", "# Guide\n")
	writeFile(t, tmpDir, "README.md", "# Readme\n")

	tree := buildStructure(tmpDir)
	if tree == nil {
		t.Fatal("buildStructure returned nil")
	}
	if tree.Type != "directory" || tree.Path != "." {
		t.Errorf("root = %+v, want directory at .", tree)
	}

	src := findNode(tree, "src")
	if src == nil {
		t.Fatal("src directory missing from tree")
	}
	if src.Purpose != "Source code" {
		t.Errorf("src.Purpose = %q, want %q", src.Purpose, "Source code")
	}

	mainGo := findNode(tree, "src/main.go")
	if mainGo == nil {
		t.Fatal("src/main.go missing from tree")
	}
	if mainGo.Type != "file" || mainGo.Language != "Go" {
		t.Errorf("src/main.go = %+v, want Go file", mainGo)
	}

	docs := findNode(tree, "docs")
	if docs == nil || docs.Purpose != "Documentation" {
		t.Errorf("docs = %+v, want Documentation purpose", docs)
	}
}

func TestBuildStructure_ExcludesGeneratedDirs(t *testing.T) {
	tmpDir := t.TempDir()
	writeFile(t, tmpDir, "node_modules/dep/index.js", "x\n")
	writeFile(t, tmpDir, "vendor/lib/lib.go", "package lib\n")
	writeFile(t, tmpDir, ".git/config", "[core]\n")
	writeFile(t, tmpDir, "dist/bundle.js", "x\n")
	writeFile(t, tmpDir, "src/index.js", "x\n")
	writeFile(t, tmpDir, "src/node_modules/inner/index.js", "x\n")

	tree := buildStructure(tmpDir)

	for _, excluded := range []string{"node_modules", "vendor", ".git", "dist"} {
		if findNode(tree, excluded) != nil {
			t.Errorf("excluded directory %q present in tree", excluded)
		}
	}
	if findNode(tree, "src") == nil {
		t.Error("src missing from tree")
	}
	if findNode(tree, "src/node_modules") != nil {
		t.Error("nested node_modules present in tree")
	}
}

func TestBuildStructure_KeepsCIDotDirs(t *testing.T) {
	tmpDir := t.TempDir()
	writeFile(t, tmpDir, ".github/workflows/ci.yml", "on: push\n")
	writeFile(t, tmpDir, ".hidden/secret.txt", "x\n")

	tree := buildStructure(tmpDir)

	github := findNode(tree, ".github")
	if github == nil {
		t.Fatal(".github missing from tree")
	}
	if github.Purpose != "GitHub configuration" {
		t.Errorf(".github.Purpose = %q", github.Purpose)
	}
	if findNode(tree, ".hidden") != nil {
		t.Error("arbitrary dot directory should be skipped")
	}
}

func TestBuildStructure_SortedSiblings(t *testing.T) {
	tmpDir := t.TempDir()
	writeFile(t, tmpDir, "zebra.go", "package x\n")
	writeFile(t, tmpDir, "alpha.go", "package x\n")
	writeFile(t, tmpDir, "middle.go", "package x\n")

	tree := buildStructure(tmpDir)
	if len(tree.Children) != 3 {
		t.Fatalf("children = %d, want 3", len(tree.Children))
	}
	for i, want := range []string{"alpha.go", "middle.go", "zebra.go"} {
		if tree.Children[i].Name != want {
			t.Errorf("children[%d] = %q, want %q", i, tree.Children[i].Name, want)
		}
	}
}

func TestPurposeForDirectory(t *testing.T) {
	if got := purposeForDirectory("SRC"); got != "Source code" {
		t.Errorf("purposeForDirectory is case-sensitive: got %q", got)
	}
	if got := purposeForDirectory("somethingelse"); got != genericPurpose {
		t.Errorf("unknown directory purpose = %q, want %q", got, genericPurpose)
	}
}

func TestDetectLanguages(t *testing.T) {
	tmpDir := t.TempDir()
	writeFile(t, tmpDir, "a.go", "package a\n")
	writeFile(t, tmpDir, "b.go", "package a\n")
	writeFile(t, tmpDir, "c.go", "package a\n")
	writeFile(t, tmpDir, "script.py", "pass\n")
	writeFile(t, tmpDir, "notes.txt", "not code\n")

	languages := detectLanguages(tmpDir)
	if len(languages) != 2 {
		t.Fatalf("detectLanguages() = %v, want 2 languages", languages)
	}

	if languages[0].Language != "Go" || languages[0].Percentage != 75 || languages[0].FileCount != 3 {
		t.Errorf("languages[0] = %+v, want Go 75%% with 3 files", languages[0])
	}
	if languages[1].Language != "Python" || languages[1].Percentage != 25 {
		t.Errorf("languages[1] = %+v, want Python 25%%", languages[1])
	}
}

func TestDetectLanguages_SingleLanguage(t *testing.T) {
	tmpDir := t.TempDir()
	writeFile(t, tmpDir, "src/index.ts", "export {}\n")
	writeFile(t, tmpDir, "src/util.tsx", "export {}\n")

	languages := detectLanguages(tmpDir)
	if len(languages) != 1 {
		t.Fatalf("detectLanguages() = %v, want 1 language", languages)
	}
	lang := languages[0]
	if lang.Language != "TypeScript" || lang.Percentage != 100 || lang.FileCount != 2 {
		t.Errorf("lang = %+v, want TypeScript 100%% with 2 files", lang)
	}
	if len(lang.Extensions) != 2 || lang.Extensions[0] != ".ts" || lang.Extensions[1] != ".tsx" {
		t.Errorf("extensions = %v, want sorted [.ts .tsx]", lang.Extensions)
	}
}

func TestDetectLanguages_IgnoresExcludedDirs(t *testing.T) {
	tmpDir := t.TempDir()
	writeFile(t, tmpDir, "main.go", "package main\n")
	writeFile(t, tmpDir, "node_modules/dep/index.js", "x\n")
	writeFile(t, tmpDir, "vendor/lib.go", "package lib\n")

	languages := detectLanguages(tmpDir)
	if len(languages) != 1 || languages[0].Language != "Go" || languages[0].FileCount != 1 {
		t.Errorf("detectLanguages() = %v, want only the one root Go file", languages)
	}
}

func TestDetectLanguages_NoClassifiableFiles(t *testing.T) {
	tmpDir := t.TempDir()
	writeFile(t, tmpDir, "data.csv", "a,b\n")

	languages := detectLanguages(tmpDir)
	if len(languages) != 0 {
		t.Errorf("detectLanguages() = %v, want empty", languages)
	}
}

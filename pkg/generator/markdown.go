package generator

import (
	"os"
	"path/filepath"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	gmtext "github.com/yuin/goldmark/text"
)

// ProjectDescription extracts the first paragraph of a project's README to
// seed the scaffolded documentation index. Returns "" when no README exists
// or it contains no prose.
func ProjectDescription(root string) string {
	source, ok := readREADME(root)
	if !ok {
		return ""
	}

	doc := goldmark.DefaultParser().Parse(gmtext.NewReader(source))

	var description string
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		if paragraph, ok := n.(*ast.Paragraph); ok {
			description = string(paragraph.Lines().Value(source))
			return ast.WalkStop, nil
		}
		return ast.WalkContinue, nil
	})

	return description
}

// readREADME loads README.md from a directory, trying the common casings.
func readREADME(dir string) ([]byte, bool) {
	for _, name := range []string{"README.md", "Readme.md", "readme.md"} {
		data, err := os.ReadFile(filepath.Join(dir, name))
		if err == nil {
			return data, true
		}
	}
	return nil, false
}

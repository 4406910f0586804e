// Package filesystem provides traversal helpers shared by the analyzer's
// scanning passes.
package filesystem

import (
	"os"
	"path/filepath"
	"strings"
)

// WalkOptions configures directory traversal behavior.
type WalkOptions struct {
	IgnoreDirs    []string // directory basenames to skip entirely
	IncludeHidden bool     // include dotfiles/dot-directories (default: false)
}

// Walk traverses a directory tree with configurable ignore rules. The
// visitor is called for each surviving file and directory. Unreadable
// entries are skipped rather than aborting the walk, so analysis passes
// degrade to partial results instead of failing. Return filepath.SkipDir
// from the visitor to skip a directory.
func Walk(rootPath string, opts WalkOptions, visitor func(path string, info os.FileInfo) error) error {
	return filepath.Walk(rootPath, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return nil
		}

		if !opts.IncludeHidden && strings.HasPrefix(info.Name(), ".") && path != rootPath {
			if info.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}

		if info.IsDir() && path != rootPath {
			for _, ignore := range opts.IgnoreDirs {
				if info.Name() == ignore {
					return filepath.SkipDir
				}
			}
		}

		return visitor(path, info)
	})
}

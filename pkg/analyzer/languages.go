package analyzer

import (
	"math"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/plumekit/plume/internal/filesystem"
)

// extensionLanguages maps file extensions to language labels. Extensions not
// listed here are skipped during classification rather than counted as
// "other", since unmapped files carry no signal worth reporting.
var extensionLanguages = map[string]string{
	".go":    "Go",
	".ts":    "TypeScript",
	".tsx":   "TypeScript",
	".js":    "JavaScript",
	".jsx":   "JavaScript",
	".mjs":   "JavaScript",
	".cjs":   "JavaScript",
	".py":    "Python",
	".rb":    "Ruby",
	".rs":    "Rust",
	".java":  "Java",
	".kt":    "Kotlin",
	".kts":   "Kotlin",
	".c":     "C",
	".h":     "C",
	".cpp":   "C++",
	".cc":    "C++",
	".cxx":   "C++",
	".hpp":   "C++",
	".cs":    "C#",
	".php":   "PHP",
	".swift": "Swift",
	".scala": "Scala",
	".ex":    "Elixir",
	".exs":   "Elixir",
	".erl":   "Erlang",
	".hs":    "Haskell",
	".lua":   "Lua",
	".pl":    "Perl",
	".r":     "R",
	".dart":  "Dart",
	".zig":   "Zig",
	".sh":    "Shell",
	".bash":  "Shell",
	".zsh":   "Shell",
	".sql":   "SQL",
	".html":  "HTML",
	".css":   "CSS",
	".scss":  "SCSS",
	".vue":   "Vue",
	".svelte": "Svelte",
}

// languageForFile returns the language label for a filename, or "" when the
// extension is unmapped.
func languageForFile(name string) string {
	ext := strings.ToLower(filepath.Ext(name))
	return extensionLanguages[ext]
}

// detectLanguages walks the tree under root and aggregates per-language file
// counts and integer percentages, sorted by descending percentage. A tree
// with no classifiable files yields an empty slice.
func detectLanguages(root string, extraIgnores ...string) []LanguageInfo {
	counts := make(map[string]int)
	exts := make(map[string]map[string]bool)
	total := 0

	opts := filesystem.WalkOptions{IgnoreDirs: ignoreList(extraIgnores), IncludeHidden: true}
	_ = filesystem.Walk(root, opts, func(path string, info os.FileInfo) error {
		if info.IsDir() {
			return nil
		}

		lang := languageForFile(info.Name())
		if lang == "" {
			return nil
		}

		counts[lang]++
		total++
		if exts[lang] == nil {
			exts[lang] = make(map[string]bool)
		}
		exts[lang][strings.ToLower(filepath.Ext(info.Name()))] = true
		return nil
	})

	if total == 0 {
		return []LanguageInfo{}
	}

	languages := make([]LanguageInfo, 0, len(counts))
	for lang, count := range counts {
		extList := make([]string, 0, len(exts[lang]))
		for ext := range exts[lang] {
			extList = append(extList, ext)
		}
		sort.Strings(extList)

		languages = append(languages, LanguageInfo{
			Language:   lang,
			Percentage: int(math.Round(float64(count) / float64(total) * 100)),
			FileCount:  count,
			Extensions: extList,
		})
	}

	// Descending by percentage, name as tie-break for determinism.
	sort.Slice(languages, func(i, j int) bool {
		if languages[i].Percentage != languages[j].Percentage {
			return languages[i].Percentage > languages[j].Percentage
		}
		return languages[i].Language < languages[j].Language
	})

	return languages
}

package analyzer

import (
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"github.com/plumekit/plume/internal/filesystem"
)

// endpointPattern is one "register a route" idiom. A pattern captures the
// HTTP method and the path literal; when the method group is empty the fixed
// method field is used instead.
type endpointPattern struct {
	framework string
	regex     *regexp.Regexp
	method    string // fixed method when the regex has no method group
}

// endpointPatterns maps an ecosystem to the route idioms scanned in its
// source files. This is a best-effort catalogue: unknown frameworks are
// missed and look-alike string literals may match; both are accepted.
var endpointPatterns = map[string][]endpointPattern{
	ecoNode: {
		{framework: "express", regex: regexp.MustCompile("(?:app|router|server)\\.(get|post|put|delete|patch|options|head)\\s*\\(\\s*['\"`]([^'\"`]+)['\"`]")},
		{framework: "nestjs", regex: regexp.MustCompile(`@(Get|Post|Put|Delete|Patch)\s*\(\s*['"]?([^'")]*)['"]?\s*\)`)},
	},
	ecoPython: {
		{framework: "flask", regex: regexp.MustCompile(`@(?:app|bp|blueprint)\.route\s*\(\s*['"]([^'"]+)['"]`), method: "GET"},
		{framework: "fastapi", regex: regexp.MustCompile(`@(?:app|router)\.(get|post|put|delete|patch)\s*\(\s*['"]([^'"]+)['"]`)},
	},
	ecoGo: {
		{framework: "gin/echo", regex: regexp.MustCompile(`\.(GET|POST|PUT|DELETE|PATCH|OPTIONS|HEAD)\s*\(\s*"([^"]+)"`)},
		{framework: "chi", regex: regexp.MustCompile(`\b(?:r|router|mux)\.(Get|Post|Put|Delete|Patch)\s*\(\s*"([^"]+)"`)},
		{framework: "net/http", regex: regexp.MustCompile(`\bHandleFunc\s*\(\s*"([^"]+)"`), method: "ANY"},
	},
	ecoRuby: {
		{framework: "rails", regex: regexp.MustCompile(`(?m)^\s*(get|post|put|delete|patch)\s+['"]([^'"]+)['"]`)},
	},
	ecoJava: {
		{framework: "spring", regex: regexp.MustCompile(`@(Get|Post|Put|Delete|Patch)Mapping\s*\(\s*(?:value\s*=\s*)?"([^"]+)"`)},
		{framework: "spring", regex: regexp.MustCompile(`@RequestMapping\s*\(\s*(?:value\s*=\s*)?"([^"]+)"`), method: "ANY"},
	},
	ecoPHP: {
		{framework: "laravel", regex: regexp.MustCompile(`Route::(get|post|put|delete|patch)\s*\(\s*['"]([^'"]+)['"]`)},
	},
}

// ecosystemSourceExts restricts the endpoint scan to files whose language
// belongs to the ecosystem being scanned.
var ecosystemSourceExts = map[string][]string{
	ecoNode:   {".js", ".jsx", ".ts", ".tsx", ".mjs", ".cjs"},
	ecoPython: {".py"},
	ecoGo:     {".go"},
	ecoRust:   {".rs"},
	ecoJava:   {".java", ".kt"},
	ecoRuby:   {".rb"},
	ecoPHP:    {".php"},
}

// scanEndpoints runs the per-framework regexes over every matching source
// file under root, excluding test, vendor, and build paths. Each match
// yields one endpoint with a 1-based line number. No match is not an error.
func scanEndpoints(root string, ecosystems []string, extraIgnores ...string) []APIEndpoint {
	extWanted := make(map[string][]endpointPattern)
	for _, eco := range ecosystems {
		patterns := endpointPatterns[eco]
		if len(patterns) == 0 {
			continue
		}
		for _, ext := range ecosystemSourceExts[eco] {
			extWanted[ext] = append(extWanted[ext], patterns...)
		}
	}
	if len(extWanted) == 0 {
		return []APIEndpoint{}
	}

	endpoints := []APIEndpoint{}
	opts := filesystem.WalkOptions{IgnoreDirs: ignoreList(extraIgnores)}
	_ = filesystem.Walk(root, opts, func(path string, info os.FileInfo) error {
		if info.IsDir() {
			return nil
		}

		patterns, ok := extWanted[strings.ToLower(filepath.Ext(info.Name()))]
		if !ok {
			return nil
		}

		rel, err := filepath.Rel(root, path)
		if err != nil || isTestPath(rel) {
			return nil
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return nil
		}

		endpoints = append(endpoints, matchEndpoints(string(data), filepath.ToSlash(rel), patterns)...)
		return nil
	})

	sort.Slice(endpoints, func(i, j int) bool {
		if endpoints[i].File != endpoints[j].File {
			return endpoints[i].File < endpoints[j].File
		}
		return endpoints[i].Line < endpoints[j].Line
	})
	return endpoints
}

// matchEndpoints applies the patterns to one file's content.
func matchEndpoints(content, relPath string, patterns []endpointPattern) []APIEndpoint {
	var endpoints []APIEndpoint
	for _, pattern := range patterns {
		for _, match := range pattern.regex.FindAllStringSubmatchIndex(content, -1) {
			groups := pattern.regex.FindStringSubmatch(content[match[0]:match[1]])

			method := pattern.method
			routePath := ""
			switch len(groups) {
			case 3:
				method = strings.ToUpper(groups[1])
				routePath = groups[2]
			case 2:
				routePath = groups[1]
			}
			if routePath == "" {
				continue
			}

			endpoints = append(endpoints, APIEndpoint{
				Method:      method,
				Path:        routePath,
				File:        relPath,
				Line:        strings.Count(content[:match[0]], "\n") + 1,
				Description: pattern.framework + " route",
			})
		}
	}
	return endpoints
}

package analyzer

// ProjectAnalysis is the complete report for one analyzed source tree.
// It is built once per Analyze call and never mutated afterwards.
type ProjectAnalysis struct {
	Name          string              `json:"name" yaml:"name"`
	RootPath      string              `json:"root_path" yaml:"root_path"`
	ProjectType   string              `json:"project_type" yaml:"project_type"`
	Languages     []LanguageInfo      `json:"languages" yaml:"languages"`
	Structure     *DirectoryStructure `json:"structure,omitempty" yaml:"structure,omitempty"`
	Dependencies  []Dependency        `json:"dependencies" yaml:"dependencies"`
	EntryPoints   []string            `json:"entry_points" yaml:"entry_points"`
	APIEndpoints  []APIEndpoint       `json:"api_endpoints" yaml:"api_endpoints"`
	TestFiles     []string            `json:"test_files" yaml:"test_files"`
	ConfigFiles   []ConfigFile        `json:"config_files" yaml:"config_files"`
	Documentation []string            `json:"documentation" yaml:"documentation"`
	Architecture  ArchitectureInfo    `json:"architecture" yaml:"architecture"`
	SuggestedDocs DocStructure        `json:"suggested_docs" yaml:"suggested_docs"`
}

// LanguageInfo describes one detected language and its share of the tree.
type LanguageInfo struct {
	Language   string   `json:"language" yaml:"language"`
	Percentage int      `json:"percentage" yaml:"percentage"`
	FileCount  int      `json:"file_count" yaml:"file_count"`
	Extensions []string `json:"extensions" yaml:"extensions"`
}

// DirectoryStructure is a recursive tree node mirroring the filesystem.
// Only directory nodes carry Children and Purpose; only file nodes carry
// Language.
type DirectoryStructure struct {
	Name     string                `json:"name" yaml:"name"`
	Type     string                `json:"type" yaml:"type"` // "directory" or "file"
	Path     string                `json:"path" yaml:"path"`
	Children []*DirectoryStructure `json:"children,omitempty" yaml:"children,omitempty"`
	Language string                `json:"language,omitempty" yaml:"language,omitempty"`
	Purpose  string                `json:"purpose,omitempty" yaml:"purpose,omitempty"`
}

// Dependency types mirror the manifest section a dependency was declared in.
const (
	DepRuntime = "runtime"
	DepDev     = "dev"
	DepPeer    = "peer"
)

// Dependency is one declared dependency. The same name may appear multiple
// times when declared in several manifests; Source preserves provenance.
type Dependency struct {
	Name    string `json:"name" yaml:"name"`
	Version string `json:"version,omitempty" yaml:"version,omitempty"`
	Type    string `json:"type" yaml:"type"`
	Source  string `json:"source" yaml:"source"`
}

// APIEndpoint is one route-registration match found by the best-effort scan.
type APIEndpoint struct {
	Method      string `json:"method" yaml:"method"`
	Path        string `json:"path" yaml:"path"`
	File        string `json:"file" yaml:"file"`
	Line        int    `json:"line,omitempty" yaml:"line,omitempty"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
}

// ConfigFile is one recognized configuration artifact.
type ConfigFile struct {
	Path    string `json:"path" yaml:"path"`
	Type    string `json:"type" yaml:"type"`
	Purpose string `json:"purpose" yaml:"purpose"`
}

// ArchitectureInfo summarizes the inferred architecture. Pattern is a single
// best guess and may be empty; Layers and Components are computed
// independently and may be non-empty even without a pattern match.
type ArchitectureInfo struct {
	Pattern    string   `json:"pattern,omitempty" yaml:"pattern,omitempty"`
	Layers     []string `json:"layers" yaml:"layers"`
	Components []string `json:"components" yaml:"components"`
}

// DocStructure is the suggested documentation skeleton for the project.
type DocStructure struct {
	Standard string       `json:"standard" yaml:"standard"`
	Sections []DocSection `json:"sections" yaml:"sections"`
}

// DocSection is one suggested documentation section.
type DocSection struct {
	Title       string `json:"title" yaml:"title"`
	Slug        string `json:"slug" yaml:"slug"`
	Description string `json:"description" yaml:"description"`
}

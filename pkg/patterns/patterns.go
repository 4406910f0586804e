package patterns

// Pattern is one named architectural shape, recognized purely from the
// co-occurrence of directory names anywhere in the tree.
type Pattern struct {
	ID          string
	Name        string   // label reported in ArchitectureInfo.Pattern
	DisplayName string   // for docs and terminal output
	Description string
	Requires    []string // directory basenames that must all be present
}

// DefaultPatterns returns the recognized patterns in evaluation order.
// The first pattern whose Requires set is fully present wins; patterns are
// not scored or ranked beyond this ordering. A tree can satisfy several
// patterns at once (hexagonal and clean share vocabulary); the fixed order
// is the tie-break, and callers should treat the single answer as a best
// guess rather than a verdict.
func DefaultPatterns() []Pattern {
	return []Pattern{
		{
			ID:          "clean",
			Name:        "clean-architecture",
			DisplayName: "Clean Architecture",
			Description: "Domain, application, and infrastructure rings with dependencies pointing inward",
			Requires:    []string{"domain", "application", "infrastructure"},
		},
		{
			ID:          "hexagonal",
			Name:        "hexagonal",
			DisplayName: "Hexagonal (Ports & Adapters)",
			Description: "A core surrounded by ports and adapters isolating it from the outside world",
			Requires:    []string{"core", "ports", "adapters"},
		},
		{
			ID:          "layered",
			Name:        "layered",
			DisplayName: "Layered Architecture",
			Description: "Horizontal controller, service, and repository layers",
			Requires:    []string{"controllers", "services", "repositories"},
		},
		{
			ID:          "mvc",
			Name:        "mvc",
			DisplayName: "Model-View-Controller",
			Description: "Models, views, and controllers separated by responsibility",
			Requires:    []string{"models", "views", "controllers"},
		},
		{
			ID:          "feature-based",
			Name:        "feature-based",
			DisplayName: "Feature-Based",
			Description: "Code grouped by feature rather than by technical layer",
			Requires:    []string{"features"},
		},
		{
			ID:          "modular",
			Name:        "feature-based",
			DisplayName: "Module-Based",
			Description: "Code grouped into self-contained modules",
			Requires:    []string{"modules"},
		},
	}
}

// layerGroups re-groups purpose-bearing directories into named layers.
// A project may exhibit several layers simultaneously; each group is
// reported when any of its directory names occurs in the tree.
var layerGroups = []struct {
	Name string
	Dirs []string
}{
	{"presentation", []string{"controllers", "handlers", "views", "pages", "ui", "web", "routes", "api"}},
	{"business", []string{"services", "usecases", "domain", "core", "application"}},
	{"data", []string{"repositories", "models", "entities", "dao", "storage", "db", "database", "infrastructure"}},
}

// componentContainers are directories whose immediate subdirectories are
// reported as components.
var componentContainers = []string{"components", "modules", "features", "apps"}

// microservicesThreshold: a services directory with more immediate
// subdirectories than this implies a microservices layout regardless of the
// ordered pattern list.
const microservicesThreshold = 3

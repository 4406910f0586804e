package analyzer

// suggestDocStructure maps the analysis onto a documentation skeleton: the
// four Diátaxis quadrants, an Architecture section only when a pattern was
// inferred, and an API Documentation section. It only describes what should
// exist; nothing is written here.
func suggestDocStructure(projectType string, languages []LanguageInfo, arch ArchitectureInfo) DocStructure {
	sections := []DocSection{
		{
			Title:       "Tutorials",
			Slug:        "tutorials",
			Description: "Learning-oriented lessons that take a newcomer through a first working result",
		},
		{
			Title:       "How-To Guides",
			Slug:        "how-to",
			Description: "Task-oriented recipes for readers who know what they want to accomplish",
		},
		{
			Title:       "Reference",
			Slug:        "reference",
			Description: "Information-oriented descriptions of the machinery: commands, options, formats",
		},
		{
			Title:       "Explanation",
			Slug:        "explanation",
			Description: "Understanding-oriented discussion of design decisions and background",
		},
	}

	if arch.Pattern != "" {
		sections = append(sections, DocSection{
			Title:       "Architecture",
			Slug:        "architecture",
			Description: "The " + arch.Pattern + " structure of the codebase and how its parts relate",
		})
	}

	sections = append(sections, DocSection{
		Title:       "API Documentation",
		Slug:        "api",
		Description: "The project's public surface: endpoints, exported entry points, and contracts",
	})

	return DocStructure{
		Standard: "diataxis",
		Sections: sections,
	}
}

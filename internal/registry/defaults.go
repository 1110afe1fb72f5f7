package registry

import "github.com/Tomas-vilte/conventionalish/internal/domain/models"

// DefaultEntries returns the built-in conventional commit types.
func DefaultEntries() []models.CommitTypeDefinition {
	return []models.CommitTypeDefinition{
		{Token: "fix", Label: "A bug fix. Correlates with PATCH in SemVer", Shortcut: "x", Bump: models.PatchBump},
		{Token: "feat", Label: "A new feature. Correlates with MINOR in SemVer", Shortcut: "f", Bump: models.MinorBump},
		{Token: "docs", Label: "Documentation only changes", Shortcut: "d"},
		{
			Token:    "style",
			Label:    "Changes that do not affect the meaning of the code (white-space, formatting, missing semi-colons, etc)",
			Shortcut: "s",
		},
		{
			Token:    "refactor",
			Label:    "A code change that neither fixes a bug nor adds a feature. Correlates with PATCH in SemVer",
			Shortcut: "r",
			Bump:     models.PatchBump,
		},
		{Token: "perf", Label: "A code change that improves performance. Correlates with PATCH in SemVer", Shortcut: "p", Bump: models.PatchBump},
		{Token: "test", Label: "Adding missing or correcting existing tests", Shortcut: "t"},
		{
			Token:    "build",
			Label:    "Changes that affect the build system or external dependencies (example scopes: pip, docker, npm)",
			Shortcut: "b",
		},
		{
			Token:    "ci",
			Label:    "Changes to our CI configuration files and scripts (example scopes: GitLabCI)",
			Shortcut: "c",
		},
	}
}

// Default builds the registry from DefaultEntries.
func Default() *Registry {
	r, err := Build(DefaultEntries())
	if err != nil {
		panic("registry: invalid default entries: " + err.Error())
	}
	return r
}

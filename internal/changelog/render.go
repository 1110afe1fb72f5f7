package changelog

import (
	"fmt"
	"strings"
	"time"

	"github.com/Tomas-vilte/conventionalish/internal/domain/models"
)

// Render formats one release as markdown. Breaking changes come first, then
// one section per title in registry order. Excluded types are skipped, except
// for their entry under the breaking section.
func (c *Classifier) Render(version string, date time.Time, commits []models.ConventionalCommit) string {
	var sb strings.Builder

	header := fmt.Sprintf("## %s", version)
	if !date.IsZero() {
		header += fmt.Sprintf(" (%s)", date.Format("2006-01-02"))
	}
	sb.WriteString(header + "\n\n")

	grouped := make(map[string][]models.ConventionalCommit)
	var breaking []models.ConventionalCommit
	for _, commit := range commits {
		if commit.Breaking {
			breaking = append(breaking, commit)
		}
		if title, ok := c.SectionFor(commit.Type); ok {
			grouped[title] = append(grouped[title], commit)
		}
	}

	if len(breaking) > 0 {
		sb.WriteString(fmt.Sprintf("### %s\n\n", BreakingSection))
		for _, commit := range breaking {
			description := commit.BreakingDescription
			if description == "" {
				description = commit.Subject
			}
			sb.WriteString(formatItem(commit.Scope, description))
		}
		sb.WriteString("\n")
	}

	for _, title := range c.order {
		items := grouped[title]
		if len(items) == 0 {
			continue
		}
		sb.WriteString(fmt.Sprintf("### %s\n\n", title))
		for _, commit := range items {
			sb.WriteString(formatItem(commit.Scope, commit.Subject))
		}
		sb.WriteString("\n")
	}

	return sb.String()
}

// RenderRelease renders release under its version and date.
func (c *Classifier) RenderRelease(release models.Release) string {
	return c.Render(release.Version, release.Date, release.Commits)
}

func formatItem(scope, description string) string {
	line := "- "

	if scope != "" {
		line += fmt.Sprintf("**%s**: ", scope)
	}

	line += description
	line += "\n"
	return line
}

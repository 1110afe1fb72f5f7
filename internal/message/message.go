package message

import (
	"strings"

	"github.com/Tomas-vilte/conventionalish/internal/domain/models"
)

// Assemble builds the commit message text from the collected answers:
// header, then body and footer separated by blank lines.
func Assemble(a models.CommitAnswers) string {
	var sb strings.Builder

	sb.WriteString(a.Prefix)
	if scope := strings.TrimSpace(a.Scope); scope != "" {
		sb.WriteString("(" + scope + ")")
	}
	if a.IsBreakingChange {
		sb.WriteString("!")
	}
	sb.WriteString(": ")
	sb.WriteString(strings.TrimSpace(a.Subject))

	if body := strings.TrimSpace(a.Body); body != "" {
		sb.WriteString("\n\n")
		sb.WriteString(body)
	}

	footer := strings.TrimSpace(a.Footer)
	if a.IsBreakingChange && footer != "" {
		sb.WriteString("\n\nBREAKING CHANGE: ")
		sb.WriteString(footer)
	} else if footer != "" {
		sb.WriteString("\n\n")
		sb.WriteString(footer)
	}

	return sb.String()
}

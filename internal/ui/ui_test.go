package ui

import (
	"bytes"
	"errors"
	"testing"

	"github.com/fatih/color"
	domainErrors "github.com/Tomas-vilte/conventionalish/internal/errors"
	"github.com/Tomas-vilte/conventionalish/internal/i18n"
	"github.com/stretchr/testify/assert"
)

func TestMain(m *testing.M) {
	color.NoColor = true
	m.Run()
}

func TestHandleAppError(t *testing.T) {
	t.Run("should print type, details, context and suggestion", func(t *testing.T) {
		// arrange
		var buf bytes.Buffer
		err := domainErrors.ErrDuplicateShortcut.
			WithContext("token", "feat").
			WithContext("shortcut", "f")

		// act
		HandleAppError(&buf, err, i18n.Default())

		// assert
		out := buf.String()
		assert.Contains(t, out, "✖ VALIDATION: shortcut is used by more than one commit type")
		assert.Contains(t, out, "   shortcut: f\n   token: feat\n")
		assert.Contains(t, out, "💡 Try: Pick a distinct shortcut for each commit type")
	})

	t.Run("should indent multi line suggestions", func(t *testing.T) {
		var buf bytes.Buffer

		HandleAppError(&buf, domainErrors.ErrHeaderMismatch)

		assert.Contains(t, buf.String(), "<type>(<scope>)!: <subject>\n       List allowed types")
	})

	t.Run("should print wrapped details", func(t *testing.T) {
		var buf bytes.Buffer

		HandleAppError(&buf, domainErrors.ErrConfigRead.WithError(errors.New("permission denied")))

		assert.Contains(t, buf.String(), "Details: permission denied")
	})

	t.Run("should fall back for plain errors", func(t *testing.T) {
		var buf bytes.Buffer

		HandleAppError(&buf, errors.New("boom"))

		assert.Equal(t, "✖ boom\n", buf.String())
	})

	t.Run("should ignore nil", func(t *testing.T) {
		var buf bytes.Buffer

		HandleAppError(&buf, nil)

		assert.Empty(t, buf.String())
	})
}

func TestPrintHelpers(t *testing.T) {
	var buf bytes.Buffer

	PrintSuccess(&buf, "done")
	PrintWarning(&buf, "careful")
	PrintInfo(&buf, "note")
	PrintKeyValue(&buf, "Bump", "minor")

	assert.Equal(t, "✔ done\n! careful\ni note\n   Bump: minor\n", buf.String())
}

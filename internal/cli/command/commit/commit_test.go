package commit

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Tomas-vilte/conventionalish/internal/cli/registry"
	domainErrors "github.com/Tomas-vilte/conventionalish/internal/errors"
	"github.com/Tomas-vilte/conventionalish/internal/i18n"
	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v3"
)

func runCommitTest(t *testing.T, stdin string, args ...string) (string, error) {
	color.NoColor = true
	trans := i18n.Default()
	out := &bytes.Buffer{}
	env := &registry.Env{Translations: trans, In: strings.NewReader(stdin), Out: out, Err: &bytes.Buffer{}}

	app := &cli.Command{
		Name:     "conventionalish",
		Commands: []*cli.Command{NewCommitCommandFactory().CreateCommand(trans, env)},
	}
	err := app.Run(context.Background(), append([]string{"conventionalish", "commit"}, args...))
	return out.String(), err
}

func TestCommitCommand(t *testing.T) {
	t.Run("should assemble a plain commit from shortcut answers", func(t *testing.T) {
		// arrange
		stdin := strings.Join([]string{"f", "cli", "add --json flag", "", "n"}, "\n") + "\n"

		// act
		out, err := runCommitTest(t, stdin)

		// assert
		require.NoError(t, err)
		assert.True(t, strings.HasSuffix(out, "feat(cli): add --json flag\n"), out)
		assert.NotContains(t, out, "Describe the breaking change")
	})

	t.Run("should ask the footer for breaking changes", func(t *testing.T) {
		stdin := strings.Join([]string{"refactor", "", "split registry", "moves types out", "y", "Registry.Add was removed"}, "\n")

		out, err := runCommitTest(t, stdin)

		require.NoError(t, err)
		assert.Contains(t, out, "Describe the breaking change")
		assert.True(t, strings.HasSuffix(out,
			"refactor!: split registry\n\nmoves types out\n\nBREAKING CHANGE: Registry.Add was removed\n"), out)
	})

	t.Run("should re-ask invalid choices and empty required answers", func(t *testing.T) {
		stdin := strings.Join([]string{"zzz", "fix", "", "", "handle nil", "", ""}, "\n") + "\n"

		out, err := runCommitTest(t, stdin)

		require.NoError(t, err)
		assert.Contains(t, out, "'zzz' is not one of the listed options")
		assert.Contains(t, out, "This answer is required")
		assert.True(t, strings.HasSuffix(out, "fix: handle nil\n"), out)
	})

	t.Run("should warn but accept long subjects", func(t *testing.T) {
		subject := strings.Repeat("a", 80)
		stdin := strings.Join([]string{"x", "", subject, "", "n"}, "\n") + "\n"

		out, err := runCommitTest(t, stdin)

		require.NoError(t, err)
		assert.Contains(t, out, "Keep it under 72 characters (80 used)")
		assert.True(t, strings.HasSuffix(out, "fix: "+subject+"\n"))
	})

	t.Run("should write the message to --file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "COMMIT_EDITMSG")
		stdin := strings.Join([]string{"d", "", "explain bumps", "", "n"}, "\n") + "\n"

		_, err := runCommitTest(t, stdin, "--file", path)

		require.NoError(t, err)
		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "docs: explain bumps\n", string(data))
	})

	t.Run("should fail when input ends early", func(t *testing.T) {
		_, err := runCommitTest(t, "feat\n")

		assert.ErrorIs(t, err, domainErrors.ErrInputClosed)
	})
}

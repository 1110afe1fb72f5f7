package questions

import (
	"testing"

	"github.com/Tomas-vilte/conventionalish/internal/domain/models"
	"github.com/Tomas-vilte/conventionalish/internal/i18n"
	"github.com/Tomas-vilte/conventionalish/internal/registry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestBuilder_Build(t *testing.T) {
	t.Run("should keep the fixed prompt order", func(t *testing.T) {
		// arrange
		b := NewBuilder(registry.Default())

		// act
		prompts := b.Build()

		// assert
		names := make([]string, len(prompts))
		for i, p := range prompts {
			names[i] = p.Name
		}
		assert.Equal(t, []string{"prefix", "scope", "subject", "body", "is_breaking_change", "footer"}, names)
		assert.Equal(t, models.PromptList, prompts[0].Kind)
		assert.Equal(t, models.PromptConfirm, prompts[4].Kind)
		assert.Equal(t, false, prompts[4].Default)
		assert.Equal(t, 72, prompts[2].MaxLength)
		assert.True(t, prompts[3].Multiline)
		assert.Equal(t, NameIsBreakingChange, prompts[5].DependsOn)
	})

	t.Run("should list choices in registry order", func(t *testing.T) {
		reg := registry.Default()
		prompts := NewBuilder(reg).Build()

		choices := prompts[0].Choices
		require.Len(t, choices, reg.Len())
		for i, def := range reg.Entries() {
			assert.Equal(t, def.Token, choices[i].Value)
			assert.Equal(t, def.Label, choices[i].Name)
			assert.Equal(t, def.Shortcut, choices[i].Key)
		}
	})

	t.Run("should use the given max length and translations", func(t *testing.T) {
		trans, err := i18n.NewTranslations("es", "")
		require.NoError(t, err)

		prompts := NewBuilder(registry.Default(), WithMaxLength(50), WithTranslations(trans)).Build()

		assert.Equal(t, 50, prompts[2].MaxLength)
		assert.Equal(t, "Seleccioná el tipo de cambio que estás commiteando", prompts[0].Message)
	})

	t.Run("later prompts do not depend on the registry", func(t *testing.T) {
		custom, err := registry.Build([]models.CommitTypeDefinition{{Token: "chore", Label: "Chores"}})
		require.NoError(t, err)

		a := NewBuilder(custom).Build()
		b := NewBuilder(registry.Default()).Build()

		assert.Equal(t, a[1:], b[1:])
	})
}

func TestResolveChoice(t *testing.T) {
	prompt := NewBuilder(registry.Default()).Build()[0]

	tests := []struct {
		name     string
		input    string
		expected string
		ok       bool
	}{
		{name: "shortcut", input: "f", expected: "feat", ok: true},
		{name: "shortcut x is fix", input: "x", expected: "fix", ok: true},
		{name: "full label", input: "Documentation only changes", expected: "docs", ok: true},
		{name: "token", input: "perf", expected: "perf", ok: true},
		{name: "surrounding spaces", input: "  r ", expected: "refactor", ok: true},
		{name: "unknown", input: "chore", ok: false},
		{name: "empty", input: "", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ResolveChoice(prompt, tt.input)

			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestResolveChoice_ShortcutMatchesLabel(t *testing.T) {
	reg := registry.Default()
	prompt := NewBuilder(reg).Build()[0]
	entries := reg.Entries()

	rapid.Check(t, func(rt *rapid.T) {
		def := rapid.SampledFrom(entries).Draw(rt, "entry")

		byKey, okKey := ResolveChoice(prompt, def.Shortcut)
		byLabel, okLabel := ResolveChoice(prompt, def.Label)

		assert.True(rt, okKey)
		assert.True(rt, okLabel)
		assert.Equal(rt, byLabel, byKey)
		assert.Equal(rt, def.Token, byKey)
	})
}

func TestValidate(t *testing.T) {
	prompts := NewBuilder(registry.Default(), WithMaxLength(10)).Build()
	scope, subject, footer := prompts[1], prompts[2], prompts[5]

	assert.Equal(t, ProblemNone, Validate(scope, "", nil))
	assert.Equal(t, ProblemRequired, Validate(subject, "   ", nil))
	assert.Equal(t, ProblemTooLong, Validate(subject, "this subject is too long", nil))
	assert.Equal(t, ProblemNone, Validate(subject, "short", nil))

	t.Run("footer is required only for breaking changes", func(t *testing.T) {
		assert.Equal(t, ProblemNone, Validate(footer, "", map[string]bool{NameIsBreakingChange: false}))
		assert.Equal(t, ProblemRequired, Validate(footer, "", map[string]bool{NameIsBreakingChange: true}))
		assert.False(t, ShouldAsk(footer, nil))
		assert.True(t, ShouldAsk(footer, map[string]bool{NameIsBreakingChange: true}))
	})
}

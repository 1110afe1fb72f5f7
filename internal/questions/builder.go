package questions

import (
	"strings"

	"github.com/Tomas-vilte/conventionalish/internal/domain/models"
	"github.com/Tomas-vilte/conventionalish/internal/i18n"
	"github.com/Tomas-vilte/conventionalish/internal/registry"
)

// Prompt names, also the keys of the collected answers.
const (
	NamePrefix           = "prefix"
	NameScope            = "scope"
	NameSubject          = "subject"
	NameBody             = "body"
	NameIsBreakingChange = "is_breaking_change"
	NameFooter           = "footer"
)

const defaultMaxLength = 72

type Option func(*Builder)

// WithMaxLength sets the advisory subject length.
func WithMaxLength(n int) Option {
	return func(b *Builder) {
		if n > 0 {
			b.maxLength = n
		}
	}
}

func WithTranslations(t *i18n.Translations) Option {
	return func(b *Builder) {
		if t != nil {
			b.trans = t
		}
	}
}

// Builder projects a registry into the commit authoring questions. It does
// no I/O; rendering belongs to the caller.
type Builder struct {
	reg       *registry.Registry
	maxLength int
	trans     *i18n.Translations
}

func NewBuilder(reg *registry.Registry, opts ...Option) *Builder {
	b := &Builder{
		reg:       reg,
		maxLength: defaultMaxLength,
	}
	for _, opt := range opts {
		opt(b)
	}
	if b.trans == nil {
		b.trans = i18n.Default()
	}
	return b
}

// Build returns the prompts in asking order. Only the first one depends on
// the registry.
func (b *Builder) Build() []models.Prompt {
	entries := b.reg.Entries()
	choices := make([]models.Choice, len(entries))
	for i, def := range entries {
		choices[i] = models.Choice{Value: def.Token, Name: def.Label, Key: def.Shortcut}
	}

	return []models.Prompt{
		{
			Kind:     models.PromptList,
			Name:     NamePrefix,
			Message:  b.msg("question_prefix"),
			Choices:  choices,
			Required: true,
		},
		{
			Kind:    models.PromptInput,
			Name:    NameScope,
			Message: b.msg("question_scope"),
		},
		{
			Kind:      models.PromptInput,
			Name:      NameSubject,
			Message:   b.msg("question_subject"),
			Required:  true,
			MaxLength: b.maxLength,
		},
		{
			Kind:      models.PromptInput,
			Name:      NameBody,
			Message:   b.msg("question_body"),
			Multiline: true,
		},
		{
			Kind:    models.PromptConfirm,
			Name:    NameIsBreakingChange,
			Message: b.msg("question_is_breaking_change"),
			Default: false,
		},
		{
			Kind:      models.PromptInput,
			Name:      NameFooter,
			Message:   b.msg("question_footer"),
			Required:  true,
			DependsOn: NameIsBreakingChange,
		},
	}
}

func (b *Builder) msg(id string) string {
	return b.trans.GetMessage(id, 0, nil)
}

// ResolveChoice maps input to a choice value. A shortcut key, the full
// displayed name and the value itself all resolve to the same choice.
func ResolveChoice(p models.Prompt, input string) (string, bool) {
	input = strings.TrimSpace(input)
	if input == "" {
		return "", false
	}
	for _, c := range p.Choices {
		if c.Key != "" && c.Key == input {
			return c.Value, true
		}
	}
	for _, c := range p.Choices {
		if c.Name == input || c.Value == input {
			return c.Value, true
		}
	}
	return "", false
}

// IsRequired reports whether p must be answered given the confirm answers
// collected so far.
func IsRequired(p models.Prompt, confirmed map[string]bool) bool {
	if !p.Required {
		return false
	}
	if p.DependsOn == "" {
		return true
	}
	return confirmed[p.DependsOn]
}

// ShouldAsk reports whether a prompt applies. Dependent prompts are skipped
// while their confirm prompt is false.
func ShouldAsk(p models.Prompt, confirmed map[string]bool) bool {
	return p.DependsOn == "" || confirmed[p.DependsOn]
}

// Problem is the outcome of checking a free-text answer.
type Problem int

const (
	ProblemNone Problem = iota
	ProblemRequired
	// ProblemTooLong is advisory; the answer may still be used.
	ProblemTooLong
)

func Validate(p models.Prompt, answer string, confirmed map[string]bool) Problem {
	answer = strings.TrimSpace(answer)
	if answer == "" && IsRequired(p, confirmed) {
		return ProblemRequired
	}
	if p.MaxLength > 0 && len([]rune(answer)) > p.MaxLength {
		return ProblemTooLong
	}
	return ProblemNone
}

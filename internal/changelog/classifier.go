package changelog

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/Tomas-vilte/conventionalish/internal/domain/models"
	"github.com/Tomas-vilte/conventionalish/internal/registry"
)

// BreakingSection heads the list of breaking changes of a release.
const BreakingSection = "BREAKING CHANGE"

type Option func(*options)

type options struct {
	allow  map[string]bool
	titles map[string]string
}

// WithAllowList includes types that carry no bump level.
func WithAllowList(tokens ...string) Option {
	return func(o *options) {
		for _, tok := range tokens {
			o.allow[tok] = true
		}
	}
}

// WithTitles overrides the section title of the given tokens.
func WithTitles(titles map[string]string) Option {
	return func(o *options) {
		for tok, title := range titles {
			o.titles[tok] = title
		}
	}
}

// Classifier maps commit types to changelog section titles. The table is
// built once from the registry snapshot.
type Classifier struct {
	sections map[string]string
	order    []string
}

func New(reg *registry.Registry, opts ...Option) *Classifier {
	o := &options{
		allow:  make(map[string]bool),
		titles: make(map[string]string),
	}
	for _, opt := range opts {
		opt(o)
	}

	c := &Classifier{sections: make(map[string]string)}
	seen := make(map[string]bool)
	for _, def := range reg.Entries() {
		if def.Bump == models.NoBump && !o.allow[def.Token] {
			continue
		}
		title, ok := o.titles[def.Token]
		if !ok || title == "" {
			title = defaultTitle(def.Token)
		}
		c.sections[def.Token] = title
		if !seen[title] {
			seen[title] = true
			c.order = append(c.order, title)
		}
	}
	return c
}

// SectionFor returns the section title for token, or false when commits of
// that type are left out of the changelog.
func (c *Classifier) SectionFor(token string) (string, bool) {
	title, ok := c.sections[token]
	return title, ok
}

// Sections returns the distinct titles in registry order.
func (c *Classifier) Sections() []string {
	out := make([]string, len(c.order))
	copy(out, c.order)
	return out
}

// Table returns a copy of the token to title mapping.
func (c *Classifier) Table() map[string]string {
	out := make(map[string]string, len(c.sections))
	for k, v := range c.sections {
		out[k] = v
	}
	return out
}

func defaultTitle(token string) string {
	r, size := utf8.DecodeRuneInString(token)
	if r == utf8.RuneError {
		return token
	}
	return string(unicode.ToUpper(r)) + strings.ToLower(token[size:])
}

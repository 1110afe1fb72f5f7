package registry

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/Tomas-vilte/conventionalish/internal/domain/models"
	domainErrors "github.com/Tomas-vilte/conventionalish/internal/errors"
)

// reservedTokenChars would break the header grammar if used inside a token.
const reservedTokenChars = "()!:"

// Registry is the ordered, immutable list of commit types every derived view
// is projected from.
type Registry struct {
	entries []models.CommitTypeDefinition
	index   map[string]int
}

// Build validates entries and returns a registry that keeps their order. The
// slice is copied, so later changes by the caller are not observed.
func Build(entries []models.CommitTypeDefinition) (*Registry, error) {
	r := &Registry{
		entries: make([]models.CommitTypeDefinition, len(entries)),
		index:   make(map[string]int, len(entries)),
	}
	copy(r.entries, entries)

	shortcuts := make(map[string]string, len(entries))
	for i, entry := range r.entries {
		if entry.Token == "" {
			return nil, domainErrors.ErrEmptyToken.WithContext("index", i)
		}
		if strings.ContainsAny(entry.Token, reservedTokenChars) || strings.IndexFunc(entry.Token, unicode.IsSpace) >= 0 {
			return nil, domainErrors.ErrInvalidToken.WithContext("token", entry.Token)
		}
		if _, exists := r.index[entry.Token]; exists {
			return nil, domainErrors.ErrDuplicateToken.WithContext("token", entry.Token)
		}
		r.index[entry.Token] = i

		if entry.Shortcut == "" {
			continue
		}
		if utf8.RuneCountInString(entry.Shortcut) != 1 {
			return nil, domainErrors.ErrInvalidShortcut.
				WithContext("token", entry.Token).
				WithContext("shortcut", entry.Shortcut)
		}
		if owner, taken := shortcuts[entry.Shortcut]; taken {
			return nil, domainErrors.ErrDuplicateShortcut.
				WithContext("token", entry.Token).
				WithContext("shortcut", entry.Shortcut).
				WithContext("owner", owner)
		}
		shortcuts[entry.Shortcut] = entry.Token
	}

	return r, nil
}

// Entries returns a copy of the definitions in declaration order.
func (r *Registry) Entries() []models.CommitTypeDefinition {
	out := make([]models.CommitTypeDefinition, len(r.entries))
	copy(out, r.entries)
	return out
}

// Tokens returns the type tokens in declaration order.
func (r *Registry) Tokens() []string {
	tokens := make([]string, len(r.entries))
	for i, entry := range r.entries {
		tokens[i] = entry.Token
	}
	return tokens
}

func (r *Registry) Len() int {
	return len(r.entries)
}

// Lookup finds a definition by token.
func (r *Registry) Lookup(token string) (models.CommitTypeDefinition, bool) {
	i, ok := r.index[token]
	if !ok {
		return models.CommitTypeDefinition{}, false
	}
	return r.entries[i], true
}

package convention

import (
	"context"

	"github.com/Tomas-vilte/conventionalish/internal/config"
	"github.com/Tomas-vilte/conventionalish/internal/i18n"
)

// FromConfig builds the convention described by cfg. A nil cfg means the
// defaults. trans may be nil.
func FromConfig(ctx context.Context, cfg *config.Config, trans *i18n.Translations) (*Convention, error) {
	if cfg == nil {
		return New(ctx, nil, Options{Translations: trans})
	}

	entries, err := cfg.CommitTypes()
	if err != nil {
		return nil, err
	}

	return New(ctx, entries, Options{
		MaxLength:       cfg.MaxLength,
		ChangelogAllow:  cfg.ChangelogAllow,
		ChangelogTitles: cfg.ChangelogTitles,
		Translations:    trans,
	})
}

package convention

import (
	"context"
	"strings"

	"github.com/Tomas-vilte/conventionalish/internal/bump"
	"github.com/Tomas-vilte/conventionalish/internal/changelog"
	"github.com/Tomas-vilte/conventionalish/internal/domain/models"
	"github.com/Tomas-vilte/conventionalish/internal/i18n"
	"github.com/Tomas-vilte/conventionalish/internal/logger"
	"github.com/Tomas-vilte/conventionalish/internal/questions"
	"github.com/Tomas-vilte/conventionalish/internal/registry"
	"github.com/Tomas-vilte/conventionalish/internal/schema"
	"golang.org/x/sync/errgroup"
)

// Options tune the derived views without touching the type list.
type Options struct {
	MaxLength       int
	ChangelogAllow  []string
	ChangelogTitles map[string]string
	Translations    *i18n.Translations
}

// Convention bundles a registry with every view derived from it. Build one
// per invocation; nothing in it is mutated after New returns.
type Convention struct {
	Registry  *registry.Registry
	Questions []models.Prompt
	Schema    *schema.Validator
	Bump      *bump.Resolver
	Changelog *changelog.Classifier
}

// New validates entries as a total replacement of the type list and derives
// the views concurrently. Nil entries means the defaults.
func New(ctx context.Context, entries []models.CommitTypeDefinition, opts Options) (*Convention, error) {
	log := logger.FromContext(ctx)

	if entries == nil {
		entries = registry.DefaultEntries()
	}

	reg, err := registry.Build(entries)
	if err != nil {
		log.Debug("registry rejected", "error", err)
		return nil, err
	}
	log.Debug("registry built", "count", reg.Len())

	c := &Convention{Registry: reg}

	var g errgroup.Group
	g.Go(func() error {
		c.Questions = questions.NewBuilder(reg,
			questions.WithMaxLength(opts.MaxLength),
			questions.WithTranslations(opts.Translations),
		).Build()
		return nil
	})
	g.Go(func() error {
		c.Schema = schema.New(reg)
		return nil
	})
	g.Go(func() error {
		c.Bump = bump.New(reg)
		return nil
	})
	g.Go(func() error {
		c.Changelog = changelog.New(reg,
			changelog.WithAllowList(opts.ChangelogAllow...),
			changelog.WithTitles(opts.ChangelogTitles),
		)
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	log.Debug("convention derived", "pattern", c.Schema.Pattern())
	return c, nil
}

// Default is the convention built from the default entries.
func Default(ctx context.Context) *Convention {
	c, err := New(ctx, nil, Options{})
	if err != nil {
		panic("convention: invalid default entries: " + err.Error())
	}
	return c
}

// ParseAll splits messages into parsed commits and the headers that missed
// the schema.
func (c *Convention) ParseAll(messages []string) ([]models.ConventionalCommit, []string) {
	var commits []models.ConventionalCommit
	var skipped []string
	for _, msg := range messages {
		if commit, ok := c.Schema.ParseMessage(msg); ok {
			commits = append(commits, commit)
			continue
		}
		skipped = append(skipped, firstLine(msg))
	}
	return commits, skipped
}

// Analyze parses messages into a release. The next version is computed from
// the combined bump only when current is set.
func (c *Convention) Analyze(messages []string, current string) (models.Release, error) {
	commits, skipped := c.ParseAll(messages)
	release := models.Release{
		PreviousVersion: current,
		Bump:            c.Bump.ResolveAll(commits),
		Commits:         commits,
		Skipped:         skipped,
	}
	if current == "" {
		return release, nil
	}

	next, err := bump.NextVersion(current, release.Bump)
	if err != nil {
		return models.Release{}, err
	}
	release.Version = next
	return release, nil
}

func firstLine(msg string) string {
	msg = strings.TrimLeft(strings.ReplaceAll(msg, "\r\n", "\n"), "\n")
	header, _, _ := strings.Cut(msg, "\n")
	return header
}

package changelog

import (
	"context"
	"fmt"
	"time"

	"github.com/Tomas-vilte/conventionalish/internal/cli/input"
	"github.com/Tomas-vilte/conventionalish/internal/cli/registry"
	domainErrors "github.com/Tomas-vilte/conventionalish/internal/errors"
	"github.com/Tomas-vilte/conventionalish/internal/i18n"
	"github.com/Tomas-vilte/conventionalish/internal/logger"
	"github.com/urfave/cli/v3"
)

const (
	flagVersion = "version"
	flagDate    = "date"
	flagCurrent = "current"

	unreleased = "Unreleased"
	dateLayout = "2006-01-02"
)

type ChangelogCommandFactory struct {
	now func() time.Time
}

func NewChangelogCommandFactory() *ChangelogCommandFactory {
	return &ChangelogCommandFactory{now: time.Now}
}

func (f *ChangelogCommandFactory) CreateCommand(t *i18n.Translations, env *registry.Env) *cli.Command {
	return &cli.Command{
		Name:    "changelog",
		Aliases: []string{"ch"},
		Usage:   t.GetMessage("changelog_usage", 0, nil),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  flagVersion,
				Usage: t.GetMessage("changelog_flag_version_usage", 0, nil),
			},
			&cli.StringFlag{
				Name:  flagDate,
				Usage: t.GetMessage("changelog_flag_date_usage", 0, nil),
			},
			&cli.StringFlag{
				Name:  flagCurrent,
				Usage: t.GetMessage("bump_flag_current_usage", 0, nil),
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			ctx, session, err := env.Load(ctx, cmd)
			if err != nil {
				return err
			}
			conv := session.Convention

			messages, err := input.ReadMessages(env.In)
			if err != nil {
				return err
			}
			release, err := conv.Analyze(messages, cmd.String(flagCurrent))
			if err != nil {
				return err
			}
			logger.Debug(ctx, "changelog input", "count", len(release.Commits), "skipped", len(release.Skipped))

			if version := cmd.String(flagVersion); version != "" {
				release.Version = version
			}

			if raw := cmd.String(flagDate); raw != "" {
				release.Date, err = time.Parse(dateLayout, raw)
				if err != nil {
					return domainErrors.NewAppError(domainErrors.TypeValidation,
						session.Translations.GetMessage("changelog_invalid_date", 0, map[string]interface{}{"Date": raw}), err)
				}
			} else if release.Version != "" {
				release.Date = f.now()
			}
			if release.Version == "" {
				release.Version = unreleased
			}

			_, err = fmt.Fprint(env.Out, conv.Changelog.RenderRelease(release))
			return err
		},
	}
}

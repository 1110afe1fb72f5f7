package bump

import (
	"context"
	"fmt"

	domainBump "github.com/Tomas-vilte/conventionalish/internal/bump"
	"github.com/Tomas-vilte/conventionalish/internal/cli/input"
	"github.com/Tomas-vilte/conventionalish/internal/cli/registry"
	"github.com/Tomas-vilte/conventionalish/internal/i18n"
	"github.com/Tomas-vilte/conventionalish/internal/logger"
	"github.com/Tomas-vilte/conventionalish/internal/ui"
	"github.com/urfave/cli/v3"
)

const flagCurrent = "current"

type BumpCommandFactory struct{}

func NewBumpCommandFactory() *BumpCommandFactory {
	return &BumpCommandFactory{}
}

func (f *BumpCommandFactory) CreateCommand(t *i18n.Translations, env *registry.Env) *cli.Command {
	return &cli.Command{
		Name:  "bump",
		Usage: t.GetMessage("bump_usage", 0, nil),
		Flags: []cli.Flag{
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
			trans := session.Translations

			current := cmd.String(flagCurrent)
			if current != "" {
				if err := domainBump.ValidateVersion(current); err != nil {
					return err
				}
			}

			messages, err := input.ReadMessages(env.In)
			if err != nil {
				return err
			}

			release, err := session.Convention.Analyze(messages, current)
			if err != nil {
				return err
			}
			logger.Info(ctx, "bump resolved", "bump", release.Bump, "count", len(release.Commits), "skipped", len(release.Skipped))
			for _, header := range release.Skipped {
				logger.Debug(ctx, "header skipped", "header", header)
			}

			if len(release.Skipped) > 0 {
				ui.PrintWarning(env.Err, trans.GetMessage("bump_skipped", len(release.Skipped), map[string]interface{}{
					"Count": len(release.Skipped),
				}))
			}
			_, _ = fmt.Fprintln(env.Out, trans.GetMessage("bump_result", 0, map[string]interface{}{
				"Bump": release.Bump.String(),
			}))

			if current == "" {
				return nil
			}
			_, _ = fmt.Fprintln(env.Out, trans.GetMessage("bump_next_version", 0, map[string]interface{}{
				"Version": release.Version,
			}))
			return nil
		},
	}
}

package check

import (
	"context"
	"os"
	"strings"

	"github.com/Tomas-vilte/conventionalish/internal/cli/input"
	"github.com/Tomas-vilte/conventionalish/internal/cli/registry"
	domainErrors "github.com/Tomas-vilte/conventionalish/internal/errors"
	"github.com/Tomas-vilte/conventionalish/internal/i18n"
	"github.com/Tomas-vilte/conventionalish/internal/logger"
	"github.com/Tomas-vilte/conventionalish/internal/ui"
	"github.com/urfave/cli/v3"
)

const (
	flagFile         = "file"
	flagAllowUnknown = "allow-unknown"
)

type CheckCommandFactory struct{}

func NewCheckCommandFactory() *CheckCommandFactory {
	return &CheckCommandFactory{}
}

func (f *CheckCommandFactory) CreateCommand(t *i18n.Translations, env *registry.Env) *cli.Command {
	return &cli.Command{
		Name:      "check",
		Usage:     t.GetMessage("check_usage", 0, nil),
		ArgsUsage: "[message]",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    flagFile,
				Aliases: []string{"f"},
				Usage:   t.GetMessage("check_flag_file_usage", 0, nil),
			},
			&cli.BoolFlag{
				Name:  flagAllowUnknown,
				Usage: t.GetMessage("check_flag_allow_unknown_usage", 0, nil),
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			ctx, session, err := env.Load(ctx, cmd)
			if err != nil {
				return err
			}

			msg, err := readMessage(env, cmd)
			if err != nil {
				return err
			}
			if msg == "" {
				return domainErrors.ErrEmptyMessage
			}

			commit, ok := session.Convention.Schema.ParseMessage(msg)
			if ok {
				logger.Debug(ctx, "header matched", "type", commit.Type, "breaking", commit.Breaking)
				ui.PrintSuccess(env.Out, session.Translations.GetMessage("check_valid", 0, map[string]interface{}{
					"Type": commit.Type,
				}))
				return nil
			}

			header, _, _ := strings.Cut(msg, "\n")
			if cmd.Bool(flagAllowUnknown) {
				ui.PrintWarning(env.Out, session.Translations.GetMessage("check_invalid_allowed", 0, map[string]interface{}{
					"Header": header,
				}))
				return nil
			}
			return domainErrors.ErrHeaderMismatch.WithContext("header", header)
		},
	}
}

// readMessage takes the message from --file, then the arguments, then stdin.
func readMessage(env *registry.Env, cmd *cli.Command) (string, error) {
	if path := cmd.String(flagFile); path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return "", domainErrors.NewAppError(domainErrors.TypeParse, "failed to read commit message file", err).
				WithContext("path", path)
		}
		return input.StripComments(string(data)), nil
	}

	if cmd.NArg() > 0 {
		return strings.TrimSpace(strings.Join(cmd.Args().Slice(), " ")), nil
	}

	messages, err := input.ReadMessages(env.In)
	if err != nil {
		return "", err
	}
	return strings.Join(messages, "\n"), nil
}

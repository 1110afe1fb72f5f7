package questions

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"strings"

	"github.com/Tomas-vilte/conventionalish/internal/cli/registry"
	"github.com/Tomas-vilte/conventionalish/internal/domain/models"
	domainErrors "github.com/Tomas-vilte/conventionalish/internal/errors"
	"github.com/Tomas-vilte/conventionalish/internal/i18n"
	"github.com/urfave/cli/v3"
	"gopkg.in/yaml.v3"
)

const flagFormat = "format"

type QuestionsCommandFactory struct{}

func NewQuestionsCommandFactory() *QuestionsCommandFactory {
	return &QuestionsCommandFactory{}
}

func (f *QuestionsCommandFactory) CreateCommand(t *i18n.Translations, env *registry.Env) *cli.Command {
	return &cli.Command{
		Name:    "questions",
		Aliases: []string{"q"},
		Usage:   t.GetMessage("questions_usage", 0, nil),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  flagFormat,
				Value: "json",
				Usage: t.GetMessage("questions_flag_format_usage", 0, nil),
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			_, session, err := env.Load(ctx, cmd)
			if err != nil {
				return err
			}

			format := strings.ToLower(cmd.String(flagFormat))
			if err := encode(env.Out, format, session.Convention.Questions); err != nil {
				if errors.Is(err, errUnknownFormat) {
					return domainErrors.NewAppError(domainErrors.TypeValidation,
						session.Translations.GetMessage("questions_invalid_format", 0, map[string]interface{}{
							"Format": format,
						}), nil)
				}
				return err
			}
			return nil
		},
	}
}

var errUnknownFormat = domainErrors.NewAppError(domainErrors.TypeValidation, "unknown output format", nil)

func encode(w io.Writer, format string, prompts []models.Prompt) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(prompts)
	case "yaml", "yml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(prompts); err != nil {
			return err
		}
		return enc.Close()
	default:
		return errUnknownFormat
	}
}

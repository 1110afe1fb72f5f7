package config

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/Tomas-vilte/conventionalish/internal/cli/registry"
	cfg "github.com/Tomas-vilte/conventionalish/internal/config"
	domainErrors "github.com/Tomas-vilte/conventionalish/internal/errors"
	"github.com/Tomas-vilte/conventionalish/internal/i18n"
	"github.com/Tomas-vilte/conventionalish/internal/ui"
	"github.com/urfave/cli/v3"
)

type ConfigCommandFactory struct{}

func NewConfigCommandFactory() *ConfigCommandFactory {
	return &ConfigCommandFactory{}
}

func (c *ConfigCommandFactory) CreateCommand(t *i18n.Translations, env *registry.Env) *cli.Command {
	return &cli.Command{
		Name:  "config",
		Usage: t.GetMessage("config_usage", 0, nil),
		Commands: []*cli.Command{
			c.newShowCommand(t, env),
			c.newSetLangCommand(t, env),
		},
	}
}

func (c *ConfigCommandFactory) newShowCommand(t *i18n.Translations, env *registry.Env) *cli.Command {
	return &cli.Command{
		Name:  "show",
		Usage: t.GetMessage("config_show_usage", 0, nil),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			_, session, err := env.Load(ctx, cmd)
			if err != nil {
				return err
			}
			trans := session.Translations
			conf := session.Config
			if conf == nil {
				return domainErrors.ErrConfigRead.WithError(fmt.Errorf("no configuration loaded"))
			}

			ui.PrintSectionBanner(env.Out, trans.GetMessage("config_current", 0, nil))
			ui.PrintKeyValue(env.Out, trans.GetMessage("config_path_label", 0, nil), conf.PathFile)
			ui.PrintKeyValue(env.Out, trans.GetMessage("config_language_label", 0, nil), conf.Language)
			ui.PrintKeyValue(env.Out, trans.GetMessage("config_max_length_label", 0, nil), fmt.Sprint(conf.MaxLength))

			types := trans.GetMessage("config_types_default", 0, nil)
			if conf.Types != nil {
				types = trans.GetMessage("config_types_custom", len(conf.Types), map[string]interface{}{
					"Count": len(conf.Types),
				})
			}
			ui.PrintKeyValue(env.Out, trans.GetMessage("config_types_label", 0, nil), types)
			return nil
		},
	}
}

func (c *ConfigCommandFactory) newSetLangCommand(t *i18n.Translations, env *registry.Env) *cli.Command {
	return &cli.Command{
		Name:  "set-lang",
		Usage: t.GetMessage("config_set_lang_usage", 0, nil),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "lang",
				Aliases:  []string{"l"},
				Usage:    t.GetMessage("config_set_lang_flag_usage", 0, nil),
				Required: true,
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			_, session, err := env.Load(ctx, cmd)
			if err != nil {
				return err
			}
			conf := session.Config
			if conf == nil {
				return domainErrors.ErrConfigRead.WithError(fmt.Errorf("no configuration loaded"))
			}

			lang := cmd.String("lang")
			supported := session.Translations.Languages()
			if !slices.Contains(supported, lang) {
				return domainErrors.ErrConfigInvalid.
					WithError(fmt.Errorf("language '%s' not supported", lang)).
					WithContext("language", lang).
					WithContext("supported", strings.Join(supported, ", "))
			}

			updated := *conf
			updated.Language = lang
			if err := cfg.SaveConfig(&updated); err != nil {
				return err
			}
			*conf = updated

			trans, err := i18n.NewTranslations(lang, "")
			if err != nil {
				return err
			}
			ui.PrintSuccess(env.Out, trans.GetMessage("config_language_configured", 0, map[string]interface{}{
				"Lang": lang,
			}))
			return nil
		},
	}
}

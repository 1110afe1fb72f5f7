package schema

import (
	"context"
	"io"

	"github.com/Tomas-vilte/conventionalish/internal/cli/registry"
	"github.com/Tomas-vilte/conventionalish/internal/convention"
	"github.com/Tomas-vilte/conventionalish/internal/i18n"
	domainSchema "github.com/Tomas-vilte/conventionalish/internal/schema"
	"github.com/Tomas-vilte/conventionalish/internal/ui"
	"github.com/urfave/cli/v3"
)

type SchemaCommandFactory struct{}

func NewSchemaCommandFactory() *SchemaCommandFactory {
	return &SchemaCommandFactory{}
}

func (f *SchemaCommandFactory) CreateCommand(t *i18n.Translations, env *registry.Env) *cli.Command {
	return &cli.Command{
		Name:  "schema",
		Usage: t.GetMessage("schema_usage", 0, nil),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			_, session, err := env.Load(ctx, cmd)
			if err != nil {
				return err
			}
			printSchema(env.Out, session.Convention, session.Translations)
			return nil
		},
	}
}

func printSchema(w io.Writer, conv *convention.Convention, t *i18n.Translations) {
	ui.PrintSectionBanner(w, conv.Schema.Schema())
	ui.PrintKeyValue(w, t.GetMessage("schema_example", 0, nil), conv.Schema.Example())
	ui.PrintKeyValue(w, t.GetMessage("schema_header_pattern", 0, nil), conv.Schema.Pattern())
	ui.PrintKeyValue(w, t.GetMessage("schema_bump_pattern", 0, nil), conv.Schema.BumpPattern())
	ui.PrintKeyValue(w, t.GetMessage("schema_footer_pattern", 0, nil), domainSchema.BreakingFooterPattern())
}

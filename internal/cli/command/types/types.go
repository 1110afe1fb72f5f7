package types

import (
	"context"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/Tomas-vilte/conventionalish/internal/cli/registry"
	"github.com/Tomas-vilte/conventionalish/internal/convention"
	"github.com/Tomas-vilte/conventionalish/internal/i18n"
	"github.com/Tomas-vilte/conventionalish/internal/ui"
	"github.com/urfave/cli/v3"
)

type TypesCommandFactory struct{}

func NewTypesCommandFactory() *TypesCommandFactory {
	return &TypesCommandFactory{}
}

func (f *TypesCommandFactory) CreateCommand(t *i18n.Translations, env *registry.Env) *cli.Command {
	return &cli.Command{
		Name:    "types",
		Aliases: []string{"t"},
		Usage:   t.GetMessage("types_usage", 0, nil),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			_, session, err := env.Load(ctx, cmd)
			if err != nil {
				return err
			}
			return printTypes(env.Out, session.Convention, session.Translations)
		},
	}
}

func printTypes(w io.Writer, conv *convention.Convention, t *i18n.Translations) error {
	ui.PrintSectionBanner(w, t.GetMessage("types_header", 0, nil))

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	_, _ = fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n",
		t.GetMessage("types_col_token", 0, nil),
		t.GetMessage("types_col_shortcut", 0, nil),
		t.GetMessage("types_col_bump", 0, nil),
		t.GetMessage("types_col_section", 0, nil),
		t.GetMessage("types_col_label", 0, nil),
	)

	for _, def := range conv.Registry.Entries() {
		section, ok := conv.Changelog.SectionFor(def.Token)
		if !ok {
			section = t.GetMessage("types_no_section", 0, nil)
		}
		shortcut := def.Shortcut
		if shortcut == "" {
			shortcut = "-"
		}
		_, _ = fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n",
			def.Token, shortcut, conv.Bump.Resolve(def.Token, false), section, def.Label)
	}

	return tw.Flush()
}

package registry

import (
	"fmt"

	"github.com/Tomas-vilte/conventionalish/internal/i18n"
	"github.com/urfave/cli/v3"
)

type CommandFactory interface {
	CreateCommand(t *i18n.Translations, env *Env) *cli.Command
}

// Registry keeps command factories in registration order.
type Registry struct {
	factories map[string]CommandFactory
	order     []string
	env       *Env
	t         *i18n.Translations
}

func NewRegistry(env *Env, t *i18n.Translations) *Registry {
	return &Registry{
		factories: make(map[string]CommandFactory),
		env:       env,
		t:         t,
	}
}

func (r *Registry) Register(name string, factory CommandFactory) error {
	if _, exists := r.factories[name]; exists {
		return fmt.Errorf("%s", r.t.GetMessage("factory_already_registered", 0, map[string]interface{}{
			"FactoryName": name,
		}))
	}
	r.factories[name] = factory
	r.order = append(r.order, name)
	return nil
}

func (r *Registry) CreateCommands() []*cli.Command {
	commands := make([]*cli.Command, 0, len(r.factories))
	for _, name := range r.order {
		commands = append(commands, r.factories[name].CreateCommand(r.t, r.env))
	}
	return commands
}

// GlobalFlags are declared on the root command. Env.Load reads them from any
// subcommand.
func GlobalFlags(t *i18n.Translations) []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    FlagConfig,
			Aliases: []string{"c"},
			Usage:   t.GetMessage("flag_config_usage", 0, nil),
		},
		&cli.BoolFlag{
			Name:  FlagDebug,
			Usage: t.GetMessage("flag_debug_usage", 0, nil),
		},
		&cli.BoolFlag{
			Name:  FlagVerbose,
			Usage: t.GetMessage("flag_verbose_usage", 0, nil),
		},
	}
}

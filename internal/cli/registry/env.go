package registry

import (
	"context"
	"io"
	"os"

	cfg "github.com/Tomas-vilte/conventionalish/internal/config"
	"github.com/Tomas-vilte/conventionalish/internal/convention"
	"github.com/Tomas-vilte/conventionalish/internal/i18n"
	"github.com/Tomas-vilte/conventionalish/internal/logger"
	"github.com/urfave/cli/v3"
)

const (
	FlagConfig  = "config"
	FlagDebug   = "debug"
	FlagVerbose = "verbose"
)

// Env is shared by every command: the startup configuration, its
// translations and the process streams.
type Env struct {
	Config       *cfg.Config
	Translations *i18n.Translations
	In           io.Reader
	Out          io.Writer
	Err          io.Writer
}

func NewEnv(config *cfg.Config, t *i18n.Translations) *Env {
	return &Env{
		Config:       config,
		Translations: t,
		In:           os.Stdin,
		Out:          os.Stdout,
		Err:          os.Stderr,
	}
}

// Session is the per-invocation state of a command action.
type Session struct {
	Config       *cfg.Config
	Translations *i18n.Translations
	Convention   *convention.Convention
}

// Load installs the logger selected by the global flags, applies --config
// when given and builds the convention.
func (e *Env) Load(ctx context.Context, cmd *cli.Command) (context.Context, *Session, error) {
	log := logger.New(e.Err, logger.Options{
		Debug:   cmd.Bool(FlagDebug),
		Verbose: cmd.Bool(FlagVerbose),
	})
	ctx = logger.WithLogger(ctx, log)

	config := e.Config
	trans := e.Translations
	if path := cmd.String(FlagConfig); path != "" {
		loaded, err := cfg.LoadConfig(path)
		if err != nil {
			return ctx, nil, err
		}
		log.Info("configuration loaded", "path", loaded.PathFile)

		if trans == nil || config == nil || loaded.Language != config.Language {
			t, err := i18n.NewTranslations(loaded.Language, "")
			if err != nil {
				return ctx, nil, err
			}
			trans = t
		}
		config = loaded
	}
	if trans == nil {
		trans = i18n.Default()
	}

	conv, err := convention.FromConfig(ctx, config, trans)
	if err != nil {
		return ctx, nil, err
	}
	log.Debug("convention ready", "count", conv.Registry.Len())

	return ctx, &Session{Config: config, Translations: trans, Convention: conv}, nil
}

package main

import (
	"context"
	"fmt"
	"os"

	"github.com/Tomas-vilte/conventionalish/internal/cli/command/bump"
	"github.com/Tomas-vilte/conventionalish/internal/cli/command/changelog"
	"github.com/Tomas-vilte/conventionalish/internal/cli/command/check"
	"github.com/Tomas-vilte/conventionalish/internal/cli/command/commit"
	"github.com/Tomas-vilte/conventionalish/internal/cli/command/completion"
	configCmd "github.com/Tomas-vilte/conventionalish/internal/cli/command/config"
	"github.com/Tomas-vilte/conventionalish/internal/cli/command/questions"
	"github.com/Tomas-vilte/conventionalish/internal/cli/command/schema"
	"github.com/Tomas-vilte/conventionalish/internal/cli/command/types"
	"github.com/Tomas-vilte/conventionalish/internal/cli/registry"
	cfg "github.com/Tomas-vilte/conventionalish/internal/config"
	"github.com/Tomas-vilte/conventionalish/internal/i18n"
	"github.com/Tomas-vilte/conventionalish/internal/logger"
	"github.com/Tomas-vilte/conventionalish/internal/ui"
	"github.com/Tomas-vilte/conventionalish/internal/version"
	"github.com/urfave/cli/v3"
)

func main() {
	logger.Initialize(os.Stderr, logger.Options{})

	app, translations, err := initializeApp()
	if err != nil {
		ui.HandleAppError(os.Stderr, err)
		os.Exit(1)
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		ui.HandleAppError(os.Stderr, err, translations)
		os.Exit(1)
	}
}

func initializeApp() (*cli.Command, *i18n.Translations, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, nil, fmt.Errorf("could not resolve the home directory: %w", err)
	}

	cfgApp, err := cfg.LoadConfig(homeDir)
	if err != nil {
		return nil, nil, err
	}

	translations, err := i18n.NewTranslations(cfgApp.Language, "")
	if err != nil {
		return nil, nil, err
	}

	env := registry.NewEnv(cfgApp, translations)
	registerCommand := registry.NewRegistry(env, translations)

	factories := []struct {
		name    string
		factory registry.CommandFactory
	}{
		{"commit", commit.NewCommitCommandFactory()},
		{"check", check.NewCheckCommandFactory()},
		{"bump", bump.NewBumpCommandFactory()},
		{"changelog", changelog.NewChangelogCommandFactory()},
		{"types", types.NewTypesCommandFactory()},
		{"schema", schema.NewSchemaCommandFactory()},
		{"questions", questions.NewQuestionsCommandFactory()},
		{"config", configCmd.NewConfigCommandFactory()},
		{"completion", completion.NewCompletionCommandFactory()},
	}
	for _, f := range factories {
		if err := registerCommand.Register(f.name, f.factory); err != nil {
			return nil, nil, err
		}
	}

	return &cli.Command{
		Name:                  "conventionalish",
		Usage:                 translations.GetMessage("app_usage", 0, nil),
		Version:               version.FullVersion(),
		Description:           translations.GetMessage("app_description", 0, nil),
		Flags:                 registry.GlobalFlags(translations),
		Commands:              registerCommand.CreateCommands(),
		EnableShellCompletion: true,
	}, translations, nil
}

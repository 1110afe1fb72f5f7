package completion

import (
	"context"
	"fmt"

	"github.com/Tomas-vilte/conventionalish/internal/cli/registry"
	"github.com/Tomas-vilte/conventionalish/internal/i18n"
	"github.com/urfave/cli/v3"
)

const bashCompletionScript = `#! /bin/bash

_conventionalish_bash_autocomplete() {
  if [[ "${COMP_WORDS[0]}" != "source" ]]; then
    local cur opts
    COMPREPLY=()
    cur="${COMP_WORDS[COMP_CWORD]}"
    local cmd_context=("${COMP_WORDS[@]:0:$COMP_CWORD}")
    opts=$( "${cmd_context[@]}" --generate-shell-completion )
    COMPREPLY=( $(compgen -W "${opts}" -- ${cur}) )
    return 0
  fi
}

complete -o bashdefault -o default -o nospace -F _conventionalish_bash_autocomplete conventionalish
`

const zshCompletionScript = `#compdef conventionalish

_conventionalish() {
  local -a opts
  local cmd_context=("${(@)words[1,$CURRENT-1]}")
  opts=("${(@f)$("${cmd_context[@]}" --generate-shell-completion)}")
  _describe 'values' opts
}

compdef _conventionalish conventionalish
`

type CompletionCommandFactory struct{}

func NewCompletionCommandFactory() *CompletionCommandFactory {
	return &CompletionCommandFactory{}
}

func (f *CompletionCommandFactory) CreateCommand(t *i18n.Translations, env *registry.Env) *cli.Command {
	return &cli.Command{
		Name:  "completion",
		Usage: t.GetMessage("completion_usage", 0, nil),
		Commands: []*cli.Command{
			{
				Name:  "bash",
				Usage: t.GetMessage("completion_bash_usage", 0, nil),
				Action: func(ctx context.Context, cmd *cli.Command) error {
					_, err := fmt.Fprint(env.Out, bashCompletionScript)
					return err
				},
			},
			{
				Name:  "zsh",
				Usage: t.GetMessage("completion_zsh_usage", 0, nil),
				Action: func(ctx context.Context, cmd *cli.Command) error {
					_, err := fmt.Fprint(env.Out, zshCompletionScript)
					return err
				},
			},
		},
	}
}

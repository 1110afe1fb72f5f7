package commit

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/Tomas-vilte/conventionalish/internal/cli/registry"
	"github.com/Tomas-vilte/conventionalish/internal/convention"
	"github.com/Tomas-vilte/conventionalish/internal/domain/models"
	domainErrors "github.com/Tomas-vilte/conventionalish/internal/errors"
	"github.com/Tomas-vilte/conventionalish/internal/i18n"
	"github.com/Tomas-vilte/conventionalish/internal/logger"
	"github.com/Tomas-vilte/conventionalish/internal/message"
	"github.com/Tomas-vilte/conventionalish/internal/questions"
	"github.com/Tomas-vilte/conventionalish/internal/ui"
	"github.com/urfave/cli/v3"
)

const flagFile = "file"

type CommitCommandFactory struct{}

func NewCommitCommandFactory() *CommitCommandFactory {
	return &CommitCommandFactory{}
}

func (f *CommitCommandFactory) CreateCommand(t *i18n.Translations, env *registry.Env) *cli.Command {
	return &cli.Command{
		Name:    "commit",
		Aliases: []string{"c"},
		Usage:   t.GetMessage("commit_usage", 0, nil),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    flagFile,
				Aliases: []string{"f"},
				Usage:   t.GetMessage("commit_flag_file_usage", 0, nil),
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			ctx, session, err := env.Load(ctx, cmd)
			if err != nil {
				return err
			}

			a := newAsker(env.In, env.Out, session.Translations)
			answers, err := a.askAll(session.Convention.Questions)
			if err != nil {
				return err
			}

			msg, err := assemble(session.Convention, answers)
			if err != nil {
				return err
			}
			logger.Debug(ctx, "commit message assembled", "prefix", answers.Prefix, "breaking", answers.IsBreakingChange)

			if path := cmd.String(flagFile); path != "" {
				if err := os.WriteFile(path, []byte(msg+"\n"), 0644); err != nil {
					return domainErrors.NewAppError(domainErrors.TypeInternal, "failed to write commit message", err).
						WithContext("path", path)
				}
			}

			ui.PrintSectionBanner(env.Out, session.Translations.GetMessage("commit_message_ready", 0, nil))
			_, err = fmt.Fprintln(env.Out, msg)
			return err
		},
	}
}

// assemble builds the message and checks it against the header schema.
func assemble(conv *convention.Convention, answers models.CommitAnswers) (string, error) {
	msg := message.Assemble(answers)
	if _, ok := conv.Schema.ParseMessage(msg); !ok {
		header, _, _ := strings.Cut(msg, "\n")
		return "", domainErrors.ErrHeaderMismatch.WithContext("header", header)
	}
	return msg, nil
}

type asker struct {
	in  *bufio.Scanner
	out io.Writer
	t   *i18n.Translations
}

func newAsker(in io.Reader, out io.Writer, t *i18n.Translations) *asker {
	return &asker{in: bufio.NewScanner(in), out: out, t: t}
}

func (a *asker) askAll(prompts []models.Prompt) (models.CommitAnswers, error) {
	values := make(map[string]string)
	confirmed := make(map[string]bool)

	for _, p := range prompts {
		if !questions.ShouldAsk(p, confirmed) {
			continue
		}

		var (
			answer string
			err    error
		)
		switch p.Kind {
		case models.PromptList:
			answer, err = a.askList(p)
		case models.PromptConfirm:
			var yes bool
			yes, err = a.askConfirm(p)
			confirmed[p.Name] = yes
		default:
			answer, err = a.askInput(p, confirmed)
		}
		if err != nil {
			return models.CommitAnswers{}, err
		}
		values[p.Name] = answer
	}

	return models.CommitAnswers{
		Prefix:           values[questions.NamePrefix],
		Scope:            values[questions.NameScope],
		Subject:          values[questions.NameSubject],
		Body:             values[questions.NameBody],
		IsBreakingChange: confirmed[questions.NameIsBreakingChange],
		Footer:           values[questions.NameFooter],
	}, nil
}

func (a *asker) askList(p models.Prompt) (string, error) {
	for {
		_, _ = fmt.Fprintf(a.out, "%s %s\n", ui.Info.Sprint("?"), p.Message)
		for _, c := range p.Choices {
			key := c.Key
			if key == "" {
				key = " "
			}
			_, _ = fmt.Fprintf(a.out, "  %s %s\n", ui.Dim.Sprintf("[%s]", key), c.Name)
		}

		line, err := a.readLine()
		if err != nil {
			return "", err
		}
		if token, ok := questions.ResolveChoice(p, line); ok {
			return token, nil
		}
		ui.PrintWarning(a.out, a.t.GetMessage("answer_invalid_choice", 0, map[string]interface{}{
			"Input": strings.TrimSpace(line),
		}))
	}
}

func (a *asker) askConfirm(p models.Prompt) (bool, error) {
	_, _ = fmt.Fprintf(a.out, "%s %s %s\n", ui.Info.Sprint("?"), p.Message, a.t.GetMessage("answer_yes_no", 0, nil))

	line, err := a.readLine()
	if err != nil {
		return false, err
	}
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes", "s", "si", "sí":
		return true, nil
	case "":
		if def, ok := p.Default.(bool); ok {
			return def, nil
		}
	}
	return false, nil
}

func (a *asker) askInput(p models.Prompt, confirmed map[string]bool) (string, error) {
	for {
		_, _ = fmt.Fprintf(a.out, "%s %s\n", ui.Info.Sprint("?"), p.Message)

		line, err := a.readLine()
		if err != nil {
			return "", err
		}
		answer := strings.TrimSpace(line)

		switch questions.Validate(p, answer, confirmed) {
		case questions.ProblemRequired:
			ui.PrintWarning(a.out, a.t.GetMessage("answer_required", 0, nil))
			continue
		case questions.ProblemTooLong:
			ui.PrintWarning(a.out, a.t.GetMessage("answer_too_long", 0, map[string]interface{}{
				"Max":    p.MaxLength,
				"Length": len([]rune(answer)),
			}))
		}
		return answer, nil
	}
}

func (a *asker) readLine() (string, error) {
	if !a.in.Scan() {
		if err := a.in.Err(); err != nil {
			return "", err
		}
		return "", domainErrors.ErrInputClosed
	}
	return a.in.Text(), nil
}

package ui

import (
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/fatih/color"
	domainErrors "github.com/Tomas-vilte/conventionalish/internal/errors"
	"github.com/Tomas-vilte/conventionalish/internal/i18n"
)

var (
	// Colors for different message types
	Success = color.New(color.FgGreen, color.Bold)
	Error   = color.New(color.FgRed, color.Bold)
	Warning = color.New(color.FgYellow, color.Bold)
	Info    = color.New(color.FgCyan, color.Bold)
	Accent  = color.New(color.FgMagenta, color.Bold)
	Dim     = color.New(color.FgHiBlack)
)

func PrintSuccess(w io.Writer, msg string) {
	_, _ = fmt.Fprintf(w, "%s %s\n", Success.Sprint("✔"), Success.Sprint(msg))
}

func PrintError(w io.Writer, msg string) {
	_, _ = fmt.Fprintf(w, "%s %s\n", Error.Sprint("✖"), Error.Sprint(msg))
}

func PrintWarning(w io.Writer, msg string) {
	_, _ = fmt.Fprintf(w, "%s %s\n", Warning.Sprint("!"), Warning.Sprint(msg))
}

func PrintInfo(w io.Writer, msg string) {
	_, _ = fmt.Fprintf(w, "%s %s\n", Info.Sprint("i"), Info.Sprint(msg))
}

func PrintSectionBanner(w io.Writer, title string) {
	separator := color.New(color.FgCyan).Sprint(strings.Repeat("━", 23))
	_, _ = fmt.Fprintf(w, "\n%s\n%s\n%s\n\n", separator, Accent.Sprint(title), separator)
}

func PrintKeyValue(w io.Writer, key, value string) {
	keyColored := Dim.Sprint(key + ":")
	valueColored := color.New(color.FgWhite, color.Bold).Sprint(value)
	_, _ = fmt.Fprintf(w, "   %s %s\n", keyColored, valueColored)
}

// HandleAppError prints err in a friendly way. If translations is nil, it
// uses English defaults.
func HandleAppError(w io.Writer, err error, translations ...*i18n.Translations) {
	if err == nil {
		return
	}

	var t *i18n.Translations
	if len(translations) > 0 && translations[0] != nil {
		t = translations[0]
	}

	var appErr *domainErrors.AppError
	if !errors.As(err, &appErr) {
		PrintError(w, err.Error())
		return
	}

	_, _ = fmt.Fprintln(w)
	_, _ = Error.Fprintf(w, "✖ %s: %s\n", appErr.Type, appErr.Message)

	if appErr.Err != nil {
		_, _ = Dim.Fprintf(w, "   Details: %v\n", appErr.Err)
	}

	keys := make([]string, 0, len(appErr.Context))
	for k := range appErr.Context {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		_, _ = Dim.Fprintf(w, "   %s: %v\n", k, appErr.Context[k])
	}

	if appErr.Suggestion != "" {
		_, _ = fmt.Fprintln(w)
		tryPrefix := "💡 Try: "
		if t != nil {
			tryPrefix = t.GetMessage("ui_error_try_suggestion", 0, nil)
		}
		_, _ = Info.Fprint(w, tryPrefix)
		for i, line := range strings.Split(appErr.Suggestion, "\n") {
			if i == 0 {
				_, _ = fmt.Fprintln(w, line)
			} else {
				_, _ = fmt.Fprintf(w, "       %s\n", line)
			}
		}
	}
	_, _ = fmt.Fprintln(w)
}

package input

import (
	"io"
	"strings"

	"github.com/Tomas-vilte/conventionalish/internal/regex"
)

const scissors = "# ------------------------ >8 ------------------------"

// ReadMessages reads commit messages from r. NUL separated records (as
// printed by git log -z) are kept whole. Otherwise each non-empty line is
// one message, as with git log --format=%s.
func ReadMessages(r io.Reader) ([]string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	text := strings.ReplaceAll(string(data), "\r\n", "\n")

	var records []string
	if strings.Contains(text, "\x00") {
		records = regex.LogRecordSeparator.Split(text, -1)
	} else {
		records = strings.Split(text, "\n")
	}

	messages := make([]string, 0, len(records))
	for _, rec := range records {
		if strings.TrimSpace(rec) == "" {
			continue
		}
		messages = append(messages, strings.Trim(rec, "\n"))
	}
	return messages, nil
}

// StripComments removes git's commented lines and everything below the
// scissors line of a commit message file.
func StripComments(msg string) string {
	msg = strings.ReplaceAll(msg, "\r\n", "\n")

	var kept []string
	for _, line := range strings.Split(msg, "\n") {
		if line == scissors {
			break
		}
		if strings.HasPrefix(line, "#") {
			continue
		}
		kept = append(kept, line)
	}
	return strings.TrimSpace(strings.Join(kept, "\n"))
}

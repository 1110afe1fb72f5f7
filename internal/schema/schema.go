package schema

import (
	"regexp"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/Tomas-vilte/conventionalish/internal/domain/models"
	"github.com/Tomas-vilte/conventionalish/internal/regex"
	"github.com/Tomas-vilte/conventionalish/internal/registry"
)

// Capture group names of the header pattern.
const (
	GroupType     = "type"
	GroupScope    = "scope"
	GroupBreaking = "breaking"
	GroupSubject  = "subject"
)

// matchNothing keeps the pattern valid for an empty registry.
const matchNothing = `[^\x00-\x{10FFFF}]`

// Captures holds the decomposed parts of a matching header.
type Captures struct {
	Type     string
	Scope    string
	Breaking bool
	Subject  string
}

// Validator recognizes commit headers built from a registry's tokens.
type Validator struct {
	header   *regexp.Regexp
	bump     *regexp.Regexp
	example  string
	groupIdx map[string]int
}

func New(reg *registry.Registry) *Validator {
	header := regexp.MustCompile(headerPattern(reg.Tokens()))

	var bumpTokens []string
	for _, def := range reg.Entries() {
		if def.Bump != models.NoBump {
			bumpTokens = append(bumpTokens, def.Token)
		}
	}

	v := &Validator{
		header:   header,
		bump:     regexp.MustCompile(bumpPattern(bumpTokens)),
		example:  example(reg),
		groupIdx: make(map[string]int),
	}
	for i, name := range header.SubexpNames() {
		if name != "" {
			v.groupIdx[name] = i
		}
	}
	return v
}

// Pattern returns the header regular expression source.
func (v *Validator) Pattern() string {
	return v.header.String()
}

// Regexp returns the compiled header pattern. Its SubexpNames are type,
// scope, breaking and subject.
func (v *Validator) Regexp() *regexp.Regexp {
	return v.header
}

// MatchHeader decomposes line. A token outside the registry or a line that
// is not valid UTF-8 is a miss.
func (v *Validator) MatchHeader(line string) (Captures, bool) {
	if !utf8.ValidString(line) {
		return Captures{}, false
	}
	m := v.header.FindStringSubmatch(strings.TrimRight(line, "\r\n"))
	if m == nil {
		return Captures{}, false
	}
	return Captures{
		Type:     m[v.groupIdx[GroupType]],
		Scope:    m[v.groupIdx[GroupScope]],
		Breaking: m[v.groupIdx[GroupBreaking]] == "!",
		Subject:  m[v.groupIdx[GroupSubject]],
	}, true
}

// ParseMessage matches the first line of msg as a header and scans the rest
// for a BREAKING CHANGE footer.
func (v *Validator) ParseMessage(msg string) (models.ConventionalCommit, bool) {
	msg = strings.ReplaceAll(msg, "\r\n", "\n")
	msg = strings.TrimLeft(msg, "\n")
	header, rest, _ := strings.Cut(msg, "\n")

	c, ok := v.MatchHeader(header)
	if !ok {
		return models.ConventionalCommit{}, false
	}

	commit := models.ConventionalCommit{
		Header:   header,
		Type:     c.Type,
		Scope:    c.Scope,
		Subject:  c.Subject,
		Body:     strings.TrimSpace(rest),
		Breaking: c.Breaking,
	}

	if m := regex.BreakingChange.FindStringSubmatch(rest); m != nil {
		commit.Breaking = true
		commit.BreakingDescription = strings.TrimSpace(m[1])
	}
	if commit.Breaking && commit.BreakingDescription == "" {
		commit.BreakingDescription = commit.Subject
	}
	return commit, true
}

// BumpPattern matches the start of a message that can trigger a version bump:
// a BREAKING CHANGE marker or any type with a non-none bump level.
func (v *Validator) BumpPattern() string {
	return v.bump.String()
}

// IsBumpCandidate reports whether msg starts like a bump-triggering message.
func (v *Validator) IsBumpCandidate(msg string) bool {
	return v.bump.MatchString(msg)
}

// ChangelogPattern selects the messages considered for changelog output. It
// shares the bump pattern.
func (v *Validator) ChangelogPattern() string {
	return v.BumpPattern()
}

// BreakingFooterPattern finds BREAKING CHANGE footers independently of the
// registry.
func BreakingFooterPattern() string {
	return regex.BreakingChange.String()
}

// Schema describes the message layout for humans.
func (v *Validator) Schema() string {
	return "<type>(<scope>)!: <subject>\n<BLANK LINE>\n<body>\n<BLANK LINE>\n(BREAKING CHANGE: )<footer>"
}

// Example returns a well-formed message using the registry's first type.
func (v *Validator) Example() string {
	return v.example
}

func headerPattern(tokens []string) string {
	types := alternation(tokens)
	if types == "" {
		types = matchNothing
	}
	return `^(?P<` + GroupType + `>` + types + `)` +
		`(?:\((?P<` + GroupScope + `>[^()\r\n]+)\))?` +
		`(?P<` + GroupBreaking + `>!)?` +
		`: (?P<` + GroupSubject + `>\S[^\r\n]*)$`
}

func bumpPattern(tokens []string) string {
	alt := `BREAKING[\- ]CHANGE`
	if types := alternation(tokens); types != "" {
		alt += "|" + types
	}
	return `^((` + alt + `)(\(.+\))?(!)?)`
}

// alternation joins quoted tokens longest first so a token that prefixes
// another never truncates the match. Ties keep declaration order.
func alternation(tokens []string) string {
	sorted := make([]string, len(tokens))
	copy(sorted, tokens)
	sort.SliceStable(sorted, func(i, j int) bool {
		return len(sorted[i]) > len(sorted[j])
	})
	for i, tok := range sorted {
		sorted[i] = regexp.QuoteMeta(tok)
	}
	return strings.Join(sorted, "|")
}

func example(reg *registry.Registry) string {
	tokens := reg.Tokens()
	if len(tokens) == 0 {
		return ""
	}
	return tokens[0] + ": correct minor typos in code\n\n" +
		"see the issue for details on the typos fixed\n\n" +
		"closes issue #12"
}

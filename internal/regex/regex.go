package regex

import "regexp"

var (
	// Message footer patterns
	BreakingChange = regexp.MustCompile(`(?m)^BREAKING[ -]CHANGE:[ \t]*(.*)$`)

	// Release patterns
	SemVer = regexp.MustCompile(`^(v?)(\d+)\.(\d+)\.(\d+)(?:-[0-9A-Za-z.-]+)?(?:\+[0-9A-Za-z.-]+)?$`)

	// Git log input separators
	LogRecordSeparator = regexp.MustCompile("\x00+")
)

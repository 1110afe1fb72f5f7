package models

import "time"

type (
	// Release is the outcome of analyzing a batch of commits
	Release struct {
		Version         string
		PreviousVersion string
		Date            time.Time
		Bump            BumpLevel
		Commits         []ConventionalCommit
		Skipped         []string // headers that did not match the schema
	}
)

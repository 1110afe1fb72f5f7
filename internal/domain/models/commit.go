package models

type (
	// ConventionalCommit is a commit message decomposed by the header schema
	ConventionalCommit struct {
		Header              string
		Type                string
		Scope               string
		Subject             string
		Body                string
		Breaking            bool // header "!" or a BREAKING CHANGE footer
		BreakingDescription string
	}

	// CommitAnswers holds what the user answered to the commit questions
	CommitAnswers struct {
		Prefix           string `json:"prefix" yaml:"prefix"`
		Scope            string `json:"scope,omitempty" yaml:"scope,omitempty"`
		Subject          string `json:"subject" yaml:"subject"`
		Body             string `json:"body,omitempty" yaml:"body,omitempty"`
		IsBreakingChange bool   `json:"is_breaking_change" yaml:"is_breaking_change"`
		Footer           string `json:"footer,omitempty" yaml:"footer,omitempty"`
	}
)

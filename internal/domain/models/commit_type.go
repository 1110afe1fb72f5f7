package models

import (
	"fmt"
	"strings"
)

// BumpLevel is the semantic-version component a commit triggers. Values are
// ordered so that a plain comparison picks the stronger bump.
type BumpLevel int

const (
	NoBump BumpLevel = iota
	PatchBump
	MinorBump
	MajorBump
)

func (b BumpLevel) String() string {
	switch b {
	case MajorBump:
		return "major"
	case MinorBump:
		return "minor"
	case PatchBump:
		return "patch"
	default:
		return "none"
	}
}

// ParseBumpLevel accepts major, minor, patch or none in any case. The empty
// string is NoBump.
func ParseBumpLevel(s string) (BumpLevel, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "major":
		return MajorBump, nil
	case "minor":
		return MinorBump, nil
	case "patch":
		return PatchBump, nil
	case "none", "":
		return NoBump, nil
	default:
		return NoBump, fmt.Errorf("unknown bump level %q", s)
	}
}

func (b BumpLevel) MarshalText() ([]byte, error) {
	return []byte(b.String()), nil
}

func (b *BumpLevel) UnmarshalText(text []byte) error {
	level, err := ParseBumpLevel(string(text))
	if err != nil {
		return err
	}
	*b = level
	return nil
}

// CommitTypeDefinition is one entry of the commit type registry.
type CommitTypeDefinition struct {
	Token    string    `json:"token" yaml:"token" toml:"token"`
	Label    string    `json:"label" yaml:"label" toml:"label"`
	Shortcut string    `json:"shortcut,omitempty" yaml:"shortcut,omitempty" toml:"shortcut,omitempty"`
	Bump     BumpLevel `json:"bump" yaml:"bump" toml:"bump"`
}

package models

// PromptKind tells the host renderer how to collect an answer
type PromptKind string

const (
	PromptList    PromptKind = "list"
	PromptInput   PromptKind = "input"
	PromptConfirm PromptKind = "confirm"
)

type (
	// Choice is one option of a list prompt. Name is displayed, Value is the
	// answer recorded and Key is the optional fast-selection character.
	Choice struct {
		Value string `json:"value" yaml:"value"`
		Name  string `json:"name" yaml:"name"`
		Key   string `json:"key,omitempty" yaml:"key,omitempty"`
	}

	// Prompt describes one question of the commit authoring flow
	Prompt struct {
		Kind      PromptKind `json:"type" yaml:"type"`
		Name      string     `json:"name" yaml:"name"`
		Message   string     `json:"message" yaml:"message"`
		Choices   []Choice   `json:"choices,omitempty" yaml:"choices,omitempty"`
		Required  bool       `json:"required" yaml:"required"`
		MaxLength int        `json:"max_length,omitempty" yaml:"max_length,omitempty"`
		Multiline bool       `json:"multiline,omitempty" yaml:"multiline,omitempty"`
		Default   any        `json:"default,omitempty" yaml:"default,omitempty"`
		// DependsOn names a confirm prompt; Required applies only when it was answered true.
		DependsOn string `json:"depends_on,omitempty" yaml:"depends_on,omitempty"`
	}
)

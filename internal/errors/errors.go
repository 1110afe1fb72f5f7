package errors

import (
	"errors"
	"fmt"
)

// ErrorType defines the category of the error
type ErrorType string

const (
	TypeValidation    ErrorType = "VALIDATION"
	TypeConfiguration ErrorType = "CONFIGURATION"
	TypeParse         ErrorType = "PARSE"
	TypeVersion       ErrorType = "VERSION"
	TypeInternal      ErrorType = "INTERNAL"
)

// AppError represents a domain-level error with a type and an underlying error
type AppError struct {
	Type       ErrorType
	Message    string
	Context    map[string]interface{}
	Err        error
	Suggestion string
}

func (e *AppError) Error() string {
	var msg string
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %s (%v)", e.Type, e.Message, e.Err)
	} else {
		msg = fmt.Sprintf("%s: %s", e.Type, e.Message)
	}

	if e.Context != nil {
		if token, ok := e.Context["token"].(string); ok && token != "" {
			msg += fmt.Sprintf(" - token %q", token)
		}
		if shortcut, ok := e.Context["shortcut"].(string); ok && shortcut != "" {
			msg += fmt.Sprintf(" - shortcut %q", shortcut)
		}
	}

	return msg
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// Is reports whether target is an AppError of the same type and message, so
// sentinels still match after WithContext or WithError produced a copy.
func (e *AppError) Is(target error) bool {
	var t *AppError
	if !errors.As(target, &t) {
		return false
	}
	return e.Type == t.Type && e.Message == t.Message
}

// WithError creates a new AppError with an underlying error
func (e *AppError) WithError(err error) *AppError {
	return &AppError{
		Type:       e.Type,
		Message:    e.Message,
		Context:    e.Context,
		Err:        err,
		Suggestion: e.Suggestion,
	}
}

// WithContext creates a new AppError with additional context
func (e *AppError) WithContext(key string, value interface{}) *AppError {
	ctx := make(map[string]interface{})
	for k, v := range e.Context {
		ctx[k] = v
	}
	ctx[key] = value
	return &AppError{
		Type:       e.Type,
		Message:    e.Message,
		Context:    ctx,
		Err:        e.Err,
		Suggestion: e.Suggestion,
	}
}

func (e *AppError) WithSuggestion(suggestion string) *AppError {
	return &AppError{
		Type:       e.Type,
		Message:    e.Message,
		Context:    e.Context,
		Err:        e.Err,
		Suggestion: suggestion,
	}
}

// NewAppError creates a new AppError
func NewAppError(t ErrorType, msg string, err error) *AppError {
	return &AppError{
		Type:    t,
		Message: msg,
		Err:     err,
	}
}

// IsValidation reports whether err carries a TypeValidation AppError.
func IsValidation(err error) bool {
	return IsType(err, TypeValidation)
}

// IsType reports whether any AppError in err's chain has the given type.
func IsType(err error, t ErrorType) bool {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Type == t
	}
	return false
}

// Registry errors
var (
	ErrEmptyToken = NewAppError(TypeValidation, "commit type token is empty", nil).
			WithSuggestion("Every entry in \"types\" needs a non-empty token, e.g. \"feat\"")

	ErrInvalidToken = NewAppError(TypeValidation, "commit type token contains reserved characters", nil).
			WithSuggestion("Tokens cannot contain whitespace or any of ( ) ! :")

	ErrDuplicateToken = NewAppError(TypeValidation, "commit type token is declared more than once", nil).
				WithSuggestion("Remove the duplicated entry from \"types\"")

	ErrInvalidShortcut = NewAppError(TypeValidation, "shortcut must be a single character", nil).
				WithSuggestion("Use one character such as \"f\" or leave the shortcut empty")

	ErrDuplicateShortcut = NewAppError(TypeValidation, "shortcut is used by more than one commit type", nil).
				WithSuggestion("Pick a distinct shortcut for each commit type")

	ErrInvalidBumpLevel = NewAppError(TypeValidation, "unknown bump level", nil).
				WithSuggestion("Valid bump levels are: major, minor, patch, none")
)

// Configuration errors
var (
	ErrConfigInvalid = NewAppError(TypeConfiguration, "configuration is not valid", nil).
				WithSuggestion("Check the configuration file against: conventionalish types")

	ErrConfigFormat = NewAppError(TypeConfiguration, "unsupported configuration file format", nil).
			WithSuggestion("Use a .json, .toml, .yaml or .yml file")

	ErrConfigRead = NewAppError(TypeConfiguration, "failed to read configuration", nil)

	ErrConfigWrite = NewAppError(TypeConfiguration, "failed to write configuration", nil).
			WithSuggestion("Check you have write permissions on the configuration directory")
)

// Parse errors
var (
	ErrHeaderMismatch = NewAppError(TypeParse, "commit header does not match the convention", nil).
				WithSuggestion("Use the form: <type>(<scope>)!: <subject>\nList allowed types with: conventionalish types")

	ErrEmptyMessage = NewAppError(TypeParse, "commit message is empty", nil)

	ErrInputClosed = NewAppError(TypeParse, "input ended before every question was answered", nil)
)

// Version errors
var (
	ErrInvalidVersion = NewAppError(TypeVersion, "version does not match semver format (vX.Y.Z)", nil).
				WithSuggestion("Use semantic versioning format: v1.0.0, v2.1.3, etc.")
)

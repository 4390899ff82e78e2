package errors

import (
	"fmt"
	"strings"
)

// ErrorCode represents a unique error identifier
type ErrorCode string

// Error categories
const (
	// Spec errors (SPEC-001 to SPEC-099)
	ErrCodeSpecNotFound        ErrorCode = "SPEC-001"
	ErrCodeSpecInvalid         ErrorCode = "SPEC-002"
	ErrCodeSpecUnmarshal       ErrorCode = "SPEC-003"
	ErrCodeSpecMarshal         ErrorCode = "SPEC-004"
	ErrCodeSpecDuplicateEntity ErrorCode = "SPEC-005"
	ErrCodeSpecLockNotFound    ErrorCode = "SPEC-006"
	ErrCodeSpecLockMismatch    ErrorCode = "SPEC-007"

	// Strategy errors (PLAN-001 to PLAN-099)
	ErrCodeStrategyNotFound  ErrorCode = "PLAN-001"
	ErrCodeStrategyInvalid   ErrorCode = "PLAN-002"
	ErrCodeStepIDCollision   ErrorCode = "PLAN-003"
	ErrCodeStepMissing       ErrorCode = "PLAN-004"
	ErrCodeCyclicDependency  ErrorCode = "PLAN-005"
	ErrCodeOrderInconsistent ErrorCode = "PLAN-006"

	// Grouping errors (GROUP-001 to GROUP-099)
	ErrCodeGroupRefineFailed    ErrorCode = "GROUP-001"
	ErrCodeGroupRefineMalformed ErrorCode = "GROUP-002"

	// Provider errors (PROVIDER-001 to PROVIDER-099)
	ErrCodeProviderConfig  ErrorCode = "PROVIDER-001"
	ErrCodeProviderAuth    ErrorCode = "PROVIDER-002"
	ErrCodeProviderAPI     ErrorCode = "PROVIDER-003"
	ErrCodeProviderTimeout ErrorCode = "PROVIDER-004"

	// File I/O errors (IO-001 to IO-099)
	ErrCodeFileNotFound    ErrorCode = "IO-001"
	ErrCodeFileReadFailed  ErrorCode = "IO-002"
	ErrCodeFileWriteFailed ErrorCode = "IO-003"
	ErrCodeFileUnmarshal   ErrorCode = "IO-004"
	ErrCodeFileMarshal     ErrorCode = "IO-005"
)

// RespecError represents an enhanced error with code, suggestions, and documentation
type RespecError struct {
	Code        ErrorCode
	Message     string
	Suggestions []string
	DocsURL     string
	Cause       error
}

// Error implements the error interface
func (e *RespecError) Error() string {
	var b strings.Builder

	// Error code and message
	b.WriteString(fmt.Sprintf("[%s] %s", e.Code, e.Message))

	// Add cause if present
	if e.Cause != nil {
		b.WriteString(fmt.Sprintf(": %v", e.Cause))
	}

	// Add suggestions
	if len(e.Suggestions) > 0 {
		b.WriteString("\n\nSuggestions:")
		for _, suggestion := range e.Suggestions {
			b.WriteString(fmt.Sprintf("\n  • %s", suggestion))
		}
	}

	// Add documentation link
	if e.DocsURL != "" {
		b.WriteString(fmt.Sprintf("\n\nDocumentation: %s", e.DocsURL))
	}

	return b.String()
}

// Unwrap implements error unwrapping for errors.Is and errors.As
func (e *RespecError) Unwrap() error {
	return e.Cause
}

// New creates a new RespecError
func New(code ErrorCode, message string) *RespecError {
	return &RespecError{
		Code:    code,
		Message: message,
	}
}

// Wrap creates a new RespecError wrapping an existing error
func Wrap(code ErrorCode, message string, cause error) *RespecError {
	return &RespecError{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

// WithSuggestion adds a suggestion to the error
func (e *RespecError) WithSuggestion(suggestion string) *RespecError {
	e.Suggestions = append(e.Suggestions, suggestion)
	return e
}

// WithSuggestions adds multiple suggestions to the error
func (e *RespecError) WithSuggestions(suggestions ...string) *RespecError {
	e.Suggestions = append(e.Suggestions, suggestions...)
	return e
}

// WithDocs adds a documentation URL to the error
func (e *RespecError) WithDocs(url string) *RespecError {
	e.DocsURL = url
	return e
}

// Common error constructors for frequently used errors

// NewSpecNotFoundError creates a spec file not found error
func NewSpecNotFoundError(path string) *RespecError {
	return New(ErrCodeSpecNotFound, fmt.Sprintf("specification file not found: %s", path)).
		WithSuggestion("Run the extraction phase to produce a specification set").
		WithSuggestion("Check if the file path is correct").
		WithDocs("https://github.com/felixgeelhaar/respec#specification-sets")
}

// NewDuplicateEntityError creates a duplicate entity name error.
// Duplicate names are fatal: it is ambiguous which copy is authoritative.
func NewDuplicateEntityError(name string) *RespecError {
	return New(ErrCodeSpecDuplicateEntity, fmt.Sprintf("duplicate entity name in specification set: %s", name)).
		WithSuggestion("Rename one of the conflicting entities in the extraction output").
		WithSuggestion("Run 'respec spec validate' to list all conflicts")
}

// NewStepIDCollisionError creates a step id collision error.
// A collision indicates a bug in id generation and always aborts the run.
func NewStepIDCollisionError(id string) *RespecError {
	return New(ErrCodeStepIDCollision, fmt.Sprintf("implementation step id collision: %s", id)).
		WithSuggestion("This is an internal planning bug, please report it")
}

// NewCyclicDependencyError creates a cyclic dependency error
func NewCyclicDependencyError(details string) *RespecError {
	return New(ErrCodeCyclicDependency, fmt.Sprintf("cyclic dependency detected: %s", details)).
		WithSuggestion("Review declared dependencies between the entities involved").
		WithSuggestion("Run 'respec strategy validate' to inspect the dependency map")
}

// NewStrategyInvalidError creates a strategy validation error
func NewStrategyInvalidError(details string) *RespecError {
	return New(ErrCodeStrategyInvalid, fmt.Sprintf("invalid strategy: %s", details)).
		WithSuggestion("Regenerate the strategy with 'respec strategy create'").
		WithSuggestion("Run 'respec strategy validate' to see all validation errors")
}

// NewProviderAuthError creates a provider authentication error
func NewProviderAuthError(provider string) *RespecError {
	return New(ErrCodeProviderAuth, fmt.Sprintf("authentication failed for provider: %s", provider)).
		WithSuggestion(fmt.Sprintf("Set the %s_API_KEY environment variable", strings.ToUpper(provider))).
		WithSuggestion("Check if your API key is valid and not expired").
		WithDocs("https://github.com/felixgeelhaar/respec#group-refinement")
}

// NewProviderTimeoutError creates a provider timeout error
func NewProviderTimeoutError(provider string) *RespecError {
	return New(ErrCodeProviderTimeout, fmt.Sprintf("provider request timed out: %s", provider)).
		WithSuggestion("Planning continues without group refinement").
		WithSuggestion("Increase the timeout with --refine-timeout if refinement is needed")
}

// NewFileNotFoundError creates a file not found error
func NewFileNotFoundError(path string) *RespecError {
	return New(ErrCodeFileNotFound, fmt.Sprintf("file not found: %s", path)).
		WithSuggestion("Check if the file path is correct").
		WithSuggestion("Verify the file exists and you have read permissions")
}

// NewFileUnmarshalError creates an unmarshal error
func NewFileUnmarshalError(path string, format string, cause error) *RespecError {
	return Wrap(ErrCodeFileUnmarshal, fmt.Sprintf("failed to parse %s file: %s", format, path), cause).
		WithSuggestion("Check the file syntax and format").
		WithSuggestion(fmt.Sprintf("Ensure the file is valid %s", format))
}

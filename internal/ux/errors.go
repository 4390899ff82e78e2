package ux

import (
	"fmt"
	"strings"
)

// ErrorWithSuggestion wraps an error with helpful recovery suggestions
type ErrorWithSuggestion struct {
	Err        error
	Suggestion string
}

// Error implements the error interface
func (e *ErrorWithSuggestion) Error() string {
	if e.Suggestion != "" {
		return fmt.Sprintf("%v\n\n💡 Suggestion: %s", e.Err, e.Suggestion)
	}
	return e.Err.Error()
}

// Unwrap provides access to the underlying error
func (e *ErrorWithSuggestion) Unwrap() error {
	return e.Err
}

// NewErrorWithSuggestion creates a new error with a suggestion
func NewErrorWithSuggestion(err error, suggestion string) error {
	if err == nil {
		return nil
	}
	return &ErrorWithSuggestion{
		Err:        err,
		Suggestion: suggestion,
	}
}

// EnhanceError analyzes an error and adds contextual suggestions
func EnhanceError(err error) error {
	if err == nil {
		return nil
	}

	errMsg := err.Error()

	// File not found errors
	if strings.Contains(errMsg, "no such file or directory") || strings.Contains(errMsg, "not found") {
		if strings.Contains(errMsg, "specs.yaml") {
			return NewErrorWithSuggestion(err,
				"Place your extracted specifications in .respec/specs.yaml or pass --specs")
		}
		if strings.Contains(errMsg, "specs.lock.json") {
			return NewErrorWithSuggestion(err,
				"Generate a fingerprint by running 'respec spec lock'")
		}
		if strings.Contains(errMsg, "strategy.json") {
			return NewErrorWithSuggestion(err,
				"Generate a strategy by running 'respec strategy create'")
		}
	}

	// Permission errors
	if strings.Contains(errMsg, "permission denied") {
		return NewErrorWithSuggestion(err,
			"Check file permissions and ensure you have access to the required files/directories")
	}

	// Refinement collaborator errors
	if strings.Contains(errMsg, "api_key") {
		return NewErrorWithSuggestion(err,
			"Set the OPENAI_API_KEY environment variable or run without --refine")
	}

	if strings.Contains(errMsg, "rate limit") || strings.Contains(errMsg, "429") {
		return NewErrorWithSuggestion(err,
			"The refinement provider is rate limiting requests. Wait a moment or run without --refine")
	}

	return err
}

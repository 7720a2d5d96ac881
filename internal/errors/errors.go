// Package errors provides error types with actionable suggestions for
// sweetcakes. Errors carry a kind, contextual details and a hint that the
// CLI prints to help the user recover.
package errors

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Sentinel error kinds for use with errors.Is().
var (
	// ErrStorage indicates the local key-value storage could not be used.
	ErrStorage = errors.New("storage error")
	// ErrConfig indicates a configuration error.
	ErrConfig = errors.New("configuration error")
	// ErrCatalog indicates a problem with the product catalog.
	ErrCatalog = errors.New("catalog error")
	// ErrCart indicates a cart operation error.
	ErrCart = errors.New("cart error")
	// ErrNotFound indicates a resource was not found.
	ErrNotFound = errors.New("not found")
)

// Error is the base error type for sweetcakes errors.
// It wraps an underlying error and provides additional context.
type Error struct {
	// Kind is the category of error (e.g., ErrStorage, ErrConfig).
	Kind error
	// Message is the human-readable error message.
	Message string
	// Suggestion provides actionable advice for resolving the error.
	Suggestion string
	// Cause is the underlying error that caused this error.
	Cause error
	// Details provides additional context (e.g., storage key, file path).
	Details map[string]string
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

// Unwrap returns the underlying cause for use with errors.Is/errors.As.
func (e *Error) Unwrap() error {
	if e.Cause != nil {
		return e.Cause
	}
	return e.Kind
}

// Is reports whether the error kind matches the target.
func (e *Error) Is(target error) bool {
	return errors.Is(e.Kind, target)
}

// Format returns a formatted error message with details and suggestion.
// Details are printed in key order so output is stable.
func (e *Error) Format() string {
	var sb strings.Builder

	sb.WriteString("Error: ")
	sb.WriteString(e.Error())
	sb.WriteString("\n")

	if len(e.Details) > 0 {
		keys := make([]string, 0, len(e.Details))
		for k := range e.Details {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		sb.WriteString("\nDetails:\n")
		for _, k := range keys {
			sb.WriteString(fmt.Sprintf("  %s: %s\n", k, e.Details[k]))
		}
	}

	if e.Suggestion != "" {
		sb.WriteString("\nSuggestion: ")
		sb.WriteString(e.Suggestion)
		sb.WriteString("\n")
	}

	return sb.String()
}

// WithDetails adds details to the error.
func (e *Error) WithDetails(key, value string) *Error {
	if e.Details == nil {
		e.Details = make(map[string]string)
	}
	e.Details[key] = value
	return e
}

// WithCause sets the underlying cause of the error.
func (e *Error) WithCause(cause error) *Error {
	e.Cause = cause
	return e
}

// New creates a new Error with the given kind and message.
func New(kind error, message string) *Error {
	return &Error{
		Kind:    kind,
		Message: message,
	}
}

// Wrap wraps an existing error with additional context.
func Wrap(err error, kind error, message string) *Error {
	return &Error{
		Kind:    kind,
		Message: message,
		Cause:   err,
	}
}

// WithSuggestion creates a new error with a suggestion.
func WithSuggestion(kind error, message, suggestion string) *Error {
	return &Error{
		Kind:       kind,
		Message:    message,
		Suggestion: suggestion,
	}
}

// Is is a shorthand for errors.Is so callers importing this package under
// its own name don't also need the standard library package.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As is a shorthand for errors.As.
func As(err error, target any) bool {
	return errors.As(err, target)
}

// Format renders err for the terminal. Errors of this package include their
// details and suggestion; anything else is rendered as a plain message.
func Format(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Format()
	}
	return "Error: " + err.Error() + "\n"
}

package form

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrSubmissionInFlight is returned by BeginSubmission while a previous
	// submission has not completed.
	ErrSubmissionInFlight = errors.New("form: submission already in flight")
	// ErrUnknownTheme signals a theme outside the closed set.
	ErrUnknownTheme = errors.New("form: unknown theme")
)

// InvalidFieldError reports a field name outside the catalog, or an attempt to
// change a field that is not user-editable.
type InvalidFieldError struct {
	Name   string
	Reason string
}

func (e *InvalidFieldError) Error() string {
	if e.Reason == "" {
		return fmt.Sprintf("form: invalid field %q", e.Name)
	}
	return fmt.Sprintf("form: invalid field %q: %s", e.Name, e.Reason)
}

// Issue is a single out-of-domain value found while validating a snapshot.
type Issue struct {
	Field  string
	Value  int
	Reason string
}

// ValidationError collects every issue found at the serialization boundary.
type ValidationError struct {
	Issues []Issue
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Issues))
	for _, issue := range e.Issues {
		parts = append(parts, fmt.Sprintf("%s=%d %s", issue.Field, issue.Value, issue.Reason))
	}
	return "form: invalid values: " + strings.Join(parts, "; ")
}

// UserMessage renders the issues for display next to the form.
func (e *ValidationError) UserMessage() string {
	names := make([]string, 0, len(e.Issues))
	for _, issue := range e.Issues {
		names = append(names, fmt.Sprintf("%s (%s)", issue.Field, issue.Reason))
	}
	return "Please check your answers: " + strings.Join(names, ", ")
}

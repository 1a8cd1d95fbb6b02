package render

import (
	"strings"

	"github.com/goliatone/go-medrec/pkg/form"
)

// ErrorMapping splits validation issues into field-level and form-level
// messages keyed by field name.
type ErrorMapping struct {
	Fields map[string][]string
	Form   []string
}

// MergeFormErrors concatenates and normalises multiple form-level error
// slices, trimming whitespace and removing duplicates while preserving order.
func MergeFormErrors(existing []string, extras ...string) []string {
	combined := make([]string, 0, len(existing)+len(extras))
	combined = append(combined, existing...)
	combined = append(combined, extras...)
	return normalizeMessages(combined)
}

// MapIssues turns snapshot validation issues into renderer feedback. Issues
// for fields the page does not show (unknown or read-only) become form-level
// messages so they are not lost.
func MapIssues(issues []form.Issue) ErrorMapping {
	mapping := ErrorMapping{
		Fields: make(map[string][]string),
	}
	for _, issue := range issues {
		message := strings.TrimSpace(issue.Reason)
		if message == "" {
			continue
		}
		field, _, ok := form.Lookup(strings.TrimSpace(issue.Field))
		if !ok || !field.Editable() {
			mapping.Form = append(mapping.Form, issue.Field+": "+message)
			continue
		}
		mapping.Fields[field.Name] = append(mapping.Fields[field.Name], message)
	}

	for name, messages := range mapping.Fields {
		mapping.Fields[name] = normalizeMessages(messages)
	}
	if len(mapping.Fields) == 0 {
		mapping.Fields = nil
	}
	mapping.Form = normalizeMessages(mapping.Form)
	return mapping
}

func normalizeMessages(messages []string) []string {
	if len(messages) == 0 {
		return nil
	}

	out := make([]string, 0, len(messages))
	seen := make(map[string]struct{}, len(messages))

	for _, message := range messages {
		trimmed := strings.TrimSpace(message)
		if trimmed == "" {
			continue
		}
		if _, exists := seen[trimmed]; exists {
			continue
		}
		seen[trimmed] = struct{}{}
		out = append(out, trimmed)
	}

	if len(out) == 0 {
		return nil
	}
	return out
}

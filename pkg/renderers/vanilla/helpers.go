package vanilla

import (
	"html"
	"sort"
	"strings"
)

// predictionHTML escapes backend text for display. Prediction lines are plain
// text, so entities stay literal. A sanitizer policy, when configured,
// replaces the escaping and decides which markup survives.
func (r *Renderer) predictionHTML(text string) string {
	if r.policy == nil {
		return html.EscapeString(text)
	}
	return r.policy.Sanitize(text)
}

func controlID(name string) string {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return ""
	}
	return "medrec-" + trimmed
}

// cssDeclarations renders CSS custom properties in key order. Declarations
// whose name or value could break out of the rule are dropped.
func cssDeclarations(vars map[string]string) string {
	if len(vars) == 0 {
		return ""
	}
	names := make([]string, 0, len(vars))
	for name := range vars {
		names = append(names, name)
	}
	sort.Strings(names)

	var b strings.Builder
	for _, name := range names {
		value := strings.TrimSpace(vars[name])
		if !strings.HasPrefix(name, "--") || unsafeCSS(name) || value == "" || unsafeCSS(value) {
			continue
		}
		b.WriteString(name)
		b.WriteString(": ")
		b.WriteString(value)
		b.WriteString("; ")
	}
	return strings.TrimSpace(b.String())
}

func unsafeCSS(value string) bool {
	return strings.ContainsAny(value, ";{}<>\\\n\r")
}

package render

import theme "github.com/goliatone/go-theme"

// RenderOptions describe per-request data that renderers can use to customise
// their output without touching the session store.
type RenderOptions struct {
	// Theme carries the resolved tokens, CSS variables, partials and asset
	// resolver. Renderers fall back to their bundled defaults when nil.
	Theme *theme.RendererConfig
	// Errors surfaces validation feedback keyed by field name.
	Errors map[string][]string
	// FormErrors are messages not tied to a single field.
	FormErrors []string
	// HiddenFields are emitted as hidden inputs inside the form.
	HiddenFields map[string]string
	// Actions overrides the endpoints the page posts to.
	Actions Actions
}

// Actions lists the endpoints an HTML page posts to.
type Actions struct {
	Submit    string
	Field     string
	Theme     string
	ThemeMenu string
}

// DefaultActions matches the routes served by the medrec HTTP server.
func DefaultActions() Actions {
	return Actions{
		Submit:    "/submit",
		Field:     "/fields",
		Theme:     "/theme",
		ThemeMenu: "/theme/menu",
	}
}

// WithDefaults fills empty action paths.
func (a Actions) WithDefaults() Actions {
	defaults := DefaultActions()
	if a.Submit == "" {
		a.Submit = defaults.Submit
	}
	if a.Field == "" {
		a.Field = defaults.Field
	}
	if a.Theme == "" {
		a.Theme = defaults.Theme
	}
	if a.ThemeMenu == "" {
		a.ThemeMenu = defaults.ThemeMenu
	}
	return a
}

// Package themes bundles the go-theme manifest for the medicine recommendation
// page and resolves a form.Theme into the renderer configuration consumed by
// the HTML renderer (tokens, CSS variables, partials and asset URLs).
package themes

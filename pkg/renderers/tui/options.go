package tui

import "io"

// OutputFormat controls how Render serializes a document.
type OutputFormat string

const (
	// OutputFormatPrettyText emits the segmented result for a terminal.
	OutputFormatPrettyText OutputFormat = "pretty"
	// OutputFormatJSON emits the field values and result as JSON.
	OutputFormatJSON OutputFormat = "json"
)

// Theme captures optional message prefixes. Keep minimal to avoid coupling
// renderer logic to ANSI specifics.
type Theme struct {
	PromptPrefix string
	InfoPrefix   string
	ErrorPrefix  string
	BulletPrefix string
}

// Option configures the TUI renderer.
type Option func(*Renderer)

// WithPromptDriver overrides the prompt driver used by the renderer.
func WithPromptDriver(driver PromptDriver) Option {
	return func(r *Renderer) {
		if driver != nil {
			r.driver = driver
		}
	}
}

// WithOutput sets where the default survey driver prints messages.
func WithOutput(w io.Writer) Option {
	return func(r *Renderer) {
		if w != nil {
			r.out = w
		}
	}
}

// WithOutputFormat selects the output serialization format.
func WithOutputFormat(format OutputFormat) Option {
	return func(r *Renderer) {
		if format != "" {
			r.outputFormat = format
		}
	}
}

// WithTheme applies optional message prefixes.
func WithTheme(theme Theme) Option {
	return func(r *Renderer) {
		r.theme = theme
	}
}

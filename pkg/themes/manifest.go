package themes

import (
	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-medrec/pkg/form"
)

const (
	// Name is the bundled manifest name.
	Name = "medrec"
	// AssetPrefix is where the HTTP server mounts theme assets.
	AssetPrefix = "/assets"
	// StylesheetAsset is the asset key of the page stylesheet.
	StylesheetAsset = "stylesheet"
)

// Partial keys understood by the HTML renderer.
const (
	PartialPage    = "medrec.page"
	PartialForm    = "medrec.form"
	PartialResult  = "medrec.result"
	PartialThemes  = "medrec.theme-menu"
	PartialSection = "medrec.section"
)

// DefaultPartials maps partial keys to template names in the renderer's
// embedded template set. Manifests may override any entry.
func DefaultPartials() map[string]string {
	return map[string]string{
		PartialPage:    "templates/page.tmpl",
		PartialForm:    "templates/form.tmpl",
		PartialSection: "templates/section.tmpl",
		PartialResult:  "templates/result.tmpl",
		PartialThemes:  "templates/theme_menu.tmpl",
	}
}

// Manifest returns a fresh copy of the bundled manifest. The base tokens are
// the light palette; every form.Theme is a variant.
func Manifest() *theme.Manifest {
	return &theme.Manifest{
		Name:    Name,
		Version: "1.0.0",
		Tokens: map[string]string{
			"color-bg":         "#f5f7fb",
			"color-surface":    "#ffffff",
			"color-text":       "#1f2933",
			"color-muted":      "#52606d",
			"color-primary":    "#2563eb",
			"color-primary-fg": "#ffffff",
			"color-border":     "#d9e2ec",
			"color-error":      "#b91c1c",
			"color-severity":   "#9a3412",
			"radius":           "10px",
			"font-family":      "system-ui, -apple-system, 'Segoe UI', sans-serif",
		},
		Assets: theme.Assets{
			Prefix: AssetPrefix,
			Files: map[string]string{
				StylesheetAsset: "medrec.css",
			},
		},
		Variants: map[string]theme.Variant{
			string(form.ThemeLight): {},
			string(form.ThemeDark): {
				Tokens: map[string]string{
					"color-bg":       "#111827",
					"color-surface":  "#1f2937",
					"color-text":     "#f3f4f6",
					"color-muted":    "#9ca3af",
					"color-primary":  "#60a5fa",
					"color-border":   "#374151",
					"color-error":    "#f87171",
					"color-severity": "#fdba74",
				},
			},
			string(form.ThemeEyeCare): {
				Tokens: map[string]string{
					"color-bg":       "#f4ecd8",
					"color-surface":  "#fbf5e6",
					"color-text":     "#433422",
					"color-muted":    "#6b5a45",
					"color-primary":  "#8a6d3b",
					"color-border":   "#e0d3b8",
					"color-severity": "#7c4a03",
				},
			},
		},
	}
}

// Register adds the bundled manifest to a go-theme registry.
func Register(registry interface{ Register(*theme.Manifest) error }) error {
	return registry.Register(Manifest())
}

package vanilla

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/microcosm-cc/bluemonday"

	"github.com/goliatone/go-medrec/pkg/render"
	rendertemplate "github.com/goliatone/go-medrec/pkg/render/template"
	gotemplate "github.com/goliatone/go-medrec/pkg/render/template/gotemplate"
	"github.com/goliatone/go-medrec/pkg/themes"
)

// Name is the registry name of the HTML renderer.
const Name = "vanilla"

type Option func(*config)

type config struct {
	templateFS       fs.FS
	templateRenderer rendertemplate.TemplateRenderer
	policy           *bluemonday.Policy
	inlineStyles     bool
}

// WithTemplatesFS supplies an alternate template bundle via fs.FS.
func WithTemplatesFS(files fs.FS) Option {
	return func(cfg *config) {
		cfg.templateFS = files
	}
}

// WithTemplatesDir loads templates from a directory on disk.
func WithTemplatesDir(path string) Option {
	return func(cfg *config) {
		if path == "" {
			return
		}
		cfg.templateFS = os.DirFS(path)
	}
}

// WithTemplateRenderer injects a custom template renderer implementation.
func WithTemplateRenderer(renderer rendertemplate.TemplateRenderer) Option {
	return func(cfg *config) {
		if renderer != nil {
			cfg.templateRenderer = renderer
		}
	}
}

// WithSanitizer sanitizes prediction lines with policy instead of escaping
// them as plain text.
func WithSanitizer(policy *bluemonday.Policy) Option {
	return func(cfg *config) {
		if policy != nil {
			cfg.policy = policy
		}
	}
}

// WithInlineStyles embeds the bundled stylesheet in the page instead of
// linking it, for pages saved to disk.
func WithInlineStyles() Option {
	return func(cfg *config) {
		cfg.inlineStyles = true
	}
}

// Renderer draws a render.Document as a standalone HTML page.
type Renderer struct {
	templates    rendertemplate.TemplateRenderer
	policy       *bluemonday.Policy
	selector     *themes.Selector
	inlineStyles bool
}

var _ render.Renderer = (*Renderer)(nil)

// New constructs the vanilla renderer applying any provided options.
func New(options ...Option) (*Renderer, error) {
	cfg := config{templateFS: TemplatesFS()}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}

	if cfg.templateFS == nil {
		cfg.templateFS = TemplatesFS()
	}

	templates := cfg.templateRenderer
	if templates == nil {
		engine, err := gotemplate.New(
			gotemplate.WithFS(cfg.templateFS),
			gotemplate.WithExtension(".tmpl"),
		)
		if err != nil {
			return nil, fmt.Errorf("vanilla renderer: configure template renderer: %w", err)
		}
		templates = engine
	}

	selector, err := themes.NewSelector()
	if err != nil {
		return nil, fmt.Errorf("vanilla renderer: theme selector: %w", err)
	}

	return &Renderer{
		templates:    templates,
		policy:       cfg.policy,
		selector:     selector,
		inlineStyles: cfg.inlineStyles,
	}, nil
}

func (r *Renderer) Name() string {
	return Name
}

func (r *Renderer) ContentType() string {
	return "text/html; charset=utf-8"
}

// Render draws the page. Partials come from the theme configuration and fall
// back to themes.DefaultPartials; without a theme configuration the document's
// theme is resolved against the bundled manifest.
func (r *Renderer) Render(ctx context.Context, doc render.Document, opts render.RenderOptions) ([]byte, error) {
	if r.templates == nil {
		return nil, fmt.Errorf("vanilla renderer: template renderer is nil")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	themeCfg := opts.Theme
	if themeCfg == nil {
		resolved, err := r.selector.ForTheme(doc.Theme)
		if err != nil {
			return nil, fmt.Errorf("vanilla renderer: resolve theme: %w", err)
		}
		themeCfg = resolved
	}
	partials := themes.DefaultPartials()
	for key, name := range themeCfg.Partials {
		if strings.TrimSpace(name) != "" {
			partials[key] = name
		}
	}

	actions := opts.Actions.WithDefaults()

	menu, err := r.partial(partials[themes.PartialThemes], map[string]any{
		"themes":    doc.Themes,
		"menu_open": doc.MenuOpen,
		"icon":      doc.ThemeIcon(),
		"actions":   actions,
	})
	if err != nil {
		return nil, err
	}

	sections := make([]string, 0, len(doc.Page.Sections))
	for _, section := range doc.Page.Sections {
		html, err := r.partial(partials[themes.PartialSection], map[string]any{
			"section": newSectionView(section, opts.Errors),
		})
		if err != nil {
			return nil, err
		}
		sections = append(sections, html)
	}

	hidden := render.SortedHiddenFields(render.MergeHiddenFields(opts.HiddenFields, render.SchemaField()))
	formHTML, err := r.partial(partials[themes.PartialForm], map[string]any{
		"sections":    sections,
		"submit":      doc.Page.Submit,
		"loading":     doc.Loading,
		"hidden":      hidden,
		"form_errors": render.MergeFormErrors(opts.FormErrors),
		"actions":     actions,
	})
	if err != nil {
		return nil, err
	}

	var resultHTML string
	if doc.Result != nil {
		resultHTML, err = r.partial(partials[themes.PartialResult], map[string]any{
			"result": r.newResultView(doc.Result),
		})
		if err != nil {
			return nil, err
		}
	}

	page := map[string]any{
		"title":      doc.Page.Title,
		"subtitle":   doc.Page.Subtitle,
		"theme":      string(doc.Theme),
		"variant":    themeCfg.Variant,
		"css_vars":   cssDeclarations(themeCfg.CSSVars),
		"theme_menu": menu,
		"form":       formHTML,
		"result":     resultHTML,
	}
	if r.inlineStyles {
		page["inline_css"] = defaultStylesheet()
	} else if themeCfg.AssetURL != nil {
		page["stylesheet"] = themeCfg.AssetURL(themes.StylesheetAsset)
	}

	out, err := r.partial(partials[themes.PartialPage], page)
	if err != nil {
		return nil, err
	}
	return []byte(out), nil
}

func (r *Renderer) partial(name string, data map[string]any) (string, error) {
	if strings.TrimSpace(name) == "" {
		return "", fmt.Errorf("vanilla renderer: partial name is empty")
	}
	out, err := r.templates.RenderTemplate(name, data)
	if err != nil {
		return "", fmt.Errorf("vanilla renderer: render template: %w", err)
	}
	return out, nil
}

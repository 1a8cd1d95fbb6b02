package vanilla_test

import (
	"context"
	"io/fs"
	"strings"
	"testing"

	theme "github.com/goliatone/go-theme"
	"github.com/microcosm-cc/bluemonday"

	"github.com/goliatone/go-medrec/pkg/form"
	"github.com/goliatone/go-medrec/pkg/render"
	"github.com/goliatone/go-medrec/pkg/renderers/vanilla"
	"github.com/goliatone/go-medrec/pkg/uischema"
)

func newDocument(t *testing.T, store *form.Store) render.Document {
	t.Helper()
	layout, err := uischema.Default()
	if err != nil {
		t.Fatalf("layout: %v", err)
	}
	return render.NewDocument(layout, store.View())
}

func renderStore(t *testing.T, store *form.Store, opts render.RenderOptions, options ...vanilla.Option) string {
	t.Helper()
	renderer, err := vanilla.New(options...)
	if err != nil {
		t.Fatalf("new renderer: %v", err)
	}
	out, err := renderer.Render(context.Background(), newDocument(t, store), opts)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	return string(out)
}

func assertContains(t *testing.T, html string, fragments ...string) {
	t.Helper()
	for _, fragment := range fragments {
		if !strings.Contains(html, fragment) {
			t.Fatalf("expected output to contain %q\n%s", fragment, html)
		}
	}
}

func assertNotContains(t *testing.T, html string, fragments ...string) {
	t.Helper()
	for _, fragment := range fragments {
		if strings.Contains(html, fragment) {
			t.Fatalf("expected output not to contain %q\n%s", fragment, html)
		}
	}
}

func TestRenderer_DefaultPage(t *testing.T) {
	html := renderStore(t, form.NewStore(), render.RenderOptions{})

	assertContains(t, html,
		"<title>Medicine Recommendation System</title>",
		`<link rel="stylesheet" href="/assets/medrec.css">`,
		"--color-bg: #f5f7fb;",
		`class="app light"`,
		"<h2>Personal Information</h2>",
		"<h2>Common Symptoms</h2>",
		"<h2>Additional Symptoms</h2>",
		"<h2>Additional Information</h2>",
		`<option value="1" selected>Adult</option>`,
		`<input type="number" id="medrec-duration" name="duration" value="0" min="0" class="form-control">`,
		`<input type="radio" name="cough" value="0" checked> No`,
		`data-field="runny-nose"`,
		`<input type="hidden" name="_schema" value="v1">`,
		`<form method="post" action="/submit" class="symptom-form">`,
		">Get Medicine Recommendations</button>",
	)
	assertNotContains(t, html,
		`name="additionalInformation"`,
		"prediction-container",
		"theme-menu",
		" disabled",
	)
}

func TestRenderer_LoadingDisablesSubmit(t *testing.T) {
	store := form.NewStore()
	if _, err := store.BeginSubmission(); err != nil {
		t.Fatalf("begin: %v", err)
	}
	html := renderStore(t, store, render.RenderOptions{})
	assertContains(t, html, `<button type="submit" class="submit-button" disabled aria-busy="true">Getting Recommendations...</button>`)
}

func TestRenderer_SegmentedPrediction(t *testing.T) {
	store := form.NewStore()
	if err := store.SetField("cough", 1); err != nil {
		t.Fatalf("set field: %v", err)
	}
	store.CompleteSubmission(form.Success("Severity Level: High\nRecommended Medicines:\nâ€¢ MedA <script>x()</script>\n\nNote: consult a doctor & rest\nFollow up"))

	html := renderStore(t, store, render.RenderOptions{})
	assertContains(t, html,
		`<input type="radio" name="cough" value="1" checked> Yes`,
		`<h3 class="severity-level">Severity Level: High</h3>`,
		`<h3 class="recommendations-title">Recommended Medicines:</h3>`,
		`<div class="medicine-item">â€¢ MedA &lt;script&gt;x()&lt;/script&gt;</div>`,
		`<hr class="divider">`,
		`<div class="note">Note: consult a doctor &amp; rest</div>`,
		`<div>Follow up</div>`,
	)
	assertNotContains(t, html, "<script>", "&amp;amp;")
}

func TestRenderer_PredictionKeepsEntitiesLiteral(t *testing.T) {
	store := form.NewStore()
	store.CompleteSubmission(form.Success("Severity Level: Low\nNote: take A &amp; B <b>x</b>"))

	html := renderStore(t, store, render.RenderOptions{})
	assertContains(t, html, `<div class="note">Note: take A &amp;amp; B &lt;b&gt;x&lt;/b&gt;</div>`)
	assertNotContains(t, html, "<b>x</b>")
}

func TestRenderer_SanitizerOverride(t *testing.T) {
	store := form.NewStore()
	store.CompleteSubmission(form.Success("Severity Level: Low\nNote: take <b>two</b> <script>x()</script>"))

	policy := bluemonday.NewPolicy()
	policy.AllowElements("b")
	html := renderStore(t, store, render.RenderOptions{}, vanilla.WithSanitizer(policy))
	assertContains(t, html, `<div class="note">Note: take <b>two</b> </div>`)
	assertNotContains(t, html, "<script>", "&lt;b&gt;")
}

func TestRenderer_FailureMessage(t *testing.T) {
	store := form.NewStore()
	store.CompleteSubmission(form.Failure(form.FailureRemoteRejection, `Model <not> loaded`))

	html := renderStore(t, store, render.RenderOptions{})
	assertContains(t, html, `<div class="error-message" role="alert">Model &lt;not&gt; loaded</div>`)
	assertNotContains(t, html, "prediction-content")
}

func TestRenderer_ThemeMenuAndVariant(t *testing.T) {
	store := form.NewStore()
	if err := store.SetTheme(form.ThemeEyeCare); err != nil {
		t.Fatalf("set theme: %v", err)
	}
	store.ToggleMenu()

	html := renderStore(t, store, render.RenderOptions{})
	assertContains(t, html,
		`class="app eye-care"`,
		`data-variant="eye-care"`,
		"--color-bg: #f4ecd8;",
		`<div class="theme-menu">`,
		`<button type="submit" class="theme-option active">Eye Care Mode 👁️</button>`,
		`<button type="submit" class="theme-option">Dark Mode 🌙</button>`,
		`aria-expanded="true"`,
	)
}

func TestRenderer_ErrorsAndHiddenFields(t *testing.T) {
	html := renderStore(t, form.NewStore(), render.RenderOptions{
		Errors:       map[string][]string{form.FieldAgeGroup: {"must be 0, 1 or 2"}},
		FormErrors:   []string{" Please check your answers ", "Please check your answers"},
		HiddenFields: map[string]string{"redirect": "/"},
		Actions:      render.Actions{Submit: "/app/submit"},
	})
	assertContains(t, html,
		`<form method="post" action="/app/submit" class="symptom-form">`,
		`<form method="post" action="/theme/menu">`,
		`<input type="hidden" name="redirect" value="/">`,
		`<p class="field-error">must be 0, 1 or 2</p>`,
		`class="form-group has-error"`,
		"<li>Please check your answers</li>",
	)
	if strings.Count(html, "<li>Please check your answers</li>") != 1 {
		t.Fatalf("form errors should be de-duplicated")
	}
}

func TestRenderer_ThemeConfigOverrides(t *testing.T) {
	cfg := &theme.RendererConfig{
		Theme:   "acme",
		Variant: "dark",
		CSSVars: map[string]string{
			"--brand":  "#123456",
			"--escape": "red; } body { display: none",
		},
		AssetURL: func(key string) string {
			return "/themes/acme/" + key + ".css"
		},
	}
	html := renderStore(t, form.NewStore(), render.RenderOptions{Theme: cfg})
	assertContains(t, html,
		`href="/themes/acme/stylesheet.css"`,
		"--brand: #123456;",
		`data-variant="dark"`,
	)
	assertNotContains(t, html, "display: none")
}

func TestRenderer_InlineStyles(t *testing.T) {
	html := renderStore(t, form.NewStore(), render.RenderOptions{}, vanilla.WithInlineStyles())
	assertContains(t, html, ".submit-button[disabled]")
	assertNotContains(t, html, `<link rel="stylesheet"`)
}

func TestRenderer_Metadata(t *testing.T) {
	renderer, err := vanilla.New()
	if err != nil {
		t.Fatalf("new renderer: %v", err)
	}
	if renderer.Name() != vanilla.Name || !strings.HasPrefix(renderer.ContentType(), "text/html") {
		t.Fatalf("unexpected metadata %s %s", renderer.Name(), renderer.ContentType())
	}
	data, err := fs.ReadFile(vanilla.AssetsFS(), vanilla.StylesheetName)
	if err != nil || !strings.Contains(string(data), ".medicine-item") {
		t.Fatalf("expected bundled stylesheet, err=%v", err)
	}
}

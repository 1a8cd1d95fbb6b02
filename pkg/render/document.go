package render

import (
	"github.com/goliatone/go-medrec/pkg/form"
	"github.com/goliatone/go-medrec/pkg/segment"
	"github.com/goliatone/go-medrec/pkg/uischema"
)

// Document is everything a renderer draws for one session: the bound layout,
// the transient UI state and the classified result.
type Document struct {
	Page     uischema.Page
	Theme    form.Theme
	Themes   []ThemeOption
	MenuOpen bool
	Loading  bool
	Result   *ResultView
}

// ThemeOption is one entry of the theme menu.
type ThemeOption struct {
	Name   string
	Label  string
	Icon   string
	Active bool
}

// ResultView is the last submission outcome, segmented for display.
type ResultView struct {
	OK       bool              `json:"ok"`
	Message  string            `json:"message,omitempty"`
	Failure  string            `json:"failure,omitempty"`
	Segments []segment.Segment `json:"segments,omitempty"`
}

var themeLabels = map[form.Theme]struct{ label, icon string }{
	form.ThemeLight:   {label: "Light Mode", icon: "☀️"},
	form.ThemeDark:    {label: "Dark Mode", icon: "🌙"},
	form.ThemeEyeCare: {label: "Eye Care Mode", icon: "👁️"},
}

// NewDocument binds layout to view.
func NewDocument(layout *uischema.Layout, view form.View) Document {
	doc := Document{
		Page:     layout.Bind(view.Values),
		Theme:    view.Theme,
		MenuOpen: view.MenuOpen,
		Loading:  view.Loading,
	}
	for _, t := range form.Themes() {
		meta := themeLabels[t]
		doc.Themes = append(doc.Themes, ThemeOption{
			Name:   string(t),
			Label:  meta.label,
			Icon:   meta.icon,
			Active: t == view.Theme,
		})
	}
	if view.Result != nil {
		doc.Result = NewResultView(*view.Result)
	}
	return doc
}

// NewResultView segments a success result. Failures carry only the message.
func NewResultView(result form.Result) *ResultView {
	view := &ResultView{
		OK:      result.OK(),
		Message: result.Message,
		Failure: string(result.Failure),
	}
	if view.OK {
		view.Segments = segment.Split(result.Text)
	}
	return view
}

// ThemeIcon returns the menu icon of the active theme.
func (d Document) ThemeIcon() string {
	return themeLabels[d.Theme].icon
}

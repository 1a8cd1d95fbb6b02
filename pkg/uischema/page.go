package uischema

import "github.com/goliatone/go-medrec/pkg/form"

// Page is a layout bound to concrete field values, ready for a renderer.
type Page struct {
	Title    string
	Subtitle string
	Submit   ActionConfig
	Sections []SectionView
}

// SectionView is a section with its bound fields.
type SectionView struct {
	ID          string
	Title       string
	Description string
	Icon        string
	Grid        string
	Fields      []FieldView
}

// FieldView carries everything a template needs to draw one input.
type FieldView struct {
	Name     string
	Label    string
	Widget   string
	HelpText string
	Value    int
	On       bool
	Options  []OptionView
}

// OptionView is a select option with its selection state.
type OptionView struct {
	Value    int
	Label    string
	Selected bool
}

// Bind pairs every configured field with its value in snap.
func (l *Layout) Bind(snap form.Snapshot) Page {
	if l == nil {
		return Page{}
	}
	page := Page{
		Title:    l.Form.Title,
		Subtitle: l.Form.Subtitle,
		Submit:   l.Form.Submit,
		Sections: make([]SectionView, 0, len(l.Sections)),
	}
	for _, section := range l.Sections {
		view := SectionView{
			ID:          section.ID,
			Title:       section.Title,
			Description: section.Description,
			Icon:        section.Icon,
			Grid:        section.Grid,
			Fields:      make([]FieldView, 0, len(section.Fields)),
		}
		for _, cfg := range section.Fields {
			value, _ := snap.Value(cfg.Name)
			field := FieldView{
				Name:     cfg.Name,
				Label:    cfg.Label,
				Widget:   string(cfg.Widget),
				HelpText: cfg.HelpText,
				Value:    value,
				On:       value == 1,
			}
			for _, opt := range cfg.Options {
				field.Options = append(field.Options, OptionView{
					Value:    opt.Value,
					Label:    opt.Label,
					Selected: opt.Value == value,
				})
			}
			view.Fields = append(view.Fields, field)
		}
		page.Sections = append(page.Sections, view)
	}
	return page
}

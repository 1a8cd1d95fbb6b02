package vanilla

import (
	"strconv"

	"github.com/goliatone/go-medrec/pkg/render"
	"github.com/goliatone/go-medrec/pkg/uischema"
)

type sectionView struct {
	ID          string      `json:"id"`
	Title       string      `json:"title"`
	Description string      `json:"description"`
	Icon        string      `json:"icon"`
	Grid        string      `json:"grid"`
	Fields      []fieldView `json:"fields"`
}

type fieldView struct {
	ID       string       `json:"id"`
	Name     string       `json:"name"`
	Label    string       `json:"label"`
	Widget   string       `json:"widget"`
	HelpText string       `json:"help_text"`
	Value    string       `json:"value"`
	On       bool         `json:"on"`
	Errors   []string     `json:"errors"`
	Options  []optionView `json:"options"`
}

type optionView struct {
	Value    string `json:"value"`
	Label    string `json:"label"`
	Selected bool   `json:"selected"`
}

type resultView struct {
	OK      bool       `json:"ok"`
	Message string     `json:"message"`
	Lines   []lineView `json:"lines"`
}

// lineView is one prediction line. HTML holds sanitized, already escaped
// text.
type lineView struct {
	Element string `json:"element"`
	Class   string `json:"class"`
	Tag     string `json:"tag"`
	HTML    string `json:"html"`
}

func newSectionView(section uischema.SectionView, errors map[string][]string) sectionView {
	view := sectionView{
		ID:          section.ID,
		Title:       section.Title,
		Description: section.Description,
		Icon:        section.Icon,
		Grid:        section.Grid,
		Fields:      make([]fieldView, 0, len(section.Fields)),
	}
	for _, field := range section.Fields {
		fv := fieldView{
			ID:       controlID(field.Name),
			Name:     field.Name,
			Label:    field.Label,
			Widget:   field.Widget,
			HelpText: field.HelpText,
			Value:    strconv.Itoa(field.Value),
			On:       field.On,
			Errors:   errors[field.Name],
		}
		for _, opt := range field.Options {
			fv.Options = append(fv.Options, optionView{
				Value:    strconv.Itoa(opt.Value),
				Label:    opt.Label,
				Selected: opt.Selected,
			})
		}
		view.Fields = append(view.Fields, fv)
	}
	return view
}

func (r *Renderer) newResultView(result *render.ResultView) resultView {
	view := resultView{OK: result.OK, Message: result.Message}
	for _, seg := range result.Segments {
		element, class := lineMarkup(seg.Tag)
		view.Lines = append(view.Lines, lineView{
			Element: element,
			Class:   string(class),
			Tag:     string(seg.Tag),
			HTML:    r.predictionHTML(seg.Text),
		})
	}
	return view
}

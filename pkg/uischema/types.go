package uischema

// Widget names the input control used for a field.
type Widget string

const (
	WidgetSelect Widget = "select"
	WidgetToggle Widget = "toggle"
	WidgetNumber Widget = "number"
)

// Layout is a validated page layout. It is safe for concurrent readers when
// treated as immutable after construction.
type Layout struct {
	Version  string
	Source   string
	Form     FormConfig
	Sections []SectionConfig
}

// FormConfig captures page-level copy and the submit action.
type FormConfig struct {
	Title    string            `json:"title" yaml:"title"`
	Subtitle string            `json:"subtitle" yaml:"subtitle"`
	Submit   ActionConfig      `json:"submit" yaml:"submit"`
	Metadata map[string]string `json:"metadata,omitempty" yaml:"metadata,omitempty"`
}

// ActionConfig describes the submit button. LoadingLabel replaces Label while a
// submission is in flight.
type ActionConfig struct {
	Label        string `json:"label" yaml:"label"`
	LoadingLabel string `json:"loadingLabel" yaml:"loadingLabel"`
}

// SectionConfig groups related fields into a card.
type SectionConfig struct {
	ID          string        `json:"id" yaml:"id"`
	Title       string        `json:"title" yaml:"title"`
	Description string        `json:"description,omitempty" yaml:"description,omitempty"`
	Icon        string        `json:"icon,omitempty" yaml:"icon,omitempty"`
	Grid        string        `json:"grid,omitempty" yaml:"grid,omitempty"`
	Fields      []FieldConfig `json:"fields" yaml:"fields"`
}

// FieldConfig customises how a single field is rendered.
type FieldConfig struct {
	Name     string         `json:"name" yaml:"name"`
	Label    string         `json:"label" yaml:"label"`
	Widget   Widget         `json:"widget" yaml:"widget"`
	HelpText string         `json:"helpText,omitempty" yaml:"helpText,omitempty"`
	Options  []OptionConfig `json:"options,omitempty" yaml:"options,omitempty"`
}

// OptionConfig is one choice of a select widget.
type OptionConfig struct {
	Value int    `json:"value" yaml:"value"`
	Label string `json:"label" yaml:"label"`
}

// Field returns the configuration of the named field.
func (l *Layout) Field(name string) (FieldConfig, bool) {
	if l == nil {
		return FieldConfig{}, false
	}
	for _, section := range l.Sections {
		for _, field := range section.Fields {
			if field.Name == name {
				return field, true
			}
		}
	}
	return FieldConfig{}, false
}

// Fields returns every configured field in display order.
func (l *Layout) Fields() []FieldConfig {
	if l == nil {
		return nil
	}
	var out []FieldConfig
	for _, section := range l.Sections {
		out = append(out, section.Fields...)
	}
	return out
}

package uischema

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-medrec/pkg/form"
)

const (
	defaultSubmitLabel  = "Get Medicine Recommendations"
	defaultLoadingLabel = "Getting Recommendations..."
)

// Default loads the bundled layout.
func Default() (*Layout, error) {
	return LoadFS(EmbeddedFS(), DefaultLayoutFile)
}

// LoadFile loads a layout document from disk. An empty path selects the
// bundled layout.
func LoadFile(path string) (*Layout, error) {
	if strings.TrimSpace(path) == "" {
		return Default()
	}
	return LoadFS(os.DirFS(filepath.Dir(path)), filepath.Base(path))
}

// LoadFS reads name from fsys and parses it as a JSON or YAML layout document.
func LoadFS(fsys fs.FS, name string) (*Layout, error) {
	if fsys == nil {
		return nil, fmt.Errorf("uischema: filesystem is nil")
	}
	if !isLayoutFile(name) {
		return nil, fmt.Errorf("uischema: %s is not a JSON or YAML document", name)
	}
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return nil, fmt.Errorf("uischema: read %s: %w", name, err)
	}
	return Parse(data, name)
}

// Parse decodes and validates a layout document. source is used in error
// messages only.
func Parse(data []byte, source string) (*Layout, error) {
	doc, err := parseDocument(data, source)
	if err != nil {
		return nil, err
	}

	layout := &Layout{
		Version:  strings.TrimSpace(doc.Version),
		Source:   source,
		Form:     normaliseForm(doc.Form),
		Sections: make([]SectionConfig, 0, len(doc.Sections)),
	}
	for _, raw := range doc.Sections {
		layout.Sections = append(layout.Sections, normaliseSection(raw))
	}

	if err := validate(layout); err != nil {
		return nil, err
	}
	return layout, nil
}

type documentFile struct {
	Version  string          `json:"version" yaml:"version"`
	Form     FormConfig      `json:"form" yaml:"form"`
	Sections []SectionConfig `json:"sections" yaml:"sections"`
}

func parseDocument(data []byte, source string) (documentFile, error) {
	var doc documentFile
	if len(strings.TrimSpace(string(data))) == 0 {
		return documentFile{}, fmt.Errorf("uischema: file %s is empty", source)
	}

	if err := json.Unmarshal(data, &doc); err == nil {
		return doc, nil
	}

	doc = documentFile{}
	if err := yaml.Unmarshal(data, &doc); err == nil {
		return doc, nil
	}

	return documentFile{}, fmt.Errorf("uischema: parse %s: invalid JSON or YAML", source)
}

func normaliseForm(raw FormConfig) FormConfig {
	out := raw
	out.Title = strings.TrimSpace(raw.Title)
	out.Subtitle = strings.TrimSpace(raw.Subtitle)
	out.Submit.Label = strings.TrimSpace(raw.Submit.Label)
	out.Submit.LoadingLabel = strings.TrimSpace(raw.Submit.LoadingLabel)
	if out.Submit.Label == "" {
		out.Submit.Label = defaultSubmitLabel
	}
	if out.Submit.LoadingLabel == "" {
		out.Submit.LoadingLabel = defaultLoadingLabel
	}
	if len(raw.Metadata) > 0 {
		out.Metadata = make(map[string]string, len(raw.Metadata))
		for k, v := range raw.Metadata {
			out.Metadata[k] = v
		}
	}
	return out
}

func normaliseSection(raw SectionConfig) SectionConfig {
	out := SectionConfig{
		ID:          strings.TrimSpace(raw.ID),
		Title:       strings.TrimSpace(raw.Title),
		Description: strings.TrimSpace(raw.Description),
		Icon:        sanitizeIconMarkup(raw.Icon),
		Grid:        strings.TrimSpace(raw.Grid),
		Fields:      make([]FieldConfig, 0, len(raw.Fields)),
	}
	for _, field := range raw.Fields {
		cfg := FieldConfig{
			Name:     strings.TrimSpace(field.Name),
			Label:    strings.TrimSpace(field.Label),
			Widget:   Widget(strings.ToLower(strings.TrimSpace(string(field.Widget)))),
			HelpText: strings.TrimSpace(field.HelpText),
			Options:  append([]OptionConfig(nil), field.Options...),
		}
		if cfg.Label == "" {
			cfg.Label = cfg.Name
		}
		out.Fields = append(out.Fields, cfg)
	}
	return out
}

func isLayoutFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json", ".yaml", ".yml":
		return true
	default:
		return false
	}
}

// widgetFor reports the widget a field kind must be rendered with.
func widgetFor(kind form.Kind) Widget {
	switch kind {
	case form.KindDemographic:
		return WidgetSelect
	case form.KindMagnitude:
		return WidgetNumber
	default:
		return WidgetToggle
	}
}

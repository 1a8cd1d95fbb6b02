package uischema

import (
	"fmt"
	"strings"

	"github.com/goliatone/go-medrec/pkg/form"
)

func validate(layout *Layout) error {
	if layout.Version != form.SchemaVersion {
		return fmt.Errorf("uischema: layout %s targets schema version %q, want %q", layout.Source, layout.Version, form.SchemaVersion)
	}
	if len(layout.Sections) == 0 {
		return fmt.Errorf("uischema: layout %s defines no sections", layout.Source)
	}

	sectionIDs := make(map[string]struct{}, len(layout.Sections))
	placed := make(map[string]string, form.FieldCount)

	for idx, section := range layout.Sections {
		if section.ID == "" {
			return fmt.Errorf("uischema: layout %s section %d has no id", layout.Source, idx)
		}
		if _, exists := sectionIDs[section.ID]; exists {
			return fmt.Errorf("uischema: layout %s defines duplicate section id %q", layout.Source, section.ID)
		}
		sectionIDs[section.ID] = struct{}{}

		for _, cfg := range section.Fields {
			if cfg.Name == "" {
				return fmt.Errorf("uischema: layout %s section %q lists a field without name", layout.Source, section.ID)
			}
			field, _, ok := form.Lookup(cfg.Name)
			if !ok {
				return fmt.Errorf("uischema: layout %s section %q lists unknown field %q", layout.Source, section.ID, cfg.Name)
			}
			if !field.Editable() {
				return fmt.Errorf("uischema: layout %s section %q lists read-only field %q", layout.Source, section.ID, cfg.Name)
			}
			if prev, exists := placed[cfg.Name]; exists {
				return fmt.Errorf("uischema: layout %s places field %q in both %q and %q", layout.Source, cfg.Name, prev, section.ID)
			}
			placed[cfg.Name] = section.ID

			if err := validateWidget(field, cfg); err != nil {
				return fmt.Errorf("uischema: layout %s field %q: %w", layout.Source, cfg.Name, err)
			}
		}
	}

	var missing []string
	for _, field := range form.CanonicalOrder() {
		if !field.Editable() {
			continue
		}
		if _, ok := placed[field.Name]; !ok {
			missing = append(missing, field.Name)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("uischema: layout %s omits fields %s", layout.Source, strings.Join(missing, ", "))
	}
	return nil
}

func validateWidget(field form.Field, cfg FieldConfig) error {
	want := widgetFor(field.Kind)
	if cfg.Widget != want {
		return fmt.Errorf("widget %q does not fit a %s field, use %q", cfg.Widget, field.Kind, want)
	}
	if want != WidgetSelect {
		if len(cfg.Options) > 0 {
			return fmt.Errorf("options are only allowed on %q widgets", WidgetSelect)
		}
		return nil
	}

	if len(cfg.Options) == 0 {
		return fmt.Errorf("select widget needs options")
	}
	seen := make(map[int]struct{}, len(cfg.Options))
	for _, opt := range cfg.Options {
		if err := field.Check(opt.Value); err != nil {
			return fmt.Errorf("option %d: %w", opt.Value, err)
		}
		if _, exists := seen[opt.Value]; exists {
			return fmt.Errorf("duplicate option %d", opt.Value)
		}
		seen[opt.Value] = struct{}{}
		if strings.TrimSpace(opt.Label) == "" {
			return fmt.Errorf("option %d has no label", opt.Value)
		}
	}
	return nil
}

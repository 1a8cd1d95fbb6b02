package tui

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/goliatone/go-medrec/pkg/form"
	"github.com/goliatone/go-medrec/pkg/render"
	"github.com/goliatone/go-medrec/pkg/segment"
	"github.com/goliatone/go-medrec/pkg/uischema"
)

// Name is the registry name of the terminal renderer.
const Name = "tui"

// Renderer prompts for form values in a terminal and prints documents as
// text. It implements render.Renderer.
type Renderer struct {
	driver       PromptDriver
	out          io.Writer
	outputFormat OutputFormat
	theme        Theme
}

var _ render.Renderer = (*Renderer)(nil)

// New constructs a TUI renderer with defaults (survey driver, pretty output).
func New(options ...Option) (*Renderer, error) {
	r := &Renderer{
		outputFormat: OutputFormatPrettyText,
		theme:        Theme{BulletPrefix: "  • "},
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(r)
	}
	if r.driver == nil {
		r.driver = newSurveyDriver(r.out)
	}
	switch r.outputFormat {
	case OutputFormatPrettyText, OutputFormatJSON:
	default:
		return nil, fmt.Errorf("tui: unsupported output format %q", r.outputFormat)
	}
	return r, nil
}

// Name reports the renderer identifier.
func (r *Renderer) Name() string {
	return Name
}

// ContentType reports the serialization format used by Render.
func (r *Renderer) ContentType() string {
	if r.outputFormat == OutputFormatJSON {
		return "application/json"
	}
	return "text/plain; charset=utf-8"
}

// Collect prompts for every field in layout order and writes each answer to
// store. Current store values are offered as defaults.
func (r *Renderer) Collect(ctx context.Context, layout *uischema.Layout, store *form.Store) error {
	if ctx == nil {
		return errors.New("tui: context is required")
	}
	if layout == nil {
		return ErrNoLayout
	}
	if store == nil {
		return ErrNoStore
	}

	for _, section := range layout.Sections {
		if err := r.driver.Info(ctx, r.theme.InfoPrefix+section.Title); err != nil {
			return err
		}
		for _, cfg := range section.Fields {
			value, err := r.promptField(ctx, cfg, store)
			if err != nil {
				return fmt.Errorf("tui: field %s: %w", cfg.Name, err)
			}
			if err := store.SetField(cfg.Name, value); err != nil {
				return err
			}
		}
	}
	return nil
}

func (r *Renderer) promptField(ctx context.Context, cfg uischema.FieldConfig, store *form.Store) (int, error) {
	current, err := store.Field(cfg.Name)
	if err != nil {
		return 0, err
	}
	message := r.theme.PromptPrefix + cfg.Label

	switch cfg.Widget {
	case uischema.WidgetSelect:
		labels := make([]string, len(cfg.Options))
		defaultIdx := 0
		for i, opt := range cfg.Options {
			labels[i] = opt.Label
			if opt.Value == current {
				defaultIdx = i
			}
		}
		idx, err := r.driver.Select(ctx, SelectConfig{
			Message:      message,
			Options:      labels,
			DefaultIndex: defaultIdx,
			Help:         cfg.HelpText,
		})
		if err != nil {
			return 0, err
		}
		if idx < 0 || idx >= len(cfg.Options) {
			return 0, fmt.Errorf("selection %d out of range", idx)
		}
		return cfg.Options[idx].Value, nil

	case uischema.WidgetNumber:
		field, _, _ := form.Lookup(cfg.Name)
		validate := func(raw string) error {
			value, err := form.ParseValue(raw)
			if err != nil {
				return err
			}
			return field.Check(value)
		}
		raw, err := r.driver.Input(ctx, InputConfig{
			Message:   message,
			Default:   strconv.Itoa(current),
			Help:      cfg.HelpText,
			Validator: validate,
		})
		if err != nil {
			return 0, err
		}
		if err := validate(raw); err != nil {
			return 0, err
		}
		return form.ParseValue(raw)

	default:
		yes, err := r.driver.Confirm(ctx, ConfirmConfig{
			Message: message,
			Default: current == 1,
			Help:    cfg.HelpText,
		})
		if err != nil {
			return 0, err
		}
		if yes {
			return 1, nil
		}
		return 0, nil
	}
}

// Show renders doc and hands the text to the prompt driver.
func (r *Renderer) Show(ctx context.Context, doc render.Document) error {
	out, err := r.Render(ctx, doc, render.RenderOptions{})
	if err != nil {
		return err
	}
	return r.driver.Info(ctx, strings.TrimRight(string(out), "\n"))
}

// Render prints the last result. Pretty output maps each segment to a line
// style; JSON output carries the values and segments for scripting.
func (r *Renderer) Render(ctx context.Context, doc render.Document, opts render.RenderOptions) ([]byte, error) {
	if ctx == nil {
		return nil, errors.New("tui: context is required")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if r.outputFormat == OutputFormatJSON {
		return r.renderJSON(doc, opts)
	}
	return r.renderPretty(doc, opts), nil
}

func (r *Renderer) renderPretty(doc render.Document, opts render.RenderOptions) []byte {
	var buf bytes.Buffer
	for _, message := range render.MergeFormErrors(opts.FormErrors) {
		fmt.Fprintf(&buf, "%s%s\n", r.theme.ErrorPrefix, message)
	}
	if doc.Loading {
		fmt.Fprintf(&buf, "%s%s\n", r.theme.InfoPrefix, doc.Page.Submit.LoadingLabel)
	}
	if doc.Result == nil {
		return buf.Bytes()
	}
	if !doc.Result.OK {
		fmt.Fprintf(&buf, "%s%s\n", r.theme.ErrorPrefix, doc.Result.Message)
		return buf.Bytes()
	}

	for _, seg := range doc.Result.Segments {
		switch seg.Tag {
		case segment.TagSeverity:
			fmt.Fprintf(&buf, "\n%s\n%s\n", seg.Text, strings.Repeat("=", len([]rune(seg.Text))))
		case segment.TagRecommendations:
			fmt.Fprintf(&buf, "\n%s\n", seg.Text)
		case segment.TagListItem:
			fmt.Fprintf(&buf, "%s%s\n", r.theme.BulletPrefix, seg.Item())
		case segment.TagNote:
			fmt.Fprintf(&buf, "\n%s\n", seg.Text)
		case segment.TagDivider:
			buf.WriteString("\n")
		default:
			fmt.Fprintf(&buf, "%s\n", seg.Text)
		}
	}
	return buf.Bytes()
}

type jsonDocument struct {
	Values  map[string]int      `json:"values"`
	Loading bool                `json:"loading"`
	Result  *render.ResultView  `json:"result,omitempty"`
	Errors  map[string][]string `json:"errors,omitempty"`
}

func (r *Renderer) renderJSON(doc render.Document, opts render.RenderOptions) ([]byte, error) {
	payload := jsonDocument{
		Values:  make(map[string]int),
		Loading: doc.Loading,
		Result:  doc.Result,
		Errors:  opts.Errors,
	}
	for _, section := range doc.Page.Sections {
		for _, field := range section.Fields {
			payload.Values[field.Name] = field.Value
		}
	}
	out, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("tui: encode document: %w", err)
	}
	return append(out, '\n'), nil
}

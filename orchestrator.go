package medrec

import (
	"context"
	"fmt"

	"github.com/goliatone/go-medrec/pkg/form"
	"github.com/goliatone/go-medrec/pkg/predict"
	"github.com/goliatone/go-medrec/pkg/render"
	"github.com/goliatone/go-medrec/pkg/renderers/vanilla"
	"github.com/goliatone/go-medrec/pkg/uischema"
)

// RenderOptions describes per-request overrides that renderers can use to
// surface validation errors or swap theme configuration.
type RenderOptions = render.RenderOptions

// Document is the renderer input built from a layout and a store view.
type Document = render.Document

// NewStore returns a form store seeded with the catalog defaults.
func NewStore(options ...form.Option) *form.Store {
	return form.NewStore(options...)
}

// GenerateHTML renders view with the bundled layout and the vanilla renderer.
// It is the simplest entry point for callers that just want a page.
func GenerateHTML(ctx context.Context, view form.View, options RenderOptions) ([]byte, error) {
	layout, err := uischema.Default()
	if err != nil {
		return nil, err
	}
	renderer, err := vanilla.New()
	if err != nil {
		return nil, err
	}
	return renderer.Render(ctx, render.NewDocument(layout, view), options)
}

// Submit sends the store's current values to the prediction backend and
// records the outcome in the store. Client options configure the backend.
func Submit(ctx context.Context, store *form.Store, options ...predict.Option) (form.Result, error) {
	client, err := predict.New(options...)
	if err != nil {
		return form.Result{}, fmt.Errorf("medrec: prediction client: %w", err)
	}
	return predict.NewPipeline(client).Submit(ctx, store)
}

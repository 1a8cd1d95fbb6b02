package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/goliatone/go-medrec/internal/config"
	"github.com/goliatone/go-medrec/pkg/form"
	"github.com/goliatone/go-medrec/pkg/predict"
	"github.com/goliatone/go-medrec/pkg/render"
	"github.com/goliatone/go-medrec/pkg/renderers/tui"
	"github.com/goliatone/go-medrec/pkg/uischema"
)

func main() {
	if err := run(); err != nil {
		if errors.Is(err, tui.ErrAborted) {
			os.Exit(130)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Parse("medrec-cli", os.Args[1:])
	if err != nil {
		return err
	}
	logger := cfg.Logger(os.Stderr)

	layout, err := uischema.LoadFile(cfg.LayoutPath)
	if err != nil {
		return err
	}

	client, err := predict.New(
		predict.WithBaseURL(cfg.BackendURL),
		predict.WithLogger(logger),
	)
	if err != nil {
		return err
	}
	pipeline := predict.NewPipeline(client, predict.WithPipelineLogger(logger))

	renderer, err := tui.New(
		tui.WithOutput(os.Stderr),
		tui.WithOutputFormat(tui.OutputFormat(cfg.Output)),
		tui.WithTheme(tui.Theme{InfoPrefix: "» ", ErrorPrefix: "✗ ", BulletPrefix: "  • "}),
	)
	if err != nil {
		return err
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	store := form.NewStore(form.WithTheme(cfg.Theme))
	if err := renderer.Collect(ctx, layout, store); err != nil {
		return err
	}

	if _, err := pipeline.Submit(ctx, store); err != nil {
		return err
	}

	out, err := renderer.Render(ctx, render.NewDocument(layout, store.View()), render.RenderOptions{})
	if err != nil {
		return err
	}
	_, err = os.Stdout.Write(out)
	return err
}

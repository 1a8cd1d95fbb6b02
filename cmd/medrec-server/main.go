package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/goliatone/go-medrec/internal/config"
	"github.com/goliatone/go-medrec/internal/server"
	"github.com/goliatone/go-medrec/pkg/predict"
	"github.com/goliatone/go-medrec/pkg/uischema"
)

func main() {
	cfg, err := config.Parse("medrec-server", os.Args[1:])
	if err != nil {
		os.Stderr.WriteString(err.Error() + "\n")
		os.Exit(2)
	}
	logger := cfg.Logger(os.Stderr)

	layout, err := uischema.LoadFile(cfg.LayoutPath)
	if err != nil {
		logger.Fatal().Err(err).Str("layout", cfg.LayoutPath).Msg("load layout")
	}

	client, err := predict.New(
		predict.WithBaseURL(cfg.BackendURL),
		predict.WithLogger(logger.With().Str("component", "predict").Logger()),
	)
	if err != nil {
		logger.Fatal().Err(err).Msg("prediction client")
	}

	handler, err := server.New(
		server.WithLogger(logger),
		server.WithLayout(layout),
		server.WithPredictor(client),
		server.WithHealthChecker(client),
		server.WithDefaultTheme(cfg.Theme),
	)
	if err != nil {
		logger.Fatal().Err(err).Msg("configure server")
	}

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	go func() {
		<-ctx.Done()
		shutdownCtx, done := context.WithTimeout(context.Background(), 5*time.Second)
		defer done()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error().Err(err).Msg("shutdown")
		}
	}()

	logger.Info().
		Str("addr", srv.Addr).
		Str("backend", client.BaseURL()).
		Msg("listening")
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Fatal().Err(err).Msg("server closed")
	}
	logger.Info().Msg("server stopped")
}

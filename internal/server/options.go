package server

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/goliatone/go-medrec/pkg/form"
	"github.com/goliatone/go-medrec/pkg/predict"
	"github.com/goliatone/go-medrec/pkg/render"
	"github.com/goliatone/go-medrec/pkg/uischema"
)

// HealthChecker reports the backend's health. *predict.Client satisfies it.
type HealthChecker interface {
	Health(ctx context.Context) (predict.Health, error)
}

// Option configures a Server.
type Option func(*Server)

// WithLogger sets the request and submission logger.
func WithLogger(logger zerolog.Logger) Option {
	return func(s *Server) {
		s.logger = logger
	}
}

// WithLayout replaces the bundled layout.
func WithLayout(layout *uischema.Layout) Option {
	return func(s *Server) {
		if layout != nil {
			s.layout = layout
		}
	}
}

// WithPredictor sets the backend used by POST /submit.
func WithPredictor(predictor predict.Predictor) Option {
	return func(s *Server) {
		if predictor != nil {
			s.predictor = predictor
		}
	}
}

// WithHealthChecker sets the backend probed by GET /health.
func WithHealthChecker(checker HealthChecker) Option {
	return func(s *Server) {
		s.health = checker
	}
}

// WithRenderer replaces the HTML renderer.
func WithRenderer(renderer render.Renderer) Option {
	return func(s *Server) {
		if renderer != nil {
			s.renderer = renderer
		}
	}
}

// WithDefaultTheme sets the theme new sessions start with.
func WithDefaultTheme(theme form.Theme) Option {
	return func(s *Server) {
		if theme != "" {
			s.defaultTheme = theme
		}
	}
}

// WithSecureCookies marks the session cookie Secure.
func WithSecureCookies(secure bool) Option {
	return func(s *Server) {
		s.secureCookies = secure
	}
}

// WithSessionTTL sets how long an idle session is kept. Non-positive values
// keep DefaultSessionTTL.
func WithSessionTTL(ttl time.Duration) Option {
	return func(s *Server) {
		if ttl > 0 {
			s.sessionTTL = ttl
		}
	}
}

// WithClock replaces the time source used for session expiry.
func WithClock(now func() time.Time) Option {
	return func(s *Server) {
		if now != nil {
			s.now = now
		}
	}
}

package server

import (
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"

	"github.com/goliatone/go-medrec/pkg/form"
	"github.com/goliatone/go-medrec/pkg/predict"
	"github.com/goliatone/go-medrec/pkg/render"
	"github.com/goliatone/go-medrec/pkg/renderers/vanilla"
	"github.com/goliatone/go-medrec/pkg/themes"
	"github.com/goliatone/go-medrec/pkg/uischema"
)

// Server is the HTTP front end of the symptom form.
type Server struct {
	router        chi.Router
	logger        zerolog.Logger
	layout        *uischema.Layout
	renderer      render.Renderer
	predictor     predict.Predictor
	health        HealthChecker
	pipeline      *predict.Pipeline
	sessions      *sessionStore
	defaultTheme  form.Theme
	secureCookies bool
	sessionTTL    time.Duration
	now           func() time.Time
}

// New wires the routes. Without WithPredictor the server talks to a
// predict.Client built from the environment.
func New(options ...Option) (*Server, error) {
	s := &Server{
		logger:       zerolog.Nop(),
		defaultTheme: form.ThemeLight,
		sessionTTL:   DefaultSessionTTL,
		now:          time.Now,
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(s)
	}

	if s.layout == nil {
		layout, err := uischema.Default()
		if err != nil {
			return nil, fmt.Errorf("server: load layout: %w", err)
		}
		s.layout = layout
	}
	if s.renderer == nil {
		renderer, err := vanilla.New()
		if err != nil {
			return nil, fmt.Errorf("server: renderer: %w", err)
		}
		s.renderer = renderer
	}
	if s.predictor == nil {
		client, err := predict.New(predict.WithLogger(s.logger))
		if err != nil {
			return nil, fmt.Errorf("server: prediction client: %w", err)
		}
		s.predictor = client
		if s.health == nil {
			s.health = client
		}
	}

	s.pipeline = predict.NewPipeline(s.predictor, predict.WithPipelineLogger(s.logger))
	s.sessions = newSessionStore(func() *form.Store {
		return form.NewStore(form.WithTheme(s.defaultTheme))
	}, s.sessionTTL, s.now)
	s.router = s.routes()
	return s, nil
}

func (s *Server) routes() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(requestLogger(s.logger))
	r.Use(middleware.Recoverer)

	r.Get("/", s.handlePage)
	r.Post("/fields", s.handleField)
	r.Post("/submit", s.handleSubmit)
	r.Post("/theme", s.handleTheme)
	r.Post("/theme/menu", s.handleMenu)
	r.Get("/api/state", s.handleState)
	r.Get("/health", s.handleHealth)

	assets := http.StripPrefix(themes.AssetPrefix+"/", http.FileServer(http.FS(vanilla.AssetsFS())))
	r.Handle(themes.AssetPrefix+"/*", assets)
	return r
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

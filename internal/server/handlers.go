package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/goliatone/go-medrec/pkg/form"
	"github.com/goliatone/go-medrec/pkg/predict"
	"github.com/goliatone/go-medrec/pkg/render"
	"github.com/goliatone/go-medrec/pkg/segment"
)

const (
	staleSchemaMessage = "The form changed since this page was loaded. Please reload and try again."
	notIntegerMessage  = "must be a whole number"
	inFlightMessage    = "A submission is already in progress."
)

type stateResponse struct {
	Session    string              `json:"session"`
	Values     map[string]int      `json:"values"`
	Features   []int               `json:"features"`
	Loading    bool                `json:"loading"`
	Theme      form.Theme          `json:"theme"`
	MenuOpen   bool                `json:"menuOpen"`
	Result     *form.Result        `json:"result,omitempty"`
	Segments   []segment.Segment   `json:"segments,omitempty"`
	Errors     map[string][]string `json:"errors,omitempty"`
	FormErrors []string            `json:"formErrors,omitempty"`
}

type errorResponse struct {
	Error string `json:"error"`
}

type healthResponse struct {
	Status       string          `json:"status"`
	Sessions     int             `json:"sessions"`
	Backend      *predict.Health `json:"backend,omitempty"`
	BackendError string          `json:"backend_error,omitempty"`
}

// session returns the caller's session, creating one and setting the cookie
// when the request carries none or an unknown id.
func (s *Server) session(w http.ResponseWriter, r *http.Request) *session {
	if sess, ok := s.sessions.lookup(r); ok {
		return sess
	}
	sess := s.sessions.create()
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookie,
		Value:    sess.id.String(),
		Path:     "/",
		HttpOnly: true,
		Secure:   s.secureCookies,
		SameSite: http.SameSiteLaxMode,
	})
	return sess
}

func (s *Server) handlePage(w http.ResponseWriter, r *http.Request) {
	sess := s.session(w, r)
	feedback := sess.feedback()

	doc := render.NewDocument(s.layout, sess.store.View())
	out, err := s.renderer.Render(r.Context(), doc, render.RenderOptions{
		Errors:     feedback.Fields,
		FormErrors: feedback.Form,
	})
	if err != nil {
		s.logger.Error().Err(err).Msg("render page")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", s.renderer.ContentType())
	w.Header().Set("Cache-Control", "no-store")
	_, _ = w.Write(out)
}

func (s *Server) handleField(w http.ResponseWriter, r *http.Request) {
	sess := s.session(w, r)
	if err := r.ParseForm(); err != nil {
		s.fail(w, r, http.StatusBadRequest, "invalid form body")
		return
	}
	name := strings.TrimSpace(r.PostForm.Get("name"))
	value, err := form.ParseValue(r.PostForm.Get("value"))
	if err != nil {
		s.fail(w, r, http.StatusBadRequest, name+": "+notIntegerMessage)
		return
	}
	if err := sess.store.SetField(name, value); err != nil {
		var invalid *form.InvalidFieldError
		if errors.As(err, &invalid) {
			s.fail(w, r, http.StatusBadRequest, err.Error())
			return
		}
		s.fail(w, r, http.StatusInternalServerError, err.Error())
		return
	}
	sess.clearErrors()
	s.respond(w, r, sess, http.StatusOK)
}

func (s *Server) handleSubmit(w http.ResponseWriter, r *http.Request) {
	sess := s.session(w, r)
	if err := r.ParseForm(); err != nil {
		s.fail(w, r, http.StatusBadRequest, "invalid form body")
		return
	}

	if version := r.PostForm.Get(render.SchemaFieldName); version != "" && version != form.SchemaVersion {
		sess.setErrors(render.ErrorMapping{Form: []string{staleSchemaMessage}})
		s.fail(w, r, http.StatusConflict, staleSchemaMessage)
		return
	}

	// Posted values are only applied by the request that owns the submission.
	if !sess.submitting.TryLock() {
		s.fail(w, r, http.StatusConflict, inFlightMessage)
		return
	}
	defer sess.submitting.Unlock()
	if sess.store.Loading() {
		s.fail(w, r, http.StatusConflict, inFlightMessage)
		return
	}

	mapping := render.ErrorMapping{Fields: make(map[string][]string)}
	for _, cfg := range s.layout.Fields() {
		raw, ok := r.PostForm[cfg.Name]
		if !ok || len(raw) == 0 {
			continue
		}
		value, err := form.ParseValue(raw[len(raw)-1])
		if err != nil {
			mapping.Fields[cfg.Name] = append(mapping.Fields[cfg.Name], notIntegerMessage)
			continue
		}
		if err := sess.store.SetField(cfg.Name, value); err != nil {
			mapping.Fields[cfg.Name] = append(mapping.Fields[cfg.Name], err.Error())
		}
	}
	if len(mapping.Fields) > 0 {
		sess.setErrors(mapping)
		s.respond(w, r, sess, http.StatusUnprocessableEntity)
		return
	}

	// The submission outlives a client that disconnects mid-request so the
	// session never stays in the loading state.
	ctx := context.WithoutCancel(r.Context())
	result, err := s.pipeline.Submit(ctx, sess.store)
	if err != nil {
		if errors.Is(err, form.ErrSubmissionInFlight) {
			s.fail(w, r, http.StatusConflict, inFlightMessage)
			return
		}
		s.fail(w, r, http.StatusInternalServerError, err.Error())
		return
	}

	sess.clearErrors()
	if result.Failure == form.FailureValidation {
		var validation *form.ValidationError
		if errors.As(sess.store.Snapshot().Validate(), &validation) {
			sess.setErrors(render.MapIssues(validation.Issues))
		}
	}
	s.respond(w, r, sess, http.StatusOK)
}

func (s *Server) handleTheme(w http.ResponseWriter, r *http.Request) {
	sess := s.session(w, r)
	if err := r.ParseForm(); err != nil {
		s.fail(w, r, http.StatusBadRequest, "invalid form body")
		return
	}
	theme, err := form.ParseTheme(r.PostForm.Get("theme"))
	if err != nil {
		s.fail(w, r, http.StatusBadRequest, err.Error())
		return
	}
	if err := sess.store.SetTheme(theme); err != nil {
		s.fail(w, r, http.StatusBadRequest, err.Error())
		return
	}
	s.respond(w, r, sess, http.StatusOK)
}

func (s *Server) handleMenu(w http.ResponseWriter, r *http.Request) {
	sess := s.session(w, r)
	sess.store.ToggleMenu()
	s.respond(w, r, sess, http.StatusOK)
}

func (s *Server) handleState(w http.ResponseWriter, r *http.Request) {
	sess := s.session(w, r)
	writeJSON(w, http.StatusOK, s.state(sess))
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	resp := healthResponse{Status: "ok", Sessions: s.sessions.len()}
	if s.health != nil {
		health, err := s.health.Health(r.Context())
		if err != nil {
			resp.BackendError = err.Error()
		} else {
			resp.Backend = &health
		}
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) state(sess *session) stateResponse {
	view := sess.store.View()
	feedback := sess.feedback()
	resp := stateResponse{
		Session:    sess.id.String(),
		Values:     view.Values.Map(),
		Features:   view.Values.Values(),
		Loading:    view.Loading,
		Theme:      view.Theme,
		MenuOpen:   view.MenuOpen,
		Result:     view.Result,
		FormErrors: feedback.Form,
	}
	if len(feedback.Fields) > 0 {
		resp.Errors = feedback.Fields
	}
	if view.Result != nil && view.Result.OK() {
		resp.Segments = segment.Split(view.Result.Text)
	}
	return resp
}

// respond answers a state-changing request: JSON clients get the session
// state, browsers are redirected back to the page.
func (s *Server) respond(w http.ResponseWriter, r *http.Request, sess *session, status int) {
	if wantsJSON(r) {
		writeJSON(w, status, s.state(sess))
		return
	}
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (s *Server) fail(w http.ResponseWriter, r *http.Request, status int, message string) {
	s.logger.Warn().Int("status", status).Str("path", r.URL.Path).Msg(message)
	if wantsJSON(r) {
		writeJSON(w, status, errorResponse{Error: message})
		return
	}
	if status == http.StatusConflict {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}
	http.Error(w, message, status)
}

func wantsJSON(r *http.Request) bool {
	return strings.Contains(r.Header.Get("Accept"), "application/json")
}

func writeJSON(w http.ResponseWriter, status int, value any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(true)
	_ = enc.Encode(value)
}

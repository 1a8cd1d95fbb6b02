package server

import (
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/goliatone/go-medrec/pkg/form"
	"github.com/goliatone/go-medrec/pkg/render"
)

// SessionCookie names the cookie carrying the session id.
const SessionCookie = "medrec_session"

// DefaultSessionTTL is how long a session may sit idle before it is evicted.
const DefaultSessionTTL = 30 * time.Minute

type session struct {
	id    uuid.UUID
	store *form.Store

	// submitting is held by the request that owns the current submission.
	submitting sync.Mutex

	mu       sync.Mutex
	errors   render.ErrorMapping
	lastSeen time.Time
}

func (s *session) setErrors(mapping render.ErrorMapping) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.errors = mapping
}

func (s *session) clearErrors() {
	s.setErrors(render.ErrorMapping{})
}

func (s *session) feedback() render.ErrorMapping {
	s.mu.Lock()
	defer s.mu.Unlock()
	fields := make(map[string][]string, len(s.errors.Fields))
	for name, messages := range s.errors.Fields {
		fields[name] = append([]string(nil), messages...)
	}
	return render.ErrorMapping{
		Fields: fields,
		Form:   append([]string(nil), s.errors.Form...),
	}
}

func (s *session) touch(now time.Time) {
	s.mu.Lock()
	s.lastSeen = now
	s.mu.Unlock()
}

// expired reports whether the session has been idle longer than ttl. A
// session with a submission in flight never expires.
func (s *session) expired(now time.Time, ttl time.Duration) bool {
	s.mu.Lock()
	idle := now.Sub(s.lastSeen)
	s.mu.Unlock()
	return idle > ttl && !s.store.Loading()
}

type sessionStore struct {
	mu       sync.RWMutex
	sessions map[uuid.UUID]*session
	newStore func() *form.Store
	ttl      time.Duration
	now      func() time.Time
}

func newSessionStore(newStore func() *form.Store, ttl time.Duration, now func() time.Time) *sessionStore {
	if ttl <= 0 {
		ttl = DefaultSessionTTL
	}
	if now == nil {
		now = time.Now
	}
	return &sessionStore{
		sessions: make(map[uuid.UUID]*session),
		newStore: newStore,
		ttl:      ttl,
		now:      now,
	}
}

// lookup returns the live session named by the request cookie, if any, and
// marks it as seen.
func (s *sessionStore) lookup(r *http.Request) (*session, bool) {
	cookie, err := r.Cookie(SessionCookie)
	if err != nil {
		return nil, false
	}
	id, err := uuid.Parse(cookie.Value)
	if err != nil {
		return nil, false
	}
	s.mu.RLock()
	sess, ok := s.sessions[id]
	s.mu.RUnlock()
	if !ok {
		return nil, false
	}

	now := s.now()
	if sess.expired(now, s.ttl) {
		s.mu.Lock()
		delete(s.sessions, id)
		s.mu.Unlock()
		return nil, false
	}
	sess.touch(now)
	return sess, true
}

func (s *sessionStore) create() *session {
	now := s.now()
	sess := &session{id: uuid.New(), store: s.newStore(), lastSeen: now}
	s.mu.Lock()
	s.sweepLocked(now)
	s.sessions[sess.id] = sess
	s.mu.Unlock()
	return sess
}

// len reports the number of live sessions.
func (s *sessionStore) len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sweepLocked(s.now())
	return len(s.sessions)
}

func (s *sessionStore) sweepLocked(now time.Time) {
	for id, sess := range s.sessions {
		if sess.expired(now, s.ttl) {
			delete(s.sessions, id)
		}
	}
}

package form

import (
	"fmt"
	"strings"
	"sync"
)

// Theme is the active colour scheme of the page.
type Theme string

const (
	ThemeLight   Theme = "light"
	ThemeDark    Theme = "dark"
	ThemeEyeCare Theme = "eye-care"
)

// Themes lists the closed set of themes in menu order.
func Themes() []Theme {
	return []Theme{ThemeLight, ThemeDark, ThemeEyeCare}
}

// ParseTheme resolves a theme name, case-insensitively.
func ParseTheme(name string) (Theme, error) {
	candidate := Theme(strings.ToLower(strings.TrimSpace(name)))
	for _, theme := range Themes() {
		if candidate == theme {
			return theme, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownTheme, name)
}

// EventKind names a state transition reported to observers.
type EventKind string

const (
	EventFieldSet       EventKind = "field_set"
	EventThemeChanged   EventKind = "theme_changed"
	EventMenuToggled    EventKind = "menu_toggled"
	EventLoadingChanged EventKind = "loading_changed"
	EventResultSet      EventKind = "result_set"
	EventResultCleared  EventKind = "result_cleared"
)

// Event describes one mutation. Only the fields relevant to Kind are set.
type Event struct {
	Kind     EventKind
	Field    string
	Value    int
	Theme    Theme
	MenuOpen bool
	Loading  bool
	Result   Result
}

// Observer receives events after the mutation is applied. Observers run
// outside the store lock and may read from the store.
type Observer func(Event)

// Option configures a Store.
type Option func(*Store)

// WithObserver registers an observer.
func WithObserver(fn Observer) Option {
	return func(s *Store) {
		if fn != nil {
			s.observers = append(s.observers, fn)
		}
	}
}

// WithTheme sets the initial theme. Unknown themes are ignored.
func WithTheme(theme Theme) Option {
	return func(s *Store) {
		if parsed, err := ParseTheme(string(theme)); err == nil {
			s.theme = parsed
		}
	}
}

// View is a consistent copy of everything a renderer needs.
type View struct {
	Values   Snapshot
	Loading  bool
	Result   *Result
	Theme    Theme
	MenuOpen bool
}

// Store owns the form values and transient UI state of one session.
type Store struct {
	mu        sync.RWMutex
	values    Snapshot
	loading   bool
	result    *Result
	theme     Theme
	menuOpen  bool
	observers []Observer
}

// NewStore returns a store seeded with the catalog defaults.
func NewStore(options ...Option) *Store {
	s := &Store{
		values: DefaultSnapshot(),
		theme:  ThemeLight,
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(s)
	}
	return s
}

// SetField stores value under name. Any integer is accepted; unknown names and
// the constant field are rejected with *InvalidFieldError.
func (s *Store) SetField(name string, value int) error {
	field, pos, ok := Lookup(name)
	if !ok {
		return &InvalidFieldError{Name: name, Reason: "unknown field"}
	}
	if !field.Editable() {
		return &InvalidFieldError{Name: name, Reason: "field is read-only"}
	}

	s.mu.Lock()
	s.values.values[pos] = value
	s.mu.Unlock()

	s.notify(Event{Kind: EventFieldSet, Field: name, Value: value})
	return nil
}

// Field returns the current value of name.
func (s *Store) Field(name string) (int, error) {
	_, pos, ok := Lookup(name)
	if !ok {
		return 0, &InvalidFieldError{Name: name, Reason: "unknown field"}
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.values.values[pos], nil
}

// Snapshot returns a copy of the current values in canonical order.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.values
}

// Loading reports whether a submission is running.
func (s *Store) Loading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading
}

// Result returns the last submission result, if any.
func (s *Store) Result() (Result, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.result == nil {
		return Result{}, false
	}
	return *s.result, true
}

// Theme returns the active theme.
func (s *Store) Theme() Theme {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.theme
}

// MenuOpen reports whether the theme menu is visible.
func (s *Store) MenuOpen() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.menuOpen
}

// SetTheme switches the active theme and closes the theme menu.
func (s *Store) SetTheme(theme Theme) error {
	parsed, err := ParseTheme(string(theme))
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.theme = parsed
	wasOpen := s.menuOpen
	s.menuOpen = false
	s.mu.Unlock()

	events := []Event{{Kind: EventThemeChanged, Theme: parsed}}
	if wasOpen {
		events = append(events, Event{Kind: EventMenuToggled, MenuOpen: false})
	}
	s.notify(events...)
	return nil
}

// ToggleMenu flips the theme menu visibility and returns the new state.
func (s *Store) ToggleMenu() bool {
	s.mu.Lock()
	s.menuOpen = !s.menuOpen
	open := s.menuOpen
	s.mu.Unlock()

	s.notify(Event{Kind: EventMenuToggled, MenuOpen: open})
	return open
}

// BeginSubmission marks the store as loading, clears the previous result and
// returns the snapshot to submit. It fails with ErrSubmissionInFlight while a
// submission is already running.
func (s *Store) BeginSubmission() (Snapshot, error) {
	s.mu.Lock()
	if s.loading {
		s.mu.Unlock()
		return Snapshot{}, ErrSubmissionInFlight
	}
	s.loading = true
	hadResult := s.result != nil
	s.result = nil
	snap := s.values
	s.mu.Unlock()

	events := []Event{{Kind: EventLoadingChanged, Loading: true}}
	if hadResult {
		events = append(events, Event{Kind: EventResultCleared})
	}
	s.notify(events...)
	return snap, nil
}

// CompleteSubmission stores result and clears the loading flag. Calls without
// a matching BeginSubmission only record the result.
func (s *Store) CompleteSubmission(result Result) {
	s.mu.Lock()
	wasLoading := s.loading
	s.loading = false
	stored := result
	s.result = &stored
	s.mu.Unlock()

	events := []Event{{Kind: EventResultSet, Result: result}}
	if wasLoading {
		events = append(events, Event{Kind: EventLoadingChanged, Loading: false})
	}
	s.notify(events...)
}

// View returns a consistent copy of the whole state.
func (s *Store) View() View {
	s.mu.RLock()
	defer s.mu.RUnlock()
	view := View{
		Values:   s.values,
		Loading:  s.loading,
		Theme:    s.theme,
		MenuOpen: s.menuOpen,
	}
	if s.result != nil {
		result := *s.result
		view.Result = &result
	}
	return view
}

func (s *Store) notify(events ...Event) {
	if len(s.observers) == 0 {
		return
	}
	for _, event := range events {
		for _, observer := range s.observers {
			observer(event)
		}
	}
}

package themes

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-medrec/pkg/form"
)

// Selector resolves theme selections from registered manifests. Manifests are
// also forwarded to a go-theme registry, which validates them on the way in.
type Selector struct {
	mu             sync.RWMutex
	manifests      map[string]*theme.Manifest
	registry       interface{ Register(*theme.Manifest) error }
	defaultTheme   string
	defaultVariant string
}

var _ theme.ThemeSelector = (*Selector)(nil)

// NewSelector returns a selector holding the bundled manifest, defaulting to
// its light variant.
func NewSelector() (*Selector, error) {
	s := &Selector{
		manifests:      make(map[string]*theme.Manifest),
		registry:       theme.NewRegistry(),
		defaultTheme:   Name,
		defaultVariant: string(form.ThemeLight),
	}
	if err := s.Register(Manifest()); err != nil {
		return nil, err
	}
	return s, nil
}

// Register adds or replaces a manifest.
func (s *Selector) Register(manifest *theme.Manifest) error {
	if manifest == nil {
		return ErrNilManifest
	}
	name := strings.TrimSpace(manifest.Name)
	if name == "" {
		return fmt.Errorf("themes: manifest name is empty")
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.manifests[name]; !exists {
		if err := s.registry.Register(manifest); err != nil {
			return fmt.Errorf("themes: register %s: %w", name, err)
		}
	}
	s.manifests[name] = manifest
	return nil
}

// Select implements theme.ThemeSelector. Empty name or variant fall back to
// the selector defaults. Query options are accepted for interface
// compatibility and otherwise ignored.
func (s *Selector) Select(name, variant string, _ ...theme.QueryOption) (*theme.Selection, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		name = s.defaultTheme
	}
	variant = strings.ToLower(strings.TrimSpace(variant))
	if variant == "" {
		variant = s.defaultVariant
	}

	s.mu.RLock()
	manifest, ok := s.manifests[name]
	s.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownManifest, name)
	}
	if _, ok := manifest.Variants[variant]; !ok {
		return nil, fmt.Errorf("%w: %q (have %s)", ErrUnknownVariant, variant, strings.Join(variantNames(manifest), ", "))
	}

	return &theme.Selection{
		Theme:    name,
		Variant:  variant,
		Manifest: manifest,
	}, nil
}

// ForTheme resolves a form theme against the bundled manifest and derives the
// renderer configuration.
func (s *Selector) ForTheme(t form.Theme) (*theme.RendererConfig, error) {
	selection, err := s.Select(Name, string(t))
	if err != nil {
		return nil, err
	}
	return RendererConfig(selection, DefaultPartials()), nil
}

func variantNames(manifest *theme.Manifest) []string {
	names := make([]string, 0, len(manifest.Variants))
	for name := range manifest.Variants {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

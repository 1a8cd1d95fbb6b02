package themes

import "errors"

var (
	// ErrUnknownManifest is returned when a selection names a manifest the
	// selector does not hold.
	ErrUnknownManifest = errors.New("themes: unknown manifest")
	// ErrUnknownVariant is returned when the manifest lacks the variant.
	ErrUnknownVariant = errors.New("themes: unknown variant")
	// ErrNilManifest is returned when registering a nil manifest.
	ErrNilManifest = errors.New("themes: manifest is nil")
)

// Package form holds the symptom form state: the fixed field catalog, its
// canonical serialization order and the Store that owns every mutation of
// field values and transient UI state (loading flag, last result, theme and
// menu visibility).
//
// The catalog is positional. The prediction backend consumes a list, not a
// map, so CanonicalOrder is the single source of truth for where each value
// lands in a payload. Any reordering must bump SchemaVersion.
package form

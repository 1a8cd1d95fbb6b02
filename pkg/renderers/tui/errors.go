package tui

import "errors"

var (
	// ErrAborted signals the user aborted input (e.g., Ctrl+C).
	ErrAborted = errors.New("tui: aborted")
	// ErrNoLayout is returned when Collect receives no layout.
	ErrNoLayout = errors.New("tui: layout is nil")
	// ErrNoStore is returned when Collect receives no store.
	ErrNoStore = errors.New("tui: store is nil")
)

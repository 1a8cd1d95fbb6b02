package uischema

import (
	"embed"
	"io/fs"
)

// DefaultLayoutFile is the name of the bundled layout document.
const DefaultLayoutFile = "medrec.yaml"

//go:embed layout/*
var embeddedLayout embed.FS

// EmbeddedFS returns the bundled layout documents. Callers may pass this
// filesystem to LoadFS to use the default configuration.
func EmbeddedFS() fs.FS {
	sub, err := fs.Sub(embeddedLayout, "layout")
	if err != nil {
		// The embed directive guarantees the subpath exists.
		panic(err)
	}
	return sub
}

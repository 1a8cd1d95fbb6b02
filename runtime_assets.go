package medrec

import (
	"io/fs"

	"github.com/goliatone/go-medrec/pkg/renderers/vanilla"
	"github.com/goliatone/go-medrec/pkg/uischema"
)

// AssetsFS exposes the page stylesheet so Go applications can serve it next
// to pages produced by GenerateHTML.
//
// Typical mount:
//
//	mux.Handle("/assets/",
//	  http.StripPrefix("/assets/",
//	    http.FileServerFS(medrec.AssetsFS()),
//	  ),
//	)
func AssetsFS() fs.FS {
	return vanilla.AssetsFS()
}

// LayoutFS exposes the bundled form layout documents.
func LayoutFS() fs.FS {
	return uischema.EmbeddedFS()
}

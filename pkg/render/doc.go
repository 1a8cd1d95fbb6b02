// Package render defines the renderer contract shared by the HTML and terminal
// surfaces, the Document they draw and the registry that selects between them.
package render

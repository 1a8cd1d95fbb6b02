// Package template defines the template engine contract the HTML renderer is
// written against. The gotemplate subpackage provides the pongo2-backed
// implementation.
package template

// Package uischema loads the page layout of the medicine recommendation form:
// which sections exist, in what order they are shown, and the label and
// widget of every editable field. The layout is checked against the form's
// canonical field catalog so renderers never have to guess.
package uischema

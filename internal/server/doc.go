/*
Package server serves the symptom form over HTTP.

Each browser gets an in-memory session keyed by the medrec_session cookie.
A session owns one form.Store, so theme, menu, field values and the last
result survive page reloads but not a restart.

Routes:

	GET  /            full page
	POST /fields      set one field (name, value)
	POST /submit      apply the posted fields and run the prediction pipeline
	POST /theme       select a theme, closing the menu
	POST /theme/menu  toggle the theme menu
	GET  /api/state   session state as JSON
	GET  /health      liveness plus backend health
	GET  /assets/*    embedded stylesheet

POST routes redirect back to / unless the request asks for JSON through the
Accept header.
*/
package server

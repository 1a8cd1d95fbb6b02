// Package predict submits form snapshots to the prediction backend.
//
// Client performs the single network exchange (POST {base}/predict) and checks
// both directions against the embedded OpenAPI contract. Pipeline drives a
// form.Store through a submission: it marks the store as loading, serializes
// the snapshot, calls the client and always writes a result back, clearing the
// loading flag on every path.
//
// Failures are reduced to three user-facing outcomes: a RemoteRejection shows
// the backend's message verbatim, a form.ValidationError lists the offending
// answers, and everything else collapses into the fixed TransportMessage.
package predict

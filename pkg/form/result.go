package form

// ResultKind distinguishes the success and failure variants of a Result.
type ResultKind string

const (
	ResultSuccess ResultKind = "success"
	ResultFailure ResultKind = "failure"
)

// FailureKind records why a submission failed.
type FailureKind string

const (
	// FailureRemoteRejection means the backend answered with an error payload.
	FailureRemoteRejection FailureKind = "remote_rejection"
	// FailureTransport covers network, decoding and contract failures.
	FailureTransport FailureKind = "transport"
	// FailureValidation means the snapshot never left the process.
	FailureValidation FailureKind = "validation"
)

// Result is the outcome of the last submission. Success results carry the
// prediction text; failures carry a message meant for the user.
type Result struct {
	Kind    ResultKind  `json:"kind"`
	Text    string      `json:"text,omitempty"`
	Message string      `json:"message,omitempty"`
	Failure FailureKind `json:"failure,omitempty"`
}

// Success builds a success result.
func Success(text string) Result {
	return Result{Kind: ResultSuccess, Text: text}
}

// Failure builds a failure result.
func Failure(kind FailureKind, message string) Result {
	return Result{Kind: ResultFailure, Message: message, Failure: kind}
}

// OK reports whether the result is the success variant.
func (r Result) OK() bool {
	return r.Kind == ResultSuccess
}

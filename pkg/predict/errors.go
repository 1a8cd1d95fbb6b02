package predict

import (
	"errors"
	"fmt"
)

// TransportMessage is shown for every transport-level failure. The underlying
// cause is logged and discarded.
const TransportMessage = "Failed to get prediction. Please try again."

// ErrNilStore is returned when Submit receives no store.
var ErrNilStore = errors.New("predict: store is nil")

// RemoteRejection is an explicit error payload returned by the backend.
type RemoteRejection struct {
	Message    string
	StatusCode int
}

func (e *RemoteRejection) Error() string {
	return fmt.Sprintf("predict: backend rejected request (status %d): %s", e.StatusCode, e.Message)
}

// TransportError wraps network, decoding and contract failures.
type TransportError struct {
	Op  string
	Err error
}

func (e *TransportError) Error() string {
	if e.Err == nil {
		return "predict: transport: " + e.Op
	}
	return fmt.Sprintf("predict: transport: %s: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

func transportErr(op string, err error) error {
	return &TransportError{Op: op, Err: err}
}

package predict

import (
	"encoding/json"

	"github.com/goliatone/go-medrec/pkg/form"
)

// Payload is the positional request body sent to the backend. It is built
// from a validated snapshot and never changes afterwards.
type Payload struct {
	features []int
}

// NewPayload validates snap and captures its values in canonical order.
func NewPayload(snap form.Snapshot) (Payload, error) {
	if err := snap.Validate(); err != nil {
		return Payload{}, err
	}
	return Payload{features: snap.Values()}, nil
}

// Features returns a copy of the ordered values.
func (p Payload) Features() []int {
	return append([]int(nil), p.features...)
}

// Len reports the number of positions.
func (p Payload) Len() int {
	return len(p.features)
}

// MarshalJSON encodes the payload as {"features": [...]}.
func (p Payload) MarshalJSON() ([]byte, error) {
	features := p.features
	if features == nil {
		features = []int{}
	}
	return json.Marshal(struct {
		Features []int `json:"features"`
	}{Features: features})
}

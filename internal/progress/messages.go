package progress

import "encoding/json"

// Envelope wraps every broadcast message with a type discriminator so
// clients can dispatch on Type without guessing the payload shape.
type Envelope struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

// TypeEpoch is the only message kind this package emits today: one
// update per completed BPTT epoch of the demo gradient-descent driver.
const TypeEpoch = "train:epoch"

// EpochPayload reports one epoch's result.
type EpochPayload struct {
	Epoch      int     `json:"epoch"`
	Error      float64 `json:"error"`
	ElapsedSec float64 `json:"elapsed_sec"`
}

func newEnvelope(msgType string, payload any) ([]byte, error) {
	raw, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return json.Marshal(Envelope{Type: msgType, Payload: raw})
}

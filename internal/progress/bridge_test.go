package progress

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBridgeOnEpochBroadcastsEnvelope(t *testing.T) {
	h := NewHub()
	c := &Client{hub: h, send: make(chan []byte, 1)}
	h.Register(c)

	b := NewBridge(h)
	b.OnEpoch(3, 1.25, 0.5)

	raw := <-c.send
	var env Envelope
	require.NoError(t, json.Unmarshal(raw, &env))
	assert.Equal(t, TypeEpoch, env.Type)

	var payload EpochPayload
	require.NoError(t, json.Unmarshal(env.Payload, &payload))
	assert.Equal(t, 3, payload.Epoch)
	assert.Equal(t, 1.25, payload.Error)
	assert.Equal(t, 0.5, payload.ElapsedSec)
}

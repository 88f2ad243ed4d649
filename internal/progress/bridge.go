package progress

import "log"

// Bridge is the write side the demo training driver calls into; it
// marshals one EpochPayload per completed epoch and broadcasts it to the
// hub, with one method per event type it can emit.
type Bridge struct {
	hub *Hub
}

// NewBridge wraps hub for epoch broadcasting.
func NewBridge(hub *Hub) *Bridge {
	return &Bridge{hub: hub}
}

// OnEpoch broadcasts one epoch's result to every connected client.
func (b *Bridge) OnEpoch(epoch int, trainingError, elapsedSec float64) {
	msg, err := newEnvelope(TypeEpoch, EpochPayload{Epoch: epoch, Error: trainingError, ElapsedSec: elapsedSec})
	if err != nil {
		log.Printf("progress: error marshaling epoch %d: %v", epoch, err)
		return
	}
	b.hub.Broadcast(msg)
}

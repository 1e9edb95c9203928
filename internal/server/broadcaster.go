package server

import (
	"log"

	"github.com/TangilJ/litama/internal/hub"
	"github.com/TangilJ/litama/internal/match"
	"github.com/TangilJ/litama/internal/protocol"
)

// Broadcaster adapts the registry to the coordinator: committed match state
// is serialized once and fanned out to every subscriber of that match.
type Broadcaster struct {
	reg *hub.Registry
}

// NewBroadcaster wraps a registry for use by the coordinator.
func NewBroadcaster(reg *hub.Registry) *Broadcaster {
	return &Broadcaster{reg: reg}
}

// Subscribe adds a connection to a match's observer set.
func (b *Broadcaster) Subscribe(matchID string, sub match.Subscriber) {
	b.reg.Subscribe(matchID, sub)
}

// MatchChanged broadcasts the match's current state to its observers.
func (b *Broadcaster) MatchChanged(m *match.Match) {
	payload, err := protocol.EncodeState(m)
	if err != nil {
		log.Printf("encode state for match %s: %v", m.ID, err)
		return
	}
	b.reg.Broadcast(m.ID, payload)
}

package hub

import (
	"sync"
	"time"

	"github.com/TangilJ/litama/internal/logging"
)

// Sender delivers one opaque payload to a client connection.
type Sender interface {
	Send(payload []byte) error
}

// Conn is a full client connection: payload delivery plus a liveness probe.
type Conn interface {
	Sender
	Ping() error
}

// Registry tracks who is watching which match, and separately every connected
// client. The two sets have independent locks: fanout for one match never
// blocks connection churn or fanout for another.
type Registry struct {
	subMu       sync.Mutex
	subscribers map[string]map[Sender]struct{}

	clientMu sync.Mutex
	clients  map[Conn]struct{}
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		subscribers: make(map[string]map[Sender]struct{}),
		clients:     make(map[Conn]struct{}),
	}
}

// Connect adds a client to the global connected set.
func (r *Registry) Connect(c Conn) {
	r.clientMu.Lock()
	r.clients[c] = struct{}{}
	r.clientMu.Unlock()
}

// Disconnect removes a client from the global set and from every match it was
// watching.
func (r *Registry) Disconnect(c Conn) {
	r.clientMu.Lock()
	delete(r.clients, c)
	r.clientMu.Unlock()

	r.subMu.Lock()
	for id, subs := range r.subscribers {
		delete(subs, c)
		if len(subs) == 0 {
			delete(r.subscribers, id)
		}
	}
	r.subMu.Unlock()
}

// Subscribe adds a connection to a match's observer set.
func (r *Registry) Subscribe(matchID string, s Sender) {
	r.subMu.Lock()
	subs, ok := r.subscribers[matchID]
	if !ok {
		subs = make(map[Sender]struct{})
		r.subscribers[matchID] = subs
	}
	subs[s] = struct{}{}
	r.subMu.Unlock()
}

// Subscribers reports how many connections are watching a match.
func (r *Registry) Subscribers(matchID string) int {
	r.subMu.Lock()
	defer r.subMu.Unlock()
	return len(r.subscribers[matchID])
}

// Broadcast delivers a payload to every subscriber of a match. A subscriber
// whose delivery fails is dropped from the set; the remaining subscribers
// still receive the payload and the caller never sees an error.
func (r *Registry) Broadcast(matchID string, payload []byte) {
	r.subMu.Lock()
	defer r.subMu.Unlock()
	subs := r.subscribers[matchID]
	for s := range subs {
		if err := s.Send(payload); err != nil {
			logging.Debugf("dropping subscriber of match %s: %v", matchID, err)
			delete(subs, s)
		}
	}
	if len(subs) == 0 {
		delete(r.subscribers, matchID)
	}
}

// PruneDead pings every connected client and disconnects the ones that fail.
func (r *Registry) PruneDead() {
	r.clientMu.Lock()
	var dead []Conn
	for c := range r.clients {
		if err := c.Ping(); err != nil {
			dead = append(dead, c)
		}
	}
	r.clientMu.Unlock()

	for _, c := range dead {
		logging.Debugf("pruning dead connection: ping failed")
		r.Disconnect(c)
	}
}

// KeepAlive probes connection liveness on a fixed interval. Run it in its own
// goroutine; it never returns.
func (r *Registry) KeepAlive(interval time.Duration) {
	for {
		time.Sleep(interval)
		r.PruneDead()
	}
}

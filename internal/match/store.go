package match

import (
	"context"
	"errors"
)

// ErrNotFound is returned by stores when no match exists under the given id.
var ErrNotFound = errors.New("match not found")

// Store is the durable match store, keyed by opaque match id. Implementations
// must return full snapshots from Get: callers may mutate the result freely
// without affecting the stored copy. The coordinator serializes Update calls
// per match id, so stores need no cross-call concurrency control of their own
// beyond internal consistency.
type Store interface {
	Insert(ctx context.Context, m *Match) error
	Get(ctx context.Context, id string) (*Match, error)
	Update(ctx context.Context, m *Match) error
}

// Subscriber is one observer connection as the coordinator sees it.
type Subscriber interface {
	Send(payload []byte) error
}

// Broadcaster fans committed match state out to everyone watching a match.
type Broadcaster interface {
	Subscribe(matchID string, sub Subscriber)
	MatchChanged(m *Match)
}

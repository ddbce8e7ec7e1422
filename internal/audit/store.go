package audit

import (
	"context"
	"sync"
)

// Store is an append-only sink for audit events. The Kafka publisher and the
// in-memory store both satisfy it so wiring can swap sinks per environment.
type Store interface {
	Append(ctx context.Context, event Event) error
}

// MemoryStore keeps events in memory. Used in tests and in deployments
// without a Kafka cluster, where the worker drains events to the log.
type MemoryStore struct {
	mu     sync.RWMutex
	events []Event
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) Append(_ context.Context, event Event) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, event)
	return nil
}

// Events returns a copy of all appended events.
func (s *MemoryStore) Events() []Event {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Event, len(s.events))
	copy(out, s.events)
	return out
}

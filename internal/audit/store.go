package audit

import (
	"context"
	"errors"
	"sync"
)

// Sink receives audit events.
type Sink interface {
	Append(ctx context.Context, event Event) error
}

// Store is an append-only, queryable sink for audit events.
type Store interface {
	Sink
	ListByCase(ctx context.Context, caseID string) ([]Event, error)
}

// Fanout delivers every event to each sink and joins their errors.
type Fanout []Sink

func (f Fanout) Append(ctx context.Context, event Event) error {
	var errs []error
	for _, s := range f {
		if err := s.Append(ctx, event); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// InMemoryStore keeps events in insertion order.
type InMemoryStore struct {
	mu     sync.RWMutex
	events map[string][]Event
}

func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{events: make(map[string][]Event)}
}

func (s *InMemoryStore) Append(_ context.Context, event Event) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events[event.CaseID] = append(s.events[event.CaseID], event)
	return nil
}

func (s *InMemoryStore) ListByCase(_ context.Context, caseID string) ([]Event, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Event, len(s.events[caseID]))
	copy(out, s.events[caseID])
	return out, nil
}

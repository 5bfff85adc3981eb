package store

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"ethub/internal/cases/models"
	"ethub/pkg/platform/sentinel"
	"ethub/pkg/requestcontext"
)

// InMemoryStore keeps cases in a map. Values are deep-copied on the way in and
// out so callers never share status maps.
type InMemoryStore struct {
	mu    sync.RWMutex
	cases map[string][]byte
}

// NewInMemory constructs an empty in-memory case store.
func NewInMemory() *InMemoryStore {
	return &InMemoryStore{cases: make(map[string][]byte)}
}

func (s *InMemoryStore) FindByID(_ context.Context, caseID string) (*models.Case, error) {
	s.mu.RLock()
	raw, ok := s.cases[caseID]
	s.mu.RUnlock()
	if !ok {
		return nil, sentinel.ErrNotFound
	}
	var c models.Case
	if err := json.Unmarshal(raw, &c); err != nil {
		return nil, fmt.Errorf("decode case: %w", err)
	}
	return &c, nil
}

func (s *InMemoryStore) Save(ctx context.Context, c *models.Case) error {
	c.LastModified = requestcontext.Now(ctx)
	raw, err := json.Marshal(c)
	if err != nil {
		return fmt.Errorf("encode case: %w", err)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cases[c.ID] = raw
	return nil
}

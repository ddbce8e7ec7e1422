package store

import (
	"context"
	"sync"

	"permitgate/internal/watchlist"
	"permitgate/pkg/domain"
	"permitgate/pkg/platform/sentinel"
	"permitgate/pkg/requestcontext"
)

// MemoryStore keeps entries in insertion order, which defines "first active
// match" the same way the Postgres store's created_at ordering does.
type MemoryStore struct {
	mu      sync.RWMutex
	entries []*watchlist.Entry
}

func NewMemory() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) Create(_ context.Context, entry *watchlist.Entry) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	stored := *entry
	s.entries = append(s.entries, &stored)
	return nil
}

func (s *MemoryStore) FindActive(ctx context.Context, nationalID domain.NationalID) (*watchlist.Entry, error) {
	now := requestcontext.Now(ctx)
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, entry := range s.entries {
		if entry.NationalID == nationalID && entry.EffectivelyActive(now) {
			found := *entry
			return &found, nil
		}
	}
	return nil, sentinel.ErrNotFound
}

func (s *MemoryStore) Deactivate(_ context.Context, nationalID domain.NationalID, flagType watchlist.FlagType) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	count := 0
	for _, entry := range s.entries {
		if entry.NationalID != nationalID || !entry.IsActive {
			continue
		}
		if flagType != "" && entry.FlagType != flagType {
			continue
		}
		entry.IsActive = false
		count++
	}
	return count, nil
}

// Package memory implements ports.SnapshotStore in process memory.
package memory

import (
	"context"
	"sync"

	"github.com/aretw0/automat/pkg/domain"
)

// Store implements ports.SnapshotStore in memory.
// Safe for concurrent use.
type Store struct {
	data map[string]domain.Snapshot
	mu   sync.RWMutex
}

// NewStore creates a new in-memory store.
func NewStore() *Store {
	return &Store{
		data: make(map[string]domain.Snapshot),
	}
}

// Save persists the snapshot in memory.
func (s *Store) Save(ctx context.Context, id string, snap domain.Snapshot) error {
	// Copy the history slice so later mutations by the caller don't leak in.
	stored := snap
	stored.History = append([]domain.HistoryEntry(nil), snap.History...)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[id] = stored
	return nil
}

// Load retrieves the snapshot from memory.
func (s *Store) Load(ctx context.Context, id string) (domain.Snapshot, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap, ok := s.data[id]
	if !ok {
		return domain.Snapshot{}, domain.ErrSnapshotNotFound
	}

	ret := snap
	ret.History = append([]domain.HistoryEntry(nil), snap.History...)
	return ret, nil
}

// Delete removes the snapshot.
func (s *Store) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, id)
	return nil
}

// List returns stored instance IDs.
func (s *Store) List(ctx context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ids := make([]string, 0, len(s.data))
	for id := range s.data {
		ids = append(ids, id)
	}
	return ids, nil
}

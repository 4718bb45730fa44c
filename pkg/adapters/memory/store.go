package memory

import (
	"context"
	"sync"

	"github.com/avezina/kinetic/pkg/domain"
)

// Store implements ports.TimelineStore in memory.
// Safe for concurrent use.
type Store struct {
	trails map[string][]domain.Record
	mu     sync.RWMutex
}

// NewStore creates a new in-memory timeline store.
func NewStore() *Store {
	return &Store{
		trails: make(map[string][]domain.Record),
	}
}

// Append adds a record to a trail, creating it on first use.
func (s *Store) Append(ctx context.Context, trail string, rec domain.Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.trails[trail] = append(s.trails[trail], rec)
	return nil
}

// List returns a copy of the trail's records in append order.
func (s *Store) List(ctx context.Context, trail string) ([]domain.Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	records, ok := s.trails[trail]
	if !ok {
		return nil, domain.ErrTrailNotFound
	}

	// Copy on read so callers can't mutate store state through the slice.
	out := make([]domain.Record, len(records))
	copy(out, records)
	return out, nil
}

// Delete removes a trail.
func (s *Store) Delete(ctx context.Context, trail string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.trails, trail)
	return nil
}

// Trails returns the known trail names.
func (s *Store) Trails(ctx context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	names := make([]string, 0, len(s.trails))
	for name := range s.trails {
		names = append(names, name)
	}
	return names, nil
}

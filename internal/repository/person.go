package repository

import (
	"context"
	"sort"
	"sync"

	"github.com/pkg/errors"
)

// ErrPersonNotFound is returned when an identifier is not in the store.
var ErrPersonNotFound = errors.New("person not found")

// PersonStore is the existence-check interface the service layer
// depends on. Contexts are accepted so a backed implementation can honor
// cancellation; the in-memory store ignores them.
type PersonStore interface {
	// Exists reports whether id is a known person identifier.
	Exists(ctx context.Context, id int) (bool, error)

	// Delete removes id from the store. Returns ErrPersonNotFound when
	// the id is not present.
	Delete(ctx context.Context, id int) error

	// IDs returns the known identifiers in ascending order.
	IDs(ctx context.Context) ([]int, error)
}

// DefaultPersonIDs seeds the in-memory store when no explicit seed is
// given.
var DefaultPersonIDs = []int{1, 2, 3, 4, 5}

// MemoryPersonStore is the in-memory PersonStore. It is mutex-guarded
// because DELETE mutates it while other requests read it.
type MemoryPersonStore struct {
	mu  sync.RWMutex
	ids map[int]struct{}
}

// NewMemoryPersonStore builds a store seeded with the given ids, or
// DefaultPersonIDs when none are given.
func NewMemoryPersonStore(seed ...int) *MemoryPersonStore {
	if len(seed) == 0 {
		seed = DefaultPersonIDs
	}

	ids := make(map[int]struct{}, len(seed))
	for _, id := range seed {
		ids[id] = struct{}{}
	}

	return &MemoryPersonStore{ids: ids}
}

func (s *MemoryPersonStore) Exists(_ context.Context, id int) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	_, ok := s.ids[id]
	return ok, nil
}

func (s *MemoryPersonStore) Delete(_ context.Context, id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.ids[id]; !ok {
		return ErrPersonNotFound
	}

	delete(s.ids, id)
	return nil
}

func (s *MemoryPersonStore) IDs(_ context.Context) ([]int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]int, 0, len(s.ids))
	for id := range s.ids {
		out = append(out, id)
	}
	sort.Ints(out)

	return out, nil
}

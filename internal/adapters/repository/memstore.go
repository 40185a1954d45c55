package repository

import (
	"context"
	"fmt"
	"sort"

	"github.com/okian/metacog/internal/domain/types"
)

// InMemoryStore implements Store over a map keyed by group key.
type InMemoryStore struct {
	rows map[string]types.MetricsRow
}

// NewInMemoryStore creates an empty in-memory metrics table.
func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{rows: make(map[string]types.MetricsRow)}
}

// Put replaces the stored rows with the given table.
func (s *InMemoryStore) Put(_ context.Context, rows []types.MetricsRow) error {
	next := make(map[string]types.MetricsRow, len(rows))
	for _, r := range rows {
		if _, dup := next[r.Key]; dup {
			return fmt.Errorf("duplicate group key %q", r.Key)
		}
		next[r.Key] = r
	}
	s.rows = next
	return nil
}

// Row returns the metrics row for a group key.
func (s *InMemoryStore) Row(_ context.Context, key string) (types.MetricsRow, error) {
	r, ok := s.rows[key]
	if !ok {
		return types.MetricsRow{}, fmt.Errorf("%w: %s", ErrNotFound, key)
	}
	return r, nil
}

// All returns every stored row in key-sorted order.
func (s *InMemoryStore) All(_ context.Context) []types.MetricsRow {
	out := make([]types.MetricsRow, 0, len(s.rows))
	for _, r := range s.rows {
		out = append(out, r)
	}
	sort.Slice(out, func(a, b int) bool { return out[a].Key < out[b].Key })
	return out
}

// Count returns the number of stored rows.
func (s *InMemoryStore) Count(_ context.Context) int { return len(s.rows) }

// Package repository defines the computed-metrics store interface and errors.
package repository

import (
	"context"

	"github.com/okian/metacog/internal/domain/types"
)

// Store provides read/write access to a table of computed metrics rows.
type Store interface {
	// Put replaces the stored rows with the given table.
	Put(ctx context.Context, rows []types.MetricsRow) error

	// Row returns the metrics row for a group key.
	// Returns ErrNotFound if the key is unknown.
	Row(ctx context.Context, key string) (types.MetricsRow, error)

	// All returns every stored row in key-sorted order.
	All(ctx context.Context) []types.MetricsRow

	// Count returns the number of stored rows.
	Count(ctx context.Context) int
}

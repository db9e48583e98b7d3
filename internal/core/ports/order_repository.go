// Package ports defines the contracts between the order core and its
// infrastructure: repositories for the two aggregates, the unit of work,
// and the external collaborators (cart store, catalog lookup).
// These interfaces enable dependency inversion and testability.
package ports

import (
	"context"
	"time"

	"freshcart/internal/core/domain/model/kernel"
	"freshcart/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
//
// Update follows a compare-and-set discipline: the write is conditioned on
// the version the aggregate was read at, and a stale write fails with
// errs.ConcurrentModificationError instead of silently overwriting. Callers
// re-read and decide; the repository never retries.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate, conditioned on
	// the version it was read at. Returns errs.ConcurrentModificationError
	// when the stored order changed since the read, and
	// errs.ObjectNotFoundError when the order no longer exists.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier, including
	// its line items. Returns errs.ObjectNotFoundError when absent.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetAllPendingOlderThan retrieves orders still in Pending status whose
	// creation time is before the cutoff. Used by the stale-order sweep.
	GetAllPendingOlderThan(ctx context.Context, cutoff time.Time) ([]*order.Order, error)
}

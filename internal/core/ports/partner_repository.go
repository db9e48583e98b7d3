package ports

import (
	"context"

	"freshcart/internal/core/domain/model/kernel"
	"freshcart/internal/core/domain/model/partner"
)

// PartnerRepository defines the persistence contract for delivery partner
// aggregates, including the append-only assignment history and the one-time
// user link. Update uses the same compare-and-set discipline as
// OrderRepository.
type PartnerRepository interface {
	// Add persists a new partner aggregate to storage. Fails with
	// partner.AlreadyLinkedError when the aggregate carries a user link that
	// another partner already holds (enforced by a unique index on the store).
	Add(ctx context.Context, aggregate *partner.DeliveryPartner) error

	// Update persists changes to an existing partner aggregate, conditioned
	// on the version it was read at. Returns errs.ConcurrentModificationError
	// on stale writes and partner.AlreadyLinkedError when a newly set user
	// link collides with another partner's.
	Update(ctx context.Context, aggregate *partner.DeliveryPartner) error

	// Get retrieves a partner aggregate by its unique identifier, including
	// the assignment history. Returns errs.ObjectNotFoundError when absent.
	Get(ctx context.Context, id kernel.UUID) (*partner.DeliveryPartner, error)

	// GetByLinkedUser retrieves the partner linked to the given user account.
	// Returns errs.ObjectNotFoundError when no partner holds that link.
	GetByLinkedUser(ctx context.Context, userID kernel.UUID) (*partner.DeliveryPartner, error)
}

package ports

import (
	"context"

	"freshcart/internal/core/domain/model/cart"
	"freshcart/internal/core/domain/model/kernel"
)

// CartStore gives access to the customers' active carts.
type CartStore interface {
	// Get returns the customer's active cart without removing it.
	// Returns errs.ObjectNotFoundError if the customer has no cart.
	Get(ctx context.Context, customerID kernel.UUID) (*cart.Cart, error)

	// Consume atomically fetches and removes the customer's active cart,
	// so concurrent checkouts of the same cart cannot both succeed.
	// Returns errs.ObjectNotFoundError if the customer has no cart.
	Consume(ctx context.Context, customerID kernel.UUID) (*cart.Cart, error)

	// Restore puts a consumed cart back. Used as compensation when
	// checkout fails after the cart was already consumed.
	Restore(ctx context.Context, c *cart.Cart) error
}

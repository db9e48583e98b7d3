// Package cart models the active cart consumed at order creation. The cart
// itself is owned by an external collaborator (the cart store); the order
// core only reads it once, snapshots it into an order, and clears it. It is
// therefore a plain data carrier rather than a guarded aggregate.
package cart

import "freshcart/internal/core/domain/model/kernel"

// Item is one cart entry: a product reference and how many the customer
// wants. Prices are not stored here; they are resolved against the catalog
// at order-creation time.
type Item struct {
	ProductID kernel.UUID
	Quantity  int
}

// Cart is a customer's active cart.
type Cart struct {
	CustomerID kernel.UUID
	Items      []Item
}

// IsEmpty reports whether the cart has no line items.
// A nil cart counts as empty: both states mean there is nothing to order.
func (c *Cart) IsEmpty() bool {
	return c == nil || len(c.Items) == 0
}

package order

import (
	"errors"
	"time"

	"freshcart/internal/core/domain/model/kernel"
	"freshcart/internal/pkg/errs"
	"freshcart/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created
	// through the NewOrder or RestoreOrder factory methods.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

	// ErrLineItemsAreRequired is returned when attempting to create an order
	// without line items. An order cannot be created from an empty cart.
	ErrLineItemsAreRequired = errs.NewValueIsRequiredError("lineItems")
)

// Order represents a placed cart snapshot. It is the aggregate root that
// manages the order lifecycle from creation through partner assignment to
// delivery or cancellation.
//
// Order follows these invariants:
//   - Must have a valid unique identifier and owning customer
//   - Must have at least one line item; each line item is a valid snapshot
//   - Total price equals the sum of line totals at construction and is never
//     edited independently
//   - Status transitions follow the edges defined by Status
//   - The delivery partner reference is set only through AssignPartner
//   - Can only be created through NewOrder or RestoreOrder
//
// Orders are never deleted; cancellation is a terminal status, not removal.
// The version field supports the optimistic write discipline of the
// repositories: every successful persistence increments it, and a write
// conditioned on a stale version is rejected.
type Order struct {
	// id is the unique identifier for the order
	id kernel.UUID

	// customerID is the owning customer, immutable after creation
	customerID kernel.UUID

	// deliveryPartnerID is the assigned partner's ID (nil if unassigned)
	deliveryPartnerID *kernel.UUID

	// lineItems are the snapshotted cart entries, never recomputed
	lineItems []LineItem

	// totalPrice is the sum of line totals, fixed at construction
	totalPrice decimal.Decimal

	// status is the current state in the order lifecycle
	status Status

	// version is the optimistic concurrency token
	version int64

	createdAt time.Time
	updatedAt time.Time

	// guard ensures the order was created via a factory method
	guard guard.ConstructorGuard
}

// NewOrder creates a new Order in Pending status from snapshotted line items.
// This is the only way to create a fresh order; RestoreOrder rehydrates
// persisted ones.
//
// Parameters:
//   - id: Unique identifier for the order
//   - customerID: The customer the cart belonged to
//   - lineItems: Non-empty snapshot of the consumed cart
//
// The total price is computed here as the sum of quantity * unit price over
// the line items and never changes afterwards.
func NewOrder(id kernel.UUID, customerID kernel.UUID, lineItems []LineItem) (*Order, error) {
	now := time.Now().UTC()
	order := &Order{
		status:    Pending,
		version:   1,
		createdAt: now,
		updatedAt: now,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		order.setID(id),
		order.setCustomerID(customerID),
		order.setLineItems(lineItems),
	); err != nil {
		return nil, err
	}

	order.totalPrice = sumLineTotals(order.lineItems)
	return order, nil
}

// RestoreOrder reconstructs an Order aggregate from persistent storage.
// Unlike NewOrder, it restores the persisted status, partner assignment,
// total, version, and timestamps without recomputing anything. The restored
// order behaves identically to one created through normal domain operations.
func RestoreOrder(
	id kernel.UUID,
	customerID kernel.UUID,
	lineItems []LineItem,
	totalPrice decimal.Decimal,
	status Status,
	deliveryPartnerID *kernel.UUID,
	version int64,
	createdAt time.Time,
	updatedAt time.Time,
) (*Order, error) {
	order := &Order{
		totalPrice: totalPrice,
		version:    version,
		createdAt:  createdAt,
		updatedAt:  updatedAt,
		guard:      guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		order.setID(id),
		order.setCustomerID(customerID),
		order.setLineItems(lineItems),
		order.setStatus(status),
		order.setDeliveryPartnerID(deliveryPartnerID),
	); err != nil {
		return nil, err
	}

	return order, nil
}

// Validate ensures the Order instance was properly constructed through a
// factory method. This prevents bypassing validation by directly
// instantiating the struct.
func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// CustomerID returns the owning customer's identifier.
func (o *Order) CustomerID() kernel.UUID {
	return o.customerID
}

// DeliveryPartner returns the assigned partner's ID.
// Returns nil if no partner is assigned.
func (o *Order) DeliveryPartner() *kernel.UUID {
	return o.deliveryPartnerID
}

// IsAssignedTo reports whether the order is assigned to the given partner.
func (o *Order) IsAssignedTo(partnerID kernel.UUID) bool {
	return o.deliveryPartnerID != nil && o.deliveryPartnerID.IsEqual(partnerID)
}

// LineItems returns a copy of the order's snapshotted line items.
func (o *Order) LineItems() []LineItem {
	items := make([]LineItem, len(o.lineItems))
	copy(items, o.lineItems)
	return items
}

// TotalPrice returns the order total captured at creation time.
func (o *Order) TotalPrice() decimal.Decimal {
	return o.totalPrice
}

// Status returns the current status of the order.
func (o *Order) Status() Status {
	return o.status
}

// Version returns the optimistic concurrency token the aggregate was read at.
func (o *Order) Version() int64 {
	return o.version
}

// CreatedAt returns when the order was placed.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// UpdatedAt returns when the order was last mutated.
func (o *Order) UpdatedAt() time.Time {
	return o.updatedAt
}

// TransitionTo moves the order along one edge of the status graph.
//
// Returns *InvalidStatusTransitionError if (current, target) is not an edge;
// terminal states reject every target. Direct transition to OutForDelivery is
// not an edge from Pending or Confirmed: that state is reached through
// AssignPartner, which is the only sanctioned dispatch path.
func (o *Order) TransitionTo(target Status) error {
	newStatus, err := o.status.TransitionTo(target)
	if err != nil {
		return err
	}

	o.status = newStatus
	o.touch()
	return nil
}

// ForceStatus sets the status to any valid value, bypassing the transition
// graph. This exists solely for the privileged administrator override; every
// normal path goes through TransitionTo.
func (o *Order) ForceStatus(target Status) error {
	if err := target.Validate(); err != nil {
		return err
	}

	o.status = target
	o.touch()
	return nil
}

// AssignPartner binds a delivery partner to the order and dispatches it:
// the status advances to OutForDelivery as part of assignment. There is no
// separate assigned-but-not-dispatched state.
//
// Re-assignment of an already dispatched order is permitted and simply
// overwrites the partner reference. Terminal orders reject assignment.
func (o *Order) AssignPartner(partnerID kernel.UUID) error {
	if err := partnerID.Validate(); err != nil {
		return err
	}

	if o.status.IsTerminal() {
		return NewInvalidStatusTransitionError(o.status, OutForDelivery)
	}

	o.deliveryPartnerID = &partnerID
	o.status = OutForDelivery
	o.touch()
	return nil
}

// touch refreshes the updatedAt timestamp on mutation.
func (o *Order) touch() {
	o.updatedAt = time.Now().UTC()
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}
	o.customerID = customerID
	return nil
}

func (o *Order) setLineItems(lineItems []LineItem) error {
	if len(lineItems) == 0 {
		return ErrLineItemsAreRequired
	}

	for _, item := range lineItems {
		if err := item.Validate(); err != nil {
			return err
		}
	}

	o.lineItems = make([]LineItem, len(lineItems))
	copy(o.lineItems, lineItems)
	return nil
}

func (o *Order) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}

func (o *Order) setDeliveryPartnerID(partnerID *kernel.UUID) error {
	if partnerID == nil {
		return nil
	}
	if err := partnerID.Validate(); err != nil {
		return err
	}
	o.deliveryPartnerID = partnerID
	return nil
}

// sumLineTotals computes the order total from line-item snapshots.
func sumLineTotals(items []LineItem) decimal.Decimal {
	total := decimal.Zero
	for _, item := range items {
		total = total.Add(item.Total())
	}
	return total
}

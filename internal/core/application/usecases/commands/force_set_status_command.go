package commands

import (
	"errors"

	"freshcart/internal/core/domain/model/kernel"
	"freshcart/internal/core/domain/model/order"
	"freshcart/internal/pkg/guard"
)

var ErrForceSetStatusCommandIsNotConstructed = errors.New(
	"ForceSetStatusCommand must be created via NewForceSetStatusCommand constructor",
)

// ForceSetStatusCommand represents an administrative override that places an
// order directly into any valid status, bypassing the transition graph.
// Used for support interventions; exposed only on administrator routes.
type ForceSetStatusCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	status  order.Status

	guard guard.ConstructorGuard
}

// NewForceSetStatusCommand creates a command to force an order's status.
// Any of the six valid statuses is accepted, including out-for-delivery.
func NewForceSetStatusCommand(orderID kernel.UUID, status order.Status) (ForceSetStatusCommand, error) {
	forceCommand := ForceSetStatusCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		forceCommand.setOrderID(orderID),
		forceCommand.setStatus(status),
	); err != nil {
		return ForceSetStatusCommand{}, err
	}

	return forceCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrForceSetStatusCommandIsNotConstructed if validation fails.
func (c ForceSetStatusCommand) Validate() error {
	return c.guard.Validate(ErrForceSetStatusCommandIsNotConstructed)
}

// OrderID returns the identifier of the order being overridden.
func (c ForceSetStatusCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Status returns the status the order is forced into.
func (c ForceSetStatusCommand) Status() order.Status {
	return c.status
}

func (c *ForceSetStatusCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *ForceSetStatusCommand) setStatus(status order.Status) error {
	if err := status.Validate(); err != nil {
		return err
	}

	c.status = status
	return nil
}

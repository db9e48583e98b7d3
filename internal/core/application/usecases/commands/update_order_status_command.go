package commands

import (
	"errors"

	"freshcart/internal/core/domain/model/auth"
	"freshcart/internal/core/domain/model/kernel"
	"freshcart/internal/core/domain/model/order"
	"freshcart/internal/pkg/guard"
)

var (
	ErrUpdateOrderStatusCommandIsNotConstructed = errors.New(
		"UpdateOrderStatusCommand must be created via NewUpdateOrderStatusCommand constructor",
	)

	// ErrStatusRequiresAssignment rejects "out-for-delivery" as a direct
	// status update target. That state is entered only by assigning a
	// delivery partner.
	ErrStatusRequiresAssignment = errors.New(
		"status out-for-delivery is set by partner assignment, not by status update",
	)
)

// UpdateOrderStatusCommand represents a request to move an order to a new
// lifecycle status on behalf of an authenticated actor.
type UpdateOrderStatusCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	status  order.Status
	actor   auth.Principal

	guard guard.ConstructorGuard
}

// NewUpdateOrderStatusCommand creates a command to change an order's status.
// The target must be a valid status other than out-for-delivery; the actor
// is checked against the transition policy when the command is handled.
func NewUpdateOrderStatusCommand(
	orderID kernel.UUID, status order.Status, actor auth.Principal,
) (UpdateOrderStatusCommand, error) {
	statusCommand := UpdateOrderStatusCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		statusCommand.setOrderID(orderID),
		statusCommand.setStatus(status),
		statusCommand.setActor(actor),
	); err != nil {
		return UpdateOrderStatusCommand{}, err
	}

	return statusCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrUpdateOrderStatusCommandIsNotConstructed if validation fails.
func (c UpdateOrderStatusCommand) Validate() error {
	return c.guard.Validate(ErrUpdateOrderStatusCommandIsNotConstructed)
}

// OrderID returns the identifier of the order being updated.
func (c UpdateOrderStatusCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Status returns the requested target status.
func (c UpdateOrderStatusCommand) Status() order.Status {
	return c.status
}

// Actor returns the authenticated principal requesting the change.
func (c UpdateOrderStatusCommand) Actor() auth.Principal {
	return c.actor
}

func (c *UpdateOrderStatusCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *UpdateOrderStatusCommand) setStatus(status order.Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	if status == order.OutForDelivery {
		return ErrStatusRequiresAssignment
	}

	c.status = status
	return nil
}

func (c *UpdateOrderStatusCommand) setActor(actor auth.Principal) error {
	if err := actor.Validate(); err != nil {
		return err
	}

	c.actor = actor
	return nil
}

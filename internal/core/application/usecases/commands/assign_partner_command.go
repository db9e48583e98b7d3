package commands

import (
	"errors"

	"freshcart/internal/core/domain/model/auth"
	"freshcart/internal/core/domain/model/kernel"
	"freshcart/internal/pkg/guard"
)

var ErrAssignPartnerCommandIsNotConstructed = errors.New(
	"AssignPartnerCommand must be created via NewAssignPartnerCommand constructor",
)

// AssignPartnerCommand represents a request to dispatch an order with a
// delivery partner. Assignment implies dispatch: a successful assignment
// always leaves the order in "out-for-delivery".
type AssignPartnerCommand struct { //nolint:recvcheck //using for validation
	orderID   kernel.UUID
	partnerID kernel.UUID
	actor     auth.Principal

	guard guard.ConstructorGuard
}

// NewAssignPartnerCommand creates a command to assign a delivery partner to
// an order. Re-issuing with a different partner re-assigns a dispatched order.
func NewAssignPartnerCommand(
	orderID kernel.UUID, partnerID kernel.UUID, actor auth.Principal,
) (AssignPartnerCommand, error) {
	assignCommand := AssignPartnerCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		assignCommand.setOrderID(orderID),
		assignCommand.setPartnerID(partnerID),
		assignCommand.setActor(actor),
	); err != nil {
		return AssignPartnerCommand{}, err
	}

	return assignCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrAssignPartnerCommandIsNotConstructed if validation fails.
func (c AssignPartnerCommand) Validate() error {
	return c.guard.Validate(ErrAssignPartnerCommandIsNotConstructed)
}

// OrderID returns the identifier of the order being dispatched.
func (c AssignPartnerCommand) OrderID() kernel.UUID {
	return c.orderID
}

// PartnerID returns the identifier of the delivery partner.
func (c AssignPartnerCommand) PartnerID() kernel.UUID {
	return c.partnerID
}

// Actor returns the authenticated principal requesting the assignment.
func (c AssignPartnerCommand) Actor() auth.Principal {
	return c.actor
}

func (c *AssignPartnerCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *AssignPartnerCommand) setPartnerID(partnerID kernel.UUID) error {
	if err := partnerID.Validate(); err != nil {
		return err
	}

	c.partnerID = partnerID
	return nil
}

func (c *AssignPartnerCommand) setActor(actor auth.Principal) error {
	if err := actor.Validate(); err != nil {
		return err
	}

	c.actor = actor
	return nil
}

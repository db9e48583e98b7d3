package commands

import (
	"errors"

	"freshcart/internal/core/domain/model/kernel"
	"freshcart/internal/pkg/guard"
)

var ErrLinkUserToPartnerCommandIsNotConstructed = errors.New(
	"LinkUserToPartnerCommand must be created via NewLinkUserToPartnerCommand constructor",
)

// LinkUserToPartnerCommand represents a request to bind a user account to a
// delivery partner profile. The link is one-time: a linked partner can never
// be re-linked, and a user can hold at most one link.
type LinkUserToPartnerCommand struct { //nolint:recvcheck //using for validation
	partnerID kernel.UUID
	userID    kernel.UUID

	guard guard.ConstructorGuard
}

// NewLinkUserToPartnerCommand creates a command to link a user account to a partner.
func NewLinkUserToPartnerCommand(partnerID, userID kernel.UUID) (LinkUserToPartnerCommand, error) {
	linkCommand := LinkUserToPartnerCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		linkCommand.setPartnerID(partnerID),
		linkCommand.setUserID(userID),
	); err != nil {
		return LinkUserToPartnerCommand{}, err
	}

	return linkCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrLinkUserToPartnerCommandIsNotConstructed if validation fails.
func (c LinkUserToPartnerCommand) Validate() error {
	return c.guard.Validate(ErrLinkUserToPartnerCommandIsNotConstructed)
}

// PartnerID returns the identifier of the partner profile being linked.
func (c LinkUserToPartnerCommand) PartnerID() kernel.UUID {
	return c.partnerID
}

// UserID returns the identifier of the user account being linked.
func (c LinkUserToPartnerCommand) UserID() kernel.UUID {
	return c.userID
}

func (c *LinkUserToPartnerCommand) setPartnerID(partnerID kernel.UUID) error {
	if err := partnerID.Validate(); err != nil {
		return err
	}

	c.partnerID = partnerID
	return nil
}

func (c *LinkUserToPartnerCommand) setUserID(userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return err
	}

	c.userID = userID
	return nil
}

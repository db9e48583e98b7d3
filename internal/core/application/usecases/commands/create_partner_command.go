package commands

import (
	"errors"

	"freshcart/internal/core/domain/model/kernel"
	"freshcart/internal/pkg/guard"
)

var (
	ErrCreatePartnerCommandIsNotConstructed = errors.New(
		"CreatePartnerCommand must be created via NewCreatePartnerCommand constructor",
	)
	ErrPartnerNameIsRequired        = errors.New("partner name is required")
	ErrPartnerPhoneIsRequired       = errors.New("partner phone is required")
	ErrPartnerVehicleTypeIsRequired = errors.New("partner vehicle type is required")
)

// CreatePartnerCommand represents a request to register a new delivery
// partner profile. The profile starts with an empty assignment history; a
// user account may optionally be linked at registration time.
type CreatePartnerCommand struct { //nolint:recvcheck //using for validation
	partnerID    kernel.UUID
	name         string
	phone        string
	vehicleType  string
	linkedUserID *kernel.UUID

	guard guard.ConstructorGuard
}

// NewCreatePartnerCommand creates a command to register a delivery partner.
// Validates that the ID is a valid UUID and the profile fields are not
// empty. linkedUserID is optional; pass nil to register an unlinked profile.
func NewCreatePartnerCommand(
	partnerID kernel.UUID, name, phone, vehicleType string, linkedUserID *kernel.UUID,
) (CreatePartnerCommand, error) {
	partnerCommand := CreatePartnerCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		partnerCommand.setPartnerID(partnerID),
		partnerCommand.setName(name),
		partnerCommand.setPhone(phone),
		partnerCommand.setVehicleType(vehicleType),
		partnerCommand.setLinkedUserID(linkedUserID),
	); err != nil {
		return CreatePartnerCommand{}, err
	}

	return partnerCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreatePartnerCommandIsNotConstructed if validation fails.
func (c CreatePartnerCommand) Validate() error {
	return c.guard.Validate(ErrCreatePartnerCommandIsNotConstructed)
}

// PartnerID returns the unique identifier for the new partner.
func (c CreatePartnerCommand) PartnerID() kernel.UUID {
	return c.partnerID
}

// Name returns the partner's display name.
func (c CreatePartnerCommand) Name() string {
	return c.name
}

// Phone returns the partner's contact phone number.
func (c CreatePartnerCommand) Phone() string {
	return c.phone
}

// VehicleType returns the partner's vehicle type.
func (c CreatePartnerCommand) VehicleType() string {
	return c.vehicleType
}

// LinkedUserID returns the user account to bind to the new partner, or nil
// when the profile should start unlinked.
func (c CreatePartnerCommand) LinkedUserID() *kernel.UUID {
	return c.linkedUserID
}

func (c *CreatePartnerCommand) setPartnerID(partnerID kernel.UUID) error {
	if err := partnerID.Validate(); err != nil {
		return err
	}

	c.partnerID = partnerID
	return nil
}

func (c *CreatePartnerCommand) setName(name string) error {
	if name == "" {
		return ErrPartnerNameIsRequired
	}

	c.name = name
	return nil
}

func (c *CreatePartnerCommand) setPhone(phone string) error {
	if phone == "" {
		return ErrPartnerPhoneIsRequired
	}

	c.phone = phone
	return nil
}

func (c *CreatePartnerCommand) setVehicleType(vehicleType string) error {
	if vehicleType == "" {
		return ErrPartnerVehicleTypeIsRequired
	}

	c.vehicleType = vehicleType
	return nil
}

func (c *CreatePartnerCommand) setLinkedUserID(linkedUserID *kernel.UUID) error {
	if linkedUserID == nil {
		return nil
	}
	if err := linkedUserID.Validate(); err != nil {
		return err
	}

	userID := *linkedUserID
	c.linkedUserID = &userID
	return nil
}

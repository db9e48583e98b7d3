package partner

import (
	"errors"
	"fmt"
	"time"

	"freshcart/internal/core/domain/model/kernel"
	"freshcart/internal/pkg/errs"
	"freshcart/internal/pkg/guard"
)

// Domain errors for delivery partner operations.
var (
	// ErrNameIsRequired is returned when attempting to create a partner without a name.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")
	// ErrPhoneIsRequired is returned when attempting to create a partner without a phone number.
	ErrPhoneIsRequired = errs.NewValueIsRequiredError("phone")
	// ErrVehicleTypeIsRequired is returned when attempting to create a partner without a vehicle type.
	ErrVehicleTypeIsRequired = errs.NewValueIsRequiredError("vehicleType")
	// ErrPartnerIsNotConstructed is returned when using an improperly initialized DeliveryPartner.
	ErrPartnerIsNotConstructed = errors.New("DeliveryPartner must be created via NewDeliveryPartner constructor")

	// ErrAlreadyLinked is the sentinel for rejected user-link attempts.
	// The concrete *AlreadyLinkedError names the partner and user involved.
	ErrAlreadyLinked = errors.New("already linked")

	// ErrDuplicatePhone is the sentinel for registrations that reuse a
	// phone number already held by another partner.
	ErrDuplicatePhone = errors.New("duplicate phone")
)

// AlreadyLinkedError reports a rejected attempt to link a user account:
// either this partner already carries a link, or the user account is linked
// to a different partner. Links are one-time and cannot be transferred.
type AlreadyLinkedError struct {
	PartnerID kernel.UUID
	UserID    kernel.UUID
}

// NewAlreadyLinkedError creates an AlreadyLinkedError for the given partner and user.
func NewAlreadyLinkedError(partnerID, userID kernel.UUID) *AlreadyLinkedError {
	return &AlreadyLinkedError{PartnerID: partnerID, UserID: userID}
}

func (e *AlreadyLinkedError) Error() string {
	return fmt.Sprintf("%s: partner %s, user %s", ErrAlreadyLinked, e.PartnerID, e.UserID)
}

func (e *AlreadyLinkedError) Unwrap() error {
	return ErrAlreadyLinked
}

// DuplicatePhoneError reports a rejected registration: the phone number is
// already on record for another partner.
type DuplicatePhoneError struct {
	Phone string
}

// NewDuplicatePhoneError creates a DuplicatePhoneError for the given phone number.
func NewDuplicatePhoneError(phone string) *DuplicatePhoneError {
	return &DuplicatePhoneError{Phone: phone}
}

func (e *DuplicatePhoneError) Error() string {
	return fmt.Sprintf("%s: %s", ErrDuplicatePhone, e.Phone)
}

func (e *DuplicatePhoneError) Unwrap() error {
	return ErrDuplicatePhone
}

// DeliveryPartner represents a courier working for the marketplace.
// It is an aggregate root managing the partner's identity, the append-only
// history of orders assigned to them, and the optional link to a user
// account used for signing in.
//
// The assignment history is intentionally retained forever: delivering,
// cancelling, or re-assigning an order elsewhere never removes it from the
// partner's history. The version field supports the repositories' optimistic
// write discipline, same as on Order.
type DeliveryPartner struct {
	// id uniquely identifies the partner
	id kernel.UUID
	// name is the partner's display name
	name string
	// phone is the partner's contact number, unique across partners
	phone string
	// vehicleType describes what the partner delivers with
	vehicleType string
	// linkedUserID is the one-time link to a user account (nil if unlinked)
	linkedUserID *kernel.UUID
	// assignedOrders is the append-only history of assigned order ids
	assignedOrders []kernel.UUID
	// version is the optimistic concurrency token
	version int64

	createdAt time.Time
	updatedAt time.Time

	guard guard.ConstructorGuard
}

// NewDeliveryPartner creates a new partner profile. Administrators are the
// only callers; the authorization check lives in the command handler.
//
// Business rules:
//   - name, phone, and vehicle type are all required
//   - the history starts empty and no user is linked
func NewDeliveryPartner(id kernel.UUID, name, phone, vehicleType string) (*DeliveryPartner, error) {
	now := time.Now().UTC()
	p := &DeliveryPartner{
		assignedOrders: make([]kernel.UUID, 0),
		version:        1,
		createdAt:      now,
		updatedAt:      now,
		guard:          guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		p.setID(id),
		p.setName(name),
		p.setPhone(phone),
		p.setVehicleType(vehicleType),
	); err != nil {
		return nil, err
	}

	return p, nil
}

// RestoreDeliveryPartner reconstructs a partner aggregate from persistent
// storage, including the assignment history and user link as persisted.
func RestoreDeliveryPartner(
	id kernel.UUID,
	name, phone, vehicleType string,
	linkedUserID *kernel.UUID,
	assignedOrders []kernel.UUID,
	version int64,
	createdAt, updatedAt time.Time,
) (*DeliveryPartner, error) {
	p := &DeliveryPartner{
		version:   version,
		createdAt: createdAt,
		updatedAt: updatedAt,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		p.setID(id),
		p.setName(name),
		p.setPhone(phone),
		p.setVehicleType(vehicleType),
		p.setLinkedUserID(linkedUserID),
		p.setAssignedOrders(assignedOrders),
	); err != nil {
		return nil, err
	}

	return p, nil
}

// Validate checks if the DeliveryPartner was properly constructed.
func (p *DeliveryPartner) Validate() error {
	if p == nil {
		return ErrPartnerIsNotConstructed
	}
	return p.guard.Validate(ErrPartnerIsNotConstructed)
}

// IsEqual compares two partners by their unique identifiers.
func (p *DeliveryPartner) IsEqual(other *DeliveryPartner) bool {
	return other != nil && p.id.IsEqual(other.id)
}

// ID returns the partner's unique identifier.
func (p *DeliveryPartner) ID() kernel.UUID {
	return p.id
}

// Name returns the partner's display name.
func (p *DeliveryPartner) Name() string {
	return p.name
}

// Phone returns the partner's contact number.
func (p *DeliveryPartner) Phone() string {
	return p.phone
}

// VehicleType returns the partner's vehicle type.
func (p *DeliveryPartner) VehicleType() string {
	return p.vehicleType
}

// LinkedUser returns the linked user account's ID, or nil if unlinked.
func (p *DeliveryPartner) LinkedUser() *kernel.UUID {
	return p.linkedUserID
}

// AssignedOrders returns a copy of the append-only assignment history.
func (p *DeliveryPartner) AssignedOrders() []kernel.UUID {
	history := make([]kernel.UUID, len(p.assignedOrders))
	copy(history, p.assignedOrders)
	return history
}

// Version returns the optimistic concurrency token the aggregate was read at.
func (p *DeliveryPartner) Version() int64 {
	return p.version
}

// CreatedAt returns when the partner profile was registered.
func (p *DeliveryPartner) CreatedAt() time.Time {
	return p.createdAt
}

// UpdatedAt returns when the partner was last mutated.
func (p *DeliveryPartner) UpdatedAt() time.Time {
	return p.updatedAt
}

// RecordAssignment appends an order to the partner's history.
// The history is append-only: repeated assignment of the same order adds
// another entry rather than failing, matching the retained-history model.
func (p *DeliveryPartner) RecordAssignment(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	p.assignedOrders = append(p.assignedOrders, orderID)
	p.touch()
	return nil
}

// LinkUser performs the one-time link of a user account to this partner.
// Returns *AlreadyLinkedError if a link already exists; links cannot be
// changed or transferred. Cross-partner uniqueness of the user is enforced
// by the repository against the store.
func (p *DeliveryPartner) LinkUser(userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return err
	}

	if p.linkedUserID != nil {
		return NewAlreadyLinkedError(p.id, userID)
	}

	p.linkedUserID = &userID
	p.touch()
	return nil
}

func (p *DeliveryPartner) touch() {
	p.updatedAt = time.Now().UTC()
}

func (p *DeliveryPartner) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

func (p *DeliveryPartner) setName(name string) error {
	if name == "" {
		return ErrNameIsRequired
	}
	p.name = name
	return nil
}

func (p *DeliveryPartner) setPhone(phone string) error {
	if phone == "" {
		return ErrPhoneIsRequired
	}
	p.phone = phone
	return nil
}

func (p *DeliveryPartner) setVehicleType(vehicleType string) error {
	if vehicleType == "" {
		return ErrVehicleTypeIsRequired
	}
	p.vehicleType = vehicleType
	return nil
}

func (p *DeliveryPartner) setLinkedUserID(userID *kernel.UUID) error {
	if userID == nil {
		return nil
	}
	if err := userID.Validate(); err != nil {
		return err
	}
	p.linkedUserID = userID
	return nil
}

func (p *DeliveryPartner) setAssignedOrders(orders []kernel.UUID) error {
	history := make([]kernel.UUID, 0, len(orders))
	for _, id := range orders {
		if err := id.Validate(); err != nil {
			return err
		}
		history = append(history, id)
	}
	p.assignedOrders = history
	return nil
}

// Package auth defines the authenticated principal passed into every
// service operation. The order core trusts this value: credential
// verification happens upstream, at the HTTP adapter.
package auth

import (
	"errors"

	"freshcart/internal/core/domain/model/kernel"
	"freshcart/internal/pkg/errs"
	"freshcart/internal/pkg/guard"
)

// ErrPrincipalIsNotConstructed is returned when a Principal was not created
// through the NewPrincipal constructor.
var ErrPrincipalIsNotConstructed = errors.New("Principal must be created via NewPrincipal constructor")

// Role identifies which surface of the marketplace a principal belongs to.
type Role string

const (
	RoleCustomer Role = "customer"
	RoleVendor   Role = "vendor"
	RoleAdmin    Role = "admin"
	RoleDelivery Role = "delivery"
)

// Validate checks that the role is one of the four known marketplace roles.
func (r Role) Validate() error {
	switch r {
	case RoleCustomer, RoleVendor, RoleAdmin, RoleDelivery:
		return nil
	default:
		return errs.NewValueIsInvalidError("role")
	}
}

// String returns the wire representation of the role.
func (r Role) String() string {
	return string(r)
}

// Principal is the authenticated identity acting on an operation.
// Authorization decisions are made against this value and never against
// client-held claims.
type Principal struct {
	id   kernel.UUID
	role Role

	guard guard.ConstructorGuard
}

// NewPrincipal creates a Principal with a validated identity and role.
func NewPrincipal(id kernel.UUID, role Role) (Principal, error) {
	if err := id.Validate(); err != nil {
		return Principal{}, err
	}
	if err := role.Validate(); err != nil {
		return Principal{}, err
	}

	return Principal{
		id:    id,
		role:  role,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the principal was created through the constructor.
func (p Principal) Validate() error {
	return p.guard.Validate(ErrPrincipalIsNotConstructed)
}

// ID returns the principal's unique identifier.
func (p Principal) ID() kernel.UUID {
	return p.id
}

// Role returns the principal's marketplace role.
func (p Principal) Role() Role {
	return p.role
}

// IsAdmin reports whether the principal is an administrator.
func (p Principal) IsAdmin() bool {
	return p.role == RoleAdmin
}

// IsDeliveryPartner reports whether the principal is a delivery partner.
func (p Principal) IsDeliveryPartner() bool {
	return p.role == RoleDelivery
}

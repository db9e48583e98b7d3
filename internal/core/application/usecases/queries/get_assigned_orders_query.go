package queries

import (
	"errors"

	"freshcart/internal/core/domain/model/kernel"
	"freshcart/internal/pkg/guard"
)

var ErrGetAssignedOrdersQueryIsNotConstructed = errors.New(
	"GetAssignedOrdersQuery must be created via NewGetAssignedOrdersQuery constructor",
)

// GetAssignedOrdersQuery retrieves every order assigned to a delivery
// partner, active and completed alike.
type GetAssignedOrdersQuery struct {
	partnerID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetAssignedOrdersQuery creates a query for a partner's deliveries.
func NewGetAssignedOrdersQuery(partnerID kernel.UUID) (GetAssignedOrdersQuery, error) {
	if err := partnerID.Validate(); err != nil {
		return GetAssignedOrdersQuery{}, err
	}

	return GetAssignedOrdersQuery{
		partnerID: partnerID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetAssignedOrdersQueryIsNotConstructed if validation fails.
func (q GetAssignedOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetAssignedOrdersQueryIsNotConstructed)
}

// PartnerID returns the identifier of the delivery partner.
func (q GetAssignedOrdersQuery) PartnerID() kernel.UUID {
	return q.partnerID
}

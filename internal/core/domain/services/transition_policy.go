package services

import (
	"errors"
	"fmt"

	"freshcart/internal/core/domain/model/auth"
	"freshcart/internal/core/domain/model/order"
)

// ErrForbiddenTransition is the sentinel for status changes rejected by the
// authorization policy rather than by the status graph. Use errors.Is against
// it; the concrete *ForbiddenTransitionError carries the principal's role and
// both states.
var ErrForbiddenTransition = errors.New("forbidden transition")

// ForbiddenTransitionError reports that the acting principal is not allowed
// to perform an otherwise well-formed status change. It carries enough
// context (role, current state, requested state) to render a user-facing
// message.
type ForbiddenTransitionError struct {
	Role auth.Role
	From order.Status
	To   order.Status
}

// NewForbiddenTransitionError creates a ForbiddenTransitionError for the rejected request.
func NewForbiddenTransitionError(role auth.Role, from, to order.Status) *ForbiddenTransitionError {
	return &ForbiddenTransitionError{Role: role, From: from, To: to}
}

func (e *ForbiddenTransitionError) Error() string {
	return fmt.Sprintf("%s: role %s may not move order %s -> %s", ErrForbiddenTransition, e.Role, e.From, e.To)
}

func (e *ForbiddenTransitionError) Unwrap() error {
	return ErrForbiddenTransition
}

// TransitionPolicy is the single authorization table for order status
// changes, evaluated once per request. The graph itself (which edges exist)
// belongs to the order aggregate; this policy decides who may walk them:
//
//	admin     any edge of the graph
//	delivery  only orders assigned to them, and only the delivery-stage
//	          edges: out-for-delivery -> delivered, and any -> cancelled
//	customer  none
//	vendor    none
//
// The policy never consults client-held claims; it sees only the verified
// principal and the order's persisted assignment.
type TransitionPolicy struct{}

// NewTransitionPolicy creates a new TransitionPolicy instance.
func NewTransitionPolicy() TransitionPolicy {
	return TransitionPolicy{}
}

// AuthorizeStatusChange decides whether the principal may request the given
// target status for the order. It authorizes the actor only; whether
// (current, target) is an edge of the graph is checked separately by the
// aggregate, so an admin asking for an unreachable status passes here and
// fails there.
func (TransitionPolicy) AuthorizeStatusChange(principal auth.Principal, o *order.Order, target order.Status) error {
	if err := principal.Validate(); err != nil {
		return err
	}
	if err := o.Validate(); err != nil {
		return err
	}

	if principal.IsAdmin() {
		return nil
	}

	if principal.IsDeliveryPartner() {
		if !o.IsAssignedTo(principal.ID()) {
			return NewForbiddenTransitionError(principal.Role(), o.Status(), target)
		}
		if isDeliveryStageTarget(target) {
			return nil
		}
		return NewForbiddenTransitionError(principal.Role(), o.Status(), target)
	}

	return NewForbiddenTransitionError(principal.Role(), o.Status(), target)
}

// AuthorizeAssignment decides whether the principal may bind a delivery
// partner to an order. Only administrators assign partners.
func (TransitionPolicy) AuthorizeAssignment(principal auth.Principal, o *order.Order) error {
	if err := principal.Validate(); err != nil {
		return err
	}
	if err := o.Validate(); err != nil {
		return err
	}

	if !principal.IsAdmin() {
		return NewForbiddenTransitionError(principal.Role(), o.Status(), order.OutForDelivery)
	}
	return nil
}

// isDeliveryStageTarget reports whether the requested status is one a partner
// may ask for on their own order: completing the delivery or calling it off.
func isDeliveryStageTarget(target order.Status) bool {
	return target == order.Delivered || target == order.Cancelled
}

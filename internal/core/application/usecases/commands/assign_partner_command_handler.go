package commands

import (
	"context"

	"freshcart/internal/core/domain/services"
)

// AssignPartnerCommandHandler handles partner assignment and dispatch.
// Both aggregates change in one transaction: the order records the partner
// and moves to "out-for-delivery", and the partner's assignment history
// gains an entry. Re-assignment of an already dispatched order keeps the
// previous partner's history entry; history is append-only.
type AssignPartnerCommandHandler struct {
	uowFactory UoWFactory
	policy     services.TransitionPolicy
}

// NewAssignPartnerCommandHandler creates a handler for partner assignment operations.
// Requires a cross-aggregate UoWFactory since assignment touches both the
// order and the partner.
func NewAssignPartnerCommandHandler(
	uowFactory UoWFactory, policy services.TransitionPolicy,
) AssignPartnerCommandHandler {
	return AssignPartnerCommandHandler{
		uowFactory: uowFactory,
		policy:     policy,
	}
}

// Handle processes the assignment command.
//
// Returns:
//   - errs.ObjectNotFoundError when the order or the partner does not exist
//   - *services.ForbiddenTransitionError when the actor may not assign
//   - *order.InvalidStatusTransitionError when the order is already terminal
//   - errs.ConcurrentModificationError when either aggregate changed underneath
func (h *AssignPartnerCommandHandler) Handle(ctx context.Context, cmd AssignPartnerCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	orderAggregate, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = h.policy.AuthorizeAssignment(cmd.Actor(), orderAggregate); err != nil {
		return err
	}

	partnerRepo := uow.PartnerRepository()
	partnerAggregate, err := partnerRepo.Get(ctx, cmd.PartnerID())
	if err != nil {
		return err
	}

	if err = orderAggregate.AssignPartner(cmd.PartnerID()); err != nil {
		return err
	}

	if err = partnerAggregate.RecordAssignment(cmd.OrderID()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, orderAggregate); err != nil {
		return err
	}

	if err = partnerRepo.Update(ctx, partnerAggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

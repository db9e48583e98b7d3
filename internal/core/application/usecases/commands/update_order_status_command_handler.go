package commands

import (
	"context"

	"freshcart/internal/core/domain/services"
)

// UpdateOrderStatusCommandHandler handles order status changes.
// The status graph decides whether the move is legal at all; the transition
// policy decides whether this actor may perform it. Both checks run against
// the freshly loaded order inside the transaction.
type UpdateOrderStatusCommandHandler struct {
	uowFactory OrderUoWFactory
	policy     services.TransitionPolicy
}

// NewUpdateOrderStatusCommandHandler creates a handler for status change operations.
func NewUpdateOrderStatusCommandHandler(
	uowFactory OrderUoWFactory, policy services.TransitionPolicy,
) UpdateOrderStatusCommandHandler {
	return UpdateOrderStatusCommandHandler{
		uowFactory: uowFactory,
		policy:     policy,
	}
}

// Handle processes the status change command.
//
// Returns:
//   - errs.ObjectNotFoundError when the order does not exist
//   - *services.ForbiddenTransitionError when the actor may not perform the change
//   - *order.InvalidStatusTransitionError when the move is off the status graph
//   - errs.ConcurrentModificationError when the order changed underneath
func (h *UpdateOrderStatusCommandHandler) Handle(ctx context.Context, cmd UpdateOrderStatusCommand) error {
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

	if err = h.policy.AuthorizeStatusChange(cmd.Actor(), orderAggregate, cmd.Status()); err != nil {
		return err
	}

	if err = orderAggregate.TransitionTo(cmd.Status()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, orderAggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

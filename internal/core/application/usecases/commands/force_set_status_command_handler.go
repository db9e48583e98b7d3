package commands

import (
	"context"
)

// ForceSetStatusCommandHandler handles administrative status overrides.
// Unlike regular status updates, the transition graph and the transition
// policy are not consulted; only status validity is enforced.
type ForceSetStatusCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewForceSetStatusCommandHandler creates a handler for status override operations.
func NewForceSetStatusCommandHandler(uowFactory OrderUoWFactory) ForceSetStatusCommandHandler {
	return ForceSetStatusCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the status override command.
func (h *ForceSetStatusCommandHandler) Handle(ctx context.Context, cmd ForceSetStatusCommand) error {
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

	if err = orderAggregate.ForceStatus(cmd.Status()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, orderAggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

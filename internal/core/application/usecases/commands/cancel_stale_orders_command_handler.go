package commands

import (
	"context"
	"time"

	"freshcart/internal/core/domain/model/order"
)

// CancelStaleOrdersCommandHandler cancels orders that stayed pending past
// the age limit. All cancellations happen in one transaction; a failed run
// leaves every order untouched and the next scheduled run retries.
type CancelStaleOrdersCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewCancelStaleOrdersCommandHandler creates a handler for the stale-order sweep.
func NewCancelStaleOrdersCommandHandler(uowFactory OrderUoWFactory) CancelStaleOrdersCommandHandler {
	return CancelStaleOrdersCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the sweep command. Orders still pending at the cutoff
// move to "cancelled" through the regular transition graph.
func (h *CancelStaleOrdersCommandHandler) Handle(ctx context.Context, cmd CancelStaleOrdersCommand) error {
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
	cutoff := time.Now().UTC().Add(-cmd.MaxAge())
	staleOrders, err := orderRepo.GetAllPendingOlderThan(ctx, cutoff)
	if err != nil {
		return err
	}

	for _, staleOrder := range staleOrders {
		if err = staleOrder.TransitionTo(order.Cancelled); err != nil {
			return err
		}

		if err = orderRepo.Update(ctx, staleOrder); err != nil {
			return err
		}
	}

	return uow.Commit(ctx)
}

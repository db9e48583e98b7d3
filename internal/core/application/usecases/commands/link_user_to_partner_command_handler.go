package commands

import (
	"context"
)

// LinkUserToPartnerCommandHandler handles the one-time binding of a user
// account to a delivery partner profile. The aggregate rejects re-linking an
// already linked partner; the repository's unique index rejects a user who
// already holds a link to another partner. Both surface as
// *partner.AlreadyLinkedError.
type LinkUserToPartnerCommandHandler struct {
	uowFactory PartnerUoWFactory
}

// NewLinkUserToPartnerCommandHandler creates a handler for user link operations.
func NewLinkUserToPartnerCommandHandler(uowFactory PartnerUoWFactory) LinkUserToPartnerCommandHandler {
	return LinkUserToPartnerCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the link command.
//
// Returns:
//   - errs.ObjectNotFoundError when the partner does not exist
//   - *partner.AlreadyLinkedError when either side already holds a link
//   - errs.ConcurrentModificationError when the partner changed underneath
func (h *LinkUserToPartnerCommandHandler) Handle(ctx context.Context, cmd LinkUserToPartnerCommand) error {
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

	partnerRepo := uow.PartnerRepository()
	partnerAggregate, err := partnerRepo.Get(ctx, cmd.PartnerID())
	if err != nil {
		return err
	}

	if err = partnerAggregate.LinkUser(cmd.UserID()); err != nil {
		return err
	}

	if err = partnerRepo.Update(ctx, partnerAggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

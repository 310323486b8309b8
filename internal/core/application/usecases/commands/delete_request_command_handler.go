package commands

import (
	"context"
)

// DeleteRequestCommandHandler deletes a pending request and everything that
// hangs off it in one transaction: assignments, status trail, notifications
// and images. The request row itself is soft-deleted.
type DeleteRequestCommandHandler struct {
	uowFactory UoWFactory
}

func NewDeleteRequestCommandHandler(uowFactory UoWFactory) DeleteRequestCommandHandler {
	return DeleteRequestCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle returns request.ErrNotRequestOwner or request.ErrIllegalDelete when
// the deletion is not allowed.
func (h DeleteRequestCommandHandler) Handle(ctx context.Context, command DeleteRequestCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	requestRepo := uow.RequestRepository()

	req, err := requestRepo.GetForUpdate(ctx, command.RequestID())
	if err != nil {
		return err
	}

	if err = req.AuthorizeDelete(command.ActorID(), command.Privileged()); err != nil {
		return err
	}

	if err = uow.AssignmentRepository().DeleteByRequest(ctx, req.ID()); err != nil {
		return err
	}

	if err = uow.StatusHistoryRepository().DeleteByRequest(ctx, req.ID()); err != nil {
		return err
	}

	if err = uow.NotificationRepository().DeleteByRequest(ctx, req.ID()); err != nil {
		return err
	}

	if err = requestRepo.Delete(ctx, req); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

package commands

import (
	"context"

	"github.com/ArmandoCH85/sistemtransporte/internal/core/domain/model/request"
	"github.com/ArmandoCH85/sistemtransporte/internal/core/ports"
)

// UpdateRequestDetailsCommandHandler edits a request. Editing is a same-status
// change, so it fails with errs.ErrInvalidTransition unless the request is pending.
type UpdateRequestDetailsCommandHandler struct {
	uowFactory RequestUoWFactory
	clock      ports.Clock
}

func NewUpdateRequestDetailsCommandHandler(uowFactory RequestUoWFactory, clock ports.Clock) UpdateRequestDetailsCommandHandler {
	return UpdateRequestDetailsCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
	}
}

func (h UpdateRequestDetailsCommandHandler) Handle(
	ctx context.Context,
	command UpdateRequestDetailsCommand,
) (*request.Request, error) {
	if err := command.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	requestRepo := uow.RequestRepository()

	req, err := requestRepo.GetForUpdate(ctx, command.RequestID())
	if err != nil {
		return nil, err
	}

	if err = req.Edit(command.Details(), h.clock.Now()); err != nil {
		return nil, err
	}

	if err = requestRepo.Update(ctx, req); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return req, nil
}

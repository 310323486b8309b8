package commands

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/ArmandoCH85/sistemtransporte/internal/core/domain/model/history"
	"github.com/ArmandoCH85/sistemtransporte/internal/core/domain/model/notification"
	"github.com/ArmandoCH85/sistemtransporte/internal/core/domain/model/request"
	"github.com/ArmandoCH85/sistemtransporte/internal/core/domain/services"
	"github.com/ArmandoCH85/sistemtransporte/internal/core/ports"
)

// CompleteRequestCommandHandler closes an accepted request for its current
// transporter and marks that transporter's assignment completed.
type CompleteRequestCommandHandler struct {
	uowFactory RequestUoWFactory
	clock      ports.Clock
	manager    services.AssignmentManager
	events     eventPublisher
}

func NewCompleteRequestCommandHandler(
	uowFactory RequestUoWFactory,
	clock ports.Clock,
	notifier ports.Notifier,
	logger *slog.Logger,
) CompleteRequestCommandHandler {
	return CompleteRequestCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
		manager:    services.NewAssignmentManager(),
		events:     newEventPublisher(notifier, logger),
	}
}

func (h CompleteRequestCommandHandler) Handle(
	ctx context.Context,
	command CompleteRequestCommand,
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
	assignmentRepo := uow.AssignmentRepository()

	req, err := requestRepo.GetForUpdate(ctx, command.RequestID())
	if err != nil {
		return nil, err
	}

	assignments, err := assignmentRepo.ListByRequest(ctx, req.ID())
	if err != nil {
		return nil, err
	}

	now := h.clock.Now()
	completed, err := h.manager.Complete(req, assignments, command.TransporterID(), now)
	if err != nil {
		return nil, err
	}

	entry, err := history.NewStatusEntry(req.ID(), command.TransporterID(), req.Status(), "delivered", now)
	if err != nil {
		return nil, err
	}

	if err = requestRepo.Update(ctx, req); err != nil {
		return nil, err
	}

	if err = assignmentRepo.Update(ctx, completed); err != nil {
		return nil, err
	}

	if err = uow.StatusHistoryRepository().Add(ctx, entry); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	h.events.publish(ctx, notification.Event{
		Type:        notification.Completion,
		RequestID:   req.ID(),
		RecipientID: req.RequesterID(),
		Message:     fmt.Sprintf("Transport request %s was completed", req.ID()),
		OccurredAt:  now,
	})

	return req, nil
}

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

// FailRequestCommandHandler closes an accepted request as failed. The reason
// lands on the current assignment, the evidence on the request and its images.
type FailRequestCommandHandler struct {
	uowFactory RequestUoWFactory
	clock      ports.Clock
	manager    services.AssignmentManager
	events     eventPublisher
}

func NewFailRequestCommandHandler(
	uowFactory RequestUoWFactory,
	clock ports.Clock,
	notifier ports.Notifier,
	logger *slog.Logger,
) FailRequestCommandHandler {
	return FailRequestCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
		manager:    services.NewAssignmentManager(),
		events:     newEventPublisher(notifier, logger),
	}
}

func (h FailRequestCommandHandler) Handle(ctx context.Context, command FailRequestCommand) (*request.Request, error) {
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
	failed, err := h.manager.Fail(req, assignments, command.TransporterID(), command.Reason(), command.EvidenceRef(), now)
	if err != nil {
		return nil, err
	}

	entry, err := history.NewStatusEntry(req.ID(), command.TransporterID(), req.Status(), failed.Comments(), now)
	if err != nil {
		return nil, err
	}

	if err = requestRepo.Update(ctx, req); err != nil {
		return nil, err
	}

	if err = assignmentRepo.Update(ctx, failed); err != nil {
		return nil, err
	}

	if err = uow.StatusHistoryRepository().Add(ctx, entry); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	h.events.publish(ctx, notification.Event{
		Type:        notification.StatusChange,
		RequestID:   req.ID(),
		RecipientID: req.RequesterID(),
		Message:     fmt.Sprintf("Transport request %s failed: %s", req.ID(), failed.Comments()),
		OccurredAt:  now,
	})

	return req, nil
}

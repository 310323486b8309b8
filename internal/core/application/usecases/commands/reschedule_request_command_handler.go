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

// RescheduleRequestCommandHandler records a new date for a request and appends
// a rescheduled row to its assignment history.
type RescheduleRequestCommandHandler struct {
	uowFactory RequestUoWFactory
	clock      ports.Clock
	manager    services.AssignmentManager
	events     eventPublisher
}

func NewRescheduleRequestCommandHandler(
	uowFactory RequestUoWFactory,
	clock ports.Clock,
	notifier ports.Notifier,
	logger *slog.Logger,
) RescheduleRequestCommandHandler {
	return RescheduleRequestCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
		manager:    services.NewAssignmentManager(),
		events:     newEventPublisher(notifier, logger),
	}
}

func (h RescheduleRequestCommandHandler) Handle(
	ctx context.Context,
	command RescheduleRequestCommand,
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
	rescheduled, err := h.manager.Reschedule(
		req, assignments, command.TransporterID(), command.NewDate(), command.Comments(), now,
	)
	if err != nil {
		return nil, err
	}

	entry, err := history.NewStatusEntry(req.ID(), command.TransporterID(), req.Status(), req.RescheduleComments(), now)
	if err != nil {
		return nil, err
	}

	if err = requestRepo.Update(ctx, req); err != nil {
		return nil, err
	}

	if err = assignmentRepo.Add(ctx, rescheduled); err != nil {
		return nil, err
	}

	if err = uow.StatusHistoryRepository().Add(ctx, entry); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	message := fmt.Sprintf("Transport request %s was rescheduled to %s",
		req.ID(), command.NewDate().Format("2006-01-02 15:04"))
	h.events.publish(ctx, notification.Event{
		Type:        notification.StatusChange,
		RequestID:   req.ID(),
		RecipientID: req.RequesterID(),
		Message:     message,
		OccurredAt:  now,
	})

	return req, nil
}

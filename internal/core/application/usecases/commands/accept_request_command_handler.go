package commands

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/ArmandoCH85/sistemtransporte/internal/core/domain/model/assignment"
	"github.com/ArmandoCH85/sistemtransporte/internal/core/domain/model/history"
	"github.com/ArmandoCH85/sistemtransporte/internal/core/domain/model/notification"
	"github.com/ArmandoCH85/sistemtransporte/internal/core/domain/services"
	"github.com/ArmandoCH85/sistemtransporte/internal/core/ports"
)

// AcceptRequestCommandHandler applies an accept inside one transaction: the
// request row is locked and re-read, the transition validated against the
// fresh status, and the update written with a compare-and-set. When two
// transporters accept at once, the loser gets errs.ErrInvalidTransition.
//
// Example:
//
//	cmd, _ := NewAcceptRequestCommand(requestID, transporterID)
//	accepted, err := handler.Handle(ctx, cmd)
//	if errors.Is(err, errs.ErrInvalidTransition) {
//	    // already taken
//	}
type AcceptRequestCommandHandler struct {
	uowFactory RequestUoWFactory
	clock      ports.Clock
	manager    services.AssignmentManager
	events     eventPublisher
}

func NewAcceptRequestCommandHandler(
	uowFactory RequestUoWFactory,
	clock ports.Clock,
	notifier ports.Notifier,
	logger *slog.Logger,
) AcceptRequestCommandHandler {
	return AcceptRequestCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
		manager:    services.NewAssignmentManager(),
		events:     newEventPublisher(notifier, logger),
	}
}

// Handle returns the new accepted assignment.
func (h AcceptRequestCommandHandler) Handle(ctx context.Context, command AcceptRequestCommand) (*assignment.Assignment, error) {
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

	now := h.clock.Now()
	accepted, err := h.manager.Accept(req, command.TransporterID(), now)
	if err != nil {
		return nil, err
	}

	entry, err := history.NewStatusEntry(req.ID(), command.TransporterID(), req.Status(), "accepted by transporter", now)
	if err != nil {
		return nil, err
	}

	if err = requestRepo.Update(ctx, req); err != nil {
		return nil, err
	}

	if err = uow.AssignmentRepository().Add(ctx, accepted); err != nil {
		return nil, err
	}

	if err = uow.StatusHistoryRepository().Add(ctx, entry); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	h.events.publish(ctx, notification.Event{
		Type:        notification.Assignment,
		RequestID:   req.ID(),
		RecipientID: req.RequesterID(),
		Message:     fmt.Sprintf("Transport request %s was accepted by transporter %s", req.ID(), command.TransporterID()),
		OccurredAt:  now,
	})

	return accepted, nil
}

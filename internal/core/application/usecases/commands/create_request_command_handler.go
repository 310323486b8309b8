package commands

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/ArmandoCH85/sistemtransporte/internal/core/domain/model/history"
	"github.com/ArmandoCH85/sistemtransporte/internal/core/domain/model/notification"
	"github.com/ArmandoCH85/sistemtransporte/internal/core/domain/model/request"
	"github.com/ArmandoCH85/sistemtransporte/internal/core/ports"
)

// CreateRequestCommandHandler stores a new pending request and opens its
// status trail.
type CreateRequestCommandHandler struct {
	uowFactory RequestUoWFactory
	clock      ports.Clock
	events     eventPublisher
}

func NewCreateRequestCommandHandler(
	uowFactory RequestUoWFactory,
	clock ports.Clock,
	notifier ports.Notifier,
	logger *slog.Logger,
) CreateRequestCommandHandler {
	return CreateRequestCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
		events:     newEventPublisher(notifier, logger),
	}
}

// Handle creates the request and notifies the requester once committed.
func (h CreateRequestCommandHandler) Handle(ctx context.Context, command CreateRequestCommand) (*request.Request, error) {
	if err := command.Validate(); err != nil {
		return nil, err
	}

	now := h.clock.Now()
	req, err := request.NewRequest(command.RequestID(), command.RequesterID(), command.Details(), now)
	if err != nil {
		return nil, err
	}

	entry, err := history.NewStatusEntry(req.ID(), req.RequesterID(), req.Status(), "request created", now)
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.RequestRepository().Add(ctx, req); err != nil {
		return nil, err
	}

	if err = uow.StatusHistoryRepository().Add(ctx, entry); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	h.events.publish(ctx, notification.Event{
		Type:        notification.NewRequest,
		RequestID:   req.ID(),
		RecipientID: req.RequesterID(),
		Message:     fmt.Sprintf("Transport request %s was created", req.ID()),
		OccurredAt:  now,
	})

	return req, nil
}

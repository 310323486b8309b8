package commands

import (
	"context"
	"errors"
	"fmt"

	"github.com/ArmandoCH85/sistemtransporte/internal/core/ports"
)

// DispatchNotificationsCommandHandler drains the notification outbox through
// a Sender. A notification is marked sent only after the sender accepted it,
// so a failed send is retried on the next run.
type DispatchNotificationsCommandHandler struct {
	uowFactory NotificationUoWFactory
	sender     ports.Sender
	clock      ports.Clock
}

func NewDispatchNotificationsCommandHandler(
	uowFactory NotificationUoWFactory,
	sender ports.Sender,
	clock ports.Clock,
) DispatchNotificationsCommandHandler {
	return DispatchNotificationsCommandHandler{
		uowFactory: uowFactory,
		sender:     sender,
		clock:      clock,
	}
}

// Handle returns how many notifications were sent. Send failures are joined
// into the returned error after the successful ones have been committed.
func (h DispatchNotificationsCommandHandler) Handle(ctx context.Context, command DispatchNotificationsCommand) (int, error) {
	if err := command.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.NotificationRepository()

	pending, err := repo.ListPending(ctx, command.BatchSize())
	if err != nil {
		return 0, err
	}

	var (
		sent     int
		failures []error
	)
	for _, n := range pending {
		if sendErr := h.sender.Send(ctx, n); sendErr != nil {
			failures = append(failures, fmt.Errorf("notification %s: %w", n.ID(), sendErr))
			continue
		}

		n.MarkSent(h.clock.Now())
		if err = repo.MarkSent(ctx, n); err != nil {
			return 0, err
		}
		sent++
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return sent, errors.Join(failures...)
}

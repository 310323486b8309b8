// Package notify connects lifecycle events to the notification outbox and
// delivers outbox rows.
package notify

import (
	"context"

	"github.com/ArmandoCH85/sistemtransporte/internal/core/domain/model/notification"
	"github.com/ArmandoCH85/sistemtransporte/internal/core/ports"
)

// OutboxNotifier implements ports.Notifier by queueing each event as a
// pending notification in its own transaction. Delivery happens later, in
// the dispatch job.
type OutboxNotifier struct {
	uowFactory ports.UnitOfWorkFactory
}

func NewOutboxNotifier(uowFactory ports.UnitOfWorkFactory) *OutboxNotifier {
	return &OutboxNotifier{uowFactory: uowFactory}
}

func (n *OutboxNotifier) Notify(ctx context.Context, event notification.Event) error {
	queued, err := notification.NewNotification(event)
	if err != nil {
		return err
	}

	uow := n.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.NotificationRepository().Add(ctx, queued); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

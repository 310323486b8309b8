package ports

import (
	"context"

	"github.com/ArmandoCH85/sistemtransporte/internal/core/domain/model/kernel"
	"github.com/ArmandoCH85/sistemtransporte/internal/core/domain/model/notification"
)

// NotificationRepository is the notification outbox.
type NotificationRepository interface {
	Add(ctx context.Context, n *notification.Notification) error

	// ListPending returns up to limit unsent notifications, oldest first.
	ListPending(ctx context.Context, limit int) ([]*notification.Notification, error)

	// MarkSent stores the sent flag and timestamp of n.
	MarkSent(ctx context.Context, n *notification.Notification) error

	DeleteByRequest(ctx context.Context, requestID kernel.UUID) error
}

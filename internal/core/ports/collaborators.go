package ports

import (
	"context"
	"time"

	"github.com/ArmandoCH85/sistemtransporte/internal/core/domain/model/notification"
)

// Clock supplies the current time.
type Clock interface {
	Now() time.Time
}

// ClockFunc adapts a function to Clock.
type ClockFunc func() time.Time

func (f ClockFunc) Now() time.Time { return f() }

// Notifier accepts lifecycle events. Callers invoke it after their
// transaction has committed and only log its errors.
type Notifier interface {
	Notify(ctx context.Context, event notification.Event) error
}

// Sender delivers one queued notification to its recipient.
type Sender interface {
	Send(ctx context.Context, n *notification.Notification) error
}

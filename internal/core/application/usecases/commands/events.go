package commands

import (
	"context"
	"log/slog"

	"github.com/ArmandoCH85/sistemtransporte/internal/core/domain/model/notification"
	"github.com/ArmandoCH85/sistemtransporte/internal/core/ports"
)

// eventPublisher hands events to the notifier once a transaction has
// committed. Failures are logged and never reach the caller.
type eventPublisher struct {
	notifier ports.Notifier
	logger   *slog.Logger
}

func newEventPublisher(notifier ports.Notifier, logger *slog.Logger) eventPublisher {
	if logger == nil {
		logger = slog.Default()
	}
	return eventPublisher{notifier: notifier, logger: logger}
}

func (p eventPublisher) publish(ctx context.Context, event notification.Event) {
	if p.notifier == nil {
		return
	}
	if err := p.notifier.Notify(ctx, event); err != nil {
		p.logger.ErrorContext(ctx, "Failed to queue notification",
			"type", string(event.Type),
			"request_id", event.RequestID.String(),
			"error", err,
		)
	}
}

package notify

import (
	"context"
	"log/slog"

	"github.com/ArmandoCH85/sistemtransporte/internal/core/domain/model/notification"
)

// LogSender implements ports.Sender by writing each notification to the log.
// It stands in for mail delivery, which lives outside this service.
type LogSender struct {
	logger *slog.Logger
}

func NewLogSender(logger *slog.Logger) *LogSender {
	if logger == nil {
		logger = slog.Default()
	}
	return &LogSender{logger: logger.With("component", "log_sender")}
}

func (s *LogSender) Send(ctx context.Context, n *notification.Notification) error {
	s.logger.InfoContext(ctx, "Notification delivered",
		"notification_id", n.ID().String(),
		"recipient_id", n.RecipientID().String(),
		"request_id", n.RequestID().String(),
		"type", string(n.Type()),
		"channels", n.Channels(),
		"message", n.Message(),
	)
	return nil
}

package jobs

import (
	"context"
	"log/slog"

	"github.com/ArmandoCH85/sistemtransporte/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// DefaultDispatchSchedule runs the dispatch every five seconds.
const DefaultDispatchSchedule = "*/5 * * * * *"

type dispatchHandler interface {
	Handle(ctx context.Context, command commands.DispatchNotificationsCommand) (int, error)
}

// NotificationDispatchJob drains the notification outbox on a cron schedule.
// A run that is still going when the next tick fires makes that tick skip, so
// one notification is never handed to the sender by two runs at once.
type NotificationDispatchJob struct {
	handler   dispatchHandler
	schedule  string
	batchSize int
	cron      *cron.Cron
	logger    *slog.Logger
}

func NewNotificationDispatchJob(
	handler dispatchHandler,
	schedule string,
	batchSize int,
	logger *slog.Logger,
) *NotificationDispatchJob {
	logger = logger.With("component", "notification_dispatch_job")
	cl := cronLogger{logger: logger}
	return &NotificationDispatchJob{
		handler:   handler,
		schedule:  schedule,
		batchSize: batchSize,
		cron: cron.New(
			cron.WithSeconds(),
			cron.WithLogger(cl),
			cron.WithChain(cron.Recover(cl), cron.SkipIfStillRunning(cl)),
		),
		logger: logger,
	}
}

// Start registers the job and starts the scheduler.
func (j *NotificationDispatchJob) Start() error {
	if _, err := commands.NewDispatchNotificationsCommand(j.batchSize); err != nil {
		return err
	}

	if _, err := j.cron.AddFunc(j.schedule, func() { j.RunOnce(context.Background()) }); err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Notification dispatch job started", "schedule", j.schedule)
	return nil
}

// RunOnce performs a single dispatch run and logs its outcome.
func (j *NotificationDispatchJob) RunOnce(ctx context.Context) {
	cmd, err := commands.NewDispatchNotificationsCommand(j.batchSize)
	if err != nil {
		j.logger.ErrorContext(ctx, "Notification dispatch job misconfigured", "error", err)
		return
	}

	sent, err := j.handler.Handle(ctx, cmd)
	if err != nil {
		j.logger.ErrorContext(ctx, "Notification dispatch failed", "sent", sent, "error", err)
		return
	}

	if sent > 0 {
		j.logger.InfoContext(ctx, "Notifications dispatched", "sent", sent)
	}
}

// Stop stops the scheduler and waits for a running dispatch to finish.
func (j *NotificationDispatchJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Notification dispatch job stopped")
}

// cronLogger routes the scheduler's own messages to slog.
type cronLogger struct {
	logger *slog.Logger
}

func (l cronLogger) Info(msg string, keysAndValues ...any) {
	l.logger.Debug(msg, keysAndValues...)
}

func (l cronLogger) Error(err error, msg string, keysAndValues ...any) {
	l.logger.Error(msg, append(keysAndValues, "error", err)...)
}

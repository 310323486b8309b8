package ports

import (
	"context"
)

// UnitOfWorkFactory creates new UnitOfWork instances for each request/command.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork is a business transaction boundary. Repositories obtained from
// it after Begin run inside the transaction.
type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit(ctx context.Context) error

	// Rollback after Commit returns an error callers ignore, so it can
	// always be deferred.
	Rollback(ctx context.Context) error

	RequestRepository() RequestRepository
	AssignmentRepository() AssignmentRepository
	StatusHistoryRepository() StatusHistoryRepository
	NotificationRepository() NotificationRepository
	WorkLogRepository() WorkLogRepository
}

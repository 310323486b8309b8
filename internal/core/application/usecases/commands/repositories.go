// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"github.com/ArmandoCH85/sistemtransporte/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// Each handler depends on the narrowest set of repositories it touches.
type (
	// TxManager handles database transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	RequestRepoFactory interface {
		RequestRepository() ports.RequestRepository
	}

	AssignmentRepoFactory interface {
		AssignmentRepository() ports.AssignmentRepository
	}

	StatusHistoryRepoFactory interface {
		StatusHistoryRepository() ports.StatusHistoryRepository
	}

	NotificationRepoFactory interface {
		NotificationRepository() ports.NotificationRepository
	}

	WorkLogRepoFactory interface {
		WorkLogRepository() ports.WorkLogRepository
	}

	// RequestUoW covers the request lifecycle: the request row, its
	// assignment history and its status trail.
	RequestUoW interface {
		TxManager
		RequestRepoFactory
		AssignmentRepoFactory
		StatusHistoryRepoFactory
	}

	RequestUoWFactory interface {
		Create() RequestUoW
	}

	// UoW spans every table that hangs off a request. Used by deletion,
	// which has to remove all of them together.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   req, err := uow.RequestRepository().GetForUpdate(ctx, id)
	//   err = uow.AssignmentRepository().DeleteByRequest(ctx, id)
	//   // ... history and notifications
	//
	//   err = uow.Commit(ctx)
	UoW interface {
		RequestUoW
		NotificationRepoFactory
	}

	UoWFactory interface {
		Create() UoW
	}

	// WorkLogUoW manages transactions for workday closure.
	WorkLogUoW interface {
		TxManager
		WorkLogRepoFactory
	}

	WorkLogUoWFactory interface {
		Create() WorkLogUoW
	}

	// NotificationUoW manages transactions over the notification outbox.
	NotificationUoW interface {
		TxManager
		NotificationRepoFactory
	}

	NotificationUoWFactory interface {
		Create() NotificationUoW
	}
)

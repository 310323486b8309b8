package ports

import (
	"context"

	"github.com/ArmandoCH85/sistemtransporte/internal/core/domain/model/assignment"
	"github.com/ArmandoCH85/sistemtransporte/internal/core/domain/model/kernel"
)

// AssignmentRepository persists the assignment history of requests.
type AssignmentRepository interface {
	Add(ctx context.Context, a *assignment.Assignment) error
	Update(ctx context.Context, a *assignment.Assignment) error

	// ListByRequest returns the history ordered by assignment date, oldest first.
	ListByRequest(ctx context.Context, requestID kernel.UUID) ([]*assignment.Assignment, error)

	// DeleteByRequest soft-deletes every assignment of the request.
	DeleteByRequest(ctx context.Context, requestID kernel.UUID) error
}

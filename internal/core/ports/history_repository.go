package ports

import (
	"context"

	"github.com/ArmandoCH85/sistemtransporte/internal/core/domain/model/history"
	"github.com/ArmandoCH85/sistemtransporte/internal/core/domain/model/kernel"
)

// StatusHistoryRepository appends to and reads the status trail of requests.
type StatusHistoryRepository interface {
	Add(ctx context.Context, entry *history.StatusEntry) error
	ListByRequest(ctx context.Context, requestID kernel.UUID) ([]*history.StatusEntry, error)
	DeleteByRequest(ctx context.Context, requestID kernel.UUID) error
}

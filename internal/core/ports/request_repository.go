// Package ports defines the contracts between the transport domain and the
// infrastructure around it: persistence, time and notification delivery.
package ports

import (
	"context"

	"github.com/ArmandoCH85/sistemtransporte/internal/core/domain/model/kernel"
	"github.com/ArmandoCH85/sistemtransporte/internal/core/domain/model/request"
)

// RequestRepository persists Request aggregates.
type RequestRepository interface {
	// Add stores a new request together with any images attached to it.
	Add(ctx context.Context, aggregate *request.Request) error

	// Update stores the request with a compare-and-set on the status it had
	// when it was loaded. If the stored status has moved on in the meantime,
	// Update fails with errs.ErrInvalidTransition and writes nothing.
	Update(ctx context.Context, aggregate *request.Request) error

	// Get returns a request that is not soft-deleted.
	Get(ctx context.Context, id kernel.UUID) (*request.Request, error)

	// GetForUpdate is Get under a row lock held until the transaction ends.
	GetForUpdate(ctx context.Context, id kernel.UUID) (*request.Request, error)

	// Delete soft-deletes the request and removes its images.
	Delete(ctx context.Context, aggregate *request.Request) error
}

package commands

import (
	"errors"

	"github.com/ArmandoCH85/sistemtransporte/internal/pkg/errs"
	"github.com/ArmandoCH85/sistemtransporte/internal/pkg/guard"
)

var ErrDispatchNotificationsCommandIsNotConstructed = errors.New(
	"DispatchNotificationsCommand must be created via NewDispatchNotificationsCommand constructor",
)

// DispatchNotificationsCommand delivers up to batchSize pending notifications.
type DispatchNotificationsCommand struct {
	batchSize int

	guard guard.ConstructorGuard
}

func NewDispatchNotificationsCommand(batchSize int) (DispatchNotificationsCommand, error) {
	if batchSize < 1 || batchSize > 1000 {
		return DispatchNotificationsCommand{}, errs.NewValueIsOutOfRangeError("batch size", batchSize, 1, 1000)
	}

	return DispatchNotificationsCommand{
		batchSize: batchSize,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (c DispatchNotificationsCommand) BatchSize() int { return c.batchSize }

func (c DispatchNotificationsCommand) Validate() error {
	return c.guard.Validate(ErrDispatchNotificationsCommandIsNotConstructed)
}

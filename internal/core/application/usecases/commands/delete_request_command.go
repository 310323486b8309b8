package commands

import (
	"errors"

	"github.com/ArmandoCH85/sistemtransporte/internal/core/domain/model/kernel"
	"github.com/ArmandoCH85/sistemtransporte/internal/pkg/guard"
)

var ErrDeleteRequestCommandIsNotConstructed = errors.New(
	"DeleteRequestCommand must be created via NewDeleteRequestCommand constructor",
)

// DeleteRequestCommand removes a pending request. The caller states whether
// the actor is privileged; ownership is checked against the requester.
type DeleteRequestCommand struct {
	requestID  kernel.UUID
	actorID    kernel.UUID
	privileged bool

	guard guard.ConstructorGuard
}

func NewDeleteRequestCommand(requestID, actorID kernel.UUID, privileged bool) (DeleteRequestCommand, error) {
	if err := errors.Join(requestID.Validate(), actorID.Validate()); err != nil {
		return DeleteRequestCommand{}, err
	}

	return DeleteRequestCommand{
		requestID:  requestID,
		actorID:    actorID,
		privileged: privileged,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (c DeleteRequestCommand) RequestID() kernel.UUID { return c.requestID }
func (c DeleteRequestCommand) ActorID() kernel.UUID   { return c.actorID }
func (c DeleteRequestCommand) Privileged() bool       { return c.privileged }

func (c DeleteRequestCommand) Validate() error {
	return c.guard.Validate(ErrDeleteRequestCommandIsNotConstructed)
}

package commands

import (
	"errors"

	"github.com/ArmandoCH85/sistemtransporte/internal/core/domain/model/kernel"
	"github.com/ArmandoCH85/sistemtransporte/internal/pkg/guard"
)

var ErrCompleteRequestCommandIsNotConstructed = errors.New(
	"CompleteRequestCommand must be created via NewCompleteRequestCommand constructor",
)

// CompleteRequestCommand is the current transporter reporting delivery.
type CompleteRequestCommand struct {
	requestID     kernel.UUID
	transporterID kernel.UUID

	guard guard.ConstructorGuard
}

func NewCompleteRequestCommand(requestID, transporterID kernel.UUID) (CompleteRequestCommand, error) {
	if err := errors.Join(requestID.Validate(), transporterID.Validate()); err != nil {
		return CompleteRequestCommand{}, err
	}

	return CompleteRequestCommand{
		requestID:     requestID,
		transporterID: transporterID,
		guard:         guard.NewConstructorGuard(),
	}, nil
}

func (c CompleteRequestCommand) RequestID() kernel.UUID     { return c.requestID }
func (c CompleteRequestCommand) TransporterID() kernel.UUID { return c.transporterID }

func (c CompleteRequestCommand) Validate() error {
	return c.guard.Validate(ErrCompleteRequestCommandIsNotConstructed)
}

package commands

import (
	"errors"

	"github.com/ArmandoCH85/sistemtransporte/internal/core/domain/model/kernel"
	"github.com/ArmandoCH85/sistemtransporte/internal/pkg/guard"
)

var ErrAcceptRequestCommandIsNotConstructed = errors.New(
	"AcceptRequestCommand must be created via NewAcceptRequestCommand constructor",
)

// AcceptRequestCommand is a transporter taking a pending or rescheduled request.
type AcceptRequestCommand struct {
	requestID     kernel.UUID
	transporterID kernel.UUID

	guard guard.ConstructorGuard
}

func NewAcceptRequestCommand(requestID, transporterID kernel.UUID) (AcceptRequestCommand, error) {
	if err := errors.Join(requestID.Validate(), transporterID.Validate()); err != nil {
		return AcceptRequestCommand{}, err
	}

	return AcceptRequestCommand{
		requestID:     requestID,
		transporterID: transporterID,
		guard:         guard.NewConstructorGuard(),
	}, nil
}

func (c AcceptRequestCommand) RequestID() kernel.UUID     { return c.requestID }
func (c AcceptRequestCommand) TransporterID() kernel.UUID { return c.transporterID }

func (c AcceptRequestCommand) Validate() error {
	return c.guard.Validate(ErrAcceptRequestCommandIsNotConstructed)
}

package commands

import (
	"errors"

	"github.com/ArmandoCH85/sistemtransporte/internal/core/domain/model/kernel"
	"github.com/ArmandoCH85/sistemtransporte/internal/core/domain/model/request"
	"github.com/ArmandoCH85/sistemtransporte/internal/pkg/guard"
)

var ErrCreateRequestCommandIsNotConstructed = errors.New(
	"CreateRequestCommand must be created via NewCreateRequestCommand constructor",
)

// CreateRequestCommand asks for a new transport. The request starts pending.
//
// Example:
//
//	pickup, _ := kernel.NewEndpoint("Av. Arequipa 100", "Rosa", "987654321")
//	delivery, _ := kernel.NewEndpoint("Jr. Cusco 200", "Mario", "912345678")
//	cmd, err := NewCreateRequestCommand(requesterID, request.Details{
//	    Description: "lab samples",
//	    Pickup:      pickup,
//	    Delivery:    delivery,
//	})
type CreateRequestCommand struct {
	requestID   kernel.UUID
	requesterID kernel.UUID
	details     request.Details

	guard guard.ConstructorGuard
}

// NewCreateRequestCommand assigns the new request its identifier. Details are
// validated by the aggregate when the command is handled.
func NewCreateRequestCommand(requesterID kernel.UUID, details request.Details) (CreateRequestCommand, error) {
	if err := requesterID.Validate(); err != nil {
		return CreateRequestCommand{}, err
	}

	return CreateRequestCommand{
		requestID:   kernel.NewUUID(),
		requesterID: requesterID,
		details:     details,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

func (c CreateRequestCommand) RequestID() kernel.UUID   { return c.requestID }
func (c CreateRequestCommand) RequesterID() kernel.UUID { return c.requesterID }
func (c CreateRequestCommand) Details() request.Details { return c.details }

func (c CreateRequestCommand) Validate() error {
	return c.guard.Validate(ErrCreateRequestCommandIsNotConstructed)
}

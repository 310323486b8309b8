package commands

import (
	"errors"

	"github.com/ArmandoCH85/sistemtransporte/internal/core/domain/model/kernel"
	"github.com/ArmandoCH85/sistemtransporte/internal/core/domain/model/request"
	"github.com/ArmandoCH85/sistemtransporte/internal/pkg/guard"
)

var ErrUpdateRequestDetailsCommandIsNotConstructed = errors.New(
	"UpdateRequestDetailsCommand must be created via NewUpdateRequestDetailsCommand constructor",
)

// UpdateRequestDetailsCommand replaces the descriptive fields of a pending request.
type UpdateRequestDetailsCommand struct {
	requestID kernel.UUID
	details   request.Details

	guard guard.ConstructorGuard
}

func NewUpdateRequestDetailsCommand(requestID kernel.UUID, details request.Details) (UpdateRequestDetailsCommand, error) {
	if err := requestID.Validate(); err != nil {
		return UpdateRequestDetailsCommand{}, err
	}

	return UpdateRequestDetailsCommand{
		requestID: requestID,
		details:   details,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (c UpdateRequestDetailsCommand) RequestID() kernel.UUID   { return c.requestID }
func (c UpdateRequestDetailsCommand) Details() request.Details { return c.details }

func (c UpdateRequestDetailsCommand) Validate() error {
	return c.guard.Validate(ErrUpdateRequestDetailsCommandIsNotConstructed)
}

package commands

import (
	"errors"
	"time"

	"github.com/ArmandoCH85/sistemtransporte/internal/core/domain/model/kernel"
	"github.com/ArmandoCH85/sistemtransporte/internal/pkg/errs"
	"github.com/ArmandoCH85/sistemtransporte/internal/pkg/guard"
)

var ErrRescheduleRequestCommandIsNotConstructed = errors.New(
	"RescheduleRequestCommand must be created via NewRescheduleRequestCommand constructor",
)

// RescheduleRequestCommand moves a request to a new date on behalf of a transporter.
type RescheduleRequestCommand struct {
	requestID     kernel.UUID
	transporterID kernel.UUID
	newDate       time.Time
	comments      string

	guard guard.ConstructorGuard
}

func NewRescheduleRequestCommand(
	requestID, transporterID kernel.UUID,
	newDate time.Time,
	comments string,
) (RescheduleRequestCommand, error) {
	var dateErr error
	if newDate.IsZero() {
		dateErr = errs.NewValueIsRequiredError("new date")
	}
	if err := errors.Join(requestID.Validate(), transporterID.Validate(), dateErr); err != nil {
		return RescheduleRequestCommand{}, err
	}

	return RescheduleRequestCommand{
		requestID:     requestID,
		transporterID: transporterID,
		newDate:       newDate,
		comments:      comments,
		guard:         guard.NewConstructorGuard(),
	}, nil
}

func (c RescheduleRequestCommand) RequestID() kernel.UUID     { return c.requestID }
func (c RescheduleRequestCommand) TransporterID() kernel.UUID { return c.transporterID }
func (c RescheduleRequestCommand) NewDate() time.Time         { return c.newDate }
func (c RescheduleRequestCommand) Comments() string           { return c.comments }

func (c RescheduleRequestCommand) Validate() error {
	return c.guard.Validate(ErrRescheduleRequestCommandIsNotConstructed)
}

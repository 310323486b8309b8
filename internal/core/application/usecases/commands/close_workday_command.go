package commands

import (
	"errors"
	"time"

	"github.com/ArmandoCH85/sistemtransporte/internal/core/domain/model/kernel"
	"github.com/ArmandoCH85/sistemtransporte/internal/pkg/errs"
	"github.com/ArmandoCH85/sistemtransporte/internal/pkg/guard"
)

var ErrCloseWorkdayCommandIsNotConstructed = errors.New(
	"CloseWorkdayCommand must be created via NewCloseWorkdayCommand constructor",
)

// CloseWorkdayCommand closes the transporter's workday for the calendar day
// containing now.
type CloseWorkdayCommand struct {
	transporterID kernel.UUID
	now           time.Time

	guard guard.ConstructorGuard
}

func NewCloseWorkdayCommand(transporterID kernel.UUID, now time.Time) (CloseWorkdayCommand, error) {
	var nowErr error
	if now.IsZero() {
		nowErr = errs.NewValueIsRequiredError("now")
	}
	if err := errors.Join(transporterID.Validate(), nowErr); err != nil {
		return CloseWorkdayCommand{}, err
	}

	return CloseWorkdayCommand{
		transporterID: transporterID,
		now:           now,
		guard:         guard.NewConstructorGuard(),
	}, nil
}

func (c CloseWorkdayCommand) TransporterID() kernel.UUID { return c.transporterID }
func (c CloseWorkdayCommand) Now() time.Time             { return c.now }

func (c CloseWorkdayCommand) Validate() error {
	return c.guard.Validate(ErrCloseWorkdayCommandIsNotConstructed)
}

// Package worklog models the record a transporter leaves when closing a
// workday. There is at most one WorkLog per transporter per calendar date.
package worklog

import (
	"errors"
	"time"

	"github.com/ArmandoCH85/sistemtransporte/internal/core/domain/model/kernel"
	"github.com/ArmandoCH85/sistemtransporte/internal/pkg/errs"
	"github.com/ArmandoCH85/sistemtransporte/internal/pkg/guard"
)

// ErrWorkLogIsNotConstructed is returned for work logs not built by a constructor.
var ErrWorkLogIsNotConstructed = errors.New("WorkLog must be created via NewWorkLog constructor")

// WorkLog is one closed workday. The start is synthetic and may be later than
// the end when a day is closed before the configured start time.
type WorkLog struct {
	id            kernel.UUID
	transporterID kernel.UUID
	workDate      Date
	startedAt     time.Time
	endedAt       time.Time

	guard guard.ConstructorGuard
}

// NewWorkLog validates and creates a work log with a fresh identifier.
func NewWorkLog(transporterID kernel.UUID, workDate Date, startedAt, endedAt time.Time) (*WorkLog, error) {
	return RestoreWorkLog(kernel.NewUUID(), transporterID, workDate, startedAt, endedAt)
}

// RestoreWorkLog rebuilds a stored work log.
func RestoreWorkLog(id, transporterID kernel.UUID, workDate Date, startedAt, endedAt time.Time) (*WorkLog, error) {
	var problems []error
	problems = append(problems, id.Validate(), transporterID.Validate())
	if workDate.IsZero() {
		problems = append(problems, errs.NewValueIsRequiredError("work date"))
	}
	if endedAt.IsZero() {
		problems = append(problems, errs.NewValueIsRequiredError("ended at"))
	}
	if err := errors.Join(problems...); err != nil {
		return nil, err
	}

	return &WorkLog{
		id:            id,
		transporterID: transporterID,
		workDate:      workDate,
		startedAt:     startedAt,
		endedAt:       endedAt,
		guard:         guard.NewConstructorGuard(),
	}, nil
}

func (w *WorkLog) Validate() error {
	if w == nil {
		return ErrWorkLogIsNotConstructed
	}
	return w.guard.Validate(ErrWorkLogIsNotConstructed)
}

func (w *WorkLog) ID() kernel.UUID            { return w.id }
func (w *WorkLog) TransporterID() kernel.UUID { return w.transporterID }
func (w *WorkLog) WorkDate() Date             { return w.workDate }
func (w *WorkLog) StartedAt() time.Time       { return w.startedAt }
func (w *WorkLog) EndedAt() time.Time         { return w.endedAt }

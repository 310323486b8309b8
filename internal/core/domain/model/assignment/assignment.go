// Package assignment models the append-only history of transporter responses
// to a request. Each accept or reschedule adds a row; completion and failure
// update the row of the transporter currently holding the request.
package assignment

import (
	"errors"
	"strings"
	"time"

	"github.com/ArmandoCH85/sistemtransporte/internal/core/domain/model/kernel"
	"github.com/ArmandoCH85/sistemtransporte/internal/pkg/errs"
	"github.com/ArmandoCH85/sistemtransporte/internal/pkg/guard"
)

// ErrAssignmentIsNotConstructed is returned for assignments not built by a constructor.
var ErrAssignmentIsNotConstructed = errors.New("Assignment must be created via a constructor")

// Assignment links a request to a transporter at a point in time.
type Assignment struct {
	id            kernel.UUID
	requestID     kernel.UUID
	transporterID kernel.UUID

	status         Status
	assignmentDate time.Time
	responseDate   *time.Time
	comments       string
	createdAt      time.Time

	guard guard.ConstructorGuard
}

// NewAccepted records that transporterID took the request at now. Assignment
// and response dates are both now.
func NewAccepted(requestID, transporterID kernel.UUID, now time.Time) (*Assignment, error) {
	return newAssignment(requestID, transporterID, Accepted, "", now)
}

// NewRescheduled records that transporterID pushed the request to a later date.
func NewRescheduled(requestID, transporterID kernel.UUID, comments string, now time.Time) (*Assignment, error) {
	return newAssignment(requestID, transporterID, Rescheduled, comments, now)
}

func newAssignment(requestID, transporterID kernel.UUID, status Status, comments string, now time.Time) (*Assignment, error) {
	if err := errors.Join(requestID.Validate(), transporterID.Validate()); err != nil {
		return nil, err
	}
	responded := now
	return &Assignment{
		id:             kernel.NewUUID(),
		requestID:      requestID,
		transporterID:  transporterID,
		status:         status,
		assignmentDate: now,
		responseDate:   &responded,
		comments:       strings.TrimSpace(comments),
		createdAt:      now,
		guard:          guard.NewConstructorGuard(),
	}, nil
}

// Snapshot is the persisted form read back by RestoreAssignment.
type Snapshot struct {
	ID             kernel.UUID
	RequestID      kernel.UUID
	TransporterID  kernel.UUID
	Status         Status
	AssignmentDate time.Time
	ResponseDate   *time.Time
	Comments       string
	CreatedAt      time.Time
}

// RestoreAssignment rebuilds an assignment loaded from storage.
func RestoreAssignment(s Snapshot) (*Assignment, error) {
	if err := errors.Join(s.ID.Validate(), s.RequestID.Validate(), s.TransporterID.Validate(), s.Status.Validate()); err != nil {
		return nil, err
	}
	return &Assignment{
		id:             s.ID,
		requestID:      s.RequestID,
		transporterID:  s.TransporterID,
		status:         s.Status,
		assignmentDate: s.AssignmentDate,
		responseDate:   s.ResponseDate,
		comments:       s.Comments,
		createdAt:      s.CreatedAt,
		guard:          guard.NewConstructorGuard(),
	}, nil
}

func (a *Assignment) Validate() error {
	if a == nil {
		return ErrAssignmentIsNotConstructed
	}
	return a.guard.Validate(ErrAssignmentIsNotConstructed)
}

func (a *Assignment) ID() kernel.UUID            { return a.id }
func (a *Assignment) RequestID() kernel.UUID     { return a.requestID }
func (a *Assignment) TransporterID() kernel.UUID { return a.transporterID }
func (a *Assignment) Status() Status             { return a.status }
func (a *Assignment) AssignmentDate() time.Time  { return a.assignmentDate }
func (a *Assignment) ResponseDate() *time.Time   { return a.responseDate }
func (a *Assignment) Comments() string           { return a.comments }
func (a *Assignment) CreatedAt() time.Time       { return a.createdAt }

// Complete closes an accepted assignment successfully.
func (a *Assignment) Complete() error {
	if a.status != Accepted {
		return errs.NewInvalidTransitionError(a.status.String(), Completed.String())
	}
	a.status = Completed
	return nil
}

// Fail closes an accepted assignment and stores the reason in its comments.
func (a *Assignment) Fail(reason string) error {
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return errs.NewValueIsRequiredError("reason")
	}
	if a.status != Accepted {
		return errs.NewInvalidTransitionError(a.status.String(), Failed.String())
	}
	a.status = Failed
	a.comments = reason
	return nil
}

// Current returns the assignment of the transporter holding the request: the
// accepted row with the latest assignment date. Ties go to the row created
// last. It returns nil when nobody holds the request.
func Current(history []*Assignment) *Assignment {
	var current *Assignment
	for _, a := range history {
		if a == nil || a.status != Accepted {
			continue
		}
		if current == nil ||
			a.assignmentDate.After(current.assignmentDate) ||
			(a.assignmentDate.Equal(current.assignmentDate) && !a.createdAt.Before(current.createdAt)) {
			current = a
		}
	}
	return current
}

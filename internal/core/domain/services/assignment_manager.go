package services

import (
	"errors"
	"strings"
	"time"

	"github.com/ArmandoCH85/sistemtransporte/internal/core/domain/model/assignment"
	"github.com/ArmandoCH85/sistemtransporte/internal/core/domain/model/kernel"
	"github.com/ArmandoCH85/sistemtransporte/internal/core/domain/model/request"
	"github.com/ArmandoCH85/sistemtransporte/internal/pkg/errs"
)

// ErrNotCurrentAssignee is returned when a transporter acts on a request held
// by someone else, or held by nobody.
var ErrNotCurrentAssignee = errs.NewPermissionDeniedError("transporter is not the current assignee")

// AssignmentManager applies transporter actions to a request and its
// assignment history. It never touches storage: callers load the request and
// its history, call the manager, then persist what it changed.
//
// The transporter holding a request is always derived from the history with
// assignment.Current, never stored.
//
// Example usage:
//
//	manager := services.NewAssignmentManager()
//	accepted, err := manager.Accept(req, transporterID, now)
//	if errors.Is(err, errs.ErrInvalidTransition) {
//	    // someone else accepted first, or the request is closed
//	}
type AssignmentManager struct{}

func NewAssignmentManager() AssignmentManager {
	return AssignmentManager{}
}

// Accept hands the request to transporterID. The request must be pending or
// rescheduled. The returned assignment is new and must be added to storage.
func (m AssignmentManager) Accept(
	req *request.Request,
	transporterID kernel.UUID,
	now time.Time,
) (*assignment.Assignment, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	accepted, err := assignment.NewAccepted(req.ID(), transporterID, now)
	if err != nil {
		return nil, err
	}

	if err = req.Transition(request.Accepted, now); err != nil {
		return nil, err
	}

	return accepted, nil
}

// Reschedule moves the request to a new date and appends a rescheduled row
// for transporterID.
//
// Any transporter may reschedule a pending request. For an accepted request
// a transporter other than the holder gets ErrNotCurrentAssignee, and the
// holder gets an errs.ErrInvalidTransition because accepted never moves to
// rescheduled. A request that is already rescheduled also fails with
// errs.ErrInvalidTransition.
func (m AssignmentManager) Reschedule(
	req *request.Request,
	history []*assignment.Assignment,
	transporterID kernel.UUID,
	newDate time.Time,
	comments string,
	now time.Time,
) (*assignment.Assignment, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	if req.Status() == request.Accepted {
		if _, err := m.holder(history, transporterID); err != nil {
			return nil, err
		}
	}

	rescheduled, err := assignment.NewRescheduled(req.ID(), transporterID, comments, now)
	if err != nil {
		return nil, err
	}

	if err = req.Reschedule(newDate, comments, now); err != nil {
		return nil, err
	}

	return rescheduled, nil
}

// Complete closes an accepted request on behalf of its current holder and
// returns the holder's assignment, now completed.
func (m AssignmentManager) Complete(
	req *request.Request,
	history []*assignment.Assignment,
	transporterID kernel.UUID,
	now time.Time,
) (*assignment.Assignment, error) {
	if err := m.canMove(req, request.Completed); err != nil {
		return nil, err
	}

	current, err := m.holder(history, transporterID)
	if err != nil {
		return nil, err
	}

	if err = current.Complete(); err != nil {
		return nil, err
	}
	if err = req.Transition(request.Completed, now); err != nil {
		return nil, err
	}

	return current, nil
}

// Fail closes an accepted request as failed. Both a reason and an evidence
// reference are required; the reason goes to the holder's assignment and the
// evidence to the request.
func (m AssignmentManager) Fail(
	req *request.Request,
	history []*assignment.Assignment,
	transporterID kernel.UUID,
	reason string,
	evidenceRef string,
	now time.Time,
) (*assignment.Assignment, error) {
	var problems []error
	if strings.TrimSpace(reason) == "" {
		problems = append(problems, errs.NewValueIsRequiredError("reason"))
	}
	if strings.TrimSpace(evidenceRef) == "" {
		problems = append(problems, errs.NewValueIsRequiredError("evidence reference"))
	}
	if err := errors.Join(problems...); err != nil {
		return nil, err
	}

	if err := m.canMove(req, request.Failed); err != nil {
		return nil, err
	}

	current, err := m.holder(history, transporterID)
	if err != nil {
		return nil, err
	}

	if err = current.Fail(reason); err != nil {
		return nil, err
	}
	if err = req.Transition(request.Failed, now); err != nil {
		return nil, err
	}
	if err = req.AttachEvidence(evidenceRef, request.ImageOther); err != nil {
		return nil, err
	}

	return current, nil
}

// CurrentTransporter resolves who holds the request from its history.
func (m AssignmentManager) CurrentTransporter(history []*assignment.Assignment) (kernel.UUID, bool) {
	current := assignment.Current(history)
	if current == nil {
		return kernel.UUID{}, false
	}
	return current.TransporterID(), true
}

func (m AssignmentManager) canMove(req *request.Request, target request.Status) error {
	if err := req.Validate(); err != nil {
		return err
	}
	if !req.Status().CanTransitionTo(target) {
		return errs.NewInvalidTransitionError(req.Status().String(), target.String())
	}
	return nil
}

func (m AssignmentManager) holder(history []*assignment.Assignment, transporterID kernel.UUID) (*assignment.Assignment, error) {
	current := assignment.Current(history)
	if current == nil || !current.TransporterID().IsEqual(transporterID) {
		return nil, ErrNotCurrentAssignee
	}
	return current, nil
}

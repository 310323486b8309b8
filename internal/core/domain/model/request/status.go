package request

import (
	"fmt"

	"github.com/ArmandoCH85/sistemtransporte/internal/pkg/errs"
)

// Status is the lifecycle state of a Request. It is persisted by name.
type Status int

const (
	// Unknown catches uninitialized values.
	Unknown Status = iota
	Pending
	Accepted
	Rescheduled
	Completed
	Failed
)

var statusNames = map[Status]string{
	Pending:     "pending",
	Accepted:    "accepted",
	Rescheduled: "rescheduled",
	Completed:   "completed",
	Failed:      "failed",
}

// transitions lists, for each status, the statuses it may move to.
var transitions = map[Status][]Status{
	Pending:     {Accepted, Rescheduled},
	Accepted:    {Completed, Failed},
	Rescheduled: {Accepted},
}

// ParseStatus maps a persisted or user supplied name to a Status.
func ParseStatus(name string) (Status, error) {
	for s, n := range statusNames {
		if n == name {
			return s, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a known status", name))
}

// String returns the persisted name, or "unknown".
func (s Status) String() string {
	if name, ok := statusNames[s]; ok {
		return name
	}
	return "unknown"
}

// Validate rejects Unknown and out of range values.
func (s Status) Validate() error {
	if _, ok := statusNames[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// IsTerminal reports whether no transition leaves s.
func (s Status) IsTerminal() bool {
	return s == Completed || s == Failed
}

// CanTransitionTo reports whether target is in the allowed set for s.
func (s Status) CanTransitionTo(target Status) bool {
	for _, allowed := range transitions[s] {
		if allowed == target {
			return true
		}
	}
	return false
}

// Transition returns target if the move from s is allowed, otherwise an
// *errs.InvalidTransitionError.
//
// Example:
//
//	next, err := request.Pending.Transition(request.Accepted) // accepted, nil
//	_, err = request.Completed.Transition(request.Pending)    // errs.ErrInvalidTransition
func (s Status) Transition(target Status) (Status, error) {
	if !s.CanTransitionTo(target) {
		return Unknown, errs.NewInvalidTransitionError(s.String(), target.String())
	}
	return target, nil
}

// AllStatuses lists the valid statuses in lifecycle order.
func AllStatuses() []Status {
	return []Status{Pending, Accepted, Rescheduled, Completed, Failed}
}

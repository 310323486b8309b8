package assignment

import (
	"fmt"

	"github.com/ArmandoCH85/sistemtransporte/internal/pkg/errs"
)

// Status is the state of one transporter's response to a request.
type Status int

const (
	Unknown Status = iota
	Pending
	Accepted
	Rejected
	Rescheduled
	Completed
	Failed
)

var statusNames = map[Status]string{
	Pending:     "pending",
	Accepted:    "accepted",
	Rejected:    "rejected",
	Rescheduled: "rescheduled",
	Completed:   "completed",
	Failed:      "failed",
}

// ParseStatus maps a persisted name to a Status.
func ParseStatus(name string) (Status, error) {
	for s, n := range statusNames {
		if n == name {
			return s, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("assignment status", fmt.Errorf("%q is not a known status", name))
}

func (s Status) String() string {
	if name, ok := statusNames[s]; ok {
		return name
	}
	return "unknown"
}

// Validate rejects Unknown and out of range values.
func (s Status) Validate() error {
	if _, ok := statusNames[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("assignment status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

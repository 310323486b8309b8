package commands

import (
	"errors"
	"strings"

	"github.com/ArmandoCH85/sistemtransporte/internal/core/domain/model/kernel"
	"github.com/ArmandoCH85/sistemtransporte/internal/pkg/errs"
	"github.com/ArmandoCH85/sistemtransporte/internal/pkg/guard"
)

var ErrFailRequestCommandIsNotConstructed = errors.New(
	"FailRequestCommand must be created via NewFailRequestCommand constructor",
)

// FailRequestCommand is the current transporter reporting that the transport
// could not be done. Reason and evidence are both mandatory.
type FailRequestCommand struct {
	requestID     kernel.UUID
	transporterID kernel.UUID
	reason        string
	evidenceRef   string

	guard guard.ConstructorGuard
}

func NewFailRequestCommand(requestID, transporterID kernel.UUID, reason, evidenceRef string) (FailRequestCommand, error) {
	problems := []error{requestID.Validate(), transporterID.Validate()}
	if strings.TrimSpace(reason) == "" {
		problems = append(problems, errs.NewValueIsRequiredError("reason"))
	}
	if strings.TrimSpace(evidenceRef) == "" {
		problems = append(problems, errs.NewValueIsRequiredError("evidence reference"))
	}
	if err := errors.Join(problems...); err != nil {
		return FailRequestCommand{}, err
	}

	return FailRequestCommand{
		requestID:     requestID,
		transporterID: transporterID,
		reason:        reason,
		evidenceRef:   evidenceRef,
		guard:         guard.NewConstructorGuard(),
	}, nil
}

func (c FailRequestCommand) RequestID() kernel.UUID     { return c.requestID }
func (c FailRequestCommand) TransporterID() kernel.UUID { return c.transporterID }
func (c FailRequestCommand) Reason() string             { return c.reason }
func (c FailRequestCommand) EvidenceRef() string        { return c.evidenceRef }

func (c FailRequestCommand) Validate() error {
	return c.guard.Validate(ErrFailRequestCommandIsNotConstructed)
}

package queries

import (
	"errors"
	"time"

	"github.com/ArmandoCH85/sistemtransporte/internal/core/domain/model/kernel"
	"github.com/ArmandoCH85/sistemtransporte/internal/pkg/guard"
)

var (
	ErrGetWorkLogsQueryIsNotConstructed = errors.New(
		"GetWorkLogsQuery must be created via NewGetWorkLogsQuery constructor",
	)
)

// GetWorkLogsQuery lists a transporter's closed workdays, newest first.
type GetWorkLogsQuery struct {
	transporterID kernel.UUID

	guard guard.ConstructorGuard
}

func NewGetWorkLogsQuery(transporterID kernel.UUID) (GetWorkLogsQuery, error) {
	if err := transporterID.Validate(); err != nil {
		return GetWorkLogsQuery{}, err
	}

	return GetWorkLogsQuery{
		transporterID: transporterID,
		guard:         guard.NewConstructorGuard(),
	}, nil
}

func (q GetWorkLogsQuery) TransporterID() kernel.UUID { return q.transporterID }

func (q GetWorkLogsQuery) Validate() error {
	return q.guard.Validate(ErrGetWorkLogsQueryIsNotConstructed)
}

// GetWorkLogsQueryResponse is one closed workday. WorkDate is YYYY-MM-DD.
type GetWorkLogsQueryResponse struct {
	ID        kernel.UUID
	WorkDate  string
	StartedAt time.Time
	EndedAt   time.Time
}

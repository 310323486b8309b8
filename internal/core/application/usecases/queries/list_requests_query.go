package queries

import (
	"errors"

	"github.com/ArmandoCH85/sistemtransporte/internal/core/domain/model/request"
	"github.com/ArmandoCH85/sistemtransporte/internal/pkg/guard"
)

var (
	ErrListRequestsQueryIsNotConstructed = errors.New(
		"ListRequestsQuery must be created via NewListRequestsQuery constructor",
	)
)

// ListRequestsQuery lists live requests, newest first, optionally only those
// in one status.
type ListRequestsQuery struct {
	status *request.Status

	guard guard.ConstructorGuard
}

// NewListRequestsQuery accepts an empty status for no filter, or one of the
// request status names.
func NewListRequestsQuery(status string) (ListRequestsQuery, error) {
	query := ListRequestsQuery{guard: guard.NewConstructorGuard()}
	if status == "" {
		return query, nil
	}

	parsed, err := request.ParseStatus(status)
	if err != nil {
		return ListRequestsQuery{}, err
	}
	query.status = &parsed
	return query, nil
}

// Status returns the filter, or nil when every status is listed.
func (q ListRequestsQuery) Status() *request.Status { return q.status }

func (q ListRequestsQuery) Validate() error {
	return q.guard.Validate(ErrListRequestsQueryIsNotConstructed)
}

package queries

import (
	"errors"
	"time"

	"github.com/ArmandoCH85/sistemtransporte/internal/core/domain/model/kernel"
	"github.com/ArmandoCH85/sistemtransporte/internal/pkg/guard"
)

var (
	ErrGetRequestQueryIsNotConstructed = errors.New(
		"GetRequestQuery must be created via NewGetRequestQuery constructor",
	)
)

// GetRequestQuery loads one request with its status trail, its assignment
// history and the transporter currently holding it.
//
// Example:
//
//	query, err := NewGetRequestQuery(requestID)
//	if err != nil {
//	    return err
//	}
//	view, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return err
//	}
//	if view.CurrentTransporterID != nil {
//	    fmt.Printf("held by %s\n", view.CurrentTransporterID)
//	}
type GetRequestQuery struct {
	requestID kernel.UUID

	guard guard.ConstructorGuard
}

func NewGetRequestQuery(requestID kernel.UUID) (GetRequestQuery, error) {
	if err := requestID.Validate(); err != nil {
		return GetRequestQuery{}, err
	}

	return GetRequestQuery{
		requestID: requestID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (q GetRequestQuery) RequestID() kernel.UUID { return q.requestID }

func (q GetRequestQuery) Validate() error {
	return q.guard.Validate(ErrGetRequestQueryIsNotConstructed)
}

// GetRequestQueryResponse is the detailed view of a request. History and
// Assignments are oldest first. CurrentTransporterID is nil unless some
// assignment is accepted.
type GetRequestQueryResponse struct {
	Request              RequestSummary
	CurrentTransporterID *kernel.UUID
	History              []StatusHistoryItem
	Assignments          []AssignmentItem
}

type StatusHistoryItem struct {
	UserID    kernel.UUID
	Status    string
	Comment   string
	CreatedAt time.Time
}

type AssignmentItem struct {
	ID             kernel.UUID
	TransporterID  kernel.UUID
	Status         string
	AssignmentDate time.Time
	ResponseDate   *time.Time
	Comments       string
}

// Package history keeps the auditable trail of status changes of a request.
package history

import (
	"errors"
	"strings"
	"time"

	"github.com/ArmandoCH85/sistemtransporte/internal/core/domain/model/kernel"
	"github.com/ArmandoCH85/sistemtransporte/internal/core/domain/model/request"
)

// StatusEntry is one row of the trail: who moved the request into which status.
type StatusEntry struct {
	id        kernel.UUID
	requestID kernel.UUID
	actorID   kernel.UUID
	status    request.Status
	comment   string
	createdAt time.Time
}

// NewStatusEntry validates and creates an entry.
func NewStatusEntry(requestID, actorID kernel.UUID, status request.Status, comment string, now time.Time) (*StatusEntry, error) {
	if err := errors.Join(requestID.Validate(), actorID.Validate(), status.Validate()); err != nil {
		return nil, err
	}
	return &StatusEntry{
		id:        kernel.NewUUID(),
		requestID: requestID,
		actorID:   actorID,
		status:    status,
		comment:   strings.TrimSpace(comment),
		createdAt: now,
	}, nil
}

// RestoreStatusEntry rebuilds a stored entry.
func RestoreStatusEntry(
	id, requestID, actorID kernel.UUID,
	status request.Status,
	comment string,
	createdAt time.Time,
) (*StatusEntry, error) {
	if err := errors.Join(id.Validate(), requestID.Validate(), actorID.Validate(), status.Validate()); err != nil {
		return nil, err
	}
	return &StatusEntry{
		id:        id,
		requestID: requestID,
		actorID:   actorID,
		status:    status,
		comment:   comment,
		createdAt: createdAt,
	}, nil
}

func (e *StatusEntry) ID() kernel.UUID        { return e.id }
func (e *StatusEntry) RequestID() kernel.UUID { return e.requestID }
func (e *StatusEntry) ActorID() kernel.UUID   { return e.actorID }
func (e *StatusEntry) Status() request.Status { return e.status }
func (e *StatusEntry) Comment() string        { return e.comment }
func (e *StatusEntry) CreatedAt() time.Time   { return e.createdAt }

// Package historyrepo persists the status trail of transport requests.
package historyrepo

import (
	"time"

	"github.com/ArmandoCH85/sistemtransporte/internal/core/domain/model/history"
	"github.com/ArmandoCH85/sistemtransporte/internal/core/domain/model/kernel"
	"github.com/ArmandoCH85/sistemtransporte/internal/core/domain/model/request"

	"github.com/google/uuid"
)

// StatusEntryDTO is a request_statuses row.
type StatusEntryDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	RequestID uuid.UUID `gorm:"type:uuid;index;not null"`
	UserID    uuid.UUID `gorm:"type:uuid;not null"`
	Status    string    `gorm:"type:varchar(20);not null"`
	Comment   string    `gorm:"type:text"`
	CreatedAt time.Time
}

func (StatusEntryDTO) TableName() string {
	return "request_statuses"
}

func fromDomain(e *history.StatusEntry) StatusEntryDTO {
	return StatusEntryDTO{
		ID:        e.ID().Bytes(),
		RequestID: e.RequestID().Bytes(),
		UserID:    e.ActorID().Bytes(),
		Status:    e.Status().String(),
		Comment:   e.Comment(),
		CreatedAt: e.CreatedAt(),
	}
}

func toDomain(dto StatusEntryDTO) (*history.StatusEntry, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	requestID, err := kernel.UUIDFromBytes(dto.RequestID[:])
	if err != nil {
		return nil, err
	}

	actorID, err := kernel.UUIDFromBytes(dto.UserID[:])
	if err != nil {
		return nil, err
	}

	status, err := request.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}

	return history.RestoreStatusEntry(id, requestID, actorID, status, dto.Comment, dto.CreatedAt)
}

// Package assignmentrepo persists assignments, the per-transporter history of
// a transport request.
package assignmentrepo

import (
	"time"

	"github.com/ArmandoCH85/sistemtransporte/internal/core/domain/model/assignment"
	"github.com/ArmandoCH85/sistemtransporte/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AssignmentDTO struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	RequestID      uuid.UUID `gorm:"type:uuid;index;not null"`
	TransporterID  uuid.UUID `gorm:"type:uuid;index;not null"`
	Status         string    `gorm:"type:varchar(20);not null"`
	AssignmentDate time.Time `gorm:"not null"`
	ResponseDate   *time.Time
	Comments       string `gorm:"type:text"`
	CreatedAt      time.Time
	DeletedAt      gorm.DeletedAt `gorm:"index"`
}

func (AssignmentDTO) TableName() string {
	return "assignments"
}

func fromDomain(a *assignment.Assignment) AssignmentDTO {
	return AssignmentDTO{
		ID:             a.ID().Bytes(),
		RequestID:      a.RequestID().Bytes(),
		TransporterID:  a.TransporterID().Bytes(),
		Status:         a.Status().String(),
		AssignmentDate: a.AssignmentDate(),
		ResponseDate:   a.ResponseDate(),
		Comments:       a.Comments(),
		CreatedAt:      a.CreatedAt(),
	}
}

func toDomain(dto AssignmentDTO) (*assignment.Assignment, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	requestID, err := kernel.UUIDFromBytes(dto.RequestID[:])
	if err != nil {
		return nil, err
	}

	transporterID, err := kernel.UUIDFromBytes(dto.TransporterID[:])
	if err != nil {
		return nil, err
	}

	status, err := assignment.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}

	return assignment.RestoreAssignment(assignment.Snapshot{
		ID:             id,
		RequestID:      requestID,
		TransporterID:  transporterID,
		Status:         status,
		AssignmentDate: dto.AssignmentDate,
		ResponseDate:   dto.ResponseDate,
		Comments:       dto.Comments,
		CreatedAt:      dto.CreatedAt,
	})
}

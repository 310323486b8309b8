// Package worklogrepo persists closed workdays. The unique index on
// (transporter_id, work_date) is what makes a closure happen at most once.
package worklogrepo

import (
	"time"

	"github.com/ArmandoCH85/sistemtransporte/internal/core/domain/model/kernel"
	"github.com/ArmandoCH85/sistemtransporte/internal/core/domain/model/worklog"

	"github.com/google/uuid"
)

type WorkLogDTO struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	TransporterID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_work_logs_transporter_date"`
	WorkDate      time.Time `gorm:"type:date;not null;uniqueIndex:idx_work_logs_transporter_date"`
	StartedAt     time.Time `gorm:"not null"`
	EndedAt       time.Time `gorm:"not null"`
	CreatedAt     time.Time
}

func (WorkLogDTO) TableName() string {
	return "work_logs"
}

func fromDomain(w *worklog.WorkLog) WorkLogDTO {
	return WorkLogDTO{
		ID:            w.ID().Bytes(),
		TransporterID: w.TransporterID().Bytes(),
		WorkDate:      w.WorkDate().Time(),
		StartedAt:     w.StartedAt(),
		EndedAt:       w.EndedAt(),
		CreatedAt:     w.EndedAt(),
	}
}

func toDomain(dto WorkLogDTO) (*worklog.WorkLog, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	transporterID, err := kernel.UUIDFromBytes(dto.TransporterID[:])
	if err != nil {
		return nil, err
	}

	// Dates come back as UTC midnight.
	workDate := worklog.DateOf(dto.WorkDate.UTC())

	return worklog.RestoreWorkLog(id, transporterID, workDate, dto.StartedAt, dto.EndedAt)
}

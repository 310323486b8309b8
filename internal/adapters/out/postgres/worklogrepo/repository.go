package worklogrepo

import (
	"context"

	"github.com/ArmandoCH85/sistemtransporte/internal/core/domain/model/kernel"
	"github.com/ArmandoCH85/sistemtransporte/internal/core/domain/model/worklog"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormWorkLogRepository implements ports.WorkLogRepository using GORM.
type GormWorkLogRepository struct {
	db *gorm.DB
}

func NewGormWorkLogRepository(db *gorm.DB) *GormWorkLogRepository {
	return &GormWorkLogRepository{db: db}
}

// AddIfAbsent relies on INSERT ... ON CONFLICT DO NOTHING. When nothing was
// inserted the row that won is read back; under READ COMMITTED the conflict
// is only reported after that row committed, so the read always finds it.
func (r *GormWorkLogRepository) AddIfAbsent(ctx context.Context, log *worklog.WorkLog) (*worklog.WorkLog, bool, error) {
	if err := log.Validate(); err != nil {
		return nil, false, err
	}

	dto := fromDomain(log)
	result := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "transporter_id"}, {Name: "work_date"}},
			DoNothing: true,
		}).
		Create(&dto)
	if result.Error != nil {
		return nil, false, result.Error
	}

	if result.RowsAffected == 1 {
		return log, true, nil
	}

	var existing WorkLogDTO
	err := r.db.WithContext(ctx).
		Where("transporter_id = ? AND work_date = ?", dto.TransporterID, dto.WorkDate).
		First(&existing).Error
	if err != nil {
		return nil, false, err
	}

	stored, err := toDomain(existing)
	if err != nil {
		return nil, false, err
	}

	return stored, false, nil
}

func (r *GormWorkLogRepository) ListByTransporter(ctx context.Context, transporterID kernel.UUID) ([]*worklog.WorkLog, error) {
	if err := transporterID.Validate(); err != nil {
		return nil, err
	}

	var dtos []WorkLogDTO
	err := r.db.WithContext(ctx).
		Where("transporter_id = ?", transporterID.Bytes()).
		Order("work_date DESC").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	logs := make([]*worklog.WorkLog, 0, len(dtos))
	for _, dto := range dtos {
		w, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		logs = append(logs, w)
	}

	return logs, nil
}

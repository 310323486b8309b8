package historyrepo

import (
	"context"

	"github.com/ArmandoCH85/sistemtransporte/internal/core/domain/model/history"
	"github.com/ArmandoCH85/sistemtransporte/internal/core/domain/model/kernel"

	"gorm.io/gorm"
)

// GormStatusHistoryRepository implements ports.StatusHistoryRepository using GORM.
// Entries are append-only and removed physically with their request.
type GormStatusHistoryRepository struct {
	db *gorm.DB
}

func NewGormStatusHistoryRepository(db *gorm.DB) *GormStatusHistoryRepository {
	return &GormStatusHistoryRepository{db: db}
}

func (r *GormStatusHistoryRepository) Add(ctx context.Context, entry *history.StatusEntry) error {
	dto := fromDomain(entry)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// ListByRequest returns the trail oldest first.
func (r *GormStatusHistoryRepository) ListByRequest(ctx context.Context, requestID kernel.UUID) ([]*history.StatusEntry, error) {
	if err := requestID.Validate(); err != nil {
		return nil, err
	}

	var dtos []StatusEntryDTO
	err := r.db.WithContext(ctx).
		Where("request_id = ?", requestID.Bytes()).
		Order("created_at ASC").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	entries := make([]*history.StatusEntry, 0, len(dtos))
	for _, dto := range dtos {
		e, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}

	return entries, nil
}

func (r *GormStatusHistoryRepository) DeleteByRequest(ctx context.Context, requestID kernel.UUID) error {
	if err := requestID.Validate(); err != nil {
		return err
	}

	return r.db.WithContext(ctx).Where("request_id = ?", requestID.Bytes()).Delete(&StatusEntryDTO{}).Error
}

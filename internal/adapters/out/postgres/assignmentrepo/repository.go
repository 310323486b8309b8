package assignmentrepo

import (
	"context"

	"github.com/ArmandoCH85/sistemtransporte/internal/core/domain/model/assignment"
	"github.com/ArmandoCH85/sistemtransporte/internal/core/domain/model/kernel"
	"github.com/ArmandoCH85/sistemtransporte/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormAssignmentRepository implements ports.AssignmentRepository using GORM.
type GormAssignmentRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

func NewGormAssignmentRepository(db *gorm.DB, tracker aggregateTracker) *GormAssignmentRepository {
	return &GormAssignmentRepository{
		db:      db,
		tracker: tracker,
	}
}

func (r *GormAssignmentRepository) Add(ctx context.Context, a *assignment.Assignment) error {
	if err := a.Validate(); err != nil {
		return err
	}

	dto := fromDomain(a)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(a.ID(), a)
	return nil
}

// Update stores the mutable part of an assignment: status, response date and comments.
func (r *GormAssignmentRepository) Update(ctx context.Context, a *assignment.Assignment) error {
	if err := a.Validate(); err != nil {
		return err
	}

	dto := fromDomain(a)
	result := r.db.WithContext(ctx).
		Model(&AssignmentDTO{}).
		Where("id = ?", dto.ID).
		Updates(map[string]any{
			"status":        dto.Status,
			"response_date": dto.ResponseDate,
			"comments":      dto.Comments,
		})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("assignment", a.ID().String())
	}

	r.tracker.TrackAggregate(a.ID(), a)
	return nil
}

// ListByRequest returns assignments oldest first. Ties on assignment date are
// broken by creation time so the order is stable.
func (r *GormAssignmentRepository) ListByRequest(ctx context.Context, requestID kernel.UUID) ([]*assignment.Assignment, error) {
	if err := requestID.Validate(); err != nil {
		return nil, err
	}

	var dtos []AssignmentDTO
	err := r.db.WithContext(ctx).
		Where("request_id = ?", requestID.Bytes()).
		Order("assignment_date ASC, created_at ASC").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	assignments := make([]*assignment.Assignment, 0, len(dtos))
	for _, dto := range dtos {
		a, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		assignments = append(assignments, a)
	}

	return assignments, nil
}

func (r *GormAssignmentRepository) DeleteByRequest(ctx context.Context, requestID kernel.UUID) error {
	if err := requestID.Validate(); err != nil {
		return err
	}

	return r.db.WithContext(ctx).Where("request_id = ?", requestID.Bytes()).Delete(&AssignmentDTO{}).Error
}

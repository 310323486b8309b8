package notificationrepo

import (
	"context"

	"github.com/ArmandoCH85/sistemtransporte/internal/core/domain/model/kernel"
	"github.com/ArmandoCH85/sistemtransporte/internal/core/domain/model/notification"
	"github.com/ArmandoCH85/sistemtransporte/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormNotificationRepository implements ports.NotificationRepository using GORM.
type GormNotificationRepository struct {
	db *gorm.DB
}

func NewGormNotificationRepository(db *gorm.DB) *GormNotificationRepository {
	return &GormNotificationRepository{db: db}
}

func (r *GormNotificationRepository) Add(ctx context.Context, n *notification.Notification) error {
	dto := fromDomain(n)
	return r.db.WithContext(ctx).Create(&dto).Error
}

func (r *GormNotificationRepository) ListPending(ctx context.Context, limit int) ([]*notification.Notification, error) {
	var dtos []NotificationDTO
	err := r.db.WithContext(ctx).
		Where("sent = ?", false).
		Order("created_at ASC").
		Limit(limit).
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	pending := make([]*notification.Notification, 0, len(dtos))
	for _, dto := range dtos {
		n, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		pending = append(pending, n)
	}

	return pending, nil
}

func (r *GormNotificationRepository) MarkSent(ctx context.Context, n *notification.Notification) error {
	result := r.db.WithContext(ctx).
		Model(&NotificationDTO{}).
		Where("id = ?", n.ID().Bytes()).
		Updates(map[string]any{
			"sent":    n.Sent(),
			"sent_at": n.SentAt(),
		})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("notification", n.ID().String())
	}

	return nil
}

func (r *GormNotificationRepository) DeleteByRequest(ctx context.Context, requestID kernel.UUID) error {
	if err := requestID.Validate(); err != nil {
		return err
	}

	return r.db.WithContext(ctx).Where("request_id = ?", requestID.Bytes()).Delete(&NotificationDTO{}).Error
}

// Package notificationrepo stores the notification outbox.
package notificationrepo

import (
	"database/sql/driver"
	"time"

	"github.com/ArmandoCH85/sistemtransporte/internal/core/domain/model/kernel"
	"github.com/ArmandoCH85/sistemtransporte/internal/core/domain/model/notification"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
	"gorm.io/gorm/schema"
)

// NotificationDTO is a notifications row. Rows are removed physically when the
// request they belong to is deleted.
type NotificationDTO struct {
	ID               uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID           uuid.UUID `gorm:"type:uuid;index;not null"`
	RequestID        uuid.UUID `gorm:"type:uuid;index;not null"`
	NotificationType string    `gorm:"type:varchar(30);not null"`
	Message          string    `gorm:"type:text;not null"`
	Channels         Channels
	Sent             bool `gorm:"index;not null;default:false"`
	SentAt           *time.Time
	CreatedAt        time.Time
}

func (NotificationDTO) TableName() string {
	return "notifications"
}

// Channels is a text[] column on PostgreSQL. Other dialects store the same
// array literal in a text column.
type Channels pq.StringArray

func (c Channels) Value() (driver.Value, error) {
	return pq.StringArray(c).Value()
}

func (c *Channels) Scan(src any) error {
	return (*pq.StringArray)(c).Scan(src)
}

func (Channels) GormDataType() string {
	return "text"
}

func (Channels) GormDBDataType(db *gorm.DB, _ *schema.Field) string {
	if db.Dialector.Name() == "postgres" {
		return "text[]"
	}
	return "text"
}

func fromDomain(n *notification.Notification) NotificationDTO {
	return NotificationDTO{
		ID:               n.ID().Bytes(),
		UserID:           n.RecipientID().Bytes(),
		RequestID:        n.RequestID().Bytes(),
		NotificationType: string(n.Type()),
		Message:          n.Message(),
		Channels:         Channels(n.Channels()),
		Sent:             n.Sent(),
		SentAt:           n.SentAt(),
		CreatedAt:        n.CreatedAt(),
	}
}

func toDomain(dto NotificationDTO) (*notification.Notification, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	recipientID, err := kernel.UUIDFromBytes(dto.UserID[:])
	if err != nil {
		return nil, err
	}

	requestID, err := kernel.UUIDFromBytes(dto.RequestID[:])
	if err != nil {
		return nil, err
	}

	return notification.RestoreNotification(notification.Snapshot{
		ID:          id,
		RecipientID: recipientID,
		RequestID:   requestID,
		Type:        notification.Type(dto.NotificationType),
		Message:     dto.Message,
		Channels:    []string(dto.Channels),
		Sent:        dto.Sent,
		SentAt:      dto.SentAt,
		CreatedAt:   dto.CreatedAt,
	})
}

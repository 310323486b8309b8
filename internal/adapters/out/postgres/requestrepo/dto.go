// Package requestrepo persists the transport request aggregate and its images.
package requestrepo

import (
	"time"

	"github.com/ArmandoCH85/sistemtransporte/internal/core/domain/model/kernel"
	"github.com/ArmandoCH85/sistemtransporte/internal/core/domain/model/request"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// RequestDTO is the transport_requests row. Rows are soft-deleted.
type RequestDTO struct {
	ID                 uuid.UUID   `gorm:"type:uuid;primaryKey"`
	RequesterID        uuid.UUID   `gorm:"type:uuid;index;not null"`
	CategoryID         *uuid.UUID  `gorm:"type:uuid"`
	OriginID           *uuid.UUID  `gorm:"type:uuid"`
	Description        string      `gorm:"type:text"`
	Pickup             EndpointDTO `gorm:"embedded;embeddedPrefix:pickup_"`
	Delivery           EndpointDTO `gorm:"embedded;embeddedPrefix:delivery_"`
	CurrentStatus      string      `gorm:"type:varchar(20);index;not null"`
	RescheduledDate    *time.Time
	RescheduleComments string `gorm:"type:text"`
	EvidenceImage      string `gorm:"type:varchar(255)"`
	CreatedAt          time.Time
	UpdatedAt          time.Time
	DeletedAt          gorm.DeletedAt `gorm:"index"`
}

func (RequestDTO) TableName() string {
	return "transport_requests"
}

type EndpointDTO struct {
	Address string `gorm:"type:varchar(255)"`
	Contact string `gorm:"type:varchar(255)"`
	Phone   string `gorm:"type:varchar(50)"`
}

// ImageDTO is an image reference attached to a request.
type ImageDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	RequestID uuid.UUID `gorm:"type:uuid;index;not null"`
	Path      string    `gorm:"type:varchar(255);not null"`
	Type      string    `gorm:"type:varchar(20);not null"`
	CreatedAt time.Time
}

func (ImageDTO) TableName() string {
	return "images"
}

func fromDomain(r *request.Request) RequestDTO {
	d := r.Details()
	return RequestDTO{
		ID:                 r.ID().Bytes(),
		RequesterID:        r.RequesterID().Bytes(),
		CategoryID:         optionalID(d.CategoryID),
		OriginID:           optionalID(d.OriginID),
		Description:        d.Description,
		Pickup:             endpointFromDomain(d.Pickup),
		Delivery:           endpointFromDomain(d.Delivery),
		CurrentStatus:      r.Status().String(),
		RescheduledDate:    r.RescheduledDate(),
		RescheduleComments: r.RescheduleComments(),
		EvidenceImage:      r.EvidenceImage(),
		CreatedAt:          r.CreatedAt(),
		UpdatedAt:          r.UpdatedAt(),
	}
}

// updatedColumns lists what Update writes. Identity and creation time never change.
func (dto RequestDTO) updatedColumns() map[string]any {
	return map[string]any{
		"category_id":         dto.CategoryID,
		"origin_id":           dto.OriginID,
		"description":         dto.Description,
		"pickup_address":      dto.Pickup.Address,
		"pickup_contact":      dto.Pickup.Contact,
		"pickup_phone":        dto.Pickup.Phone,
		"delivery_address":    dto.Delivery.Address,
		"delivery_contact":    dto.Delivery.Contact,
		"delivery_phone":      dto.Delivery.Phone,
		"current_status":      dto.CurrentStatus,
		"rescheduled_date":    dto.RescheduledDate,
		"reschedule_comments": dto.RescheduleComments,
		"evidence_image":      dto.EvidenceImage,
		"updated_at":          dto.UpdatedAt,
	}
}

func imagesFromDomain(r *request.Request) []ImageDTO {
	images := make([]ImageDTO, 0, len(r.NewImages()))
	for _, img := range r.NewImages() {
		images = append(images, ImageDTO{
			ID:        uuid.New(),
			RequestID: r.ID().Bytes(),
			Path:      img.Ref(),
			Type:      string(img.Kind()),
			CreatedAt: r.UpdatedAt(),
		})
	}
	return images
}

func toDomain(dto RequestDTO) (*request.Request, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	requesterID, err := kernel.UUIDFromBytes(dto.RequesterID[:])
	if err != nil {
		return nil, err
	}

	status, err := request.ParseStatus(dto.CurrentStatus)
	if err != nil {
		return nil, err
	}

	pickup, err := kernel.NewEndpoint(dto.Pickup.Address, dto.Pickup.Contact, dto.Pickup.Phone)
	if err != nil {
		return nil, err
	}

	delivery, err := kernel.NewEndpoint(dto.Delivery.Address, dto.Delivery.Contact, dto.Delivery.Phone)
	if err != nil {
		return nil, err
	}

	categoryID, err := restoreOptionalID(dto.CategoryID)
	if err != nil {
		return nil, err
	}

	originID, err := restoreOptionalID(dto.OriginID)
	if err != nil {
		return nil, err
	}

	return request.RestoreRequest(request.Snapshot{
		ID:          id,
		RequesterID: requesterID,
		Details: request.Details{
			CategoryID:  categoryID,
			OriginID:    originID,
			Description: dto.Description,
			Pickup:      pickup,
			Delivery:    delivery,
		},
		Status:             status,
		RescheduledDate:    dto.RescheduledDate,
		RescheduleComments: dto.RescheduleComments,
		EvidenceImage:      dto.EvidenceImage,
		CreatedAt:          dto.CreatedAt,
		UpdatedAt:          dto.UpdatedAt,
	})
}

func endpointFromDomain(e kernel.Endpoint) EndpointDTO {
	return EndpointDTO{
		Address: e.Address(),
		Contact: e.Contact(),
		Phone:   e.Phone(),
	}
}

func optionalID(id *kernel.UUID) *uuid.UUID {
	if id == nil {
		return nil
	}
	raw := id.Bytes()
	return &raw
}

func restoreOptionalID(raw *uuid.UUID) (*kernel.UUID, error) {
	if raw == nil {
		return nil, nil
	}
	id, err := kernel.UUIDFromBytes(raw[:])
	if err != nil {
		return nil, err
	}
	return &id, nil
}

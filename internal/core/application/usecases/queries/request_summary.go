package queries

import (
	"database/sql"
	"time"

	"github.com/ArmandoCH85/sistemtransporte/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// RequestSummary is the read model of a transport request.
type RequestSummary struct {
	ID                 kernel.UUID
	RequesterID        kernel.UUID
	Description        string
	Pickup             kernel.Endpoint
	Delivery           kernel.Endpoint
	Status             string
	RescheduledDate    *time.Time
	RescheduleComments string
	EvidenceImage      string
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// requestColumns is selected by every query that returns a RequestSummary,
// in the order scanRequestSummary expects.
const requestColumns = `
			id,
			requester_id,
			description,
			pickup_address,
			pickup_contact,
			pickup_phone,
			delivery_address,
			delivery_contact,
			delivery_phone,
			current_status,
			rescheduled_date,
			reschedule_comments,
			evidence_image,
			created_at,
			updated_at`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRequestSummary(rows rowScanner) (RequestSummary, error) {
	var (
		summary                                         RequestSummary
		id, requesterID                                 uuid.UUID
		pickupAddress, pickupContact, pickupPhone       string
		deliveryAddress, deliveryContact, deliveryPhone string
		rescheduledDate                                 sql.NullTime
	)

	err := rows.Scan(
		&id,
		&requesterID,
		&summary.Description,
		&pickupAddress,
		&pickupContact,
		&pickupPhone,
		&deliveryAddress,
		&deliveryContact,
		&deliveryPhone,
		&summary.Status,
		&rescheduledDate,
		&summary.RescheduleComments,
		&summary.EvidenceImage,
		&summary.CreatedAt,
		&summary.UpdatedAt,
	)
	if err != nil {
		return RequestSummary{}, err
	}

	if summary.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
		return RequestSummary{}, err
	}
	if summary.RequesterID, err = kernel.UUIDFromBytes(requesterID[:]); err != nil {
		return RequestSummary{}, err
	}
	if summary.Pickup, err = kernel.NewEndpoint(pickupAddress, pickupContact, pickupPhone); err != nil {
		return RequestSummary{}, err
	}
	if summary.Delivery, err = kernel.NewEndpoint(deliveryAddress, deliveryContact, deliveryPhone); err != nil {
		return RequestSummary{}, err
	}
	if rescheduledDate.Valid {
		summary.RescheduledDate = &rescheduledDate.Time
	}

	return summary, nil
}

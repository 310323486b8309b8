package queries

import (
	"context"
	"database/sql"
	"errors"

	"github.com/ArmandoCH85/sistemtransporte/internal/core/domain/model/assignment"
	"github.com/ArmandoCH85/sistemtransporte/internal/core/domain/model/kernel"
	"github.com/ArmandoCH85/sistemtransporte/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetRequestQueryHandler reads a request and everything hanging off it with
// plain SQL. Soft-deleted requests and assignments are invisible.
type GetRequestQueryHandler struct {
	db *gorm.DB
}

func NewGetRequestQueryHandler(db *gorm.DB) GetRequestQueryHandler {
	return GetRequestQueryHandler{db: db}
}

func (h GetRequestQueryHandler) Handle(ctx context.Context, query GetRequestQuery) (*GetRequestQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	db := h.db.WithContext(ctx)
	id := query.RequestID().Bytes()

	summary, err := h.summary(db, query.RequestID())
	if err != nil {
		return nil, err
	}

	history, err := h.history(db, id)
	if err != nil {
		return nil, err
	}

	assignments, err := h.assignments(db, id)
	if err != nil {
		return nil, err
	}

	current, err := h.currentTransporter(db, id)
	if err != nil {
		return nil, err
	}

	return &GetRequestQueryResponse{
		Request:              summary,
		CurrentTransporterID: current,
		History:              history,
		Assignments:          assignments,
	}, nil
}

func (h GetRequestQueryHandler) summary(db *gorm.DB, requestID kernel.UUID) (RequestSummary, error) {
	row := db.Raw(`
		SELECT`+requestColumns+`
		FROM transport_requests
		WHERE id = ? AND deleted_at IS NULL
	`, requestID.Bytes()).Row()

	summary, err := scanRequestSummary(row)
	if errors.Is(err, sql.ErrNoRows) {
		return RequestSummary{}, errs.NewObjectNotFoundError("request", requestID.String())
	}
	return summary, err
}

func (h GetRequestQueryHandler) history(db *gorm.DB, requestID uuid.UUID) ([]StatusHistoryItem, error) {
	rows, err := db.Raw(`
		SELECT
			user_id,
			status,
			comment,
			created_at
		FROM request_statuses
		WHERE request_id = ?
		ORDER BY created_at
	`, requestID).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]StatusHistoryItem, 0)
	for rows.Next() {
		var item StatusHistoryItem
		var userID uuid.UUID

		if err = rows.Scan(&userID, &item.Status, &item.Comment, &item.CreatedAt); err != nil {
			return nil, err
		}

		if item.UserID, err = kernel.UUIDFromBytes(userID[:]); err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	return items, rows.Err()
}

func (h GetRequestQueryHandler) assignments(db *gorm.DB, requestID uuid.UUID) ([]AssignmentItem, error) {
	rows, err := db.Raw(`
		SELECT
			id,
			transporter_id,
			status,
			assignment_date,
			response_date,
			comments
		FROM assignments
		WHERE request_id = ? AND deleted_at IS NULL
		ORDER BY assignment_date, created_at
	`, requestID).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]AssignmentItem, 0)
	for rows.Next() {
		var item AssignmentItem
		var id, transporterID uuid.UUID
		var responseDate sql.NullTime

		err = rows.Scan(
			&id,
			&transporterID,
			&item.Status,
			&item.AssignmentDate,
			&responseDate,
			&item.Comments,
		)
		if err != nil {
			return nil, err
		}

		if item.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		if item.TransporterID, err = kernel.UUIDFromBytes(transporterID[:]); err != nil {
			return nil, err
		}
		if responseDate.Valid {
			item.ResponseDate = &responseDate.Time
		}
		items = append(items, item)
	}

	return items, rows.Err()
}

// currentTransporter applies the same rule as assignment.Current: the latest
// accepted assignment wins, ties broken by creation time.
func (h GetRequestQueryHandler) currentTransporter(db *gorm.DB, requestID uuid.UUID) (*kernel.UUID, error) {
	var transporterID uuid.UUID
	err := db.Raw(`
		SELECT transporter_id
		FROM assignments
		WHERE request_id = ? AND status = ? AND deleted_at IS NULL
		ORDER BY assignment_date DESC, created_at DESC
		LIMIT 1
	`, requestID, assignment.Accepted.String()).Row().Scan(&transporterID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	current, err := kernel.UUIDFromBytes(transporterID[:])
	if err != nil {
		return nil, err
	}
	return &current, nil
}

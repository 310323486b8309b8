package queries

import (
	"context"

	"gorm.io/gorm"
)

type ListRequestsQueryHandler struct {
	db *gorm.DB
}

func NewListRequestsQueryHandler(db *gorm.DB) ListRequestsQueryHandler {
	return ListRequestsQueryHandler{db: db}
}

func (h ListRequestsQueryHandler) Handle(ctx context.Context, query ListRequestsQuery) ([]RequestSummary, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	stmt := `
		SELECT` + requestColumns + `
		FROM transport_requests
		WHERE deleted_at IS NULL`
	var args []any
	if status := query.Status(); status != nil {
		stmt += ` AND current_status = ?`
		args = append(args, status.String())
	}
	stmt += `
		ORDER BY created_at DESC, id`

	rows, err := h.db.WithContext(ctx).Raw(stmt, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	summaries := make([]RequestSummary, 0)
	for rows.Next() {
		summary, scanErr := scanRequestSummary(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		summaries = append(summaries, summary)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return summaries, nil
}

package queries

import (
	"context"
	"time"

	"github.com/ArmandoCH85/sistemtransporte/internal/core/domain/model/kernel"
	"github.com/ArmandoCH85/sistemtransporte/internal/core/domain/model/worklog"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type GetWorkLogsQueryHandler struct {
	db *gorm.DB
}

func NewGetWorkLogsQueryHandler(db *gorm.DB) GetWorkLogsQueryHandler {
	return GetWorkLogsQueryHandler{db: db}
}

func (h GetWorkLogsQueryHandler) Handle(ctx context.Context, query GetWorkLogsQuery) ([]GetWorkLogsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			work_date,
			started_at,
			ended_at
		FROM work_logs
		WHERE transporter_id = ?
		ORDER BY work_date DESC
	`, query.TransporterID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	logs := make([]GetWorkLogsQueryResponse, 0)
	for rows.Next() {
		var resp GetWorkLogsQueryResponse
		var id uuid.UUID
		var workDate time.Time

		if err = rows.Scan(&id, &workDate, &resp.StartedAt, &resp.EndedAt); err != nil {
			return nil, err
		}

		if resp.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		resp.WorkDate = worklog.DateOf(workDate.UTC()).String()
		logs = append(logs, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return logs, nil
}

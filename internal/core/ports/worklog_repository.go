package ports

import (
	"context"

	"github.com/ArmandoCH85/sistemtransporte/internal/core/domain/model/kernel"
	"github.com/ArmandoCH85/sistemtransporte/internal/core/domain/model/worklog"
)

// WorkLogRepository persists closed workdays.
type WorkLogRepository interface {
	// AddIfAbsent inserts log unless a log for the same transporter and work
	// date exists. It returns the stored log and whether this call created it.
	// The check and the insert are a single statement backed by a unique
	// constraint, so concurrent callers see exactly one creation.
	AddIfAbsent(ctx context.Context, log *worklog.WorkLog) (*worklog.WorkLog, bool, error)

	// ListByTransporter returns the transporter's logs, newest work date first.
	ListByTransporter(ctx context.Context, transporterID kernel.UUID) ([]*worklog.WorkLog, error)
}

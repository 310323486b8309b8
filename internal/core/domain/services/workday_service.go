package services

import (
	"fmt"
	"time"

	"github.com/ArmandoCH85/sistemtransporte/internal/core/domain/model/kernel"
	"github.com/ArmandoCH85/sistemtransporte/internal/core/domain/model/worklog"
	"github.com/ArmandoCH85/sistemtransporte/internal/pkg/errs"
)

// DefaultWorkdayStart is the synthetic start of every closed workday.
const DefaultWorkdayStart = "08:00"

// WorkdayService computes the work log a transporter closes for the current
// calendar day. The day is taken in the configured location and the start is
// always pinned to the configured time, since clock-in is not tracked.
//
// Uniqueness per transporter and date is not decided here; storage enforces it
// with an insert-if-absent.
type WorkdayService struct {
	loc         *time.Location
	startHour   int
	startMinute int
}

// NewWorkdayService parses start as HH:MM. A nil location means UTC.
func NewWorkdayService(loc *time.Location, start string) (WorkdayService, error) {
	if loc == nil {
		loc = time.UTC
	}
	clock, err := time.Parse("15:04", start)
	if err != nil {
		return WorkdayService{}, errs.NewValueIsInvalidErrorWithCause("workday start", fmt.Errorf("%q: %w", start, err))
	}
	return WorkdayService{
		loc:         loc,
		startHour:   clock.Hour(),
		startMinute: clock.Minute(),
	}, nil
}

// Location returns the location calendar days are resolved in.
func (s WorkdayService) Location() *time.Location {
	return s.loc
}

// CloseForToday builds the candidate log for the day containing now.
func (s WorkdayService) CloseForToday(transporterID kernel.UUID, now time.Time) (*worklog.WorkLog, error) {
	local := now.In(s.loc)
	workDate := worklog.DateOf(local)
	startedAt := workDate.At(s.startHour, s.startMinute, s.loc)

	return worklog.NewWorkLog(transporterID, workDate, startedAt, local)
}

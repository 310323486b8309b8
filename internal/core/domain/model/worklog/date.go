package worklog

import (
	"fmt"
	"time"

	"github.com/ArmandoCH85/sistemtransporte/internal/pkg/errs"
)

const dateLayout = "2006-01-02"

// Date is a calendar date without a time of day or zone.
type Date struct {
	year  int
	month time.Month
	day   int
}

// DateOf returns the calendar date of t in t's own location.
func DateOf(t time.Time) Date {
	y, m, d := t.Date()
	return Date{year: y, month: m, day: d}
}

// ParseDate parses a YYYY-MM-DD string.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return Date{}, errs.NewValueIsInvalidErrorWithCause("work date", fmt.Errorf("%q: %w", s, err))
	}
	return DateOf(t), nil
}

// At returns the instant at hour:minute of the date in loc.
func (d Date) At(hour, minute int, loc *time.Location) time.Time {
	return time.Date(d.year, d.month, d.day, hour, minute, 0, 0, loc)
}

// Time returns midnight UTC of the date. Storage keys work dates by this value.
func (d Date) Time() time.Time {
	return d.At(0, 0, time.UTC)
}

func (d Date) IsZero() bool {
	return d.year == 0 && d.month == 0 && d.day == 0
}

func (d Date) Equal(other Date) bool {
	return d == other
}

func (d Date) String() string {
	return d.Time().Format(dateLayout)
}

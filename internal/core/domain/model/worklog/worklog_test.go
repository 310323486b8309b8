package worklog_test

import (
	"testing"
	"time"

	"github.com/ArmandoCH85/sistemtransporte/internal/core/domain/model/kernel"
	"github.com/ArmandoCH85/sistemtransporte/internal/core/domain/model/worklog"
	"github.com/ArmandoCH85/sistemtransporte/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDate(t *testing.T) {
	lima, err := time.LoadLocation("America/Lima")
	require.NoError(t, err)

	t.Run("uses the location of the instant", func(t *testing.T) {
		// 02:30 UTC on the 24th is still the 23rd in Lima.
		instant := time.Date(2026, 2, 24, 2, 30, 0, 0, time.UTC)

		assert.Equal(t, "2026-02-24", worklog.DateOf(instant).String())
		assert.Equal(t, "2026-02-23", worklog.DateOf(instant.In(lima)).String())
	})

	t.Run("At pins the time of day", func(t *testing.T) {
		d, err := worklog.ParseDate("2026-02-23")
		require.NoError(t, err)

		start := d.At(8, 0, lima)
		assert.Equal(t, time.Date(2026, 2, 23, 8, 0, 0, 0, lima), start)
		assert.Equal(t, time.Date(2026, 2, 23, 0, 0, 0, 0, time.UTC), d.Time())
	})

	t.Run("rejects malformed input", func(t *testing.T) {
		_, err := worklog.ParseDate("23/02/2026")
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("zero and equality", func(t *testing.T) {
		var zero worklog.Date
		d, _ := worklog.ParseDate("2026-02-23")

		assert.True(t, zero.IsZero())
		assert.False(t, d.IsZero())
		assert.True(t, d.Equal(worklog.DateOf(time.Date(2026, 2, 23, 23, 59, 0, 0, time.UTC))))
	})
}

func TestNewWorkLog(t *testing.T) {
	d, _ := worklog.ParseDate("2026-02-23")
	start := d.At(8, 0, time.UTC)
	end := d.At(18, 17, time.UTC)

	t.Run("valid", func(t *testing.T) {
		transporterID := kernel.NewUUID()

		w, err := worklog.NewWorkLog(transporterID, d, start, end)

		require.NoError(t, err)
		require.NoError(t, w.Validate())
		assert.True(t, w.TransporterID().IsEqual(transporterID))
		assert.Equal(t, d, w.WorkDate())
		assert.Equal(t, start, w.StartedAt())
		assert.Equal(t, end, w.EndedAt())
	})

	t.Run("requires transporter and date", func(t *testing.T) {
		_, err := worklog.NewWorkLog(kernel.UUID{}, worklog.Date{}, start, end)

		require.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("zero value is not constructed", func(t *testing.T) {
		var w *worklog.WorkLog
		require.ErrorIs(t, w.Validate(), worklog.ErrWorkLogIsNotConstructed)
	})
}

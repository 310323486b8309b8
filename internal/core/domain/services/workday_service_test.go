package services_test

import (
	"testing"
	"time"

	"github.com/ArmandoCH85/sistemtransporte/internal/core/domain/model/kernel"
	"github.com/ArmandoCH85/sistemtransporte/internal/core/domain/services"
	"github.com/ArmandoCH85/sistemtransporte/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWorkdayService_CloseForToday(t *testing.T) {
	lima, err := time.LoadLocation("America/Lima")
	require.NoError(t, err)
	svc, err := services.NewWorkdayService(lima, services.DefaultWorkdayStart)
	require.NoError(t, err)
	transporterID := kernel.NewUUID()

	t.Run("start is pinned to 08:00 local", func(t *testing.T) {
		closedAt := time.Date(2026, 2, 23, 18, 17, 0, 0, lima)

		log, err := svc.CloseForToday(transporterID, closedAt)

		require.NoError(t, err)
		assert.Equal(t, "2026-02-23", log.WorkDate().String())
		assert.Equal(t, time.Date(2026, 2, 23, 8, 0, 0, 0, lima), log.StartedAt())
		assert.True(t, closedAt.Equal(log.EndedAt()))
	})

	t.Run("date is resolved in the configured zone", func(t *testing.T) {
		// 03:00 UTC on the 24th is 22:00 on the 23rd in Lima.
		log, err := svc.CloseForToday(transporterID, time.Date(2026, 2, 24, 3, 0, 0, 0, time.UTC))

		require.NoError(t, err)
		assert.Equal(t, "2026-02-23", log.WorkDate().String())
		assert.True(t, time.Date(2026, 2, 23, 8, 0, 0, 0, lima).Equal(log.StartedAt()))
	})

	t.Run("start does not depend on now", func(t *testing.T) {
		early, err := svc.CloseForToday(transporterID, time.Date(2026, 2, 23, 6, 0, 0, 0, lima))
		require.NoError(t, err)
		late, err := svc.CloseForToday(transporterID, time.Date(2026, 2, 23, 23, 59, 0, 0, lima))
		require.NoError(t, err)

		assert.Equal(t, early.StartedAt(), late.StartedAt())
		assert.Equal(t, early.WorkDate(), late.WorkDate())
	})

	t.Run("invalid transporter", func(t *testing.T) {
		_, err := svc.CloseForToday(kernel.UUID{}, time.Now())
		require.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
	})
}

func TestNewWorkdayService(t *testing.T) {
	_, err := services.NewWorkdayService(nil, "8am")
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)

	svc, err := services.NewWorkdayService(nil, "07:30")
	require.NoError(t, err)
	assert.Equal(t, time.UTC, svc.Location())

	log, err := svc.CloseForToday(kernel.NewUUID(), time.Date(2026, 2, 23, 12, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 2, 23, 7, 30, 0, 0, time.UTC), log.StartedAt())
}

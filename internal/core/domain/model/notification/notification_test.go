package notification_test

import (
	"testing"
	"time"

	"github.com/ArmandoCH85/sistemtransporte/internal/core/domain/model/kernel"
	"github.com/ArmandoCH85/sistemtransporte/internal/core/domain/model/notification"
	"github.com/ArmandoCH85/sistemtransporte/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewNotification(t *testing.T) {
	now := time.Date(2026, 2, 23, 10, 0, 0, 0, time.UTC)
	ev := notification.Event{
		Type:        notification.StatusChange,
		RequestID:   kernel.NewUUID(),
		RecipientID: kernel.NewUUID(),
		Message:     "request accepted",
		OccurredAt:  now,
	}

	t.Run("queues a pending row", func(t *testing.T) {
		n, err := notification.NewNotification(ev)

		require.NoError(t, err)
		assert.Equal(t, notification.StatusChange, n.Type())
		assert.Equal(t, "request accepted", n.Message())
		assert.Equal(t, notification.DefaultChannels, n.Channels())
		assert.False(t, n.Sent())
		assert.Nil(t, n.SentAt())
		assert.Equal(t, now, n.CreatedAt())
	})

	t.Run("rejects unknown types and empty messages", func(t *testing.T) {
		bad := ev
		bad.Type = "sms_blast"
		bad.Message = ""

		_, err := notification.NewNotification(bad)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestNotification_MarkSent(t *testing.T) {
	n, err := notification.NewNotification(notification.Event{
		Type:        notification.Completion,
		RequestID:   kernel.NewUUID(),
		RecipientID: kernel.NewUUID(),
		Message:     "done",
	})
	require.NoError(t, err)

	first := time.Date(2026, 2, 23, 10, 0, 0, 0, time.UTC)
	n.MarkSent(first)
	n.MarkSent(first.Add(time.Minute))

	assert.True(t, n.Sent())
	require.NotNil(t, n.SentAt())
	assert.Equal(t, first, *n.SentAt())
}

package jobs

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/ArmandoCH85/sistemtransporte/internal/core/application/usecases/commands"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockDispatchHandler struct {
	mock.Mock
}

func (m *MockDispatchHandler) Handle(ctx context.Context, command commands.DispatchNotificationsCommand) (int, error) {
	args := m.Called(ctx, command)
	return args.Int(0), args.Error(1)
}

func newTestLogger(buf *bytes.Buffer) *slog.Logger {
	return slog.New(slog.NewJSONHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func TestNotificationDispatchJob_RunOnce_LogsSentCount(t *testing.T) {
	var buf bytes.Buffer
	handler := &MockDispatchHandler{}
	handler.On("Handle", mock.Anything, mock.MatchedBy(func(cmd commands.DispatchNotificationsCommand) bool {
		return cmd.BatchSize() == 25
	})).Return(3, nil).Once()

	job := NewNotificationDispatchJob(handler, DefaultDispatchSchedule, 25, newTestLogger(&buf))
	job.RunOnce(context.Background())

	handler.AssertExpectations(t)
	assert.Contains(t, buf.String(), `"msg":"Notifications dispatched"`)
	assert.Contains(t, buf.String(), `"sent":3`)
	assert.Contains(t, buf.String(), `"component":"notification_dispatch_job"`)
}

func TestNotificationDispatchJob_RunOnce_NothingToSendIsQuiet(t *testing.T) {
	var buf bytes.Buffer
	handler := &MockDispatchHandler{}
	handler.On("Handle", mock.Anything, mock.Anything).Return(0, nil).Once()

	job := NewNotificationDispatchJob(handler, DefaultDispatchSchedule, 10, newTestLogger(&buf))
	job.RunOnce(context.Background())

	handler.AssertExpectations(t)
	assert.Empty(t, buf.String())
}

func TestNotificationDispatchJob_RunOnce_LogsFailure(t *testing.T) {
	var buf bytes.Buffer
	handler := &MockDispatchHandler{}
	handler.On("Handle", mock.Anything, mock.Anything).Return(1, errors.New("smtp unavailable")).Once()

	job := NewNotificationDispatchJob(handler, DefaultDispatchSchedule, 10, newTestLogger(&buf))
	job.RunOnce(context.Background())

	handler.AssertExpectations(t)
	assert.Contains(t, buf.String(), `"level":"ERROR"`)
	assert.Contains(t, buf.String(), "smtp unavailable")
}

func TestNotificationDispatchJob_Start_RejectsInvalidSchedule(t *testing.T) {
	var buf bytes.Buffer
	job := NewNotificationDispatchJob(&MockDispatchHandler{}, "not a cron spec", 10, newTestLogger(&buf))

	require.Error(t, job.Start())
}

func TestNotificationDispatchJob_Start_RejectsInvalidBatchSize(t *testing.T) {
	var buf bytes.Buffer
	job := NewNotificationDispatchJob(&MockDispatchHandler{}, DefaultDispatchSchedule, 0, newTestLogger(&buf))

	require.Error(t, job.Start())
}

func TestJobManager_StartAllStopAll(t *testing.T) {
	var buf bytes.Buffer
	handler := &MockDispatchHandler{}
	handler.On("Handle", mock.Anything, mock.Anything).Return(0, nil).Maybe()

	manager := NewJobManager(handler, "@every 1h", 10, newTestLogger(&buf))
	require.NoError(t, manager.StartAll())
	manager.StopAll()

	assert.Contains(t, buf.String(), "Notification dispatch job started")
	assert.Contains(t, buf.String(), "Notification dispatch job stopped")
}

func TestJobManager_StartAll_WrapsJobError(t *testing.T) {
	var buf bytes.Buffer
	manager := NewJobManager(&MockDispatchHandler{}, "bad", 10, newTestLogger(&buf))

	err := manager.StartAll()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "notification dispatch job")
}

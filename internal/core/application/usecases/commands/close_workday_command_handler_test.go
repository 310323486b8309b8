package commands_test

import (
	"errors"
	"testing"
	"time"

	"github.com/ArmandoCH85/sistemtransporte/internal/core/application/usecases/commands"
	"github.com/ArmandoCH85/sistemtransporte/internal/core/domain/model/kernel"
	"github.com/ArmandoCH85/sistemtransporte/internal/core/domain/model/worklog"
	"github.com/ArmandoCH85/sistemtransporte/internal/core/domain/services"
	"github.com/ArmandoCH85/sistemtransporte/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func limaWorkday(t *testing.T) services.WorkdayService {
	t.Helper()
	loc, err := time.LoadLocation("America/Lima")
	require.NoError(t, err)
	workday, err := services.NewWorkdayService(loc, services.DefaultWorkdayStart)
	require.NoError(t, err)
	return workday
}

func TestNewCloseWorkdayCommand_RequiresNow(t *testing.T) {
	_, err := commands.NewCloseWorkdayCommand(kernel.NewUUID(), time.Time{})

	require.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestCloseWorkdayCommandHandler_Handle_Created(t *testing.T) {
	ctx := t.Context()
	transporterID := kernel.NewUUID()
	// 18:17 local in Lima.
	now := time.Date(2026, 2, 23, 23, 17, 0, 0, time.UTC)
	cmd, err := commands.NewCloseWorkdayCommand(transporterID, now)
	require.NoError(t, err)

	date, _ := worklog.ParseDate("2026-02-23")
	stored, err := worklog.RestoreWorkLog(kernel.NewUUID(), transporterID, date, now, now)
	require.NoError(t, err)

	var candidate *worklog.WorkLog
	repo := new(MockWorkLogRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("WorkLogRepository").Return(repo).Once(),
		repo.On("AddIfAbsent", ctx, mock.MatchedBy(func(w *worklog.WorkLog) bool {
			candidate = w
			return true
		})).Return(stored, true, nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockWorkLogUoWFactory)
	factory.On("Create").Return(uow).Once()

	result, err := commands.NewCloseWorkdayCommandHandler(factory, limaWorkday(t)).Handle(ctx, cmd)

	require.NoError(t, err)
	assert.True(t, result.Created)
	assert.Same(t, stored, result.Log)
	require.NotNil(t, candidate)
	assert.Equal(t, transporterID, candidate.TransporterID())
	assert.Equal(t, "2026-02-23", candidate.WorkDate().String())
	assert.Equal(t, 8, candidate.StartedAt().Hour())
	assert.Equal(t, 0, candidate.StartedAt().Minute())
	assert.True(t, candidate.EndedAt().Equal(now))
	uow.AssertExpectations(t)
	repo.AssertExpectations(t)
}

func TestCloseWorkdayCommandHandler_Handle_AlreadyClosed(t *testing.T) {
	ctx := t.Context()
	transporterID := kernel.NewUUID()
	now := time.Date(2026, 2, 23, 23, 17, 0, 0, time.UTC)
	cmd, _ := commands.NewCloseWorkdayCommand(transporterID, now)

	date, _ := worklog.ParseDate("2026-02-23")
	existing, err := worklog.RestoreWorkLog(kernel.NewUUID(), transporterID, date,
		now.Add(-10*time.Hour), now.Add(-time.Hour))
	require.NoError(t, err)

	repo := new(MockWorkLogRepository)
	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("WorkLogRepository").Return(repo).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()
	repo.On("AddIfAbsent", ctx, mock.Anything).Return(existing, false, nil).Once()

	factory := new(MockWorkLogUoWFactory)
	factory.On("Create").Return(uow).Once()

	result, err := commands.NewCloseWorkdayCommandHandler(factory, limaWorkday(t)).Handle(ctx, cmd)

	require.NoError(t, err)
	assert.False(t, result.Created)
	assert.Same(t, existing, result.Log)
}

func TestCloseWorkdayCommandHandler_Handle_StorageError(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewCloseWorkdayCommand(kernel.NewUUID(), fixedNow)

	repo := new(MockWorkLogRepository)
	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("WorkLogRepository").Return(repo).Once()
	uow.On("Rollback", ctx).Return(nil).Once()
	repo.On("AddIfAbsent", ctx, mock.Anything).Return(nil, false, errors.New("db down")).Once()

	factory := new(MockWorkLogUoWFactory)
	factory.On("Create").Return(uow).Once()

	_, err := commands.NewCloseWorkdayCommandHandler(factory, limaWorkday(t)).Handle(ctx, cmd)

	require.EqualError(t, err, "db down")
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}

package commands_test

import (
	"testing"
	"time"

	"github.com/ArmandoCH85/sistemtransporte/internal/core/application/usecases/commands"
	"github.com/ArmandoCH85/sistemtransporte/internal/core/domain/model/assignment"
	"github.com/ArmandoCH85/sistemtransporte/internal/core/domain/model/kernel"
	"github.com/ArmandoCH85/sistemtransporte/internal/core/domain/model/notification"
	"github.com/ArmandoCH85/sistemtransporte/internal/core/domain/model/request"
	"github.com/ArmandoCH85/sistemtransporte/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestRescheduleRequestCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	req := storedRequest(t, request.Pending)
	transporterID := kernel.NewUUID()
	newDate := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	cmd, err := commands.NewRescheduleRequestCommand(req.ID(), transporterID, newDate, "traffic")
	require.NoError(t, err)

	requestRepo := new(MockRequestRepository)
	assignmentRepo := new(MockAssignmentRepository)
	historyRepo := new(MockStatusHistoryRepository)
	notifier := new(MockNotifier)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("RequestRepository").Return(requestRepo).Once(),
		uow.On("AssignmentRepository").Return(assignmentRepo).Once(),
		requestRepo.On("GetForUpdate", ctx, req.ID()).Return(req, nil).Once(),
		assignmentRepo.On("ListByRequest", ctx, req.ID()).Return([]*assignment.Assignment{}, nil).Once(),
		requestRepo.On("Update", ctx, req).Return(nil).Once(),
		assignmentRepo.On("Add", ctx, mock.MatchedBy(func(a *assignment.Assignment) bool {
			return a.Status() == assignment.Rescheduled && a.Comments() == "traffic"
		})).Return(nil).Once(),
		uow.On("StatusHistoryRepository").Return(historyRepo).Once(),
		historyRepo.On("Add", ctx, mock.Anything).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		notifier.On("Notify", ctx, mock.MatchedBy(func(ev notification.Event) bool {
			return ev.Type == notification.StatusChange
		})).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockRequestUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewRescheduleRequestCommandHandler(factory, fixedClock(), notifier, nil)
	updated, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, request.Rescheduled, updated.Status())
	assert.Equal(t, newDate, *updated.RescheduledDate())
	assert.Equal(t, "traffic", updated.RescheduleComments())
	uow.AssertExpectations(t)
	assignmentRepo.AssertExpectations(t)
	notifier.AssertExpectations(t)
}

func TestRescheduleRequestCommandHandler_Handle_NotCurrentAssignee(t *testing.T) {
	ctx := t.Context()
	req := storedRequest(t, request.Accepted)
	holder := acceptedBy(t, req.ID(), kernel.NewUUID())
	cmd, _ := commands.NewRescheduleRequestCommand(req.ID(), kernel.NewUUID(), fixedNow.Add(time24h), "")

	requestRepo := new(MockRequestRepository)
	assignmentRepo := new(MockAssignmentRepository)
	uow := new(MockUoW)

	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("RequestRepository").Return(requestRepo).Once()
	uow.On("AssignmentRepository").Return(assignmentRepo).Once()
	uow.On("Rollback", ctx).Return(nil).Once()
	requestRepo.On("GetForUpdate", ctx, req.ID()).Return(req, nil).Once()
	assignmentRepo.On("ListByRequest", ctx, req.ID()).Return([]*assignment.Assignment{holder}, nil).Once()

	factory := new(MockRequestUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewRescheduleRequestCommandHandler(factory, fixedClock(), nil, nil)
	_, err := handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, services.ErrNotCurrentAssignee)
	requestRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}

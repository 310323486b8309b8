package commands_test

import (
	"testing"

	"github.com/ArmandoCH85/sistemtransporte/internal/core/application/usecases/commands"
	"github.com/ArmandoCH85/sistemtransporte/internal/core/domain/model/assignment"
	"github.com/ArmandoCH85/sistemtransporte/internal/core/domain/model/kernel"
	"github.com/ArmandoCH85/sistemtransporte/internal/core/domain/model/notification"
	"github.com/ArmandoCH85/sistemtransporte/internal/core/domain/model/request"
	"github.com/ArmandoCH85/sistemtransporte/internal/core/domain/services"
	"github.com/ArmandoCH85/sistemtransporte/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCompleteRequestCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	req := storedRequest(t, request.Accepted)
	transporterID := kernel.NewUUID()
	current := acceptedBy(t, req.ID(), transporterID)
	cmd, err := commands.NewCompleteRequestCommand(req.ID(), transporterID)
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
		assignmentRepo.On("ListByRequest", ctx, req.ID()).Return([]*assignment.Assignment{current}, nil).Once(),
		requestRepo.On("Update", ctx, req).Return(nil).Once(),
		assignmentRepo.On("Update", ctx, current).Return(nil).Once(),
		uow.On("StatusHistoryRepository").Return(historyRepo).Once(),
		historyRepo.On("Add", ctx, mock.Anything).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		notifier.On("Notify", ctx, mock.MatchedBy(func(ev notification.Event) bool {
			return ev.Type == notification.Completion
		})).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockRequestUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCompleteRequestCommandHandler(factory, fixedClock(), notifier, nil)
	updated, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, request.Completed, updated.Status())
	assert.Equal(t, assignment.Completed, current.Status())
	uow.AssertExpectations(t)
	requestRepo.AssertExpectations(t)
	assignmentRepo.AssertExpectations(t)
	notifier.AssertExpectations(t)
}

func TestCompleteRequestCommandHandler_Handle_Rejections(t *testing.T) {
	tests := []struct {
		name    string
		status  request.Status
		holder  bool
		wantErr error
	}{
		{name: "other transporter", status: request.Accepted, holder: false, wantErr: services.ErrNotCurrentAssignee},
		{name: "still pending", status: request.Pending, holder: true, wantErr: errs.ErrInvalidTransition},
		{name: "already failed", status: request.Failed, holder: true, wantErr: errs.ErrInvalidTransition},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := t.Context()
			req := storedRequest(t, tt.status)
			transporterID := kernel.NewUUID()
			holderID := kernel.NewUUID()
			if tt.holder {
				holderID = transporterID
			}
			cmd, _ := commands.NewCompleteRequestCommand(req.ID(), transporterID)

			requestRepo := new(MockRequestRepository)
			assignmentRepo := new(MockAssignmentRepository)
			uow := new(MockUoW)
			uow.On("Begin", ctx).Return(nil).Once()
			uow.On("RequestRepository").Return(requestRepo).Once()
			uow.On("AssignmentRepository").Return(assignmentRepo).Once()
			uow.On("Rollback", ctx).Return(nil).Once()
			requestRepo.On("GetForUpdate", ctx, req.ID()).Return(req, nil).Once()
			assignmentRepo.On("ListByRequest", ctx, req.ID()).
				Return([]*assignment.Assignment{acceptedBy(t, req.ID(), holderID)}, nil).Once()

			factory := new(MockRequestUoWFactory)
			factory.On("Create").Return(uow).Once()

			_, err := commands.NewCompleteRequestCommandHandler(factory, fixedClock(), nil, nil).Handle(ctx, cmd)

			require.ErrorIs(t, err, tt.wantErr)
			assert.Equal(t, tt.status, req.Status())
			requestRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
		})
	}
}

package commands_test

import (
	"errors"
	"testing"

	"github.com/ArmandoCH85/sistemtransporte/internal/core/application/usecases/commands"
	"github.com/ArmandoCH85/sistemtransporte/internal/core/domain/model/kernel"
	"github.com/ArmandoCH85/sistemtransporte/internal/core/domain/model/notification"
	"github.com/ArmandoCH85/sistemtransporte/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func pendingNotification(t *testing.T) *notification.Notification {
	t.Helper()
	n, err := notification.NewNotification(notification.Event{
		Type:        notification.StatusChange,
		RequestID:   kernel.NewUUID(),
		RecipientID: kernel.NewUUID(),
		Message:     "status changed",
		OccurredAt:  fixedNow,
	})
	require.NoError(t, err)
	return n
}

func TestNewDispatchNotificationsCommand_BatchSize(t *testing.T) {
	for _, size := range []int{0, -1, 1001} {
		_, err := commands.NewDispatchNotificationsCommand(size)
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange, "size %d", size)
	}

	cmd, err := commands.NewDispatchNotificationsCommand(50)
	require.NoError(t, err)
	assert.Equal(t, 50, cmd.BatchSize())
}

func TestDispatchNotificationsCommandHandler_Handle_SendsAndMarks(t *testing.T) {
	ctx := t.Context()
	first := pendingNotification(t)
	second := pendingNotification(t)
	cmd, _ := commands.NewDispatchNotificationsCommand(10)

	repo := new(MockNotificationRepository)
	sender := new(MockSender)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("NotificationRepository").Return(repo).Once(),
		repo.On("ListPending", ctx, 10).Return([]*notification.Notification{first, second}, nil).Once(),
		sender.On("Send", ctx, first).Return(nil).Once(),
		repo.On("MarkSent", ctx, first).Return(nil).Once(),
		sender.On("Send", ctx, second).Return(nil).Once(),
		repo.On("MarkSent", ctx, second).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockNotificationUoWFactory)
	factory.On("Create").Return(uow).Once()

	sent, err := commands.NewDispatchNotificationsCommandHandler(factory, sender, fixedClock()).Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, 2, sent)
	assert.True(t, first.Sent())
	require.NotNil(t, second.SentAt())
	assert.Equal(t, fixedNow, *second.SentAt())
	uow.AssertExpectations(t)
	repo.AssertExpectations(t)
	sender.AssertExpectations(t)
}

func TestDispatchNotificationsCommandHandler_Handle_FailedSendStaysPending(t *testing.T) {
	ctx := t.Context()
	broken := pendingNotification(t)
	fine := pendingNotification(t)
	cmd, _ := commands.NewDispatchNotificationsCommand(10)

	repo := new(MockNotificationRepository)
	sender := new(MockSender)
	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("NotificationRepository").Return(repo).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()
	repo.On("ListPending", ctx, 10).Return([]*notification.Notification{broken, fine}, nil).Once()
	repo.On("MarkSent", ctx, fine).Return(nil).Once()
	sender.On("Send", ctx, broken).Return(errors.New("smtp unavailable")).Once()
	sender.On("Send", ctx, fine).Return(nil).Once()

	factory := new(MockNotificationUoWFactory)
	factory.On("Create").Return(uow).Once()

	sent, err := commands.NewDispatchNotificationsCommandHandler(factory, sender, fixedClock()).Handle(ctx, cmd)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "smtp unavailable")
	assert.Equal(t, 1, sent)
	assert.False(t, broken.Sent())
	assert.True(t, fine.Sent())
	repo.AssertNotCalled(t, "MarkSent", ctx, broken)
	uow.AssertExpectations(t)
}

func TestDispatchNotificationsCommandHandler_Handle_Empty(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewDispatchNotificationsCommand(5)

	repo := new(MockNotificationRepository)
	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("NotificationRepository").Return(repo).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()
	repo.On("ListPending", ctx, 5).Return(nil, nil).Once()

	factory := new(MockNotificationUoWFactory)
	factory.On("Create").Return(uow).Once()
	sender := new(MockSender)

	sent, err := commands.NewDispatchNotificationsCommandHandler(factory, sender, fixedClock()).Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Zero(t, sent)
	sender.AssertNotCalled(t, "Send", mock.Anything, mock.Anything)
}

package commands_test

import (
	"testing"
	"time"

	"github.com/ArmandoCH85/sistemtransporte/internal/core/application/usecases/commands"
	"github.com/ArmandoCH85/sistemtransporte/internal/core/domain/model/kernel"
	"github.com/ArmandoCH85/sistemtransporte/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCreateRequestCommand_AssignsID(t *testing.T) {
	requesterID := kernel.NewUUID()

	first, err := commands.NewCreateRequestCommand(requesterID, testDetails(t))
	require.NoError(t, err)
	second, err := commands.NewCreateRequestCommand(requesterID, testDetails(t))
	require.NoError(t, err)

	assert.Equal(t, requesterID, first.RequesterID())
	assert.NoError(t, first.RequestID().Validate())
	assert.False(t, first.RequestID().IsEqual(second.RequestID()))
	assert.NoError(t, first.Validate())
}

func TestNewCreateRequestCommand_InvalidRequester(t *testing.T) {
	_, err := commands.NewCreateRequestCommand(kernel.UUID{}, testDetails(t))

	require.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestNewAcceptRequestCommand_InvalidIDs(t *testing.T) {
	_, err := commands.NewAcceptRequestCommand(kernel.UUID{}, kernel.NewUUID())
	require.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)

	_, err = commands.NewAcceptRequestCommand(kernel.NewUUID(), kernel.UUID{})
	require.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestNewRescheduleRequestCommand_RequiresDate(t *testing.T) {
	_, err := commands.NewRescheduleRequestCommand(kernel.NewUUID(), kernel.NewUUID(), time.Time{}, "")
	require.ErrorIs(t, err, errs.ErrValueIsRequired)

	date := fixedNow.Add(48 * time.Hour)
	cmd, err := commands.NewRescheduleRequestCommand(kernel.NewUUID(), kernel.NewUUID(), date, "client away")
	require.NoError(t, err)
	assert.Equal(t, date, cmd.NewDate())
	assert.Equal(t, "client away", cmd.Comments())
}

func TestNewFailRequestCommand_RequiresReason(t *testing.T) {
	_, err := commands.NewFailRequestCommand(kernel.NewUUID(), kernel.NewUUID(), "  ", "img1")

	require.ErrorIs(t, err, errs.ErrValueIsRequired)
	assert.Contains(t, err.Error(), "reason")
}

func TestNewDeleteRequestCommand_Fields(t *testing.T) {
	requestID, actorID := kernel.NewUUID(), kernel.NewUUID()

	cmd, err := commands.NewDeleteRequestCommand(requestID, actorID, true)

	require.NoError(t, err)
	assert.Equal(t, requestID, cmd.RequestID())
	assert.Equal(t, actorID, cmd.ActorID())
	assert.True(t, cmd.Privileged())
}

func TestCommands_ZeroValueIsNotConstructed(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want error
	}{
		{"create", commands.CreateRequestCommand{}.Validate(), commands.ErrCreateRequestCommandIsNotConstructed},
		{"update", commands.UpdateRequestDetailsCommand{}.Validate(), commands.ErrUpdateRequestDetailsCommandIsNotConstructed},
		{"accept", commands.AcceptRequestCommand{}.Validate(), commands.ErrAcceptRequestCommandIsNotConstructed},
		{"reschedule", commands.RescheduleRequestCommand{}.Validate(), commands.ErrRescheduleRequestCommandIsNotConstructed},
		{"complete", commands.CompleteRequestCommand{}.Validate(), commands.ErrCompleteRequestCommandIsNotConstructed},
		{"fail", commands.FailRequestCommand{}.Validate(), commands.ErrFailRequestCommandIsNotConstructed},
		{"delete", commands.DeleteRequestCommand{}.Validate(), commands.ErrDeleteRequestCommandIsNotConstructed},
		{"close workday", commands.CloseWorkdayCommand{}.Validate(), commands.ErrCloseWorkdayCommandIsNotConstructed},
		{"dispatch", commands.DispatchNotificationsCommand{}.Validate(), commands.ErrDispatchNotificationsCommandIsNotConstructed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.ErrorIs(t, tt.err, tt.want)
		})
	}
}

package commands

import (
	"context"

	"github.com/ArmandoCH85/sistemtransporte/internal/core/domain/model/worklog"
	"github.com/ArmandoCH85/sistemtransporte/internal/core/domain/services"
)

// CloseWorkdayResult reports whether this call created the log. Log is the
// stored row either way.
type CloseWorkdayResult struct {
	Created bool
	Log     *worklog.WorkLog
}

// CloseWorkdayCommandHandler closes a workday at most once per transporter and
// date. A second close on the same date returns the existing log unchanged;
// duplicates are never reported as errors.
//
// Example:
//
//	cmd, _ := NewCloseWorkdayCommand(transporterID, clock.Now())
//	result, err := handler.Handle(ctx, cmd)
//	if err == nil && !result.Created {
//	    // already closed today
//	}
type CloseWorkdayCommandHandler struct {
	uowFactory WorkLogUoWFactory
	workday    services.WorkdayService
}

func NewCloseWorkdayCommandHandler(uowFactory WorkLogUoWFactory, workday services.WorkdayService) CloseWorkdayCommandHandler {
	return CloseWorkdayCommandHandler{
		uowFactory: uowFactory,
		workday:    workday,
	}
}

func (h CloseWorkdayCommandHandler) Handle(ctx context.Context, command CloseWorkdayCommand) (CloseWorkdayResult, error) {
	if err := command.Validate(); err != nil {
		return CloseWorkdayResult{}, err
	}

	candidate, err := h.workday.CloseForToday(command.TransporterID(), command.Now())
	if err != nil {
		return CloseWorkdayResult{}, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return CloseWorkdayResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	stored, created, err := uow.WorkLogRepository().AddIfAbsent(ctx, candidate)
	if err != nil {
		return CloseWorkdayResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return CloseWorkdayResult{}, err
	}

	return CloseWorkdayResult{Created: created, Log: stored}, nil
}

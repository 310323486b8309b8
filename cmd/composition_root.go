package cmd

import (
	"log/slog"

	httpin "github.com/ArmandoCH85/sistemtransporte/internal/adapters/in/http"
	"github.com/ArmandoCH85/sistemtransporte/internal/adapters/out/notify"
	"github.com/ArmandoCH85/sistemtransporte/internal/adapters/out/postgres"
	"github.com/ArmandoCH85/sistemtransporte/internal/core/application/usecases/commands"
	"github.com/ArmandoCH85/sistemtransporte/internal/core/application/usecases/queries"
	"github.com/ArmandoCH85/sistemtransporte/internal/core/domain/services"
	"github.com/ArmandoCH85/sistemtransporte/internal/core/ports"
	"github.com/ArmandoCH85/sistemtransporte/internal/jobs"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

type CompositionRoot struct {
	cfg        Config
	gormDB     *gorm.DB
	uowFactory *postgres.GormUnitOfWorkFactory
	clock      ports.Clock
	logger     *slog.Logger
	workday    services.WorkdayService
	notifier   ports.Notifier
	sender     ports.Sender
}

func NewCompositionRoot(cfg Config, gormDB *gorm.DB, clock ports.Clock, logger *slog.Logger) (*CompositionRoot, error) {
	loc, err := cfg.Location()
	if err != nil {
		return nil, err
	}

	workday, err := services.NewWorkdayService(loc, cfg.WorkdayStart)
	if err != nil {
		return nil, err
	}

	uowFactory := postgres.NewGormUnitOfWorkFactory(gormDB)
	return &CompositionRoot{
		cfg:        cfg,
		gormDB:     gormDB,
		uowFactory: uowFactory,
		clock:      clock,
		logger:     logger,
		workday:    workday,
		notifier:   notify.NewOutboxNotifier(uowFactory),
		sender:     notify.NewLogSender(logger),
	}, nil
}

func (c *CompositionRoot) requestUoWFactory() commands.RequestUoWFactory {
	return FuncRequestUoWFactory(func() commands.RequestUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateCreateRequestCommandHandler() commands.CreateRequestCommandHandler {
	return commands.NewCreateRequestCommandHandler(c.requestUoWFactory(), c.clock, c.notifier, c.logger)
}

func (c *CompositionRoot) CreateUpdateRequestDetailsCommandHandler() commands.UpdateRequestDetailsCommandHandler {
	return commands.NewUpdateRequestDetailsCommandHandler(c.requestUoWFactory(), c.clock)
}

func (c *CompositionRoot) CreateAcceptRequestCommandHandler() commands.AcceptRequestCommandHandler {
	return commands.NewAcceptRequestCommandHandler(c.requestUoWFactory(), c.clock, c.notifier, c.logger)
}

func (c *CompositionRoot) CreateRescheduleRequestCommandHandler() commands.RescheduleRequestCommandHandler {
	return commands.NewRescheduleRequestCommandHandler(c.requestUoWFactory(), c.clock, c.notifier, c.logger)
}

func (c *CompositionRoot) CreateCompleteRequestCommandHandler() commands.CompleteRequestCommandHandler {
	return commands.NewCompleteRequestCommandHandler(c.requestUoWFactory(), c.clock, c.notifier, c.logger)
}

func (c *CompositionRoot) CreateFailRequestCommandHandler() commands.FailRequestCommandHandler {
	return commands.NewFailRequestCommandHandler(c.requestUoWFactory(), c.clock, c.notifier, c.logger)
}

func (c *CompositionRoot) CreateDeleteRequestCommandHandler() commands.DeleteRequestCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewDeleteRequestCommandHandler(f)
}

func (c *CompositionRoot) CreateCloseWorkdayCommandHandler() commands.CloseWorkdayCommandHandler {
	var f commands.WorkLogUoWFactory = FuncWorkLogUoWFactory(func() commands.WorkLogUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCloseWorkdayCommandHandler(f, c.workday)
}

func (c *CompositionRoot) CreateDispatchNotificationsCommandHandler() commands.DispatchNotificationsCommandHandler {
	var f commands.NotificationUoWFactory = FuncNotificationUoWFactory(func() commands.NotificationUoW {
		return c.uowFactory.Create()
	})
	return commands.NewDispatchNotificationsCommandHandler(f, c.sender, c.clock)
}

func (c *CompositionRoot) CreateGetRequestQueryHandler() queries.GetRequestQueryHandler {
	return queries.NewGetRequestQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListRequestsQueryHandler() queries.ListRequestsQueryHandler {
	return queries.NewListRequestsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetWorkLogsQueryHandler() queries.GetWorkLogsQueryHandler {
	return queries.NewGetWorkLogsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateHTTPServer() (*echo.Echo, error) {
	server := httpin.NewServer(httpin.Handlers{
		CreateRequest:        c.CreateCreateRequestCommandHandler(),
		UpdateRequestDetails: c.CreateUpdateRequestDetailsCommandHandler(),
		AcceptRequest:        c.CreateAcceptRequestCommandHandler(),
		RescheduleRequest:    c.CreateRescheduleRequestCommandHandler(),
		CompleteRequest:      c.CreateCompleteRequestCommandHandler(),
		FailRequest:          c.CreateFailRequestCommandHandler(),
		DeleteRequest:        c.CreateDeleteRequestCommandHandler(),
		CloseWorkday:         c.CreateCloseWorkdayCommandHandler(),
		GetRequest:           c.CreateGetRequestQueryHandler(),
		ListRequests:         c.CreateListRequestsQueryHandler(),
		GetWorkLogs:          c.CreateGetWorkLogsQueryHandler(),
	}, c.clock)

	return httpin.NewRouter(server, httpin.Config{
		RateLimit: c.cfg.HTTPRateLimit,
		LogLevel:  c.cfg.EchoLogLevel(),
	}, c.logger)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(
		c.CreateDispatchNotificationsCommandHandler(),
		c.cfg.NotifySchedule,
		c.cfg.NotifyBatchSize,
		c.logger,
	)
}

type FuncRequestUoWFactory func() commands.RequestUoW

func (f FuncRequestUoWFactory) Create() commands.RequestUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}

type FuncWorkLogUoWFactory func() commands.WorkLogUoW

func (f FuncWorkLogUoWFactory) Create() commands.WorkLogUoW {
	return f()
}

type FuncNotificationUoWFactory func() commands.NotificationUoW

func (f FuncNotificationUoWFactory) Create() commands.NotificationUoW {
	return f()
}

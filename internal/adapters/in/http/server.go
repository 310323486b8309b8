package http

import (
	"net/http"

	"github.com/ArmandoCH85/sistemtransporte/internal/core/application/usecases/commands"
	"github.com/ArmandoCH85/sistemtransporte/internal/core/application/usecases/queries"
	"github.com/ArmandoCH85/sistemtransporte/internal/core/domain/model/assignment"
	"github.com/ArmandoCH85/sistemtransporte/internal/core/domain/model/kernel"
	"github.com/ArmandoCH85/sistemtransporte/internal/core/domain/model/request"
	"github.com/ArmandoCH85/sistemtransporte/internal/core/domain/model/worklog"
	"github.com/ArmandoCH85/sistemtransporte/internal/core/ports"

	"github.com/labstack/echo/v4"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// Handlers groups the use cases served over HTTP.
type Handlers struct {
	CreateRequest        commands.CreateRequestCommandHandler
	UpdateRequestDetails commands.UpdateRequestDetailsCommandHandler
	AcceptRequest        commands.AcceptRequestCommandHandler
	RescheduleRequest    commands.RescheduleRequestCommandHandler
	CompleteRequest      commands.CompleteRequestCommandHandler
	FailRequest          commands.FailRequestCommandHandler
	DeleteRequest        commands.DeleteRequestCommandHandler
	CloseWorkday         commands.CloseWorkdayCommandHandler

	GetRequest   queries.GetRequestQueryHandler
	ListRequests queries.ListRequestsQueryHandler
	GetWorkLogs  queries.GetWorkLogsQueryHandler
}

// Server implements the ServerInterface for handling HTTP requests.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	handlers Handlers
	clock    ports.Clock
}

var _ ServerInterface = (*Server)(nil)

// NewServer creates a new HTTP server. clock supplies "now" for workday closure.
func NewServer(handlers Handlers, clock ports.Clock) *Server {
	return &Server{
		handlers: handlers,
		clock:    clock,
	}
}

// ListRequests handles GET /api/v1/requests.
func (s *Server) ListRequests(ctx echo.Context, params ListRequestsParams) error {
	var status string
	if params.Status != nil {
		status = string(*params.Status)
	}

	query, err := queries.NewListRequestsQuery(status)
	if err != nil {
		return toHTTPError(err)
	}

	summaries, err := s.handlers.ListRequests.Handle(ctx.Request().Context(), query)
	if err != nil {
		return toHTTPError(err)
	}

	response := make([]Request, len(summaries))
	for i, summary := range summaries {
		response[i] = requestFromSummary(summary)
	}

	return ctx.JSON(http.StatusOK, response)
}

// CreateRequest handles POST /api/v1/requests.
func (s *Server) CreateRequest(ctx echo.Context, params ActorParams) error {
	var body RequestDetails
	if err := ctx.Bind(&body); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}

	requesterID, details, err := detailsFromBody(params.XActorId, body)
	if err != nil {
		return toHTTPError(err)
	}

	cmd, err := commands.NewCreateRequestCommand(requesterID, details)
	if err != nil {
		return toHTTPError(err)
	}

	created, err := s.handlers.CreateRequest.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return toHTTPError(err)
	}

	return ctx.JSON(http.StatusCreated, requestFromDomain(created))
}

// GetRequest handles GET /api/v1/requests/{id}.
func (s *Server) GetRequest(ctx echo.Context, id openapi_types.UUID) error {
	requestID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return toHTTPError(err)
	}

	query, err := queries.NewGetRequestQuery(requestID)
	if err != nil {
		return toHTTPError(err)
	}

	view, err := s.handlers.GetRequest.Handle(ctx.Request().Context(), query)
	if err != nil {
		return toHTTPError(err)
	}

	response := RequestDetail{
		Request:     requestFromSummary(view.Request),
		History:     make([]StatusHistoryItem, len(view.History)),
		Assignments: make([]Assignment, len(view.Assignments)),
	}
	if view.CurrentTransporterID != nil {
		current := view.CurrentTransporterID.Bytes()
		response.CurrentTransporterId = &current
	}
	for i, item := range view.History {
		response.History[i] = StatusHistoryItem{
			UserId:    item.UserID.Bytes(),
			Status:    item.Status,
			Comment:   item.Comment,
			CreatedAt: item.CreatedAt,
		}
	}
	for i, item := range view.Assignments {
		response.Assignments[i] = Assignment{
			Id:             item.ID.Bytes(),
			RequestId:      id,
			TransporterId:  item.TransporterID.Bytes(),
			Status:         item.Status,
			AssignmentDate: item.AssignmentDate,
			ResponseDate:   item.ResponseDate,
			Comments:       item.Comments,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// UpdateRequestDetails handles PATCH /api/v1/requests/{id}.
func (s *Server) UpdateRequestDetails(ctx echo.Context, id openapi_types.UUID) error {
	var body RequestDetails
	if err := ctx.Bind(&body); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}

	requestID, details, err := detailsFromBody(id, body)
	if err != nil {
		return toHTTPError(err)
	}

	cmd, err := commands.NewUpdateRequestDetailsCommand(requestID, details)
	if err != nil {
		return toHTTPError(err)
	}

	updated, err := s.handlers.UpdateRequestDetails.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return toHTTPError(err)
	}

	return ctx.JSON(http.StatusOK, requestFromDomain(updated))
}

// DeleteRequest handles DELETE /api/v1/requests/{id}.
func (s *Server) DeleteRequest(ctx echo.Context, id openapi_types.UUID, params DeleteRequestParams) error {
	requestID, actorID, err := requestAndActor(id, params.XActorId)
	if err != nil {
		return toHTTPError(err)
	}

	privileged := params.XActorPrivileged != nil && *params.XActorPrivileged
	cmd, err := commands.NewDeleteRequestCommand(requestID, actorID, privileged)
	if err != nil {
		return toHTTPError(err)
	}

	if err = s.handlers.DeleteRequest.Handle(ctx.Request().Context(), cmd); err != nil {
		return toHTTPError(err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// AcceptRequest handles POST /api/v1/requests/{id}/accept.
func (s *Server) AcceptRequest(ctx echo.Context, id openapi_types.UUID, params ActorParams) error {
	requestID, transporterID, err := requestAndActor(id, params.XActorId)
	if err != nil {
		return toHTTPError(err)
	}

	cmd, err := commands.NewAcceptRequestCommand(requestID, transporterID)
	if err != nil {
		return toHTTPError(err)
	}

	accepted, err := s.handlers.AcceptRequest.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return toHTTPError(err)
	}

	return ctx.JSON(http.StatusOK, assignmentFromDomain(accepted))
}

// RescheduleRequest handles POST /api/v1/requests/{id}/reschedule.
func (s *Server) RescheduleRequest(ctx echo.Context, id openapi_types.UUID, params ActorParams) error {
	var body RescheduleRequestJSONBody
	if err := ctx.Bind(&body); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}

	requestID, transporterID, err := requestAndActor(id, params.XActorId)
	if err != nil {
		return toHTTPError(err)
	}

	cmd, err := commands.NewRescheduleRequestCommand(requestID, transporterID, body.NewDate, body.Comments)
	if err != nil {
		return toHTTPError(err)
	}

	rescheduled, err := s.handlers.RescheduleRequest.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return toHTTPError(err)
	}

	return ctx.JSON(http.StatusOK, requestFromDomain(rescheduled))
}

// CompleteRequest handles POST /api/v1/requests/{id}/complete.
func (s *Server) CompleteRequest(ctx echo.Context, id openapi_types.UUID, params ActorParams) error {
	requestID, transporterID, err := requestAndActor(id, params.XActorId)
	if err != nil {
		return toHTTPError(err)
	}

	cmd, err := commands.NewCompleteRequestCommand(requestID, transporterID)
	if err != nil {
		return toHTTPError(err)
	}

	completed, err := s.handlers.CompleteRequest.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return toHTTPError(err)
	}

	return ctx.JSON(http.StatusOK, requestFromDomain(completed))
}

// FailRequest handles POST /api/v1/requests/{id}/fail.
func (s *Server) FailRequest(ctx echo.Context, id openapi_types.UUID, params ActorParams) error {
	var body FailRequestJSONBody
	if err := ctx.Bind(&body); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}

	requestID, transporterID, err := requestAndActor(id, params.XActorId)
	if err != nil {
		return toHTTPError(err)
	}

	cmd, err := commands.NewFailRequestCommand(requestID, transporterID, body.Reason, body.Evidence)
	if err != nil {
		return toHTTPError(err)
	}

	failed, err := s.handlers.FailRequest.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return toHTTPError(err)
	}

	return ctx.JSON(http.StatusOK, requestFromDomain(failed))
}

// CloseWorkday handles POST /api/v1/transporters/{id}/workday/close. It
// answers 201 when this call closed the day and 200 when it was already closed.
func (s *Server) CloseWorkday(ctx echo.Context, id openapi_types.UUID) error {
	transporterID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return toHTTPError(err)
	}

	cmd, err := commands.NewCloseWorkdayCommand(transporterID, s.clock.Now())
	if err != nil {
		return toHTTPError(err)
	}

	result, err := s.handlers.CloseWorkday.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return toHTTPError(err)
	}

	status := http.StatusOK
	if result.Created {
		status = http.StatusCreated
	}

	return ctx.JSON(status, WorkdayClosure{
		Created: result.Created,
		Log:     workLogFromDomain(result.Log),
	})
}

// GetWorkLogs handles GET /api/v1/transporters/{id}/work-logs.
func (s *Server) GetWorkLogs(ctx echo.Context, id openapi_types.UUID) error {
	transporterID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return toHTTPError(err)
	}

	query, err := queries.NewGetWorkLogsQuery(transporterID)
	if err != nil {
		return toHTTPError(err)
	}

	logs, err := s.handlers.GetWorkLogs.Handle(ctx.Request().Context(), query)
	if err != nil {
		return toHTTPError(err)
	}

	response := make([]WorkLog, 0, len(logs))
	for _, log := range logs {
		workDate, err := worklog.ParseDate(log.WorkDate)
		if err != nil {
			return toHTTPError(err)
		}

		response = append(response, WorkLog{
			Id:        log.ID.Bytes(),
			WorkDate:  openapi_types.Date{Time: workDate.Time()},
			StartedAt: log.StartedAt,
			EndedAt:   log.EndedAt,
		})
	}

	return ctx.JSON(http.StatusOK, response)
}

func requestAndActor(id, actor openapi_types.UUID) (kernel.UUID, kernel.UUID, error) {
	requestID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return kernel.UUID{}, kernel.UUID{}, err
	}

	actorID, err := kernel.UUIDFromBytes(actor[:])
	if err != nil {
		return kernel.UUID{}, kernel.UUID{}, err
	}

	return requestID, actorID, nil
}

func detailsFromBody(owner openapi_types.UUID, body RequestDetails) (kernel.UUID, request.Details, error) {
	ownerID, err := kernel.UUIDFromBytes(owner[:])
	if err != nil {
		return kernel.UUID{}, request.Details{}, err
	}

	pickup, err := kernel.NewEndpoint(body.Pickup.Address, body.Pickup.Contact, body.Pickup.Phone)
	if err != nil {
		return kernel.UUID{}, request.Details{}, err
	}

	delivery, err := kernel.NewEndpoint(body.Delivery.Address, body.Delivery.Contact, body.Delivery.Phone)
	if err != nil {
		return kernel.UUID{}, request.Details{}, err
	}

	details := request.Details{
		Description: body.Description,
		Pickup:      pickup,
		Delivery:    delivery,
	}
	if details.CategoryID, err = optionalID(body.CategoryId); err != nil {
		return kernel.UUID{}, request.Details{}, err
	}
	if details.OriginID, err = optionalID(body.OriginId); err != nil {
		return kernel.UUID{}, request.Details{}, err
	}

	return ownerID, details, nil
}

func optionalID(id *openapi_types.UUID) (*kernel.UUID, error) {
	if id == nil {
		return nil, nil
	}

	parsed, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return nil, err
	}
	return &parsed, nil
}

func endpointFromDomain(e kernel.Endpoint) Endpoint {
	return Endpoint{
		Address: e.Address(),
		Contact: e.Contact(),
		Phone:   e.Phone(),
	}
}

func requestFromDomain(r *request.Request) Request {
	details := r.Details()
	return Request{
		Id:                 r.ID().Bytes(),
		RequesterId:        r.RequesterID().Bytes(),
		Description:        details.Description,
		Pickup:             endpointFromDomain(details.Pickup),
		Delivery:           endpointFromDomain(details.Delivery),
		Status:             RequestStatus(r.Status().String()),
		RescheduledDate:    r.RescheduledDate(),
		RescheduleComments: r.RescheduleComments(),
		EvidenceImage:      r.EvidenceImage(),
		CreatedAt:          r.CreatedAt(),
		UpdatedAt:          r.UpdatedAt(),
	}
}

func requestFromSummary(s queries.RequestSummary) Request {
	return Request{
		Id:                 s.ID.Bytes(),
		RequesterId:        s.RequesterID.Bytes(),
		Description:        s.Description,
		Pickup:             endpointFromDomain(s.Pickup),
		Delivery:           endpointFromDomain(s.Delivery),
		Status:             RequestStatus(s.Status),
		RescheduledDate:    s.RescheduledDate,
		RescheduleComments: s.RescheduleComments,
		EvidenceImage:      s.EvidenceImage,
		CreatedAt:          s.CreatedAt,
		UpdatedAt:          s.UpdatedAt,
	}
}

func assignmentFromDomain(a *assignment.Assignment) Assignment {
	return Assignment{
		Id:             a.ID().Bytes(),
		RequestId:      a.RequestID().Bytes(),
		TransporterId:  a.TransporterID().Bytes(),
		Status:         a.Status().String(),
		AssignmentDate: a.AssignmentDate(),
		ResponseDate:   a.ResponseDate(),
		Comments:       a.Comments(),
	}
}

func workLogFromDomain(w *worklog.WorkLog) WorkLog {
	return WorkLog{
		Id:        w.ID().Bytes(),
		WorkDate:  openapi_types.Date{Time: w.WorkDate().Time()},
		StartedAt: w.StartedAt(),
		EndedAt:   w.EndedAt(),
	}
}

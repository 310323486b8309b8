package http

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// ServerInterface represents all server handlers.
type ServerInterface interface {
	// List live requests, newest first
	// (GET /api/v1/requests)
	ListRequests(ctx echo.Context, params ListRequestsParams) error
	// Create a pending request
	// (POST /api/v1/requests)
	CreateRequest(ctx echo.Context, params ActorParams) error
	// Request with status history and assignments
	// (GET /api/v1/requests/{id})
	GetRequest(ctx echo.Context, id openapi_types.UUID) error
	// Replace the details of a pending request
	// (PATCH /api/v1/requests/{id})
	UpdateRequestDetails(ctx echo.Context, id openapi_types.UUID) error
	// Delete a pending request with everything attached to it
	// (DELETE /api/v1/requests/{id})
	DeleteRequest(ctx echo.Context, id openapi_types.UUID, params DeleteRequestParams) error
	// (POST /api/v1/requests/{id}/accept)
	AcceptRequest(ctx echo.Context, id openapi_types.UUID, params ActorParams) error
	// (POST /api/v1/requests/{id}/reschedule)
	RescheduleRequest(ctx echo.Context, id openapi_types.UUID, params ActorParams) error
	// (POST /api/v1/requests/{id}/complete)
	CompleteRequest(ctx echo.Context, id openapi_types.UUID, params ActorParams) error
	// (POST /api/v1/requests/{id}/fail)
	FailRequest(ctx echo.Context, id openapi_types.UUID, params ActorParams) error
	// Close today's workday, at most once per day
	// (POST /api/v1/transporters/{id}/workday/close)
	CloseWorkday(ctx echo.Context, id openapi_types.UUID) error
	// (GET /api/v1/transporters/{id}/work-logs)
	GetWorkLogs(ctx echo.Context, id openapi_types.UUID) error
}

// ServerInterfaceWrapper converts echo contexts to parameters.
type ServerInterfaceWrapper struct {
	Handler ServerInterface
}

// ListRequests converts echo context to params.
func (w *ServerInterfaceWrapper) ListRequests(ctx echo.Context) error {
	var err error

	var params ListRequestsParams
	err = runtime.BindQueryParameter("form", true, false, "status", ctx.QueryParams(), &params.Status)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter status: %s", err))
	}

	return w.Handler.ListRequests(ctx, params)
}

// CreateRequest converts echo context to params.
func (w *ServerInterfaceWrapper) CreateRequest(ctx echo.Context) error {
	var params ActorParams
	actorID, err := bindActorID(ctx)
	if err != nil {
		return err
	}
	params.XActorId = actorID

	return w.Handler.CreateRequest(ctx, params)
}

// GetRequest converts echo context to params.
func (w *ServerInterfaceWrapper) GetRequest(ctx echo.Context) error {
	id, err := bindID(ctx)
	if err != nil {
		return err
	}

	return w.Handler.GetRequest(ctx, id)
}

// UpdateRequestDetails converts echo context to params.
func (w *ServerInterfaceWrapper) UpdateRequestDetails(ctx echo.Context) error {
	id, err := bindID(ctx)
	if err != nil {
		return err
	}

	return w.Handler.UpdateRequestDetails(ctx, id)
}

// DeleteRequest converts echo context to params.
func (w *ServerInterfaceWrapper) DeleteRequest(ctx echo.Context) error {
	id, err := bindID(ctx)
	if err != nil {
		return err
	}

	var params DeleteRequestParams
	if params.XActorId, err = bindActorID(ctx); err != nil {
		return err
	}

	headers := ctx.Request().Header
	if valueList, found := headers[http.CanonicalHeaderKey("X-Actor-Privileged")]; found {
		var privileged bool
		if n := len(valueList); n != 1 {
			return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Expected one value for X-Actor-Privileged, got %d", n))
		}

		err = runtime.BindStyledParameterWithOptions("simple", "X-Actor-Privileged", valueList[0], &privileged,
			runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationHeader, Explode: false, Required: false})
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter X-Actor-Privileged: %s", err))
		}

		params.XActorPrivileged = &privileged
	}

	return w.Handler.DeleteRequest(ctx, id, params)
}

// AcceptRequest converts echo context to params.
func (w *ServerInterfaceWrapper) AcceptRequest(ctx echo.Context) error {
	id, params, err := bindIDAndActor(ctx)
	if err != nil {
		return err
	}

	return w.Handler.AcceptRequest(ctx, id, params)
}

// RescheduleRequest converts echo context to params.
func (w *ServerInterfaceWrapper) RescheduleRequest(ctx echo.Context) error {
	id, params, err := bindIDAndActor(ctx)
	if err != nil {
		return err
	}

	return w.Handler.RescheduleRequest(ctx, id, params)
}

// CompleteRequest converts echo context to params.
func (w *ServerInterfaceWrapper) CompleteRequest(ctx echo.Context) error {
	id, params, err := bindIDAndActor(ctx)
	if err != nil {
		return err
	}

	return w.Handler.CompleteRequest(ctx, id, params)
}

// FailRequest converts echo context to params.
func (w *ServerInterfaceWrapper) FailRequest(ctx echo.Context) error {
	id, params, err := bindIDAndActor(ctx)
	if err != nil {
		return err
	}

	return w.Handler.FailRequest(ctx, id, params)
}

// CloseWorkday converts echo context to params.
func (w *ServerInterfaceWrapper) CloseWorkday(ctx echo.Context) error {
	id, err := bindID(ctx)
	if err != nil {
		return err
	}

	return w.Handler.CloseWorkday(ctx, id)
}

// GetWorkLogs converts echo context to params.
func (w *ServerInterfaceWrapper) GetWorkLogs(ctx echo.Context) error {
	id, err := bindID(ctx)
	if err != nil {
		return err
	}

	return w.Handler.GetWorkLogs(ctx, id)
}

func bindID(ctx echo.Context) (openapi_types.UUID, error) {
	var id openapi_types.UUID

	err := runtime.BindStyledParameterWithOptions("simple", "id", ctx.Param("id"), &id,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return id, echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter id: %s", err))
	}

	return id, nil
}

func bindActorID(ctx echo.Context) (openapi_types.UUID, error) {
	var actorID openapi_types.UUID

	valueList, found := ctx.Request().Header[http.CanonicalHeaderKey("X-Actor-Id")]
	if !found {
		return actorID, echo.NewHTTPError(http.StatusBadRequest, "Header parameter X-Actor-Id is required, but not found")
	}
	if n := len(valueList); n != 1 {
		return actorID, echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Expected one value for X-Actor-Id, got %d", n))
	}

	err := runtime.BindStyledParameterWithOptions("simple", "X-Actor-Id", valueList[0], &actorID,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationHeader, Explode: false, Required: true})
	if err != nil {
		return actorID, echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter X-Actor-Id: %s", err))
	}

	return actorID, nil
}

func bindIDAndActor(ctx echo.Context) (openapi_types.UUID, ActorParams, error) {
	id, err := bindID(ctx)
	if err != nil {
		return id, ActorParams{}, err
	}

	actorID, err := bindActorID(ctx)
	if err != nil {
		return id, ActorParams{}, err
	}

	return id, ActorParams{XActorId: actorID}, nil
}

// EchoRouter is the subset of echo.Echo and echo.Group used for registration.
type EchoRouter interface {
	DELETE(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	GET(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	PATCH(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	POST(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
}

// RegisterHandlers adds each server route to the EchoRouter.
func RegisterHandlers(router EchoRouter, si ServerInterface) {
	RegisterHandlersWithBaseURL(router, si, "")
}

// RegisterHandlersWithBaseURL registers handlers, and prepends baseURL to the
// paths, so that the paths can be served under a prefix.
func RegisterHandlersWithBaseURL(router EchoRouter, si ServerInterface, baseURL string) {
	wrapper := ServerInterfaceWrapper{
		Handler: si,
	}

	router.GET(baseURL+"/api/v1/requests", wrapper.ListRequests)
	router.POST(baseURL+"/api/v1/requests", wrapper.CreateRequest)
	router.GET(baseURL+"/api/v1/requests/:id", wrapper.GetRequest)
	router.PATCH(baseURL+"/api/v1/requests/:id", wrapper.UpdateRequestDetails)
	router.DELETE(baseURL+"/api/v1/requests/:id", wrapper.DeleteRequest)
	router.POST(baseURL+"/api/v1/requests/:id/accept", wrapper.AcceptRequest)
	router.POST(baseURL+"/api/v1/requests/:id/reschedule", wrapper.RescheduleRequest)
	router.POST(baseURL+"/api/v1/requests/:id/complete", wrapper.CompleteRequest)
	router.POST(baseURL+"/api/v1/requests/:id/fail", wrapper.FailRequest)
	router.POST(baseURL+"/api/v1/transporters/:id/workday/close", wrapper.CloseWorkday)
	router.GET(baseURL+"/api/v1/transporters/:id/work-logs", wrapper.GetWorkLogs)
}

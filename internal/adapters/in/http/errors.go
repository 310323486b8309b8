package http

import (
	"errors"
	"net/http"

	"github.com/ArmandoCH85/sistemtransporte/internal/core/domain/model/request"
	"github.com/ArmandoCH85/sistemtransporte/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// toHTTPError classifies a use case error into a status code. The original
// error is kept as Internal so the error handler can log it.
func toHTTPError(err error) *echo.HTTPError {
	status := http.StatusInternalServerError
	message := http.StatusText(http.StatusInternalServerError)

	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		status, message = http.StatusNotFound, err.Error()
	case errors.Is(err, request.ErrIllegalDelete), errors.Is(err, errs.ErrInvalidTransition):
		status, message = http.StatusConflict, err.Error()
	case errors.Is(err, errs.ErrPermissionDenied):
		status, message = http.StatusForbidden, err.Error()
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		status, message = http.StatusUnprocessableEntity, err.Error()
	}

	return echo.NewHTTPError(status, message).SetInternal(err)
}

// errorHandler renders every error as an Error body.
func (r *router) errorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	var he *echo.HTTPError
	if !errors.As(err, &he) {
		he = toHTTPError(err)
	}

	message, ok := he.Message.(string)
	if !ok {
		message = http.StatusText(he.Code)
	}

	if he.Code >= http.StatusInternalServerError {
		r.logger.ErrorContext(c.Request().Context(), "Request failed",
			"method", c.Request().Method,
			"uri", c.Request().RequestURI,
			"error", err,
		)
	}

	var writeErr error
	if c.Request().Method == http.MethodHead {
		writeErr = c.NoContent(he.Code)
	} else {
		writeErr = c.JSON(he.Code, Error{Code: he.Code, Message: message})
	}
	if writeErr != nil {
		r.logger.ErrorContext(c.Request().Context(), "Failed to write error response", "error", writeErr)
	}
}

// Package handler exposes the directory over HTTP. Handlers bind
// forms, call the services and return typed views as JSON; failures
// are returned as errors and rendered by ErrorHandler.
package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/fyyur/internal/repository"
	"github.com/iliyamo/fyyur/internal/service"
)

// ErrorHandler renders errors returned by handlers:
// validation 422, not found 404, conflict 409, echo errors with their
// own code, and everything else 500 with a generic message.
func ErrorHandler(log *slog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}
		status, body := errorResponse(err)
		if status >= http.StatusInternalServerError {
			var perr *service.PersistenceError
			if !errors.As(err, &perr) {
				// persistence failures are logged by the service
				log.Error("unhandled error", "method", c.Request().Method, "path", c.Path(), "err", err)
			}
		}
		if c.Request().Method == http.MethodHead {
			err = c.NoContent(status)
		} else {
			err = c.JSON(status, body)
		}
		if err != nil {
			log.Error("write error response", "err", err)
		}
	}
}

func errorResponse(err error) (int, echo.Map) {
	var (
		verr *service.ValidationError
		perr *service.PersistenceError
		herr *echo.HTTPError
	)
	switch {
	case errors.As(err, &verr):
		return http.StatusUnprocessableEntity, echo.Map{"error": verr.Error(), "fields": verr.Fields}
	case errors.Is(err, repository.ErrNotFound):
		return http.StatusNotFound, echo.Map{"error": err.Error()}
	case errors.Is(err, repository.ErrConflict):
		return http.StatusConflict, echo.Map{"error": err.Error()}
	case errors.As(err, &perr):
		return http.StatusInternalServerError, echo.Map{"error": perr.Error()}
	case errors.As(err, &herr):
		msg, ok := herr.Message.(string)
		if !ok {
			msg = http.StatusText(herr.Code)
		}
		return herr.Code, echo.Map{"error": msg}
	default:
		return http.StatusInternalServerError, echo.Map{"error": http.StatusText(http.StatusInternalServerError)}
	}
}

// parseID reads the :id path parameter.
func parseID(c echo.Context) (uint64, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	return id, nil
}

// bind decodes the request body into f.
func bind(c echo.Context, f any) error {
	if err := c.Bind(f); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}
	return nil
}

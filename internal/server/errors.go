package server

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/flke/flke/internal/api"
	"github.com/flke/flke/internal/database"
	"github.com/labstack/echo/v4"
)

// errInvalid marks a request the store refuses before touching the database
var errInvalid = errors.New("invalid request")

// errorHandler renders every failure as an api.ErrorBody
func errorHandler(logger *slog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		status, body := classify(err)
		if status >= http.StatusInternalServerError {
			logger.Error("request failed",
				"method", c.Request().Method,
				"path", c.Path(),
				"request_id", c.Response().Header().Get(echo.HeaderXRequestID),
				"error", err)
		}

		var writeErr error
		if c.Request().Method == http.MethodHead {
			writeErr = c.NoContent(status)
		} else {
			writeErr = c.JSON(status, body)
		}
		if writeErr != nil {
			logger.Error("failed to write error response", "error", writeErr)
		}
	}
}

func classify(err error) (int, api.ErrorBody) {
	var he *echo.HTTPError
	switch {
	case errors.Is(err, database.ErrNotFound):
		return http.StatusNotFound, api.ErrorBody{Code: api.CodeNotFound, Message: err.Error()}
	case errors.Is(err, database.ErrDuplicate):
		return http.StatusConflict, api.ErrorBody{Code: api.CodeConflict, Message: "Already registered"}
	case errors.Is(err, errInvalid):
		return http.StatusBadRequest, api.ErrorBody{Code: api.CodeInvalidRequest, Message: err.Error()}
	case errors.As(err, &he):
		code := api.CodeInternal
		switch he.Code {
		case http.StatusBadRequest:
			code = api.CodeInvalidRequest
		case http.StatusNotFound, http.StatusMethodNotAllowed:
			code = api.CodeNotFound
		}
		msg, ok := he.Message.(string)
		if !ok {
			msg = http.StatusText(he.Code)
		}
		return he.Code, api.ErrorBody{Code: code, Message: msg}
	default:
		return http.StatusInternalServerError, api.ErrorBody{Code: api.CodeInternal, Message: "internal error"}
	}
}

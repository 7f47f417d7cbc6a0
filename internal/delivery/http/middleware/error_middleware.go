package middleware

import (
	"fmt"
	"log/slog"
	"net/http"

	domainerrors "scout/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ErrorMiddleware is the central HTTPErrorHandler: handlers return domain
// errors and this translates them to the response envelope, so no handler
// shapes error JSON by hand.
type ErrorMiddleware struct {
	logger *slog.Logger
}

// NewErrorMiddleware creates the error handler.
func NewErrorMiddleware(logger *slog.Logger) *ErrorMiddleware {
	return &ErrorMiddleware{logger: logger}
}

// HandleHTTPError translates err into the unified envelope.
func (m *ErrorMiddleware) HandleHTTPError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		m.write(c, appErr.HTTPCode(), appErr.Message(), appErr.ErrorCode(), appErr.Details())

		return
	}

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		message := fmt.Sprintf("%v", httpErr.Message)
		m.write(c, httpErr.Code, message, "HTTP_ERROR", message)

		return
	}

	m.logger.Error("Unhandled error",
		slog.String("error", err.Error()),
		slog.String("path", c.Request().URL.Path),
		slog.String("method", c.Request().Method),
	)
	m.write(c, http.StatusInternalServerError,
		domainerrors.ErrInternalError.Message(),
		domainerrors.ErrInternalError.ErrorCode(),
		err.Error(),
	)
}

func (m *ErrorMiddleware) write(c echo.Context, status int, message, code string, details any) {
	err := c.JSON(status, domainerrors.Response{
		Success: false,
		Code:    status,
		Message: message,
		Error: &domainerrors.ErrorInfo{
			Code:    code,
			Details: details,
		},
	})
	if err != nil {
		m.logger.Error("Failed to write error response", slog.Any("error", err))
	}
}

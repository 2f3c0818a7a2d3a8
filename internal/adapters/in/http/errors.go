package http

import (
	"errors"
	"log/slog"
	"net/http"

	"orders/internal/auth"
	"orders/internal/pkg/errs"
	"orders/internal/pkg/guard"

	"github.com/labstack/echo/v4"
)

// Error codes returned in the envelope.
const (
	CodeUnauthorized    = "UNAUTHORIZED"
	CodeForbidden       = "FORBIDDEN"
	CodeValidationError = "VALIDATION_ERROR"
	CodeOrderNotFound   = "ORDER_NOT_FOUND"
	CodeInternalError   = "INTERNAL_ERROR"
)

// respondError maps a use case error onto the envelope and status code.
// Validation failures echo their message back; internal failures are logged
// with the request id and replaced with a generic message.
func respondError(ctx echo.Context, logger *slog.Logger, err error) error {
	switch {
	case errors.Is(err, auth.ErrTokenRequired):
		return writeError(ctx, http.StatusUnauthorized, CodeUnauthorized, "Access token required")

	case errors.Is(err, auth.ErrTokenInvalid):
		return writeError(ctx, http.StatusForbidden, CodeForbidden, "Invalid or expired token")

	case errors.Is(err, errs.ErrObjectNotFound):
		return writeError(ctx, http.StatusNotFound, CodeOrderNotFound, "Order not found")

	case errors.Is(err, errs.ErrAccessForbidden):
		return writeError(ctx, http.StatusForbidden, CodeForbidden, "Access denied")

	case errors.Is(err, errs.ErrInvalidTransition),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return writeError(ctx, http.StatusBadRequest, CodeValidationError, err.Error())

	case errors.Is(err, guard.ErrDefaultConstructorGuard):
		return writeError(ctx, http.StatusBadRequest, CodeValidationError, err.Error())

	default:
		logger.Error("request failed",
			"error", err,
			"request_id", ctx.Response().Header().Get(echo.HeaderXRequestID),
			"path", ctx.Path(),
		)
		return writeError(ctx, http.StatusInternalServerError, CodeInternalError, "Internal Server Error")
	}
}

func writeError(ctx echo.Context, status int, code, message string) error {
	return ctx.JSON(status, Envelope{
		Success: false,
		Error: &ErrorBody{
			Code:    code,
			Message: message,
		},
	})
}

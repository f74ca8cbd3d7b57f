package http

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

const (
	headerActorRole = "X-Actor-Role"
	headerActorID   = "X-Actor-Id"
	headerIfMatch   = "If-Match"
)

// actorFrom resolves the caller from headers set by the gateway.
func actorFrom(ctx echo.Context) (kernel.Actor, error) {
	role, err := kernel.ParseRole(ctx.Request().Header.Get(headerActorRole))
	if err != nil {
		return kernel.Actor{}, err
	}
	id, err := kernel.UUIDFromString(ctx.Request().Header.Get(headerActorID))
	if err != nil {
		return kernel.Actor{}, err
	}
	return kernel.NewActor(role, id)
}

// expectedVersion prefers the body field and falls back to If-Match.
// Zero means the caller does not care.
func expectedVersion(ctx echo.Context, fromBody *int64) (int64, error) {
	if fromBody != nil {
		return *fromBody, nil
	}
	raw := strings.Trim(ctx.Request().Header.Get(headerIfMatch), `" `)
	if raw == "" {
		return 0, nil
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || v < 0 {
		return 0, errs.NewValueIsInvalidErrorWithCause("If-Match", errors.New("must be a non-negative version"))
	}
	return v, nil
}

// statusFor maps core error kinds to HTTP status codes.
func statusFor(err error) int {
	switch {
	case errs.IsValidation(err):
		return http.StatusBadRequest
	case errors.Is(err, errs.ErrActionIsForbidden):
		return http.StatusForbidden
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	case errors.Is(err, errs.ErrInvalidTransition),
		errors.Is(err, errs.ErrInsufficientBalance),
		errors.Is(err, errs.ErrVersionConflict):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// fail writes the error body. Internal errors are logged and hidden.
func (s *Server) fail(ctx echo.Context, err error) error {
	code := statusFor(err)
	message := err.Error()
	if code == http.StatusInternalServerError {
		s.logger.ErrorContext(ctx.Request().Context(), "request failed",
			slog.String("method", ctx.Request().Method),
			slog.String("path", ctx.Path()),
			slog.Any("error", err),
		)
		message = http.StatusText(code)
	}
	return ctx.JSON(code, Error{Code: code, Message: message})
}

// ErrorHandler renders echo errors (routing, binding, validation) in the
// same shape as core errors.
func ErrorHandler(logger *slog.Logger) echo.HTTPErrorHandler {
	return func(err error, ctx echo.Context) {
		if ctx.Response().Committed {
			return
		}
		code := http.StatusInternalServerError
		message := http.StatusText(code)
		var he *echo.HTTPError
		if errors.As(err, &he) {
			code = he.Code
			if m, ok := he.Message.(string); ok {
				message = m
			} else {
				message = http.StatusText(code)
			}
		} else {
			logger.ErrorContext(ctx.Request().Context(), "unhandled error", slog.Any("error", err))
		}
		if writeErr := ctx.JSON(code, Error{Code: code, Message: message}); writeErr != nil {
			logger.ErrorContext(ctx.Request().Context(), "write error response", slog.Any("error", writeErr))
		}
	}
}

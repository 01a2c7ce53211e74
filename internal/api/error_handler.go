package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/repomarket/repomarket/internal/api/metrics"
	"github.com/repomarket/repomarket/internal/core/domain"
)

// errorResponse is the canonical error envelope: {"success": false, "message": "..."}.
type errorResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Maps known domain errors to their appropriate HTTP status codes.
//   - Logs unexpected errors internally without leaking details to the client.
//   - Renders the consistent envelope the web client unwraps.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code, msg := resolveError(err, log, c)
		switch code {
		case http.StatusUnauthorized:
			metrics.AuthFailuresTotal.WithLabelValues("unauthorized").Inc()
		case http.StatusForbidden:
			metrics.AuthFailuresTotal.WithLabelValues("forbidden").Inc()
		}
		_ = c.JSON(code, errorResponse{Message: msg})
	}
}

func resolveError(err error, log zerolog.Logger, c echo.Context) (int, string) {
	// Echo's own errors (bind failures, 404 from router, etc.)
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code, fmt.Sprintf("%v", he.Message)
	}

	// Known domain errors → deterministic HTTP codes.
	switch {
	case errors.Is(err, domain.ErrInvalidCredentials):
		return http.StatusUnauthorized, "invalid credentials"
	case errors.Is(err, domain.ErrForbidden):
		return http.StatusForbidden, "access forbidden"
	case errors.Is(err, domain.ErrUserNotFound):
		return http.StatusNotFound, "user not found"
	case errors.Is(err, domain.ErrUserExists):
		return http.StatusConflict, "user already exists"
	case errors.Is(err, domain.ErrOrganizationRequired):
		return http.StatusBadRequest, err.Error()
	}

	// Unexpected error: log the real cause, return a generic message.
	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("unhandled error")

	return http.StatusInternalServerError, "internal server error"
}

package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/repomarket/repomarket/internal/core/domain"
)

func renderError(t *testing.T, err error) (int, errorResponse) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	NewHTTPErrorHandler(zerolog.Nop())(err, c)

	var resp errorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode error body: %v", err)
	}
	return rec.Code, resp
}

func TestErrorHandler_DomainErrorMapping(t *testing.T) {
	cases := []struct {
		err    error
		status int
	}{
		{domain.ErrInvalidCredentials, http.StatusUnauthorized},
		{domain.ErrForbidden, http.StatusForbidden},
		{domain.ErrUserNotFound, http.StatusNotFound},
		{domain.ErrUserExists, http.StatusConflict},
		{domain.ErrOrganizationRequired, http.StatusBadRequest},
	}
	for _, tc := range cases {
		code, resp := renderError(t, tc.err)
		if code != tc.status {
			t.Fatalf("%v: status = %d, want %d", tc.err, code, tc.status)
		}
		if resp.Success {
			t.Fatalf("%v: error envelope must carry success=false", tc.err)
		}
		if resp.Message == "" {
			t.Fatalf("%v: empty message", tc.err)
		}
	}
}

func TestErrorHandler_EchoHTTPError(t *testing.T) {
	code, resp := renderError(t, echo.NewHTTPError(http.StatusBadRequest, "invalid payload"))
	if code != http.StatusBadRequest {
		t.Fatalf("status = %d", code)
	}
	if resp.Message != "invalid payload" {
		t.Fatalf("message = %q", resp.Message)
	}
}

func TestErrorHandler_UnexpectedErrorIsOpaque(t *testing.T) {
	code, resp := renderError(t, errors.New("pq: connection reset"))
	if code != http.StatusInternalServerError {
		t.Fatalf("status = %d", code)
	}
	if resp.Message != "internal server error" {
		t.Fatalf("internal detail leaked: %q", resp.Message)
	}
}

package api

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/Hezi12/hotel-management-system-sub001/internal/core/domain"
)

func renderError(t *testing.T, err error) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	h := NewHTTPErrorHandler(zerolog.Nop())
	h(err, c)
	return rec
}

func TestErrorHandler_DomainErrorMapping(t *testing.T) {
	cases := []struct {
		name string
		err  error
		code int
	}{
		{"validation", &domain.ValidationError{Field: "password", Reason: "too short"}, http.StatusBadRequest},
		{"invalid credentials", domain.ErrInvalidCredentials, http.StatusUnauthorized},
		{"already provisioned", domain.ErrAlreadyProvisioned, http.StatusConflict},
		{"duplicate account", domain.ErrAccountExists, http.StatusConflict},
		{"not found", domain.ErrAccountNotFound, http.StatusNotFound},
		{"storage unavailable", fmt.Errorf("%w: insert account: timeout", domain.ErrStorageUnavailable), http.StatusServiceUnavailable},
		{"unexpected", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := renderError(t, tc.err)
			if rec.Code != tc.code {
				t.Fatalf("expected %d, got %d", tc.code, rec.Code)
			}
			if !strings.Contains(rec.Body.String(), `"success":false`) {
				t.Fatalf("expected failure envelope, got %s", rec.Body.String())
			}
		})
	}
}

func TestErrorHandler_HidesUnexpectedCause(t *testing.T) {
	rec := renderError(t, errors.New("password_hash column corrupt"))
	if strings.Contains(rec.Body.String(), "password_hash") {
		t.Fatalf("internal detail leaked: %s", rec.Body.String())
	}
}

func TestErrorHandler_PassesThroughEchoErrors(t *testing.T) {
	rec := renderError(t, echo.NewHTTPError(http.StatusMethodNotAllowed, "method not allowed"))
	if rec.Code != http.StatusMethodNotAllowed {
		t.Fatalf("expected 405, got %d", rec.Code)
	}
}

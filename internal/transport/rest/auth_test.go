package rest

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/alumni-sante/sondage-backend/internal/domain"
	"github.com/alumni-sante/sondage-backend/internal/service/auth"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type authServiceStub struct {
	result *auth.LoginResult
	err    error
	input  auth.LoginInput
}

func (s *authServiceStub) Login(_ context.Context, input auth.LoginInput) (*auth.LoginResult, error) {
	s.input = input
	if s.err != nil {
		return nil, s.err
	}
	return s.result, nil
}

func TestAuthHandler_Login_Success(t *testing.T) {
	t.Parallel()

	svc := &authServiceStub{result: &auth.LoginResult{Token: "jwt-token", Email: "alice@example.org"}}
	h := NewAuthHandler(svc, testLogger())

	req := httptest.NewRequest(http.MethodPost, "/api/login",
		strings.NewReader(`{"email":"alice@example.org","password":"secret"}`))
	rec := httptest.NewRecorder()
	h.Login(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var resp map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp["token"] != "jwt-token" {
		t.Errorf("token = %q, want jwt-token", resp["token"])
	}
	if svc.input.Email != "alice@example.org" || svc.input.Password != "secret" {
		t.Errorf("service input = %+v", svc.input)
	}
}

func TestAuthHandler_Login_InvalidBody(t *testing.T) {
	t.Parallel()

	h := NewAuthHandler(&authServiceStub{}, testLogger())

	req := httptest.NewRequest(http.MethodPost, "/api/login", strings.NewReader(`{bad json`))
	rec := httptest.NewRecorder()
	h.Login(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestAuthHandler_Login_ErrorMapping(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		err    error
		status int
	}{
		{"wrong password", domain.ErrUnauthorized, http.StatusUnauthorized},
		{"not whitelisted", domain.ErrForbidden, http.StatusForbidden},
		{"whitelist unavailable", domain.ErrUnavailable, http.StatusServiceUnavailable},
		{"bad input", domain.ErrValidation, http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			h := NewAuthHandler(&authServiceStub{err: tt.err}, testLogger())

			req := httptest.NewRequest(http.MethodPost, "/api/login",
				strings.NewReader(`{"email":"a@b.c","password":"x"}`))
			rec := httptest.NewRecorder()
			h.Login(rec, req)

			if rec.Code != tt.status {
				t.Errorf("status = %d, want %d", rec.Code, tt.status)
			}
		})
	}
}

package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"hrms/internal/domain/authz"
)

func TestFailErrMapsCoreKinds(t *testing.T) {
	cases := []struct {
		kind   authz.ErrorKind
		status int
	}{
		{authz.ErrorUnauthenticated, http.StatusUnauthorized},
		{authz.ErrorForbidden, http.StatusForbidden},
		{authz.ErrorConflict, http.StatusConflict},
		{authz.ErrorInvalidTransition, http.StatusConflict},
		{authz.ErrorValidation, http.StatusBadRequest},
	}

	for _, tc := range cases {
		t.Run(string(tc.kind), func(t *testing.T) {
			rec := httptest.NewRecorder()
			FailErr(rec, authz.NewError(tc.kind, "denied"), "req-1")

			if rec.Code != tc.status {
				t.Fatalf("kind %s mapped to %d, want %d", tc.kind, rec.Code, tc.status)
			}
			var envelope Envelope
			if err := json.NewDecoder(rec.Body).Decode(&envelope); err != nil {
				t.Fatalf("decode response: %v", err)
			}
			if envelope.Success {
				t.Fatal("failure envelope must not report success")
			}
			if envelope.Error == nil || envelope.Error.Code != string(tc.kind) {
				t.Fatalf("unexpected error payload: %+v", envelope.Error)
			}
			if envelope.RequestID != "req-1" {
				t.Fatalf("request id not echoed: %q", envelope.RequestID)
			}
		})
	}
}

func TestFailErrUnwrapsCoreErrors(t *testing.T) {
	wrapped := fmt.Errorf("approve leave: %w", authz.NewError(authz.ErrorForbidden, "no approval grant"))

	rec := httptest.NewRecorder()
	FailErr(rec, wrapped, "req-2")

	if rec.Code != http.StatusForbidden {
		t.Fatalf("wrapped core error mapped to %d, want 403", rec.Code)
	}
}

func TestFailErrHidesUnknownErrors(t *testing.T) {
	rec := httptest.NewRecorder()
	FailErr(rec, errors.New("connection reset by peer"), "req-3")

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("unknown error mapped to %d, want 500", rec.Code)
	}
	var envelope Envelope
	if err := json.NewDecoder(rec.Body).Decode(&envelope); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if envelope.Error == nil || envelope.Error.Code != "internal_error" {
		t.Fatalf("unexpected error payload: %+v", envelope.Error)
	}
	if envelope.Error.Message == "connection reset by peer" {
		t.Fatal("internal error detail must not leak to the client")
	}
}

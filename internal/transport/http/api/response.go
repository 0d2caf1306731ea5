package api

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"hrms/internal/domain/authz"
)

type Error struct {
	Code    string         `json:"code"`
	Message string         `json:"message"`
	Details map[string]any `json:"details,omitempty"`
}

type Envelope struct {
	Success   bool   `json:"success"`
	Data      any    `json:"data,omitempty"`
	Error     *Error `json:"error,omitempty"`
	RequestID string `json:"requestId,omitempty"`
}

func WriteJSON(w http.ResponseWriter, status int, payload Envelope) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		slog.Warn("write json failed", "err", err)
	}
}

func Success(w http.ResponseWriter, data any, requestID string) {
	WriteJSON(w, http.StatusOK, Envelope{Success: true, Data: data, RequestID: requestID})
}

func Created(w http.ResponseWriter, data any, requestID string) {
	WriteJSON(w, http.StatusCreated, Envelope{Success: true, Data: data, RequestID: requestID})
}

func Fail(w http.ResponseWriter, status int, code, message, requestID string) {
	WriteJSON(w, status, Envelope{Success: false, Error: &Error{Code: code, Message: message}, RequestID: requestID})
}

func FailWithDetails(w http.ResponseWriter, status int, code, message string, details map[string]any, requestID string) {
	WriteJSON(w, status, Envelope{Success: false, Error: &Error{Code: code, Message: message, Details: details}, RequestID: requestID})
}

// FailKind maps a core error kind to its transport response.
func FailKind(w http.ResponseWriter, kind authz.ErrorKind, message, requestID string) {
	Fail(w, kind.HTTPStatus(), string(kind), message, requestID)
}

// FailErr writes the response for a domain error: core errors map by kind,
// anything else is an internal failure the caller did not anticipate.
func FailErr(w http.ResponseWriter, err error, requestID string) {
	if kind, ok := authz.KindOf(err); ok {
		FailKind(w, kind, err.Error(), requestID)
		return
	}
	Fail(w, http.StatusInternalServerError, "internal_error", "request failed", requestID)
}

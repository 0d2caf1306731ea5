package authhandler

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/mail"
	"strings"

	"github.com/go-chi/chi/v5"

	"hrms/internal/domain/accounts"
	"hrms/internal/domain/audit"
	"hrms/internal/transport/http/api"
	"hrms/internal/transport/http/middleware"
	"hrms/internal/transport/http/shared"
)

type Handler struct {
	Service *accounts.Service
	Audit   *audit.Service
}

func NewHandler(service *accounts.Service, auditSvc *audit.Service) *Handler {
	return &Handler{Service: service, Audit: auditSvc}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/auth", func(r chi.Router) {
		r.Post("/login", h.handleLogin)
		r.Post("/register", h.handleRegister)
		r.With(middleware.RequireAuth).Post("/logout", h.handleLogout)
	})
}

type credentialsPayload struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *Handler) handleLogin(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	var payload credentialsPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", requestID)
		return
	}

	result, err := h.Service.Login(r.Context(), strings.TrimSpace(payload.Email), payload.Password)
	if errors.Is(err, accounts.ErrInvalidCredentials) {
		h.Audit.Denied(r.Context(), payload.Email, "auth.login", "user", "", requestID, shared.ClientIP(r))
		api.Fail(w, http.StatusUnauthorized, "invalid_credentials", "invalid email or password", requestID)
		return
	}
	if err != nil {
		api.FailErr(w, err, requestID)
		return
	}

	h.Audit.Record(r.Context(), audit.Event{
		ActorID:   result.UserID,
		Action:    "auth.login",
		Allowed:   true,
		RequestID: requestID,
		IP:        shared.ClientIP(r),
	})
	api.Success(w, map[string]any{
		"token":     result.Token,
		"expiresAt": result.ExpiresAt,
		"role":      result.Role,
	}, requestID)
}

func (h *Handler) handleRegister(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	var payload credentialsPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", requestID)
		return
	}

	v := shared.NewValidator()
	email := strings.TrimSpace(payload.Email)
	v.Required("email", email, "email is required")
	if email != "" {
		if _, err := mail.ParseAddress(email); err != nil {
			v.Add("email", "must be a valid email address")
		}
	}
	if len(payload.Password) < 8 {
		v.Add("password", "must be at least 8 characters")
	}
	if v.Reject(w, requestID) {
		return
	}

	id, err := h.Service.Register(r.Context(), email, payload.Password)
	if errors.Is(err, accounts.ErrEmailInUse) {
		api.Fail(w, http.StatusConflict, "email_in_use", "email already registered", requestID)
		return
	}
	if err != nil {
		api.FailErr(w, err, requestID)
		return
	}
	api.Created(w, map[string]string{"id": id}, requestID)
}

func (h *Handler) handleLogout(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	p, _ := middleware.GetPrincipal(r.Context())

	if err := h.Service.Logout(r.Context(), p); err != nil {
		api.FailErr(w, err, requestID)
		return
	}
	api.Success(w, map[string]string{"status": "logged_out"}, requestID)
}

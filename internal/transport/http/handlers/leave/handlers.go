package leavehandler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"hrms/internal/domain/audit"
	"hrms/internal/domain/authz"
	"hrms/internal/domain/leave"
	"hrms/internal/domain/notifications"
	"hrms/internal/transport/http/api"
	"hrms/internal/transport/http/middleware"
	"hrms/internal/transport/http/shared"
)

type Handler struct {
	Service *leave.Service
	Notify  *notifications.Store
	Audit   *audit.Service
}

func NewHandler(service *leave.Service, notify *notifications.Store, auditSvc *audit.Service) *Handler {
	return &Handler{Service: service, Notify: notify, Audit: auditSvc}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/leave", func(r chi.Router) {
		r.Use(middleware.RequireAuth)
		r.Get("/requests", h.handleList)
		r.Post("/requests", h.handleCreate)
		r.Get("/requests/{requestID}", h.handleGet)
		r.Post("/requests/{requestID}/approve", h.handleApprove)
		r.Post("/requests/{requestID}/reject", h.handleReject)
	})
}

type createPayload struct {
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
	Reason    string `json:"reason"`
}

func (h *Handler) handleCreate(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	p, _ := middleware.GetPrincipal(r.Context())

	var payload createPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", requestID)
		return
	}

	v := shared.NewValidator()
	startDate, startOK := v.Date("startDate", payload.StartDate)
	endDate, endOK := v.Date("endDate", payload.EndDate)
	if startOK && endOK {
		v.DateOrder("startDate", startDate, "endDate", endDate)
	}
	if v.Reject(w, requestID) {
		return
	}

	req, err := h.Service.CreateRequest(r.Context(), p, strings.TrimSpace(payload.Reason), startDate, endDate)
	if err != nil {
		api.FailErr(w, err, requestID)
		return
	}
	h.Audit.Record(r.Context(), audit.Event{
		ActorID: p.ActorID(), Action: "leave.request.create", EntityType: "leave_request", EntityID: req.ID,
		Allowed: true, RequestID: requestID, IP: shared.ClientIP(r),
	})
	api.Created(w, req, requestID)
}

func (h *Handler) handleGet(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	p, _ := middleware.GetPrincipal(r.Context())

	req, err := h.Service.GetRequest(r.Context(), p, chi.URLParam(r, "requestID"))
	if errors.Is(err, leave.ErrNotFound) {
		api.Fail(w, http.StatusNotFound, "not_found", "leave request not found", requestID)
		return
	}
	if err != nil {
		api.FailErr(w, err, requestID)
		return
	}
	api.Success(w, req, requestID)
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	p, _ := middleware.GetPrincipal(r.Context())

	page := shared.ParsePagination(r, 100, 500)
	requests, err := h.Service.ListRequests(r.Context(), p, page.Limit, page.Offset)
	if err != nil {
		api.FailErr(w, err, requestID)
		return
	}
	api.Success(w, requests, requestID)
}

func (h *Handler) handleApprove(w http.ResponseWriter, r *http.Request) {
	h.decide(w, r, authz.ActionApprove)
}

func (h *Handler) handleReject(w http.ResponseWriter, r *http.Request) {
	h.decide(w, r, authz.ActionReject)
}

type decidePayload struct {
	Reason string `json:"reason"`
}

func (h *Handler) decide(w http.ResponseWriter, r *http.Request, action authz.Action) {
	requestID := middleware.GetRequestID(r.Context())
	p, _ := middleware.GetPrincipal(r.Context())
	leaveID := chi.URLParam(r, "requestID")

	var payload decidePayload
	if r.Body != nil && r.ContentLength != 0 {
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", requestID)
			return
		}
	}

	req, err := h.Service.Decide(r.Context(), p, leaveID, action, payload.Reason)
	if errors.Is(err, leave.ErrNotFound) {
		api.Fail(w, http.StatusNotFound, "not_found", "leave request not found", requestID)
		return
	}
	if err != nil {
		if kind, ok := authz.KindOf(err); ok && kind == authz.ErrorForbidden {
			h.Audit.Denied(r.Context(), p.ActorID(), "leave.request."+string(action), "leave_request", leaveID, requestID, shared.ClientIP(r))
		}
		api.FailErr(w, err, requestID)
		return
	}

	h.Audit.Record(r.Context(), audit.Event{
		ActorID: p.ActorID(), Action: "leave.request." + string(action), EntityType: "leave_request", EntityID: leaveID,
		Allowed: true, RequestID: requestID, IP: shared.ClientIP(r),
	})

	title := "Leave approved"
	body := "Your leave request was approved."
	if req.Status == leave.StatusRejected {
		title = "Leave rejected"
		body = "Your leave request was rejected: " + req.RejectionReason
	}
	if err := h.Notify.Notify(r.Context(), req.EmployeeID, "leave", title, body); err != nil {
		slog.Warn("leave decision notification failed", "requestId", leaveID, "err", err)
	}

	api.Success(w, req, requestID)
}

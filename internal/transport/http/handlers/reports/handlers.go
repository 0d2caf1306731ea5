package reportshandler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"hrms/internal/domain/audit"
	"hrms/internal/domain/authz"
	"hrms/internal/domain/reports"
	"hrms/internal/transport/http/api"
	"hrms/internal/transport/http/middleware"
	"hrms/internal/transport/http/shared"
)

// Handler serves module-wide aggregates. Everything here is gated on the
// reports module as a whole; there is no per-record decision to make.
type Handler struct {
	Service *reports.Service
	Audit   *audit.Service
}

func NewHandler(service *reports.Service, auditSvc *audit.Service) *Handler {
	return &Handler{Service: service, Audit: auditSvc}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/reports", func(r chi.Router) {
		r.Use(middleware.RequireAuth)
		r.Use(middleware.RequireModule(authz.ModuleReports))
		r.Get("/headcount", h.handleHeadcount)
		r.Get("/leave", h.handleLeaveStatus)
		r.Get("/training", h.handleTrainingUptake)
		r.Get("/audit", h.handleAuditLog)
	})
}

func (h *Handler) handleHeadcount(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	result, err := h.Service.Headcount(r.Context())
	if err != nil {
		api.FailErr(w, err, requestID)
		return
	}
	api.Success(w, result, requestID)
}

func (h *Handler) handleLeaveStatus(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	summary, err := h.Service.LeaveStatus(r.Context())
	if err != nil {
		api.FailErr(w, err, requestID)
		return
	}
	api.Success(w, summary, requestID)
}

func (h *Handler) handleTrainingUptake(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	result, err := h.Service.TrainingUptake(r.Context())
	if err != nil {
		api.FailErr(w, err, requestID)
		return
	}
	api.Success(w, result, requestID)
}

func (h *Handler) handleAuditLog(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	page := shared.ParsePagination(r, 100, 500)
	events, err := h.Audit.List(r.Context(), page.Limit, page.Offset)
	if err != nil {
		api.FailErr(w, err, requestID)
		return
	}
	api.Success(w, events, requestID)
}

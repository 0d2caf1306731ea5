package conducthandler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"hrms/internal/domain/audit"
	"hrms/internal/domain/conduct"
	"hrms/internal/transport/http/api"
	"hrms/internal/transport/http/middleware"
	"hrms/internal/transport/http/shared"
)

type Handler struct {
	Service *conduct.Service
	Audit   *audit.Service
}

func NewHandler(service *conduct.Service, auditSvc *audit.Service) *Handler {
	return &Handler{Service: service, Audit: auditSvc}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/conduct", func(r chi.Router) {
		r.Use(middleware.RequireAuth)
		r.Get("/discipline", h.listCategory(conduct.CategoryDiscipline))
		r.Post("/discipline", h.issueCategory(conduct.CategoryDiscipline))
		r.Get("/rewards", h.listCategory(conduct.CategoryReward))
		r.Post("/rewards", h.issueCategory(conduct.CategoryReward))
		r.Get("/{recordID}", h.handleGet)
	})
}

type issuePayload struct {
	EmployeeID  string `json:"employeeId"`
	Title       string `json:"title"`
	Description string `json:"description"`
	IssuedAt    string `json:"issuedAt"`
}

func (h *Handler) issueCategory(category conduct.Category) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		requestID := middleware.GetRequestID(r.Context())
		p, _ := middleware.GetPrincipal(r.Context())

		var payload issuePayload
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", requestID)
			return
		}
		v := shared.NewValidator()
		v.Required("employeeId", payload.EmployeeID, "employee id is required")
		v.Required("title", payload.Title, "title is required")
		record := conduct.Record{
			EmployeeID:  strings.TrimSpace(payload.EmployeeID),
			Category:    category,
			Title:       strings.TrimSpace(payload.Title),
			Description: strings.TrimSpace(payload.Description),
		}
		if payload.IssuedAt != "" {
			if issued, ok := v.Date("issuedAt", payload.IssuedAt); ok {
				record.IssuedAt = &issued
			}
		}
		if v.Reject(w, requestID) {
			return
		}

		created, err := h.Service.Issue(r.Context(), p, record)
		if err != nil {
			api.FailErr(w, err, requestID)
			return
		}
		h.Audit.Record(r.Context(), audit.Event{
			ActorID: p.ActorID(), Action: "conduct." + strings.ToLower(string(category)) + ".issue",
			EntityType: "conduct_record", EntityID: created.ID,
			Allowed: true, RequestID: requestID, IP: shared.ClientIP(r),
		})
		api.Created(w, created, requestID)
	}
}

func (h *Handler) listCategory(category conduct.Category) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		requestID := middleware.GetRequestID(r.Context())
		p, _ := middleware.GetPrincipal(r.Context())

		page := shared.ParsePagination(r, 100, 500)
		records, err := h.Service.List(r.Context(), p, category, page.Limit, page.Offset)
		if err != nil {
			api.FailErr(w, err, requestID)
			return
		}
		api.Success(w, records, requestID)
	}
}

func (h *Handler) handleGet(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	p, _ := middleware.GetPrincipal(r.Context())

	record, err := h.Service.Get(r.Context(), p, chi.URLParam(r, "recordID"))
	if errors.Is(err, conduct.ErrNotFound) {
		api.Fail(w, http.StatusNotFound, "not_found", "conduct record not found", requestID)
		return
	}
	if err != nil {
		api.FailErr(w, err, requestID)
		return
	}
	api.Success(w, record, requestID)
}

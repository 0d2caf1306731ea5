package performancehandler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"hrms/internal/domain/audit"
	"hrms/internal/domain/performance"
	"hrms/internal/transport/http/api"
	"hrms/internal/transport/http/middleware"
	"hrms/internal/transport/http/shared"
)

type Handler struct {
	Service *performance.Service
	Audit   *audit.Service
}

func NewHandler(service *performance.Service, auditSvc *audit.Service) *Handler {
	return &Handler{Service: service, Audit: auditSvc}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/performance", func(r chi.Router) {
		r.Use(middleware.RequireAuth)
		r.Get("/goals", h.handleListGoals)
		r.Post("/goals", h.handleCreateGoal)
		r.Get("/goals/{goalID}", h.handleGetGoal)
		r.Put("/goals/{goalID}/status", h.handleUpdateGoalStatus)
		r.Get("/reviews", h.handleListReviews)
		r.Post("/reviews", h.handleCreateReview)
		r.Get("/reviews/{reviewID}", h.handleGetReview)
	})
}

type goalPayload struct {
	EmployeeID  string `json:"employeeId"`
	Title       string `json:"title"`
	Description string `json:"description"`
	DueDate     string `json:"dueDate"`
}

func (h *Handler) handleCreateGoal(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	p, _ := middleware.GetPrincipal(r.Context())

	var payload goalPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", requestID)
		return
	}
	v := shared.NewValidator()
	v.Required("employeeId", payload.EmployeeID, "employee id is required")
	v.Required("title", payload.Title, "title is required")
	goal := performance.Goal{
		EmployeeID:  strings.TrimSpace(payload.EmployeeID),
		Title:       strings.TrimSpace(payload.Title),
		Description: strings.TrimSpace(payload.Description),
	}
	if payload.DueDate != "" {
		if due, ok := v.Date("dueDate", payload.DueDate); ok {
			goal.DueDate = &due
		}
	}
	if v.Reject(w, requestID) {
		return
	}

	created, err := h.Service.CreateGoal(r.Context(), p, goal)
	if err != nil {
		api.FailErr(w, err, requestID)
		return
	}
	h.Audit.Record(r.Context(), audit.Event{
		ActorID: p.ActorID(), Action: "performance.goal.create", EntityType: "performance_goal", EntityID: created.ID,
		Allowed: true, RequestID: requestID, IP: shared.ClientIP(r),
	})
	api.Created(w, created, requestID)
}

func (h *Handler) handleGetGoal(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	p, _ := middleware.GetPrincipal(r.Context())

	goal, err := h.Service.GetGoal(r.Context(), p, chi.URLParam(r, "goalID"))
	if errors.Is(err, performance.ErrNotFound) {
		api.Fail(w, http.StatusNotFound, "not_found", "goal not found", requestID)
		return
	}
	if err != nil {
		api.FailErr(w, err, requestID)
		return
	}
	api.Success(w, goal, requestID)
}

type goalStatusPayload struct {
	Status string `json:"status"`
}

func (h *Handler) handleUpdateGoalStatus(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	p, _ := middleware.GetPrincipal(r.Context())

	var payload goalStatusPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", requestID)
		return
	}
	v := shared.NewValidator()
	v.Required("status", payload.Status, "status is required")
	if v.Reject(w, requestID) {
		return
	}

	goal, err := h.Service.UpdateGoalStatus(r.Context(), p, chi.URLParam(r, "goalID"), strings.TrimSpace(payload.Status))
	if errors.Is(err, performance.ErrNotFound) {
		api.Fail(w, http.StatusNotFound, "not_found", "goal not found", requestID)
		return
	}
	if err != nil {
		api.FailErr(w, err, requestID)
		return
	}
	api.Success(w, goal, requestID)
}

func (h *Handler) handleListGoals(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	p, _ := middleware.GetPrincipal(r.Context())

	page := shared.ParsePagination(r, 100, 500)
	goals, err := h.Service.ListGoals(r.Context(), p, page.Limit, page.Offset)
	if err != nil {
		api.FailErr(w, err, requestID)
		return
	}
	api.Success(w, goals, requestID)
}

type reviewPayload struct {
	EmployeeID string `json:"employeeId"`
	Period     string `json:"period"`
	Rating     int    `json:"rating"`
	Summary    string `json:"summary"`
}

func (h *Handler) handleCreateReview(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	p, _ := middleware.GetPrincipal(r.Context())

	var payload reviewPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", requestID)
		return
	}
	v := shared.NewValidator()
	v.Required("employeeId", payload.EmployeeID, "employee id is required")
	v.Required("period", payload.Period, "period is required")
	if payload.Rating < 1 || payload.Rating > 5 {
		v.Add("rating", "must be between 1 and 5")
	}
	if v.Reject(w, requestID) {
		return
	}

	created, err := h.Service.CreateReview(r.Context(), p, performance.Review{
		EmployeeID: strings.TrimSpace(payload.EmployeeID),
		Period:     strings.TrimSpace(payload.Period),
		Rating:     payload.Rating,
		Summary:    strings.TrimSpace(payload.Summary),
	})
	if err != nil {
		api.FailErr(w, err, requestID)
		return
	}
	h.Audit.Record(r.Context(), audit.Event{
		ActorID: p.ActorID(), Action: "performance.review.create", EntityType: "performance_review", EntityID: created.ID,
		Allowed: true, RequestID: requestID, IP: shared.ClientIP(r),
	})
	api.Created(w, created, requestID)
}

func (h *Handler) handleGetReview(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	p, _ := middleware.GetPrincipal(r.Context())

	review, err := h.Service.GetReview(r.Context(), p, chi.URLParam(r, "reviewID"))
	if errors.Is(err, performance.ErrNotFound) {
		api.Fail(w, http.StatusNotFound, "not_found", "review not found", requestID)
		return
	}
	if err != nil {
		api.FailErr(w, err, requestID)
		return
	}
	api.Success(w, review, requestID)
}

func (h *Handler) handleListReviews(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	p, _ := middleware.GetPrincipal(r.Context())

	page := shared.ParsePagination(r, 100, 500)
	reviews, err := h.Service.ListReviews(r.Context(), p, page.Limit, page.Offset)
	if err != nil {
		api.FailErr(w, err, requestID)
		return
	}
	api.Success(w, reviews, requestID)
}

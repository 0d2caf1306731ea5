package traininghandler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"hrms/internal/domain/audit"
	"hrms/internal/domain/training"
	"hrms/internal/transport/http/api"
	"hrms/internal/transport/http/middleware"
	"hrms/internal/transport/http/shared"
)

type Handler struct {
	Service *training.Service
	Audit   *audit.Service
}

func NewHandler(service *training.Service, auditSvc *audit.Service) *Handler {
	return &Handler{Service: service, Audit: auditSvc}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/training", func(r chi.Router) {
		r.Use(middleware.RequireAuth)
		r.Get("/programs", h.handleListPrograms)
		r.Post("/programs", h.handleCreateProgram)
		r.Get("/programs/{programID}", h.handleGetProgram)
		r.Get("/programs/{programID}/enrollments", h.handleListEnrollments)
		r.Post("/programs/{programID}/enrollments", h.handleEnroll)
	})
}

type programPayload struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	StartsOn    string `json:"startsOn"`
	EndsOn      string `json:"endsOn"`
	Capacity    int    `json:"capacity"`
}

func (h *Handler) handleCreateProgram(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	p, _ := middleware.GetPrincipal(r.Context())

	var payload programPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", requestID)
		return
	}
	v := shared.NewValidator()
	v.Required("title", payload.Title, "title is required")
	if payload.Capacity < 0 {
		v.Add("capacity", "must not be negative")
	}
	program := training.Program{
		Title:       strings.TrimSpace(payload.Title),
		Description: strings.TrimSpace(payload.Description),
		Capacity:    payload.Capacity,
	}
	if payload.StartsOn != "" {
		if starts, ok := v.Date("startsOn", payload.StartsOn); ok {
			program.StartsOn = &starts
		}
	}
	if payload.EndsOn != "" {
		if ends, ok := v.Date("endsOn", payload.EndsOn); ok {
			program.EndsOn = &ends
		}
	}
	if program.StartsOn != nil && program.EndsOn != nil {
		v.DateOrder("startsOn", *program.StartsOn, "endsOn", *program.EndsOn)
	}
	if v.Reject(w, requestID) {
		return
	}

	created, err := h.Service.CreateProgram(r.Context(), p, program)
	if err != nil {
		api.FailErr(w, err, requestID)
		return
	}
	h.Audit.Record(r.Context(), audit.Event{
		ActorID: p.ActorID(), Action: "training.program.create", EntityType: "training_program", EntityID: created.ID,
		Allowed: true, RequestID: requestID, IP: shared.ClientIP(r),
	})
	api.Created(w, created, requestID)
}

func (h *Handler) handleGetProgram(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	p, _ := middleware.GetPrincipal(r.Context())

	program, err := h.Service.GetProgram(r.Context(), p, chi.URLParam(r, "programID"))
	if errors.Is(err, training.ErrNotFound) {
		api.Fail(w, http.StatusNotFound, "not_found", "program not found", requestID)
		return
	}
	if err != nil {
		api.FailErr(w, err, requestID)
		return
	}
	api.Success(w, program, requestID)
}

func (h *Handler) handleListPrograms(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	p, _ := middleware.GetPrincipal(r.Context())

	page := shared.ParsePagination(r, 100, 500)
	programs, err := h.Service.ListPrograms(r.Context(), p, page.Limit, page.Offset)
	if err != nil {
		api.FailErr(w, err, requestID)
		return
	}
	api.Success(w, programs, requestID)
}

type enrollPayload struct {
	EmployeeID string `json:"employeeId"`
}

func (h *Handler) handleEnroll(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	p, _ := middleware.GetPrincipal(r.Context())
	programID := chi.URLParam(r, "programID")

	var payload enrollPayload
	if r.Body != nil && r.ContentLength != 0 {
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", requestID)
			return
		}
	}

	id, err := h.Service.Enroll(r.Context(), p, programID, strings.TrimSpace(payload.EmployeeID))
	if errors.Is(err, training.ErrNotFound) {
		api.Fail(w, http.StatusNotFound, "not_found", "program not found", requestID)
		return
	}
	if errors.Is(err, training.ErrAlreadyEnrolled) {
		api.Fail(w, http.StatusConflict, "already_enrolled", "employee already enrolled in program", requestID)
		return
	}
	if errors.Is(err, training.ErrProgramFull) {
		api.Fail(w, http.StatusConflict, "program_full", "program is at capacity", requestID)
		return
	}
	if err != nil {
		api.FailErr(w, err, requestID)
		return
	}
	h.Audit.Record(r.Context(), audit.Event{
		ActorID: p.ActorID(), Action: "training.enroll", EntityType: "training_enrollment", EntityID: id,
		Allowed: true, RequestID: requestID, IP: shared.ClientIP(r),
	})
	api.Created(w, map[string]string{"id": id}, requestID)
}

func (h *Handler) handleListEnrollments(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	p, _ := middleware.GetPrincipal(r.Context())

	page := shared.ParsePagination(r, 100, 500)
	enrollments, err := h.Service.ListEnrollments(r.Context(), p, chi.URLParam(r, "programID"), page.Limit, page.Offset)
	if err != nil {
		api.FailErr(w, err, requestID)
		return
	}
	api.Success(w, enrollments, requestID)
}

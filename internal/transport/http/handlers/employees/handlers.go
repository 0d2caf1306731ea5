package employeeshandler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"hrms/internal/domain/audit"
	"hrms/internal/domain/employees"
	"hrms/internal/transport/http/api"
	"hrms/internal/transport/http/middleware"
	"hrms/internal/transport/http/shared"
)

type Handler struct {
	Service *employees.Service
	Audit   *audit.Service
}

func NewHandler(service *employees.Service, auditSvc *audit.Service) *Handler {
	return &Handler{Service: service, Audit: auditSvc}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/employees", func(r chi.Router) {
		r.Use(middleware.RequireAuth)
		r.Get("/", h.handleList)
		r.Post("/", h.handleCreate)
		r.Get("/{employeeID}", h.handleGet)
		r.Put("/{employeeID}", h.handleUpdate)
		r.Delete("/{employeeID}", h.handleDelete)
		r.Get("/{employeeID}/education", h.handleListEducation)
		r.Post("/{employeeID}/education", h.handleAddEducation)
		r.Get("/{employeeID}/experience", h.handleListExperience)
		r.Post("/{employeeID}/experience", h.handleAddExperience)
		r.Get("/{employeeID}/insurance", h.handleListInsurance)
		r.Post("/{employeeID}/insurance", h.handleAddInsurance)
	})
}

type profilePayload struct {
	EmployeeNumber string `json:"employeeNumber"`
	FirstName      string `json:"firstName"`
	LastName       string `json:"lastName"`
	Email          string `json:"email"`
	Phone          string `json:"phone"`
	Department     string `json:"department"`
	Position       string `json:"position"`
	HireDate       string `json:"hireDate"`
	Status         string `json:"status"`
}

func (p profilePayload) toInput(v *shared.Validator) employees.ProfileInput {
	input := employees.ProfileInput{
		EmployeeNumber: strings.TrimSpace(p.EmployeeNumber),
		FirstName:      strings.TrimSpace(p.FirstName),
		LastName:       strings.TrimSpace(p.LastName),
		Email:          strings.TrimSpace(p.Email),
		Phone:          strings.TrimSpace(p.Phone),
		Department:     strings.TrimSpace(p.Department),
		Position:       strings.TrimSpace(p.Position),
		Status:         strings.TrimSpace(p.Status),
	}
	v.Required("firstName", input.FirstName, "first name is required")
	v.Required("lastName", input.LastName, "last name is required")
	v.Required("email", input.Email, "email is required")
	if p.HireDate != "" {
		if hired, ok := v.Date("hireDate", p.HireDate); ok {
			input.HireDate = &hired
		}
	}
	return input
}

func (h *Handler) handleCreate(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	p, _ := middleware.GetPrincipal(r.Context())

	var payload profilePayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", requestID)
		return
	}
	v := shared.NewValidator()
	input := payload.toInput(v)
	v.Required("employeeNumber", input.EmployeeNumber, "employee number is required")
	if v.Reject(w, requestID) {
		return
	}

	emp, err := h.Service.CreateProfile(r.Context(), p, input)
	if err != nil {
		api.FailErr(w, err, requestID)
		return
	}
	h.Audit.Record(r.Context(), audit.Event{
		ActorID: p.ActorID(), Action: "employee.create", EntityType: "employee", EntityID: emp.ID,
		Allowed: true, RequestID: requestID, IP: shared.ClientIP(r),
	})
	api.Created(w, emp, requestID)
}

func (h *Handler) handleGet(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	p, _ := middleware.GetPrincipal(r.Context())

	emp, err := h.Service.GetProfile(r.Context(), p, chi.URLParam(r, "employeeID"))
	if errors.Is(err, employees.ErrNotFound) {
		api.Fail(w, http.StatusNotFound, "not_found", "employee not found", requestID)
		return
	}
	if err != nil {
		api.FailErr(w, err, requestID)
		return
	}
	api.Success(w, emp, requestID)
}

func (h *Handler) handleUpdate(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	p, _ := middleware.GetPrincipal(r.Context())
	employeeID := chi.URLParam(r, "employeeID")

	var payload profilePayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", requestID)
		return
	}
	v := shared.NewValidator()
	input := payload.toInput(v)
	if v.Reject(w, requestID) {
		return
	}

	emp, err := h.Service.UpdateProfile(r.Context(), p, employeeID, input)
	if errors.Is(err, employees.ErrNotFound) {
		api.Fail(w, http.StatusNotFound, "not_found", "employee not found", requestID)
		return
	}
	if err != nil {
		api.FailErr(w, err, requestID)
		return
	}
	h.Audit.Record(r.Context(), audit.Event{
		ActorID: p.ActorID(), Action: "employee.update", EntityType: "employee", EntityID: employeeID,
		Allowed: true, RequestID: requestID, IP: shared.ClientIP(r),
	})
	api.Success(w, emp, requestID)
}

func (h *Handler) handleDelete(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	p, _ := middleware.GetPrincipal(r.Context())
	employeeID := chi.URLParam(r, "employeeID")

	err := h.Service.DeleteProfile(r.Context(), p, employeeID)
	if errors.Is(err, employees.ErrNotFound) {
		api.Fail(w, http.StatusNotFound, "not_found", "employee not found", requestID)
		return
	}
	if err != nil {
		api.FailErr(w, err, requestID)
		return
	}
	h.Audit.Record(r.Context(), audit.Event{
		ActorID: p.ActorID(), Action: "employee.delete", EntityType: "employee", EntityID: employeeID,
		Allowed: true, RequestID: requestID, IP: shared.ClientIP(r),
	})
	api.Success(w, map[string]string{"status": "deleted"}, requestID)
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	p, _ := middleware.GetPrincipal(r.Context())

	page := shared.ParsePagination(r, 100, 500)
	list, err := h.Service.ListProfiles(r.Context(), p, page.Limit, page.Offset)
	if err != nil {
		api.FailErr(w, err, requestID)
		return
	}
	api.Success(w, list, requestID)
}

type educationPayload struct {
	School    string `json:"school"`
	Degree    string `json:"degree"`
	Field     string `json:"field"`
	StartYear *int   `json:"startYear"`
	EndYear   *int   `json:"endYear"`
}

func (h *Handler) handleAddEducation(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	p, _ := middleware.GetPrincipal(r.Context())

	var payload educationPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", requestID)
		return
	}
	v := shared.NewValidator()
	v.Required("school", payload.School, "school is required")
	if v.Reject(w, requestID) {
		return
	}

	id, err := h.Service.AddEducation(r.Context(), p, employees.Education{
		EmployeeID: chi.URLParam(r, "employeeID"),
		School:     strings.TrimSpace(payload.School),
		Degree:     strings.TrimSpace(payload.Degree),
		Field:      strings.TrimSpace(payload.Field),
		StartYear:  payload.StartYear,
		EndYear:    payload.EndYear,
	})
	if err != nil {
		api.FailErr(w, err, requestID)
		return
	}
	api.Created(w, map[string]string{"id": id}, requestID)
}

func (h *Handler) handleListEducation(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	p, _ := middleware.GetPrincipal(r.Context())

	list, err := h.Service.ListEducation(r.Context(), p, chi.URLParam(r, "employeeID"))
	if err != nil {
		api.FailErr(w, err, requestID)
		return
	}
	api.Success(w, list, requestID)
}

type experiencePayload struct {
	Company     string `json:"company"`
	Title       string `json:"title"`
	StartDate   string `json:"startDate"`
	EndDate     string `json:"endDate"`
	Description string `json:"description"`
}

func (h *Handler) handleAddExperience(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	p, _ := middleware.GetPrincipal(r.Context())

	var payload experiencePayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", requestID)
		return
	}
	v := shared.NewValidator()
	v.Required("company", payload.Company, "company is required")
	var startDate, endDate *time.Time
	if payload.StartDate != "" {
		if parsed, ok := v.Date("startDate", payload.StartDate); ok {
			startDate = &parsed
		}
	}
	if payload.EndDate != "" {
		if parsed, ok := v.Date("endDate", payload.EndDate); ok {
			endDate = &parsed
		}
	}
	if startDate != nil && endDate != nil {
		v.DateOrder("startDate", *startDate, "endDate", *endDate)
	}
	if v.Reject(w, requestID) {
		return
	}

	id, err := h.Service.AddExperience(r.Context(), p, employees.Experience{
		EmployeeID:  chi.URLParam(r, "employeeID"),
		Company:     strings.TrimSpace(payload.Company),
		Title:       strings.TrimSpace(payload.Title),
		StartDate:   startDate,
		EndDate:     endDate,
		Description: strings.TrimSpace(payload.Description),
	})
	if err != nil {
		api.FailErr(w, err, requestID)
		return
	}
	api.Created(w, map[string]string{"id": id}, requestID)
}

func (h *Handler) handleListExperience(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	p, _ := middleware.GetPrincipal(r.Context())

	list, err := h.Service.ListExperience(r.Context(), p, chi.URLParam(r, "employeeID"))
	if err != nil {
		api.FailErr(w, err, requestID)
		return
	}
	api.Success(w, list, requestID)
}

type insurancePayload struct {
	Provider     string `json:"provider"`
	PolicyNumber string `json:"policyNumber"`
	Coverage     string `json:"coverage"`
	ValidFrom    string `json:"validFrom"`
	ValidTo      string `json:"validTo"`
}

func (h *Handler) handleAddInsurance(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	p, _ := middleware.GetPrincipal(r.Context())

	var payload insurancePayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", requestID)
		return
	}
	v := shared.NewValidator()
	v.Required("provider", payload.Provider, "provider is required")
	var validFrom, validTo *time.Time
	if payload.ValidFrom != "" {
		if parsed, ok := v.Date("validFrom", payload.ValidFrom); ok {
			validFrom = &parsed
		}
	}
	if payload.ValidTo != "" {
		if parsed, ok := v.Date("validTo", payload.ValidTo); ok {
			validTo = &parsed
		}
	}
	if v.Reject(w, requestID) {
		return
	}

	id, err := h.Service.AddInsurance(r.Context(), p, employees.Insurance{
		EmployeeID:   chi.URLParam(r, "employeeID"),
		Provider:     strings.TrimSpace(payload.Provider),
		PolicyNumber: strings.TrimSpace(payload.PolicyNumber),
		Coverage:     strings.TrimSpace(payload.Coverage),
		ValidFrom:    validFrom,
		ValidTo:      validTo,
	})
	if err != nil {
		api.FailErr(w, err, requestID)
		return
	}
	api.Created(w, map[string]string{"id": id}, requestID)
}

func (h *Handler) handleListInsurance(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	p, _ := middleware.GetPrincipal(r.Context())

	list, err := h.Service.ListInsurance(r.Context(), p, chi.URLParam(r, "employeeID"))
	if err != nil {
		api.FailErr(w, err, requestID)
		return
	}
	api.Success(w, list, requestID)
}

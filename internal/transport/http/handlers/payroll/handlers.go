package payrollhandler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"hrms/internal/domain/audit"
	"hrms/internal/domain/employees"
	"hrms/internal/domain/payroll"
	"hrms/internal/transport/http/api"
	"hrms/internal/transport/http/middleware"
	"hrms/internal/transport/http/shared"
)

type Handler struct {
	Service   *payroll.Service
	Employees *employees.Store
	Audit     *audit.Service
}

func NewHandler(service *payroll.Service, employeeStore *employees.Store, auditSvc *audit.Service) *Handler {
	return &Handler{Service: service, Employees: employeeStore, Audit: auditSvc}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/payroll", func(r chi.Router) {
		r.Use(middleware.RequireAuth)
		r.Get("/records", h.handleList)
		r.Post("/records", h.handleCreate)
		r.Get("/records/{recordID}", h.handleGet)
		r.Get("/records/{recordID}/payslip", h.handlePayslip)
	})
}

type recordPayload struct {
	EmployeeID  string  `json:"employeeId"`
	PeriodStart string  `json:"periodStart"`
	PeriodEnd   string  `json:"periodEnd"`
	Gross       float64 `json:"gross"`
	Deductions  float64 `json:"deductions"`
	Currency    string  `json:"currency"`
}

func (h *Handler) handleCreate(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	p, _ := middleware.GetPrincipal(r.Context())

	var payload recordPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", requestID)
		return
	}
	v := shared.NewValidator()
	v.Required("employeeId", payload.EmployeeID, "employee id is required")
	periodStart, startOK := v.Date("periodStart", payload.PeriodStart)
	periodEnd, endOK := v.Date("periodEnd", payload.PeriodEnd)
	if startOK && endOK {
		v.DateOrder("periodStart", periodStart, "periodEnd", periodEnd)
	}
	if payload.Gross < 0 {
		v.Add("gross", "must not be negative")
	}
	if payload.Deductions < 0 || payload.Deductions > payload.Gross {
		v.Add("deductions", "must be between zero and gross")
	}
	if v.Reject(w, requestID) {
		return
	}

	rec, err := h.Service.CreateRecord(r.Context(), p, payroll.RecordInput{
		EmployeeID:  strings.TrimSpace(payload.EmployeeID),
		PeriodStart: periodStart,
		PeriodEnd:   periodEnd,
		Gross:       payload.Gross,
		Deductions:  payload.Deductions,
		Currency:    strings.ToUpper(strings.TrimSpace(payload.Currency)),
	})
	if err != nil {
		api.FailErr(w, err, requestID)
		return
	}
	h.Audit.Record(r.Context(), audit.Event{
		ActorID: p.ActorID(), Action: "payroll.record.create", EntityType: "payroll_record", EntityID: rec.ID,
		Allowed: true, RequestID: requestID, IP: shared.ClientIP(r),
	})
	api.Created(w, rec, requestID)
}

func (h *Handler) handleGet(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	p, _ := middleware.GetPrincipal(r.Context())

	rec, err := h.Service.GetRecord(r.Context(), p, chi.URLParam(r, "recordID"))
	if errors.Is(err, payroll.ErrNotFound) {
		api.Fail(w, http.StatusNotFound, "not_found", "payroll record not found", requestID)
		return
	}
	if err != nil {
		api.FailErr(w, err, requestID)
		return
	}
	api.Success(w, rec, requestID)
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	p, _ := middleware.GetPrincipal(r.Context())

	page := shared.ParsePagination(r, 100, 500)
	records, err := h.Service.ListRecords(r.Context(), p, page.Limit, page.Offset)
	if err != nil {
		api.FailErr(w, err, requestID)
		return
	}
	api.Success(w, records, requestID)
}

func (h *Handler) handlePayslip(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	p, _ := middleware.GetPrincipal(r.Context())
	recordID := chi.URLParam(r, "recordID")

	rec, err := h.Service.GetRecord(r.Context(), p, recordID)
	if errors.Is(err, payroll.ErrNotFound) {
		api.Fail(w, http.StatusNotFound, "not_found", "payroll record not found", requestID)
		return
	}
	if err != nil {
		api.FailErr(w, err, requestID)
		return
	}

	var employeeName string
	if emp, err := h.Employees.Get(r.Context(), rec.EmployeeID); err == nil {
		employeeName = emp.FirstName + " " + emp.LastName
	}

	data, err := h.Service.Payslip(r.Context(), p, recordID, employeeName)
	if err != nil {
		api.FailErr(w, err, requestID)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", "payslip-"+recordID+".pdf"))
	w.Header().Set("Content-Length", strconv.Itoa(len(data)))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}

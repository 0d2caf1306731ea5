package documentshandler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"hrms/internal/domain/audit"
	"hrms/internal/domain/authz"
	"hrms/internal/domain/documents"
	"hrms/internal/transport/http/api"
	"hrms/internal/transport/http/middleware"
	"hrms/internal/transport/http/shared"
)

type Handler struct {
	Service *documents.Service
	Audit   *audit.Service
}

func NewHandler(service *documents.Service, auditSvc *audit.Service) *Handler {
	return &Handler{Service: service, Audit: auditSvc}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/documents", func(r chi.Router) {
		r.Use(middleware.RequireAuth)
		r.Get("/", h.handleList)
		r.Post("/", h.handleUpload)
		r.Get("/{documentID}", h.handleGet)
		r.Delete("/{documentID}", h.handleDelete)
	})
}

type uploadPayload struct {
	EmployeeID  string `json:"employeeId"`
	Title       string `json:"title"`
	FileName    string `json:"fileName"`
	ContentType string `json:"contentType"`
	AccessLevel string `json:"accessLevel"`
}

func (h *Handler) handleUpload(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	p, _ := middleware.GetPrincipal(r.Context())

	var payload uploadPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", requestID)
		return
	}

	v := shared.NewValidator()
	v.Required("title", payload.Title, "title is required")
	employeeID := strings.TrimSpace(payload.EmployeeID)
	if employeeID == "" {
		employeeID = p.EmployeeID
	}
	v.Required("employeeId", employeeID, "employee id is required")
	level := authz.LevelEmployee
	if payload.AccessLevel != "" {
		parsed, ok := authz.ParseAccessLevel(payload.AccessLevel)
		if !ok {
			v.Add("accessLevel", "must be one of EMPLOYEE, MANAGER, HR, BOARD")
		} else {
			level = parsed
		}
	}
	if v.Reject(w, requestID) {
		return
	}

	doc, err := h.Service.Upload(r.Context(), p, documents.UploadInput{
		EmployeeID:  employeeID,
		Title:       strings.TrimSpace(payload.Title),
		FileName:    strings.TrimSpace(payload.FileName),
		ContentType: strings.TrimSpace(payload.ContentType),
		AccessLevel: level,
	})
	if err != nil {
		api.FailErr(w, err, requestID)
		return
	}
	h.Audit.Record(r.Context(), audit.Event{
		ActorID: p.ActorID(), Action: "document.upload", EntityType: "document", EntityID: doc.ID,
		Allowed: true, RequestID: requestID, IP: shared.ClientIP(r),
	})
	api.Created(w, doc, requestID)
}

func (h *Handler) handleGet(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	p, _ := middleware.GetPrincipal(r.Context())

	doc, err := h.Service.Get(r.Context(), p, chi.URLParam(r, "documentID"))
	if errors.Is(err, documents.ErrNotFound) {
		api.Fail(w, http.StatusNotFound, "not_found", "document not found", requestID)
		return
	}
	if err != nil {
		api.FailErr(w, err, requestID)
		return
	}
	api.Success(w, doc, requestID)
}

func (h *Handler) handleDelete(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	p, _ := middleware.GetPrincipal(r.Context())
	documentID := chi.URLParam(r, "documentID")

	err := h.Service.Delete(r.Context(), p, documentID)
	if errors.Is(err, documents.ErrNotFound) {
		api.Fail(w, http.StatusNotFound, "not_found", "document not found", requestID)
		return
	}
	if err != nil {
		api.FailErr(w, err, requestID)
		return
	}
	h.Audit.Record(r.Context(), audit.Event{
		ActorID: p.ActorID(), Action: "document.delete", EntityType: "document", EntityID: documentID,
		Allowed: true, RequestID: requestID, IP: shared.ClientIP(r),
	})
	api.Success(w, map[string]string{"status": "deleted"}, requestID)
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	p, _ := middleware.GetPrincipal(r.Context())

	page := shared.ParsePagination(r, 100, 500)
	docs, err := h.Service.List(r.Context(), p, page.Limit, page.Offset)
	if err != nil {
		api.FailErr(w, err, requestID)
		return
	}
	api.Success(w, docs, requestID)
}

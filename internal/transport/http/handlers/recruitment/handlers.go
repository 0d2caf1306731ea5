package recruitmenthandler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"hrms/internal/domain/audit"
	"hrms/internal/domain/recruitment"
	"hrms/internal/transport/http/api"
	"hrms/internal/transport/http/middleware"
	"hrms/internal/transport/http/shared"
)

type Handler struct {
	Service *recruitment.Service
	Audit   *audit.Service
}

func NewHandler(service *recruitment.Service, auditSvc *audit.Service) *Handler {
	return &Handler{Service: service, Audit: auditSvc}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/recruitment", func(r chi.Router) {
		// Published postings are the public careers feed; no auth required.
		r.Get("/public/postings", h.handleListPublished)

		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireAuth)
			r.Get("/postings", h.handleList)
			r.Post("/postings", h.handleCreate)
			r.Get("/postings/{postingID}", h.handleGet)
			r.Put("/postings/{postingID}", h.handleUpdate)
			r.Delete("/postings/{postingID}", h.handleDelete)
		})
	})
}

type postingPayload struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Department  string `json:"department"`
	Location    string `json:"location"`
	Status      string `json:"status"`
	Published   bool   `json:"published"`
}

func (p postingPayload) toInput(v *shared.Validator) recruitment.PostingInput {
	input := recruitment.PostingInput{
		Title:       strings.TrimSpace(p.Title),
		Description: strings.TrimSpace(p.Description),
		Department:  strings.TrimSpace(p.Department),
		Location:    strings.TrimSpace(p.Location),
		Status:      strings.TrimSpace(p.Status),
		Published:   p.Published,
	}
	v.Required("title", input.Title, "title is required")
	return input
}

func (h *Handler) handleCreate(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	p, _ := middleware.GetPrincipal(r.Context())

	var payload postingPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", requestID)
		return
	}
	v := shared.NewValidator()
	input := payload.toInput(v)
	if v.Reject(w, requestID) {
		return
	}

	posting, err := h.Service.CreatePosting(r.Context(), p, input)
	if err != nil {
		api.FailErr(w, err, requestID)
		return
	}
	h.Audit.Record(r.Context(), audit.Event{
		ActorID: p.ActorID(), Action: "recruitment.posting.create", EntityType: "job_posting", EntityID: posting.ID,
		Allowed: true, RequestID: requestID, IP: shared.ClientIP(r),
	})
	api.Created(w, posting, requestID)
}

func (h *Handler) handleGet(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	p, _ := middleware.GetPrincipal(r.Context())

	posting, err := h.Service.GetPosting(r.Context(), p, chi.URLParam(r, "postingID"))
	if errors.Is(err, recruitment.ErrNotFound) {
		api.Fail(w, http.StatusNotFound, "not_found", "job posting not found", requestID)
		return
	}
	if err != nil {
		api.FailErr(w, err, requestID)
		return
	}
	api.Success(w, posting, requestID)
}

func (h *Handler) handleUpdate(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	p, _ := middleware.GetPrincipal(r.Context())
	postingID := chi.URLParam(r, "postingID")

	var payload postingPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", requestID)
		return
	}
	v := shared.NewValidator()
	input := payload.toInput(v)
	if v.Reject(w, requestID) {
		return
	}

	posting, err := h.Service.UpdatePosting(r.Context(), p, postingID, input)
	if errors.Is(err, recruitment.ErrNotFound) {
		api.Fail(w, http.StatusNotFound, "not_found", "job posting not found", requestID)
		return
	}
	if err != nil {
		api.FailErr(w, err, requestID)
		return
	}
	h.Audit.Record(r.Context(), audit.Event{
		ActorID: p.ActorID(), Action: "recruitment.posting.update", EntityType: "job_posting", EntityID: postingID,
		Allowed: true, RequestID: requestID, IP: shared.ClientIP(r),
	})
	api.Success(w, posting, requestID)
}

func (h *Handler) handleDelete(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	p, _ := middleware.GetPrincipal(r.Context())
	postingID := chi.URLParam(r, "postingID")

	err := h.Service.DeletePosting(r.Context(), p, postingID)
	if errors.Is(err, recruitment.ErrNotFound) {
		api.Fail(w, http.StatusNotFound, "not_found", "job posting not found", requestID)
		return
	}
	if err != nil {
		api.FailErr(w, err, requestID)
		return
	}
	h.Audit.Record(r.Context(), audit.Event{
		ActorID: p.ActorID(), Action: "recruitment.posting.delete", EntityType: "job_posting", EntityID: postingID,
		Allowed: true, RequestID: requestID, IP: shared.ClientIP(r),
	})
	api.Success(w, map[string]string{"status": "deleted"}, requestID)
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	p, _ := middleware.GetPrincipal(r.Context())

	page := shared.ParsePagination(r, 100, 500)
	postings, err := h.Service.ListPostings(r.Context(), p, page.Limit, page.Offset)
	if err != nil {
		api.FailErr(w, err, requestID)
		return
	}
	api.Success(w, postings, requestID)
}

func (h *Handler) handleListPublished(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	page := shared.ParsePagination(r, 50, 200)
	postings, err := h.Service.ListPublished(r.Context(), page.Limit, page.Offset)
	if err != nil {
		api.FailErr(w, err, requestID)
		return
	}
	api.Success(w, postings, requestID)
}

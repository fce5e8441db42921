package http

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/samber/lo"

	"github.com/you-humble/garage-ops/internal/model"
	"github.com/you-humble/garage-ops/internal/transport/http/response"
)

type QuotationService interface {
	Create(ctx context.Context, params model.CreateQuotationParams) (*model.Quotation, error)
	Quotation(ctx context.Context, id string) (*model.Quotation, error)
	List(ctx context.Context) ([]*model.Quotation, error)
	UpdateSupplierQuote(ctx context.Context, params model.UpdateSupplierQuoteParams) (*model.Quotation, error)
	UpdateStatus(ctx context.Context, params model.UpdateQuotationStatusParams) (*model.Quotation, error)
	Delete(ctx context.Context, id string) error
}

type handler struct {
	svc QuotationService
}

func NewQuotationHandler(service QuotationService) *handler {
	return &handler{svc: service}
}

func (h *handler) Register(r chi.Router) {
	r.Post("/", h.Create)
	r.Get("/", h.List)
	r.Get("/{id}", h.Get)
	r.Put("/{id}/status", h.UpdateStatus)
	r.Put("/{id}/supplier/{supplierId}", h.UpdateSupplierQuote)
	r.Delete("/{id}", h.Delete)
}

func (h *handler) Create(w http.ResponseWriter, r *http.Request) {
	var req createQuotationRequest
	if err := response.Decode(r, &req); err != nil {
		response.Error(w, r, err)
		return
	}

	q, err := h.svc.Create(r.Context(), req.toParams())
	if err != nil {
		response.Error(w, r, err)
		return
	}

	response.JSON(w, r, http.StatusCreated, toResponse(q))
}

// Get accepts either the document id or the QUO- identifier.
func (h *handler) Get(w http.ResponseWriter, r *http.Request) {
	q, err := h.svc.Quotation(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.Error(w, r, err)
		return
	}

	response.JSON(w, r, http.StatusOK, toResponse(q))
}

func (h *handler) List(w http.ResponseWriter, r *http.Request) {
	quotations, err := h.svc.List(r.Context())
	if err != nil {
		response.Error(w, r, err)
		return
	}

	response.JSON(w, r, http.StatusOK, lo.Map(quotations, func(q *model.Quotation, _ int) quotationResponse {
		return toResponse(q)
	}))
}

func (h *handler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	var req updateStatusRequest
	if err := response.Decode(r, &req); err != nil {
		response.Error(w, r, err)
		return
	}

	q, err := h.svc.UpdateStatus(r.Context(), model.UpdateQuotationStatusParams{
		QuotationID: chi.URLParam(r, "id"),
		Status:      model.QuotationStatus(req.Status),
	})
	if err != nil {
		response.Error(w, r, err)
		return
	}

	response.JSON(w, r, http.StatusOK, toResponse(q))
}

func (h *handler) UpdateSupplierQuote(w http.ResponseWriter, r *http.Request) {
	var req updateSupplierQuoteRequest
	if err := response.Decode(r, &req); err != nil {
		response.Error(w, r, err)
		return
	}

	params := req.toParams(chi.URLParam(r, "id"), chi.URLParam(r, "supplierId"))
	q, err := h.svc.UpdateSupplierQuote(r.Context(), params)
	if err != nil {
		response.Error(w, r, err)
		return
	}

	response.JSON(w, r, http.StatusOK, toResponse(q))
}

func (h *handler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		response.Error(w, r, err)
		return
	}

	response.NoContent(w)
}

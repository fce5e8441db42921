package http

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/samber/lo"

	"github.com/you-humble/garage-ops/internal/model"
	"github.com/you-humble/garage-ops/internal/transport/http/response"
)

type SupplierService interface {
	Create(ctx context.Context, params model.CreateSupplierParams) (*model.Supplier, error)
	Supplier(ctx context.Context, id string) (*model.Supplier, error)
	List(ctx context.Context) ([]*model.Supplier, error)
	Update(ctx context.Context, id string, params model.UpdateSupplierParams) (*model.Supplier, error)
	Delete(ctx context.Context, id string) error
}

type handler struct {
	svc SupplierService
}

func NewSupplierHandler(service SupplierService) *handler {
	return &handler{svc: service}
}

func (h *handler) Register(r chi.Router) {
	r.Post("/", h.Create)
	r.Get("/", h.List)
	r.Get("/{id}", h.Get)
	r.Put("/{id}", h.Update)
	r.Delete("/{id}", h.Delete)
}

func (h *handler) Create(w http.ResponseWriter, r *http.Request) {
	var req createSupplierRequest
	if err := response.Decode(r, &req); err != nil {
		response.Error(w, r, err)
		return
	}

	s, err := h.svc.Create(r.Context(), req.toParams())
	if err != nil {
		response.Error(w, r, err)
		return
	}

	response.JSON(w, r, http.StatusCreated, toResponse(s))
}

func (h *handler) Get(w http.ResponseWriter, r *http.Request) {
	s, err := h.svc.Supplier(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.Error(w, r, err)
		return
	}

	response.JSON(w, r, http.StatusOK, toResponse(s))
}

func (h *handler) List(w http.ResponseWriter, r *http.Request) {
	suppliers, err := h.svc.List(r.Context())
	if err != nil {
		response.Error(w, r, err)
		return
	}

	response.JSON(w, r, http.StatusOK, lo.Map(suppliers, func(s *model.Supplier, _ int) supplierResponse {
		return toResponse(s)
	}))
}

func (h *handler) Update(w http.ResponseWriter, r *http.Request) {
	var req updateSupplierRequest
	if err := response.Decode(r, &req); err != nil {
		response.Error(w, r, err)
		return
	}

	s, err := h.svc.Update(r.Context(), chi.URLParam(r, "id"), req.toParams())
	if err != nil {
		response.Error(w, r, err)
		return
	}

	response.JSON(w, r, http.StatusOK, toResponse(s))
}

func (h *handler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		response.Error(w, r, err)
		return
	}

	response.NoContent(w)
}

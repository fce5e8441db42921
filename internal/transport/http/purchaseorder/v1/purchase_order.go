package http

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/samber/lo"

	"github.com/you-humble/garage-ops/internal/model"
	"github.com/you-humble/garage-ops/internal/transport/http/response"
)

type PurchaseOrderService interface {
	Create(ctx context.Context, params model.CreatePurchaseOrderParams) (*model.PurchaseOrder, error)
	PurchaseOrder(ctx context.Context, id string) (*model.PurchaseOrder, error)
	List(ctx context.Context, filter model.PurchaseOrdersFilter) ([]*model.PurchaseOrder, error)
	Update(ctx context.Context, id string, params model.UpdatePurchaseOrderParams) (*model.PurchaseOrder, error)
	Delete(ctx context.Context, id string) error
}

type handler struct {
	svc PurchaseOrderService
}

func NewPurchaseOrderHandler(service PurchaseOrderService) *handler {
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
	var req createPurchaseOrderRequest
	if err := response.Decode(r, &req); err != nil {
		response.Error(w, r, err)
		return
	}

	po, err := h.svc.Create(r.Context(), req.toParams())
	if err != nil {
		response.Error(w, r, err)
		return
	}

	response.JSON(w, r, http.StatusCreated, toResponse(po))
}

func (h *handler) Get(w http.ResponseWriter, r *http.Request) {
	po, err := h.svc.PurchaseOrder(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.Error(w, r, err)
		return
	}

	response.JSON(w, r, http.StatusOK, toResponse(po))
}

// List accepts optional status and supplierId query filters.
func (h *handler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	orders, err := h.svc.List(r.Context(), model.PurchaseOrdersFilter{
		Status:     model.PurchaseOrderStatus(q.Get("status")),
		SupplierID: q.Get("supplierId"),
	})
	if err != nil {
		response.Error(w, r, err)
		return
	}

	response.JSON(w, r, http.StatusOK, lo.Map(orders, func(po *model.PurchaseOrder, _ int) purchaseOrderResponse {
		return toResponse(po)
	}))
}

func (h *handler) Update(w http.ResponseWriter, r *http.Request) {
	var req updatePurchaseOrderRequest
	if err := response.Decode(r, &req); err != nil {
		response.Error(w, r, err)
		return
	}

	po, err := h.svc.Update(r.Context(), chi.URLParam(r, "id"), req.toParams())
	if err != nil {
		response.Error(w, r, err)
		return
	}

	response.JSON(w, r, http.StatusOK, toResponse(po))
}

func (h *handler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		response.Error(w, r, err)
		return
	}

	response.NoContent(w)
}

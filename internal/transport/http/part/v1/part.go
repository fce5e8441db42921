package http

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/you-humble/garage-ops/internal/model"
	"github.com/you-humble/garage-ops/internal/transport/http/response"
)

type PartService interface {
	Create(ctx context.Context, params model.CreatePartParams) (*model.Part, error)
	Part(ctx context.Context, id string) (*model.Part, error)
	List(ctx context.Context) ([]*model.Part, error)
	ListLowStock(ctx context.Context) ([]*model.Part, error)
	ListByCategory(ctx context.Context, categoryID string) ([]*model.Part, error)
	Update(ctx context.Context, id string, params model.UpdatePartParams) (*model.Part, error)
	UpdateQuantity(ctx context.Context, id string, quantity int64) (*model.Part, error)
	Delete(ctx context.Context, id string) error
	Export(ctx context.Context) ([]byte, error)
}

type handler struct {
	svc PartService
}

func NewPartHandler(service PartService) *handler {
	return &handler{svc: service}
}

func (h *handler) Register(r chi.Router) {
	r.Post("/", h.Create)
	r.Get("/", h.List)
	r.Get("/low-stock", h.ListLowStock)
	r.Get("/category/{categoryId}", h.ListByCategory)
	r.Get("/export", h.Export)
	r.Get("/{id}", h.Get)
	r.Put("/{id}", h.Update)
	r.Patch("/{id}/quantity", h.UpdateQuantity)
	r.Delete("/{id}", h.Delete)
}

func (h *handler) Create(w http.ResponseWriter, r *http.Request) {
	var req createPartRequest
	if err := response.Decode(r, &req); err != nil {
		response.Error(w, r, err)
		return
	}

	p, err := h.svc.Create(r.Context(), req.toParams())
	if err != nil {
		response.Error(w, r, err)
		return
	}

	response.JSON(w, r, http.StatusCreated, toResponse(p))
}

func (h *handler) Get(w http.ResponseWriter, r *http.Request) {
	p, err := h.svc.Part(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.Error(w, r, err)
		return
	}

	response.JSON(w, r, http.StatusOK, toResponse(p))
}

func (h *handler) List(w http.ResponseWriter, r *http.Request) {
	h.writeList(w, r, h.svc.List)
}

func (h *handler) ListLowStock(w http.ResponseWriter, r *http.Request) {
	h.writeList(w, r, h.svc.ListLowStock)
}

func (h *handler) ListByCategory(w http.ResponseWriter, r *http.Request) {
	categoryID := chi.URLParam(r, "categoryId")
	h.writeList(w, r, func(ctx context.Context) ([]*model.Part, error) {
		return h.svc.ListByCategory(ctx, categoryID)
	})
}

func (h *handler) writeList(
	w http.ResponseWriter,
	r *http.Request,
	list func(ctx context.Context) ([]*model.Part, error),
) {
	parts, err := list(r.Context())
	if err != nil {
		response.Error(w, r, err)
		return
	}

	response.JSON(w, r, http.StatusOK, toResponses(parts))
}

func (h *handler) Update(w http.ResponseWriter, r *http.Request) {
	var req updatePartRequest
	if err := response.Decode(r, &req); err != nil {
		response.Error(w, r, err)
		return
	}

	p, err := h.svc.Update(r.Context(), chi.URLParam(r, "id"), req.toParams())
	if err != nil {
		response.Error(w, r, err)
		return
	}

	response.JSON(w, r, http.StatusOK, toResponse(p))
}

func (h *handler) UpdateQuantity(w http.ResponseWriter, r *http.Request) {
	var req updateQuantityRequest
	if err := response.Decode(r, &req); err != nil {
		response.Error(w, r, err)
		return
	}
	if req.Quantity == nil {
		verr := model.NewValidationError()
		verr.Add("quantity", "required", "is required")
		response.Error(w, r, verr)
		return
	}

	p, err := h.svc.UpdateQuantity(r.Context(), chi.URLParam(r, "id"), *req.Quantity)
	if err != nil {
		response.Error(w, r, err)
		return
	}

	response.JSON(w, r, http.StatusOK, toResponse(p))
}

func (h *handler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		response.Error(w, r, err)
		return
	}

	response.NoContent(w)
}

func (h *handler) Export(w http.ResponseWriter, r *http.Request) {
	data, err := h.svc.Export(r.Context())
	if err != nil {
		response.Error(w, r, err)
		return
	}

	response.Attachment(w, r, response.ContentTypeXLSX, "parts.xlsx", data)
}

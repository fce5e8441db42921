package http

import (
	"time"

	"github.com/you-humble/garage-ops/internal/model"
)

type createSupplierRequest struct {
	SupplierID   string `json:"supplierId"`
	Name         string `json:"name"`
	ContactEmail string `json:"contactEmail"`
	ContactPhone string `json:"contactPhone"`
	Address      string `json:"address"`
}

type updateSupplierRequest struct {
	SupplierID   *string `json:"supplierId"`
	Name         *string `json:"name"`
	ContactEmail *string `json:"contactEmail"`
	ContactPhone *string `json:"contactPhone"`
	Address      *string `json:"address"`
}

type supplierResponse struct {
	ID           string    `json:"id"`
	SupplierID   string    `json:"supplierId"`
	Name         string    `json:"name"`
	ContactEmail string    `json:"contactEmail"`
	ContactPhone string    `json:"contactPhone"`
	Address      string    `json:"address"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

func (req createSupplierRequest) toParams() model.CreateSupplierParams {
	return model.CreateSupplierParams{
		SupplierID:   req.SupplierID,
		Name:         req.Name,
		ContactEmail: req.ContactEmail,
		ContactPhone: req.ContactPhone,
		Address:      req.Address,
	}
}

func (req updateSupplierRequest) toParams() model.UpdateSupplierParams {
	return model.UpdateSupplierParams{
		SupplierID:   req.SupplierID,
		Name:         req.Name,
		ContactEmail: req.ContactEmail,
		ContactPhone: req.ContactPhone,
		Address:      req.Address,
	}
}

func toResponse(s *model.Supplier) supplierResponse {
	return supplierResponse{
		ID:           s.ID,
		SupplierID:   s.SupplierID,
		Name:         s.Name,
		ContactEmail: s.ContactEmail,
		ContactPhone: s.ContactPhone,
		Address:      s.Address,
		CreatedAt:    s.CreatedAt,
		UpdatedAt:    s.UpdatedAt,
	}
}

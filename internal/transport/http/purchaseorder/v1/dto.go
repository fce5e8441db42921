package http

import (
	"time"

	"github.com/samber/lo"

	"github.com/you-humble/garage-ops/internal/model"
)

type orderItemDTO struct {
	Name       string  `json:"name"`
	Quantity   int64   `json:"quantity"`
	UnitPrice  float64 `json:"unitPrice"`
	TotalPrice float64 `json:"totalPrice"`
}

type createPurchaseOrderRequest struct {
	SupplierID           string         `json:"supplierId"`
	Items                []orderItemDTO `json:"items"`
	TotalAmount          *float64       `json:"totalAmount"`
	Status               string         `json:"status"`
	OrderDate            *time.Time     `json:"orderDate"`
	ExpectedDeliveryDate *time.Time     `json:"expectedDeliveryDate"`
	Notes                string         `json:"notes"`
}

type updatePurchaseOrderRequest struct {
	SupplierID           *string        `json:"supplierId"`
	Items                []orderItemDTO `json:"items"`
	TotalAmount          *float64       `json:"totalAmount"`
	Status               *string        `json:"status"`
	OrderDate            *time.Time     `json:"orderDate"`
	ExpectedDeliveryDate *time.Time     `json:"expectedDeliveryDate"`
	ReceivedDate         *time.Time     `json:"receivedDate"`
	Notes                *string        `json:"notes"`
}

type supplierSummary struct {
	ID           string `json:"id"`
	SupplierID   string `json:"supplierId"`
	Name         string `json:"name"`
	ContactEmail string `json:"contactEmail"`
	ContactPhone string `json:"contactPhone"`
}

type purchaseOrderResponse struct {
	ID                   string           `json:"id"`
	SupplierID           string           `json:"supplierId"`
	Supplier             *supplierSummary `json:"supplier"`
	Items                []orderItemDTO   `json:"items"`
	TotalAmount          float64          `json:"totalAmount"`
	Status               string           `json:"status"`
	OrderDate            time.Time        `json:"orderDate"`
	ExpectedDeliveryDate *time.Time       `json:"expectedDeliveryDate"`
	ReceivedDate         *time.Time       `json:"receivedDate"`
	Notes                string           `json:"notes"`
	CreatedAt            time.Time        `json:"createdAt"`
	UpdatedAt            time.Time        `json:"updatedAt"`
}

func toItemParams(items []orderItemDTO) []model.OrderItemParams {
	if items == nil {
		return nil
	}
	return lo.Map(items, func(it orderItemDTO, _ int) model.OrderItemParams {
		return model.OrderItemParams{
			Name:       it.Name,
			Quantity:   it.Quantity,
			UnitPrice:  it.UnitPrice,
			TotalPrice: it.TotalPrice,
		}
	})
}

func (req createPurchaseOrderRequest) toParams() model.CreatePurchaseOrderParams {
	return model.CreatePurchaseOrderParams{
		SupplierID:           req.SupplierID,
		Items:                toItemParams(req.Items),
		TotalAmount:          req.TotalAmount,
		Status:               model.PurchaseOrderStatus(req.Status),
		OrderDate:            req.OrderDate,
		ExpectedDeliveryDate: req.ExpectedDeliveryDate,
		Notes:                req.Notes,
	}
}

func (req updatePurchaseOrderRequest) toParams() model.UpdatePurchaseOrderParams {
	params := model.UpdatePurchaseOrderParams{
		SupplierID:           req.SupplierID,
		Items:                toItemParams(req.Items),
		TotalAmount:          req.TotalAmount,
		OrderDate:            req.OrderDate,
		ExpectedDeliveryDate: req.ExpectedDeliveryDate,
		ReceivedDate:         req.ReceivedDate,
		Notes:                req.Notes,
	}
	if req.Status != nil {
		params.Status = lo.ToPtr(model.PurchaseOrderStatus(*req.Status))
	}
	return params
}

func toResponse(po *model.PurchaseOrder) purchaseOrderResponse {
	resp := purchaseOrderResponse{
		ID:         po.ID,
		SupplierID: po.SupplierID,
		Items: lo.Map(po.Items, func(it model.OrderItem, _ int) orderItemDTO {
			return orderItemDTO{
				Name:       it.Name,
				Quantity:   it.Quantity,
				UnitPrice:  it.UnitPrice,
				TotalPrice: it.TotalPrice,
			}
		}),
		TotalAmount:          po.TotalAmount,
		Status:               string(po.Status),
		OrderDate:            po.OrderDate,
		ExpectedDeliveryDate: po.ExpectedDeliveryDate,
		ReceivedDate:         po.ReceivedDate,
		Notes:                po.Notes,
		CreatedAt:            po.CreatedAt,
		UpdatedAt:            po.UpdatedAt,
	}
	if s := po.Supplier; s != nil {
		resp.Supplier = &supplierSummary{
			ID:           s.ID,
			SupplierID:   s.SupplierID,
			Name:         s.Name,
			ContactEmail: s.ContactEmail,
			ContactPhone: s.ContactPhone,
		}
	}
	return resp
}

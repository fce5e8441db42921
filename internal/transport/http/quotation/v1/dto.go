package http

import (
	"time"

	"github.com/samber/lo"

	"github.com/you-humble/garage-ops/internal/model"
)

type quotedPartDTO struct {
	PartID     string `json:"partId"`
	PartNumber string `json:"partNumber"`
	Name       string `json:"name"`
}

type createQuotationRequest struct {
	Part        quotedPartDTO `json:"part"`
	Quantity    int64         `json:"quantity"`
	SupplierIDs []string      `json:"supplierIds"`
	Notes       string        `json:"notes"`
}

type updateStatusRequest struct {
	Status string `json:"status"`
}

type updateSupplierQuoteRequest struct {
	QuotedPrice  *float64 `json:"quotedPrice"`
	DeliveryTime *string  `json:"deliveryTime"`
	Status       *string  `json:"status"`
}

type quoteSupplierResponse struct {
	SupplierID   string  `json:"supplierId"`
	Name         string  `json:"name"`
	ContactEmail string  `json:"contactEmail"`
	QuotedPrice  float64 `json:"quotedPrice"`
	DeliveryTime string  `json:"deliveryTime"`
	Status       string  `json:"status"`
}

type quotationResponse struct {
	ID          string                  `json:"id"`
	QuotationID string                  `json:"quotationId"`
	Part        quotedPartDTO           `json:"part"`
	Quantity    int64                   `json:"quantity"`
	Suppliers   []quoteSupplierResponse `json:"suppliers"`
	Status      string                  `json:"status"`
	Notes       string                  `json:"notes"`
	CreatedAt   time.Time               `json:"createdAt"`
	UpdatedAt   time.Time               `json:"updatedAt"`
}

func (req createQuotationRequest) toParams() model.CreateQuotationParams {
	return model.CreateQuotationParams{
		Part: model.QuotedPartParams{
			PartID:     req.Part.PartID,
			PartNumber: req.Part.PartNumber,
			Name:       req.Part.Name,
		},
		Quantity:    req.Quantity,
		SupplierIDs: req.SupplierIDs,
		Notes:       req.Notes,
	}
}

func (req updateSupplierQuoteRequest) toParams(quotationID, supplierID string) model.UpdateSupplierQuoteParams {
	params := model.UpdateSupplierQuoteParams{
		QuotationID:  quotationID,
		SupplierID:   supplierID,
		QuotedPrice:  req.QuotedPrice,
		DeliveryTime: req.DeliveryTime,
	}
	if req.Status != nil {
		params.Status = lo.ToPtr(model.QuoteStatus(*req.Status))
	}
	return params
}

func toResponse(q *model.Quotation) quotationResponse {
	return quotationResponse{
		ID:          q.ID,
		QuotationID: q.QuotationID,
		Part: quotedPartDTO{
			PartID:     q.Part.PartID,
			PartNumber: q.Part.PartNumber,
			Name:       q.Part.Name,
		},
		Quantity: q.Quantity,
		Suppliers: lo.Map(q.Suppliers, func(s model.QuoteSupplier, _ int) quoteSupplierResponse {
			return quoteSupplierResponse{
				SupplierID:   s.SupplierID,
				Name:         s.Name,
				ContactEmail: s.ContactEmail,
				QuotedPrice:  s.QuotedPrice,
				DeliveryTime: s.DeliveryTime,
				Status:       string(s.Status),
			}
		}),
		Status:    string(q.Status),
		Notes:     q.Notes,
		CreatedAt: q.CreatedAt,
		UpdatedAt: q.UpdatedAt,
	}
}

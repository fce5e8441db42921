package http

import (
	"time"

	"github.com/samber/lo"

	"github.com/you-humble/garage-ops/internal/model"
)

type createPartRequest struct {
	PartID       string  `json:"partId"`
	PartNumber   string  `json:"partNumber"`
	Name         string  `json:"name"`
	Description  string  `json:"description"`
	CategoryID   string  `json:"categoryId"`
	Quantity     int64   `json:"quantity"`
	MinimumStock int64   `json:"minimumStock"`
	UnitPrice    float64 `json:"unitPrice"`
	Location     string  `json:"location"`
}

type updatePartRequest struct {
	PartID       *string  `json:"partId"`
	PartNumber   *string  `json:"partNumber"`
	Name         *string  `json:"name"`
	Description  *string  `json:"description"`
	CategoryID   *string  `json:"categoryId"`
	Quantity     *int64   `json:"quantity"`
	MinimumStock *int64   `json:"minimumStock"`
	UnitPrice    *float64 `json:"unitPrice"`
	Location     *string  `json:"location"`
}

type updateQuantityRequest struct {
	Quantity *int64 `json:"quantity"`
}

type partResponse struct {
	ID           string    `json:"id"`
	PartID       string    `json:"partId"`
	PartNumber   string    `json:"partNumber"`
	Name         string    `json:"name"`
	Description  string    `json:"description"`
	CategoryID   string    `json:"categoryId"`
	Quantity     int64     `json:"quantity"`
	MinimumStock int64     `json:"minimumStock"`
	UnitPrice    float64   `json:"unitPrice"`
	Location     string    `json:"location"`
	IsLowStock   bool      `json:"isLowStock"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

func (req createPartRequest) toParams() model.CreatePartParams {
	return model.CreatePartParams{
		PartID:       req.PartID,
		PartNumber:   req.PartNumber,
		Name:         req.Name,
		Description:  req.Description,
		CategoryID:   req.CategoryID,
		Quantity:     req.Quantity,
		MinimumStock: req.MinimumStock,
		UnitPrice:    req.UnitPrice,
		Location:     req.Location,
	}
}

func (req updatePartRequest) toParams() model.UpdatePartParams {
	return model.UpdatePartParams{
		PartID:       req.PartID,
		PartNumber:   req.PartNumber,
		Name:         req.Name,
		Description:  req.Description,
		CategoryID:   req.CategoryID,
		Quantity:     req.Quantity,
		MinimumStock: req.MinimumStock,
		UnitPrice:    req.UnitPrice,
		Location:     req.Location,
	}
}

func toResponse(p *model.Part) partResponse {
	return partResponse{
		ID:           p.ID,
		PartID:       p.PartID,
		PartNumber:   p.PartNumber,
		Name:         p.Name,
		Description:  p.Description,
		CategoryID:   p.CategoryID,
		Quantity:     p.Quantity,
		MinimumStock: p.MinimumStock,
		UnitPrice:    p.UnitPrice,
		Location:     p.Location,
		IsLowStock:   p.IsLowStock(),
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}
}

func toResponses(parts []*model.Part) []partResponse {
	return lo.Map(parts, func(p *model.Part, _ int) partResponse { return toResponse(p) })
}

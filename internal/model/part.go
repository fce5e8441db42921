package model

import "time"

type Part struct {
	// Document identifier.
	ID string
	// Business identifier, unique.
	PartID string
	// Manufacturer part number, unique.
	PartNumber  string
	Name        string
	Description string
	CategoryID  string
	// Units on hand, never negative.
	Quantity int64
	// Reorder threshold.
	MinimumStock int64
	UnitPrice    float64
	// Storage location, e.g. a shelf or bin code.
	Location  string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsLowStock is derived on every read and never stored.
func (p *Part) IsLowStock() bool {
	return p.Quantity <= p.MinimumStock
}

type PartsFilter struct {
	CategoryID   string
	LowStockOnly bool
}

type CreatePartParams struct {
	PartID       string `validate:"required"`
	PartNumber   string `validate:"required"`
	Name         string `validate:"required"`
	Description  string `validate:"omitempty,max=2000"`
	CategoryID   string
	Quantity     int64   `validate:"gte=0"`
	MinimumStock int64   `validate:"gte=0"`
	UnitPrice    float64 `validate:"gte=0"`
	Location     string  `validate:"omitempty,max=200"`
}

// UpdatePartParams applies only non-nil fields.
type UpdatePartParams struct {
	PartID       *string `validate:"omitnil,min=1"`
	PartNumber   *string `validate:"omitnil,min=1"`
	Name         *string `validate:"omitnil,min=1"`
	Description  *string `validate:"omitnil,max=2000"`
	CategoryID   *string
	Quantity     *int64   `validate:"omitnil,gte=0"`
	MinimumStock *int64   `validate:"omitnil,gte=0"`
	UnitPrice    *float64 `validate:"omitnil,gte=0"`
	Location     *string  `validate:"omitnil,max=200"`
}

func (p UpdatePartParams) IsEmpty() bool {
	return p.PartID == nil && p.PartNumber == nil && p.Name == nil &&
		p.Description == nil && p.CategoryID == nil && p.Quantity == nil &&
		p.MinimumStock == nil && p.UnitPrice == nil && p.Location == nil
}

package model

import "time"

type PurchaseOrderStatus string

// Any status may follow any other; no transition graph is enforced.
const (
	PurchaseOrderPending   PurchaseOrderStatus = "Pending"
	PurchaseOrderApproved  PurchaseOrderStatus = "Approved"
	PurchaseOrderReceived  PurchaseOrderStatus = "Received"
	PurchaseOrderCancelled PurchaseOrderStatus = "Cancelled"
)

type OrderItem struct {
	Name      string
	Quantity  int64
	UnitPrice float64
	// Line total as supplied by the caller; not recomputed from quantity and unit price.
	TotalPrice float64
}

type PurchaseOrder struct {
	ID         string
	SupplierID string
	// Resolved by lookup on read, nil when the supplier no longer exists.
	Supplier             *Supplier
	Items                []OrderItem
	TotalAmount          float64
	Status               PurchaseOrderStatus
	OrderDate            time.Time
	ExpectedDeliveryDate *time.Time
	// Caller-managed, never set automatically.
	ReceivedDate *time.Time
	Notes        string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

type PurchaseOrdersFilter struct {
	Status     PurchaseOrderStatus
	SupplierID string
}

type OrderItemParams struct {
	Name       string  `validate:"required"`
	Quantity   int64   `validate:"gte=1"`
	UnitPrice  float64 `validate:"gte=0"`
	TotalPrice float64 `validate:"gte=0"`
}

type CreatePurchaseOrderParams struct {
	SupplierID           string              `validate:"required"`
	Items                []OrderItemParams   `validate:"required,min=1,dive"`
	TotalAmount          *float64            `validate:"omitnil,gte=0"`
	Status               PurchaseOrderStatus `validate:"omitempty,oneof=Pending Approved Received Cancelled"`
	OrderDate            *time.Time
	ExpectedDeliveryDate *time.Time
	Notes                string `validate:"omitempty,max=2000"`
}

type UpdatePurchaseOrderParams struct {
	SupplierID           *string              `validate:"omitnil,min=1"`
	Items                []OrderItemParams    `validate:"omitempty,min=1,dive"`
	TotalAmount          *float64             `validate:"omitnil,gte=0"`
	Status               *PurchaseOrderStatus `validate:"omitnil,oneof=Pending Approved Received Cancelled"`
	OrderDate            *time.Time
	ExpectedDeliveryDate *time.Time
	ReceivedDate         *time.Time
	Notes                *string `validate:"omitnil,max=2000"`
}

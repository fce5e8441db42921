package repository

import "time"

type PurchaseOrderEntity struct {
	ID                   string            `bson:"_id"`
	SupplierID           string            `bson:"supplier_id"`
	Items                []OrderItemEntity `bson:"items"`
	TotalAmount          float64           `bson:"total_amount"`
	Status               string            `bson:"status"`
	OrderDate            time.Time         `bson:"order_date"`
	ExpectedDeliveryDate *time.Time        `bson:"expected_delivery_date,omitempty"`
	ReceivedDate         *time.Time        `bson:"received_date,omitempty"`
	Notes                string            `bson:"notes,omitempty"`
	CreatedAt            time.Time         `bson:"created_at"`
	UpdatedAt            time.Time         `bson:"updated_at"`
}

type OrderItemEntity struct {
	Name       string  `bson:"name"`
	Quantity   int64   `bson:"quantity"`
	UnitPrice  float64 `bson:"unit_price"`
	TotalPrice float64 `bson:"total_price"`
}

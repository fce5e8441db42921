package repository

import "time"

type QuotationEntity struct {
	ID          string                `bson:"_id"`
	QuotationID string                `bson:"quotation_id"`
	Part        QuotedPartEntity      `bson:"part"`
	Quantity    int64                 `bson:"quantity"`
	Suppliers   []QuoteSupplierEntity `bson:"suppliers"`
	Status      string                `bson:"status"`
	Notes       string                `bson:"notes,omitempty"`
	CreatedAt   time.Time             `bson:"created_at"`
	UpdatedAt   time.Time             `bson:"updated_at"`
}

type QuotedPartEntity struct {
	PartID     string `bson:"part_id"`
	PartNumber string `bson:"part_number"`
	Name       string `bson:"name"`
}

type QuoteSupplierEntity struct {
	SupplierID   string  `bson:"supplier_id"`
	Name         string  `bson:"name"`
	ContactEmail string  `bson:"contact_email"`
	QuotedPrice  float64 `bson:"quoted_price"`
	DeliveryTime string  `bson:"delivery_time"`
	Status       string  `bson:"status"`
}

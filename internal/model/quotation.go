package model

import (
	"fmt"
	"time"
)

type QuotationStatus string

const (
	QuotationDraft     QuotationStatus = "draft"
	QuotationSent      QuotationStatus = "sent"
	QuotationComparing QuotationStatus = "comparing"
	QuotationCompleted QuotationStatus = "completed"
	QuotationCancelled QuotationStatus = "cancelled"
)

type QuoteStatus string

const (
	QuotePending  QuoteStatus = "pending"
	QuoteReceived QuoteStatus = "received"
	QuoteDeclined QuoteStatus = "declined"
)

const quotationIDPrefix = "QUO-"

// NewQuotationID derives the human readable identifier from the creation time.
// Two creates within the same millisecond collide; the unique index rejects the second.
func NewQuotationID(now time.Time) string {
	return fmt.Sprintf("%s%d", quotationIDPrefix, now.UnixMilli())
}

type QuotedPart struct {
	PartID     string
	PartNumber string
	Name       string
}

// QuoteSupplier holds a snapshot of the supplier contact data taken at creation.
// Later supplier edits are not propagated.
type QuoteSupplier struct {
	SupplierID   string
	Name         string
	ContactEmail string
	QuotedPrice  float64
	DeliveryTime string
	Status       QuoteStatus
}

type Quotation struct {
	ID          string
	QuotationID string
	Part        QuotedPart
	Quantity    int64
	Suppliers   []QuoteSupplier
	// Independent of the per-supplier statuses.
	Status    QuotationStatus
	Notes     string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// SupplierIndex returns the position of the supplier entry or -1.
func (q *Quotation) SupplierIndex(supplierID string) int {
	for i := range q.Suppliers {
		if q.Suppliers[i].SupplierID == supplierID {
			return i
		}
	}
	return -1
}

type QuotedPartParams struct {
	PartID     string `validate:"required"`
	PartNumber string `validate:"required"`
	Name       string `validate:"required"`
}

type CreateQuotationParams struct {
	Part        QuotedPartParams
	Quantity    int64    `validate:"gte=1"`
	SupplierIDs []string `validate:"required,min=1,dive,required"`
	Notes       string   `validate:"omitempty,max=2000"`
}

type UpdateSupplierQuoteParams struct {
	QuotationID  string       `validate:"required"`
	SupplierID   string       `validate:"required"`
	QuotedPrice  *float64     `validate:"omitnil,gte=0"`
	DeliveryTime *string      `validate:"omitnil,max=200"`
	Status       *QuoteStatus `validate:"omitnil,oneof=pending received declined"`
}

type UpdateQuotationStatusParams struct {
	QuotationID string          `validate:"required"`
	Status      QuotationStatus `validate:"required,oneof=draft sent comparing completed cancelled"`
}

package model

import (
	"time"

	"github.com/google/uuid"
)

type EventType string

const (
	EventPartLowStock                 EventType = "part.low_stock"
	EventQuotationCreated             EventType = "quotation.created"
	EventQuotationStatusChanged       EventType = "quotation.status_changed"
	EventQuotationSupplierQuoteUpdate EventType = "quotation.supplier_quote_updated"
	EventPurchaseOrderCreated         EventType = "purchase_order.created"
	EventPurchaseOrderStatusChanged   EventType = "purchase_order.status_changed"
	EventAppointmentBooked            EventType = "appointment.booked"
)

// Event is published after a successful write.
type Event struct {
	ID         string
	Type       EventType
	EntityID   string
	OccurredAt time.Time
	Payload    map[string]any
}

func NewEvent(t EventType, entityID string, payload map[string]any) Event {
	return Event{
		ID:         uuid.NewString(),
		Type:       t,
		EntityID:   entityID,
		OccurredAt: time.Now().UTC(),
		Payload:    payload,
	}
}

package model

import "errors"

var (
	ErrValidation      = errors.New("validation error")         // 400
	ErrConflict        = errors.New("duplicate value")          // 400
	ErrSlotUnavailable = errors.New("time slot already booked") // 400

	ErrPartNotFound          = errors.New("part not found")                  // 404
	ErrSupplierNotFound      = errors.New("supplier not found")              // 404
	ErrPurchaseOrderNotFound = errors.New("purchase order not found")        // 404
	ErrQuotationNotFound     = errors.New("quotation not found")             // 404
	ErrQuoteSupplierNotFound = errors.New("supplier not found in quotation") // 404
	ErrAppointmentNotFound   = errors.New("appointment not found")           // 404

	ErrUnknownEventType = errors.New("unknown event type")
)

// IsNotFound reports whether err is one of the not-found sentinels.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrPartNotFound) ||
		errors.Is(err, ErrSupplierNotFound) ||
		errors.Is(err, ErrPurchaseOrderNotFound) ||
		errors.Is(err, ErrQuotationNotFound) ||
		errors.Is(err, ErrQuoteSupplierNotFound) ||
		errors.Is(err, ErrAppointmentNotFound)
}

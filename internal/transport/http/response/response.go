package response

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/you-humble/garage-ops/internal/model"
	"github.com/you-humble/garage-ops/platform/logger"
)

const (
	CodeValidation      = "validation_error"
	CodeConflict        = "conflict"
	CodeSlotUnavailable = "slot_unavailable"
	CodeNotFound        = "not_found"
	CodeInternal        = "internal_error"

	ContentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

type ErrorBody struct {
	Code    string       `json:"code"`
	Message string       `json:"message"`
	Fields  []FieldError `json:"fields,omitempty"`
}

type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
	Tag     string `json:"tag,omitempty"`
}

var notFoundErrors = []error{
	model.ErrPartNotFound,
	model.ErrSupplierNotFound,
	model.ErrPurchaseOrderNotFound,
	model.ErrQuotationNotFound,
	model.ErrQuoteSupplierNotFound,
	model.ErrAppointmentNotFound,
}

func JSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Error(r.Context(), "encode response", logger.ErrorF(err))
	}
}

func NoContent(w http.ResponseWriter) {
	w.WriteHeader(http.StatusNoContent)
}

// Attachment writes data as a downloadable file.
func Attachment(w http.ResponseWriter, r *http.Request, contentType, filename string, data []byte) {
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.WriteHeader(http.StatusOK)

	if _, err := w.Write(data); err != nil {
		logger.Error(r.Context(), "write attachment", logger.String("filename", filename), logger.ErrorF(err))
	}
}

// Decode reads a JSON body into v. Malformed bodies become validation errors.
func Decode(r *http.Request, v any) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return fmt.Errorf("%w: malformed JSON body: %v", model.ErrValidation, err)
	}
	return nil
}

// Error maps domain errors onto the HTTP status and the error envelope.
func Error(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, model.ErrValidation):
		body := ErrorBody{Code: CodeValidation, Message: fromSentinel(err, model.ErrValidation)}
		var verr *model.ValidationError
		if errors.As(err, &verr) {
			body.Message = model.ErrValidation.Error()
			for _, f := range verr.Fields {
				body.Fields = append(body.Fields, FieldError{Field: f.Field, Message: f.Message, Tag: f.Tag})
			}
		}
		JSON(w, r, http.StatusBadRequest, body) // 400
	case errors.Is(err, model.ErrConflict):
		JSON(w, r, http.StatusBadRequest, ErrorBody{ // 400
			Code:    CodeConflict,
			Message: fromSentinel(err, model.ErrConflict),
		})
	case errors.Is(err, model.ErrSlotUnavailable):
		JSON(w, r, http.StatusBadRequest, ErrorBody{ // 400
			Code:    CodeSlotUnavailable,
			Message: model.ErrSlotUnavailable.Error(),
		})
	case model.IsNotFound(err):
		msg := err.Error()
		for _, nf := range notFoundErrors {
			if errors.Is(err, nf) {
				msg = nf.Error()
				break
			}
		}
		JSON(w, r, http.StatusNotFound, ErrorBody{Code: CodeNotFound, Message: msg}) // 404
	default:
		logger.Error(r.Context(), "request failed",
			logger.String("method", r.Method),
			logger.String("path", r.URL.Path),
			logger.ErrorF(err),
		)
		JSON(w, r, http.StatusInternalServerError, ErrorBody{ // 500
			Code:    CodeInternal,
			Message: err.Error(),
		})
	}
}

// fromSentinel drops the operation prefix and keeps the sentinel with its detail.
func fromSentinel(err, sentinel error) string {
	msg := err.Error()
	if i := strings.Index(msg, sentinel.Error()); i >= 0 {
		return msg[i:]
	}
	return sentinel.Error()
}

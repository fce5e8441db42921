package http

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/you-humble/garage-ops/internal/model"
	"github.com/you-humble/garage-ops/internal/transport/http/response"
)

type AppointmentService interface {
	BookedSlots(ctx context.Context, date string) ([]string, error)
	AvailableSlots(ctx context.Context, date string) ([]string, error)
	Book(ctx context.Context, params model.BookAppointmentParams) (*model.Appointment, error)
	Appointment(ctx context.Context, id string) (*model.Appointment, error)
	List(ctx context.Context, filter model.AppointmentsFilter) ([]*model.Appointment, error)
	Search(ctx context.Context, query string) ([]*model.Appointment, error)
	Update(ctx context.Context, id string, params model.UpdateAppointmentParams) (*model.Appointment, error)
	UpdateStatus(ctx context.Context, params model.UpdateAppointmentStatusParams) (*model.Appointment, error)
	Delete(ctx context.Context, id string) error
	Export(ctx context.Context, date string) ([]byte, error)
}

type handler struct {
	svc AppointmentService
}

func NewAppointmentHandler(service AppointmentService) *handler {
	return &handler{svc: service}
}

func (h *handler) Register(r chi.Router) {
	r.Post("/", h.Book)
	r.Get("/", h.List)
	r.Get("/booked-slots", h.BookedSlots)
	r.Get("/available-slots", h.AvailableSlots)
	r.Get("/search", h.Search)
	r.Get("/export", h.Export)
	r.Get("/{id}", h.Get)
	r.Put("/{id}", h.Update)
	r.Patch("/{id}/status", h.UpdateStatus)
	r.Delete("/{id}", h.Delete)
}

func (h *handler) Book(w http.ResponseWriter, r *http.Request) {
	var req bookAppointmentRequest
	if err := response.Decode(r, &req); err != nil {
		response.Error(w, r, err)
		return
	}

	a, err := h.svc.Book(r.Context(), req.toParams())
	if err != nil {
		response.Error(w, r, err)
		return
	}

	response.JSON(w, r, http.StatusCreated, toResponse(a))
}

func (h *handler) Get(w http.ResponseWriter, r *http.Request) {
	a, err := h.svc.Appointment(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.Error(w, r, err)
		return
	}

	response.JSON(w, r, http.StatusOK, toResponse(a))
}

// List accepts optional date and status query filters.
func (h *handler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	list, err := h.svc.List(r.Context(), model.AppointmentsFilter{
		Date:   q.Get("date"),
		Status: model.AppointmentStatus(q.Get("status")),
	})
	if err != nil {
		response.Error(w, r, err)
		return
	}

	response.JSON(w, r, http.StatusOK, toResponses(list))
}

func (h *handler) Search(w http.ResponseWriter, r *http.Request) {
	list, err := h.svc.Search(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		response.Error(w, r, err)
		return
	}

	response.JSON(w, r, http.StatusOK, toResponses(list))
}

func (h *handler) BookedSlots(w http.ResponseWriter, r *http.Request) {
	h.writeSlots(w, r, h.svc.BookedSlots)
}

func (h *handler) AvailableSlots(w http.ResponseWriter, r *http.Request) {
	h.writeSlots(w, r, h.svc.AvailableSlots)
}

func (h *handler) writeSlots(
	w http.ResponseWriter,
	r *http.Request,
	slots func(ctx context.Context, date string) ([]string, error),
) {
	date := r.URL.Query().Get("date")
	out, err := slots(r.Context(), date)
	if err != nil {
		response.Error(w, r, err)
		return
	}
	if out == nil {
		out = []string{}
	}

	response.JSON(w, r, http.StatusOK, slotsResponse{Date: date, Slots: out})
}

func (h *handler) Update(w http.ResponseWriter, r *http.Request) {
	var req updateAppointmentRequest
	if err := response.Decode(r, &req); err != nil {
		response.Error(w, r, err)
		return
	}

	a, err := h.svc.Update(r.Context(), chi.URLParam(r, "id"), req.toParams())
	if err != nil {
		response.Error(w, r, err)
		return
	}

	response.JSON(w, r, http.StatusOK, toResponse(a))
}

func (h *handler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	var req updateStatusRequest
	if err := response.Decode(r, &req); err != nil {
		response.Error(w, r, err)
		return
	}

	a, err := h.svc.UpdateStatus(r.Context(), model.UpdateAppointmentStatusParams{
		ID:     chi.URLParam(r, "id"),
		Status: model.AppointmentStatus(req.Status),
	})
	if err != nil {
		response.Error(w, r, err)
		return
	}

	response.JSON(w, r, http.StatusOK, toResponse(a))
}

func (h *handler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		response.Error(w, r, err)
		return
	}

	response.NoContent(w)
}

func (h *handler) Export(w http.ResponseWriter, r *http.Request) {
	date := r.URL.Query().Get("date")
	data, err := h.svc.Export(r.Context(), date)
	if err != nil {
		response.Error(w, r, err)
		return
	}

	filename := "appointments.xlsx"
	if date != "" {
		filename = "appointments-" + date + ".xlsx"
	}
	response.Attachment(w, r, response.ContentTypeXLSX, filename, data)
}

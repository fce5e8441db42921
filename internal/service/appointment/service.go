package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/samber/lo"

	"github.com/you-humble/garage-ops/internal/model"
	"github.com/you-humble/garage-ops/internal/validation"
	"github.com/you-humble/garage-ops/platform/logger"
)

// AppointmentRepository is implemented by both the Mongo and the PostgreSQL store.
type AppointmentRepository interface {
	Create(ctx context.Context, a *model.Appointment) error
	AppointmentByID(ctx context.Context, id string) (*model.Appointment, error)
	List(ctx context.Context, filter model.AppointmentsFilter) ([]*model.Appointment, error)
	BookedSlots(ctx context.Context, date string) ([]string, error)
	Replace(ctx context.Context, a *model.Appointment) error
	Delete(ctx context.Context, id string) error
}

type EventPublisher interface {
	Publish(ctx context.Context, event model.Event) error
}

type AppointmentsExporter interface {
	AppointmentsToXLSX(appointments []*model.Appointment) ([]byte, error)
}

type service struct {
	repo           AppointmentRepository
	events         EventPublisher
	exporter       AppointmentsExporter
	readDBTimeout  time.Duration
	writeDBTimeout time.Duration
}

func NewAppointmentService(
	repo AppointmentRepository,
	events EventPublisher,
	exporter AppointmentsExporter,
	readDBTimeout time.Duration,
	writeDBTimeout time.Duration,
) *service {
	return &service{
		repo:           repo,
		events:         events,
		exporter:       exporter,
		readDBTimeout:  readDBTimeout,
		writeDBTimeout: writeDBTimeout,
	}
}

func (s *service) BookedSlots(ctx context.Context, date string) ([]string, error) {
	const op = "appointment.service.BookedSlots"

	if err := validation.Struct(model.SlotsQuery{Date: date}); err != nil {
		logger.Warn(ctx, "validation", logger.String("date", date), logger.ErrorF(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	booked, err := s.bookedSlots(ctx, date)
	if err != nil {
		logger.Error(ctx, "repository booked slots", logger.String("date", date), logger.ErrorF(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return booked, nil
}

// AvailableSlots returns the fixed schedule minus the slots already held on date.
func (s *service) AvailableSlots(ctx context.Context, date string) ([]string, error) {
	const op = "appointment.service.AvailableSlots"

	booked, err := s.BookedSlots(ctx, date)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return lo.Without(model.TimeSlots, booked...), nil
}

// Book checks the slot and inserts without a transaction; two concurrent
// bookings of the same free slot can both succeed.
func (s *service) Book(ctx context.Context, params model.BookAppointmentParams) (*model.Appointment, error) {
	const op = "appointment.service.Book"
	params = params.Normalize()
	log := logger.With(
		logger.String("date", params.Date),
		logger.String("time_slot", params.TimeSlot),
	)

	if err := validation.Struct(params); err != nil {
		log.Warn(ctx, "validation", logger.ErrorF(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if err := s.ensureSlotFree(ctx, params.Date, params.TimeSlot); err != nil {
		log.Warn(ctx, "slot check", logger.ErrorF(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	now := time.Now().UTC()
	a := &model.Appointment{
		ID:            uuid.NewString(),
		CustomerName:  params.CustomerName,
		CustomerEmail: params.CustomerEmail,
		CustomerPhone: params.CustomerPhone,
		VehicleMake:   params.VehicleMake,
		VehicleModel:  params.VehicleModel,
		VehicleYear:   params.VehicleYear,
		LicensePlate:  params.LicensePlate,
		ServiceTypes:  params.ServiceTypes,
		Date:          params.Date,
		TimeSlot:      params.TimeSlot,
		Status:        model.AppointmentPending,
		Notes:         params.Notes,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	wdbCtx, cancel := context.WithTimeout(ctx, s.writeDBTimeout)
	defer cancel()

	if err := s.repo.Create(wdbCtx, a); err != nil {
		log.Error(ctx, "repository create appointment", logger.ErrorF(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	s.publish(ctx, model.NewEvent(model.EventAppointmentBooked, a.ID, map[string]any{
		"customerName": a.CustomerName,
		"vehicle":      a.VehicleMake + " " + a.VehicleModel,
		"licensePlate": a.LicensePlate,
		"serviceTypes": a.ServiceTypes,
		"date":         a.Date,
		"timeSlot":     a.TimeSlot,
	}))

	return a, nil
}

func (s *service) Appointment(ctx context.Context, id string) (*model.Appointment, error) {
	const op = "appointment.service.Appointment"

	ctx, cancel := context.WithTimeout(ctx, s.readDBTimeout)
	defer cancel()

	a, err := s.repo.AppointmentByID(ctx, id)
	if err != nil {
		logger.Error(ctx, "repository appointment by id", logger.String("id", id), logger.ErrorF(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return a, nil
}

func (s *service) List(ctx context.Context, filter model.AppointmentsFilter) ([]*model.Appointment, error) {
	const op = "appointment.service.List"
	log := logger.With(
		logger.String("date", filter.Date),
		logger.String("status", string(filter.Status)),
	)

	if err := validation.Struct(filter); err != nil {
		log.Warn(ctx, "validation", logger.ErrorF(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	ctx, cancel := context.WithTimeout(ctx, s.readDBTimeout)
	defer cancel()

	out, err := s.repo.List(ctx, filter)
	if err != nil {
		log.Error(ctx, "repository list appointments", logger.ErrorF(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return out, nil
}

func (s *service) Search(ctx context.Context, query string) ([]*model.Appointment, error) {
	const op = "appointment.service.Search"

	query = strings.TrimSpace(query)
	if query == "" {
		verr := model.NewValidationError()
		verr.Add("q", "required", "is required")
		return nil, fmt.Errorf("%s: %w", op, verr)
	}

	out, err := s.List(ctx, model.AppointmentsFilter{Query: query})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return out, nil
}

func (s *service) Update(
	ctx context.Context,
	id string,
	params model.UpdateAppointmentParams,
) (*model.Appointment, error) {
	const op = "appointment.service.Update"
	params = params.Normalize()
	log := logger.With(logger.String("id", id))

	if err := validation.Struct(params); err != nil {
		log.Warn(ctx, "validation", logger.ErrorF(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	a, err := s.Appointment(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	date := lo.FromPtrOr(params.Date, a.Date)
	slot := lo.FromPtrOr(params.TimeSlot, a.TimeSlot)
	if a.HoldsSlot() && (date != a.Date || slot != a.TimeSlot) {
		if err := s.ensureSlotFree(ctx, date, slot); err != nil {
			log.Warn(ctx, "slot check",
				logger.String("date", date),
				logger.String("time_slot", slot),
				logger.ErrorF(err),
			)
			return nil, fmt.Errorf("%s: %w", op, err)
		}
	}

	applyUpdate(a, params)
	a.UpdatedAt = time.Now().UTC()

	wdbCtx, cancel := context.WithTimeout(ctx, s.writeDBTimeout)
	defer cancel()

	if err := s.repo.Replace(wdbCtx, a); err != nil {
		log.Error(ctx, "repository replace appointment", logger.ErrorF(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return a, nil
}

// UpdateStatus sets any known status; reactivating a cancelled appointment
// does not re-check its slot.
func (s *service) UpdateStatus(
	ctx context.Context,
	params model.UpdateAppointmentStatusParams,
) (*model.Appointment, error) {
	const op = "appointment.service.UpdateStatus"
	log := logger.With(
		logger.String("id", params.ID),
		logger.String("status", string(params.Status)),
	)

	if err := validation.Struct(params); err != nil {
		log.Warn(ctx, "validation", logger.ErrorF(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	a, err := s.Appointment(ctx, params.ID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	a.Status = params.Status
	a.UpdatedAt = time.Now().UTC()

	wdbCtx, cancel := context.WithTimeout(ctx, s.writeDBTimeout)
	defer cancel()

	if err := s.repo.Replace(wdbCtx, a); err != nil {
		log.Error(ctx, "repository replace appointment", logger.ErrorF(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return a, nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	const op = "appointment.service.Delete"

	ctx, cancel := context.WithTimeout(ctx, s.writeDBTimeout)
	defer cancel()

	if err := s.repo.Delete(ctx, id); err != nil {
		logger.Error(ctx, "repository delete appointment", logger.String("id", id), logger.ErrorF(err))
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// Export renders the appointments of date, or all of them when date is empty.
func (s *service) Export(ctx context.Context, date string) ([]byte, error) {
	const op = "appointment.service.Export"

	list, err := s.List(ctx, model.AppointmentsFilter{Date: date})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	data, err := s.exporter.AppointmentsToXLSX(list)
	if err != nil {
		logger.Error(ctx, "export appointments", logger.Int("appointments", len(list)), logger.ErrorF(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return data, nil
}

func (s *service) bookedSlots(ctx context.Context, date string) ([]string, error) {
	ctx, cancel := context.WithTimeout(ctx, s.readDBTimeout)
	defer cancel()

	return s.repo.BookedSlots(ctx, date)
}

func (s *service) ensureSlotFree(ctx context.Context, date, slot string) error {
	booked, err := s.bookedSlots(ctx, date)
	if err != nil {
		return err
	}
	if lo.Contains(booked, slot) {
		return model.ErrSlotUnavailable
	}
	return nil
}

func (s *service) publish(ctx context.Context, event model.Event) {
	if err := s.events.Publish(ctx, event); err != nil {
		logger.Warn(ctx, "publish event",
			logger.String("event_type", string(event.Type)),
			logger.String("entity_id", event.EntityID),
			logger.ErrorF(err),
		)
	}
}

func applyUpdate(a *model.Appointment, params model.UpdateAppointmentParams) {
	if params.CustomerName != nil {
		a.CustomerName = *params.CustomerName
	}
	if params.CustomerEmail != nil {
		a.CustomerEmail = *params.CustomerEmail
	}
	if params.CustomerPhone != nil {
		a.CustomerPhone = *params.CustomerPhone
	}
	if params.VehicleMake != nil {
		a.VehicleMake = *params.VehicleMake
	}
	if params.VehicleModel != nil {
		a.VehicleModel = *params.VehicleModel
	}
	if params.VehicleYear != nil {
		a.VehicleYear = *params.VehicleYear
	}
	if params.LicensePlate != nil {
		a.LicensePlate = *params.LicensePlate
	}
	if params.ServiceTypes != nil {
		a.ServiceTypes = params.ServiceTypes
	}
	if params.Date != nil {
		a.Date = *params.Date
	}
	if params.TimeSlot != nil {
		a.TimeSlot = *params.TimeSlot
	}
	if params.Notes != nil {
		a.Notes = *params.Notes
	}
}

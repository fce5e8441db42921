package http

import (
	"time"

	"github.com/samber/lo"

	"github.com/you-humble/garage-ops/internal/model"
)

type bookAppointmentRequest struct {
	CustomerName  string   `json:"customerName"`
	CustomerEmail string   `json:"customerEmail"`
	CustomerPhone string   `json:"customerPhone"`
	VehicleMake   string   `json:"vehicleMake"`
	VehicleModel  string   `json:"vehicleModel"`
	VehicleYear   int      `json:"vehicleYear"`
	LicensePlate  string   `json:"licensePlate"`
	ServiceTypes  []string `json:"serviceTypes"`
	Date          string   `json:"date"`
	TimeSlot      string   `json:"timeSlot"`
	Notes         string   `json:"notes"`
}

type updateAppointmentRequest struct {
	CustomerName  *string  `json:"customerName"`
	CustomerEmail *string  `json:"customerEmail"`
	CustomerPhone *string  `json:"customerPhone"`
	VehicleMake   *string  `json:"vehicleMake"`
	VehicleModel  *string  `json:"vehicleModel"`
	VehicleYear   *int     `json:"vehicleYear"`
	LicensePlate  *string  `json:"licensePlate"`
	ServiceTypes  []string `json:"serviceTypes"`
	Date          *string  `json:"date"`
	TimeSlot      *string  `json:"timeSlot"`
	Notes         *string  `json:"notes"`
}

type updateStatusRequest struct {
	Status string `json:"status"`
}

type slotsResponse struct {
	Date  string   `json:"date"`
	Slots []string `json:"slots"`
}

type appointmentResponse struct {
	ID            string    `json:"id"`
	CustomerName  string    `json:"customerName"`
	CustomerEmail string    `json:"customerEmail"`
	CustomerPhone string    `json:"customerPhone"`
	VehicleMake   string    `json:"vehicleMake"`
	VehicleModel  string    `json:"vehicleModel"`
	VehicleYear   int       `json:"vehicleYear"`
	LicensePlate  string    `json:"licensePlate"`
	ServiceTypes  []string  `json:"serviceTypes"`
	Date          string    `json:"date"`
	TimeSlot      string    `json:"timeSlot"`
	Status        string    `json:"status"`
	Notes         string    `json:"notes"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

func (req bookAppointmentRequest) toParams() model.BookAppointmentParams {
	return model.BookAppointmentParams{
		CustomerName:  req.CustomerName,
		CustomerEmail: req.CustomerEmail,
		CustomerPhone: req.CustomerPhone,
		VehicleMake:   req.VehicleMake,
		VehicleModel:  req.VehicleModel,
		VehicleYear:   req.VehicleYear,
		LicensePlate:  req.LicensePlate,
		ServiceTypes:  req.ServiceTypes,
		Date:          req.Date,
		TimeSlot:      req.TimeSlot,
		Notes:         req.Notes,
	}
}

func (req updateAppointmentRequest) toParams() model.UpdateAppointmentParams {
	return model.UpdateAppointmentParams{
		CustomerName:  req.CustomerName,
		CustomerEmail: req.CustomerEmail,
		CustomerPhone: req.CustomerPhone,
		VehicleMake:   req.VehicleMake,
		VehicleModel:  req.VehicleModel,
		VehicleYear:   req.VehicleYear,
		LicensePlate:  req.LicensePlate,
		ServiceTypes:  req.ServiceTypes,
		Date:          req.Date,
		TimeSlot:      req.TimeSlot,
		Notes:         req.Notes,
	}
}

func toResponse(a *model.Appointment) appointmentResponse {
	return appointmentResponse{
		ID:            a.ID,
		CustomerName:  a.CustomerName,
		CustomerEmail: a.CustomerEmail,
		CustomerPhone: a.CustomerPhone,
		VehicleMake:   a.VehicleMake,
		VehicleModel:  a.VehicleModel,
		VehicleYear:   a.VehicleYear,
		LicensePlate:  a.LicensePlate,
		ServiceTypes:  lo.CoalesceSliceOrEmpty(a.ServiceTypes),
		Date:          a.Date,
		TimeSlot:      a.TimeSlot,
		Status:        string(a.Status),
		Notes:         a.Notes,
		CreatedAt:     a.CreatedAt,
		UpdatedAt:     a.UpdatedAt,
	}
}

func toResponses(list []*model.Appointment) []appointmentResponse {
	return lo.Map(list, func(a *model.Appointment, _ int) appointmentResponse { return toResponse(a) })
}

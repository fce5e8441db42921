package model

import "time"

type AppointmentStatus string

const (
	AppointmentPending   AppointmentStatus = "pending"
	AppointmentConfirmed AppointmentStatus = "confirmed"
	AppointmentCompleted AppointmentStatus = "completed"
	AppointmentCancelled AppointmentStatus = "cancelled"
)

// DateLayout is the only accepted appointment date format.
const DateLayout = "2006-01-02"

// TimeSlots is the fixed daily schedule; each slot holds at most one active appointment.
var TimeSlots = []string{
	"09:00", "10:00", "11:00", "12:00",
	"13:00", "14:00", "15:00", "16:00",
}

type Appointment struct {
	ID            string
	CustomerName  string
	CustomerEmail string
	CustomerPhone string
	VehicleMake   string
	VehicleModel  string
	VehicleYear   int
	LicensePlate  string
	ServiceTypes  []string
	Date          string
	TimeSlot      string
	Status        AppointmentStatus
	Notes         string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// HoldsSlot reports whether the appointment blocks its (date, slot) pair.
func (a *Appointment) HoldsSlot() bool {
	return a.Status != AppointmentCancelled
}

type AppointmentsFilter struct {
	Date   string            `validate:"omitempty,datetime=2006-01-02"`
	Status AppointmentStatus `validate:"omitempty,oneof=pending confirmed completed cancelled"`
	// Case-insensitive substring over service types, vehicle and plate.
	Query string
}

// SlotsQuery selects the schedule of a single day.
type SlotsQuery struct {
	Date string `validate:"required,datetime=2006-01-02"`
}

type BookAppointmentParams struct {
	CustomerName  string   `validate:"required,max=200"`
	CustomerEmail string   `validate:"omitempty,email"`
	CustomerPhone string   `validate:"omitempty,numeric,len=10"`
	VehicleMake   string   `validate:"required"`
	VehicleModel  string   `validate:"required"`
	VehicleYear   int      `validate:"omitempty,gte=1900,lte=2100"`
	LicensePlate  string   `validate:"required,max=20"`
	ServiceTypes  []string `validate:"required,min=1,dive,required"`
	Date          string   `validate:"required,datetime=2006-01-02"`
	TimeSlot      string   `validate:"required,timeslot"`
	Notes         string   `validate:"omitempty,max=2000"`
}

type UpdateAppointmentParams struct {
	CustomerName  *string  `validate:"omitnil,min=1,max=200"`
	CustomerEmail *string  `validate:"omitnil,email"`
	CustomerPhone *string  `validate:"omitnil,numeric,len=10"`
	VehicleMake   *string  `validate:"omitnil,min=1"`
	VehicleModel  *string  `validate:"omitnil,min=1"`
	VehicleYear   *int     `validate:"omitnil,gte=1900,lte=2100"`
	LicensePlate  *string  `validate:"omitnil,min=1,max=20"`
	ServiceTypes  []string `validate:"omitempty,min=1,dive,required"`
	Date          *string  `validate:"omitnil,datetime=2006-01-02"`
	TimeSlot      *string  `validate:"omitnil,timeslot"`
	Notes         *string  `validate:"omitnil,max=2000"`
}

type UpdateAppointmentStatusParams struct {
	ID     string            `validate:"required"`
	Status AppointmentStatus `validate:"required,oneof=pending confirmed completed cancelled"`
}

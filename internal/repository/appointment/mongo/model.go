package repository

import "time"

type AppointmentEntity struct {
	ID            string    `bson:"_id"`
	CustomerName  string    `bson:"customer_name"`
	CustomerEmail string    `bson:"customer_email,omitempty"`
	CustomerPhone string    `bson:"customer_phone,omitempty"`
	VehicleMake   string    `bson:"vehicle_make"`
	VehicleModel  string    `bson:"vehicle_model"`
	VehicleYear   int       `bson:"vehicle_year,omitempty"`
	LicensePlate  string    `bson:"license_plate"`
	ServiceTypes  []string  `bson:"service_types"`
	Date          string    `bson:"date"`
	TimeSlot      string    `bson:"time_slot"`
	Status        string    `bson:"status"`
	Notes         string    `bson:"notes,omitempty"`
	CreatedAt     time.Time `bson:"created_at"`
	UpdatedAt     time.Time `bson:"updated_at"`
}

type slotEntity struct {
	TimeSlot string `bson:"time_slot"`
}

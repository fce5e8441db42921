package repository

import (
	"regexp"

	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/you-humble/garage-ops/internal/model"
)

func EntityToModel(e *AppointmentEntity) *model.Appointment {
	if e == nil {
		return nil
	}

	return &model.Appointment{
		ID:            e.ID,
		CustomerName:  e.CustomerName,
		CustomerEmail: e.CustomerEmail,
		CustomerPhone: e.CustomerPhone,
		VehicleMake:   e.VehicleMake,
		VehicleModel:  e.VehicleModel,
		VehicleYear:   e.VehicleYear,
		LicensePlate:  e.LicensePlate,
		ServiceTypes:  e.ServiceTypes,
		Date:          e.Date,
		TimeSlot:      e.TimeSlot,
		Status:        model.AppointmentStatus(e.Status),
		Notes:         e.Notes,
		CreatedAt:     e.CreatedAt,
		UpdatedAt:     e.UpdatedAt,
	}
}

func EntityFromModel(a *model.Appointment) *AppointmentEntity {
	if a == nil {
		return nil
	}

	return &AppointmentEntity{
		ID:            a.ID,
		CustomerName:  a.CustomerName,
		CustomerEmail: a.CustomerEmail,
		CustomerPhone: a.CustomerPhone,
		VehicleMake:   a.VehicleMake,
		VehicleModel:  a.VehicleModel,
		VehicleYear:   a.VehicleYear,
		LicensePlate:  a.LicensePlate,
		ServiceTypes:  a.ServiceTypes,
		Date:          a.Date,
		TimeSlot:      a.TimeSlot,
		Status:        string(a.Status),
		Notes:         a.Notes,
		CreatedAt:     a.CreatedAt,
		UpdatedAt:     a.UpdatedAt,
	}
}

func BuildMongoFilter(f model.AppointmentsFilter) bson.M {
	q := bson.M{}

	if f.Date != "" {
		q["date"] = f.Date
	}
	if f.Status != "" {
		q["status"] = string(f.Status)
	}
	if f.Query != "" {
		re := bson.Regex{Pattern: regexp.QuoteMeta(f.Query), Options: "i"}
		q["$or"] = bson.A{
			bson.M{"service_types": re},
			bson.M{"vehicle_make": re},
			bson.M{"vehicle_model": re},
			bson.M{"license_plate": re},
		}
	}

	return q
}

// BookedSlotsFilter matches appointments on exactly date that still hold their slot.
func BookedSlotsFilter(date string) bson.M {
	return bson.M{
		"date":   date,
		"status": bson.M{"$ne": string(model.AppointmentCancelled)},
	}
}

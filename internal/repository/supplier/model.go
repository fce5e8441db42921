package repository

import "time"

type SupplierEntity struct {
	ID           string    `bson:"_id"`
	SupplierID   string    `bson:"supplier_id"`
	Name         string    `bson:"name"`
	ContactEmail string    `bson:"contact_email"`
	ContactPhone string    `bson:"contact_phone"`
	Address      string    `bson:"address,omitempty"`
	CreatedAt    time.Time `bson:"created_at"`
	UpdatedAt    time.Time `bson:"updated_at"`
}

package repository

import "time"

type PartEntity struct {
	ID           string    `bson:"_id"`
	PartID       string    `bson:"part_id"`
	PartNumber   string    `bson:"part_number"`
	Name         string    `bson:"name"`
	Description  string    `bson:"description,omitempty"`
	CategoryID   string    `bson:"category_id,omitempty"`
	Quantity     int64     `bson:"quantity"`
	MinimumStock int64     `bson:"minimum_stock"`
	UnitPrice    float64   `bson:"unit_price"`
	Location     string    `bson:"location,omitempty"`
	CreatedAt    time.Time `bson:"created_at"`
	UpdatedAt    time.Time `bson:"updated_at"`
}

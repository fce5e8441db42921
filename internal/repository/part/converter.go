package repository

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/you-humble/garage-ops/internal/model"
)

func EntityToModel(e *PartEntity) *model.Part {
	if e == nil {
		return nil
	}

	return &model.Part{
		ID:           e.ID,
		PartID:       e.PartID,
		PartNumber:   e.PartNumber,
		Name:         e.Name,
		Description:  e.Description,
		CategoryID:   e.CategoryID,
		Quantity:     e.Quantity,
		MinimumStock: e.MinimumStock,
		UnitPrice:    e.UnitPrice,
		Location:     e.Location,
		CreatedAt:    e.CreatedAt,
		UpdatedAt:    e.UpdatedAt,
	}
}

func EntityFromModel(p *model.Part) *PartEntity {
	if p == nil {
		return nil
	}

	return &PartEntity{
		ID:           p.ID,
		PartID:       p.PartID,
		PartNumber:   p.PartNumber,
		Name:         p.Name,
		Description:  p.Description,
		CategoryID:   p.CategoryID,
		Quantity:     p.Quantity,
		MinimumStock: p.MinimumStock,
		UnitPrice:    p.UnitPrice,
		Location:     p.Location,
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}
}

func BuildMongoFilter(f model.PartsFilter) bson.M {
	q := bson.M{}

	if f.CategoryID != "" {
		q["category_id"] = f.CategoryID
	}
	if f.LowStockOnly {
		q["$expr"] = bson.M{"$lte": bson.A{"$quantity", "$minimum_stock"}}
	}

	return q
}

// BuildMongoUpdate returns a $set document holding only the provided fields.
func BuildMongoUpdate(p model.UpdatePartParams, now time.Time) bson.M {
	set := bson.M{"updated_at": now}

	if p.PartID != nil {
		set["part_id"] = *p.PartID
	}
	if p.PartNumber != nil {
		set["part_number"] = *p.PartNumber
	}
	if p.Name != nil {
		set["name"] = *p.Name
	}
	if p.Description != nil {
		set["description"] = *p.Description
	}
	if p.CategoryID != nil {
		set["category_id"] = *p.CategoryID
	}
	if p.Quantity != nil {
		set["quantity"] = *p.Quantity
	}
	if p.MinimumStock != nil {
		set["minimum_stock"] = *p.MinimumStock
	}
	if p.UnitPrice != nil {
		set["unit_price"] = *p.UnitPrice
	}
	if p.Location != nil {
		set["location"] = *p.Location
	}

	return bson.M{"$set": set}
}

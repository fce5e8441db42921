package repository

import (
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/you-humble/garage-ops/internal/model"
)

func EntityToModel(e *SupplierEntity) *model.Supplier {
	if e == nil {
		return nil
	}

	return &model.Supplier{
		ID:           e.ID,
		SupplierID:   e.SupplierID,
		Name:         e.Name,
		ContactEmail: e.ContactEmail,
		ContactPhone: e.ContactPhone,
		Address:      e.Address,
		CreatedAt:    e.CreatedAt,
		UpdatedAt:    e.UpdatedAt,
	}
}

func EntityFromModel(s *model.Supplier) *SupplierEntity {
	if s == nil {
		return nil
	}

	return &SupplierEntity{
		ID:           s.ID,
		SupplierID:   s.SupplierID,
		Name:         s.Name,
		ContactEmail: normalizeEmail(s.ContactEmail),
		ContactPhone: s.ContactPhone,
		Address:      s.Address,
		CreatedAt:    s.CreatedAt,
		UpdatedAt:    s.UpdatedAt,
	}
}

func BuildMongoUpdate(p model.UpdateSupplierParams, now time.Time) bson.M {
	set := bson.M{"updated_at": now}

	if p.SupplierID != nil {
		set["supplier_id"] = *p.SupplierID
	}
	if p.Name != nil {
		set["name"] = *p.Name
	}
	if p.ContactEmail != nil {
		set["contact_email"] = normalizeEmail(*p.ContactEmail)
	}
	if p.ContactPhone != nil {
		set["contact_phone"] = *p.ContactPhone
	}
	if p.Address != nil {
		set["address"] = *p.Address
	}

	return bson.M{"$set": set}
}

// Emails are stored lower-cased so the unique index is case-insensitive.
func normalizeEmail(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

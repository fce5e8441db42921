package repository

import (
	"github.com/samber/lo"
	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/you-humble/garage-ops/internal/model"
)

func EntityToModel(e *QuotationEntity) *model.Quotation {
	if e == nil {
		return nil
	}

	return &model.Quotation{
		ID:          e.ID,
		QuotationID: e.QuotationID,
		Part: model.QuotedPart{
			PartID:     e.Part.PartID,
			PartNumber: e.Part.PartNumber,
			Name:       e.Part.Name,
		},
		Quantity: e.Quantity,
		Suppliers: lo.Map(e.Suppliers, func(s QuoteSupplierEntity, _ int) model.QuoteSupplier {
			return model.QuoteSupplier{
				SupplierID:   s.SupplierID,
				Name:         s.Name,
				ContactEmail: s.ContactEmail,
				QuotedPrice:  s.QuotedPrice,
				DeliveryTime: s.DeliveryTime,
				Status:       model.QuoteStatus(s.Status),
			}
		}),
		Status:    model.QuotationStatus(e.Status),
		Notes:     e.Notes,
		CreatedAt: e.CreatedAt,
		UpdatedAt: e.UpdatedAt,
	}
}

func EntityFromModel(q *model.Quotation) *QuotationEntity {
	if q == nil {
		return nil
	}

	return &QuotationEntity{
		ID:          q.ID,
		QuotationID: q.QuotationID,
		Part: QuotedPartEntity{
			PartID:     q.Part.PartID,
			PartNumber: q.Part.PartNumber,
			Name:       q.Part.Name,
		},
		Quantity: q.Quantity,
		Suppliers: lo.Map(q.Suppliers, func(s model.QuoteSupplier, _ int) QuoteSupplierEntity {
			return QuoteSupplierEntity{
				SupplierID:   s.SupplierID,
				Name:         s.Name,
				ContactEmail: s.ContactEmail,
				QuotedPrice:  s.QuotedPrice,
				DeliveryTime: s.DeliveryTime,
				Status:       string(s.Status),
			}
		}),
		Status:    string(q.Status),
		Notes:     q.Notes,
		CreatedAt: q.CreatedAt,
		UpdatedAt: q.UpdatedAt,
	}
}

// ByIDFilter matches either the document id or the QUO- identifier.
func ByIDFilter(id string) bson.M {
	return bson.M{"$or": bson.A{
		bson.M{"_id": id},
		bson.M{"quotation_id": id},
	}}
}

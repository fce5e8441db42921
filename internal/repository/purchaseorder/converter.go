package repository

import (
	"github.com/samber/lo"
	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/you-humble/garage-ops/internal/model"
)

func EntityToModel(e *PurchaseOrderEntity) *model.PurchaseOrder {
	if e == nil {
		return nil
	}

	return &model.PurchaseOrder{
		ID:         e.ID,
		SupplierID: e.SupplierID,
		Items: lo.Map(e.Items, func(it OrderItemEntity, _ int) model.OrderItem {
			return model.OrderItem{
				Name:       it.Name,
				Quantity:   it.Quantity,
				UnitPrice:  it.UnitPrice,
				TotalPrice: it.TotalPrice,
			}
		}),
		TotalAmount:          e.TotalAmount,
		Status:               model.PurchaseOrderStatus(e.Status),
		OrderDate:            e.OrderDate,
		ExpectedDeliveryDate: e.ExpectedDeliveryDate,
		ReceivedDate:         e.ReceivedDate,
		Notes:                e.Notes,
		CreatedAt:            e.CreatedAt,
		UpdatedAt:            e.UpdatedAt,
	}
}

func EntityFromModel(po *model.PurchaseOrder) *PurchaseOrderEntity {
	if po == nil {
		return nil
	}

	return &PurchaseOrderEntity{
		ID:         po.ID,
		SupplierID: po.SupplierID,
		Items: lo.Map(po.Items, func(it model.OrderItem, _ int) OrderItemEntity {
			return OrderItemEntity{
				Name:       it.Name,
				Quantity:   it.Quantity,
				UnitPrice:  it.UnitPrice,
				TotalPrice: it.TotalPrice,
			}
		}),
		TotalAmount:          po.TotalAmount,
		Status:               string(po.Status),
		OrderDate:            po.OrderDate,
		ExpectedDeliveryDate: po.ExpectedDeliveryDate,
		ReceivedDate:         po.ReceivedDate,
		Notes:                po.Notes,
		CreatedAt:            po.CreatedAt,
		UpdatedAt:            po.UpdatedAt,
	}
}

func BuildMongoFilter(f model.PurchaseOrdersFilter) bson.M {
	q := bson.M{}

	if f.Status != "" {
		q["status"] = string(f.Status)
	}
	if f.SupplierID != "" {
		q["supplier_id"] = f.SupplierID
	}

	return q
}

package repository

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/you-humble/garage-ops/internal/model"
)

type repository struct {
	coll *mongo.Collection
}

func NewPurchaseOrderRepository(collection *mongo.Collection) *repository {
	return &repository{coll: collection}
}

func (r *repository) Create(ctx context.Context, po *model.PurchaseOrder) error {
	const op = "repository.purchaseorder.Create"

	if _, err := r.coll.InsertOne(ctx, EntityFromModel(po)); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

func (r *repository) PurchaseOrderByID(ctx context.Context, id string) (*model.PurchaseOrder, error) {
	const op = "repository.purchaseorder.PurchaseOrderByID"

	var ent PurchaseOrderEntity
	err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&ent)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, model.ErrPurchaseOrderNotFound
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return EntityToModel(&ent), nil
}

func (r *repository) List(ctx context.Context, filter model.PurchaseOrdersFilter) ([]*model.PurchaseOrder, error) {
	const op = "repository.purchaseorder.List"

	cur, err := r.coll.Find(ctx,
		BuildMongoFilter(filter),
		options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}),
	)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	var ents []PurchaseOrderEntity
	if err := cur.All(ctx, &ents); err != nil {
		return nil, fmt.Errorf("%s decode: %w", op, err)
	}

	out := make([]*model.PurchaseOrder, 0, len(ents))
	for i := range ents {
		out = append(out, EntityToModel(&ents[i]))
	}

	return out, nil
}

// Replace overwrites the stored document.
func (r *repository) Replace(ctx context.Context, po *model.PurchaseOrder) error {
	const op = "repository.purchaseorder.Replace"

	res, err := r.coll.ReplaceOne(ctx, bson.M{"_id": po.ID}, EntityFromModel(po))
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if res.MatchedCount == 0 {
		return model.ErrPurchaseOrderNotFound
	}

	return nil
}

func (r *repository) Delete(ctx context.Context, id string) error {
	const op = "repository.purchaseorder.Delete"

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if res.DeletedCount == 0 {
		return model.ErrPurchaseOrderNotFound
	}

	return nil
}

package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/you-humble/garage-ops/internal/model"
)

type repository struct {
	coll *mongo.Collection
}

func NewSupplierRepository(collection *mongo.Collection) *repository {
	return &repository{coll: collection}
}

func (r *repository) Create(ctx context.Context, s *model.Supplier) error {
	const op = "repository.supplier.Create"

	if _, err := r.coll.InsertOne(ctx, EntityFromModel(s)); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return fmt.Errorf("%s: %w: supplier id or contact email already exists", op, model.ErrConflict)
		}
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

func (r *repository) SupplierByID(ctx context.Context, id string) (*model.Supplier, error) {
	const op = "repository.supplier.SupplierByID"

	var ent SupplierEntity
	err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&ent)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, model.ErrSupplierNotFound
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return EntityToModel(&ent), nil
}

// SuppliersByIDs returns the suppliers that exist; unknown ids are skipped.
func (r *repository) SuppliersByIDs(ctx context.Context, ids []string) ([]*model.Supplier, error) {
	const op = "repository.supplier.SuppliersByIDs"

	if len(ids) == 0 {
		return []*model.Supplier{}, nil
	}

	return r.find(ctx, op, bson.M{"_id": bson.M{"$in": ids}})
}

func (r *repository) List(ctx context.Context) ([]*model.Supplier, error) {
	const op = "repository.supplier.List"

	return r.find(ctx, op, bson.M{})
}

func (r *repository) find(ctx context.Context, op string, filter bson.M) ([]*model.Supplier, error) {
	cur, err := r.coll.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "name", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	var ents []SupplierEntity
	if err := cur.All(ctx, &ents); err != nil {
		return nil, fmt.Errorf("%s decode: %w", op, err)
	}

	out := make([]*model.Supplier, 0, len(ents))
	for i := range ents {
		out = append(out, EntityToModel(&ents[i]))
	}

	return out, nil
}

func (r *repository) Update(ctx context.Context, id string, upd model.UpdateSupplierParams) (*model.Supplier, error) {
	const op = "repository.supplier.Update"

	var ent SupplierEntity
	err := r.coll.FindOneAndUpdate(ctx,
		bson.M{"_id": id},
		BuildMongoUpdate(upd, time.Now().UTC()),
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&ent)
	if err != nil {
		switch {
		case errors.Is(err, mongo.ErrNoDocuments):
			return nil, model.ErrSupplierNotFound
		case mongo.IsDuplicateKeyError(err):
			return nil, fmt.Errorf("%s: %w: supplier id or contact email already exists", op, model.ErrConflict)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return EntityToModel(&ent), nil
}

func (r *repository) Delete(ctx context.Context, id string) error {
	const op = "repository.supplier.Delete"

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if res.DeletedCount == 0 {
		return model.ErrSupplierNotFound
	}

	return nil
}

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

func NewPartRepository(collection *mongo.Collection) *repository {
	return &repository{coll: collection}
}

func (r *repository) Create(ctx context.Context, p *model.Part) error {
	const op = "repository.part.Create"

	if _, err := r.coll.InsertOne(ctx, EntityFromModel(p)); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return fmt.Errorf("%s: %w: part id or part number already exists", op, model.ErrConflict)
		}
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

func (r *repository) PartByID(ctx context.Context, id string) (*model.Part, error) {
	const op = "repository.part.PartByID"

	var ent PartEntity
	err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&ent)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, model.ErrPartNotFound
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return EntityToModel(&ent), nil
}

func (r *repository) List(ctx context.Context, filter model.PartsFilter) ([]*model.Part, error) {
	const op = "repository.part.List"

	cur, err := r.coll.Find(ctx,
		BuildMongoFilter(filter),
		options.Find().SetSort(bson.D{{Key: "name", Value: 1}}),
	)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	var ents []PartEntity
	if err := cur.All(ctx, &ents); err != nil {
		return nil, fmt.Errorf("%s decode: %w", op, err)
	}

	out := make([]*model.Part, 0, len(ents))
	for i := range ents {
		out = append(out, EntityToModel(&ents[i]))
	}

	return out, nil
}

func (r *repository) Update(ctx context.Context, id string, upd model.UpdatePartParams) (*model.Part, error) {
	const op = "repository.part.Update"

	var ent PartEntity
	err := r.coll.FindOneAndUpdate(ctx,
		bson.M{"_id": id},
		BuildMongoUpdate(upd, time.Now().UTC()),
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&ent)
	if err != nil {
		switch {
		case errors.Is(err, mongo.ErrNoDocuments):
			return nil, model.ErrPartNotFound
		case mongo.IsDuplicateKeyError(err):
			return nil, fmt.Errorf("%s: %w: part id or part number already exists", op, model.ErrConflict)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return EntityToModel(&ent), nil
}

func (r *repository) Delete(ctx context.Context, id string) error {
	const op = "repository.part.Delete"

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if res.DeletedCount == 0 {
		return model.ErrPartNotFound
	}

	return nil
}

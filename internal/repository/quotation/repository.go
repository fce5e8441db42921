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

func NewQuotationRepository(collection *mongo.Collection) *repository {
	return &repository{coll: collection}
}

func (r *repository) Create(ctx context.Context, q *model.Quotation) error {
	const op = "repository.quotation.Create"

	if _, err := r.coll.InsertOne(ctx, EntityFromModel(q)); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return fmt.Errorf("%s: %w: quotation id %s already exists", op, model.ErrConflict, q.QuotationID)
		}
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

func (r *repository) QuotationByID(ctx context.Context, id string) (*model.Quotation, error) {
	const op = "repository.quotation.QuotationByID"

	var ent QuotationEntity
	err := r.coll.FindOne(ctx, ByIDFilter(id)).Decode(&ent)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, model.ErrQuotationNotFound
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return EntityToModel(&ent), nil
}

// List returns quotations newest first.
func (r *repository) List(ctx context.Context) ([]*model.Quotation, error) {
	const op = "repository.quotation.List"

	cur, err := r.coll.Find(ctx,
		bson.M{},
		options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}),
	)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	var ents []QuotationEntity
	if err := cur.All(ctx, &ents); err != nil {
		return nil, fmt.Errorf("%s decode: %w", op, err)
	}

	out := make([]*model.Quotation, 0, len(ents))
	for i := range ents {
		out = append(out, EntityToModel(&ents[i]))
	}

	return out, nil
}

// Replace persists the whole document, embedded supplier entries included.
func (r *repository) Replace(ctx context.Context, q *model.Quotation) error {
	const op = "repository.quotation.Replace"

	res, err := r.coll.ReplaceOne(ctx, bson.M{"_id": q.ID}, EntityFromModel(q))
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if res.MatchedCount == 0 {
		return model.ErrQuotationNotFound
	}

	return nil
}

func (r *repository) Delete(ctx context.Context, id string) error {
	const op = "repository.quotation.Delete"

	res, err := r.coll.DeleteOne(ctx, ByIDFilter(id))
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if res.DeletedCount == 0 {
		return model.ErrQuotationNotFound
	}

	return nil
}

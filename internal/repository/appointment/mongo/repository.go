package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/samber/lo"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/you-humble/garage-ops/internal/model"
)

type repository struct {
	coll *mongo.Collection
}

func NewAppointmentRepository(collection *mongo.Collection) *repository {
	return &repository{coll: collection}
}

func (r *repository) Create(ctx context.Context, a *model.Appointment) error {
	const op = "repository.appointment.Create"

	if _, err := r.coll.InsertOne(ctx, EntityFromModel(a)); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

func (r *repository) AppointmentByID(ctx context.Context, id string) (*model.Appointment, error) {
	const op = "repository.appointment.AppointmentByID"

	var ent AppointmentEntity
	err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&ent)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, model.ErrAppointmentNotFound
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return EntityToModel(&ent), nil
}

func (r *repository) List(ctx context.Context, filter model.AppointmentsFilter) ([]*model.Appointment, error) {
	const op = "repository.appointment.List"

	cur, err := r.coll.Find(ctx,
		BuildMongoFilter(filter),
		options.Find().SetSort(bson.D{
			{Key: "date", Value: 1},
			{Key: "time_slot", Value: 1},
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	var ents []AppointmentEntity
	if err := cur.All(ctx, &ents); err != nil {
		return nil, fmt.Errorf("%s decode: %w", op, err)
	}

	out := make([]*model.Appointment, 0, len(ents))
	for i := range ents {
		out = append(out, EntityToModel(&ents[i]))
	}

	return out, nil
}

func (r *repository) BookedSlots(ctx context.Context, date string) ([]string, error) {
	const op = "repository.appointment.BookedSlots"

	cur, err := r.coll.Find(ctx,
		BookedSlotsFilter(date),
		options.Find().SetProjection(bson.M{"time_slot": 1}),
	)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	var rows []slotEntity
	if err := cur.All(ctx, &rows); err != nil {
		return nil, fmt.Errorf("%s decode: %w", op, err)
	}

	return lo.Uniq(lo.Map(rows, func(r slotEntity, _ int) string { return r.TimeSlot })), nil
}

func (r *repository) Replace(ctx context.Context, a *model.Appointment) error {
	const op = "repository.appointment.Replace"

	res, err := r.coll.ReplaceOne(ctx, bson.M{"_id": a.ID}, EntityFromModel(a))
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if res.MatchedCount == 0 {
		return model.ErrAppointmentNotFound
	}

	return nil
}

func (r *repository) Delete(ctx context.Context, id string) error {
	const op = "repository.appointment.Delete"

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if res.DeletedCount == 0 {
		return model.ErrAppointmentNotFound
	}

	return nil
}

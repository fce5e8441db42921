package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/you-humble/garage-ops/internal/model"
)

const table = "appointments"

var columns = []string{
	"id", "customer_name", "customer_email", "customer_phone",
	"vehicle_make", "vehicle_model", "vehicle_year", "license_plate",
	"service_types", "appointment_date", "time_slot", "status", "notes",
	"created_at", "updated_at",
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

type repository struct {
	pool *pgxpool.Pool
	sb   sq.StatementBuilderType
}

func NewAppointmentRepository(pool *pgxpool.Pool) *repository {
	return &repository{
		pool: pool,
		sb:   sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

func (r *repository) Create(ctx context.Context, a *model.Appointment) error {
	const op = "repository.appointment.postgres.Create"

	sqlStr, args, err := r.sb.
		Insert(table).
		Columns(columns...).
		Values(
			a.ID, a.CustomerName, a.CustomerEmail, a.CustomerPhone,
			a.VehicleMake, a.VehicleModel, a.VehicleYear, a.LicensePlate,
			serviceTypes(a.ServiceTypes), a.Date, a.TimeSlot, string(a.Status), a.Notes,
			a.CreatedAt, a.UpdatedAt,
		).
		ToSql()
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if _, err := r.pool.Exec(ctx, sqlStr, args...); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

func (r *repository) AppointmentByID(ctx context.Context, id string) (*model.Appointment, error) {
	const op = "repository.appointment.postgres.AppointmentByID"

	sqlStr, args, err := r.sb.
		Select(columns...).
		From(table).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	a, err := scanAppointment(r.pool.QueryRow(ctx, sqlStr, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrAppointmentNotFound
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return a, nil
}

func (r *repository) List(ctx context.Context, filter model.AppointmentsFilter) ([]*model.Appointment, error) {
	const op = "repository.appointment.postgres.List"

	q := r.sb.
		Select(columns...).
		From(table).
		Where(BuildWhere(filter)).
		OrderBy("appointment_date ASC", "time_slot ASC")

	sqlStr, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	rows, err := r.pool.Query(ctx, sqlStr, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	out := make([]*model.Appointment, 0)
	for rows.Next() {
		a, err := scanAppointment(rows)
		if err != nil {
			return nil, fmt.Errorf("%s scan: %w", op, err)
		}
		out = append(out, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s rows: %w", op, err)
	}

	return out, nil
}

func (r *repository) BookedSlots(ctx context.Context, date string) ([]string, error) {
	const op = "repository.appointment.postgres.BookedSlots"

	sqlStr, args, err := r.sb.
		Select("DISTINCT time_slot").
		From(table).
		Where(sq.Eq{"appointment_date": date}).
		Where(sq.NotEq{"status": string(model.AppointmentCancelled)}).
		OrderBy("time_slot").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	rows, err := r.pool.Query(ctx, sqlStr, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	slots, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return nil, fmt.Errorf("%s collect: %w", op, err)
	}

	return slots, nil
}

func (r *repository) Replace(ctx context.Context, a *model.Appointment) error {
	const op = "repository.appointment.postgres.Replace"

	sqlStr, args, err := r.sb.
		Update(table).
		SetMap(map[string]any{
			"customer_name":    a.CustomerName,
			"customer_email":   a.CustomerEmail,
			"customer_phone":   a.CustomerPhone,
			"vehicle_make":     a.VehicleMake,
			"vehicle_model":    a.VehicleModel,
			"vehicle_year":     a.VehicleYear,
			"license_plate":    a.LicensePlate,
			"service_types":    serviceTypes(a.ServiceTypes),
			"appointment_date": a.Date,
			"time_slot":        a.TimeSlot,
			"status":           string(a.Status),
			"notes":            a.Notes,
			"updated_at":       a.UpdatedAt,
		}).
		Where(sq.Eq{"id": a.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	ct, err := r.pool.Exec(ctx, sqlStr, args...)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if ct.RowsAffected() == 0 {
		return model.ErrAppointmentNotFound
	}

	return nil
}

func (r *repository) Delete(ctx context.Context, id string) error {
	const op = "repository.appointment.postgres.Delete"

	sqlStr, args, err := r.sb.
		Delete(table).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	ct, err := r.pool.Exec(ctx, sqlStr, args...)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if ct.RowsAffected() == 0 {
		return model.ErrAppointmentNotFound
	}

	return nil
}

// BuildWhere mirrors the document store filter: exact date and status, and a
// case-insensitive substring match for the free-text query.
func BuildWhere(f model.AppointmentsFilter) sq.And {
	where := sq.And{}

	if f.Date != "" {
		where = append(where, sq.Eq{"appointment_date": f.Date})
	}
	if f.Status != "" {
		where = append(where, sq.Eq{"status": string(f.Status)})
	}
	if f.Query != "" {
		pattern := "%" + likeEscaper.Replace(f.Query) + "%"
		where = append(where, sq.Or{
			sq.Expr("EXISTS (SELECT 1 FROM unnest(service_types) AS st WHERE st ILIKE ?)", pattern),
			sq.ILike{"vehicle_make": pattern},
			sq.ILike{"vehicle_model": pattern},
			sq.ILike{"license_plate": pattern},
		})
	}

	return where
}

func scanAppointment(row pgx.Row) (*model.Appointment, error) {
	var (
		a      model.Appointment
		status string
	)
	err := row.Scan(
		&a.ID,
		&a.CustomerName,
		&a.CustomerEmail,
		&a.CustomerPhone,
		&a.VehicleMake,
		&a.VehicleModel,
		&a.VehicleYear,
		&a.LicensePlate,
		&a.ServiceTypes,
		&a.Date,
		&a.TimeSlot,
		&status,
		&a.Notes,
		&a.CreatedAt,
		&a.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	a.Status = model.AppointmentStatus(status)

	return &a, nil
}

func serviceTypes(in []string) []string {
	if in == nil {
		return []string{}
	}
	return in
}

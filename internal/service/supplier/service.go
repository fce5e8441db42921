package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/you-humble/garage-ops/internal/model"
	"github.com/you-humble/garage-ops/internal/validation"
	"github.com/you-humble/garage-ops/platform/logger"
)

type SupplierRepository interface {
	Create(ctx context.Context, s *model.Supplier) error
	SupplierByID(ctx context.Context, id string) (*model.Supplier, error)
	List(ctx context.Context) ([]*model.Supplier, error)
	Update(ctx context.Context, id string, upd model.UpdateSupplierParams) (*model.Supplier, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	repo           SupplierRepository
	readDBTimeout  time.Duration
	writeDBTimeout time.Duration
}

func NewSupplierService(
	repo SupplierRepository,
	readDBTimeout time.Duration,
	writeDBTimeout time.Duration,
) *service {
	return &service{
		repo:           repo,
		readDBTimeout:  readDBTimeout,
		writeDBTimeout: writeDBTimeout,
	}
}

func (s *service) Create(ctx context.Context, params model.CreateSupplierParams) (*model.Supplier, error) {
	const op = "supplier.service.Create"
	params = params.Normalize()
	log := logger.With(logger.String("supplier_id", params.SupplierID))

	if err := validation.Struct(params); err != nil {
		log.Warn(ctx, "validation", logger.ErrorF(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	now := time.Now().UTC()
	sup := &model.Supplier{
		ID:           uuid.NewString(),
		SupplierID:   params.SupplierID,
		Name:         params.Name,
		ContactEmail: params.ContactEmail,
		ContactPhone: params.ContactPhone,
		Address:      params.Address,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	ctx, cancel := context.WithTimeout(ctx, s.writeDBTimeout)
	defer cancel()

	if err := s.repo.Create(ctx, sup); err != nil {
		log.Error(ctx, "repository create supplier", logger.ErrorF(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return sup, nil
}

func (s *service) Supplier(ctx context.Context, id string) (*model.Supplier, error) {
	const op = "supplier.service.Supplier"

	ctx, cancel := context.WithTimeout(ctx, s.readDBTimeout)
	defer cancel()

	sup, err := s.repo.SupplierByID(ctx, id)
	if err != nil {
		logger.Error(ctx, "repository supplier by id", logger.String("id", id), logger.ErrorF(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return sup, nil
}

func (s *service) List(ctx context.Context) ([]*model.Supplier, error) {
	const op = "supplier.service.List"

	ctx, cancel := context.WithTimeout(ctx, s.readDBTimeout)
	defer cancel()

	out, err := s.repo.List(ctx)
	if err != nil {
		logger.Error(ctx, "repository list suppliers", logger.ErrorF(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return out, nil
}

func (s *service) Update(ctx context.Context, id string, params model.UpdateSupplierParams) (*model.Supplier, error) {
	const op = "supplier.service.Update"
	params = params.Normalize()
	log := logger.With(logger.String("id", id))

	if err := validation.Struct(params); err != nil {
		log.Warn(ctx, "validation", logger.ErrorF(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if params.IsEmpty() {
		return s.Supplier(ctx, id)
	}

	ctx, cancel := context.WithTimeout(ctx, s.writeDBTimeout)
	defer cancel()

	sup, err := s.repo.Update(ctx, id, params)
	if err != nil {
		log.Error(ctx, "repository update supplier", logger.ErrorF(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return sup, nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	const op = "supplier.service.Delete"

	ctx, cancel := context.WithTimeout(ctx, s.writeDBTimeout)
	defer cancel()

	if err := s.repo.Delete(ctx, id); err != nil {
		logger.Error(ctx, "repository delete supplier", logger.String("id", id), logger.ErrorF(err))
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

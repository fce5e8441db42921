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

type PartRepository interface {
	Create(ctx context.Context, p *model.Part) error
	PartByID(ctx context.Context, id string) (*model.Part, error)
	List(ctx context.Context, filter model.PartsFilter) ([]*model.Part, error)
	Update(ctx context.Context, id string, upd model.UpdatePartParams) (*model.Part, error)
	Delete(ctx context.Context, id string) error
}

type EventPublisher interface {
	Publish(ctx context.Context, event model.Event) error
}

type PartsExporter interface {
	PartsToXLSX(parts []*model.Part) ([]byte, error)
}

type service struct {
	repo           PartRepository
	events         EventPublisher
	exporter       PartsExporter
	readDBTimeout  time.Duration
	writeDBTimeout time.Duration
}

func NewPartService(
	repo PartRepository,
	events EventPublisher,
	exporter PartsExporter,
	readDBTimeout time.Duration,
	writeDBTimeout time.Duration,
) *service {
	return &service{
		repo:           repo,
		events:         events,
		exporter:       exporter,
		readDBTimeout:  readDBTimeout,
		writeDBTimeout: writeDBTimeout,
	}
}

func (s *service) Create(ctx context.Context, params model.CreatePartParams) (*model.Part, error) {
	const op = "part.service.Create"
	params = params.Normalize()
	log := logger.With(
		logger.String("part_id", params.PartID),
		logger.String("part_number", params.PartNumber),
	)

	if err := validation.Struct(params); err != nil {
		log.Warn(ctx, "validation", logger.ErrorF(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	now := time.Now().UTC()
	p := &model.Part{
		ID:           uuid.NewString(),
		PartID:       params.PartID,
		PartNumber:   params.PartNumber,
		Name:         params.Name,
		Description:  params.Description,
		CategoryID:   params.CategoryID,
		Quantity:     params.Quantity,
		MinimumStock: params.MinimumStock,
		UnitPrice:    params.UnitPrice,
		Location:     params.Location,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	ctx, cancel := context.WithTimeout(ctx, s.writeDBTimeout)
	defer cancel()

	if err := s.repo.Create(ctx, p); err != nil {
		log.Error(ctx, "repository create part", logger.ErrorF(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	s.notifyLowStock(ctx, p)

	return p, nil
}

func (s *service) Part(ctx context.Context, id string) (*model.Part, error) {
	const op = "part.service.Part"
	log := logger.With(logger.String("id", id))

	ctx, cancel := context.WithTimeout(ctx, s.readDBTimeout)
	defer cancel()

	p, err := s.repo.PartByID(ctx, id)
	if err != nil {
		log.Error(ctx, "repository part by id", logger.ErrorF(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return p, nil
}

func (s *service) List(ctx context.Context) ([]*model.Part, error) {
	return s.list(ctx, "part.service.List", model.PartsFilter{})
}

func (s *service) ListLowStock(ctx context.Context) ([]*model.Part, error) {
	return s.list(ctx, "part.service.ListLowStock", model.PartsFilter{LowStockOnly: true})
}

func (s *service) ListByCategory(ctx context.Context, categoryID string) ([]*model.Part, error) {
	return s.list(ctx, "part.service.ListByCategory", model.PartsFilter{CategoryID: categoryID})
}

func (s *service) list(ctx context.Context, op string, filter model.PartsFilter) ([]*model.Part, error) {
	log := logger.With(
		logger.String("category_id", filter.CategoryID),
		logger.Bool("low_stock_only", filter.LowStockOnly),
	)

	ctx, cancel := context.WithTimeout(ctx, s.readDBTimeout)
	defer cancel()

	parts, err := s.repo.List(ctx, filter)
	if err != nil {
		log.Error(ctx, "repository list parts", logger.ErrorF(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return parts, nil
}

func (s *service) Update(ctx context.Context, id string, params model.UpdatePartParams) (*model.Part, error) {
	const op = "part.service.Update"
	params = params.Normalize()
	log := logger.With(logger.String("id", id))

	if err := validation.Struct(params); err != nil {
		log.Warn(ctx, "validation", logger.ErrorF(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if params.IsEmpty() {
		return s.Part(ctx, id)
	}

	wdbCtx, cancel := context.WithTimeout(ctx, s.writeDBTimeout)
	defer cancel()

	p, err := s.repo.Update(wdbCtx, id, params)
	if err != nil {
		log.Error(ctx, "repository update part", logger.ErrorF(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if params.Quantity != nil || params.MinimumStock != nil {
		s.notifyLowStock(ctx, p)
	}

	return p, nil
}

func (s *service) UpdateQuantity(ctx context.Context, id string, quantity int64) (*model.Part, error) {
	const op = "part.service.UpdateQuantity"
	log := logger.With(
		logger.String("id", id),
		logger.Int64("quantity", quantity),
	)

	if quantity < 0 {
		verr := model.NewValidationError()
		verr.Add("quantity", "gte", "must be greater than or equal to 0")
		log.Warn(ctx, "validation: negative quantity")
		return nil, fmt.Errorf("%s: %w", op, verr)
	}

	wdbCtx, cancel := context.WithTimeout(ctx, s.writeDBTimeout)
	defer cancel()

	p, err := s.repo.Update(wdbCtx, id, model.UpdatePartParams{Quantity: &quantity})
	if err != nil {
		log.Error(ctx, "repository update quantity", logger.ErrorF(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	s.notifyLowStock(ctx, p)

	return p, nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	const op = "part.service.Delete"
	log := logger.With(logger.String("id", id))

	ctx, cancel := context.WithTimeout(ctx, s.writeDBTimeout)
	defer cancel()

	if err := s.repo.Delete(ctx, id); err != nil {
		log.Error(ctx, "repository delete part", logger.ErrorF(err))
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

func (s *service) Export(ctx context.Context) ([]byte, error) {
	const op = "part.service.Export"

	parts, err := s.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	data, err := s.exporter.PartsToXLSX(parts)
	if err != nil {
		logger.Error(ctx, "export parts", logger.Int("parts", len(parts)), logger.ErrorF(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return data, nil
}

func (s *service) notifyLowStock(ctx context.Context, p *model.Part) {
	if !p.IsLowStock() {
		return
	}

	event := model.NewEvent(model.EventPartLowStock, p.ID, map[string]any{
		"partId":       p.PartID,
		"partNumber":   p.PartNumber,
		"name":         p.Name,
		"quantity":     p.Quantity,
		"minimumStock": p.MinimumStock,
	})
	if err := s.events.Publish(ctx, event); err != nil {
		logger.Warn(ctx, "publish event",
			logger.String("event_type", string(event.Type)),
			logger.String("entity_id", event.EntityID),
			logger.ErrorF(err),
		)
	}
}

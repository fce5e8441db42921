package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"

	"github.com/you-humble/garage-ops/internal/model"
	"github.com/you-humble/garage-ops/internal/validation"
	"github.com/you-humble/garage-ops/platform/logger"
)

type PurchaseOrderRepository interface {
	Create(ctx context.Context, po *model.PurchaseOrder) error
	PurchaseOrderByID(ctx context.Context, id string) (*model.PurchaseOrder, error)
	List(ctx context.Context, filter model.PurchaseOrdersFilter) ([]*model.PurchaseOrder, error)
	Replace(ctx context.Context, po *model.PurchaseOrder) error
	Delete(ctx context.Context, id string) error
}

type SupplierReader interface {
	SupplierByID(ctx context.Context, id string) (*model.Supplier, error)
	SuppliersByIDs(ctx context.Context, ids []string) ([]*model.Supplier, error)
}

type EventPublisher interface {
	Publish(ctx context.Context, event model.Event) error
}

type service struct {
	repo           PurchaseOrderRepository
	suppliers      SupplierReader
	events         EventPublisher
	readDBTimeout  time.Duration
	writeDBTimeout time.Duration
}

func NewPurchaseOrderService(
	repo PurchaseOrderRepository,
	suppliers SupplierReader,
	events EventPublisher,
	readDBTimeout time.Duration,
	writeDBTimeout time.Duration,
) *service {
	return &service{
		repo:           repo,
		suppliers:      suppliers,
		events:         events,
		readDBTimeout:  readDBTimeout,
		writeDBTimeout: writeDBTimeout,
	}
}

func (s *service) Create(ctx context.Context, params model.CreatePurchaseOrderParams) (*model.PurchaseOrder, error) {
	const op = "purchaseorder.service.Create"
	params = params.Normalize()
	log := logger.With(
		logger.String("supplier_id", params.SupplierID),
		logger.Int("items", len(params.Items)),
	)

	if err := validation.Struct(params); err != nil {
		log.Warn(ctx, "validation", logger.ErrorF(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	sup, err := s.supplier(ctx, params.SupplierID)
	if err != nil {
		log.Error(ctx, "repository supplier by id", logger.ErrorF(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	now := time.Now().UTC()
	items := toItems(params.Items)
	po := &model.PurchaseOrder{
		ID:                   uuid.NewString(),
		SupplierID:           sup.ID,
		Items:                items,
		TotalAmount:          lo.FromPtrOr(params.TotalAmount, SumItems(items)),
		Status:               lo.CoalesceOrEmpty(params.Status, model.PurchaseOrderPending),
		OrderDate:            lo.FromPtrOr(params.OrderDate, now),
		ExpectedDeliveryDate: params.ExpectedDeliveryDate,
		Notes:                params.Notes,
		CreatedAt:            now,
		UpdatedAt:            now,
	}

	wdbCtx, cancel := context.WithTimeout(ctx, s.writeDBTimeout)
	defer cancel()

	if err := s.repo.Create(wdbCtx, po); err != nil {
		log.Error(ctx, "repository create purchase order", logger.ErrorF(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	s.publish(ctx, model.NewEvent(model.EventPurchaseOrderCreated, po.ID, map[string]any{
		"supplierId":   po.SupplierID,
		"supplierName": sup.Name,
		"totalAmount":  po.TotalAmount,
		"status":       string(po.Status),
		"items":        len(po.Items),
	}))

	po.Supplier = sup
	return po, nil
}

func (s *service) PurchaseOrder(ctx context.Context, id string) (*model.PurchaseOrder, error) {
	const op = "purchaseorder.service.PurchaseOrder"
	log := logger.With(logger.String("id", id))

	rdbCtx, cancel := context.WithTimeout(ctx, s.readDBTimeout)
	defer cancel()

	po, err := s.repo.PurchaseOrderByID(rdbCtx, id)
	if err != nil {
		log.Error(ctx, "repository purchase order by id", logger.ErrorF(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if err := s.attachSupplier(ctx, po); err != nil {
		log.Error(ctx, "resolve supplier", logger.ErrorF(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return po, nil
}

func (s *service) List(ctx context.Context, filter model.PurchaseOrdersFilter) ([]*model.PurchaseOrder, error) {
	const op = "purchaseorder.service.List"
	log := logger.With(
		logger.String("status", string(filter.Status)),
		logger.String("supplier_id", filter.SupplierID),
	)

	rdbCtx, cancel := context.WithTimeout(ctx, s.readDBTimeout)
	defer cancel()

	orders, err := s.repo.List(rdbCtx, filter)
	if err != nil {
		log.Error(ctx, "repository list purchase orders", logger.ErrorF(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if len(orders) == 0 {
		return orders, nil
	}

	ids := lo.Uniq(lo.Map(orders, func(po *model.PurchaseOrder, _ int) string { return po.SupplierID }))

	sdbCtx, sCancel := context.WithTimeout(ctx, s.readDBTimeout)
	defer sCancel()

	suppliers, err := s.suppliers.SuppliersByIDs(sdbCtx, ids)
	if err != nil {
		log.Error(ctx, "repository suppliers by ids", logger.ErrorF(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	byID := lo.KeyBy(suppliers, func(sup *model.Supplier) string { return sup.ID })
	for _, po := range orders {
		po.Supplier = byID[po.SupplierID]
	}

	return orders, nil
}

func (s *service) Update(
	ctx context.Context,
	id string,
	params model.UpdatePurchaseOrderParams,
) (*model.PurchaseOrder, error) {
	const op = "purchaseorder.service.Update"
	params = params.Normalize()
	log := logger.With(logger.String("id", id))

	if err := validation.Struct(params); err != nil {
		log.Warn(ctx, "validation", logger.ErrorF(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	rdbCtx, rdbCancel := context.WithTimeout(ctx, s.readDBTimeout)
	defer rdbCancel()

	po, err := s.repo.PurchaseOrderByID(rdbCtx, id)
	if err != nil {
		log.Error(ctx, "repository purchase order by id", logger.ErrorF(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	var sup *model.Supplier
	if params.SupplierID != nil && *params.SupplierID != po.SupplierID {
		sup, err = s.supplier(ctx, *params.SupplierID)
		if err != nil {
			log.Error(ctx, "repository supplier by id", logger.ErrorF(err))
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		po.SupplierID = sup.ID
	}

	prevStatus := po.Status
	applyUpdate(po, params)
	po.UpdatedAt = time.Now().UTC()

	wdbCtx, wdbCancel := context.WithTimeout(ctx, s.writeDBTimeout)
	defer wdbCancel()

	if err := s.repo.Replace(wdbCtx, po); err != nil {
		log.Error(ctx, "repository replace purchase order", logger.ErrorF(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if po.Status != prevStatus {
		s.publish(ctx, model.NewEvent(model.EventPurchaseOrderStatusChanged, po.ID, map[string]any{
			"supplierId": po.SupplierID,
			"from":       string(prevStatus),
			"to":         string(po.Status),
		}))
	}

	if sup != nil {
		po.Supplier = sup
		return po, nil
	}
	if err := s.attachSupplier(ctx, po); err != nil {
		log.Error(ctx, "resolve supplier", logger.ErrorF(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return po, nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	const op = "purchaseorder.service.Delete"

	ctx, cancel := context.WithTimeout(ctx, s.writeDBTimeout)
	defer cancel()

	if err := s.repo.Delete(ctx, id); err != nil {
		logger.Error(ctx, "repository delete purchase order", logger.String("id", id), logger.ErrorF(err))
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

func (s *service) supplier(ctx context.Context, id string) (*model.Supplier, error) {
	ctx, cancel := context.WithTimeout(ctx, s.readDBTimeout)
	defer cancel()

	return s.suppliers.SupplierByID(ctx, id)
}

// attachSupplier leaves Supplier nil when the referenced supplier was deleted.
func (s *service) attachSupplier(ctx context.Context, po *model.PurchaseOrder) error {
	sup, err := s.supplier(ctx, po.SupplierID)
	switch {
	case errors.Is(err, model.ErrSupplierNotFound):
		po.Supplier = nil
	case err != nil:
		return err
	default:
		po.Supplier = sup
	}
	return nil
}

func (s *service) publish(ctx context.Context, event model.Event) {
	if err := s.events.Publish(ctx, event); err != nil {
		logger.Warn(ctx, "publish event",
			logger.String("event_type", string(event.Type)),
			logger.String("entity_id", event.EntityID),
			logger.ErrorF(err),
		)
	}
}

func applyUpdate(po *model.PurchaseOrder, params model.UpdatePurchaseOrderParams) {
	if params.Items != nil {
		po.Items = toItems(params.Items)
		if params.TotalAmount == nil {
			po.TotalAmount = SumItems(po.Items)
		}
	}
	if params.TotalAmount != nil {
		po.TotalAmount = *params.TotalAmount
	}
	if params.Status != nil {
		po.Status = *params.Status
	}
	if params.OrderDate != nil {
		po.OrderDate = *params.OrderDate
	}
	if params.ExpectedDeliveryDate != nil {
		po.ExpectedDeliveryDate = params.ExpectedDeliveryDate
	}
	if params.ReceivedDate != nil {
		po.ReceivedDate = params.ReceivedDate
	}
	if params.Notes != nil {
		po.Notes = *params.Notes
	}
}

// SumItems adds line totals in decimal and rounds to cents.
func SumItems(items []model.OrderItem) float64 {
	sum := decimal.Zero
	for _, it := range items {
		sum = sum.Add(decimal.NewFromFloat(it.TotalPrice))
	}
	total, _ := sum.Round(2).Float64()
	return total
}

func toItems(in []model.OrderItemParams) []model.OrderItem {
	return lo.Map(in, func(it model.OrderItemParams, _ int) model.OrderItem {
		return model.OrderItem{
			Name:       it.Name,
			Quantity:   it.Quantity,
			UnitPrice:  it.UnitPrice,
			TotalPrice: it.TotalPrice,
		}
	})
}

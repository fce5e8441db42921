package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/samber/lo"

	"github.com/you-humble/garage-ops/internal/model"
	"github.com/you-humble/garage-ops/internal/validation"
	"github.com/you-humble/garage-ops/platform/logger"
)

type QuotationRepository interface {
	Create(ctx context.Context, q *model.Quotation) error
	// QuotationByID accepts either the document id or the QUO- identifier.
	QuotationByID(ctx context.Context, id string) (*model.Quotation, error)
	List(ctx context.Context) ([]*model.Quotation, error)
	Replace(ctx context.Context, q *model.Quotation) error
	Delete(ctx context.Context, id string) error
}

type SupplierFinder interface {
	SuppliersByIDs(ctx context.Context, ids []string) ([]*model.Supplier, error)
}

type EventPublisher interface {
	Publish(ctx context.Context, event model.Event) error
}

type service struct {
	repo           QuotationRepository
	suppliers      SupplierFinder
	events         EventPublisher
	now            func() time.Time
	readDBTimeout  time.Duration
	writeDBTimeout time.Duration
}

func NewQuotationService(
	repo QuotationRepository,
	suppliers SupplierFinder,
	events EventPublisher,
	readDBTimeout time.Duration,
	writeDBTimeout time.Duration,
) *service {
	return &service{
		repo:           repo,
		suppliers:      suppliers,
		events:         events,
		now:            func() time.Time { return time.Now().UTC() },
		readDBTimeout:  readDBTimeout,
		writeDBTimeout: writeDBTimeout,
	}
}

func (s *service) Create(ctx context.Context, params model.CreateQuotationParams) (*model.Quotation, error) {
	const op = "quotation.service.Create"
	params = params.Normalize()
	log := logger.With(
		logger.String("part_id", params.Part.PartID),
		logger.Int("supplier_ids", len(params.SupplierIDs)),
	)

	if err := validation.Struct(params); err != nil {
		log.Warn(ctx, "validation", logger.ErrorF(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	ids := lo.Uniq(params.SupplierIDs)

	rdbCtx, rdbCancel := context.WithTimeout(ctx, s.readDBTimeout)
	defer rdbCancel()

	suppliers, err := s.suppliers.SuppliersByIDs(rdbCtx, ids)
	if err != nil {
		log.Error(ctx, "repository suppliers by ids", logger.ErrorF(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if len(suppliers) == 0 {
		log.Warn(ctx, "no supplier resolved", logger.Strings("ids", ids))
		return nil, fmt.Errorf("%s: %w", op, model.ErrSupplierNotFound)
	}
	if len(suppliers) < len(ids) {
		log.Warn(ctx, "unresolved suppliers dropped",
			logger.Int("requested", len(ids)),
			logger.Int("resolved", len(suppliers)),
		)
	}

	now := s.now()
	q := &model.Quotation{
		ID:          uuid.NewString(),
		QuotationID: model.NewQuotationID(now),
		Part: model.QuotedPart{
			PartID:     params.Part.PartID,
			PartNumber: params.Part.PartNumber,
			Name:       params.Part.Name,
		},
		Quantity: params.Quantity,
		Suppliers: lo.Map(suppliers, func(sup *model.Supplier, _ int) model.QuoteSupplier {
			return model.QuoteSupplier{
				SupplierID:   sup.ID,
				Name:         sup.Name,
				ContactEmail: sup.ContactEmail,
				Status:       model.QuotePending,
			}
		}),
		Status:    model.QuotationDraft,
		Notes:     params.Notes,
		CreatedAt: now,
		UpdatedAt: now,
	}

	wdbCtx, wdbCancel := context.WithTimeout(ctx, s.writeDBTimeout)
	defer wdbCancel()

	if err := s.repo.Create(wdbCtx, q); err != nil {
		log.Error(ctx, "repository create quotation", logger.ErrorF(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	s.publish(ctx, model.NewEvent(model.EventQuotationCreated, q.ID, map[string]any{
		"quotationId": q.QuotationID,
		"partNumber":  q.Part.PartNumber,
		"partName":    q.Part.Name,
		"quantity":    q.Quantity,
		"suppliers":   len(q.Suppliers),
	}))

	return q, nil
}

func (s *service) Quotation(ctx context.Context, id string) (*model.Quotation, error) {
	const op = "quotation.service.Quotation"

	ctx, cancel := context.WithTimeout(ctx, s.readDBTimeout)
	defer cancel()

	q, err := s.repo.QuotationByID(ctx, id)
	if err != nil {
		logger.Error(ctx, "repository quotation by id", logger.String("id", id), logger.ErrorF(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return q, nil
}

func (s *service) List(ctx context.Context) ([]*model.Quotation, error) {
	const op = "quotation.service.List"

	ctx, cancel := context.WithTimeout(ctx, s.readDBTimeout)
	defer cancel()

	out, err := s.repo.List(ctx)
	if err != nil {
		logger.Error(ctx, "repository list quotations", logger.ErrorF(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return out, nil
}

func (s *service) UpdateSupplierQuote(
	ctx context.Context,
	params model.UpdateSupplierQuoteParams,
) (*model.Quotation, error) {
	const op = "quotation.service.UpdateSupplierQuote"
	params = params.Normalize()
	log := logger.With(
		logger.String("quotation_id", params.QuotationID),
		logger.String("supplier_id", params.SupplierID),
	)

	if err := validation.Struct(params); err != nil {
		log.Warn(ctx, "validation", logger.ErrorF(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	rdbCtx, rdbCancel := context.WithTimeout(ctx, s.readDBTimeout)
	defer rdbCancel()

	q, err := s.repo.QuotationByID(rdbCtx, params.QuotationID)
	if err != nil {
		log.Error(ctx, "repository quotation by id", logger.ErrorF(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	idx := q.SupplierIndex(params.SupplierID)
	if idx < 0 {
		log.Warn(ctx, "supplier is not part of quotation")
		return nil, fmt.Errorf("%s: %w", op, model.ErrQuoteSupplierNotFound)
	}

	entry := &q.Suppliers[idx]
	if params.QuotedPrice != nil {
		entry.QuotedPrice = *params.QuotedPrice
	}
	if params.DeliveryTime != nil {
		entry.DeliveryTime = *params.DeliveryTime
	}
	if params.Status != nil {
		entry.Status = *params.Status
	}
	q.UpdatedAt = s.now()

	wdbCtx, wdbCancel := context.WithTimeout(ctx, s.writeDBTimeout)
	defer wdbCancel()

	if err := s.repo.Replace(wdbCtx, q); err != nil {
		log.Error(ctx, "repository replace quotation", logger.ErrorF(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	s.publish(ctx, model.NewEvent(model.EventQuotationSupplierQuoteUpdate, q.ID, map[string]any{
		"quotationId":  q.QuotationID,
		"supplierId":   entry.SupplierID,
		"supplierName": entry.Name,
		"quotedPrice":  entry.QuotedPrice,
		"deliveryTime": entry.DeliveryTime,
		"status":       string(entry.Status),
	}))

	return q, nil
}

// UpdateStatus overwrites the status; any known status may follow any other.
func (s *service) UpdateStatus(
	ctx context.Context,
	params model.UpdateQuotationStatusParams,
) (*model.Quotation, error) {
	const op = "quotation.service.UpdateStatus"
	log := logger.With(
		logger.String("quotation_id", params.QuotationID),
		logger.String("status", string(params.Status)),
	)

	if err := validation.Struct(params); err != nil {
		log.Warn(ctx, "validation", logger.ErrorF(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	rdbCtx, rdbCancel := context.WithTimeout(ctx, s.readDBTimeout)
	defer rdbCancel()

	q, err := s.repo.QuotationByID(rdbCtx, params.QuotationID)
	if err != nil {
		log.Error(ctx, "repository quotation by id", logger.ErrorF(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	prev := q.Status
	q.Status = params.Status
	q.UpdatedAt = s.now()

	wdbCtx, wdbCancel := context.WithTimeout(ctx, s.writeDBTimeout)
	defer wdbCancel()

	if err := s.repo.Replace(wdbCtx, q); err != nil {
		log.Error(ctx, "repository replace quotation", logger.ErrorF(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	s.publish(ctx, model.NewEvent(model.EventQuotationStatusChanged, q.ID, map[string]any{
		"quotationId": q.QuotationID,
		"from":        string(prev),
		"to":          string(q.Status),
	}))

	return q, nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	const op = "quotation.service.Delete"

	ctx, cancel := context.WithTimeout(ctx, s.writeDBTimeout)
	defer cancel()

	if err := s.repo.Delete(ctx, id); err != nil {
		logger.Error(ctx, "repository delete quotation", logger.String("id", id), logger.ErrorF(err))
		return fmt.Errorf("%s: %w", op, err)
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

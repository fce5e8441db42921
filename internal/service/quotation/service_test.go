package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/you-humble/garage-ops/internal/model"
	"github.com/you-humble/garage-ops/internal/service/mocks"
)

type deps struct {
	repository *mocks.MockQuotationRepository
	suppliers  *mocks.MockSupplierFinder
	events     *mocks.MockEventPublisher
}

func newDeps(t *testing.T) deps {
	return deps{
		repository: mocks.NewMockQuotationRepository(t),
		suppliers:  mocks.NewMockSupplierFinder(t),
		events:     mocks.NewMockEventPublisher(t),
	}
}

var fixedNow = time.Date(2024, 6, 10, 6, 13, 20, 123_000_000, time.UTC)

func newSvc(d deps) *service {
	svc := NewQuotationService(d.repository, d.suppliers, d.events, time.Second, time.Second)
	svc.now = func() time.Time { return fixedNow }
	return svc
}

func TestServiceCreate(t *testing.T) {
	t.Parallel()

	s1 := &model.Supplier{ID: "S1", Name: gofakeit.Company(), ContactEmail: gofakeit.Email()}
	part := model.QuotedPartParams{
		PartID:     gofakeit.UUID(),
		PartNumber: gofakeit.Numerify("PN-####"),
		Name:       gofakeit.ProductName(),
	}

	type testCase struct {
		name   string
		params model.CreateQuotationParams
		setup  func(d deps)
		assert func(t *testing.T, res *model.Quotation, err error, d deps)
	}

	tests := []testCase{
		{
			name:   "validation error: no suppliers and zero quantity",
			params: model.CreateQuotationParams{Part: part},
			setup:  func(d deps) {},
			assert: func(t *testing.T, res *model.Quotation, err error, d deps) {
				require.Error(t, err)
				assert.ErrorIs(t, err, model.ErrValidation)
				assert.ErrorContains(t, err, "quantity")
				assert.ErrorContains(t, err, "supplierIDs")
				assert.Nil(t, res)

				d.suppliers.AssertNotCalled(t, "SuppliersByIDs", mock.Anything, mock.Anything)
			},
		},
		{
			name: "validation error: part identity missing",
			params: model.CreateQuotationParams{
				Quantity:    1,
				SupplierIDs: []string{"S1"},
			},
			setup: func(d deps) {},
			assert: func(t *testing.T, res *model.Quotation, err error, d deps) {
				require.Error(t, err)
				assert.ErrorContains(t, err, "part.partNumber")
			},
		},
		{
			name:   "validation error: whitespace-only supplier id",
			params: model.CreateQuotationParams{Part: part, Quantity: 1, SupplierIDs: []string{"  "}},
			setup:  func(d deps) {},
			assert: func(t *testing.T, res *model.Quotation, err error, d deps) {
				require.Error(t, err)
				assert.ErrorIs(t, err, model.ErrValidation)
				assert.NotErrorIs(t, err, model.ErrSupplierNotFound)
				assert.ErrorContains(t, err, "supplierIDs[0]")

				d.suppliers.AssertNotCalled(t, "SuppliersByIDs", mock.Anything, mock.Anything)
			},
		},
		{
			name: "validation error: whitespace-only part identity",
			params: model.CreateQuotationParams{
				Part:        model.QuotedPartParams{PartID: " ", PartNumber: "\t", Name: "  "},
				Quantity:    1,
				SupplierIDs: []string{"S1"},
			},
			setup: func(d deps) {},
			assert: func(t *testing.T, res *model.Quotation, err error, d deps) {
				require.Error(t, err)
				assert.ErrorIs(t, err, model.ErrValidation)
				assert.ErrorContains(t, err, "part.partID")
				assert.ErrorContains(t, err, "part.partNumber")
				assert.ErrorContains(t, err, "part.name")
			},
		},
		{
			name: "success: padded part and supplier ids are trimmed",
			params: model.CreateQuotationParams{
				Part: model.QuotedPartParams{
					PartID:     " " + part.PartID,
					PartNumber: part.PartNumber + " ",
					Name:       part.Name,
				},
				Quantity:    2,
				SupplierIDs: []string{" S1", "S1 "},
			},
			setup: func(d deps) {
				d.suppliers.On("SuppliersByIDs", mock.Anything, []string{"S1"}).Return([]*model.Supplier{s1}, nil).Once()
				d.repository.
					On("Create", mock.Anything, mock.MatchedBy(func(q *model.Quotation) bool {
						return q.Part.PartID == part.PartID && q.Part.PartNumber == part.PartNumber
					})).
					Return(nil).
					Once()
				d.events.On("Publish", mock.Anything, mock.Anything).Return(nil).Once()
			},
			assert: func(t *testing.T, res *model.Quotation, err error, d deps) {
				require.NoError(t, err)
				require.Len(t, res.Suppliers, 1)
			},
		},
		{
			name:   "no supplier resolves",
			params: model.CreateQuotationParams{Part: part, Quantity: 3, SupplierIDs: []string{"X"}},
			setup: func(d deps) {
				d.suppliers.On("SuppliersByIDs", mock.Anything, []string{"X"}).Return([]*model.Supplier{}, nil).Once()
			},
			assert: func(t *testing.T, res *model.Quotation, err error, d deps) {
				require.Error(t, err)
				assert.ErrorIs(t, err, model.ErrSupplierNotFound)
				assert.Nil(t, res)

				d.repository.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
			},
		},
		{
			name: "success: duplicates collapsed, unresolved dropped",
			params: model.CreateQuotationParams{
				Part:        part,
				Quantity:    3,
				SupplierIDs: []string{"S1", "S2", "S1"},
			},
			setup: func(d deps) {
				d.suppliers.
					On("SuppliersByIDs", mock.Anything, []string{"S1", "S2"}).
					Return([]*model.Supplier{s1}, nil).
					Once()
				d.repository.On("Create", mock.Anything, mock.Anything).Return(nil).Once()
				d.events.
					On("Publish", mock.Anything, mock.MatchedBy(func(e model.Event) bool {
						return e.Type == model.EventQuotationCreated && e.Payload["suppliers"] == 1
					})).
					Return(nil).
					Once()
			},
			assert: func(t *testing.T, res *model.Quotation, err error, d deps) {
				require.NoError(t, err)
				assert.Equal(t, "QUO-1718000000123", res.QuotationID)
				assert.Equal(t, model.QuotationDraft, res.Status)
				require.Len(t, res.Suppliers, 1)
				assert.Equal(t, model.QuoteSupplier{
					SupplierID:   s1.ID,
					Name:         s1.Name,
					ContactEmail: s1.ContactEmail,
					Status:       model.QuotePending,
				}, res.Suppliers[0])
			},
		},
		{
			name:   "conflict: identifier taken in the same millisecond",
			params: model.CreateQuotationParams{Part: part, Quantity: 1, SupplierIDs: []string{"S1"}},
			setup: func(d deps) {
				d.suppliers.On("SuppliersByIDs", mock.Anything, []string{"S1"}).Return([]*model.Supplier{s1}, nil).Once()
				d.repository.On("Create", mock.Anything, mock.Anything).Return(model.ErrConflict).Once()
			},
			assert: func(t *testing.T, res *model.Quotation, err error, d deps) {
				require.Error(t, err)
				assert.ErrorIs(t, err, model.ErrConflict)

				d.events.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			d := newDeps(t)
			tt.setup(d)

			res, err := newSvc(d).Create(context.Background(), tt.params)
			tt.assert(t, res, err, d)
		})
	}
}

func storedQuotation() *model.Quotation {
	return &model.Quotation{
		ID:          gofakeit.UUID(),
		QuotationID: "QUO-1",
		Quantity:    2,
		Status:      model.QuotationSent,
		Suppliers: []model.QuoteSupplier{
			{SupplierID: "S1", Status: model.QuotePending},
			{SupplierID: "S2", Status: model.QuotePending},
		},
	}
}

func TestServiceUpdateSupplierQuote(t *testing.T) {
	t.Parallel()

	t.Run("applies only provided fields", func(t *testing.T) {
		t.Parallel()

		d := newDeps(t)
		q := storedQuotation()
		d.repository.On("QuotationByID", mock.Anything, "QUO-1").Return(q, nil).Once()
		d.repository.
			On("Replace", mock.Anything, mock.MatchedBy(func(r *model.Quotation) bool {
				return r.Suppliers[1].QuotedPrice == 42.5 &&
					r.Suppliers[1].Status == model.QuotePending &&
					r.Suppliers[1].DeliveryTime == "" &&
					r.Suppliers[0].QuotedPrice == 0
			})).
			Return(nil).
			Once()
		d.events.On("Publish", mock.Anything, mock.Anything).Return(nil).Once()

		res, err := newSvc(d).UpdateSupplierQuote(context.Background(), model.UpdateSupplierQuoteParams{
			QuotationID: "QUO-1",
			SupplierID:  "S2",
			QuotedPrice: lo.ToPtr(42.5),
		})
		require.NoError(t, err)
		assert.Equal(t, 42.5, res.Suppliers[1].QuotedPrice)
		assert.Equal(t, fixedNow, res.UpdatedAt)
	})

	t.Run("supplier not in quotation", func(t *testing.T) {
		t.Parallel()

		d := newDeps(t)
		d.repository.On("QuotationByID", mock.Anything, "QUO-1").Return(storedQuotation(), nil).Once()

		_, err := newSvc(d).UpdateSupplierQuote(context.Background(), model.UpdateSupplierQuoteParams{
			QuotationID: "QUO-1",
			SupplierID:  "S9",
			Status:      lo.ToPtr(model.QuoteReceived),
		})
		require.Error(t, err)
		assert.ErrorIs(t, err, model.ErrQuoteSupplierNotFound)
		assert.True(t, model.IsNotFound(err))

		d.repository.AssertNotCalled(t, "Replace", mock.Anything, mock.Anything)
	})

	t.Run("padded identifiers resolve the entry", func(t *testing.T) {
		t.Parallel()

		d := newDeps(t)
		d.repository.On("QuotationByID", mock.Anything, "QUO-1").Return(storedQuotation(), nil).Once()
		d.repository.On("Replace", mock.Anything, mock.Anything).Return(nil).Once()
		d.events.On("Publish", mock.Anything, mock.Anything).Return(nil).Once()

		res, err := newSvc(d).UpdateSupplierQuote(context.Background(), model.UpdateSupplierQuoteParams{
			QuotationID:  " QUO-1 ",
			SupplierID:   " S1",
			DeliveryTime: lo.ToPtr(" 3 days "),
		})
		require.NoError(t, err)
		assert.Equal(t, "3 days", res.Suppliers[0].DeliveryTime)
	})

	t.Run("negative price rejected", func(t *testing.T) {
		t.Parallel()

		d := newDeps(t)
		_, err := newSvc(d).UpdateSupplierQuote(context.Background(), model.UpdateSupplierQuoteParams{
			QuotationID: "QUO-1",
			SupplierID:  "S1",
			QuotedPrice: lo.ToPtr(-1.0),
		})
		require.Error(t, err)
		assert.ErrorIs(t, err, model.ErrValidation)
	})

	t.Run("quotation not found", func(t *testing.T) {
		t.Parallel()

		d := newDeps(t)
		d.repository.On("QuotationByID", mock.Anything, "QUO-404").Return(nil, model.ErrQuotationNotFound).Once()

		_, err := newSvc(d).UpdateSupplierQuote(context.Background(), model.UpdateSupplierQuoteParams{
			QuotationID: "QUO-404",
			SupplierID:  "S1",
		})
		require.Error(t, err)
		assert.ErrorIs(t, err, model.ErrQuotationNotFound)
	})
}

func TestServiceUpdateStatus(t *testing.T) {
	t.Parallel()

	statuses := []model.QuotationStatus{
		model.QuotationDraft,
		model.QuotationSent,
		model.QuotationComparing,
		model.QuotationCompleted,
		model.QuotationCancelled,
	}

	for _, status := range statuses {
		t.Run("sent to "+string(status), func(t *testing.T) {
			t.Parallel()

			d := newDeps(t)
			d.repository.On("QuotationByID", mock.Anything, "QUO-1").Return(storedQuotation(), nil).Once()
			d.repository.On("Replace", mock.Anything, mock.Anything).Return(nil).Once()
			d.events.
				On("Publish", mock.Anything, mock.MatchedBy(func(e model.Event) bool {
					return e.Type == model.EventQuotationStatusChanged && e.Payload["to"] == string(status)
				})).
				Return(nil).
				Once()

			res, err := newSvc(d).UpdateStatus(context.Background(), model.UpdateQuotationStatusParams{
				QuotationID: "QUO-1",
				Status:      status,
			})
			require.NoError(t, err)
			assert.Equal(t, status, res.Status)
		})
	}

	t.Run("unknown status rejected", func(t *testing.T) {
		t.Parallel()

		d := newDeps(t)
		_, err := newSvc(d).UpdateStatus(context.Background(), model.UpdateQuotationStatusParams{
			QuotationID: "QUO-1",
			Status:      "archived",
		})
		require.Error(t, err)
		assert.ErrorIs(t, err, model.ErrValidation)
		assert.True(t, strings.Contains(err.Error(), "status"))
	})

	t.Run("replace failure surfaces", func(t *testing.T) {
		t.Parallel()

		d := newDeps(t)
		dbErr := errors.New("write concern")
		d.repository.On("QuotationByID", mock.Anything, "QUO-1").Return(storedQuotation(), nil).Once()
		d.repository.On("Replace", mock.Anything, mock.Anything).Return(dbErr).Once()

		_, err := newSvc(d).UpdateStatus(context.Background(), model.UpdateQuotationStatusParams{
			QuotationID: "QUO-1",
			Status:      model.QuotationCompleted,
		})
		require.ErrorIs(t, err, dbErr)
	})
}

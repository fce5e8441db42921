package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/you-humble/garage-ops/internal/model"
	"github.com/you-humble/garage-ops/internal/transport/http/mocks"
	"github.com/you-humble/garage-ops/internal/transport/http/response"
)

func newRouter(svc PurchaseOrderService) http.Handler {
	r := chi.NewRouter()
	r.Route("/api/purchase-orders", NewPurchaseOrderHandler(svc).Register)
	return r
}

func samplePurchaseOrder() *model.PurchaseOrder {
	now := time.Now().UTC()
	return &model.PurchaseOrder{
		ID:         gofakeit.UUID(),
		SupplierID: gofakeit.UUID(),
		Items: []model.OrderItem{
			{Name: "Brake pad", Quantity: 2, UnitPrice: 12.5, TotalPrice: 25},
		},
		TotalAmount: 25,
		Status:      model.PurchaseOrderPending,
		OrderDate:   now,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

func TestHandlerListFilters(t *testing.T) {
	t.Parallel()

	type testCase struct {
		name   string
		query  string
		filter model.PurchaseOrdersFilter
	}

	tests := []testCase{
		{name: "no filters", query: ""},
		{
			name:   "status",
			query:  "?status=Received",
			filter: model.PurchaseOrdersFilter{Status: model.PurchaseOrderReceived},
		},
		{
			name:   "status and supplier",
			query:  "?status=Cancelled&supplierId=S1",
			filter: model.PurchaseOrdersFilter{Status: model.PurchaseOrderCancelled, SupplierID: "S1"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			svc := mocks.NewMockPurchaseOrderService(t)
			svc.On("List", mock.Anything, tt.filter).
				Return([]*model.PurchaseOrder{samplePurchaseOrder()}, nil).
				Once()

			req := httptest.NewRequest(http.MethodGet, "/api/purchase-orders"+tt.query, nil)
			rec := httptest.NewRecorder()
			newRouter(svc).ServeHTTP(rec, req)

			require.Equal(t, http.StatusOK, rec.Code)
			var got []purchaseOrderResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
			assert.Len(t, got, 1)
		})
	}
}

func TestHandlerGetSupplier(t *testing.T) {
	t.Parallel()

	t.Run("deleted supplier renders null", func(t *testing.T) {
		t.Parallel()

		po := samplePurchaseOrder()
		svc := mocks.NewMockPurchaseOrderService(t)
		svc.On("PurchaseOrder", mock.Anything, po.ID).Return(po, nil).Once()

		req := httptest.NewRequest(http.MethodGet, "/api/purchase-orders/"+po.ID, nil)
		rec := httptest.NewRecorder()
		newRouter(svc).ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		var raw map[string]json.RawMessage
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &raw))
		assert.JSONEq(t, "null", string(raw["supplier"]))
	})

	t.Run("resolved supplier is embedded", func(t *testing.T) {
		t.Parallel()

		po := samplePurchaseOrder()
		po.Supplier = &model.Supplier{
			ID:           po.SupplierID,
			SupplierID:   "SUP-7",
			Name:         gofakeit.Company(),
			ContactEmail: gofakeit.Email(),
			ContactPhone: "5551234567",
		}
		svc := mocks.NewMockPurchaseOrderService(t)
		svc.On("PurchaseOrder", mock.Anything, po.ID).Return(po, nil).Once()

		req := httptest.NewRequest(http.MethodGet, "/api/purchase-orders/"+po.ID, nil)
		rec := httptest.NewRecorder()
		newRouter(svc).ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		var got purchaseOrderResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
		require.NotNil(t, got.Supplier)
		assert.Equal(t, "SUP-7", got.Supplier.SupplierID)
	})

	t.Run("not found", func(t *testing.T) {
		t.Parallel()

		svc := mocks.NewMockPurchaseOrderService(t)
		svc.On("PurchaseOrder", mock.Anything, "missing").
			Return(nil, model.ErrPurchaseOrderNotFound).
			Once()

		req := httptest.NewRequest(http.MethodGet, "/api/purchase-orders/missing", nil)
		rec := httptest.NewRecorder()
		newRouter(svc).ServeHTTP(rec, req)

		require.Equal(t, http.StatusNotFound, rec.Code)
		var body response.ErrorBody
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, response.CodeNotFound, body.Code)
	})
}

func TestHandlerUpdateStatus(t *testing.T) {
	t.Parallel()

	po := samplePurchaseOrder()
	po.Status = model.PurchaseOrderPending

	svc := mocks.NewMockPurchaseOrderService(t)
	svc.On("Update", mock.Anything, po.ID, mock.MatchedBy(func(p model.UpdatePurchaseOrderParams) bool {
		return p.Status != nil && *p.Status == model.PurchaseOrderPending &&
			p.Items == nil && p.SupplierID == nil
	})).Return(po, nil).Once()

	req := httptest.NewRequest(http.MethodPut, "/api/purchase-orders/"+po.ID,
		strings.NewReader(`{"status":"Pending"}`))
	rec := httptest.NewRecorder()
	newRouter(svc).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var got purchaseOrderResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, "Pending", got.Status)
}

func TestHandlerCreateAndDelete(t *testing.T) {
	t.Parallel()

	po := samplePurchaseOrder()

	svc := mocks.NewMockPurchaseOrderService(t)
	svc.On("Create", mock.Anything, mock.MatchedBy(func(p model.CreatePurchaseOrderParams) bool {
		return p.SupplierID == po.SupplierID && len(p.Items) == 1 && p.TotalAmount == nil
	})).Return(po, nil).Once()
	svc.On("Delete", mock.Anything, po.ID).Return(nil).Once()

	body := `{"supplierId":"` + po.SupplierID + `","items":[{"name":"Brake pad","quantity":2,"unitPrice":12.5,"totalPrice":25}]}`
	req := httptest.NewRequest(http.MethodPost, "/api/purchase-orders", strings.NewReader(body))
	rec := httptest.NewRecorder()
	newRouter(svc).ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)
	var got purchaseOrderResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.InDelta(t, 25.0, got.TotalAmount, 0.001)

	req = httptest.NewRequest(http.MethodDelete, "/api/purchase-orders/"+po.ID, nil)
	rec = httptest.NewRecorder()
	newRouter(svc).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
}

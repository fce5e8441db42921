package http

import (
	"encoding/json"
	"fmt"
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

func newRouter(svc SupplierService) http.Handler {
	r := chi.NewRouter()
	r.Route("/api/suppliers", NewSupplierHandler(svc).Register)
	return r
}

func TestHandlerCreateErrors(t *testing.T) {
	t.Parallel()

	body := `{"supplierId":"SUP-1","name":"Bolt & Co","contactEmail":"parts@bolt.example","contactPhone":"5555555123"}`

	phoneErr := model.NewValidationError()
	phoneErr.Add("contactPhone", "phone10", "must be 10 digits with no digit repeated more than 4 times")

	type testCase struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
		wantField  string
	}

	tests := []testCase{
		{
			name:       "phone rule",
			err:        fmt.Errorf("supplier.service.Create: %w", phoneErr),
			wantStatus: http.StatusBadRequest,
			wantCode:   response.CodeValidation,
			wantField:  "contactPhone",
		},
		{
			name:       "duplicate email",
			err:        fmt.Errorf("repository.supplier.Create: %w: contact email already exists", model.ErrConflict),
			wantStatus: http.StatusBadRequest,
			wantCode:   response.CodeConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			svc := mocks.NewMockSupplierService(t)
			svc.On("Create", mock.Anything, mock.MatchedBy(func(p model.CreateSupplierParams) bool {
				return p.SupplierID == "SUP-1" && p.ContactPhone == "5555555123"
			})).Return(nil, tt.err).Once()

			req := httptest.NewRequest(http.MethodPost, "/api/suppliers", strings.NewReader(body))
			rec := httptest.NewRecorder()
			newRouter(svc).ServeHTTP(rec, req)

			require.Equal(t, tt.wantStatus, rec.Code)
			var got response.ErrorBody
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
			assert.Equal(t, tt.wantCode, got.Code)
			if tt.wantField != "" {
				require.Len(t, got.Fields, 1)
				assert.Equal(t, tt.wantField, got.Fields[0].Field)
			}
		})
	}
}

func TestHandlerUpdatePartial(t *testing.T) {
	t.Parallel()

	s := &model.Supplier{
		ID:           gofakeit.UUID(),
		SupplierID:   "SUP-2",
		Name:         gofakeit.Company(),
		ContactEmail: gofakeit.Email(),
		ContactPhone: "5551234567",
		Address:      gofakeit.Street(),
		CreatedAt:    time.Now().UTC(),
		UpdatedAt:    time.Now().UTC(),
	}

	svc := mocks.NewMockSupplierService(t)
	svc.On("Update", mock.Anything, s.ID, mock.MatchedBy(func(p model.UpdateSupplierParams) bool {
		return p.Name != nil && *p.Name == s.Name && p.ContactEmail == nil && p.ContactPhone == nil
	})).Return(s, nil).Once()

	req := httptest.NewRequest(http.MethodPut, "/api/suppliers/"+s.ID,
		strings.NewReader(`{"name":"`+s.Name+`"}`))
	rec := httptest.NewRecorder()
	newRouter(svc).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var got supplierResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, s.SupplierID, got.SupplierID)
	assert.Equal(t, s.ContactPhone, got.ContactPhone)
}

func TestHandlerListAndDelete(t *testing.T) {
	t.Parallel()

	svc := mocks.NewMockSupplierService(t)
	svc.On("List", mock.Anything).Return([]*model.Supplier{}, nil).Once()
	svc.On("Delete", mock.Anything, "gone").Return(model.ErrSupplierNotFound).Once()

	rec := httptest.NewRecorder()
	newRouter(svc).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/suppliers", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, "[]", rec.Body.String())

	rec = httptest.NewRecorder()
	newRouter(svc).ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/api/suppliers/gone", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/you-humble/garage-ops/internal/model"
	"github.com/you-humble/garage-ops/internal/transport/http/mocks"
	"github.com/you-humble/garage-ops/internal/transport/http/response"
)

func newRouter(svc PartService) http.Handler {
	r := chi.NewRouter()
	r.Route("/api/parts", NewPartHandler(svc).Register)
	return r
}

func samplePart(quantity, minimum int64) *model.Part {
	return &model.Part{
		ID:           gofakeit.UUID(),
		PartID:       gofakeit.UUID(),
		PartNumber:   gofakeit.Numerify("PN-####"),
		Name:         gofakeit.ProductName(),
		Quantity:     quantity,
		MinimumStock: minimum,
		UnitPrice:    gofakeit.Price(1, 100),
	}
}

func TestHandlerUpdateQuantity(t *testing.T) {
	t.Parallel()

	type testCase struct {
		name       string
		body       string
		setup      func(svc *mocks.MockPartService)
		wantStatus int
		wantLow    bool
	}

	tests := []testCase{
		{
			name:       "quantity missing",
			body:       `{}`,
			setup:      func(svc *mocks.MockPartService) {},
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "drops to minimum",
			body: `{"quantity":2}`,
			setup: func(svc *mocks.MockPartService) {
				svc.On("UpdateQuantity", mock.Anything, "p1", int64(2)).Return(samplePart(2, 2), nil).Once()
			},
			wantStatus: http.StatusOK,
			wantLow:    true,
		},
		{
			name: "above minimum",
			body: `{"quantity":3}`,
			setup: func(svc *mocks.MockPartService) {
				svc.On("UpdateQuantity", mock.Anything, "p1", int64(3)).Return(samplePart(3, 2), nil).Once()
			},
			wantStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			svc := mocks.NewMockPartService(t)
			tt.setup(svc)

			rec := httptest.NewRecorder()
			newRouter(svc).ServeHTTP(rec,
				httptest.NewRequest(http.MethodPatch, "/api/parts/p1/quantity", strings.NewReader(tt.body)),
			)

			require.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantStatus != http.StatusOK {
				var eb response.ErrorBody
				require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &eb))
				require.Len(t, eb.Fields, 1)
				assert.Equal(t, "quantity", eb.Fields[0].Field)
				return
			}

			var got partResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
			assert.Equal(t, tt.wantLow, got.IsLowStock)
		})
	}
}

func TestHandlerListRoutes(t *testing.T) {
	t.Parallel()

	low := samplePart(0, 5)

	svc := mocks.NewMockPartService(t)
	svc.On("ListLowStock", mock.Anything).Return([]*model.Part{low}, nil).Once()
	svc.On("ListByCategory", mock.Anything, "brakes").Return([]*model.Part{}, nil).Once()

	router := newRouter(svc)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/parts/low-stock", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var got []partResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Len(t, got, 1)
	assert.True(t, got[0].IsLowStock)

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/parts/category/brakes", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
}

func TestHandlerCreateConflict(t *testing.T) {
	t.Parallel()

	svc := mocks.NewMockPartService(t)
	svc.On("Create", mock.Anything, mock.Anything).
		Return(nil, model.ErrConflict).
		Once()

	rec := httptest.NewRecorder()
	newRouter(svc).ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/parts",
		strings.NewReader(`{"partId":"P1","partNumber":"PN-1","name":"Pad"}`),
	))

	require.Equal(t, http.StatusBadRequest, rec.Code)

	var eb response.ErrorBody
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &eb))
	assert.Equal(t, response.CodeConflict, eb.Code)
}

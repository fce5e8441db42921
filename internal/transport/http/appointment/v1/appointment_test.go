package http

import (
	"encoding/json"
	"fmt"
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

const testDate = "2024-06-10"

func newRouter(svc AppointmentService) http.Handler {
	r := chi.NewRouter()
	r.Route("/api/appointments", NewAppointmentHandler(svc).Register)
	return r
}

func sampleAppointment() *model.Appointment {
	return &model.Appointment{
		ID:           gofakeit.UUID(),
		CustomerName: gofakeit.Name(),
		VehicleMake:  gofakeit.CarMaker(),
		VehicleModel: gofakeit.CarModel(),
		LicensePlate: "AB123CD",
		ServiceTypes: []string{"oil change"},
		Date:         testDate,
		TimeSlot:     "10:00",
		Status:       model.AppointmentPending,
	}
}

func TestHandlerBook(t *testing.T) {
	t.Parallel()

	a := sampleAppointment()
	body := `{"customerName":"Jo","vehicleMake":"VW","vehicleModel":"Golf","licensePlate":"ab123cd",` +
		`"serviceTypes":["oil change"],"date":"2024-06-10","timeSlot":"10:00"}`

	type testCase struct {
		name       string
		setup      func(svc *mocks.MockAppointmentService)
		wantStatus int
		wantCode   string
	}

	tests := []testCase{
		{
			name: "slot taken",
			setup: func(svc *mocks.MockAppointmentService) {
				svc.On("Book", mock.Anything, mock.Anything).
					Return(nil, fmt.Errorf("appointment.service.Book: %w", model.ErrSlotUnavailable)).
					Once()
			},
			wantStatus: http.StatusBadRequest,
			wantCode:   response.CodeSlotUnavailable,
		},
		{
			name: "booked",
			setup: func(svc *mocks.MockAppointmentService) {
				svc.On("Book", mock.Anything, mock.MatchedBy(func(p model.BookAppointmentParams) bool {
					return p.Date == testDate && p.TimeSlot == "10:00" && p.LicensePlate == "ab123cd"
				})).Return(a, nil).Once()
			},
			wantStatus: http.StatusCreated,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			svc := mocks.NewMockAppointmentService(t)
			tt.setup(svc)

			rec := httptest.NewRecorder()
			newRouter(svc).ServeHTTP(rec,
				httptest.NewRequest(http.MethodPost, "/api/appointments", strings.NewReader(body)),
			)

			require.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantCode != "" {
				var eb response.ErrorBody
				require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &eb))
				assert.Equal(t, tt.wantCode, eb.Code)
				return
			}

			var got appointmentResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
			assert.Equal(t, a.ID, got.ID)
			assert.Equal(t, "pending", got.Status)
		})
	}
}

func TestHandlerSlots(t *testing.T) {
	t.Parallel()

	svc := mocks.NewMockAppointmentService(t)
	svc.On("BookedSlots", mock.Anything, testDate).Return(nil, nil).Once()
	svc.On("AvailableSlots", mock.Anything, testDate).Return([]string{"09:00", "11:00"}, nil).Once()

	router := newRouter(svc)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/appointments/booked-slots?date="+testDate, nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"date":"2024-06-10","slots":[]}`, rec.Body.String())

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/appointments/available-slots?date="+testDate, nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"date":"2024-06-10","slots":["09:00","11:00"]}`, rec.Body.String())
}

func TestHandlerSearchRoutesBeforeID(t *testing.T) {
	t.Parallel()

	a := sampleAppointment()

	svc := mocks.NewMockAppointmentService(t)
	svc.On("Search", mock.Anything, "golf").Return([]*model.Appointment{a}, nil).Once()

	rec := httptest.NewRecorder()
	newRouter(svc).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/appointments/search?q=golf", nil))

	require.Equal(t, http.StatusOK, rec.Code)

	var got []appointmentResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Len(t, got, 1)
	assert.Equal(t, a.ID, got[0].ID)

	svc.AssertNotCalled(t, "Appointment", mock.Anything, mock.Anything)
}

func TestHandlerUpdateStatus(t *testing.T) {
	t.Parallel()

	a := sampleAppointment()
	a.Status = model.AppointmentCancelled

	svc := mocks.NewMockAppointmentService(t)
	svc.On("UpdateStatus", mock.Anything, model.UpdateAppointmentStatusParams{
		ID:     a.ID,
		Status: model.AppointmentCancelled,
	}).Return(a, nil).Once()

	rec := httptest.NewRecorder()
	newRouter(svc).ServeHTTP(rec, httptest.NewRequest(http.MethodPatch,
		"/api/appointments/"+a.ID+"/status",
		strings.NewReader(`{"status":"cancelled"}`),
	))

	require.Equal(t, http.StatusOK, rec.Code)

	var got appointmentResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, "cancelled", got.Status)
}

func TestHandlerGetNotFound(t *testing.T) {
	t.Parallel()

	svc := mocks.NewMockAppointmentService(t)
	svc.On("Appointment", mock.Anything, "missing").Return(nil, model.ErrAppointmentNotFound).Once()

	rec := httptest.NewRecorder()
	newRouter(svc).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/appointments/missing", nil))

	require.Equal(t, http.StatusNotFound, rec.Code)

	var eb response.ErrorBody
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &eb))
	assert.Equal(t, response.CodeNotFound, eb.Code)
}

func TestHandlerExport(t *testing.T) {
	t.Parallel()

	data := []byte("PK\x03\x04")

	svc := mocks.NewMockAppointmentService(t)
	svc.On("Export", mock.Anything, testDate).Return(data, nil).Once()

	rec := httptest.NewRecorder()
	newRouter(svc).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/appointments/export?date="+testDate, nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, response.ContentTypeXLSX, rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "appointments-2024-06-10.xlsx")
	assert.Equal(t, data, rec.Body.Bytes())
}

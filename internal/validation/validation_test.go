package validation

import (
	"errors"
	"testing"

	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/you-humble/garage-ops/internal/model"
)

func fields(t *testing.T, err error) map[string]string {
	t.Helper()

	var verr *model.ValidationError
	require.True(t, errors.As(err, &verr), "expected *model.ValidationError, got %T", err)

	out := make(map[string]string, len(verr.Fields))
	for _, f := range verr.Fields {
		out[f.Field] = f.Tag
	}
	return out
}

func TestStructSupplier(t *testing.T) {
	t.Parallel()

	valid := model.CreateSupplierParams{
		SupplierID:   "SUP-1",
		Name:         "Acme Parts",
		ContactEmail: "sales@acme.test",
		ContactPhone: "0771234567",
	}

	tests := []struct {
		name    string
		mutate  func(p *model.CreateSupplierParams)
		wantTag map[string]string
	}{
		{
			name:   "valid",
			mutate: func(*model.CreateSupplierParams) {},
		},
		{
			name:    "bad email",
			mutate:  func(p *model.CreateSupplierParams) { p.ContactEmail = "not-an-email" },
			wantTag: map[string]string{"contactEmail": "email"},
		},
		{
			name:    "phone digit repeated five times",
			mutate:  func(p *model.CreateSupplierParams) { p.ContactPhone = "7777712345" },
			wantTag: map[string]string{"contactPhone": "phone10"},
		},
		{
			name:   "phone digit repeated four times",
			mutate: func(p *model.CreateSupplierParams) { p.ContactPhone = "7777123456" },
		},
		{
			name: "missing required",
			mutate: func(p *model.CreateSupplierParams) {
				p.SupplierID = ""
				p.Name = ""
			},
			wantTag: map[string]string{"supplierID": "required", "name": "required"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			p := valid
			tt.mutate(&p)

			err := Struct(p)
			if tt.wantTag == nil {
				require.NoError(t, err)
				return
			}

			require.Error(t, err)
			assert.ErrorIs(t, err, model.ErrValidation)
			assert.Equal(t, tt.wantTag, fields(t, err))
		})
	}
}

func TestStructPurchaseOrderItems(t *testing.T) {
	t.Parallel()

	err := Struct(model.CreatePurchaseOrderParams{
		SupplierID: "s-1",
		Items: []model.OrderItemParams{
			{Name: "Brake pad", Quantity: 2, UnitPrice: 10, TotalPrice: 20},
			{Name: "Rotor", Quantity: 0, UnitPrice: 50, TotalPrice: 0},
		},
	})
	require.Error(t, err)
	assert.Equal(t, map[string]string{"items[1].quantity": "gte"}, fields(t, err))

	err = Struct(model.CreatePurchaseOrderParams{SupplierID: "s-1"})
	require.Error(t, err)
	assert.Equal(t, map[string]string{"items": "required"}, fields(t, err))
}

func TestStructUpdateSkipsNilFields(t *testing.T) {
	t.Parallel()

	require.NoError(t, Struct(model.UpdatePartParams{}))
	require.NoError(t, Struct(model.UpdatePartParams{Quantity: lo.ToPtr(int64(0))}))

	err := Struct(model.UpdatePartParams{
		Quantity: lo.ToPtr(int64(-1)),
		Name:     lo.ToPtr(""),
	})
	require.Error(t, err)
	assert.Equal(t, map[string]string{"quantity": "gte", "name": "min"}, fields(t, err))
}

func TestStructAppointmentSlotAndDate(t *testing.T) {
	t.Parallel()

	p := model.BookAppointmentParams{
		CustomerName: "Dana Smith",
		VehicleMake:  "Toyota",
		VehicleModel: "Corolla",
		LicensePlate: "CAB-1234",
		ServiceTypes: []string{"oil change"},
		Date:         "2026-10-20",
		TimeSlot:     "10:00",
	}
	require.NoError(t, Struct(p))

	p.TimeSlot = "10:30"
	p.Date = "20/10/2026"
	err := Struct(p)
	require.Error(t, err)
	assert.Equal(t, map[string]string{"timeSlot": "timeslot", "date": "datetime"}, fields(t, err))
}

func TestFieldName(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "items[0].unitPrice", fieldName("CreatePurchaseOrderParams.Items[0].UnitPrice"))
	assert.Equal(t, "supplierIDs[1]", fieldName("CreateQuotationParams.SupplierIDs[1]"))
	assert.Equal(t, "id", fieldName("UpdateAppointmentStatusParams.ID"))
}

package model

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsValidPhone(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		phone string
		want  bool
	}{
		{name: "ten distinct digits", phone: "0123456789", want: true},
		{name: "digit repeated exactly four times", phone: "1111234567", want: true},
		{name: "digit repeated five times", phone: "1111123456", want: false},
		{name: "repeats spread out", phone: "1213141516", want: false},
		{name: "nine digits", phone: "012345678", want: false},
		{name: "eleven digits", phone: "01234567890", want: false},
		{name: "letters", phone: "01234abcde", want: false},
		{name: "formatted", phone: "012-345-67", want: false},
		{name: "empty", phone: "", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, IsValidPhone(tt.phone))
		})
	}
}

func TestPartIsLowStock(t *testing.T) {
	t.Parallel()

	tests := []struct {
		quantity, minimum int64
		want              bool
	}{
		{quantity: 0, minimum: 0, want: true},
		{quantity: 4, minimum: 5, want: true},
		{quantity: 5, minimum: 5, want: true},
		{quantity: 6, minimum: 5, want: false},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%d/%d", tt.quantity, tt.minimum), func(t *testing.T) {
			t.Parallel()
			p := &Part{Quantity: tt.quantity, MinimumStock: tt.minimum}
			assert.Equal(t, tt.want, p.IsLowStock())
		})
	}
}

func TestNewQuotationID(t *testing.T) {
	t.Parallel()

	now := time.UnixMilli(1718000000123)
	assert.Equal(t, "QUO-1718000000123", NewQuotationID(now))
}

func TestQuotationSupplierIndex(t *testing.T) {
	t.Parallel()

	q := &Quotation{Suppliers: []QuoteSupplier{{SupplierID: "s-1"}, {SupplierID: "s-2"}}}
	assert.Equal(t, 1, q.SupplierIndex("s-2"))
	assert.Equal(t, -1, q.SupplierIndex("s-3"))
}

func TestValidationError(t *testing.T) {
	t.Parallel()

	verr := NewValidationError()
	require.NoError(t, verr.Err())

	verr.Add("contactPhone", "phone10", "must be 10 digits")
	err := verr.Err()
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrValidation))
	assert.Equal(t, "validation error: contactPhone: must be 10 digits", err.Error())

	var target *ValidationError
	require.ErrorAs(t, fmt.Errorf("wrapped: %w", err), &target)
	assert.Len(t, target.Fields, 1)
}

func TestIsNotFound(t *testing.T) {
	t.Parallel()

	assert.True(t, IsNotFound(fmt.Errorf("op: %w", ErrQuoteSupplierNotFound)))
	assert.False(t, IsNotFound(ErrConflict))
}

func TestNormalize(t *testing.T) {
	t.Parallel()

	t.Run("appointment update keeps nil and empty service types apart", func(t *testing.T) {
		t.Parallel()

		assert.Nil(t, UpdateAppointmentParams{}.Normalize().ServiceTypes)

		got := UpdateAppointmentParams{ServiceTypes: []string{}}.Normalize().ServiceTypes
		require.NotNil(t, got)
		assert.Empty(t, got)
	})

	t.Run("caller slices and pointers are left untouched", func(t *testing.T) {
		t.Parallel()

		ids := []string{" S1 ", "S2"}
		name := " Brake pad "
		q := CreateQuotationParams{SupplierIDs: ids}.Normalize()
		u := UpdatePartParams{Name: &name}.Normalize()

		assert.Equal(t, []string{"S1", "S2"}, q.SupplierIDs)
		assert.Equal(t, " S1 ", ids[0])
		assert.Equal(t, "Brake pad", *u.Name)
		assert.Equal(t, " Brake pad ", name)
	})

	t.Run("contact fields are case folded", func(t *testing.T) {
		t.Parallel()

		email, plate := " Ops@Garage.IO ", " ab12 cd "
		s := UpdateSupplierParams{ContactEmail: &email}.Normalize()
		a := UpdateAppointmentParams{LicensePlate: &plate}.Normalize()

		assert.Equal(t, "ops@garage.io", *s.ContactEmail)
		assert.Equal(t, "AB12 CD", *a.LicensePlate)
	})
}

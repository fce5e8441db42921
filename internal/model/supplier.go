package model

import "time"

type Supplier struct {
	ID string
	// Business identifier, unique.
	SupplierID string
	Name       string
	// Unique across suppliers.
	ContactEmail string
	ContactPhone string
	Address      string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

type CreateSupplierParams struct {
	SupplierID   string `validate:"required"`
	Name         string `validate:"required"`
	ContactEmail string `validate:"required,email"`
	ContactPhone string `validate:"required,phone10"`
	Address      string `validate:"omitempty,max=500"`
}

type UpdateSupplierParams struct {
	SupplierID   *string `validate:"omitnil,min=1"`
	Name         *string `validate:"omitnil,min=1"`
	ContactEmail *string `validate:"omitnil,email"`
	ContactPhone *string `validate:"omitnil,phone10"`
	Address      *string `validate:"omitnil,max=500"`
}

func (p UpdateSupplierParams) IsEmpty() bool {
	return p.SupplierID == nil && p.Name == nil && p.ContactEmail == nil &&
		p.ContactPhone == nil && p.Address == nil
}

const maxPhoneDigitRepeats = 4

// IsValidPhone accepts exactly ten digits where no digit occurs more than four times.
func IsValidPhone(s string) bool {
	if len(s) != 10 {
		return false
	}

	var counts [10]int
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c < '0' || c > '9' {
			return false
		}
		counts[c-'0']++
		if counts[c-'0'] > maxPhoneDigitRepeats {
			return false
		}
	}
	return true
}

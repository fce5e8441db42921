package validation

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/samber/lo"

	"github.com/you-humble/garage-ops/internal/model"
)

const (
	tagPhone    = "phone10"
	tagTimeSlot = "timeslot"
)

var (
	once     sync.Once
	validate *validator.Validate
)

func instance() *validator.Validate {
	once.Do(func() {
		v := validator.New(validator.WithRequiredStructEnabled())

		_ = v.RegisterValidation(tagPhone, func(fl validator.FieldLevel) bool {
			return model.IsValidPhone(fl.Field().String())
		})
		_ = v.RegisterValidation(tagTimeSlot, func(fl validator.FieldLevel) bool {
			return lo.Contains(model.TimeSlots, fl.Field().String())
		})

		validate = v
	})

	return validate
}

// Struct validates s by its `validate` tags and returns a *model.ValidationError
// listing every failed field.
func Struct(s any) error {
	err := instance().Struct(s)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("%w: %v", model.ErrValidation, err)
	}

	out := model.NewValidationError()
	for _, fe := range verrs {
		out.Add(fieldName(fe.Namespace()), fe.Tag(), message(fe))
	}

	return out
}

// fieldName turns "CreatePartParams.Items[0].UnitPrice" into "items[0].unitPrice".
func fieldName(namespace string) string {
	parts := strings.Split(namespace, ".")
	if len(parts) > 1 {
		parts = parts[1:]
	}
	for i, p := range parts {
		parts[i] = lowerFirst(p)
	}
	return strings.Join(parts, ".")
}

func lowerFirst(s string) string {
	if s == "" {
		return s
	}
	// Leading initialisms like "ID" become "id".
	n := 0
	for n < len(s) && s[n] >= 'A' && s[n] <= 'Z' {
		n++
	}
	switch {
	case n == 0:
		return s
	case n == 1, n == len(s):
		return strings.ToLower(s[:n]) + s[n:]
	default:
		return strings.ToLower(s[:n-1]) + s[n-1:]
	}
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case tagPhone:
		return "must be exactly 10 digits with no digit repeated more than 4 times"
	case tagTimeSlot:
		return "must be one of " + strings.Join(model.TimeSlots, ", ")
	case "datetime":
		return "must be a date in YYYY-MM-DD format"
	case "numeric":
		return "must contain digits only"
	case "oneof":
		return "must be one of " + strings.ReplaceAll(fe.Param(), " ", ", ")
	case "gte":
		return "must be greater than or equal to " + fe.Param()
	case "lte":
		return "must be less than or equal to " + fe.Param()
	case "len":
		return "must have length " + fe.Param()
	case "min":
		if fe.Param() == "1" {
			return "must not be empty"
		}
		return "must have at least " + fe.Param() + " elements"
	case "max":
		return "must have at most " + fe.Param() + " characters"
	default:
		return "is invalid"
	}
}

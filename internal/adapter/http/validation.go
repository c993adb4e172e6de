package http

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"ngo-backoffice/internal/domain/budget"
	"ngo-backoffice/internal/domain/project"
	"ngo-backoffice/internal/domain/user"
	"ngo-backoffice/pkg/money"
)

// Reusable error payload
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}
type ErrorResponse struct {
	Error   string       `json:"error"`
	Details []FieldError `json:"details,omitempty"`
}

type CustomValidator struct{ v *validator.Validate }

func NewValidator() *CustomValidator {
	v := validator.New()

	// report json names in FieldError
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		if name == "" {
			return f.Name
		}
		return name
	})
	// money fields reach the validator as their exact decimal text
	v.RegisterCustomTypeFunc(func(f reflect.Value) any {
		d, ok := f.Interface().(decimal.Decimal)
		if !ok {
			return nil
		}
		return d.String()
	}, decimal.Decimal{})

	_ = v.RegisterValidation("dec2", decimalRule(money.HasScale))
	_ = v.RegisterValidation("money_max", decimalRule(money.InRange))
	_ = v.RegisterValidation("money_pos", decimalRule(decimal.Decimal.IsPositive))
	_ = v.RegisterValidation("money_nonneg", decimalRule(func(d decimal.Decimal) bool { return !d.IsNegative() }))
	_ = v.RegisterValidation("role", func(fl validator.FieldLevel) bool {
		return user.Role(fl.Field().String()).Valid()
	})
	_ = v.RegisterValidation("project_status", func(fl validator.FieldLevel) bool {
		return project.Status(fl.Field().String()).Valid()
	})
	_ = v.RegisterValidation("budget_category", func(fl validator.FieldLevel) bool {
		return budget.Category(fl.Field().String()).Valid()
	})

	return &CustomValidator{v: v}
}

func (cv *CustomValidator) Validate(i any) error { return cv.v.Struct(i) }

func decimalRule(ok func(decimal.Decimal) bool) validator.Func {
	return func(fl validator.FieldLevel) bool {
		d, err := decimal.NewFromString(fl.Field().String())
		return err == nil && ok(d)
	}
}

// Map validator.ValidationErrors → []FieldError with readable messages.
func ToFieldErrors(err error) []FieldError {
	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		return []FieldError{{Field: "_", Message: err.Error()}}
	}
	out := make([]FieldError, 0, len(ve))
	for _, e := range ve {
		field := e.Field()
		switch e.Tag() {
		case "required":
			out = append(out, FieldError{Field: field, Message: "is required"})
		case "email":
			out = append(out, FieldError{Field: field, Message: "must be a valid email address"})
		case "dec2":
			out = append(out, FieldError{Field: field, Message: "must have at most 2 decimal places"})
		case "money_max":
			out = append(out, FieldError{Field: field, Message: "must be less than " + money.Limit.String()})
		case "money_pos":
			out = append(out, FieldError{Field: field, Message: "must be greater than 0"})
		case "money_nonneg":
			out = append(out, FieldError{Field: field, Message: "must not be negative"})
		case "datetime":
			out = append(out, FieldError{Field: field, Message: "must be a date formatted YYYY-MM-DD"})
		case "role":
			out = append(out, FieldError{Field: field, Message: "must be one of ADMIN AGENT FINANCE DONOR"})
		case "project_status":
			out = append(out, FieldError{Field: field, Message: "must be one of PLANNED ACTIVE PAUSED COMPLETED CANCELLED"})
		case "budget_category":
			out = append(out, FieldError{Field: field, Message: "must be a known budget category"})
		case "oneof":
			out = append(out, FieldError{Field: field, Message: "must be one of " + e.Param()})
		case "min":
			out = append(out, FieldError{Field: field, Message: "must be at least " + e.Param() + " long"})
		case "max":
			out = append(out, FieldError{Field: field, Message: "must be at most " + e.Param() + " long"})
		case "len":
			out = append(out, FieldError{Field: field, Message: "must be exactly " + e.Param() + " characters"})
		case "gt":
			out = append(out, FieldError{Field: field, Message: "must be greater than " + e.Param()})
		case "gte":
			out = append(out, FieldError{Field: field, Message: "must be greater than or equal to " + e.Param()})
		case "lte":
			out = append(out, FieldError{Field: field, Message: "must be less than or equal to " + e.Param()})
		default:
			out = append(out, FieldError{Field: field, Message: e.Tag() + " validation failed"})
		}
	}
	return out
}

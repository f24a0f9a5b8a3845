package checkout

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"sort"
	"strings"

	"github.com/example/astroshop/pkg/models"
	"github.com/go-playground/validator/v10"
)

// Request is the checkout form. Validation is purely structural; no
// payment gateway is called.
type Request struct {
	Email           string `json:"email" validate:"required,email"`
	ShippingName    string `json:"shipping_name" validate:"required,min=2"`
	ShippingAddress string `json:"shipping_address" validate:"required,min=5"`
	ShippingCity    string `json:"shipping_city" validate:"required,min=2"`
	ShippingState   string `json:"shipping_state" validate:"required,min=2"`
	ShippingZip     string `json:"shipping_zip" validate:"required,min=5"`
	CardName        string `json:"card_name" validate:"required,min=2"`
	CardNumber      string `json:"card_number" validate:"required,len=16,numeric"`
	CardExpiry      string `json:"card_expiry" validate:"required,expiry"`
	CardCvc         string `json:"card_cvc" validate:"required,len=3,numeric"`
}

var expiryPattern = regexp.MustCompile(`^(0[1-9]|1[0-2])/\d{2}$`)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	// MM/YY
	_ = v.RegisterValidation("expiry", func(fl validator.FieldLevel) bool {
		return expiryPattern.MatchString(fl.Field().String())
	})
	return v
}

// ValidationError carries per-field messages for inline display.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	names := make([]string, 0, len(e.Fields))
	for name := range e.Fields {
		names = append(names, name)
	}
	sort.Strings(names)
	return "checkout: invalid fields: " + strings.Join(names, ", ")
}

// Validate checks the form against the fixed schema and returns a
// ValidationError naming every failed field.
func (r Request) Validate() error {
	err := validate.Struct(r)
	if err == nil {
		return nil
	}

	fields := make(map[string]string)
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		for _, fe := range verrs {
			fields[fe.Field()] = messageFor(fe)
		}
	} else {
		fields["form"] = err.Error()
	}
	return &ValidationError{Fields: fields}
}

func messageFor(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "min":
		return fmt.Sprintf("must be at least %s characters", fe.Param())
	case "len":
		return fmt.Sprintf("must be exactly %s characters", fe.Param())
	case "numeric":
		return "must contain only digits"
	case "expiry":
		return "must be in MM/YY format"
	default:
		return "is invalid"
	}
}

func (r Request) customerInfo() models.CustomerInfo {
	return models.CustomerInfo{
		Email:           r.Email,
		ShippingName:    r.ShippingName,
		ShippingAddress: r.ShippingAddress,
		ShippingCity:    r.ShippingCity,
		ShippingState:   r.ShippingState,
		ShippingZip:     r.ShippingZip,
	}
}

// Package validate applies schema validation uniformly at every external
// boundary: checkout payloads, cart payloads and query parameters.
package validate

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/yzxsolutions/soofi-mandi-sub000/internal/model"
)

// Validator wraps the schema validator and translates failures into the
// collected field-error form the API returns.
type Validator struct {
	v *validator.Validate
}

// New creates a validator that reports fields by their json names.
func New() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})
	return &Validator{v: v}
}

// Struct validates the tagged struct and returns every failure found, or nil
// when the value is valid.
func (val *Validator) Struct(s any) *model.ValidationErrors {
	err := val.v.Struct(s)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		out := &model.ValidationErrors{}
		out.Add("", model.ErrCodeValidationFailed, err.Error())
		return out
	}
	out := &model.ValidationErrors{}
	for _, fe := range verrs {
		out.Add(fieldPath(fe), strings.ToUpper(fe.Tag()), message(fe))
	}
	return out
}

// fieldPath strips the root struct name so errors read "customer.email"
// rather than "CheckoutRequest.customer.email".
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if idx := strings.Index(ns, "."); idx >= 0 {
		return ns[idx+1:]
	}
	return fe.Field()
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "min":
		return fmt.Sprintf("must be at least %s characters", fe.Param())
	case "max":
		return fmt.Sprintf("must be at most %s characters", fe.Param())
	case "oneof":
		return fmt.Sprintf("must be one of: %s", fe.Param())
	case "uuid4":
		return "must be a valid id"
	default:
		return fmt.Sprintf("failed %s validation", fe.Tag())
	}
}

package services

import (
	"encoding/json"
	"errors"
	"reflect"
	"strings"

	"github.com/fundflow/backend/errs"
	"github.com/go-playground/validator/v10"
)

// validate is shared by every service; field names in validation errors use
// the json tag so they match what the client sent.
var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// validateInput runs struct validation and converts the first failure into a
// typed field error.
func validateInput(in any) error {
	err := validate.Struct(in)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		reason := fe.Tag()
		if fe.Param() != "" {
			reason += " " + fe.Param()
		}
		return errs.NewInvalidFieldError(fe.Field(), reason)
	}
	return errs.NewBadRequestError(err.Error())
}

// Optional distinguishes an omitted JSON field from one explicitly set to
// null. Set reports presence; Value is nil for an explicit null.
type Optional[T any] struct {
	Set   bool
	Value *T
}

func (o *Optional[T]) UnmarshalJSON(data []byte) error {
	o.Set = true
	if string(data) == "null" {
		o.Value = nil
		return nil
	}
	return json.Unmarshal(data, &o.Value)
}

func (o Optional[T]) MarshalJSON() ([]byte, error) {
	if !o.Set || o.Value == nil {
		return []byte("null"), nil
	}
	return json.Marshal(o.Value)
}

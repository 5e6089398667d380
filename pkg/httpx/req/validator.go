package req

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// newValidator reports json field names instead of Go struct field names.
func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}

		return name
	})

	return v
}

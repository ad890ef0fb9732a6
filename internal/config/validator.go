package config

import (
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

// Validator returns the validator of options. Errors name fields by their
// environment variable.
var Validator = sync.OnceValue(func() *validator.Validate {
	validate := validator.New(validator.WithRequiredStructEnabled())
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		tag := fld.Tag.Get("env")
		if tag == "" {
			tag = fld.Tag.Get("yaml")
		}
		name, _, _ := strings.Cut(tag, ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return validate
})

package middleware

import (
	"reflect"
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// RegisterValidation makes validator report fields by their wire names
// (json tag, then form tag) instead of Go field names, so error details
// read "age is required" rather than "Age is required".
func RegisterValidation() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}
	v.RegisterTagNameFunc(wireName)
}

func wireName(field reflect.StructField) string {
	for _, tag := range []string{"json", "form"} {
		name := strings.SplitN(field.Tag.Get(tag), ",", 2)[0]
		if name == "-" {
			continue
		}
		if name != "" {
			return name
		}
	}
	return field.Name
}

package validator

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

var validate = newValidate()

func newValidate() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// Report fields by the name clients send.
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		for _, tag := range []string{"form", "json"} {
			name, _, _ := strings.Cut(f.Tag.Get(tag), ",")
			if name == "-" {
				return ""
			}
			if name != "" {
				return name
			}
		}
		return f.Name
	})
	return v
}

// messages maps validation tags to friendly messages. %[1]s is the field,
// %[2]s the tag parameter.
var messages = map[string]string{
	"required": "The field '%[1]s' is required.",
	"gte":      "The field '%[1]s' must be greater than or equal to %[2]s.",
	"gt":       "The field '%[1]s' must be greater than %[2]s.",
	"lte":      "The field '%[1]s' must be less than or equal to %[2]s.",
	"lt":       "The field '%[1]s' must be less than %[2]s.",
	"oneof":    "The field '%[1]s' must be one of %[2]s.",
	"max":      "The field '%[1]s' must be no longer than %[2]s characters.",
}

func parseMessage(e validator.FieldError) string {
	if msg, ok := messages[e.Tag()]; ok {
		return fmt.Sprintf(msg, e.Field(), e.Param())
	}
	return fmt.Sprintf("Field '%s' is invalid: %s", e.Field(), e.Tag())
}

// ValidateStruct validates s and returns friendly messages keyed by the
// client-facing field name. The map is empty when s is valid.
func ValidateStruct(s any) map[string]string {
	out := make(map[string]string)
	var errs validator.ValidationErrors
	if err := validate.Struct(s); errors.As(err, &errs) {
		for _, e := range errs {
			out[e.Field()] = parseMessage(e)
		}
	}
	return out
}

// ShouldBindQueryAndValidate binds the query string into obj and validates
// it. A binding failure is returned as error; rule violations as messages.
func ShouldBindQueryAndValidate(c *gin.Context, obj any) (map[string]string, error) {
	if err := c.ShouldBindQuery(obj); err != nil {
		return nil, err
	}
	return ValidateStruct(obj), nil
}

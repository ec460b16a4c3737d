// file: internals/helpers/validation.go
package helper

import (
	"errors"

	"github.com/go-playground/validator/v10"
)

// FieldErrors flattens validator errors into the field → tags map
// JsonValidationError expects.
func FieldErrors(err error) map[string][]string {
	fieldErrors := map[string][]string{}
	var ve validator.ValidationErrors
	if errors.As(err, &ve) {
		for _, fe := range ve {
			fieldErrors[fe.Field()] = append(fieldErrors[fe.Field()], fe.Tag())
		}
	}
	return fieldErrors
}

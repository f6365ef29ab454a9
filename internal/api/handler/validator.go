package handler

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/matalogics/inventory-api/internal/core/domain"
)

// echoValidator wraps go-playground/validator so Echo can call c.Validate(req).
type echoValidator struct {
	v *validator.Validate
}

// NewValidator returns an echoValidator ready to be assigned to echo.Echo.Validator.
func NewValidator() *echoValidator {
	return &echoValidator{v: validator.New()}
}

// Validate satisfies the echo.Validator interface. Failures surface as a
// domain.ValidationError carrying the offending field names, which the
// central error handler renders as a 422 with a field list.
func (ev *echoValidator) Validate(i any) error {
	if err := ev.v.Struct(i); err != nil {
		var ve validator.ValidationErrors
		if errors.As(err, &ve) {
			fields := make([]string, 0, len(ve))
			for _, fe := range ve {
				fields = append(fields, fieldName(fe))
			}
			return domain.NewValidationError(fields...)
		}
		return err
	}
	return nil
}

// fieldName lowercases the first rune of the struct field so the reported
// name matches the JSON payload convention (Name -> name, SerialNumber ->
// serialNumber).
func fieldName(fe validator.FieldError) string {
	f := fe.Field()
	if f == "" {
		return f
	}
	return strings.ToLower(f[:1]) + f[1:]
}
